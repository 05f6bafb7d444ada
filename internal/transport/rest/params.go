package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/heartmarshall/foodcatalog-backend/internal/domain"
	"github.com/heartmarshall/foodcatalog-backend/internal/service/catalog"
)

// parsePageInput reads page and pageSize from the query string. limit is
// accepted as an alias for pageSize; pageSize wins when both are present.
// Range checks are left to the service.
func parsePageInput(r *http.Request) (catalog.PageInput, error) {
	q := r.URL.Query()

	var in catalog.PageInput
	page, err := optionalInt(q.Get("page"), "page")
	if err != nil {
		return in, err
	}
	in.Page = page

	sizeParam, sizeRaw := "pageSize", q.Get("pageSize")
	if sizeRaw == "" {
		sizeParam, sizeRaw = "limit", q.Get("limit")
	}
	size, err := optionalInt(sizeRaw, sizeParam)
	if err != nil {
		return in, err
	}
	in.PageSize = size

	return in, nil
}

func optionalInt(raw, field string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, domain.NewValidationError(field, "must be an integer")
	}
	return &v, nil
}

var (
	errIDRequired = errors.New("id is required")
	errIDInvalid  = errors.New("id must be a positive integer")
)

// pathID parses the {id} path segment.
func pathID(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	if raw == "" {
		return 0, errIDRequired
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errIDInvalid
	}
	return id, nil
}
