package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/foodcatalog-backend/internal/domain"
)

type foodTypeService interface {
	ListFoodTypes(ctx context.Context) ([]domain.FoodType, error)
	GetFoodType(ctx context.Context, id int64) (*domain.FoodType, error)
}

// FoodTypeHandler serves the read-only /api/category endpoints.
type FoodTypeHandler struct {
	svc foodTypeService
	log *slog.Logger
}

// NewFoodTypeHandler creates a FoodTypeHandler.
func NewFoodTypeHandler(svc foodTypeService, logger *slog.Logger) *FoodTypeHandler {
	return &FoodTypeHandler{svc: svc, log: logger.With("handler", "food_type")}
}

// List handles GET /api/category.
func (h *FoodTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	types, err := h.svc.ListFoodTypes(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "list food types", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Failed to fetch food types")
		return
	}

	data := make([]foodTypeResponse, 0, len(types))
	for _, t := range types {
		data = append(data, toFoodTypeResponse(t))
	}
	writeJSON(w, http.StatusOK, dataResponse{Status: statusSuccess, Data: data})
}

// Get handles GET /api/category/{id}.
func (h *FoodTypeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid food type ID")
		return
	}

	ft, err := h.svc.GetFoodType(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, dataResponse{Status: statusSuccess, Data: toFoodTypeResponse(*ft)})
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Food type not found")
	case errors.Is(err, domain.ErrValidation):
		writeValidationError(w, err)
	default:
		h.log.ErrorContext(r.Context(), "get food type", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Failed to fetch food type")
	}
}
