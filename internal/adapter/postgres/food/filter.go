package food

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/foodcatalog-backend/internal/domain"
)

const defaultLimit = 10

// normalize applies defaults and clamps values. Page bounds are validated by
// the catalog service; these limits only keep direct callers from issuing
// unbounded queries.
func normalize(f domain.FoodFilter) domain.FoodFilter {
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > domain.MaxPageSize {
		f.Limit = domain.MaxPageSize
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	if f.Order != domain.FoodOrderNewest {
		f.Order = domain.FoodOrderIDAsc
	}
	return f
}

// applyFilter adds the listing predicate to b. Count and page queries both go
// through here, so the total always describes the same row set as the page.
func applyFilter(b sq.SelectBuilder, f domain.FoodFilter) sq.SelectBuilder {
	if f.TypeID != nil {
		b = b.Where(sq.Eq{"f.type_id": *f.TypeID})
	}
	return b
}

// orderClause returns the ORDER BY expression for f.
func orderClause(f domain.FoodFilter) string {
	if f.Order == domain.FoodOrderNewest {
		return "f.food_id DESC"
	}
	return "f.food_id ASC"
}
