package catalog

import (
	"fmt"

	"github.com/heartmarshall/foodcatalog-backend/internal/domain"
)

// ErrCategoryNotFound is returned when a category filter names no category.
// It matches domain.ErrNotFound as well.
var ErrCategoryNotFound = fmt.Errorf("food category %w", domain.ErrNotFound)
