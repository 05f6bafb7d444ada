// Package seeder loads category and food fixtures into the catalog.
package seeder

import (
	"context"

	"github.com/heartmarshall/foodcatalog-backend/internal/domain"
)

// CategoryRepo is the food type contract the seeder needs.
// Implemented by foodtype.Repo.
type CategoryRepo interface {
	GetByName(ctx context.Context, name string) (*domain.FoodType, error)
	Create(ctx context.Context, name string, parentID *int64) (*domain.FoodType, error)
}

// FoodRepo is the food contract the seeder needs. Implemented by food.Repo.
type FoodRepo interface {
	Create(ctx context.Context, fields domain.FoodFields) (*domain.Food, error)
}

// TxRunner runs fn in one transaction. Implemented by postgres.TxManager.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
