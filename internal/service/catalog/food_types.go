package catalog

import (
	"context"
	"fmt"

	"github.com/heartmarshall/foodcatalog-backend/internal/domain"
)

// ListFoodTypes returns every category, flat and ordered by id.
func (s *Service) ListFoodTypes(ctx context.Context) ([]domain.FoodType, error) {
	types, err := s.types.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list food types: %w", err)
	}
	return types, nil
}

// GetFoodType returns a single category.
func (s *Service) GetFoodType(ctx context.Context, id int64) (*domain.FoodType, error) {
	if err := validateID("TypeId", id); err != nil {
		return nil, err
	}

	ft, err := s.types.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get food type: %w", err)
	}
	return ft, nil
}
