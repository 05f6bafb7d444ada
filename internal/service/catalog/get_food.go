package catalog

import (
	"context"
	"fmt"

	"github.com/heartmarshall/foodcatalog-backend/internal/domain"
)

// GetFood returns a single food with its category name.
func (s *Service) GetFood(ctx context.Context, id int64) (*domain.Food, error) {
	if err := validateID("FoodId", id); err != nil {
		return nil, err
	}

	food, err := s.foods.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get food: %w", err)
	}

	return food, nil
}
