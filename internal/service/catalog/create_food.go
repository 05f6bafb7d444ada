package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/foodcatalog-backend/internal/domain"
)

// CreateFood inserts a new food. Rating and NumberRating start at zero.
func (s *Service) CreateFood(ctx context.Context, input FoodInput) (*domain.Food, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	food, err := s.foods.Create(ctx, input.fields())
	if err != nil {
		return nil, fmt.Errorf("create food: %w", err)
	}

	s.recordMutation(OpCreate)
	s.log.InfoContext(ctx, "food created",
		slog.Int64("food_id", food.ID),
		slog.Int64("type_id", food.TypeID),
	)

	return food, nil
}
