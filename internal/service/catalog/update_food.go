package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/foodcatalog-backend/internal/domain"
)

// UpdateFood replaces every mutable field of an existing food.
// Returns domain.ErrNotFound without writing when the food does not exist.
func (s *Service) UpdateFood(ctx context.Context, id int64, input FoodInput) (*domain.Food, error) {
	if err := validateID("FoodId", id); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Food
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.foods.GetByID(txCtx, id); err != nil {
			return fmt.Errorf("get food: %w", err)
		}

		var err error
		updated, err = s.foods.Update(txCtx, id, input.fields())
		if err != nil {
			return fmt.Errorf("update food: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.recordMutation(OpUpdate)
	s.log.InfoContext(ctx, "food updated", slog.Int64("food_id", id))

	return updated, nil
}
