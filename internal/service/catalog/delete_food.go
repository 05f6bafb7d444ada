package catalog

import (
	"context"
	"fmt"
	"log/slog"
)

// DeleteFood removes a food unconditionally.
// Returns domain.ErrNotFound when the food does not exist.
func (s *Service) DeleteFood(ctx context.Context, id int64) error {
	if err := validateID("FoodId", id); err != nil {
		return err
	}

	var name string
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		food, err := s.foods.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get food: %w", err)
		}
		name = food.Name

		if err := s.foods.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete food: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.recordMutation(OpDelete)
	s.log.InfoContext(ctx, "food deleted",
		slog.Int64("food_id", id),
		slog.String("name", name),
	)

	return nil
}
