package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/foodcatalog-backend/internal/domain"
)

// ListFoods returns a page of foods in ascending id order, optionally limited
// to one category. An unknown category yields ErrCategoryNotFound.
func (s *Service) ListFoods(ctx context.Context, input ListFoodsInput) (*FoodPage, error) {
	return s.listFoods(ctx, input.PageInput, input.Category, domain.FoodOrderIDAsc)
}

// ListNewest returns a page of foods, most recently created first.
func (s *Service) ListNewest(ctx context.Context, input PageInput) (*FoodPage, error) {
	return s.listFoods(ctx, input, nil, domain.FoodOrderNewest)
}

func (s *Service) listFoods(ctx context.Context, input PageInput, category *string, order domain.FoodOrder) (*FoodPage, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	req := s.pageRequest(input)
	if err := req.Validate(); err != nil {
		return nil, err
	}
	result := &FoodPage{Page: req.Page, PageSize: req.PageSize}

	// Category lookup, count and page share one snapshot.
	err := s.tx.RunInSnapshot(ctx, func(txCtx context.Context) error {
		typeID, err := s.resolveCategory(txCtx, category)
		if err != nil {
			return err
		}

		filter := domain.FoodFilter{
			TypeID: typeID,
			Order:  order,
			Limit:  req.PageSize,
			Offset: req.Offset(),
		}

		total, err := s.foods.Count(txCtx, filter)
		if err != nil {
			return fmt.Errorf("count foods: %w", err)
		}

		foods, err := s.foods.Find(txCtx, filter)
		if err != nil {
			return fmt.Errorf("find foods: %w", err)
		}

		result.Foods = foods
		result.TotalFoods = total
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.TotalPages = domain.TotalPages(result.TotalFoods, result.PageSize)

	s.log.DebugContext(ctx, "foods listed",
		slog.Int("page", result.Page),
		slog.Int("page_size", result.PageSize),
		slog.Int("total", result.TotalFoods),
	)

	return result, nil
}

// pageRequest applies defaults and clamps the page size to the configured
// maximum, never above domain.MaxPageSize. Inputs are already validated to be
// >= 1 when present.
func (s *Service) pageRequest(input PageInput) domain.PageRequest {
	req := domain.PageRequest{Page: 1, PageSize: s.paging.DefaultPageSize}
	if input.Page != nil {
		req.Page = *input.Page
	}
	if input.PageSize != nil {
		req.PageSize = *input.PageSize
	}
	limit := s.paging.MaxPageSize
	if limit <= 0 || limit > domain.MaxPageSize {
		limit = domain.MaxPageSize
	}
	if req.PageSize > limit {
		req.PageSize = limit
	}
	return req
}

// resolveCategory maps a category name to its id. Nil or empty name means
// no filter.
func (s *Service) resolveCategory(ctx context.Context, name *string) (*int64, error) {
	if name == nil || *name == "" {
		return nil, nil
	}

	ft, err := s.types.GetByName(ctx, *name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%q: %w", *name, ErrCategoryNotFound)
		}
		return nil, fmt.Errorf("resolve category: %w", err)
	}

	return &ft.ID, nil
}
