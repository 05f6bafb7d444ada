// Package catalog implements food listing, lookup and maintenance on top of
// the food and category repositories.
package catalog

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/foodcatalog-backend/internal/config"
	"github.com/heartmarshall/foodcatalog-backend/internal/domain"
)

type foodRepo interface {
	Find(ctx context.Context, filter domain.FoodFilter) ([]domain.Food, error)
	Count(ctx context.Context, filter domain.FoodFilter) (int, error)
	GetByID(ctx context.Context, id int64) (*domain.Food, error)
	Create(ctx context.Context, fields domain.FoodFields) (*domain.Food, error)
	Update(ctx context.Context, id int64, fields domain.FoodFields) (*domain.Food, error)
	Delete(ctx context.Context, id int64) error
}

type foodTypeRepo interface {
	List(ctx context.Context) ([]domain.FoodType, error)
	GetByID(ctx context.Context, id int64) (*domain.FoodType, error)
	GetByName(ctx context.Context, name string) (*domain.FoodType, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
	RunInSnapshot(ctx context.Context, fn func(ctx context.Context) error) error
}

// MutationRecorder counts successful catalog writes. NewService accepts nil.
type MutationRecorder interface {
	FoodMutated(op string)
}

// Mutation names reported to the MutationRecorder.
const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// Service provides catalog operations.
type Service struct {
	foods    foodRepo
	types    foodTypeRepo
	tx       txManager
	recorder MutationRecorder
	paging   config.CatalogConfig
	log      *slog.Logger
}

// NewService creates a new catalog service.
func NewService(
	log *slog.Logger,
	foods foodRepo,
	types foodTypeRepo,
	tx txManager,
	recorder MutationRecorder,
	paging config.CatalogConfig,
) *Service {
	return &Service{
		foods:    foods,
		types:    types,
		tx:       tx,
		recorder: recorder,
		paging:   paging,
		log:      log.With("service", "catalog"),
	}
}

func (s *Service) recordMutation(op string) {
	if s.recorder != nil {
		s.recorder.FoodMutated(op)
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
