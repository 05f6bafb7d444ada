package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/foodcatalog-backend/internal/domain"
)

// Result summarizes one seeding run.
type Result struct {
	CategoriesCreated int
	CategoriesSkipped int
	FoodsCreated      int
	Duration          time.Duration
}

// Pipeline inserts fixtures in a single transaction: either every row lands
// or none does.
type Pipeline struct {
	log        *slog.Logger
	categories CategoryRepo
	foods      FoodRepo
	tx         TxRunner
	cfg        Config
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, categories CategoryRepo, foods FoodRepo, tx TxRunner, cfg Config) *Pipeline {
	return &Pipeline{
		log:        log,
		categories: categories,
		foods:      foods,
		tx:         tx,
		cfg:        cfg,
	}
}

// Run seeds fx. Categories that already exist by name are reused, so
// re-running the same file only adds foods. In dry-run mode nothing is
// written and the counts describe what would have been inserted.
func (p *Pipeline) Run(ctx context.Context, fx *Fixtures) (Result, error) {
	start := time.Now()

	if p.cfg.DryRun {
		res := Result{CategoriesCreated: len(fx.Categories), FoodsCreated: len(fx.Foods), Duration: time.Since(start)}
		p.log.Info("dry run, nothing written",
			slog.Int("categories", res.CategoriesCreated),
			slog.Int("foods", res.FoodsCreated),
		)
		return res, nil
	}

	var res Result
	err := p.tx.RunInTx(ctx, func(txCtx context.Context) error {
		res = Result{}
		ids := make(map[string]int64, len(fx.Categories))

		for _, c := range fx.Categories {
			name := strings.TrimSpace(c.Name)

			existing, err := p.categories.GetByName(txCtx, name)
			switch {
			case err == nil:
				ids[name] = existing.ID
				res.CategoriesSkipped++
				continue
			case !errors.Is(err, domain.ErrNotFound):
				return fmt.Errorf("lookup category %q: %w", name, err)
			}

			var parentID *int64
			if parent := strings.TrimSpace(c.Parent); parent != "" {
				id, err := p.resolveCategory(txCtx, ids, parent)
				if err != nil {
					return fmt.Errorf("category %q: parent: %w", name, err)
				}
				parentID = &id
			}

			created, err := p.categories.Create(txCtx, name, parentID)
			if err != nil {
				return fmt.Errorf("create category %q: %w", name, err)
			}
			ids[name] = created.ID
			res.CategoriesCreated++
		}

		for _, f := range fx.Foods {
			typeID, err := p.resolveCategory(txCtx, ids, strings.TrimSpace(f.Category))
			if err != nil {
				return fmt.Errorf("food %q: %w", f.Name, err)
			}

			_, err = p.foods.Create(txCtx, domain.FoodFields{
				Name:        strings.TrimSpace(f.Name),
				Image1:      f.Image1,
				Image2:      f.Image2,
				Image3:      f.Image3,
				Description: f.Description,
				TypeID:      typeID,
				Price:       f.Price,
				ItemsLeft:   f.ItemsLeft,
			})
			if err != nil {
				return fmt.Errorf("create food %q: %w", f.Name, err)
			}
			res.FoodsCreated++
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	res.Duration = time.Since(start)
	p.log.Info("seeding completed",
		slog.Int("categories_created", res.CategoriesCreated),
		slog.Int("categories_skipped", res.CategoriesSkipped),
		slog.Int("foods_created", res.FoodsCreated),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}

// resolveCategory looks name up among categories seen in this run first,
// then in the database.
func (p *Pipeline) resolveCategory(ctx context.Context, ids map[string]int64, name string) (int64, error) {
	if id, ok := ids[name]; ok {
		return id, nil
	}
	ft, err := p.categories.GetByName(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("category %q: %w", name, err)
	}
	ids[name] = ft.ID
	return ft.ID, nil
}
