// Package foodtype implements the FoodType (category) repository using PostgreSQL.
package foodtype

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/foodcatalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/foodcatalog-backend/internal/domain"
)

const entity = "food_type"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new category repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func selectFoodTypes() sq.SelectBuilder {
	return psql.Select("type_id", "name_type", "parent_id").From("food_types")
}

// List returns every category ordered by id. The hierarchy is returned flat.
func (r *Repo) List(ctx context.Context) ([]domain.FoodType, error) {
	query, args, err := selectFoodTypes().OrderBy("type_id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list food types query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list food types: %w", err)
	}
	defer rows.Close()

	result := []domain.FoodType{}
	for rows.Next() {
		ft, err := scanFoodType(rows)
		if err != nil {
			return nil, fmt.Errorf("list food types: %w", err)
		}
		result = append(result, ft)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list food types: %w", err)
	}

	return result, nil
}

// GetByID returns a category by primary key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.FoodType, error) {
	query, args, err := selectFoodTypes().Where(sq.Eq{"type_id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get food type query: %w", err)
	}

	ft, err := scanFoodType(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}

	return &ft, nil
}

// GetByName returns the category whose name matches exactly (case-sensitive).
// Names are not unique; the lowest id wins.
// Returns domain.ErrNotFound if no category has that name.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.FoodType, error) {
	query, args, err := selectFoodTypes().
		Where(sq.Eq{"name_type": name}).
		OrderBy("type_id").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get food type by name query: %w", err)
	}

	ft, err := scanFoodType(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("food_type %q: %w", name, postgres.MapError(err, entity, 0))
	}

	return &ft, nil
}

// Create inserts a category. Only fixtures create categories; the HTTP API
// does not expose category mutations.
func (r *Repo) Create(ctx context.Context, name string, parentID *int64) (*domain.FoodType, error) {
	query, args, err := psql.Insert("food_types").
		Columns("name_type", "parent_id").
		Values(name, parentID).
		Suffix("RETURNING type_id, name_type, parent_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert food type query: %w", err)
	}

	ft, err := scanFoodType(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, 0)
	}

	return &ft, nil
}

func scanFoodType(row pgx.Row) (domain.FoodType, error) {
	var (
		ft       domain.FoodType
		parentID pgtype.Int8
	)
	if err := row.Scan(&ft.ID, &ft.Name, &parentID); err != nil {
		return domain.FoodType{}, err
	}
	if parentID.Valid {
		p := parentID.Int64
		ft.ParentID = &p
	}
	return ft, nil
}
