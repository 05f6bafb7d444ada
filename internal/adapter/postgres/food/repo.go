// Package food implements the Food repository using PostgreSQL.
// Every read joins food_types so a Food always carries its category name.
package food

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/foodcatalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/foodcatalog-backend/internal/domain"
)

const entity = "food"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// foodColumns is the projection shared by every read. Numeric columns are
// read as text so the exact stored scale survives into decimal.Decimal.
var foodColumns = []string{
	"f.food_id",
	"f.name",
	"f.image1",
	"f.image2",
	"f.image3",
	"f.description",
	"f.type_id",
	"t.name_type",
	"f.rating::text",
	"f.number_rating::text",
	"f.price",
	"f.items_left",
}

// Repo provides food persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new food repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func selectFoods() sq.SelectBuilder {
	return psql.Select(foodColumns...).
		From("foods f").
		Join("food_types t ON t.type_id = f.type_id")
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Find returns one page of foods matching the filter.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) Find(ctx context.Context, filter domain.FoodFilter) ([]domain.Food, error) {
	f := normalize(filter)

	query, args, err := applyFilter(selectFoods(), f).
		OrderBy(orderClause(f)).
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find foods query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find foods: %w", err)
	}
	defer rows.Close()

	foods, err := scanFoods(rows)
	if err != nil {
		return nil, fmt.Errorf("find foods: %w", err)
	}

	return foods, nil
}

// Count returns the number of foods matching the filter, ignoring paging.
func (r *Repo) Count(ctx context.Context, filter domain.FoodFilter) (int, error) {
	f := normalize(filter)

	query, args, err := applyFilter(
		psql.Select("count(*)").
			From("foods f").
			Join("food_types t ON t.type_id = f.type_id"),
		f,
	).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count foods query: %w", err)
	}

	var count int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count foods: %w", err)
	}

	return count, nil
}

// GetByID returns a food with its category name.
// Returns domain.ErrNotFound if the food does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Food, error) {
	query, args, err := selectFoods().Where(sq.Eq{"f.food_id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get food query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)

	food, err := scanFood(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}

	return &food, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new food and returns it re-read with its category name.
// Rating and NumberRating take their column defaults.
func (r *Repo) Create(ctx context.Context, fields domain.FoodFields) (*domain.Food, error) {
	query, args, err := psql.Insert("foods").
		Columns("name", "image1", "image2", "image3", "description", "type_id", "price", "items_left").
		Values(fields.Name, fields.Image1, fields.Image2, fields.Image3, fields.Description,
			fields.TypeID, fields.Price, fields.ItemsLeft).
		Suffix("RETURNING food_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert food query: %w", err)
	}

	var id int64
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return nil, postgres.MapError(err, entity, 0)
	}

	return r.GetByID(ctx, id)
}

// Update replaces every mutable field of a food. A nil optional field clears
// the stored value.
// Returns domain.ErrNotFound if the food does not exist.
func (r *Repo) Update(ctx context.Context, id int64, fields domain.FoodFields) (*domain.Food, error) {
	query, args, err := psql.Update("foods").
		SetMap(map[string]any{
			"name":        fields.Name,
			"image1":      fields.Image1,
			"image2":      fields.Image2,
			"image3":      fields.Image3,
			"description": fields.Description,
			"type_id":     fields.TypeID,
			"price":       fields.Price,
			"items_left":  fields.ItemsLeft,
		}).
		Where(sq.Eq{"food_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update food query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}

	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
	}

	return r.GetByID(ctx, id)
}

// Delete removes a food.
// Returns domain.ErrNotFound if the food does not exist.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	query, args, err := psql.Delete("foods").Where(sq.Eq{"food_id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete food query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanFoods(rows pgx.Rows) ([]domain.Food, error) {
	result := []domain.Food{}
	for rows.Next() {
		f, err := scanFood(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// scanFood scans one row of foodColumns. pgx.Rows satisfies pgx.Row.
func scanFood(row pgx.Row) (domain.Food, error) {
	var (
		f            domain.Food
		image1       pgtype.Text
		image2       pgtype.Text
		image3       pgtype.Text
		description  pgtype.Text
		rating       string
		numberRating string
	)

	if err := row.Scan(
		&f.ID, &f.Name, &image1, &image2, &image3, &description,
		&f.TypeID, &f.TypeName, &rating, &numberRating, &f.Price, &f.ItemsLeft,
	); err != nil {
		return domain.Food{}, err
	}

	var err error
	if f.Rating, err = decimal.NewFromString(rating); err != nil {
		return domain.Food{}, fmt.Errorf("parse rating %q: %w", rating, err)
	}
	if f.NumberRating, err = decimal.NewFromString(numberRating); err != nil {
		return domain.Food{}, fmt.Errorf("parse number_rating %q: %w", numberRating, err)
	}

	f.Image1 = textPtr(image1)
	f.Image2 = textPtr(image2)
	f.Image3 = textPtr(image3)
	f.Description = textPtr(description)

	return f, nil
}

func textPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}
