package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/foodcatalog-backend/internal/domain"
)

// UniqueName returns prefix with a short random suffix. Category names are
// the public filter key, so tests sharing one database must not collide.
func UniqueName(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

// SeedFoodType inserts a category and returns it.
func SeedFoodType(t *testing.T, pool *pgxpool.Pool, name string, parentID *int64) domain.FoodType {
	t.Helper()

	ft := domain.FoodType{Name: name, ParentID: parentID}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO food_types (name_type, parent_id) VALUES ($1, $2) RETURNING type_id`,
		name, parentID,
	).Scan(&ft.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedFoodType %q: %v", name, err)
	}

	return ft
}

// SeedFood inserts a food with the given name and category, a price of 1000
// and 5 items left. The returned value includes the category name.
func SeedFood(t *testing.T, pool *pgxpool.Pool, ft domain.FoodType, name string) domain.Food {
	t.Helper()

	desc := "Seeded " + name
	food := domain.Food{
		Name:         name,
		Description:  &desc,
		TypeID:       ft.ID,
		TypeName:     ft.Name,
		Rating:       decimal.Zero,
		NumberRating: decimal.Zero,
		Price:        1000,
		ItemsLeft:    5,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO foods (name, description, type_id, price, items_left)
		 VALUES ($1, $2, $3, $4, $5) RETURNING food_id`,
		food.Name, food.Description, food.TypeID, food.Price, food.ItemsLeft,
	).Scan(&food.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedFood %q: %v", name, err)
	}

	return food
}
