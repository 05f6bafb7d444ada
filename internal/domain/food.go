package domain

import "github.com/shopspring/decimal"

// FoodType is a menu category. ParentID links categories into a tree that is
// exposed to clients but never traversed by catalog queries.
type FoodType struct {
	ID       int64
	Name     string
	ParentID *int64
}

// Food is a catalog item joined with the name of its category.
type Food struct {
	ID          int64
	Name        string
	Image1      *string
	Image2      *string
	Image3      *string
	Description *string
	TypeID      int64
	// TypeName is read-only, filled from food_types on every read.
	TypeName string
	// Rating and NumberRating are accumulated outside the catalog and are
	// never written by create or update.
	Rating       decimal.Decimal
	NumberRating decimal.Decimal
	Price        int64
	ItemsLeft    int
}

// FoodFields is the mutable part of a Food. Updates replace every field,
// so a nil optional field clears the stored value.
type FoodFields struct {
	Name        string
	Image1      *string
	Image2      *string
	Image3      *string
	Description *string
	TypeID      int64
	Price       int64
	ItemsLeft   int
}

// Fields returns the mutable fields of f.
func (f Food) Fields() FoodFields {
	return FoodFields{
		Name:        f.Name,
		Image1:      f.Image1,
		Image2:      f.Image2,
		Image3:      f.Image3,
		Description: f.Description,
		TypeID:      f.TypeID,
		Price:       f.Price,
		ItemsLeft:   f.ItemsLeft,
	}
}
