package domain

// FoodOrder selects the ordering of a food listing.
type FoodOrder int

const (
	// FoodOrderIDAsc lists foods by ascending identifier.
	FoodOrderIDAsc FoodOrder = iota
	// FoodOrderNewest lists foods by descending identifier. There is no
	// creation timestamp, so the identifier stands in for recency.
	FoodOrderNewest
)

// FoodFilter contains filtering/pagination parameters for food listings.
// Count and page queries are both built from the same filter.
type FoodFilter struct {
	TypeID *int64
	Order  FoodOrder
	Limit  int
	Offset int
}
