package catalog

import "github.com/heartmarshall/foodcatalog-backend/internal/domain"

// FoodPage is one page of a food listing.
type FoodPage struct {
	Foods      []domain.Food
	Page       int
	PageSize   int
	TotalFoods int
	TotalPages int
}
