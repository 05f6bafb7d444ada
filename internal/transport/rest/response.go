package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/heartmarshall/foodcatalog-backend/internal/domain"
	"github.com/heartmarshall/foodcatalog-backend/internal/service/catalog"
)

const statusSuccess = "success"

type dataResponse struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

type messageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type pageResponse struct {
	Status     string         `json:"status"`
	Data       []foodResponse `json:"data"`
	Pagination pagination     `json:"pagination"`
}

type pagination struct {
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
	TotalFoods  int `json:"totalFoods"`
	TotalPages  int `json:"totalPages"`
}

type errorResponse struct {
	Error  string          `json:"error"`
	Fields []fieldResponse `json:"fields,omitempty"`
}

type fieldResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// foodResponse keeps the column-style keys existing clients read.
type foodResponse struct {
	FoodID       int64            `json:"FoodId"`
	Name         string           `json:"Name"`
	Image1       *string          `json:"Image1"`
	Image2       *string          `json:"Image2"`
	Image3       *string          `json:"Image3"`
	Description  *string          `json:"Description"`
	TypeID       int64            `json:"TypeId"`
	Rating       string           `json:"Rating"`
	NumberRating string           `json:"NumberRating"`
	Price        int64            `json:"Price"`
	ItemsLeft    int              `json:"Itemleft"`
	FoodType     foodTypeNameOnly `json:"FoodType"`
}

type foodTypeNameOnly struct {
	NameType string `json:"NameType"`
}

type foodTypeResponse struct {
	TypeID   int64  `json:"TypeId"`
	NameType string `json:"NameType"`
	ParentID *int64 `json:"ParentId"`
}

func toFoodResponse(f domain.Food) foodResponse {
	return foodResponse{
		FoodID:       f.ID,
		Name:         f.Name,
		Image1:       f.Image1,
		Image2:       f.Image2,
		Image3:       f.Image3,
		Description:  f.Description,
		TypeID:       f.TypeID,
		Rating:       f.Rating.StringFixed(2),
		NumberRating: f.NumberRating.StringFixed(2),
		Price:        f.Price,
		ItemsLeft:    f.ItemsLeft,
		FoodType:     foodTypeNameOnly{NameType: f.TypeName},
	}
}

func toPageResponse(p *catalog.FoodPage) pageResponse {
	data := make([]foodResponse, 0, len(p.Foods))
	for _, f := range p.Foods {
		data = append(data, toFoodResponse(f))
	}
	return pageResponse{
		Status: statusSuccess,
		Data:   data,
		Pagination: pagination{
			CurrentPage: p.Page,
			PageSize:    p.PageSize,
			TotalFoods:  p.TotalFoods,
			TotalPages:  p.TotalPages,
		},
	}
}

func toFoodTypeResponse(t domain.FoodType) foodTypeResponse {
	return foodTypeResponse{TypeID: t.ID, NameType: t.Name, ParentID: t.ParentID}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeValidationError reports every field failure of a domain.ValidationError.
func writeValidationError(w http.ResponseWriter, err error) {
	resp := errorResponse{Error: err.Error()}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		for _, fe := range verr.Errors {
			resp.Fields = append(resp.Fields, fieldResponse{Field: fe.Field, Message: fe.Message})
		}
	}
	writeJSON(w, http.StatusBadRequest, resp)
}
