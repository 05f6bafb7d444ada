package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/foodcatalog-backend/internal/domain"
	"github.com/heartmarshall/foodcatalog-backend/internal/service/catalog"
)

const maxBodyBytes = 1 << 20

type foodService interface {
	ListFoods(ctx context.Context, input catalog.ListFoodsInput) (*catalog.FoodPage, error)
	ListNewest(ctx context.Context, input catalog.PageInput) (*catalog.FoodPage, error)
	GetFood(ctx context.Context, id int64) (*domain.Food, error)
	CreateFood(ctx context.Context, input catalog.FoodInput) (*domain.Food, error)
	UpdateFood(ctx context.Context, id int64, input catalog.FoodInput) (*domain.Food, error)
	DeleteFood(ctx context.Context, id int64) error
}

// FoodHandler serves the /api/foods endpoints.
type FoodHandler struct {
	svc foodService
	log *slog.Logger
}

// NewFoodHandler creates a FoodHandler.
func NewFoodHandler(svc foodService, logger *slog.Logger) *FoodHandler {
	return &FoodHandler{svc: svc, log: logger.With("handler", "food")}
}

type foodRequest struct {
	Name        string  `json:"Name"`
	Image1      *string `json:"Image1"`
	Image2      *string `json:"Image2"`
	Image3      *string `json:"Image3"`
	Description *string `json:"Description"`
	TypeID      int64   `json:"TypeId"`
	Price       *int64  `json:"Price"`
	ItemsLeft   int     `json:"Itemleft"`
}

func (req foodRequest) toInput() catalog.FoodInput {
	return catalog.FoodInput{
		Name:        req.Name,
		Image1:      req.Image1,
		Image2:      req.Image2,
		Image3:      req.Image3,
		Description: req.Description,
		TypeID:      req.TypeID,
		Price:       req.Price,
		ItemsLeft:   req.ItemsLeft,
	}
}

// List handles GET /api/foods?page=&pageSize=&category=.
func (h *FoodHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := parsePageInput(r)
	if err != nil {
		writeValidationError(w, err)
		return
	}

	input := catalog.ListFoodsInput{PageInput: page}
	if category := r.URL.Query().Get("category"); category != "" {
		input.Category = &category
	}

	result, err := h.svc.ListFoods(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrCategoryNotFound):
			writeError(w, http.StatusNotFound, "Food category not found")
		default:
			h.handleError(w, r, err, "", "Failed to fetch foods")
		}
		return
	}

	writeJSON(w, http.StatusOK, toPageResponse(result))
}

// Newest handles GET /api/foods/newest.
func (h *FoodHandler) Newest(w http.ResponseWriter, r *http.Request) {
	page, err := parsePageInput(r)
	if err != nil {
		writeValidationError(w, err)
		return
	}

	result, err := h.svc.ListNewest(r.Context(), page)
	if err != nil {
		h.handleError(w, r, err, "", "Failed to fetch newest foods")
		return
	}

	writeJSON(w, http.StatusOK, toPageResponse(result))
}

// Get handles GET /api/foods/{id}.
func (h *FoodHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.foodID(w, r)
	if !ok {
		return
	}

	food, err := h.svc.GetFood(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err, "Food item not found", "Failed to fetch food")
		return
	}

	writeJSON(w, http.StatusOK, dataResponse{Status: statusSuccess, Data: toFoodResponse(*food)})
}

// Create handles POST /api/foods.
func (h *FoodHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeFoodRequest(w, r)
	if !ok {
		return
	}

	food, err := h.svc.CreateFood(r.Context(), req.toInput())
	if err != nil {
		h.handleError(w, r, err, "", "Failed to add food")
		return
	}

	writeJSON(w, http.StatusOK, dataResponse{Status: statusSuccess, Data: toFoodResponse(*food)})
}

// Update handles PUT /api/foods/{id}. Every mutable field is replaced.
func (h *FoodHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.foodID(w, r)
	if !ok {
		return
	}
	req, ok := decodeFoodRequest(w, r)
	if !ok {
		return
	}

	food, err := h.svc.UpdateFood(r.Context(), id, req.toInput())
	if err != nil {
		h.handleError(w, r, err, "Food not found", "Failed to update food")
		return
	}

	writeJSON(w, http.StatusOK, dataResponse{Status: statusSuccess, Data: toFoodResponse(*food)})
}

// Delete handles DELETE /api/foods/{id}.
func (h *FoodHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.foodID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteFood(r.Context(), id); err != nil {
		h.handleError(w, r, err, "Food not found", "Failed to delete food")
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Status: statusSuccess, Message: "Food deleted successfully"})
}

func (h *FoodHandler) foodID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := pathID(r)
	switch {
	case errors.Is(err, errIDRequired):
		writeError(w, http.StatusBadRequest, "Food ID is required")
		return 0, false
	case err != nil:
		writeError(w, http.StatusBadRequest, "Invalid food ID")
		return 0, false
	}
	return id, true
}

func decodeFoodRequest(w http.ResponseWriter, r *http.Request) (foodRequest, bool) {
	var req foodRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return req, false
	}
	return req, true
}

// handleError maps service errors to responses. An empty notFound message
// means ErrNotFound is unexpected for the operation and is treated as a
// server failure.
func (h *FoodHandler) handleError(w http.ResponseWriter, r *http.Request, err error, notFound, failure string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeValidationError(w, err)
	case notFound != "" && errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, notFound)
	default:
		h.log.ErrorContext(r.Context(), failure, slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, failure)
	}
}
