package catalog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/foodcatalog-backend/internal/domain"
)

var validate = newValidator()

// newValidator returns a validator that reports fields by their `field` tag,
// which carries the wire name clients know.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("field"); name != "" {
			return name
		}
		return fld.Name
	})
	return v
}

// validateStruct runs tag validation and collects every failure into a
// domain.ValidationError.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate input: %w", err)
	}

	fieldErrs := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fieldErrs = append(fieldErrs, domain.FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return domain.NewValidationErrors(fieldErrs)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "max":
		return "max " + fe.Param() + " characters"
	default:
		return "invalid (" + fe.Tag() + ")"
	}
}

// PageInput holds optional paging parameters. Nil means "use the default".
type PageInput struct {
	Page     *int `field:"page"     validate:"omitempty,gte=1"`
	PageSize *int `field:"pageSize" validate:"omitempty,gte=1"`
}

// Validate checks all fields and collects all errors.
func (i PageInput) Validate() error {
	return validateStruct(i)
}

// ListFoodsInput holds the parameters for a category-filtered listing.
type ListFoodsInput struct {
	PageInput
	// Category is an exact category name. Nil or empty means no filter.
	Category *string
}

// FoodInput holds the mutable fields of a food for create and update.
// Updates are full replacements: omitted optional fields are cleared.
type FoodInput struct {
	Name        string  `field:"Name"        validate:"required,max=255"`
	Image1      *string `field:"Image1"      validate:"omitempty,max=1024"`
	Image2      *string `field:"Image2"      validate:"omitempty,max=1024"`
	Image3      *string `field:"Image3"      validate:"omitempty,max=1024"`
	Description *string `field:"Description" validate:"omitempty,max=4000"`
	TypeID      int64   `field:"TypeId"      validate:"required,gt=0"`
	Price       *int64  `field:"Price"       validate:"required,gte=0"`
	ItemsLeft   int     `field:"Itemleft"    validate:"gte=0"`
}

// normalized trims text fields. Blank optional text becomes nil.
func (i FoodInput) normalized() FoodInput {
	i.Name = strings.TrimSpace(i.Name)
	i.Image1 = trimOrNil(i.Image1)
	i.Image2 = trimOrNil(i.Image2)
	i.Image3 = trimOrNil(i.Image3)
	i.Description = trimOrNil(i.Description)
	return i
}

// Validate checks all fields and collects all errors.
func (i FoodInput) Validate() error {
	return validateStruct(i.normalized())
}

func (i FoodInput) fields() domain.FoodFields {
	n := i.normalized()
	f := domain.FoodFields{
		Name:        n.Name,
		Image1:      n.Image1,
		Image2:      n.Image2,
		Image3:      n.Image3,
		Description: n.Description,
		TypeID:      n.TypeID,
		ItemsLeft:   n.ItemsLeft,
	}
	if n.Price != nil {
		f.Price = *n.Price
	}
	return f
}

func validateID(field string, id int64) error {
	if id <= 0 {
		return domain.NewValidationError(field, "must be a positive integer")
	}
	return nil
}
