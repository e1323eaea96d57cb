package items

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Default pagination bounds.
const (
	DefaultPage = 1
	DefaultSize = 10
	MaxPageSize = 100
)

// ItemQuery selects one page of the item set, ordered by id ascending.
// Page numbering is 1-based.
type ItemQuery struct {
	Page int `validate:"gte=1"`
	Size int `validate:"gte=1,lte=100"`
}

// NewItemQuery creates a query with the default page and size.
func NewItemQuery() *ItemQuery {
	return &ItemQuery{
		Page: DefaultPage,
		Size: DefaultSize,
	}
}

// Validate checks the pagination bounds.
func (q *ItemQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			fieldErr := validationErrors[0]
			field := "page"
			if fieldErr.Field() == "Size" {
				field = "size"
			}
			return &FieldValidationError{
				Field:  field,
				Reason: fmt.Sprintf("failed rule %q", fieldErr.Tag()),
			}
		}
		return fmt.Errorf("validation error: %w", err)
	}
	return nil
}

// Offset returns the row offset for the selected page.
func (q *ItemQuery) Offset() int {
	return (q.Page - 1) * q.Size
}

// ItemPage is one page of results together with its pagination metadata.
type ItemPage struct {
	Items []*Item
	Total int64
	Page  int
	Pages int
}
