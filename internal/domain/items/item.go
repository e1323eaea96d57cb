package items

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Item is the managed resource: a priced, named, describable record that is
// either available or not. ID and CreatedAt are assigned by the persistence
// layer on insert and never change afterwards.
type Item struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name" validate:"required,max=100"`
	Description string    `json:"description" validate:"required,max=300"`
	Price       float64   `json:"price" validate:"required,gt=0"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate checks the persisted-row invariants: non-empty bounded name and
// description, strictly positive price.
func (i *Item) Validate() error {
	validate := validator.New()

	err := validate.Struct(i)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			fieldErr := validationErrors[0]
			return &FieldValidationError{
				Field:  fieldName(fieldErr.Field()),
				Reason: fmt.Sprintf("failed rule %q", fieldErr.Tag()),
			}
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// String renders a compact diagnostic representation.
func (i *Item) String() string {
	return fmt.Sprintf("Item(id=%d, name=%s, price=%.2f)", i.ID, i.Name, i.Price)
}

// ItemUpdate carries the fields supplied in a partial update. A nil field was
// absent from the request and must be left untouched downstream.
type ItemUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Available   *bool    `json:"available,omitempty"`
}

// Empty reports whether no field was supplied.
func (u *ItemUpdate) Empty() bool {
	return u.Name == nil && u.Description == nil && u.Price == nil && u.Available == nil
}

// Fields returns the column/value pairs for the supplied fields only.
func (u *ItemUpdate) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if u.Name != nil {
		fields["name"] = *u.Name
	}
	if u.Description != nil {
		fields["description"] = *u.Description
	}
	if u.Price != nil {
		fields["price"] = *u.Price
	}
	if u.Available != nil {
		fields["available"] = *u.Available
	}
	return fields
}

// Validate applies the per-field create rules to every supplied field.
func (u *ItemUpdate) Validate() error {
	if u.Name != nil {
		if err := ValidateField("name", *u.Name); err != nil {
			return err
		}
	}
	if u.Description != nil {
		if err := ValidateField("description", *u.Description); err != nil {
			return err
		}
	}
	if u.Price != nil {
		if err := ValidateField("price", *u.Price); err != nil {
			return err
		}
	}
	return nil
}

// Per-field validation rules, shared between create and update payloads.
var fieldRules = map[string]string{
	"name":        "min=1,max=100",
	"description": "min=1,max=300",
	"price":       "gt=0",
}

// ValidateField checks a single field value against its rule. Unknown fields
// are accepted so callers only guard the constrained ones.
func ValidateField(field string, value interface{}) error {
	rule, ok := fieldRules[field]
	if !ok {
		return nil
	}

	validate := validator.New()
	if err := validate.Var(value, rule); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return &FieldValidationError{
				Field:  field,
				Reason: fmt.Sprintf("failed rule %q", validationErrors[0].Tag()),
			}
		}
		return fmt.Errorf("validation error: %w", err)
	}
	return nil
}

// fieldName maps the Go struct field name reported by the validator to the
// wire name used in requests and error messages.
func fieldName(structField string) string {
	switch structField {
	case "Name":
		return "name"
	case "Description":
		return "description"
	case "Price":
		return "price"
	case "Available":
		return "available"
	default:
		return structField
	}
}
