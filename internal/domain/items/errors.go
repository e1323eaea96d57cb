package items

import "fmt"

// NotFoundError reports that no row exists for the requested id.
type NotFoundError struct {
	ID uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("item with id %d not found", e.ID)
}

// MissingFieldError reports a create request that lacks a required field.
// It is a client-request error, distinct from a field-rule violation.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("required field %q is missing", e.Field)
}

// FieldValidationError reports a supplied field that breaks its range,
// length or type rule.
type FieldValidationError struct {
	Field  string
	Reason string
}

func (e *FieldValidationError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}
