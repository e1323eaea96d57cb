package v1

import (
	"time"

	"items_service/internal/domain/items"
)

// CreateItemRequest is the payload for creating an item. Pointer fields
// distinguish absent fields from zero values so that missing required fields
// can be reported separately from rule violations.
type CreateItemRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Available   *bool    `json:"available"`
}

// Validate checks the create payload: required-field presence first, then the
// per-field rules shared with updates. The available flag defaults
// independently of the presence checks.
func (r *CreateItemRequest) Validate() error {
	if r.Name == nil {
		return &items.MissingFieldError{Field: "name"}
	}
	if r.Description == nil {
		return &items.MissingFieldError{Field: "description"}
	}
	if r.Price == nil {
		return &items.MissingFieldError{Field: "price"}
	}

	if err := items.ValidateField("name", *r.Name); err != nil {
		return err
	}
	if err := items.ValidateField("description", *r.Description); err != nil {
		return err
	}
	return items.ValidateField("price", *r.Price)
}

// ToDomain converts the payload to a domain item, applying the available
// default when the field was not supplied.
func (r *CreateItemRequest) ToDomain() *items.Item {
	available := true
	if r.Available != nil {
		available = *r.Available
	}

	return &items.Item{
		Name:        *r.Name,
		Description: *r.Description,
		Price:       *r.Price,
		Available:   available,
	}
}

// UpdateItemRequest is the payload for a partial update. Every field is
// optional; absent or null fields leave the stored values untouched.
type UpdateItemRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Available   *bool    `json:"available"`
}

// Validate applies the per-field create rules to every supplied field.
func (r *UpdateItemRequest) Validate() error {
	return r.ToDomain().Validate()
}

// ToDomain converts the payload to the domain update set.
func (r *UpdateItemRequest) ToDomain() *items.ItemUpdate {
	return &items.ItemUpdate{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Available:   r.Available,
	}
}

// ItemResponse is the wire representation of a stored item.
type ItemResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewItemResponse maps a domain item to its wire representation.
func NewItemResponse(item *items.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Available:   item.Available,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

// ItemPageResponse is one page of items plus its pagination metadata.
type ItemPageResponse struct {
	Items []ItemResponse `json:"items"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Pages int            `json:"pages"`
}

// NewItemPageResponse maps a domain page to its wire representation.
func NewItemPageResponse(page *items.ItemPage) ItemPageResponse {
	listResponse := make([]ItemResponse, 0, len(page.Items))
	for _, item := range page.Items {
		listResponse = append(listResponse, NewItemResponse(item))
	}

	return ItemPageResponse{
		Items: listResponse,
		Total: page.Total,
		Page:  page.Page,
		Pages: page.Pages,
	}
}

// ErrorResponse carries a human-readable failure message.
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse carries a human-readable status message.
type InfoResponse struct {
	Message string `json:"message"`
}
