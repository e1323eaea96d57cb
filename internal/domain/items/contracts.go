package items

import (
	"context"
)

// ItemService defines the use-case operations on the item resource.
type ItemService interface {
	// Create validates and stores a new item.
	// It returns the stored record with its assigned id and timestamps.
	Create(ctx context.Context, item *Item) (*Item, error)

	// Get retrieves a single item by its id.
	Get(ctx context.Context, id uint) (*Item, error)

	// List retrieves one page of items ordered by id ascending, together
	// with the total row count and the number of pages.
	List(ctx context.Context, query *ItemQuery) (*ItemPage, error)

	// Update applies the supplied fields to an existing item and returns
	// the refreshed record. Absent fields keep their current values.
	Update(ctx context.Context, id uint, update *ItemUpdate) (*Item, error)

	// Delete removes an item permanently.
	Delete(ctx context.Context, id uint) error
}

// ItemRepository defines the persistence gateway for item rows. Each call is
// one atomic, durable storage operation; transactional discipline beyond that
// belongs to the storage engine.
type ItemRepository interface {
	// Create inserts a row and backfills the assigned id and timestamps
	// on the given item.
	Create(ctx context.Context, item *Item) error

	// GetByID fetches a row by id.
	GetByID(ctx context.Context, id uint) (*Item, error)

	// UpdateByID applies only the supplied fields to the row, refreshes
	// its updated_at column and returns the refreshed record.
	UpdateByID(ctx context.Context, id uint, update *ItemUpdate) (*Item, error)

	// DeleteByID removes a row permanently.
	DeleteByID(ctx context.Context, id uint) error

	// Count returns the total number of stored rows.
	Count(ctx context.Context) (int64, error)

	// List fetches limit rows starting at offset, ordered by id ascending.
	List(ctx context.Context, offset, limit int) ([]*Item, error)
}
