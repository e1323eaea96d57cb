package app

import (
	"context"

	"items_service/internal/domain/items"
	"items_service/internal/pkg/logger"
)

// itemService implements the ItemService interface on top of an ItemRepository
type itemService struct {
	itemRepo items.ItemRepository
	logger   logger.Logger
}

// NewItemService creates a new itemService instance
func NewItemService(itemRepo items.ItemRepository, logger logger.Logger) (items.ItemService, error) {
	return &itemService{
		itemRepo: itemRepo,
		logger:   logger,
	}, nil
}

// Create validates and stores a new item.
// It returns the stored record with its assigned id and timestamps.
func (s *itemService) Create(ctx context.Context, item *items.Item) (*items.Item, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info("Created ", item)
	return item, nil
}

// Get retrieves a single item by its id.
func (s *itemService) Get(ctx context.Context, id uint) (*items.Item, error) {
	return s.itemRepo.GetByID(ctx, id)
}

// List retrieves one page of items ordered by id ascending, together with the
// total row count and the number of pages. Non-positive page or size values
// fall back to the defaults.
func (s *itemService) List(ctx context.Context, query *items.ItemQuery) (*items.ItemPage, error) {
	page := query.Page
	if page < 1 {
		page = items.DefaultPage
	}
	size := query.Size
	if size < 1 {
		size = items.DefaultSize
	}

	total, err := s.itemRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	// Integer ceiling; 0 pages for an empty table.
	pages := int((total + int64(size) - 1) / int64(size))

	offset := (page - 1) * size
	records, err := s.itemRepo.List(ctx, offset, size)
	if err != nil {
		return nil, err
	}

	return &items.ItemPage{
		Items: records,
		Total: total,
		Page:  page,
		Pages: pages,
	}, nil
}

// Update applies the supplied fields to an existing item and returns the
// refreshed record. An empty update set returns the current record without
// touching the row, so updated_at keeps its previous value.
func (s *itemService) Update(ctx context.Context, id uint, update *items.ItemUpdate) (*items.Item, error) {
	current, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Empty() {
		return current, nil
	}

	if err := update.Validate(); err != nil {
		return nil, err
	}

	return s.itemRepo.UpdateByID(ctx, id, update)
}

// Delete removes an item permanently.
func (s *itemService) Delete(ctx context.Context, id uint) error {
	if _, err := s.itemRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return s.itemRepo.DeleteByID(ctx, id)
}
