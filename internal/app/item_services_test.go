//go:build unit
// +build unit

package app

import (
	"context"
	"testing"
	"time"

	"items_service/internal/domain/items"
	"items_service/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupItemService(t *testing.T) (items.ItemService, *MockItemRepository) {
	t.Helper()

	mockRepo := new(MockItemRepository)
	service, err := NewItemService(mockRepo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	return service, mockRepo
}

func storedItem(id uint) *items.Item {
	return &items.Item{
		ID:          id,
		Name:        "Laptop",
		Description: "Laptop gamer",
		Price:       1500.50,
		Available:   true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func TestItemService_Create(t *testing.T) {
	service, mockRepo := setupItemService(t)

	item := &items.Item{
		Name:        "Laptop",
		Description: "Laptop gamer",
		Price:       1500.50,
		Available:   true,
	}

	mockRepo.On("Create", mock.Anything, item).Return(nil)

	created, err := service.Create(context.Background(), item)
	require.NoError(t, err)
	assert.Same(t, item, created)
	mockRepo.AssertExpectations(t)
}

func TestItemService_Create_InvalidPrice(t *testing.T) {
	service, mockRepo := setupItemService(t)

	item := &items.Item{
		Name:        "Item malo",
		Description: "Descripción",
		Price:       -10,
	}

	created, err := service.Create(context.Background(), item)
	assert.Nil(t, created)

	var fieldErr *items.FieldValidationError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "price", fieldErr.Field)

	mockRepo.AssertNotCalled(t, "Create")
}

func TestItemService_Get(t *testing.T) {
	service, mockRepo := setupItemService(t)

	mockRepo.On("GetByID", mock.Anything, uint(1)).Return(storedItem(1), nil)

	item, err := service.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, uint(1), item.ID)
	mockRepo.AssertExpectations(t)
}

func TestItemService_Get_NotFound(t *testing.T) {
	service, mockRepo := setupItemService(t)

	mockRepo.On("GetByID", mock.Anything, uint(9999)).
		Return(nil, &items.NotFoundError{ID: 9999})

	item, err := service.Get(context.Background(), 9999)
	assert.Nil(t, item)

	var notFoundErr *items.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, uint(9999), notFoundErr.ID)
}

func TestItemService_List_PaginationMetadata(t *testing.T) {
	tests := []struct {
		name          string
		total         int64
		query         items.ItemQuery
		expectedPage  int
		expectedPages int
		expectedOff   int
		expectedLimit int
	}{
		{"empty table", 0, items.ItemQuery{Page: 1, Size: 10}, 1, 0, 0, 10},
		{"single partial page", 3, items.ItemQuery{Page: 1, Size: 10}, 1, 1, 0, 10},
		{"exact multiple", 20, items.ItemQuery{Page: 2, Size: 10}, 2, 2, 10, 10},
		{"trailing short page", 25, items.ItemQuery{Page: 3, Size: 10}, 3, 3, 20, 10},
		{"non-positive page falls back", 25, items.ItemQuery{Page: 0, Size: 10}, 1, 3, 0, 10},
		{"non-positive size falls back", 25, items.ItemQuery{Page: 2, Size: 0}, 2, 3, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockRepo := setupItemService(t)

			mockRepo.On("Count", mock.Anything).Return(tt.total, nil)
			mockRepo.On("List", mock.Anything, tt.expectedOff, tt.expectedLimit).
				Return([]*items.Item{}, nil)

			page, err := service.List(context.Background(), &tt.query)
			require.NoError(t, err)

			assert.Equal(t, tt.total, page.Total)
			assert.Equal(t, tt.expectedPage, page.Page)
			assert.Equal(t, tt.expectedPages, page.Pages)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestItemService_Update_MergesSuppliedFields(t *testing.T) {
	service, mockRepo := setupItemService(t)

	price := 89.99
	available := false
	update := &items.ItemUpdate{Price: &price, Available: &available}

	refreshed := storedItem(1)
	refreshed.Price = price
	refreshed.Available = available

	mockRepo.On("GetByID", mock.Anything, uint(1)).Return(storedItem(1), nil)
	mockRepo.On("UpdateByID", mock.Anything, uint(1), update).Return(refreshed, nil)

	item, err := service.Update(context.Background(), 1, update)
	require.NoError(t, err)
	assert.Equal(t, 89.99, item.Price)
	assert.False(t, item.Available)
	assert.Equal(t, "Laptop", item.Name)
	mockRepo.AssertExpectations(t)
}

func TestItemService_Update_EmptySetIsNoOp(t *testing.T) {
	service, mockRepo := setupItemService(t)

	current := storedItem(1)
	mockRepo.On("GetByID", mock.Anything, uint(1)).Return(current, nil)

	item, err := service.Update(context.Background(), 1, &items.ItemUpdate{})
	require.NoError(t, err)
	assert.Same(t, current, item)

	mockRepo.AssertNotCalled(t, "UpdateByID")
}

func TestItemService_Update_NotFound(t *testing.T) {
	service, mockRepo := setupItemService(t)

	mockRepo.On("GetByID", mock.Anything, uint(9999)).
		Return(nil, &items.NotFoundError{ID: 9999})

	price := 100.0
	item, err := service.Update(context.Background(), 9999, &items.ItemUpdate{Price: &price})
	assert.Nil(t, item)

	var notFoundErr *items.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	mockRepo.AssertNotCalled(t, "UpdateByID")
}

func TestItemService_Update_InvalidSuppliedField(t *testing.T) {
	service, mockRepo := setupItemService(t)

	mockRepo.On("GetByID", mock.Anything, uint(1)).Return(storedItem(1), nil)

	price := -10.0
	item, err := service.Update(context.Background(), 1, &items.ItemUpdate{Price: &price})
	assert.Nil(t, item)

	var fieldErr *items.FieldValidationError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "price", fieldErr.Field)
	mockRepo.AssertNotCalled(t, "UpdateByID")
}

func TestItemService_Delete(t *testing.T) {
	service, mockRepo := setupItemService(t)

	mockRepo.On("GetByID", mock.Anything, uint(1)).Return(storedItem(1), nil)
	mockRepo.On("DeleteByID", mock.Anything, uint(1)).Return(nil)

	err := service.Delete(context.Background(), 1)
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestItemService_Delete_NotFound(t *testing.T) {
	service, mockRepo := setupItemService(t)

	mockRepo.On("GetByID", mock.Anything, uint(9999)).
		Return(nil, &items.NotFoundError{ID: 9999})

	err := service.Delete(context.Background(), 9999)

	var notFoundErr *items.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	mockRepo.AssertNotCalled(t, "DeleteByID")
}
