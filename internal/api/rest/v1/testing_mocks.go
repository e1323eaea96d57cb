//go:build unit
// +build unit

package v1

import (
	"context"

	"items_service/internal/domain/items"

	"github.com/stretchr/testify/mock"
)

// MockItemService is a mock implementation of ItemService
type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) Create(ctx context.Context, item *items.Item) (*items.Item, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*items.Item), args.Error(1)
}

func (m *MockItemService) Get(ctx context.Context, id uint) (*items.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*items.Item), args.Error(1)
}

func (m *MockItemService) List(ctx context.Context, query *items.ItemQuery) (*items.ItemPage, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*items.ItemPage), args.Error(1)
}

func (m *MockItemService) Update(ctx context.Context, id uint, update *items.ItemUpdate) (*items.Item, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*items.Item), args.Error(1)
}

func (m *MockItemService) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
