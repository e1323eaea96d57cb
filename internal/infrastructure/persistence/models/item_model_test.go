//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"items_service/internal/domain/items"

	"github.com/stretchr/testify/assert"
)

func TestItemModel_ToDomain(t *testing.T) {
	now := time.Now()

	itemModel := &ItemModel{
		ID:          42,
		Name:        "Laptop",
		Description: "Laptop gamer",
		Price:       1500.50,
		Available:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	item := itemModel.ToDomain()

	assert.Equal(t, itemModel.ID, item.ID)
	assert.Equal(t, itemModel.Name, item.Name)
	assert.Equal(t, itemModel.Description, item.Description)
	assert.Equal(t, itemModel.Price, item.Price)
	assert.Equal(t, itemModel.Available, item.Available)
	assert.Equal(t, itemModel.CreatedAt, item.CreatedAt)
	assert.Equal(t, itemModel.UpdatedAt, item.UpdatedAt)
}

func TestItemModel_FromDomain(t *testing.T) {
	now := time.Now()

	item := &items.Item{
		ID:          42,
		Name:        "Laptop",
		Description: "Laptop gamer",
		Price:       1500.50,
		Available:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	itemModel := &ItemModel{}
	itemModel.FromDomain(item)

	assert.Equal(t, item.ID, itemModel.ID)
	assert.Equal(t, item.Name, itemModel.Name)
	assert.Equal(t, item.Description, itemModel.Description)
	assert.Equal(t, item.Price, itemModel.Price)
	assert.Equal(t, item.Available, itemModel.Available)
	assert.Equal(t, item.CreatedAt, itemModel.CreatedAt)
	assert.Equal(t, item.UpdatedAt, itemModel.UpdatedAt)
}
