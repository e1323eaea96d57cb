//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"items_service/internal/domain/items"
	"items_service/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemPsqlRepository_CreateAndGet(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)

	item := CreateTestItem(t, "Laptop")
	require.NoError(t, ctx.ItemRepo.Create(context.Background(), item))

	fetchedItem, err := ctx.ItemRepo.GetByID(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, fetchedItem.ID)
	assert.Equal(t, "Laptop", fetchedItem.Name)
}

func TestItemPsqlRepository_UpdateAndDelete(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)

	item := CreateTestItem(t, "Monitor")
	require.NoError(t, ctx.ItemRepo.Create(context.Background(), item))

	price := 300.0
	updatedItem, err := ctx.ItemRepo.UpdateByID(context.Background(), item.ID, &items.ItemUpdate{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 300.0, updatedItem.Price)

	require.NoError(t, ctx.ItemRepo.DeleteByID(context.Background(), item.ID))

	_, err = ctx.ItemRepo.GetByID(context.Background(), item.ID)
	var notFoundErr *items.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}
