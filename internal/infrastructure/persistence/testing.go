//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"

	"items_service/internal/domain/items"
	"items_service/internal/infrastructure/persistence/models"
	"items_service/internal/pkg/config"
	"items_service/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds the test database and repository
type TestContext struct {
	DB       *gorm.DB
	ItemRepo items.ItemRepository
}

// SetupTestDB initializes a test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	err = db.AutoMigrate(&models.ItemModel{})
	require.NoError(t, err, "Failed to migrate schema")

	logger := testutil.SetupTestLogger(t)

	itemRepo, err := NewGormItemRepository(db, logger)
	require.NoError(t, err, "Failed to create item repository")

	return &TestContext{
		DB:       db,
		ItemRepo: itemRepo,
	}
}

// CreateTestItem creates an item with default values
func CreateTestItem(t *testing.T, name string) *items.Item {
	t.Helper()

	if name == "" {
		name = "test-item"
	}

	return &items.Item{
		Name:        name,
		Description: "test item description",
		Price:       19.99,
		Available:   true,
	}
}

// CreateTestItemWithOptions creates an item with custom options
func CreateTestItemWithOptions(t *testing.T, name, description string, price float64, available bool) *items.Item {
	t.Helper()

	return &items.Item{
		Name:        name,
		Description: description,
		Price:       price,
		Available:   available,
	}
}
