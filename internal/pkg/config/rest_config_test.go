//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitializeRestConfig(t *testing.T) {
	path := writeConfigFile(t, `
port: "9090"
rate_limit_per_min: 120
logger:
  log_level: debug
  log_type: console
database:
  type: sqlite
  dsn: ":memory:"
`)

	config, err := InitializeRestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", config.Port)
	assert.Equal(t, 120, config.RateLimitPerMin)
	assert.Equal(t, LogLevelDebug, config.Logger.LogLevel)
	assert.Equal(t, SqliteDbType, config.Database.Type)
	assert.Equal(t, ":memory:", config.Database.DSN)
}

func TestInitializeRestConfig_Defaults(t *testing.T) {
	path := writeConfigFile(t, `
logger:
  log_level: info
  log_type: console
`)

	config, err := InitializeRestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", config.Port)
	assert.Equal(t, 0, config.RateLimitPerMin)
	assert.Equal(t, SqliteDbType, config.Database.Type)
}

func TestInitializeRestConfig_MissingFile(t *testing.T) {
	_, err := InitializeRestConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestInitializeRestConfig_InvalidSettings(t *testing.T) {
	path := writeConfigFile(t, `
logger:
  log_level: info
  log_type: carrier-pigeon
`)

	_, err := InitializeRestConfig(path)
	require.Error(t, err)
}
