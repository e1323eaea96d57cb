package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// RestConfig holds the full configuration of the REST API process.
type RestConfig struct {
	Port            string           `mapstructure:"port" validate:"required"`
	RateLimitPerMin int              `mapstructure:"rate_limit_per_min" validate:"gte=0"`
	Logger          LoggerSettings   `mapstructure:"logger"`
	Database        DatabaseSettings `mapstructure:"database"`
}

// Validate checks the top-level fields and every nested settings struct.
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}

	if err := c.Logger.Validate(); err != nil {
		return err
	}

	if err := c.Database.Validate(); err != nil {
		return err
	}

	return nil
}

// InitializeRestConfig loads the REST API configuration from the given YAML
// file, with ITEMS_-prefixed environment variables taking precedence over
// file values (e.g. ITEMS_DATABASE_DSN overrides database.dsn).
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.SetEnvPrefix("ITEMS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("rate_limit_per_min", 0)
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("database.type", SqliteDbType)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	config := &RestConfig{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}
