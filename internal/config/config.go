// Package config manages environment variables.
//
// It reads variables from the process environment (and an optional `.env`
// file), decodes them into structured Go types and validates that required
// values are present so the rest of the application can rely on them.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into the Config struct tree.
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide defaults for optional blocks (observability, rate limiting).
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists it is loaded into the
	// process environment before anything below reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read with the HOMEHERO_ prefix. The prefix is stripped, the
	rest is lowercased and a double underscore marks nesting:

		HOMEHERO_SERVER__PORT          -> server.port
		HOMEHERO_DATABASE__URI         -> database.uri
		HOMEHERO_OBSERVABILITY__LOGGING__LEVEL -> observability.logging.level

	Single underscores survive, so keys like `read_timeout` keep working.
*/

// EnvPrefix is the prefix every configuration variable must carry.
const EnvPrefix = "HOMEHERO_"

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional; defaults are injected
// when it is missing.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis" validate:"required"`
	Auth          AuthConfig           `koanf:"auth"`
	Integration   IntegrationConfig    `koanf:"integration"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are expressed in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`

	// RateLimit is the sustained number of requests per second allowed per
	// client IP. Zero disables limiting.
	RateLimit float64 `koanf:"rate_limit" validate:"gte=0"`
}

// DatabaseConfig contains MongoDB connection parameters and pool tuning.
//
// URI is a standard connection string (mongodb:// or mongodb+srv://).
// Name selects the database that holds the services, bookings and users
// collections.
type DatabaseConfig struct {
	URI            string `koanf:"uri" validate:"required"`
	Name           string `koanf:"name" validate:"required"`
	ConnectTimeout int    `koanf:"connect_timeout" validate:"required"`
	MaxPoolSize    uint64 `koanf:"max_pool_size"`
	MinPoolSize    uint64 `koanf:"min_pool_size"`

	// EnsureIndexes provisions the indexes the repositories rely on at
	// startup. Safe to leave on: index creation is idempotent.
	EnsureIndexes bool `koanf:"ensure_indexes"`
}

// RedisConfig contains Redis connection details.
// Address is typically "host:port".
type RedisConfig struct {
	Address string `koanf:"address" validate:"required"`
}

// AuthConfig stores authentication-related secrets.
//
// SecretKey is the Clerk secret. When empty, bearer tokens are not
// verified and callers are identified only by request-supplied uid/email.
type AuthConfig struct {
	SecretKey string `koanf:"secret_key"`
}

// IntegrationConfig holds third-party API credentials.
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key"`
	EmailFrom    string `koanf:"email_from"`
}

// LoadConfig loads configuration from environment variables, unmarshals it
// into Config, validates it and applies defaults.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load initial env variables: %w", err)
	}

	mainConfig := &Config{}

	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	if err := validator.New().Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name is fixed; environment always follows primary.env so logs
	// and traces agree.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if mainConfig.Integration.EmailFrom == "" {
		mainConfig.Integration.EmailFrom = "HomeHero <onboarding@resend.dev>"
	}

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
