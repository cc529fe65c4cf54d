// Package config manages environment variables.
//
// It reads variables from the `.env` file, loads them into structured Go
// types (struct), and validates that required values are present so they
// can be reused across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Layer them on top of a set of defaults.
//   - Map env vars into a structured Go config (structs).
//   - Validate values so the app fails fast on bad/missing config.
package config

import (
	"fmt"
	"strings"
	"time"
	// Timezone names resolve even on images without /usr/share/zoneinfo.
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it gets loaded into the
	// process env before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Key idea in this file:
	- Defaults are loaded first (confmap provider).
	- Env vars are read using a prefix: VBAPI_
	- Keys are normalized (lowercased, prefix removed)
	- A double underscore marks nesting, so
	  VBAPI_SERVER__PORT -> server.port -> Config.Server.Port
*/

// EnvPrefix is the prefix every configuration variable must carry.
const EnvPrefix = "VBAPI_"

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf should map values from.
// The `validate:"..."` tags are enforced by go-playground/validator.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Validation    ValidationConfig     `koanf:"validation" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are stored as seconds.
type ServerConfig struct {
	Port               string          `koanf:"port" validate:"required"`
	ReadTimeout        int             `koanf:"read_timeout" validate:"required,gt=0"`
	WriteTimeout       int             `koanf:"write_timeout" validate:"required,gt=0"`
	IdleTimeout        int             `koanf:"idle_timeout" validate:"required,gt=0"`
	CORSAllowedOrigins []string        `koanf:"cors_allowed_origins" validate:"required"`
	RateLimit          RateLimitConfig `koanf:"rate_limit"`
}

// RateLimitConfig controls the per-client request limiter.
type RateLimitConfig struct {
	Enabled           bool    `koanf:"enabled"`
	RequestsPerSecond float64 `koanf:"requests_per_second" validate:"gte=0"`
	Burst             int     `koanf:"burst" validate:"gte=0"`
}

// ValidationConfig holds settings used by the record validators.
type ValidationConfig struct {
	// Timezone is the IANA location whose calendar date counts as "today"
	// for date-of-birth rules.
	Timezone string `koanf:"timezone" validate:"required"`
}

// Location resolves Timezone.
func (v ValidationConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(v.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid validation timezone %q: %w", v.Timezone, err)
	}
	return loc, nil
}

// defaults returns the baseline configuration, keyed with koanf dot notation.
func defaults() map[string]interface{} {
	obs := DefaultObservabilityConfig()

	return map[string]interface{}{
		"primary.env": "development",

		"server.port":                           "8080",
		"server.read_timeout":                   10,
		"server.write_timeout":                  10,
		"server.idle_timeout":                   60,
		"server.cors_allowed_origins":           []string{"*"},
		"server.rate_limit.enabled":             true,
		"server.rate_limit.requests_per_second": 20.0,
		"server.rate_limit.burst":               40,

		"validation.timezone": "UTC",

		"observability.logging.level":                         obs.Logging.Level,
		"observability.logging.format":                        obs.Logging.Format,
		"observability.new_relic.license_key":                 obs.NewRelic.LicenseKey,
		"observability.new_relic.app_log_forwarding_enabled":  obs.NewRelic.AppLogForwardingEnabled,
		"observability.new_relic.distributed_tracing_enabled": obs.NewRelic.DistributedTracingEnabled,
		"observability.new_relic.debug_logging":               obs.NewRelic.DebugLogging,
	}
}

// envKey maps VBAPI_SERVER__READ_TIMEOUT to server.read_timeout.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// LoadConfig loads configuration from defaults and environment variables,
// unmarshals it into Config, validates it and returns the resulting config.
//
// Behavior summary:
//   - Loads defaults
//   - Loads env vars with prefix VBAPI_ on top of them
//   - Unmarshals into Config
//   - Validates struct tags, observability rules and the validation timezone
//   - Forces the observability service name and environment
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("could not load default config: %w", err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// It's a pointer field, so nil means "missing".
	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	if _, err := mainConfig.Validation.Location(); err != nil {
		return nil, err
	}

	return mainConfig, nil
}
