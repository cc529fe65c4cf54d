package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, 60, cfg.Server.IdleTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.True(t, cfg.Server.RateLimit.Enabled)
	assert.Equal(t, "UTC", cfg.Validation.Timezone)

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "development", cfg.Observability.Environment)
	assert.Equal(t, "info", cfg.Observability.Logging.Level)
	assert.False(t, cfg.Observability.NewRelicEnabled())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("VBAPI_PRIMARY__ENV", "production")
	t.Setenv("VBAPI_SERVER__PORT", "9090")
	t.Setenv("VBAPI_SERVER__READ_TIMEOUT", "5")
	t.Setenv("VBAPI_SERVER__RATE_LIMIT__ENABLED", "false")
	t.Setenv("VBAPI_VALIDATION__TIMEZONE", "Etc/GMT-10")
	t.Setenv("VBAPI_OBSERVABILITY__LOGGING__LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Primary.Env)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.ReadTimeout)
	assert.False(t, cfg.Server.RateLimit.Enabled)
	assert.Equal(t, "Etc/GMT-10", cfg.Validation.Timezone)
	assert.Equal(t, "debug", cfg.Observability.Logging.Level)
	assert.Equal(t, "production", cfg.Observability.Environment)
	assert.True(t, cfg.Observability.IsProduction())
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "unknown timezone", key: "VBAPI_VALIDATION__TIMEZONE", val: "Mars/Olympus_Mons"},
		{name: "unknown log level", key: "VBAPI_OBSERVABILITY__LOGGING__LEVEL", val: "loud"},
		{name: "unknown log format", key: "VBAPI_OBSERVABILITY__LOGGING__FORMAT", val: "xml"},
		{name: "zero timeout", key: "VBAPI_SERVER__WRITE_TIMEOUT", val: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "server.read_timeout", envKey("VBAPI_SERVER__READ_TIMEOUT"))
	assert.Equal(t, "observability.new_relic.license_key", envKey("VBAPI_OBSERVABILITY__NEW_RELIC__LICENSE_KEY"))
}
