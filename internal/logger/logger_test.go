package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/deppfellow/vbapi/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_ProductionWritesJSON(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Environment = "production"

	var buf bytes.Buffer
	log := newLogger(cfg, nil, &buf)
	log.Info().Str("operation", "test").Msg("hello")
	log.Debug().Msg("dropped at info level")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, config.ServiceName, entry["service"])
	assert.Equal(t, "production", entry["environment"])
	assert.Equal(t, "test", entry["operation"])
}

func TestNewLogger_DevelopmentUsesConsole(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	var buf bytes.Buffer
	log := newLogger(cfg, nil, &buf)
	log.Debug().Msg("visible in development")

	assert.Contains(t, buf.String(), "visible in development")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestLoggerService_Disabled(t *testing.T) {
	var nilService *LoggerService
	assert.Nil(t, nilService.GetApplication())
	nilService.Shutdown()

	svc := NewLoggerService(config.DefaultObservabilityConfig())
	assert.Nil(t, svc.GetApplication())

	var buf bytes.Buffer
	log := WithTraceContext(newLogger(config.DefaultObservabilityConfig(), svc, &buf), nil)
	log.Info().Msg("no transaction")
	assert.NotContains(t, buf.String(), "trace.id")
}
