package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"swapi-server/internal/shared/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelDebug,
	}

	for input, want := range tests {
		assert.Equal(t, want, parseLogLevel(input), input)
	}
}

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	log := New(config.LoggingConfig{Level: "info", JSONFormat: true}, &buf)

	log.Debug("hidden")
	log.Info("visible", "component", "test")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "visible", entry["msg"])
	assert.Equal(t, "test", entry["component"])
}

func TestNewTextLogger(t *testing.T) {
	var buf bytes.Buffer
	log := New(config.LoggingConfig{Level: "warn"}, &buf)

	log.Info("hidden")
	log.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}
