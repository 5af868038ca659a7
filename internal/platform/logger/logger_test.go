package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_JSON(t *testing.T) {
	var out bytes.Buffer
	log := New(Config{Level: "info", Format: "json", Output: &out})

	log.Debug("hidden")
	log.Info("request served", zap.Int("status", 200))
	require.NoError(t, log.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "request served", entry["msg"])
	assert.EqualValues(t, 200, entry["status"])
	assert.Contains(t, entry, "timestamp")
}

func TestNew_ConsoleHighlight(t *testing.T) {
	var out bytes.Buffer
	log := New(Config{Level: "debug", Format: "console", EnableColor: true, Output: &out})

	log.Debug("hello", zap.String("model", "gpt-4"))
	require.NoError(t, log.Sync())

	line := out.String()
	assert.Contains(t, line, "hello")
	assert.Contains(t, line, ansiGreen+`"gpt-4"`+ansiReset)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("bogus"))
}

func TestShouldEnableColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, shouldEnableColor())
}

func TestFromSettings(t *testing.T) {
	t.Setenv("LOG_COLOR", "false")
	cfg := FromSettings("WARN", "Console")
	assert.Equal(t, Config{Level: "warn", Format: "console"}, cfg)
}
