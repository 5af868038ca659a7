package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test from an empty directory so no stray config.yaml or
// .env is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 13673, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.True(t, cfg.Server.EnableCORS)
	assert.True(t, cfg.Server.EnableLogging)
	assert.Equal(t, "sk-mock-openai-api-key-12345", cfg.Auth.APIKey)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 1536, cfg.Embeddings.FallbackDimensions)
	assert.Equal(t, 3072, cfg.Embeddings.Dimensions["text-embedding-3-large"])
	assert.NotEmpty(t, cfg.Pools.Completion)
	assert.NotEmpty(t, cfg.Pools.Chat)
	assert.NotEmpty(t, cfg.Models)

	assert.Equal(t, "0.0.0.0:13673", cfg.BindAddress())
	assert.Equal(t, "http://localhost:13673", cfg.BaseURL())
}

func TestLoadConfig_Env(t *testing.T) {
	isolate(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_ENV", "test")
	t.Setenv("AUTH_API_KEY", "sk-from-env")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "5s")

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "test", cfg.Server.Env)
	assert.Equal(t, "sk-from-env", cfg.Auth.APIKey)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	isolate(t)
	t.Setenv("SERVER_PORT", "9090")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--port", "7070", "--host", "127.0.0.1", "--enable-cors=false"}))

	cfg, err := LoadConfig(fs)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.False(t, cfg.Server.EnableCORS)
	assert.Equal(t, "http://127.0.0.1:7070", cfg.BaseURL())
}

func TestLoadConfig_File(t *testing.T) {
	dir := isolate(t)

	content := `
server:
  port: 8181
auth:
  api_key: sk-file-key
models:
  - id: mock-model
    owned_by: tests
embeddings:
  dimensions:
    mock-embed: 8
pools:
  chat: ["only reply"]
`
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--config", path}))

	cfg, err := LoadConfig(fs)
	require.NoError(t, err)

	assert.Equal(t, 8181, cfg.Server.Port)
	assert.Equal(t, "sk-file-key", cfg.Auth.APIKey)
	require.Len(t, cfg.Models, 1)
	assert.Equal(t, "mock-model", cfg.Models[0].ID)
	assert.Equal(t, 8, cfg.Embeddings.Dimensions["mock-embed"])
	assert.Equal(t, []string{"only reply"}, cfg.Pools.Chat)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	isolate(t)
	t.Setenv("CONFIG_FILE", "does-not-exist.yaml")

	_, err := LoadConfig(nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	isolate(t)

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }},
		{"key without prefix", func(c *Config) { c.Auth.APIKey = "mock-key" }},
		{"empty key", func(c *Config) { c.Auth.APIKey = "" }},
		{"zero timeout", func(c *Config) { c.Server.RequestTimeout = 0 }},
		{"empty chat pool", func(c *Config) { c.Pools.Chat = nil }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
		{"bad dimensions", func(c *Config) { c.Embeddings.Dimensions = map[string]int{"m": 0} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(nil)
			require.NoError(t, err)

			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
