package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.AI.BaseURL)
	assert.Equal(t, "OPENROUTER_API_KEY", cfg.AI.APIKeyEnv)
	assert.Equal(t, 2, cfg.Search.MaxContextDocs)
	assert.Equal(t, 3, cfg.Search.MaxDisplayDocs)
	assert.Equal(t, "0.0.0.0:8000", cfg.GetServerAddr())
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 9001
  bind_address: 127.0.0.1
ai:
  model: google/gemma-2-9b-it:free
  max_tokens: 512
search:
  max_display_docs: 5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9001, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1:9001", cfg.GetServerAddr())
	assert.Equal(t, "google/gemma-2-9b-it:free", cfg.AI.Model)
	assert.Equal(t, 512, cfg.AI.MaxTokens)
	assert.Equal(t, 5, cfg.Search.MaxDisplayDocs)
	// Untouched sections keep defaults
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.AI.BaseURL)
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "7777")
	t.Setenv("AI_MODEL", "microsoft/phi-3-mini-128k-instruct:free")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 7777, cfg.Server.Port)
	assert.Equal(t, "microsoft/phi-3-mini-128k-instruct:free", cfg.AI.Model)
}

func TestAPIKeyFromEnv(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "sk-test")

	cfg := DefaultConfig()
	assert.Equal(t, "sk-test", cfg.APIKey())
}
