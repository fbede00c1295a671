package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"api_key": "test-key",
		"concurrency": 3,
		"port": 8080,
		"model_default": "gemini-2.5-flash",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, 3, cfg.Concurrency)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "gemini-2.5-flash", cfg.ModelDefault)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")
	t.Setenv(EnvModelDefault, "env-model")

	cfg := &Config{}
	cfg.FromEnv()

	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "env-model", cfg.ModelDefault)
}

func TestFromEnv_ExplicitValueWins(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")

	cfg := &Config{APIKey: "file-key"}
	cfg.FromEnv()

	assert.Equal(t, "file-key", cfg.APIKey)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, (&Config{}).Validate())
	assert.NoError(t, (&Config{Port: 8080, Concurrency: 2, TimeoutSeconds: 120}).Validate())
	assert.Error(t, (&Config{Concurrency: -1}).Validate())
	assert.Error(t, (&Config{Port: -1}).Validate())
	assert.Error(t, (&Config{Port: 70000}).Validate())
	assert.Error(t, (&Config{TimeoutSeconds: -5}).Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{APIKey: "explicit"}
	defaults := Config{
		APIKey:         "default",
		Port:           8000,
		Concurrency:    2,
		TimeoutSeconds: 300,
		AllowedOrigins: []string{"http://localhost:3000"},
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "explicit", merged.APIKey)
	assert.Equal(t, 8000, merged.Port)
	assert.Equal(t, 2, merged.Concurrency)
	assert.Equal(t, 300, merged.TimeoutSeconds)
	assert.Equal(t, []string{"http://localhost:3000"}, merged.AllowedOrigins)
}
