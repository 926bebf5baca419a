package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJSON_OverlaysNonEmptyValues(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"api_base_url":    "https://json.example.com/api",
		"session_backend": "redis",
		"redis_prefix":    "team:",
	})

	cfg := &Config{}
	cfg.LoadDefaults()
	require.NoError(t, parseJSON(cfg, path))

	assert.Equal(t, "https://json.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, "redis", cfg.SessionBackend)
	assert.Equal(t, "team:", cfg.RedisKeyPrefix)
	assert.Equal(t, "127.0.0.1:6379", cfg.RedisAddr, "absent keys keep earlier values")
}

func Test_parseJSON_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		require.Error(t, parseJSON(&Config{}, filepath.Join(t.TempDir(), "nope.json")))
	})

	t.Run("invalid JSON", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))
		require.Error(t, parseJSON(&Config{}, bad))
	})
}

func TestLoad_Precedence_JSONThenFlags(t *testing.T) {
	clearEnv(t)
	t.Setenv("BLOG_API_BASE_URL", "https://env.example.com/api")
	path := writeTempJSON(t, map[string]any{
		"api_base_url": "https://json.example.com/api",
		"log_level":    "debug",
	})

	cfg, err := Load([]string{"-c", path})
	require.NoError(t, err)
	assert.Equal(t, "https://json.example.com/api", cfg.APIBaseURL, "JSON beats environment")
	assert.Equal(t, "debug", cfg.LogLevel)

	cfg, err = Load([]string{"-c", path, "-a", "https://flag.example.com/api"})
	require.NoError(t, err)
	assert.Equal(t, "https://flag.example.com/api", cfg.APIBaseURL, "flags beat JSON")
}
