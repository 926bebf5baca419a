package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"BLOG_API_BASE_URL", "BLOG_SESSION_BACKEND", "BLOG_SESSION_DSN",
		"BLOG_REDIS_ADDR", "BLOG_REDIS_PREFIX", "BLOG_LOG_LEVEL", "BLOG_LOG_FORMAT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8080/api", c.APIBaseURL)
	assert.Equal(t, BackendSQLite, c.SessionBackend)
	assert.Equal(t, filepath.Join("/xdg", "blogcli", "session.db"), c.SessionDSN)
	assert.Equal(t, "127.0.0.1:6379", c.RedisAddr)
	assert.Equal(t, "blogcli:", c.RedisKeyPrefix)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "text", c.LogFormat)
}

func TestLoad_DefaultsWithoutSources(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(nil)
	require.NoError(t, err)
	require.NotNil(t, cfg, "Load must not return nil")

	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, BackendSQLite, cfg.SessionBackend)
}

func TestLoad_EnvironmentOverridesDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("BLOG_API_BASE_URL", "https://blog.example.com/api/")
	t.Setenv("BLOG_SESSION_BACKEND", "Redis")
	t.Setenv("BLOG_REDIS_ADDR", "redis:6379")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "https://blog.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, BackendRedis, cfg.SessionBackend)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
}

func TestLoad_FlagsOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("BLOG_API_BASE_URL", "https://env.example.com/api")

	cfg, err := Load([]string{"-a", "https://flag.example.com/api", "-s", "memory", "-l", "debug"})
	require.NoError(t, err)

	assert.Equal(t, "https://flag.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, BackendMemory, cfg.SessionBackend)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_UnknownFlagFails(t *testing.T) {
	clearEnv(t)

	_, err := Load([]string{"-zzz"})
	require.Error(t, err)
}

func TestSanitize(t *testing.T) {
	c := Config{
		APIBaseURL:     "  ",
		SessionBackend: "postgres",
		LogLevel:       "LOUD",
		LogFormat:      "JSON",
	}
	c.Sanitize()

	assert.Equal(t, DefaultAPIBaseURL, c.APIBaseURL)
	assert.Equal(t, BackendSQLite, c.SessionBackend)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "json", c.LogFormat)
}
