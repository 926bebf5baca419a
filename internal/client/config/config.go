package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/blogcli/internal/filex"
)

// AppName names the per-user state directory.
const AppName = "blogcli"

// Session backends.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

const (
	DefaultAPIBaseURL = "http://localhost:8080/api"
	defaultRedisAddr  = "127.0.0.1:6379"
	defaultRedisPref  = "blogcli:"
)

// Config holds runtime settings for the blog CLI.
type Config struct {
	// APIBaseURL is prepended to every relative endpoint.
	APIBaseURL string `env:"BLOG_API_BASE_URL" json:"api_base_url"`

	// SessionBackend selects where the credential is persisted: sqlite, redis or memory.
	SessionBackend string `env:"BLOG_SESSION_BACKEND" json:"session_backend"`
	// SessionDSN is the SQLite database path.
	SessionDSN string `env:"BLOG_SESSION_DSN" json:"session_dsn"`

	RedisAddr      string `env:"BLOG_REDIS_ADDR" json:"redis_addr"`
	RedisKeyPrefix string `env:"BLOG_REDIS_PREFIX" json:"redis_prefix"`

	LogLevel  string `env:"BLOG_LOG_LEVEL" json:"log_level"`
	LogFormat string `env:"BLOG_LOG_FORMAT" json:"log_format"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = DefaultAPIBaseURL
	c.SessionBackend = BackendSQLite
	c.SessionDSN = filepath.Join(filex.UserConfigDir(AppName), "session.db")
	c.RedisAddr = defaultRedisAddr
	c.RedisKeyPrefix = defaultRedisPref
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// Sanitize normalizes loaded values and replaces unknown enum values with
// their defaults.
func (c *Config) Sanitize() {
	c.APIBaseURL = strings.TrimRight(strings.TrimSpace(c.APIBaseURL), "/")
	if c.APIBaseURL == "" {
		c.APIBaseURL = DefaultAPIBaseURL
	}

	c.SessionBackend = strings.ToLower(strings.TrimSpace(c.SessionBackend))
	switch c.SessionBackend {
	case BackendSQLite, BackendRedis, BackendMemory:
	default:
		c.SessionBackend = BackendSQLite
	}

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		c.LogLevel = "info"
	}

	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	if c.LogFormat != "json" {
		c.LogFormat = "text"
	}
}

// Load builds a Config from defaults, an optional .env file, the process
// environment, an optional JSON file (-c/-config) and finally the flags in
// args. Later sources take precedence over earlier ones.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	fv, err := parseFlags(args)
	if err != nil {
		return nil, err
	}

	if fv.configFile != "" {
		if err := parseJSON(cfg, fv.configFile); err != nil {
			return nil, fmt.Errorf("config file %s: %w", fv.configFile, err)
		}
	}

	fv.apply(cfg)
	cfg.Sanitize()
	return cfg, nil
}
