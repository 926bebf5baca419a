// Package config loads runtime configuration for the blog CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env file in the working directory, if present (godotenv).
//  3. BLOG_* environment variables (caarlos0/env).
//  4. Optional JSON file selected with -c or -config.
//  5. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   backend API base URL (BLOG_API_BASE_URL)
//	-s string   session backend: sqlite, redis, memory (BLOG_SESSION_BACKEND)
//	-d string   SQLite session database path (BLOG_SESSION_DSN)
//	-l string   log level (BLOG_LOG_LEVEL)
//
// Redis settings and the log format are available through the environment
// and the JSON file only.
package config
