package config

import (
	"encoding/json"
	"os"
)

// parseJSON overlays cfg with the non-empty values found in the JSON file at path.
//
//	{
//	  "api_base_url": "https://blog.example.com/api",
//	  "session_backend": "sqlite",
//	  "session_dsn": "/home/me/.config/blogcli/session.db"
//	}
func parseJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var jc Config
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}

	overlay(&cfg.APIBaseURL, jc.APIBaseURL)
	overlay(&cfg.SessionBackend, jc.SessionBackend)
	overlay(&cfg.SessionDSN, jc.SessionDSN)
	overlay(&cfg.RedisAddr, jc.RedisAddr)
	overlay(&cfg.RedisKeyPrefix, jc.RedisKeyPrefix)
	overlay(&cfg.LogLevel, jc.LogLevel)
	overlay(&cfg.LogFormat, jc.LogFormat)
	return nil
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
