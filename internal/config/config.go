// Package config provides configuration loading and validation for the
// JD score service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// MaxJobTextChars is the default cap on job-description length. The
// handler rejects longer postings before the pipeline runs.
const MaxJobTextChars = 10000

// Config represents service configuration loadable from a JSON file.
// All fields are optional; missing values use defaults or come from
// environment variables.
type Config struct {
	Port         int    `json:"port,omitempty"`           // HTTP listen port
	DatabaseURL  string `json:"database_url,omitempty"`   // PostgreSQL connection URL; empty disables caching
	CacheEnabled bool   `json:"cache_enabled,omitempty"`  // Serve repeated postings from the analyses table
	MaxJobChars  int    `json:"max_job_chars,omitempty"`  // Job-description length limit
	FetchTimeout int    `json:"fetch_timeout,omitempty"`  // Job-posting fetch timeout, seconds
}

// Load reads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in 0-65535")
	}
	if c.MaxJobChars < 0 {
		return fmt.Errorf("config error: 'max_job_chars' must be non-negative")
	}
	if c.FetchTimeout < 0 {
		return fmt.Errorf("config error: 'fetch_timeout' must be non-negative")
	}
	if c.CacheEnabled && c.DatabaseURL == "" && os.Getenv("DATABASE_URL") == "" {
		return fmt.Errorf("config error: 'cache_enabled' requires 'database_url' or DATABASE_URL")
	}
	return nil
}

// WithDefaults returns a copy with zero-valued fields filled in.
func (c *Config) WithDefaults() Config {
	result := *c

	if result.Port == 0 {
		result.Port = 8080
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if result.MaxJobChars == 0 {
		result.MaxJobChars = MaxJobTextChars
	}
	if result.FetchTimeout == 0 {
		result.FetchTimeout = 30
	}

	return result
}
