// Sociolens - Social Media Sentiment Analytics
// Copyright 2026 Aris V. (arisvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arisvel/sociolens

package config

import (
	"time"
)

// Config holds all application configuration loaded from environment variables and config files.
// Provides centralized configuration management for the dataset loader, HTTP server, API
// limits, response cache, security, and logging.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all optional settings
//  2. Config File: Optional YAML config file (config.yaml) for persistent settings
//  3. Environment Variables: Override any setting via environment variables
//
// Example - Load configuration from environment:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	// cfg.Dataset.Path, cfg.Server.Port, etc. are now populated
//
// Thread Safety:
// Config is immutable after Load() and safe for concurrent read access from multiple goroutines.
type Config struct {
	Dataset  DatasetConfig  `koanf:"dataset"`
	Server   ServerConfig   `koanf:"server"`
	API      APIConfig      `koanf:"api"`
	Cache    CacheConfig    `koanf:"cache"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
	Metrics  MetricsConfig  `koanf:"metrics"`
}

// DatasetConfig holds the source dataset settings.
//
// Environment Variables:
//   - DATASET_PATH: Path to the sentiment CSV file (default: data/sentimentdataset.csv)
//   - DATASET_DELIMITER: Field delimiter, single character (default: ",")
type DatasetConfig struct {
	// Path is the CSV file read once at startup. The file is never written.
	Path string `koanf:"path"`

	// Delimiter is the field separator. Must be exactly one character.
	Delimiter string `koanf:"delimiter"`
}

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - HTTP_PORT: Listen port (default: 8080)
//   - HTTP_HOST: Listen host (default: 0.0.0.0)
//   - HTTP_TIMEOUT: Read/write timeout (default: 30s)
//   - ENVIRONMENT: "development", "staging", "production" (default: development)
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"`
}

// APIConfig holds API response limit settings.
//
// Environment Variables:
//   - API_DEFAULT_TOKEN_LIMIT: Number of tokens returned by the token frequency
//     endpoint when no limit query parameter is given; 0 returns the full list
//     (default: 0)
//   - API_MAX_TOKEN_LIMIT: Largest accepted limit query parameter (default: 10000)
type APIConfig struct {
	DefaultTokenLimit int `koanf:"default_token_limit"`
	MaxTokenLimit     int `koanf:"max_token_limit"`
}

// CacheConfig holds analytics response cache settings.
//
// Environment Variables:
//   - CACHE_ENABLED: Enable the in-memory response cache (default: true)
//   - CACHE_TTL: Entry lifetime (default: 5m)
//   - CACHE_CLEANUP_INTERVAL: Expired-entry sweep interval (default: 10m)
type CacheConfig struct {
	Enabled         bool          `koanf:"enabled"`
	TTL             time.Duration `koanf:"ttl"`
	CleanupInterval time.Duration `koanf:"cleanup_interval"`
}

// SecurityConfig holds rate limiting and CORS settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// JSON is recommended for production (structured, machine-parseable).
	// Console is human-readable for development.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Adds slight performance overhead.
	// Default: false
	Caller bool `koanf:"caller"`
}

// MetricsConfig holds Prometheus metrics settings.
//
// Environment Variables:
//   - METRICS_ENABLED: Expose the /metrics endpoint (default: true)
type MetricsConfig struct {
	Enabled bool `koanf:"enabled"`
}

// IsProduction returns true when the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// IsDevelopment returns true when the server runs in development mode.
// Defaults to true when ENVIRONMENT is unset.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development" || c.Server.Environment == ""
}

// Load reads configuration with layered loading support:
//  1. Built-in defaults
//  2. Config file (config.yaml if exists, or path specified in CONFIG_PATH env var)
//  3. Environment variables
//
// This function uses Koanf v2 for flexible, layered configuration management.
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
