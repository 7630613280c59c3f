// IGRMap - Renewable Gas Indicator Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/igrmap

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration for both the data service and
// the dashboard. The two binaries load the same structure and read the
// sections they need.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for every setting
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any mapped setting
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	API       APIConfig       `koanf:"api"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
	Dashboard DashboardConfig `koanf:"dashboard"`
	Map       MapConfig       `koanf:"map"`
}

// ServerConfig holds data service HTTP settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // "development", "staging", "production"
}

// Addr returns the listen address of the data service.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig holds DuckDB settings for the record store
type DatabaseConfig struct {
	Path                   string `koanf:"path"`
	MaxMemory              string `koanf:"max_memory"`
	Threads                int    `koanf:"threads"`                  // 0 = use NumCPU
	PreserveInsertionOrder bool   `koanf:"preserve_insertion_order"` // keeps unordered scans in load order
	SeedMockData           bool   `koanf:"seed_mock_data"`           // seed synthetic departments when the store is empty
	ImportPath             string `koanf:"import_path"`              // JSON array of records loaded when the store is empty
}

// APIConfig holds pagination defaults for /api/data/paginated
type APIConfig struct {
	DefaultPageSize int `koanf:"default_page_size"` // limit when the query has none; 0 returns every row
}

// SecurityConfig holds rate limiting and CORS settings. Rate limiting is
// disabled by default.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// DashboardConfig holds the dashboard process settings, including how it
// reaches the data service.
//
// Environment Variables:
//   - DASHBOARD_PORT: listen port (default: 8501)
//   - DASHBOARD_API_URL: data service base URL (default: http://localhost:8502)
//   - DASHBOARD_REQUEST_TIMEOUT: per-request timeout (default: 30s)
//   - DASHBOARD_REQUESTS_PER_SECOND: outbound request rate (default: 10)
type DashboardConfig struct {
	Port              int           `koanf:"port"`
	Host              string        `koanf:"host"`
	APIURL            string        `koanf:"api_url"`
	RequestTimeout    time.Duration `koanf:"request_timeout"`
	RequestsPerSecond float64       `koanf:"requests_per_second"`
	RequestBurst      int           `koanf:"request_burst"`
	BreakerTimeout    time.Duration `koanf:"breaker_timeout"` // time the breaker stays open before probing again
	DefaultPageSize   int           `koanf:"default_page_size"`
}

// Addr returns the listen address of the dashboard.
func (d DashboardConfig) Addr() string {
	return fmt.Sprintf("%s:%d", d.Host, d.Port)
}

// MapConfig holds the choropleth map settings.
type MapConfig struct {
	CenterLat float64 `koanf:"center_lat"`
	CenterLon float64 `koanf:"center_lon"`
	Zoom      int     `koanf:"zoom"`
	TileURL   string  `koanf:"tile_url"`

	// ShowUnclassified paints records with a missing value and records
	// outside every interval with the two reserved legend colours instead
	// of leaving them off the map.
	ShowUnclassified bool `koanf:"show_unclassified"`
}

// Load reads configuration from defaults, an optional config file and
// environment variables, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// Default returns the built-in configuration, before the file and
// environment layers are applied.
func Default() *Config {
	return defaultConfig()
}
