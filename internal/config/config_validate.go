// IGRMap - Renewable Gas Indicator Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/igrmap

package config

import (
	"fmt"
	"strings"
)

// Validate checks that the configuration is usable by both binaries
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateDatabase(); err != nil {
		return err
	}
	if err := c.validateAPI(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	if err := c.validateDashboard(); err != nil {
		return err
	}
	if err := c.validateMap(); err != nil {
		return err
	}
	return c.validateLogging()
}

func validatePort(port int, name string) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("%s must be between 1 and 65535, got %d", name, port)
	}
	return nil
}

// validateServer validates the data service listener
func (c *Config) validateServer() error {
	if err := validatePort(c.Server.Port, "HTTP_PORT"); err != nil {
		return err
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %v", c.Server.Timeout)
	}
	switch c.Server.Environment {
	case "development", "staging", "production":
		return nil
	default:
		return fmt.Errorf("ENVIRONMENT must be development, staging or production, got %q", c.Server.Environment)
	}
}

// validateDatabase validates DuckDB settings
func (c *Config) validateDatabase() error {
	if c.Database.Path == "" {
		return fmt.Errorf("DUCKDB_PATH is required")
	}
	if c.Database.MaxMemory == "" {
		return fmt.Errorf("DUCKDB_MAX_MEMORY is required")
	}
	if c.Database.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must be >= 0, got %d", c.Database.Threads)
	}
	return nil
}

// validateAPI validates the pagination default
func (c *Config) validateAPI() error {
	if c.API.DefaultPageSize < 0 {
		return fmt.Errorf("API_DEFAULT_PAGE_SIZE must be >= 0, got %d", c.API.DefaultPageSize)
	}
	return nil
}

// validateSecurity validates rate limiting settings
func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be >= 1, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %v", c.Security.RateLimitWindow)
	}
	return nil
}

// validateDashboard validates the dashboard listener and its data service client
func (c *Config) validateDashboard() error {
	if err := validatePort(c.Dashboard.Port, "DASHBOARD_PORT"); err != nil {
		return err
	}
	if err := validateHTTPURL(c.Dashboard.APIURL, "DASHBOARD_API_URL"); err != nil {
		return fmt.Errorf("DASHBOARD_API_URL is invalid: %w", err)
	}
	if c.Dashboard.RequestTimeout <= 0 {
		return fmt.Errorf("DASHBOARD_REQUEST_TIMEOUT must be positive, got %v", c.Dashboard.RequestTimeout)
	}
	if c.Dashboard.RequestsPerSecond <= 0 {
		return fmt.Errorf("DASHBOARD_REQUESTS_PER_SECOND must be positive, got %v", c.Dashboard.RequestsPerSecond)
	}
	if c.Dashboard.RequestBurst < 1 {
		return fmt.Errorf("DASHBOARD_REQUEST_BURST must be >= 1, got %d", c.Dashboard.RequestBurst)
	}
	if c.Dashboard.DefaultPageSize < 1 {
		return fmt.Errorf("DASHBOARD_DEFAULT_PAGE_SIZE must be >= 1, got %d", c.Dashboard.DefaultPageSize)
	}
	return nil
}

// validateMap validates the map view settings
func (c *Config) validateMap() error {
	if c.Map.CenterLat < -90 || c.Map.CenterLat > 90 {
		return fmt.Errorf("MAP_CENTER_LAT must be between -90 and 90, got %v", c.Map.CenterLat)
	}
	if c.Map.CenterLon < -180 || c.Map.CenterLon > 180 {
		return fmt.Errorf("MAP_CENTER_LON must be between -180 and 180, got %v", c.Map.CenterLon)
	}
	if c.Map.Zoom < 0 || c.Map.Zoom > 19 {
		return fmt.Errorf("MAP_ZOOM must be between 0 and 19, got %d", c.Map.Zoom)
	}
	if c.Map.TileURL == "" {
		return fmt.Errorf("MAP_TILE_URL is required")
	}
	return nil
}

// validateLogging validates the logging level and format
func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic", "disabled":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
		return nil
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
}
