// IGRMap - Renewable Gas Indicator Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/igrmap

/*
Package config provides centralized configuration management for IGRMap.

Both binaries (cmd/server and cmd/dashboard) load the same Config through
Koanf v2: built-in defaults, then an optional YAML file, then environment
variables. A .env.local file is loaded into the environment by main before
Load is called.

# Config File

The file is looked up from CONFIG_PATH, then config.yaml / config.yml in the
working directory, then /etc/igrmap/.

	server:
	  port: 8502
	database:
	  path: /data/igrmap.duckdb
	  import_path: /data/igrm-dep.json
	dashboard:
	  api_url: http://localhost:8502
	map:
	  show_unclassified: false

# Environment Variables

Data service:
  - HTTP_HOST, HTTP_PORT (default: 8502), HTTP_TIMEOUT
  - DUCKDB_PATH, DUCKDB_MAX_MEMORY, DUCKDB_THREADS
  - SEED_MOCK_DATA, IMPORT_PATH
  - API_DEFAULT_PAGE_SIZE (default: 10)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT (default: true), CORS_ORIGINS

Dashboard:
  - DASHBOARD_HOST, DASHBOARD_PORT (default: 8501)
  - DASHBOARD_API_URL or API_URL (default: http://localhost:8502)
  - DASHBOARD_REQUEST_TIMEOUT, DASHBOARD_REQUESTS_PER_SECOND, DASHBOARD_REQUEST_BURST
  - DASHBOARD_BREAKER_TIMEOUT, DASHBOARD_DEFAULT_PAGE_SIZE
  - MAP_CENTER_LAT, MAP_CENTER_LON, MAP_ZOOM, MAP_TILE_URL, MAP_SHOW_UNCLASSIFIED

Shared:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER
*/
package config
