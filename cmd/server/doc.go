// IGRMap - Renewable Gas Indicator Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/igrmap

/*
Command server runs the IGRMap data service.

# Startup

 1. .env.local (optional) then configuration via koanf
 2. Logging: zerolog with JSON or console output
 3. Database: DuckDB record store
 4. Initial data: import file or synthetic seed, only when the store is empty
 5. Supervisor tree with the record gauge job and the HTTP server

# Configuration

	HTTP_PORT=8502               # listen port
	DUCKDB_PATH=/data/igrm.duckdb
	IMPORT_PATH=/data/igrm.json  # JSON array of records
	SEED_MOCK_DATA=true          # synthetic departments for development
	LOG_LEVEL=info
	LOG_FORMAT=json

# Signal Handling

SIGINT and SIGTERM cancel the supervisor tree; the HTTP server drains for
up to 10s and the database is checkpointed on close.
*/
package main
