// IGRMap - Renewable Gas Indicator Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/igrmap

// Package database provides the DuckDB-backed record store behind the data
// service.
//
// # Overview
//
// The store holds a single collection of department-month IGRM records.
// Records are written once, at startup, from an export file or from the
// synthetic seed, and are read-only afterwards.
//
// # Architecture
//
//   - database.go: Lifecycle (open, initialize, checkpoint on close)
//   - database_schema.go: Table, sequence and index creation
//   - database_connection.go: Pool configuration and context timeouts
//   - records.go: The three read operations and batched inserts
//   - import.go: JSON export loading and initial data selection
//   - seed.go: Synthetic departments for development
//
// # Read Operations
//
//   - GetAllData: every record without its identifier
//   - GetPaginatedData: stored documents with skip/limit
//   - FilterData: identifier, date, department and indicator only
//
// All reads are ordered by insertion so pages are stable.
//
// # Usage
//
//	db, err := database.New(&cfg.Database)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	if _, err := db.LoadInitialData(ctx, &cfg.Database); err != nil &&
//	    !errors.Is(err, database.ErrAlreadyLoaded) {
//	    return err
//	}
//
//	page, err := db.GetPaginatedData(ctx, 0, 10)
//
// # Thread Safety
//
// DB is safe for concurrent use; database/sql handles connection pooling.
package database
