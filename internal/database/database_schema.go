// IGRMap - Renewable Gas Indicator Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/igrmap

/*
database_schema.go - Database Schema Management

Tables:
  - igrm_records: one row per department and month. seq records insertion
    order and is the sort key of every read, so pagination is stable across
    requests. id is the store-assigned identifier served as "_id".

Geometry:
The department boundary is kept verbatim as GeoJSON text in geom and is
returned to clients unchanged. The centroid is split into two DOUBLE
columns; both are NULL when the record has no centroid.

Index Strategy:
  - (code_officiel_departement, date) for lookups by department and month.
    The pair is unique in practice but deliberately not constrained.
*/

//nolint:staticcheck // File documentation, not package doc
package database

import (
	"context"
	"fmt"
	"time"
)

// recordsTable is the single collection served by the data service.
const recordsTable = "igrm_records"

// schemaContext returns a context with timeout for schema operations
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// createTables creates the record table and its sequence
func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, query := range getTableCreationQueries() {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %s: %w", query, err)
		}
	}

	return nil
}

// getTableCreationQueries returns the table creation SQL statements
func getTableCreationQueries() []string {
	return []string{
		`CREATE SEQUENCE IF NOT EXISTS igrm_records_seq START 1;`,

		`CREATE TABLE IF NOT EXISTS igrm_records (
			seq BIGINT PRIMARY KEY DEFAULT nextval('igrm_records_seq'),
			id VARCHAR NOT NULL UNIQUE,
			nom_officiel_departement VARCHAR NOT NULL,
			code_officiel_departement VARCHAR NOT NULL,
			date VARCHAR NOT NULL,
			igrm DOUBLE,
			geom VARCHAR,
			centroid_lon DOUBLE,
			centroid_lat DOUBLE
		);`,
	}
}

// createIndexes creates the secondary indexes
func (db *DB) createIndexes() error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, query := range getIndexQueries() {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute index query: %s: %w", query, err)
		}
	}

	return nil
}

// getIndexQueries returns the index creation SQL statements
func getIndexQueries() []string {
	return []string{
		`CREATE INDEX IF NOT EXISTS idx_igrm_records_code_date ON igrm_records(code_officiel_departement, date);`,
	}
}
