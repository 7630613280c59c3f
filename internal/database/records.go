// IGRMap - Renewable Gas Indicator Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/igrmap

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/goccy/go-json"

	"github.com/tomtom215/igrmap/internal/metrics"
	"github.com/tomtom215/igrmap/internal/models"
)

const documentColumns = `id, nom_officiel_departement, code_officiel_departement, date, igrm, geom, centroid_lon, centroid_lat`

// rowScanner is satisfied by *sql.Rows and *sql.Row.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanDocument reads one row selected with documentColumns.
func scanDocument(row rowScanner) (models.Document, error) {
	var (
		doc         models.Document
		igrm        sql.NullFloat64
		geomText    sql.NullString
		centroidLon sql.NullFloat64
		centroidLat sql.NullFloat64
	)

	if err := row.Scan(
		&doc.ID,
		&doc.NomOfficielDepartement,
		&doc.CodeOfficielDepartement,
		&doc.Date,
		&igrm,
		&geomText,
		&centroidLon,
		&centroidLat,
	); err != nil {
		return models.Document{}, err
	}

	if igrm.Valid {
		doc.IGRM = models.Float64(igrm.Float64)
	}
	if geomText.Valid && geomText.String != "" {
		doc.Geom = json.RawMessage(geomText.String)
	}
	if centroidLon.Valid && centroidLat.Valid {
		doc.Centroid = &models.Centroid{Lon: centroidLon.Float64, Lat: centroidLat.Float64}
	}

	return doc, nil
}

// queryDocuments runs a documentColumns query and collects every row.
func (db *DB) queryDocuments(ctx context.Context, operation, query string, args ...any) ([]models.Document, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		metrics.RecordDBQuery(operation, recordsTable, time.Since(start), err)
		return nil, wrapQueryError("failed to query records", err)
	}
	defer closeWithLog(rows, "rows")

	docs := make([]models.Document, 0)
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			metrics.RecordDBQuery(operation, recordsTable, time.Since(start), err)
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		docs = append(docs, doc)
	}

	err = rows.Err()
	metrics.RecordDBQuery(operation, recordsTable, time.Since(start), err)
	if err != nil {
		return nil, wrapQueryError("error iterating records", err)
	}

	return docs, nil
}

// GetAllData returns every record in insertion order without its identifier.
// An empty store yields an empty, non-nil slice.
func (db *DB) GetAllData(ctx context.Context) ([]models.Record, error) {
	docs, err := db.queryDocuments(ctx, "get_all",
		`SELECT `+documentColumns+` FROM igrm_records ORDER BY seq`)
	if err != nil {
		return nil, err
	}

	records := make([]models.Record, len(docs))
	for i := range docs {
		records[i] = docs[i].Record
	}
	return records, nil
}

// GetPaginatedData returns stored documents, identifier included, starting
// after the first skip rows. At most limit rows are returned; limit <= 0
// removes the cap.
func (db *DB) GetPaginatedData(ctx context.Context, skip, limit int) ([]models.Document, error) {
	if skip < 0 {
		return nil, fmt.Errorf("skip must be non-negative, got %d", skip)
	}

	if limit <= 0 {
		return db.queryDocuments(ctx, "get_paginated",
			`SELECT `+documentColumns+` FROM igrm_records ORDER BY seq OFFSET ?`, skip)
	}

	return db.queryDocuments(ctx, "get_paginated",
		`SELECT `+documentColumns+` FROM igrm_records ORDER BY seq LIMIT ? OFFSET ?`, limit, skip)
}

// FilterData returns every record projected to its identifier, date,
// department and indicator. Geometry is never read.
func (db *DB) FilterData(ctx context.Context) ([]models.FilteredRecord, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, date, nom_officiel_departement, code_officiel_departement, igrm
		FROM igrm_records
		ORDER BY seq`)
	if err != nil {
		metrics.RecordDBQuery("filter", recordsTable, time.Since(start), err)
		return nil, wrapQueryError("failed to query filtered records", err)
	}
	defer closeWithLog(rows, "rows")

	out := make([]models.FilteredRecord, 0)
	for rows.Next() {
		var (
			rec  models.FilteredRecord
			igrm sql.NullFloat64
		)
		if err := rows.Scan(&rec.ID, &rec.Date, &rec.NomOfficielDepartement, &rec.CodeOfficielDepartement, &igrm); err != nil {
			metrics.RecordDBQuery("filter", recordsTable, time.Since(start), err)
			return nil, fmt.Errorf("failed to scan filtered record: %w", err)
		}
		if igrm.Valid {
			rec.IGRM = models.Float64(igrm.Float64)
		}
		out = append(out, rec)
	}

	err = rows.Err()
	metrics.RecordDBQuery("filter", recordsTable, time.Since(start), err)
	if err != nil {
		return nil, wrapQueryError("error iterating filtered records", err)
	}

	return out, nil
}

// CountRecords returns the number of stored records.
func (db *DB) CountRecords(ctx context.Context) (int, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	var count int
	err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM igrm_records`).Scan(&count)
	metrics.RecordDBQuery("count", recordsTable, time.Since(start), err)
	if err != nil {
		return 0, wrapQueryError("failed to count records", err)
	}

	metrics.DBRecordsStored.Set(float64(count))
	return count, nil
}

// InsertRecords stores docs in a single transaction, in slice order.
// Documents without an identifier get a new UUID, written back into docs.
func (db *DB) InsertRecords(ctx context.Context, docs []models.Document) (int, error) {
	if len(docs) == 0 {
		return 0, nil
	}

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	inserted, err := db.insertRecordsTx(ctx, docs)
	metrics.RecordDBQuery("insert", recordsTable, time.Since(start), err)
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

func (db *DB) insertRecordsTx(ctx context.Context, docs []models.Document) (int, error) {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, wrapQueryError("failed to begin transaction", err)
	}
	defer func() {
		_ = tx.Rollback() // no-op after Commit
	}()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO igrm_records (`+documentColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer closeWithLog(stmt, "prepared statement")

	for i := range docs {
		doc := &docs[i]
		if doc.ID == "" {
			doc.ID = uuid.New().String()
		}

		var igrm, geomText, lon, lat any
		if doc.IGRM != nil {
			igrm = *doc.IGRM
		}
		if doc.HasGeometry() {
			geomText = string(doc.Geom)
		}
		if doc.Centroid != nil {
			lon = doc.Centroid.Lon
			lat = doc.Centroid.Lat
		}

		if _, err := stmt.ExecContext(ctx,
			doc.ID,
			doc.NomOfficielDepartement,
			doc.CodeOfficielDepartement,
			doc.Date,
			igrm,
			geomText,
			lon,
			lat,
		); err != nil {
			return 0, fmt.Errorf("failed to insert record %d (%s %s): %w", i, doc.CodeOfficielDepartement, doc.Date, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, wrapQueryError("failed to commit records", err)
	}

	return len(docs), nil
}
