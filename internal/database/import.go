// IGRMap - Renewable Gas Indicator Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/igrmap

package database

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/tomtom215/igrmap/internal/config"
	"github.com/tomtom215/igrmap/internal/geo"
	"github.com/tomtom215/igrmap/internal/logging"
	"github.com/tomtom215/igrmap/internal/metrics"
	"github.com/tomtom215/igrmap/internal/models"
)

// importDocument is the on-disk shape of an exported record. The identifier
// may be a plain string or an extended-JSON object such as {"$oid": "..."}.
type importDocument struct {
	ID json.RawMessage `json:"_id"`
	models.Record
}

// objectID is the extended-JSON wrapper used by document store exports.
type objectID struct {
	OID string `json:"$oid"`
}

// resolveID returns the string form of an exported identifier, or "" when
// the export has none.
func resolveID(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}

	var oid objectID
	if err := json.Unmarshal(raw, &oid); err != nil {
		return "", fmt.Errorf("unsupported _id value %s: %w", string(raw), err)
	}
	return oid.OID, nil
}

// DecodeDocuments parses a JSON array of records. Missing centroids are
// derived from the boundary; a boundary that cannot be parsed is kept as is
// and the record is left without a centroid.
func DecodeDocuments(data []byte) ([]models.Document, error) {
	var raw []importDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}

	docs := make([]models.Document, 0, len(raw))
	for i := range raw {
		id, err := resolveID(raw[i].ID)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		doc := models.Document{ID: id, Record: raw[i].Record}
		if doc.Centroid == nil && doc.HasGeometry() {
			c, err := geo.Centroid(doc.Geom)
			if err != nil {
				logging.Warn().
					Err(err).
					Str("code", doc.CodeOfficielDepartement).
					Str("date", doc.Date).
					Msg("Cannot derive centroid from boundary")
			} else {
				doc.Centroid = &c
			}
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

// ImportFile loads a JSON array of records from path into the store.
func (db *DB) ImportFile(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from operator configuration
	if err != nil {
		return 0, fmt.Errorf("failed to read import file %s: %w", path, err)
	}

	docs, err := DecodeDocuments(data)
	if err != nil {
		return 0, fmt.Errorf("failed to import %s: %w", path, err)
	}

	n, err := db.InsertRecords(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("failed to import %s: %w", path, err)
	}

	metrics.DBRecordsImported.WithLabelValues("file").Add(float64(n))
	logging.Info().Str("path", path).Int("records", n).Msg("Imported records")
	return n, nil
}

// ErrAlreadyLoaded is returned by LoadInitialData when the store already
// holds records and nothing was loaded.
var ErrAlreadyLoaded = errors.New("store already populated")

// LoadInitialData fills an empty store from the configured import file, or
// with synthetic departments when seeding is enabled. The import file wins
// when both are set.
func (db *DB) LoadInitialData(ctx context.Context, cfg *config.DatabaseConfig) (int, error) {
	if cfg.ImportPath == "" && !cfg.SeedMockData {
		return 0, nil
	}

	count, err := db.CountRecords(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, ErrAlreadyLoaded
	}

	if cfg.ImportPath != "" {
		return db.ImportFile(ctx, cfg.ImportPath)
	}
	return db.SeedMockData(ctx)
}
