// IGRMap - Renewable Gas Indicator Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/igrmap

package database

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/tomtom215/igrmap/internal/geo"
	"github.com/tomtom215/igrmap/internal/logging"
	"github.com/tomtom215/igrmap/internal/metrics"
	"github.com/tomtom215/igrmap/internal/models"
)

// seedDepartment is a department with an approximate centre used to draw a
// rectangular stand-in boundary.
type seedDepartment struct {
	code string
	name string
	lon  float64
	lat  float64

	// base is the starting indicator level; departments spread across all
	// legend intervals.
	base float64
}

var seedDepartments = []seedDepartment{
	{"02", "Aisne", 3.56, 49.56, 38},
	{"10", "Aube", 4.16, 48.30, 27},
	{"13", "Bouches-du-Rhône", 5.09, 43.54, 1.5},
	{"22", "Côtes-d'Armor", -2.86, 48.44, 21},
	{"29", "Finistère", -4.10, 48.26, 9},
	{"33", "Gironde", -0.58, 44.83, 3},
	{"35", "Ille-et-Vilaine", -1.64, 48.15, 14},
	{"51", "Marne", 4.24, 48.95, 45},
	{"59", "Nord", 3.22, 50.45, 6},
	{"67", "Bas-Rhin", 7.55, 48.67, 12},
	{"69", "Rhône", 4.64, 45.87, 2},
	{"75", "Paris", 2.34, 48.86, 0},
	{"80", "Somme", 2.28, 49.96, 33},
	{"85", "Vendée", -1.30, 46.67, 24},
}

const (
	seedFirstYear  = 2020
	seedLastYear   = 2023
	seedLastMonth  = 9
	seedHalfWidth  = 0.35
	seedHalfHeight = 0.25
)

// seedBoundary returns a closed rectangle around the department centre as
// GeoJSON.
func seedBoundary(d seedDepartment) ([]byte, error) {
	x0, x1 := d.lon-seedHalfWidth, d.lon+seedHalfWidth
	y0, y1 := d.lat-seedHalfHeight, d.lat+seedHalfHeight

	poly, err := geom.NewPolygon(geom.XY).SetCoords([][]geom.Coord{{
		{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}, {x0, y0},
	}})
	if err != nil {
		return nil, fmt.Errorf("failed to build boundary for %s: %w", d.code, err)
	}

	return geojson.Marshal(poly)
}

// SeedMockData fills the store with synthetic monthly records for a set of
// departments from January 2020 to September 2023. Values are deterministic
// so screenshots and demos are reproducible. A few months are left without
// an indicator.
func (db *DB) SeedMockData(ctx context.Context) (int, error) {
	logging.Info().Msg("Seeding database with synthetic department records...")

	rng := rand.New(rand.NewPCG(2020, 2023)) // #nosec G404 -- demo data, not security sensitive

	docs := make([]models.Document, 0, len(seedDepartments)*48)
	for _, d := range seedDepartments {
		boundary, err := seedBoundary(d)
		if err != nil {
			return 0, err
		}
		centroid, err := geo.Centroid(boundary)
		if err != nil {
			return 0, fmt.Errorf("failed to compute centroid for %s: %w", d.code, err)
		}

		step := 0
		for year := seedFirstYear; year <= seedLastYear; year++ {
			for month := 1; month <= 12; month++ {
				if year == seedLastYear && month > seedLastMonth {
					break
				}
				step++

				rec := models.Record{
					NomOfficielDepartement:  d.name,
					CodeOfficielDepartement: d.code,
					Date:                    fmt.Sprintf("%04d-%02d", year, month),
					Geom:                    boundary,
					Centroid:                &models.Centroid{Lon: centroid.Lon, Lat: centroid.Lat},
				}

				if rng.IntN(40) != 0 {
					growth := 0.15 * float64(step)
					noise := (rng.Float64() - 0.5) * 2
					v := math.Max(0, d.base+growth+noise)
					rec.IGRM = models.Float64(math.Round(v*100) / 100)
				}

				docs = append(docs, models.Document{Record: rec})
			}
		}
	}

	n, err := db.InsertRecords(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("failed to seed records: %w", err)
	}

	metrics.DBRecordsImported.WithLabelValues("seed").Add(float64(n))
	logging.Info().
		Int("departments", len(seedDepartments)).
		Int("records", n).
		Msg("Mock data seeding completed successfully")
	return n, nil
}
