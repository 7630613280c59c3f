// IGRMap - Renewable Gas Indicator Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/igrmap

// Package geo parses department boundaries stored as GeoJSON and derives
// their centroid.
package geo

import (
	"errors"
	"fmt"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/xy"

	"github.com/tomtom215/igrmap/internal/models"
)

var (
	// ErrEmptyGeometry is returned for null or coordinate-less boundaries.
	ErrEmptyGeometry = errors.New("empty geometry")

	// ErrUnsupportedGeometry is returned for anything other than Polygon or MultiPolygon.
	ErrUnsupportedGeometry = errors.New("unsupported geometry type")

	// ErrOutOfBounds is returned when a coordinate falls outside WGS84 lon/lat ranges.
	ErrOutOfBounds = errors.New("coordinates outside WGS84 bounds")
)

// ParseBoundary decodes a GeoJSON Polygon or MultiPolygon in lon/lat order.
func ParseBoundary(raw []byte) (geom.T, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, ErrEmptyGeometry
	}

	var g geom.T
	if err := geojson.Unmarshal(raw, &g); err != nil {
		return nil, fmt.Errorf("error parsing GeoJSON: %w", err)
	}

	switch t := g.(type) {
	case *geom.Polygon:
		if t.NumLinearRings() == 0 {
			return nil, ErrEmptyGeometry
		}
	case *geom.MultiPolygon:
		if t.NumPolygons() == 0 {
			return nil, ErrEmptyGeometry
		}
	case nil:
		return nil, ErrEmptyGeometry
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedGeometry, g)
	}

	b := g.Bounds()
	if b.Min(0) < -180 || b.Max(0) > 180 || b.Min(1) < -90 || b.Max(1) > 90 {
		return nil, ErrOutOfBounds
	}

	return g, nil
}

// Centroid returns the area centroid of a GeoJSON boundary.
func Centroid(raw []byte) (models.Centroid, error) {
	g, err := ParseBoundary(raw)
	if err != nil {
		return models.Centroid{}, err
	}

	c, err := xy.Centroid(g)
	if err != nil {
		return models.Centroid{}, fmt.Errorf("error computing centroid: %w", err)
	}

	return models.Centroid{Lon: c.X(), Lat: c.Y()}, nil
}
