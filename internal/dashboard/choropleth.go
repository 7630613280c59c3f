// IGRMap - Renewable Gas Indicator Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/igrmap

/*
choropleth.go - Map Layer

Each record with a boundary becomes one polygon coloured by the first
interval containing its IGRM value. Intervals are closed on both ends and
scanned in order, so a value on a shared bound takes the lower interval.
Values in no interval are left off the map unless unclassified records
are enabled, in which case they take one of the two reserved colours.
*/

package dashboard

import (
	"fmt"
	"html"
	"math"

	"github.com/goccy/go-json"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/tomtom215/igrmap/internal/geo"
	"github.com/tomtom215/igrmap/internal/logging"
	"github.com/tomtom215/igrmap/internal/metrics"
	"github.com/tomtom215/igrmap/internal/models"
)

// Bucket is one closed interval of the legend.
type Bucket struct {
	Min   float64
	Max   float64
	Color string
	Label string
}

// Contains reports whether v lies in [Min, Max].
func (b Bucket) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

// Buckets are the legend intervals in scan order.
var Buckets = []Bucket{
	{Min: 0, Max: 7.5, Color: "rgb(187, 209, 184)", Label: "0,0 -> 7,5"},
	{Min: 7.5, Max: 16, Color: "rgb(140, 185, 169)", Label: "7,6 -> 16,0"},
	{Min: 16, Max: 30, Color: "rgb(93, 162, 154)", Label: "17,0 -> 30,0"},
	{Min: 30, Max: 40, Color: "rgb(46, 138, 139)", Label: "31,0 -> 40,0"},
	{Min: 40, Max: 100, Color: "rgb(0, 115, 124)", Label: "41,0 -> 100,0"},
}

// Reserved legend entries for records outside every interval.
const (
	MissingColor     = "rgb(89, 23, 135)"
	MissingLabel     = "IGRm (%) indéfinis"
	OutOfRangeColor  = "white"
	OutOfRangeLabel  = "IGRm (%) en dehors des bornes"
	LegendTitle      = "Indicateur mensuel Gaz Renouvelable des territoires"
	LegendSubtitle   = "IGRm (%)"
	polygonBorder    = "black"
	polygonWeight    = 1
	polygonDashArray = "5, 5"
)

// Outcome labels of the colour scan.
const (
	outcomeMissing    = "missing"
	outcomeOutOfRange = "out_of_range"
	outcomeNoGeometry = "no_geometry"
)

// BucketIndex returns the index of the first bucket containing v, or -1
// when v is nil, NaN or in no bucket.
func BucketIndex(v *float64) int {
	if v == nil || math.IsNaN(*v) {
		return -1
	}
	for i, b := range Buckets {
		if b.Contains(*v) {
			return i
		}
	}
	return -1
}

// BucketColor returns the fill colour for v and whether one was found.
func BucketColor(v *float64) (string, bool) {
	i := BucketIndex(v)
	if i < 0 {
		return "", false
	}
	return Buckets[i].Color, true
}

// LegendEntry is one coloured square of the legend.
type LegendEntry struct {
	Color string
	Label string
}

// Legend describes the map legend.
type Legend struct {
	Title    string
	Subtitle string
	Entries  []LegendEntry
}

// NewLegend builds the legend. The reserved entries are listed only when
// unclassified records are painted.
func NewLegend(showUnclassified bool) Legend {
	entries := make([]LegendEntry, 0, len(Buckets)+2)
	for _, b := range Buckets {
		entries = append(entries, LegendEntry{Color: b.Color, Label: b.Label})
	}
	if showUnclassified {
		entries = append(entries,
			LegendEntry{Color: MissingColor, Label: MissingLabel},
			LegendEntry{Color: OutOfRangeColor, Label: OutOfRangeLabel},
		)
	}
	return Legend{Title: LegendTitle, Subtitle: LegendSubtitle, Entries: entries}
}

// classify picks the fill colour of a record and the metric outcome.
func classify(v *float64, showUnclassified bool) (color, outcome string, ok bool) {
	if i := BucketIndex(v); i >= 0 {
		return Buckets[i].Color, fmt.Sprintf("bucket_%d", i+1), true
	}
	if v == nil || math.IsNaN(*v) {
		return MissingColor, outcomeMissing, showUnclassified
	}
	return OutOfRangeColor, outcomeOutOfRange, showUnclassified
}

// Tooltip is the hover text of a record's polygon. It is plain text and
// must be shown as such.
func Tooltip(r *models.Record, c models.Centroid) string {
	return fmt.Sprintf("%s, IGRM: %s, Longitude: %s, Latitude: %s",
		r.NomOfficielDepartement, formatIGRM(r.IGRM), formatFloat(c.Lon), formatFloat(c.Lat))
}

// Popup is the click content of a record's polygon, as HTML. Record
// fields are escaped; only the line breaks are markup.
func Popup(r *models.Record) string {
	return fmt.Sprintf("Date: %s<br>Nom Officiel Département: %s<br>Code Officiel Département: %s<br>IGRm (%%): %s",
		html.EscapeString(r.Date), html.EscapeString(r.NomOfficielDepartement),
		html.EscapeString(r.CodeOfficielDepartement), formatIGRM(r.IGRM))
}

// BuildFeatures turns records into map polygons. Records without a
// boundary or centroid, and unclassified records unless showUnclassified
// is set, are skipped. A missing centroid is derived from the boundary.
func BuildFeatures(records []models.Record, showUnclassified bool) *geojson.FeatureCollection {
	fc := &geojson.FeatureCollection{Features: make([]*geojson.Feature, 0, len(records))}

	for i := range records {
		r := &records[i]

		if !r.HasGeometry() {
			metrics.MapFeatures.WithLabelValues(outcomeNoGeometry).Inc()
			continue
		}

		color, outcome, ok := classify(r.IGRM, showUnclassified)
		metrics.MapFeatures.WithLabelValues(outcome).Inc()
		if !ok {
			continue
		}

		g, err := geo.ParseBoundary(r.Geom)
		if err != nil {
			logging.Debug().Err(err).Str("code", r.CodeOfficielDepartement).Str("date", r.Date).Msg("Skipping unreadable boundary")
			continue
		}

		var centroid models.Centroid
		if r.Centroid != nil {
			centroid = *r.Centroid
		} else if centroid, err = geo.Centroid(r.Geom); err != nil {
			logging.Debug().Err(err).Str("code", r.CodeOfficielDepartement).Msg("Skipping boundary without centroid")
			continue
		}

		fc.Features = append(fc.Features, &geojson.Feature{
			Geometry: g,
			Properties: map[string]interface{}{
				"fillColor": color,
				"color":     polygonBorder,
				"weight":    polygonWeight,
				"dashArray": polygonDashArray,
				"tooltip":   Tooltip(r, centroid),
				"popup":     Popup(r),
			},
		})
	}

	return fc
}

// marshalFeatures encodes the collection for the page script.
func marshalFeatures(fc *geojson.FeatureCollection) (json.RawMessage, error) {
	data, err := fc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to encode map features: %w", err)
	}
	return data, nil
}
