// IGRMap - Renewable Gas Indicator Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/igrmap

package models

import (
	"github.com/goccy/go-json"
)

// Field names of a department-month record as stored and served.
const (
	FieldID       = "_id"
	FieldNom      = "nom_officiel_departement"
	FieldCode     = "code_officiel_departement"
	FieldDate     = "date"
	FieldIGRM     = "igrm"
	FieldGeom     = "geom"
	FieldCentroid = "centroid"
)

// AllDataColumns is the column order of a /api/data row.
var AllDataColumns = []string{FieldNom, FieldCode, FieldDate, FieldIGRM, FieldGeom, FieldCentroid}

// FilteredColumns is the column order of a /api/data/filter row.
var FilteredColumns = []string{FieldID, FieldDate, FieldNom, FieldCode, FieldIGRM}

// Centroid is the department centroid in WGS84.
type Centroid struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// Record is a department-month IGRM record without its internal identifier.
// IGRM is nil when the indicator is missing for that month.
type Record struct {
	NomOfficielDepartement  string          `json:"nom_officiel_departement"`
	CodeOfficielDepartement string          `json:"code_officiel_departement"`
	Date                    string          `json:"date"`
	IGRM                    *float64        `json:"igrm"`
	Geom                    json.RawMessage `json:"geom,omitempty"`
	Centroid                *Centroid       `json:"centroid,omitempty"`
}

// HasGeometry reports whether the record carries a boundary.
func (r *Record) HasGeometry() bool {
	return len(r.Geom) > 0 && string(r.Geom) != "null"
}

// Document is a record as stored, including the store-assigned identifier.
type Document struct {
	ID string `json:"_id"`
	Record
}

// FilteredRecord is the geometry-free projection served by /api/data/filter.
type FilteredRecord struct {
	ID                      string   `json:"_id"`
	Date                    string   `json:"date"`
	NomOfficielDepartement  string   `json:"nom_officiel_departement"`
	CodeOfficielDepartement string   `json:"code_officiel_departement"`
	IGRM                    *float64 `json:"igrm"`
}

// Filtered projects a stored document to its chart fields.
func (d *Document) Filtered() FilteredRecord {
	return FilteredRecord{
		ID:                      d.ID,
		Date:                    d.Date,
		NomOfficielDepartement:  d.NomOfficielDepartement,
		CodeOfficielDepartement: d.CodeOfficielDepartement,
		IGRM:                    d.IGRM,
	}
}

// Float64 returns a pointer to v, for building records with a known IGRM.
func Float64(v float64) *float64 {
	return &v
}
