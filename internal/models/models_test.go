// IGRMap - Renewable Gas Indicator Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/igrmap

package models

import (
	"testing"

	"github.com/goccy/go-json"
)

func newTestDocument() Document {
	return Document{
		ID: "0b9a1f5e-7c2d-4f34-9a51-3c1e2d4b5a60",
		Record: Record{
			NomOfficielDepartement:  "Finistère",
			CodeOfficielDepartement: "29",
			Date:                    "2023-09",
			IGRM:                    Float64(12.4),
			Geom:                    json.RawMessage(`{"type":"Polygon","coordinates":[[[-4.8,48.0],[-3.4,48.0],[-3.4,48.7],[-4.8,48.7],[-4.8,48.0]]]}`),
			Centroid:                &Centroid{Lon: -4.1, Lat: 48.35},
		},
	}
}

func decodeKeys(t *testing.T, v any) map[string]json.RawMessage {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return m
}

func TestDocumentJSON_IncludesID(t *testing.T) {
	t.Parallel()

	doc := newTestDocument()
	m := decodeKeys(t, doc)

	if _, ok := m[FieldID]; !ok {
		t.Errorf("document JSON missing %s: %v", FieldID, m)
	}
	for _, col := range AllDataColumns {
		if _, ok := m[col]; !ok {
			t.Errorf("document JSON missing %s", col)
		}
	}
}

func TestRecordJSON_HasNoID(t *testing.T) {
	t.Parallel()

	doc := newTestDocument()
	m := decodeKeys(t, doc.Record)

	if _, ok := m[FieldID]; ok {
		t.Errorf("record JSON must not contain %s: %v", FieldID, m)
	}
	if len(m) != len(AllDataColumns) {
		t.Errorf("record JSON has %d fields, want %d", len(m), len(AllDataColumns))
	}
}

func TestFilteredRecordJSON_ExactlyFiveFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		igrm *float64
	}{
		{"with value", Float64(45)},
		{"missing value", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			doc := newTestDocument()
			doc.IGRM = tt.igrm

			m := decodeKeys(t, doc.Filtered())
			if len(m) != 5 {
				t.Fatalf("filtered JSON has %d fields, want 5: %v", len(m), m)
			}
			for _, col := range FilteredColumns {
				if _, ok := m[col]; !ok {
					t.Errorf("filtered JSON missing %s", col)
				}
			}
			if _, ok := m[FieldGeom]; ok {
				t.Error("filtered JSON must not contain geometry")
			}
		})
	}
}

func TestRecordHasGeometry(t *testing.T) {
	t.Parallel()

	doc := newTestDocument()
	if !doc.HasGeometry() {
		t.Error("HasGeometry() = false for a polygon")
	}

	doc.Geom = nil
	if doc.HasGeometry() {
		t.Error("HasGeometry() = true for nil geometry")
	}

	doc.Geom = json.RawMessage("null")
	if doc.HasGeometry() {
		t.Error("HasGeometry() = true for JSON null")
	}
}
