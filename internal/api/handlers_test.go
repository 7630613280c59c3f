// IGRMap - Renewable Gas Indicator Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/igrmap

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/igrmap/internal/config"
	"github.com/tomtom215/igrmap/internal/database"
	"github.com/tomtom215/igrmap/internal/models"
)

// fakeStore is an in-memory RecordStore.
type fakeStore struct {
	docs    []models.Document
	err     error
	pingErr error

	lastSkip, lastLimit int
}

func (f *fakeStore) GetAllData(context.Context) ([]models.Record, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Record, len(f.docs))
	for i := range f.docs {
		out[i] = f.docs[i].Record
	}
	return out, nil
}

func (f *fakeStore) GetPaginatedData(_ context.Context, skip, limit int) ([]models.Document, error) {
	f.lastSkip, f.lastLimit = skip, limit
	if f.err != nil {
		return nil, f.err
	}
	if skip >= len(f.docs) {
		return []models.Document{}, nil
	}
	if limit <= 0 {
		return f.docs[skip:], nil
	}
	end := min(skip+limit, len(f.docs))
	return f.docs[skip:end], nil
}

func (f *fakeStore) FilterData(context.Context) ([]models.FilteredRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.FilteredRecord, len(f.docs))
	for i := range f.docs {
		out[i] = f.docs[i].Filtered()
	}
	return out, nil
}

func (f *fakeStore) Ping(context.Context) error {
	return f.pingErr
}

func testConfig() *config.Config {
	return &config.Config{
		API: config.APIConfig{DefaultPageSize: 10},
		Security: config.SecurityConfig{
			RateLimitReqs:   1000,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
	}
}

func sampleDocs(n int) []models.Document {
	docs := make([]models.Document, n)
	for i := range docs {
		docs[i] = models.Document{
			ID: fmt.Sprintf("id-%02d", i),
			Record: models.Record{
				NomOfficielDepartement:  "Marne",
				CodeOfficielDepartement: "51",
				Date:                    fmt.Sprintf("2022-%02d", i%12+1),
				IGRM:                    models.Float64(float64(i) * 1.5),
				Geom:                    []byte(`{"type":"Polygon","coordinates":[[[4,48],[5,48],[5,49],[4,49],[4,48]]]}`),
				Centroid:                &models.Centroid{Lon: 4.5, Lat: 48.5},
			},
		}
	}
	return docs
}

// serve routes req through the full chi stack.
func serve(t *testing.T, store RecordStore, target string) *httptest.ResponseRecorder {
	t.Helper()

	cfg := testConfig()
	router := NewRouter(NewHandler(store, cfg), &cfg.Security)
	w := httptest.NewRecorder()
	router.SetupChi().ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func decodeRows(t *testing.T, w *httptest.ResponseRecorder) []map[string]json.RawMessage {
	t.Helper()

	var rows []map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &rows); err != nil {
		t.Fatalf("response is not a JSON array of objects: %v\n%s", err, w.Body.String())
	}
	return rows
}

func TestGetAllData_StripsID(t *testing.T) {
	t.Parallel()

	w := serve(t, &fakeStore{docs: sampleDocs(3)}, "/api/data")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Content-Type = %q", ct)
	}

	rows := decodeRows(t, w)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	for i, row := range rows {
		if _, ok := row[models.FieldID]; ok {
			t.Errorf("row %d contains _id", i)
		}
		for _, col := range []string{models.FieldNom, models.FieldCode, models.FieldDate, models.FieldIGRM, models.FieldGeom, models.FieldCentroid} {
			if _, ok := row[col]; !ok {
				t.Errorf("row %d missing %s", i, col)
			}
		}
	}
}

func TestGetAllData_EmptyIsArray(t *testing.T) {
	t.Parallel()

	w := serve(t, &fakeStore{docs: []models.Document{}}, "/api/data")
	if got := strings.TrimSpace(w.Body.String()); got != "[]" {
		t.Errorf("body = %q, want []", got)
	}
}

func TestFilterData_ExactFields(t *testing.T) {
	t.Parallel()

	w := serve(t, &fakeStore{docs: sampleDocs(2)}, "/api/data/filter")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	for i, row := range decodeRows(t, w) {
		if len(row) != len(models.FilteredColumns) {
			t.Errorf("row %d has %d fields, want %d: %v", i, len(row), len(models.FilteredColumns), row)
		}
		for _, col := range models.FilteredColumns {
			if _, ok := row[col]; !ok {
				t.Errorf("row %d missing %s", i, col)
			}
		}
		if _, ok := row[models.FieldGeom]; ok {
			t.Errorf("row %d contains geometry", i)
		}
		var id string
		if err := json.Unmarshal(row[models.FieldID], &id); err != nil {
			t.Errorf("row %d _id is not a string: %s", i, row[models.FieldID])
		}
	}
}

func TestGetPaginatedData_Params(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		query     string
		wantCode  int
		wantLen   int
		wantSkip  int
		wantLimit int
	}{
		{"defaults", "", http.StatusOK, 10, 0, 10},
		{"explicit", "?skip=2&limit=3", http.StatusOK, 3, 2, 3},
		{"past the end", "?skip=50&limit=10", http.StatusOK, 0, 50, 10},
		{"non-integer skip", "?skip=abc", http.StatusBadRequest, 0, 0, 0},
		{"non-integer limit", "?limit=1.5", http.StatusBadRequest, 0, 0, 0},
		{"negative skip", "?skip=-1", http.StatusBadRequest, 0, 0, 0},
		{"zero limit is uncapped", "?limit=0", http.StatusOK, 12, 0, 0},
		{"zero limit after skip", "?skip=5&limit=0", http.StatusOK, 7, 5, 0},
		{"large limit", "?limit=5000", http.StatusOK, 12, 0, 5000},
		{"negative limit caps like positive", "?limit=-3", http.StatusOK, 3, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := &fakeStore{docs: sampleDocs(12)}
			w := serve(t, store, "/api/data/paginated"+tt.query)
			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.wantCode, w.Body.String())
			}

			if tt.wantCode != http.StatusOK {
				var resp APIResponse
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("error body is not an envelope: %v", err)
				}
				if resp.Success || resp.Error == nil || resp.Error.Code != ErrCodeValidationError {
					t.Errorf("error envelope = %+v", resp)
				}
				return
			}

			rows := decodeRows(t, w)
			if len(rows) != tt.wantLen {
				t.Errorf("got %d rows, want %d", len(rows), tt.wantLen)
			}
			if store.lastSkip != tt.wantSkip || store.lastLimit != tt.wantLimit {
				t.Errorf("store called with skip=%d limit=%d, want %d/%d", store.lastSkip, store.lastLimit, tt.wantSkip, tt.wantLimit)
			}
			for i, row := range rows {
				if _, ok := row[models.FieldID]; !ok {
					t.Errorf("row %d missing _id", i)
				}
			}
		})
	}
}

func TestDataEndpoints_StoreFailure(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"/api/data", "/api/data/paginated", "/api/data/filter"} {
		t.Run(path, func(t *testing.T) {
			t.Parallel()

			w := serve(t, &fakeStore{err: errors.New("disk on fire")}, path)
			if w.Code != http.StatusInternalServerError {
				t.Fatalf("status = %d, want 500", w.Code)
			}

			var resp APIResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Error == nil || resp.Error.Code != ErrCodeDatabaseError {
				t.Errorf("error = %+v, want DATABASE_ERROR", resp.Error)
			}
			if strings.Contains(w.Body.String(), "disk on fire") {
				t.Error("store error leaked to client")
			}
		})
	}
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		store    RecordStore
		wantCode int
	}{
		{"live", "/api/health/live", &fakeStore{}, http.StatusOK},
		{"live ignores store", "/api/health/live", &fakeStore{pingErr: errors.New("down")}, http.StatusOK},
		{"ready", "/api/health/ready", &fakeStore{}, http.StatusOK},
		{"not ready", "/api/health/ready", &fakeStore{pingErr: errors.New("down")}, http.StatusServiceUnavailable},
		{"no store", "/api/health/ready", nil, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := serve(t, tt.store, tt.path)
			if w.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", w.Code, tt.wantCode)
			}
		})
	}
}

// TestPagination_AgainstDuckDB walks 11 stored records in pages of 10 and
// reads them uncapped.
func TestPagination_AgainstDuckDB(t *testing.T) {
	db, err := database.New(&config.DatabaseConfig{Path: ":memory:", MaxMemory: "512MB", PreserveInsertionOrder: true})
	if err != nil {
		t.Fatalf("database.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	docs := sampleDocs(11)
	for i := range docs {
		docs[i].ID = ""
	}
	if _, err := db.InsertRecords(context.Background(), docs); err != nil {
		t.Fatalf("InsertRecords: %v", err)
	}

	for _, tc := range []struct {
		skip  int
		limit int
		want  int
	}{{0, 10, 10}, {10, 10, 1}, {20, 10, 0}, {0, 0, 11}, {3, 0, 8}, {0, 5000, 11}} {
		w := serve(t, db, fmt.Sprintf("/api/data/paginated?skip=%d&limit=%d", tc.skip, tc.limit))
		if w.Code != http.StatusOK {
			t.Fatalf("skip=%d limit=%d: status %d", tc.skip, tc.limit, w.Code)
		}
		if got := len(decodeRows(t, w)); got != tc.want {
			t.Errorf("skip=%d limit=%d: got %d rows, want %d", tc.skip, tc.limit, got, tc.want)
		}
	}

	w := serve(t, db, "/api/data")
	for i, row := range decodeRows(t, w) {
		if _, ok := row[models.FieldID]; ok {
			t.Fatalf("row %d of /api/data contains _id", i)
		}
	}
}
