// IGRMap - Renewable Gas Indicator Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/igrmap

package api

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/testutil"

	_ "github.com/tomtom215/igrmap/docs"
	"github.com/tomtom215/igrmap/internal/config"
	"github.com/tomtom215/igrmap/internal/metrics"
	"github.com/tomtom215/igrmap/internal/middleware"
)

func TestRouter_NotFoundEnvelope(t *testing.T) {
	t.Parallel()

	w := serve(t, &fakeStore{}, "/api/unknown")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}

	var resp APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != ErrCodeNotFound {
		t.Errorf("error = %+v", resp.Error)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	h := NewRouter(NewHandler(&fakeStore{}, cfg), &cfg.Security).SetupChi()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/data", strings.NewReader("{}")))
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST /api/data status = %d, want 405", w.Code)
	}
}

func TestRouter_RequestIDEchoed(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	h := NewRouter(NewHandler(&fakeStore{}, cfg), &cfg.Security).SetupChi()

	req := httptest.NewRequest(http.MethodGet, "/api/health/live", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-123")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if got := w.Header().Get(middleware.RequestIDHeader); got != "req-123" {
		t.Errorf("%s = %q, want req-123", middleware.RequestIDHeader, got)
	}

	var resp APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Meta == nil || resp.Meta.RequestID != "req-123" {
		t.Errorf("meta = %+v, want request id req-123", resp.Meta)
	}
}

func TestRouter_SecurityHeaders(t *testing.T) {
	t.Parallel()

	w := serve(t, &fakeStore{docs: sampleDocs(1)}, "/api/data")
	if w.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("missing X-Content-Type-Options")
	}
	if w.Header().Get("X-Frame-Options") != "DENY" {
		t.Error("missing X-Frame-Options")
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Security.CORSOrigins = []string{"http://localhost:8501"}
	h := NewRouter(NewHandler(&fakeStore{}, cfg), &cfg.Security).SetupChi()

	req := httptest.NewRequest(http.MethodOptions, "/api/data", nil)
	req.Header.Set("Origin", "http://localhost:8501")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:8501" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}

func TestRouter_GzipData(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	h := NewRouter(NewHandler(&fakeStore{docs: sampleDocs(5)}, cfg), &cfg.Security).SetupChi()

	req := httptest.NewRequest(http.MethodGet, "/api/data/filter", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("Content-Encoding = %q, want gzip", w.Header().Get("Content-Encoding"))
	}
	zr, err := gzip.NewReader(w.Body)
	if err != nil {
		t.Fatalf("gzip reader: %v", err)
	}
	body, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var rows []map[string]interface{}
	if err := json.Unmarshal(body, &rows); err != nil || len(rows) != 5 {
		t.Errorf("decoded %d rows (err %v), want 5", len(rows), err)
	}
}

func TestRouter_RecordsRequestMetrics(t *testing.T) {
	before := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, "/api/data/filter", "200"))

	serve(t, &fakeStore{docs: sampleDocs(1)}, "/api/data/filter")

	after := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, "/api/data/filter", "200"))
	if after != before+1 {
		t.Errorf("api_requests_total delta = %v, want 1", after-before)
	}
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	t.Parallel()

	w := serve(t, &fakeStore{}, "/metrics")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "api_active_requests") {
		t.Error("exposition missing api_active_requests")
	}
}

func TestRouter_RateLimit(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		API:      config.APIConfig{DefaultPageSize: 10},
		Security: config.SecurityConfig{RateLimitReqs: 2, RateLimitWindow: time.Minute},
	}
	h := NewRouter(NewHandler(&fakeStore{}, cfg), &cfg.Security).SetupChi()

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last = httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/data", nil)
		req.RemoteAddr = "192.0.2.10:4000"
		h.ServeHTTP(last, req)
	}

	if last.Code != http.StatusTooManyRequests {
		t.Fatalf("third request status = %d, want 429", last.Code)
	}
	var resp APIResponse
	if err := json.Unmarshal(last.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != ErrCodeTooManyRequests {
		t.Errorf("error = %+v", resp.Error)
	}
}

// TestRouter_DefaultConfigNeverLimits replays a busy dashboard against the
// built-in configuration: every request from one client must be served.
func TestRouter_DefaultConfigNeverLimits(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	h := NewRouter(NewHandler(&fakeStore{docs: sampleDocs(3)}, cfg), &cfg.Security).SetupChi()

	codes := make(map[int]int)
	for i := 0; i < 300; i++ {
		for _, path := range []string{"/api/data", "/api/data/filter", "/api/health/live"} {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, path, nil)
			req.RemoteAddr = "192.0.2.20:4000"
			h.ServeHTTP(w, req)
			codes[w.Code]++
		}
	}

	if codes[http.StatusTooManyRequests] != 0 || codes[http.StatusOK] != 900 {
		t.Errorf("status counts = %v, want 900 x 200", codes)
	}
}

func TestRouter_SwaggerDoc(t *testing.T) {
	t.Parallel()

	w := serve(t, &fakeStore{}, "/swagger/doc.json")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	for _, path := range []string{"/api/data", "/api/data/paginated", "/api/data/filter"} {
		if !strings.Contains(w.Body.String(), `"`+path+`"`) {
			t.Errorf("swagger document missing %s", path)
		}
	}
}
