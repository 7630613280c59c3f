// IGRMap - Renewable Gas Indicator Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/igrmap

package dashboard

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/igrmap/internal/middleware"
)

// chiMiddleware adapts http.HandlerFunc middleware to Chi's func(http.Handler) http.Handler.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// NewRouter builds the dashboard routes:
//   - GET /: the dashboard page
//   - GET /health/live: liveness probe
//   - GET /metrics: Prometheus exposition
func NewRouter(h *Handler) http.Handler {
	started := time.Now()

	r := chi.NewRouter()
	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	r.With(
		chiMiddleware(middleware.PrometheusMetrics),
		chiMiddleware(middleware.Compression),
	).Get("/", h.Index)

	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		body, err := json.Marshal(map[string]interface{}{
			"status": "alive",
			"uptime": time.Since(started).Round(time.Second).String(),
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
