// IGRMap - Renewable Gas Indicator Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/igrmap

/*
Package middleware provides http.HandlerFunc middleware shared by the data
service and dashboard routers:

  - RequestID: X-Request-ID propagation into the logging context
  - PrometheusMetrics: request count, latency and in-flight gauge
  - Compression: gzip for clients sending Accept-Encoding: gzip

The routers adapt these to chi with a small func(http.Handler) http.Handler
wrapper:

	r.Use(chiMiddleware(middleware.PrometheusMetrics))
*/
package middleware
