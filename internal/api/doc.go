// IGRMap - Renewable Gas Indicator Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/igrmap

// Package api implements the HTTP surface of the data service.
//
// # Endpoints
//
// Data (bare JSON arrays, gzip when accepted; per-IP rate limiting only
// when enabled in the security config):
//   - GET /api/data: every record without _id
//   - GET /api/data/paginated?skip=0&limit=10: stored documents with _id;
//     limit=0 returns every row after skip
//   - GET /api/data/filter: _id, date, department name and code, igrm
//
// Health (JSON envelope):
//   - GET /api/health/live
//   - GET /api/health/ready
//
// Observability:
//   - GET /metrics: Prometheus exposition
//   - GET /swagger/*: OpenAPI UI
//
// # Errors
//
// Failures use the envelope below. Store errors map to 500 DATABASE_ERROR
// and bad query parameters to 400 VALIDATION_ERROR: a non-integer skip or
// limit, or a negative skip.
//
//	{
//	  "success": false,
//	  "error": {"code": "VALIDATION_ERROR", "message": "skip must be at least 0"},
//	  "meta": {"request_id": "...", "timestamp": "..."}
//	}
//
// # Middleware Order
//
// Request ID, real IP, panic recovery and CORS apply to every route. The
// data group adds rate limiting, security headers, Prometheus metrics and
// compression.
package api
