// IGRMap - Renewable Gas Indicator Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/igrmap

// Package main provides the IGRMap data service.
//
// @title IGRMap Data Service API
// @version 1.0
// @description Read-only access to the monthly renewable gas indicator (IGRM) of French departments.
// @description
// @description ## Rate Limiting
// @description
// @description Data endpoints allow 100 requests per minute per IP address by default.
// @description
// @description ## Error Responses
// @description
// @description Data endpoints return bare JSON arrays. Errors use this envelope:
// @description ```json
// @description {
// @description   "success": false,
// @description   "error": {"code": "DATABASE_ERROR", "message": "..."},
// @description   "meta": {"request_id": "...", "timestamp": "2026-01-01T00:00:00Z"}
// @description }
// @description ```
//
// @contact.name IGRMap
// @contact.url https://github.com/tomtom215/igrmap
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @BasePath /
//
// @tag.name Data
// @tag.description Department-month IGRM records
//
// @tag.name Health
// @tag.description Liveness and readiness probes
package main
