// IGRMap - Renewable Gas Indicator Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/igrmap

// Package dashboard serves the IGRM dashboard: a paginated table, a
// configurable scatter chart, a per-department line chart and a
// choropleth map with its legend.
//
// # Data Flow
//
// Every render fetches /api/data and then /api/data/filter from the data
// service through Client. Nothing is cached between renders. The table,
// line chart and map are built from the first dataset; the scatter chart
// from the second.
//
// # Failure Handling
//
// A failed fetch is rendered inline as a FetchError message and the views
// built from that dataset are omitted. Calls are never retried; repeated
// failures open the client's circuit breaker so later renders fail fast.
//
// # Map Colours
//
// BucketColor scans Buckets in order and returns the first closed interval
// containing the value. Missing, NaN and out-of-range values have no
// colour. When map.show_unclassified is enabled they are painted with the
// two reserved legend colours instead of being skipped.
package dashboard
