// IGRMap - Renewable Gas Indicator Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/igrmap

package api

// PaginationRequest holds the query parameters of /api/data/paginated.
// A limit of 0 returns every row after skip.
type PaginationRequest struct {
	Skip  int `query:"skip" validate:"min=0"`
	Limit int `query:"limit"`
}
