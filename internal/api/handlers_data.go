// IGRMap - Renewable Gas Indicator Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/igrmap

package api

import (
	"fmt"
	"net/http"

	"github.com/tomtom215/igrmap/internal/logging"
	"github.com/tomtom215/igrmap/internal/validation"
)

// GetAllData handles GET /api/data
//
// @Summary List all records
// @Description Returns every department-month record without its internal identifier, in insertion order.
// @Tags Data
// @Produce json
// @Success 200 {array} models.Record "All records"
// @Failure 500 {object} APIResponse "Store failure"
// @Router /api/data [get]
func (h *Handler) GetAllData(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.GetAllData(r.Context())
	if err != nil {
		NewResponseWriter(w, r).DatabaseError(fmt.Errorf("get all data: %w", err))
		return
	}

	logging.Ctx(r.Context()).Debug().Int("records", len(records)).Msg("Served all data")
	NewResponseWriter(w, r).List(records)
}

// GetPaginatedData handles GET /api/data/paginated
//
// @Summary List stored documents page by page
// @Description Returns raw stored documents, identifier included, skipping the first `skip` rows and returning at most `limit` rows. A limit of 0 removes the cap; a negative limit counts as its absolute value.
// @Tags Data
// @Produce json
// @Param skip query int false "Number of rows to skip" default(0) minimum(0)
// @Param limit query int false "Maximum number of rows, 0 for all" default(10)
// @Success 200 {array} models.Document "Page of documents"
// @Failure 400 {object} APIResponse "Invalid skip or limit"
// @Failure 500 {object} APIResponse "Store failure"
// @Router /api/data/paginated [get]
func (h *Handler) GetPaginatedData(w http.ResponseWriter, r *http.Request) {
	defaultLimit := 10
	if h.config != nil {
		defaultLimit = h.config.API.DefaultPageSize
	}

	skip, verr := parseIntQuery(r, "skip", 0)
	if verr != nil {
		respondValidation(w, r, verr)
		return
	}
	limit, verr := parseIntQuery(r, "limit", defaultLimit)
	if verr != nil {
		respondValidation(w, r, verr)
		return
	}

	// Same as a document store cursor: -n caps like n.
	if limit < 0 {
		limit = -limit
	}

	req := PaginationRequest{Skip: skip, Limit: limit}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidation(w, r, verr)
		return
	}

	docs, err := h.store.GetPaginatedData(r.Context(), req.Skip, req.Limit)
	if err != nil {
		NewResponseWriter(w, r).DatabaseError(fmt.Errorf("get paginated data (skip=%d limit=%d): %w", req.Skip, req.Limit, err))
		return
	}

	NewResponseWriter(w, r).List(docs)
}

// FilterData handles GET /api/data/filter
//
// @Summary List chart fields of every record
// @Description Returns each record projected to _id, date, nom_officiel_departement, code_officiel_departement and igrm. Geometry is never included.
// @Tags Data
// @Produce json
// @Success 200 {array} models.FilteredRecord "Projected records"
// @Failure 500 {object} APIResponse "Store failure"
// @Router /api/data/filter [get]
func (h *Handler) FilterData(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.FilterData(r.Context())
	if err != nil {
		NewResponseWriter(w, r).DatabaseError(fmt.Errorf("filter data: %w", err))
		return
	}

	NewResponseWriter(w, r).List(records)
}
