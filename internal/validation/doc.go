// IGRMap - Renewable Gas Indicator Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/igrmap

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared by the data service and the
// dashboard. Request structs carry both a `query` tag, used to name the
// parameter in error messages, and a `validate` tag:
//
//	type PageRequest struct {
//	    Page int    `query:"page" validate:"min=1"`
//	    X    string `query:"x"    validate:"column"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// Parameters that fail type conversion before validation are reported with
// NewParseError so both failure kinds share the VALIDATION_ERROR shape.
//
// Custom tags:
//   - column: the value names a column of an all-data row
package validation
