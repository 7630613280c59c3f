// IGRMap - Renewable Gas Indicator Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/igrmap

package api

import (
	"context"
	"time"

	"github.com/tomtom215/igrmap/internal/config"
	"github.com/tomtom215/igrmap/internal/models"
)

// RecordStore is the read side of the record store used by the handlers.
// *database.DB satisfies it.
type RecordStore interface {
	GetAllData(ctx context.Context) ([]models.Record, error)
	GetPaginatedData(ctx context.Context, skip, limit int) ([]models.Document, error)
	FilterData(ctx context.Context) ([]models.FilteredRecord, error)
	Ping(ctx context.Context) error
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_data.go: The three data endpoints
//   - handlers_health.go: Liveness and readiness probes
//   - handlers_helpers.go: Parameter parsing and log sanitizing
type Handler struct {
	store     RecordStore
	config    *config.Config
	startTime time.Time
}

// NewHandler creates a new API handler.
//
//	db, _ := database.New(&cfg.Database)
//	handler := api.NewHandler(db, cfg)
//	router := api.NewRouter(handler, &cfg.Security)
//	srv := &http.Server{Handler: router.SetupChi()}
func NewHandler(store RecordStore, cfg *config.Config) *Handler {
	return &Handler{
		store:     store,
		config:    cfg,
		startTime: time.Now(),
	}
}
