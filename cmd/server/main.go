// IGRMap - Renewable Gas Indicator Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/igrmap

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	_ "github.com/tomtom215/igrmap/docs" // Import generated swagger docs
	"github.com/tomtom215/igrmap/internal/api"
	"github.com/tomtom215/igrmap/internal/config"
	"github.com/tomtom215/igrmap/internal/database"
	"github.com/tomtom215/igrmap/internal/logging"
	"github.com/tomtom215/igrmap/internal/supervisor"
	"github.com/tomtom215/igrmap/internal/supervisor/services"
)

// recordGaugeInterval is how often the stored record count is refreshed.
const recordGaugeInterval = time.Minute

func main() {
	// .env.local is optional; real environment variables still win.
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("db_path", cfg.Database.Path).
		Str("addr", cfg.Server.Addr()).
		Str("environment", cfg.Server.Environment).
		Msg("Starting IGRMap data service")

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	loadCtx, loadCancel := context.WithTimeout(context.Background(), 5*time.Minute)
	n, err := db.LoadInitialData(loadCtx, &cfg.Database)
	loadCancel()
	switch {
	case errors.Is(err, database.ErrAlreadyLoaded):
		logging.Info().Msg("Store already populated, skipping initial load")
	case err != nil:
		// Close explicitly since Fatal skips deferred calls.
		if closeErr := db.Close(); closeErr != nil {
			logging.Error().Err(closeErr).Msg("Error closing database")
		}
		logging.Fatal().Err(err).Msg("Failed to load initial data")
	case n > 0:
		logging.Info().Int("records", n).Msg("Initial data loaded")
	}

	tree, err := supervisor.NewSupervisorTree("igrmap-server", logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddDataService(services.NewPeriodicService("record-gauge", recordGaugeInterval, func(ctx context.Context) error {
		_, err := db.CountRecords(ctx)
		return err
	}))

	router := api.NewRouter(api.NewHandler(db, cfg), &cfg.Security)
	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}
	tree.AddHTTPService(services.NewHTTPServerService("data-api", server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	run(tree)
}

// run serves tree until SIGINT or SIGTERM and reports services that did
// not stop in time.
func run(tree *supervisor.SupervisorTree) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree...")
	if err := <-tree.ServeBackground(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("Application stopped gracefully")
}
