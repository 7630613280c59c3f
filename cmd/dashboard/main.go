// IGRMap - Renewable Gas Indicator Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/igrmap

/*
Command dashboard serves the IGRM dashboard page, reading its data from
the data service at dashboard.api_url (DASHBOARD_API_URL).

	DASHBOARD_PORT=8501
	DASHBOARD_API_URL=http://localhost:8502
	MAP_SHOW_UNCLASSIFIED=false
*/
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tomtom215/igrmap/internal/config"
	"github.com/tomtom215/igrmap/internal/dashboard"
	"github.com/tomtom215/igrmap/internal/logging"
	"github.com/tomtom215/igrmap/internal/supervisor"
	"github.com/tomtom215/igrmap/internal/supervisor/services"
)

func main() {
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
		Str("addr", cfg.Dashboard.Addr()).
		Str("api_url", cfg.Dashboard.APIURL).
		Bool("show_unclassified", cfg.Map.ShowUnclassified).
		Msg("Starting IGRMap dashboard")

	handler, err := dashboard.NewHandler(dashboard.NewClient(&cfg.Dashboard), &cfg.Dashboard, &cfg.Map)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create dashboard handler")
	}

	tree, err := supervisor.NewSupervisorTree("igrmap-dashboard", logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	// Each render waits on two sequential data service calls.
	writeTimeout := 2*cfg.Dashboard.RequestTimeout + 10*time.Second
	server := &http.Server{
		Addr:              cfg.Dashboard.Addr(),
		Handler:           dashboard.NewRouter(handler),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       60 * time.Second,
	}
	tree.AddHTTPService(services.NewHTTPServerService("dashboard", server, 10*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	logging.Info().Msg("Dashboard stopped")
}
