// IGRMap - Renewable Gas Indicator Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/igrmap

/*
Package supervisor runs the long-lived services of an IGRMap process under
a suture v4 tree.

# Overview

Both binaries build the same two-layer tree:

	RootSupervisor ("igrmap-server" or "igrmap-dashboard")
	├── DataSupervisor ("data-layer")
	│   └── PeriodicService "record-gauge" (data service only)
	└── HTTPSupervisor ("http-layer")
	    └── HTTPServerService

# Usage

	tree, err := supervisor.NewSupervisorTree("igrmap-server", logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddHTTPService(services.NewHTTPServerService(server, 10*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("Supervisor stopped")
	}

# Failure Handling

Failures decay over FailureDecay seconds. Past FailureThreshold the
supervisor waits FailureBackoff before the next restart. Supervisor events
are logged through sutureslog into the zerolog logger.

# What Is NOT Supervised

DuckDB is an embedded library and the initial data load runs once before
the tree starts; neither is a long-running service.
*/
package supervisor
