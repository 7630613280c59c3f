// IGRMap - Renewable Gas Indicator Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/igrmap

/*
Package services provides suture.Service wrappers for IGRMap components.

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - Converts the blocking ListenAndServe into Serve(ctx)

Periodic Job (PeriodicService):
  - Runs a function now and then on a fixed interval
  - Logs failures and only returns an error after repeated ones, so the
    supervisor restarts it with backoff

Every wrapper implements fmt.Stringer so suture events name the service.
*/
package services
