// IGRMap - Renewable Gas Indicator Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/igrmap

/*
Package metrics provides Prometheus metrics for the data service and the
dashboard.

Metrics are registered on the default registry through promauto and exposed
at /metrics by both binaries:

	curl http://localhost:8502/metrics
	curl http://localhost:8501/metrics

# Available Metrics

Data service:
  - duckdb_query_duration_seconds{operation,table}
  - duckdb_query_errors_total{operation,table,error_type}
  - igrm_records_stored, igrm_records_imported_total{source}
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests, api_rate_limit_hits_total{endpoint}

Dashboard:
  - dashboard_fetch_duration_seconds{endpoint}, dashboard_fetch_errors_total{endpoint}
  - dashboard_renders_total{status}
  - dashboard_map_features_total{outcome}
  - circuit_breaker_state{name}, circuit_breaker_requests_total{name,result}
  - circuit_breaker_state_transitions_total{name,from_state,to_state}
*/
package metrics
