// IGRMap - Renewable Gas Indicator Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/igrmap

package metrics

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestRecordDBQuery tests database query metric recording
func TestRecordDBQuery(t *testing.T) {
	tests := []struct {
		name      string
		operation string
		table     string
		duration  time.Duration
		err       error
	}{
		{"successful select", "select_all", "igrm_records_q1", 10 * time.Millisecond, nil},
		{"successful insert", "insert", "igrm_records_q1", 5 * time.Millisecond, nil},
		{"failed query", "select_page", "igrm_records_q1", 100 * time.Millisecond, errors.New("connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(DBQueryErrors.WithLabelValues(tt.operation, tt.table, "connection refused"))
			RecordDBQuery(tt.operation, tt.table, tt.duration, tt.err)
			after := testutil.ToFloat64(DBQueryErrors.WithLabelValues(tt.operation, tt.table, "connection refused"))

			wantDelta := 0.0
			if tt.err != nil {
				wantDelta = 1
			}
			if after-before != wantDelta {
				t.Errorf("error counter delta = %v, want %v", after-before, wantDelta)
			}
		})
	}
}

// TestRecordDBQuery_ErrorTruncation verifies long error labels are cut to 50 characters
func TestRecordDBQuery_ErrorTruncation(t *testing.T) {
	long := strings.Repeat("x", 80)
	RecordDBQuery("select_all", "truncation_test", time.Millisecond, errors.New(long))

	got := testutil.ToFloat64(DBQueryErrors.WithLabelValues("select_all", "truncation_test", long[:50]))
	if got != 1 {
		t.Errorf("truncated error label count = %v, want 1", got)
	}
}

// TestRecordAPIRequest tests API request metric recording
func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/data/test", "200"))
	RecordAPIRequest("GET", "/api/data/test", "200", 25*time.Millisecond)
	RecordAPIRequest("GET", "/api/data/test", "200", 30*time.Millisecond)
	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/data/test", "200"))

	if after-before != 2 {
		t.Errorf("api_requests_total delta = %v, want 2", after-before)
	}
}

// TestTrackActiveRequest tests the active request gauge lifecycle
func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("after inc = %v, want %v", got, before+1)
	}

	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("after dec = %v, want %v", got, before)
	}
}

// TestRecordDashboardFetch tests dashboard fetch metric recording
func TestRecordDashboardFetch(t *testing.T) {
	before := testutil.ToFloat64(DashboardFetchErrors.WithLabelValues("api/data/filter"))

	RecordDashboardFetch("api/data/filter", 40*time.Millisecond, nil)
	RecordDashboardFetch("api/data/filter", 40*time.Millisecond, errors.New("status 500"))

	if got := testutil.ToFloat64(DashboardFetchErrors.WithLabelValues("api/data/filter")); got != before+1 {
		t.Errorf("dashboard_fetch_errors_total = %v, want %v", got, before+1)
	}
}

// TestMetricsRegistration verifies every collector can be described
func TestMetricsRegistration(t *testing.T) {
	collectors := []prometheus.Collector{
		DBQueryDuration,
		DBQueryErrors,
		DBRecordsStored,
		DBRecordsImported,
		APIRequestsTotal,
		APIRequestDuration,
		APIActiveRequests,
		APIRateLimitHits,
		DashboardFetchDuration,
		DashboardFetchErrors,
		DashboardRenders,
		MapFeatures,
		CircuitBreakerState,
		CircuitBreakerRequests,
		CircuitBreakerTransitions,
	}

	for _, c := range collectors {
		ch := make(chan *prometheus.Desc, 10)
		c.Describe(ch)
		close(ch)

		count := 0
		for range ch {
			count++
		}
		if count == 0 {
			t.Errorf("collector %T has no descriptors", c)
		}
	}
}

// TestMetricGathering checks the registry lints cleanly
func TestMetricGathering(t *testing.T) {
	RecordDBQuery("select_all", "igrm_records", time.Millisecond, nil)
	RecordAPIRequest("GET", "/api/data", "200", time.Millisecond)

	problems, err := testutil.GatherAndLint(prometheus.DefaultGatherer)
	if err != nil {
		t.Fatalf("GatherAndLint() error = %v", err)
	}
	for _, p := range problems {
		t.Logf("Metric lint problem: %s %s", p.Metric, p.Text)
	}
}
