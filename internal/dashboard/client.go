// IGRMap - Renewable Gas Indicator Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/igrmap

/*
client.go - Data Service Client

The dashboard reads everything it shows through two GET endpoints of the
data service. Calls go through an outbound rate limiter and a circuit
breaker; a failed call is returned as a FetchError and never retried.
*/

package dashboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/igrmap/internal/config"
	"github.com/tomtom215/igrmap/internal/logging"
	"github.com/tomtom215/igrmap/internal/metrics"
	"github.com/tomtom215/igrmap/internal/models"
)

// Data service paths read by the dashboard.
const (
	AllDataPath  = "/api/data"
	FilteredPath = "/api/data/filter"
)

const breakerName = "data-service"

// maxBodyBytes caps a single response body.
const maxBodyBytes = 256 << 20

// FetchError is a failed call to the data service. Its message is the
// inline text shown in place of the views that depend on the dataset.
type FetchError struct {
	Endpoint string
	Err      error
}

func (e *FetchError) Error() string {
	return "Erreur lors de la récupération des données depuis l'API : " + e.Err.Error()
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// DataSource is what the page handler needs from the data service.
type DataSource interface {
	FetchAllData(ctx context.Context) ([]models.Record, error)
	FetchFiltered(ctx context.Context) ([]models.FilteredRecord, error)
}

var _ DataSource = (*Client)(nil)

// Client calls the data service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	cb         *gobreaker.CircuitBreaker[[]byte]
	name       string
}

// NewClient creates a data service client.
//
// Breaker settings:
//   - 3 probe requests in half-open state
//   - counts reset every minute while closed
//   - opens at a 60% failure rate over at least 10 requests
//   - stays open for cfg.BreakerTimeout
func NewClient(cfg *config.DashboardConfig) *Client {
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.RequestBurst
	if burst < 1 {
		burst = 1
	}

	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= 0.6
			if shouldTrip {
				logging.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
	})

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.APIURL, "/"),
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		limiter:    rate.NewLimiter(limit, burst),
		cb:         cb,
		name:       breakerName,
	}
}

// FetchAllData reads every record from /api/data.
func (c *Client) FetchAllData(ctx context.Context) ([]models.Record, error) {
	var records []models.Record
	if err := c.fetch(ctx, AllDataPath, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// FetchFiltered reads the chart projection from /api/data/filter.
func (c *Client) FetchFiltered(ctx context.Context) ([]models.FilteredRecord, error) {
	var records []models.FilteredRecord
	if err := c.fetch(ctx, FilteredPath, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// fetch performs one GET and decodes the JSON body into dest. Every
// failure is returned as a *FetchError.
func (c *Client) fetch(ctx context.Context, endpoint string, dest interface{}) (err error) {
	start := time.Now()
	defer func() {
		metrics.RecordDashboardFetch(endpoint, time.Since(start), err)
		if err != nil {
			err = &FetchError{Endpoint: endpoint, Err: err}
		}
	}()

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	body, err := c.execute(func() ([]byte, error) {
		return c.get(ctx, endpoint)
	})
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Endpoint: endpoint, StatusCode: resp.StatusCode, Body: truncate(string(body), 200)}
	}
	return body, nil
}

// StatusError is a non-2xx answer from the data service.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s returned status %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("%s returned status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// execute runs fn through the circuit breaker and records the outcome.
func (c *Client) execute(fn func() ([]byte, error)) ([]byte, error) {
	result, err := c.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(c.name, "rejected").Inc()
			logging.Warn().Err(err).Msg("[CIRCUIT BREAKER] Request rejected")
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(c.name, "failure").Inc()
		}
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(c.name, "success").Inc()
	return result, nil
}

// State returns the current breaker state.
func (c *Client) State() gobreaker.State {
	return c.cb.State()
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
