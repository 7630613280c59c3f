// IGRMap - Renewable Gas Indicator Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/igrmap

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/igrmap/internal/logging"
)

// PeriodicService runs a job immediately and then every interval until
// the context is canceled.
//
// A job error is logged and the loop continues; only maxConsecutiveErrors
// failures in a row end Serve with an error so the supervisor restarts it.
type PeriodicService struct {
	name                 string
	interval             time.Duration
	job                  func(ctx context.Context) error
	maxConsecutiveErrors int
}

// NewPeriodicService creates a periodic job. A non-positive interval
// defaults to one minute.
func NewPeriodicService(name string, interval time.Duration, job func(ctx context.Context) error) *PeriodicService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &PeriodicService{
		name:                 name,
		interval:             interval,
		job:                  job,
		maxConsecutiveErrors: 5,
	}
}

// Serve implements suture.Service.
func (p *PeriodicService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	failures := 0
	for {
		if err := p.job(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			failures++
			logging.Warn().Err(err).Str("service", p.name).Int("consecutive_failures", failures).Msg("Periodic job failed")
			if failures >= p.maxConsecutiveErrors {
				return fmt.Errorf("%s failed %d times in a row: %w", p.name, failures, err)
			}
		} else {
			failures = 0
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// String implements fmt.Stringer; suture uses it in log messages.
func (p *PeriodicService) String() string {
	return p.name
}
