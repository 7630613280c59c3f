// IGRMap - Renewable Gas Indicator Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/igrmap

package database

import (
	"errors"
	"fmt"
	"io"

	"github.com/tomtom215/igrmap/internal/logging"
)

// ErrUnavailable wraps store errors caused by a lost connection so callers
// can report them distinctly from query failures.
var ErrUnavailable = errors.New("database unavailable")

// wrapQueryError annotates err with the failing operation.
func wrapQueryError(operation string, err error) error {
	if isConnectionError(err) {
		return fmt.Errorf("%s: %w: %w", operation, ErrUnavailable, err)
	}
	return fmt.Errorf("%s: %w", operation, err)
}

// closeWithLog closes a resource and logs any error
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}

// closeQuietly closes a resource and explicitly ignores any error
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
