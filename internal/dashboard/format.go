// IGRMap - Renewable Gas Indicator Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/igrmap

package dashboard

import (
	"math"
	"strconv"
	"strings"
)

// formatFloat renders v the way the dashboard labels have always shown
// values: shortest round-trip digits, integral values keep a ".0"
// suffix, and exponent form outside [1e-4, 1e16).
func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// formatIGRM renders an optional indicator value.
func formatIGRM(v *float64) string {
	if v == nil {
		return "nan"
	}
	return formatFloat(*v)
}
