// IGRMap - Renewable Gas Indicator Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/igrmap

package dashboard

// Paginate returns page number page (1-indexed) of size rows. Pages past
// the end yield an empty slice; page and size must be at least 1.
func Paginate[T any](records []T, page, size int) []T {
	start, end := pageBounds(len(records), page, size)
	if start == end {
		return []T{}
	}
	return records[start:end]
}

// pageBounds returns the half-open row range of page over n rows. An
// invalid or out-of-range page yields (n, n). The range check runs before
// any multiplication so huge page or size values cannot overflow.
func pageBounds(n, page, size int) (start, end int) {
	if page < 1 || size < 1 || page > PageCount(n, size) {
		return n, n
	}
	// page-1 <= (n-1)/size, so start <= n-1.
	start = (page - 1) * size
	end = n
	if size < n-start {
		end = start + size
	}
	return start, end
}

// PageCount is the number of pages needed to show n rows.
func PageCount(n, size int) int {
	if size < 1 || n <= 0 {
		return 0
	}
	return (n-1)/size + 1
}
