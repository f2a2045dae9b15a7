// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package convert

import (
	"math"

	"gonum.org/v1/quant/internal/par"
	"gonum.org/v1/quant/stats"
)

// Backfill propagates, within each column, the next non-NaN value
// backwards into preceding NaN cells. Cells after the last non-NaN
// value stay NaN.
func Backfill(dst, src []float64, rows, cols int) {
	checkShape(dst, src, rows, cols)
	par.Do(cols, func(start, end int) {
		for c := start; c < end; c++ {
			next := nan
			for r := rows - 1; r >= 0; r-- {
				v := src[r*cols+c]
				if !math.IsNaN(v) {
					next = v
				}
				dst[r*cols+c] = next
			}
		}
	})
}

// ForwardFill propagates, within each column, the previous non-NaN
// value forwards into following NaN cells. Cells before the first
// non-NaN value stay NaN.
func ForwardFill(dst, src []float64, rows, cols int) {
	checkShape(dst, src, rows, cols)
	par.Do(cols, func(start, end int) {
		for c := start; c < end; c++ {
			prev := nan
			for r := 0; r < rows; r++ {
				v := src[r*cols+c]
				if !math.IsNaN(v) {
					prev = v
				}
				dst[r*cols+c] = prev
			}
		}
	})
}

// FillByMedian replaces each NaN cell with the median of its column's
// non-NaN values. An all-NaN column stays NaN.
func FillByMedian(dst, src []float64, rows, cols int) {
	checkShape(dst, src, rows, cols)
	medians := make([]float64, cols)
	stats.Median(medians, src, rows, cols, stats.PerColumn)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := src[r*cols+c]
			if math.IsNaN(v) {
				v = medians[c]
			}
			dst[r*cols+c] = v
		}
	}
}

// FillZero replaces each NaN cell with zero.
func FillZero(dst, src []float64, rows, cols int) {
	checkShape(dst, src, rows, cols)
	for i, v := range src {
		if math.IsNaN(v) {
			v = 0
		}
		dst[i] = v
	}
}
