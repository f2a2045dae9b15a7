// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package moving provides NaN-aware sliding-window statistics over
// row-major matrices of float64 values.
//
// Every kernel has the same shape: for each column independently, and
// for each row r, the statistic is computed over the non-NaN values in
// the trailing window [max(0, r-window+1), r]. Rows where the window
// holds fewer than minCount non-NaN values emit NaN. Columns are
// processed in parallel; the per-column loop is sequential and updates
// its state incrementally as the window slides.
//
// dst and src must both have length rows*cols and must not overlap.
package moving

import "math"

func checkKernel(dst, src []float64, rows, cols, window, minCount int) {
	if rows <= 0 || cols <= 0 {
		panic("moving: nonpositive matrix dimension")
	}
	if len(src) != rows*cols || len(dst) != rows*cols {
		panic("moving: slice length mismatch")
	}
	if window < 1 || window > rows || minCount < 1 || minCount > window {
		panic("moving: window out of range")
	}
}

var nan = math.NaN()
