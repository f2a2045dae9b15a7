// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package moving

import (
	"math"

	"gonum.org/v1/quant/internal/par"
)

// Min computes the sliding-window minimum of src into dst.
func Min(dst, src []float64, rows, cols, window, minCount int) {
	checkKernel(dst, src, rows, cols, window, minCount)
	extremum(dst, src, rows, cols, window, minCount, func(a, b float64) bool { return a <= b })
}

// Max computes the sliding-window maximum of src into dst.
func Max(dst, src []float64, rows, cols, window, minCount int) {
	checkKernel(dst, src, rows, cols, window, minCount)
	extremum(dst, src, rows, cols, window, minCount, func(a, b float64) bool { return a >= b })
}

// extremum runs the shared monotonic-deque scan. dominates reports
// whether a newly arrived value makes an earlier candidate redundant;
// <= selects the minimum, >= the maximum.
func extremum(dst, src []float64, rows, cols, window, minCount int, dominates func(a, b float64) bool) {
	par.Do(cols, func(start, end int) {
		deque := make([]int, 0, window)
		for c := start; c < end; c++ {
			deque = deque[:0]
			count := 0
			for r := 0; r < rows; r++ {
				v := src[r*cols+c]
				if !math.IsNaN(v) {
					count++
					// Dominated candidates can never become the
					// window extremum again.
					for len(deque) > 0 && dominates(v, src[deque[len(deque)-1]*cols+c]) {
						deque = deque[:len(deque)-1]
					}
					deque = append(deque, r)
				}
				if r >= window {
					if !math.IsNaN(src[(r-window)*cols+c]) {
						count--
					}
				}
				// Expire candidates that slid out of the window.
				for len(deque) > 0 && deque[0] <= r-window {
					deque = deque[1:]
				}
				if count >= minCount && len(deque) > 0 {
					dst[r*cols+c] = src[deque[0]*cols+c]
				} else {
					dst[r*cols+c] = nan
				}
			}
		}
	})
}
