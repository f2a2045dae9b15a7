// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package moving

import (
	"math"

	"gonum.org/v1/quant/internal/par"
)

// Rank computes the trailing rank of each element among the non-NaN
// values of its window, normalized to [0, 1]. Ties resolve by
// insertion order with older observations ranking lower, so the
// current element ranks above every equal value already in the window.
// A NaN element emits NaN regardless of the window count; a window
// holding a single observation emits 0.
func Rank(dst, src []float64, rows, cols, window, minCount int) {
	checkKernel(dst, src, rows, cols, window, minCount)
	par.Do(cols, func(start, end int) {
		var w sortedWindow
		for c := start; c < end; c++ {
			w.reset(window)
			for r := 0; r < rows; r++ {
				v := src[r*cols+c]
				if !math.IsNaN(v) {
					w.insert(v)
				}
				if r >= window {
					if old := src[(r-window)*cols+c]; !math.IsNaN(old) {
						w.remove(old)
					}
				}
				n := w.len()
				if math.IsNaN(v) || n < minCount {
					dst[r*cols+c] = nan
					continue
				}
				if n == 1 {
					dst[r*cols+c] = 0
					continue
				}
				dst[r*cols+c] = float64(w.countLE(v)-1) / float64(n-1)
			}
		}
	})
}
