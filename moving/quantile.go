// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package moving

import (
	"math"
	"sort"

	"gonum.org/v1/quant/internal/par"
)

// Median computes the sliding-window median of src into dst. For an
// even number of observations the two middle values are averaged.
func Median(dst, src []float64, rows, cols, window, minCount int) {
	Quantile(0.5, dst, src, rows, cols, window, minCount)
}

// Quantile computes the sliding-window q-quantile of src into dst,
// linearly interpolating between the two bracketing observations. q
// must lie in [0, 1].
func Quantile(q float64, dst, src []float64, rows, cols, window, minCount int) {
	checkKernel(dst, src, rows, cols, window, minCount)
	if math.IsNaN(q) || q < 0 || q > 1 {
		panic("moving: quantile out of range")
	}
	par.Do(cols, func(start, end int) {
		var w sortedWindow
		for c := start; c < end; c++ {
			w.reset(window)
			for r := 0; r < rows; r++ {
				if v := src[r*cols+c]; !math.IsNaN(v) {
					w.insert(v)
				}
				if r >= window {
					if v := src[(r-window)*cols+c]; !math.IsNaN(v) {
						w.remove(v)
					}
				}
				if w.len() >= minCount {
					dst[r*cols+c] = w.quantile(q)
				} else {
					dst[r*cols+c] = nan
				}
			}
		}
	})
}

// sortedWindow is an order-statistic multiset of the window's non-NaN
// values, kept as a sorted slice. Window lengths are small enough that
// the memmove on insert and erase beats tree bookkeeping.
type sortedWindow struct {
	a []float64
}

func (w *sortedWindow) reset(capacity int) {
	if cap(w.a) < capacity {
		w.a = make([]float64, 0, capacity)
	}
	w.a = w.a[:0]
}

func (w *sortedWindow) len() int { return len(w.a) }

func (w *sortedWindow) insert(v float64) {
	i := sort.SearchFloat64s(w.a, v)
	w.a = append(w.a, 0)
	copy(w.a[i+1:], w.a[i:])
	w.a[i] = v
}

func (w *sortedWindow) remove(v float64) {
	i := sort.SearchFloat64s(w.a, v)
	w.a = append(w.a[:i], w.a[i+1:]...)
}

// countLE returns the number of held values less than or equal to v.
func (w *sortedWindow) countLE(v float64) int {
	return sort.Search(len(w.a), func(i int) bool { return w.a[i] > v })
}

// quantile returns the interpolated q-quantile of the held values.
func (w *sortedWindow) quantile(q float64) float64 {
	n := len(w.a)
	if n == 0 {
		return nan
	}
	idx := q * float64(n-1)
	k := int(idx)
	frac := idx - float64(k)
	if frac == 0 || k+1 == n {
		return w.a[k]
	}
	return w.a[k] + frac*(w.a[k+1]-w.a[k])
}
