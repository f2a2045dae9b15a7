// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package moving

import (
	"gonum.org/v1/quant/internal/accum"
	"gonum.org/v1/quant/internal/par"
)

// Sum computes the sliding-window sum of src into dst.
func Sum(dst, src []float64, rows, cols, window, minCount int) {
	checkKernel(dst, src, rows, cols, window, minCount)
	par.Do(cols, func(start, end int) {
		for c := start; c < end; c++ {
			var a accum.Sum
			for r := 0; r < rows; r++ {
				a.Add(src[r*cols+c])
				if r >= window {
					a.Remove(src[(r-window)*cols+c])
				}
				if a.Count() >= minCount {
					dst[r*cols+c] = a.Sum()
				} else {
					dst[r*cols+c] = nan
				}
			}
		}
	})
}

// Mean computes the sliding-window arithmetic mean of src into dst.
func Mean(dst, src []float64, rows, cols, window, minCount int) {
	checkKernel(dst, src, rows, cols, window, minCount)
	par.Do(cols, func(start, end int) {
		for c := start; c < end; c++ {
			var a accum.Sum
			for r := 0; r < rows; r++ {
				a.Add(src[r*cols+c])
				if r >= window {
					a.Remove(src[(r-window)*cols+c])
				}
				if a.Count() >= minCount {
					dst[r*cols+c] = a.Mean()
				} else {
					dst[r*cols+c] = nan
				}
			}
		}
	})
}

// Var computes the sliding-window sample variance (ddof=1) of src into
// dst. Windows holding a single observation emit NaN.
func Var(dst, src []float64, rows, cols, window, minCount int) {
	checkKernel(dst, src, rows, cols, window, minCount)
	par.Do(cols, func(start, end int) {
		for c := start; c < end; c++ {
			var a accum.Var
			for r := 0; r < rows; r++ {
				a.Add(src[r*cols+c])
				if r >= window {
					a.Remove(src[(r-window)*cols+c])
				}
				if a.Count() >= minCount {
					dst[r*cols+c] = a.Variance()
				} else {
					dst[r*cols+c] = nan
				}
			}
		}
	})
}

// Stdev computes the sliding-window sample standard deviation (ddof=1)
// of src into dst.
func Stdev(dst, src []float64, rows, cols, window, minCount int) {
	checkKernel(dst, src, rows, cols, window, minCount)
	par.Do(cols, func(start, end int) {
		for c := start; c < end; c++ {
			var a accum.Var
			for r := 0; r < rows; r++ {
				a.Add(src[r*cols+c])
				if r >= window {
					a.Remove(src[(r-window)*cols+c])
				}
				if a.Count() >= minCount {
					dst[r*cols+c] = a.Stdev()
				} else {
					dst[r*cols+c] = nan
				}
			}
		}
	})
}

// Skew computes the sliding-window bias-corrected sample skewness of
// src into dst. A window whose observations are all equal emits 0.
func Skew(dst, src []float64, rows, cols, window, minCount int) {
	checkKernel(dst, src, rows, cols, window, minCount)
	par.Do(cols, func(start, end int) {
		for c := start; c < end; c++ {
			var a accum.Skew
			a.Reset(src[c])
			for r := 0; r < rows; r++ {
				a.Add(src[r*cols+c])
				if r >= window {
					a.Remove(src[(r-window)*cols+c])
				}
				if a.Count() >= minCount {
					dst[r*cols+c] = a.Skewness()
				} else {
					dst[r*cols+c] = nan
				}
			}
		}
	})
}

// Kurt computes the sliding-window bias-corrected sample excess
// kurtosis of src into dst. A window whose observations are all equal
// emits -3.
func Kurt(dst, src []float64, rows, cols, window, minCount int) {
	checkKernel(dst, src, rows, cols, window, minCount)
	par.Do(cols, func(start, end int) {
		for c := start; c < end; c++ {
			var a accum.Kurt
			a.Reset(src[c])
			for r := 0; r < rows; r++ {
				a.Add(src[r*cols+c])
				if r >= window {
					a.Remove(src[(r-window)*cols+c])
				}
				if a.Count() >= minCount {
					dst[r*cols+c] = a.Kurtosis()
				} else {
					dst[r*cols+c] = nan
				}
			}
		}
	})
}
