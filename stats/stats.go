// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats provides NaN-excluding whole-series reductions and the
// cross-sectional normalized rank over row-major matrices of float64
// values.
//
// Reductions collapse one axis of the matrix: with PerColumn the
// result has one element per column (a 1×cols row), with PerRow one
// element per row (a rows×1 column). NaN values never contribute to an
// observation count; a series without any usable observation reduces
// to NaN, never an error.
package stats

import (
	"math"
	"sort"

	"gonum.org/v1/quant/internal/accum"
	"gonum.org/v1/quant/internal/par"
)

// Axis selects which dimension a reduction collapses.
type Axis int

const (
	// PerColumn collapses the rows of each column; the result has
	// one element per column.
	PerColumn Axis = iota
	// PerRow collapses the columns of each row; the result has one
	// element per row.
	PerRow
)

func checkReduce(dst, src []float64, rows, cols int, axis Axis) {
	if rows <= 0 || cols <= 0 {
		panic("stats: nonpositive matrix dimension")
	}
	if len(src) != rows*cols {
		panic("stats: slice length mismatch")
	}
	switch axis {
	case PerColumn:
		if len(dst) != cols {
			panic("stats: slice length mismatch")
		}
	case PerRow:
		if len(dst) != rows {
			panic("stats: slice length mismatch")
		}
	default:
		panic("stats: invalid axis")
	}
}

// reduce gathers the non-NaN values of each series along the collapsed
// axis and applies f. Series run in parallel.
func reduce(dst, src []float64, rows, cols int, axis Axis, f func(vals []float64) float64) {
	series, length := cols, rows
	if axis == PerRow {
		series, length = rows, cols
	}
	par.Do(series, func(start, end int) {
		buf := make([]float64, 0, length)
		for i := start; i < end; i++ {
			buf = buf[:0]
			for j := 0; j < length; j++ {
				var v float64
				if axis == PerColumn {
					v = src[j*cols+i]
				} else {
					v = src[i*cols+j]
				}
				if !math.IsNaN(v) {
					buf = append(buf, v)
				}
			}
			dst[i] = f(buf)
		}
	})
}

// Sum reduces src along axis into dst with a compensated sum.
func Sum(dst, src []float64, rows, cols int, axis Axis) {
	checkReduce(dst, src, rows, cols, axis)
	reduce(dst, src, rows, cols, axis, func(vals []float64) float64 {
		if len(vals) == 0 {
			return math.NaN()
		}
		var a accum.Sum
		for _, v := range vals {
			a.Add(v)
		}
		return a.Sum()
	})
}

// Mean reduces src along axis into dst with the arithmetic mean.
func Mean(dst, src []float64, rows, cols int, axis Axis) {
	checkReduce(dst, src, rows, cols, axis)
	reduce(dst, src, rows, cols, axis, func(vals []float64) float64 {
		var a accum.Sum
		for _, v := range vals {
			a.Add(v)
		}
		return a.Mean()
	})
}

// Var reduces src along axis into dst with the sample variance
// (ddof=1).
func Var(dst, src []float64, rows, cols int, axis Axis) {
	checkReduce(dst, src, rows, cols, axis)
	reduce(dst, src, rows, cols, axis, func(vals []float64) float64 {
		var a accum.Var
		for _, v := range vals {
			a.Add(v)
		}
		return a.Variance()
	})
}

// Stdev reduces src along axis into dst with the sample standard
// deviation (ddof=1).
func Stdev(dst, src []float64, rows, cols int, axis Axis) {
	checkReduce(dst, src, rows, cols, axis)
	reduce(dst, src, rows, cols, axis, func(vals []float64) float64 {
		var a accum.Var
		for _, v := range vals {
			a.Add(v)
		}
		return a.Stdev()
	})
}

// Skew reduces src along axis into dst with the bias-corrected sample
// skewness. A constant series reduces to 0.
func Skew(dst, src []float64, rows, cols int, axis Axis) {
	checkReduce(dst, src, rows, cols, axis)
	reduce(dst, src, rows, cols, axis, func(vals []float64) float64 {
		var a accum.Skew
		if len(vals) > 0 {
			a.Reset(vals[0])
		}
		for _, v := range vals {
			a.Add(v)
		}
		return a.Skewness()
	})
}

// Kurt reduces src along axis into dst with the bias-corrected sample
// excess kurtosis. A constant series reduces to -3.
func Kurt(dst, src []float64, rows, cols int, axis Axis) {
	checkReduce(dst, src, rows, cols, axis)
	reduce(dst, src, rows, cols, axis, func(vals []float64) float64 {
		var a accum.Kurt
		if len(vals) > 0 {
			a.Reset(vals[0])
		}
		for _, v := range vals {
			a.Add(v)
		}
		return a.Kurtosis()
	})
}

// Min reduces src along axis into dst with the minimum.
func Min(dst, src []float64, rows, cols int, axis Axis) {
	checkReduce(dst, src, rows, cols, axis)
	reduce(dst, src, rows, cols, axis, func(vals []float64) float64 {
		if len(vals) == 0 {
			return math.NaN()
		}
		m := vals[0]
		for _, v := range vals[1:] {
			if v < m {
				m = v
			}
		}
		return m
	})
}

// Max reduces src along axis into dst with the maximum.
func Max(dst, src []float64, rows, cols int, axis Axis) {
	checkReduce(dst, src, rows, cols, axis)
	reduce(dst, src, rows, cols, axis, func(vals []float64) float64 {
		if len(vals) == 0 {
			return math.NaN()
		}
		m := vals[0]
		for _, v := range vals[1:] {
			if v > m {
				m = v
			}
		}
		return m
	})
}

// Median reduces src along axis into dst with the median.
func Median(dst, src []float64, rows, cols int, axis Axis) {
	Quantile(0.5, dst, src, rows, cols, axis)
}

// Quantile reduces src along axis into dst with the interpolated
// q-quantile. q must lie in [0, 1].
func Quantile(q float64, dst, src []float64, rows, cols int, axis Axis) {
	checkReduce(dst, src, rows, cols, axis)
	if math.IsNaN(q) || q < 0 || q > 1 {
		panic("stats: quantile out of range")
	}
	reduce(dst, src, rows, cols, axis, func(vals []float64) float64 {
		n := len(vals)
		if n == 0 {
			return math.NaN()
		}
		sort.Float64s(vals)
		idx := q * float64(n-1)
		k := int(idx)
		frac := idx - float64(k)
		if frac == 0 || k+1 == n {
			return vals[k]
		}
		return vals[k] + frac*(vals[k+1]-vals[k])
	})
}

// Rank reduces src along axis into dst with the rank of the last
// non-NaN observation among the series, normalized to [0, 1]. Equal
// values rank the trailing observation above its elders. A series with
// a single observation reduces to 0.
func Rank(dst, src []float64, rows, cols int, axis Axis) {
	checkReduce(dst, src, rows, cols, axis)
	reduce(dst, src, rows, cols, axis, func(vals []float64) float64 {
		n := len(vals)
		if n == 0 {
			return math.NaN()
		}
		if n == 1 {
			return 0
		}
		last := vals[n-1]
		le := 0
		for _, v := range vals {
			if v <= last {
				le++
			}
		}
		return float64(le-1) / float64(n-1)
	})
}
