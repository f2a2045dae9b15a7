// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package convert transforms price matrices between the four return
// spaces and provides the structural repair kernels that accompany
// them.
//
// The four spaces are related by
//
//	equity      price level p_t
//	pct         simple return p_t/p_{t-1} - 1
//	log         log return ln(p_t/p_{t-1})
//	equity_log  cumulative log level ln(p_t)
//
// All kernels preserve shape and, except where a first row is defined
// to be fabricated, preserve the NaN mask of their input. Matrices are
// row-major with length rows*cols.
package convert

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"gonum.org/v1/quant/internal/par"
)

var nan = math.NaN()

func checkShape(dst, src []float64, rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic("convert: nonpositive matrix dimension")
	}
	if len(src) != rows*cols || len(dst) != rows*cols {
		panic("convert: slice length mismatch")
	}
}

// EquityToLog writes the log return of the price level src into dst.
// The first row is NaN.
func EquityToLog(dst, src []float64, rows, cols int) {
	checkShape(dst, src, rows, cols)
	for c := 0; c < cols; c++ {
		dst[c] = nan
	}
	for i := cols; i < rows*cols; i++ {
		dst[i] = math.Log(src[i] / src[i-cols])
	}
}

// EquityToPct writes the simple return of the price level src into
// dst. The first row is NaN.
func EquityToPct(dst, src []float64, rows, cols int) {
	checkShape(dst, src, rows, cols)
	for c := 0; c < cols; c++ {
		dst[c] = nan
	}
	for i := cols; i < rows*cols; i++ {
		dst[i] = src[i]/src[i-cols] - 1
	}
}

// EquityToEquityLog writes the elementwise natural log of src into
// dst, preserving NaN.
func EquityToEquityLog(dst, src []float64, rows, cols int) {
	checkShape(dst, src, rows, cols)
	for i, v := range src {
		dst[i] = math.Log(v)
	}
}

// EquityLogToEquity writes the elementwise exponential of src into
// dst, preserving NaN.
func EquityLogToEquity(dst, src []float64, rows, cols int) {
	checkShape(dst, src, rows, cols)
	for i, v := range src {
		dst[i] = math.Exp(v)
	}
}

// EquityLogToLog writes the first difference of the log level src into
// dst. The first row is NaN.
func EquityLogToLog(dst, src []float64, rows, cols int) {
	checkShape(dst, src, rows, cols)
	for c := 0; c < cols; c++ {
		dst[c] = nan
	}
	for i := cols; i < rows*cols; i++ {
		dst[i] = src[i] - src[i-cols]
	}
}

// PctToEquity compounds the simple returns in src into a price level
// in dst. NaN returns compound as zero and the NaN mask is restored on
// the result.
func PctToEquity(dst, src []float64, rows, cols int) {
	checkShape(dst, src, rows, cols)
	cumulative(dst, src, rows, cols, func(scratch []float64) {
		for i, v := range scratch {
			scratch[i] = 1 + v
		}
		floats.CumProd(scratch, scratch)
	})
}

// PctToLog writes log1p of the simple returns in src into dst under
// the NaN mask.
func PctToLog(dst, src []float64, rows, cols int) {
	checkShape(dst, src, rows, cols)
	for i, v := range src {
		dst[i] = math.Log1p(v)
	}
}

// LogToPct writes expm1 of the log returns in src into dst under the
// NaN mask.
func LogToPct(dst, src []float64, rows, cols int) {
	checkShape(dst, src, rows, cols)
	for i, v := range src {
		dst[i] = math.Expm1(v)
	}
}

// LogToEquityLog accumulates the log returns in src into a cumulative
// log level in dst. NaN returns accumulate as zero and the NaN mask is
// restored on the result.
func LogToEquityLog(dst, src []float64, rows, cols int) {
	checkShape(dst, src, rows, cols)
	cumulative(dst, src, rows, cols, func(scratch []float64) {
		floats.CumSum(scratch, scratch)
	})
}

// PctToEquityLog converts the simple returns in src to log returns and
// accumulates them into a cumulative log level in dst. NaN returns
// accumulate as zero and the NaN mask is restored on the result.
func PctToEquityLog(dst, src []float64, rows, cols int) {
	checkShape(dst, src, rows, cols)
	cumulative(dst, src, rows, cols, func(scratch []float64) {
		for i, v := range scratch {
			scratch[i] = math.Log1p(v)
		}
		floats.CumSum(scratch, scratch)
	})
}

// cumulative runs a column-sequential accumulation: each column is
// gathered with NaN replaced by zero, transformed contiguously by fn,
// and scattered back with the input's NaN mask restored.
func cumulative(dst, src []float64, rows, cols int, fn func(scratch []float64)) {
	par.Do(cols, func(start, end int) {
		scratch := make([]float64, rows)
		for c := start; c < end; c++ {
			for r := 0; r < rows; r++ {
				v := src[r*cols+c]
				if math.IsNaN(v) {
					v = 0
				}
				scratch[r] = v
			}
			fn(scratch)
			for r := 0; r < rows; r++ {
				if math.IsNaN(src[r*cols+c]) {
					dst[r*cols+c] = nan
				} else {
					dst[r*cols+c] = scratch[r]
				}
			}
		}
	})
}
