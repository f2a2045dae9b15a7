// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"gonum.org/v1/quant/convert"
	"gonum.org/v1/quant/moving"
	"gonum.org/v1/quant/stats"
)

// Collect materializes the frame's plan and returns the result with an
// empty plan. The returned frame always owns freshly allocated data,
// independent of the receiver and of any frame sharing its buffer.
// Frame operands inside the plan are collected recursively. Labels
// survive as long as their axis does.
func (f Frame) Collect() Frame {
	buf := append([]float64(nil), f.data...)
	rows, cols := f.rows, f.cols
	for _, n := range f.plan {
		buf, rows, cols = n.execute(buf, rows, cols)
	}
	g := Frame{rows: rows, cols: cols, data: buf, outRows: rows, outCols: cols}
	if rows == f.rows {
		g.rowLabels = f.rowLabels
	}
	if cols == f.cols {
		g.colLabels = f.colLabels
	}
	return g
}

// execute applies one node to a privately owned buffer, returning the
// result buffer and its shape. Elementwise nodes reuse the buffer in
// place; shape-changing and window nodes allocate.
func (n node) execute(src []float64, rows, cols int) ([]float64, int, int) {
	switch n.op {
	case opAddScalar:
		floats.AddConst(n.scalar, src)
		return src, rows, cols
	case opSubScalar:
		floats.AddConst(-n.scalar, src)
		return src, rows, cols
	case opMulScalar:
		floats.Scale(n.scalar, src)
		return src, rows, cols
	case opDivScalar:
		for i, v := range src {
			src[i] = v / n.scalar
		}
		return src, rows, cols
	case opTargetScalar:
		for i, v := range src {
			src[i] = n.scalar / v
		}
		return src, rows, cols

	case opAdd, opSub, opMul, opDiv:
		rhs := n.other.Collect()
		return combine(n.op, src, rows, cols, rhs.data, rhs.rows, rhs.cols)

	case opSign:
		for i, v := range src {
			switch {
			case v > 0:
				src[i] = 1
			case v < 0:
				src[i] = -1
			}
			// 0, -0 and NaN pass through.
		}
		return src, rows, cols
	case opAbs:
		for i, v := range src {
			src[i] = math.Abs(v)
		}
		return src, rows, cols
	case opSqrt:
		for i, v := range src {
			src[i] = math.Sqrt(v)
		}
		return src, rows, cols
	case opClip:
		for i, v := range src {
			if v > n.scalar {
				src[i] = n.scalar
			} else if v < -n.scalar {
				src[i] = -n.scalar
			}
		}
		return src, rows, cols
	case opLongBias:
		for i, v := range src {
			if v < 0 {
				src[i] = 0
			}
		}
		return src, rows, cols
	case opShortBias:
		for i, v := range src {
			if v > 0 {
				src[i] = 0
			}
		}
		return src, rows, cols

	case opShift:
		dst := make([]float64, len(src))
		convert.Shift(dst, src, rows, cols, n.shift)
		return dst, rows, cols
	case opCrossRank:
		dst := make([]float64, len(src))
		stats.CrossRank(dst, src, rows, cols)
		return dst, rows, cols
	case opFillZero:
		dst := make([]float64, len(src))
		convert.FillZero(dst, src, rows, cols)
		return dst, rows, cols
	case opBackfill:
		dst := make([]float64, len(src))
		convert.Backfill(dst, src, rows, cols)
		return dst, rows, cols
	case opForwardFill:
		dst := make([]float64, len(src))
		convert.ForwardFill(dst, src, rows, cols)
		return dst, rows, cols
	case opFillMedian:
		dst := make([]float64, len(src))
		convert.FillByMedian(dst, src, rows, cols)
		return dst, rows, cols

	case opWindow:
		if n.window > rows {
			panic(ErrWindow)
		}
		dst := make([]float64, len(src))
		window, minCount := n.window, n.minCount
		switch n.stat {
		case statMean:
			moving.Mean(dst, src, rows, cols, window, minCount)
		case statMedian:
			moving.Median(dst, src, rows, cols, window, minCount)
		case statMin:
			moving.Min(dst, src, rows, cols, window, minCount)
		case statMax:
			moving.Max(dst, src, rows, cols, window, minCount)
		case statSum:
			moving.Sum(dst, src, rows, cols, window, minCount)
		case statStdev:
			moving.Stdev(dst, src, rows, cols, window, minCount)
		case statVar:
			moving.Var(dst, src, rows, cols, window, minCount)
		case statSkew:
			moving.Skew(dst, src, rows, cols, window, minCount)
		case statKurt:
			moving.Kurt(dst, src, rows, cols, window, minCount)
		case statRank:
			moving.Rank(dst, src, rows, cols, window, minCount)
		case statQuantile:
			moving.Quantile(n.scalar, dst, src, rows, cols, window, minCount)
		}
		return dst, rows, cols

	case opAgg:
		outRows, outCols := 1, cols
		if n.axis == stats.PerRow {
			outRows, outCols = rows, 1
		}
		dst := make([]float64, outRows*outCols)
		switch n.stat {
		case statMean:
			stats.Mean(dst, src, rows, cols, n.axis)
		case statMedian:
			stats.Median(dst, src, rows, cols, n.axis)
		case statMin:
			stats.Min(dst, src, rows, cols, n.axis)
		case statMax:
			stats.Max(dst, src, rows, cols, n.axis)
		case statSum:
			stats.Sum(dst, src, rows, cols, n.axis)
		case statStdev:
			stats.Stdev(dst, src, rows, cols, n.axis)
		case statVar:
			stats.Var(dst, src, rows, cols, n.axis)
		case statSkew:
			stats.Skew(dst, src, rows, cols, n.axis)
		case statKurt:
			stats.Kurt(dst, src, rows, cols, n.axis)
		case statRank:
			stats.Rank(dst, src, rows, cols, n.axis)
		case statQuantile:
			stats.Quantile(n.scalar, dst, src, rows, cols, n.axis)
		}
		return dst, outRows, outCols

	case opConvert:
		dst := make([]float64, len(src))
		switch n.conv {
		case convEquityToLog:
			convert.EquityToLog(dst, src, rows, cols)
		case convEquityToPct:
			convert.EquityToPct(dst, src, rows, cols)
		case convEquityToEquityLog:
			convert.EquityToEquityLog(dst, src, rows, cols)
		case convEquityLogToEquity:
			convert.EquityLogToEquity(dst, src, rows, cols)
		case convEquityLogToLog:
			convert.EquityLogToLog(dst, src, rows, cols)
		case convPctToEquity:
			convert.PctToEquity(dst, src, rows, cols)
		case convPctToLog:
			convert.PctToLog(dst, src, rows, cols)
		case convLogToPct:
			convert.LogToPct(dst, src, rows, cols)
		case convLogToEquityLog:
			convert.LogToEquityLog(dst, src, rows, cols)
		case convPctToEquityLog:
			convert.PctToEquityLog(dst, src, rows, cols)
		}
		return dst, rows, cols
	}
	panic(Error("frame: invalid expression node"))
}

// combine applies binary arithmetic between a buffer and a collected
// operand, broadcasting a reduced axis of either side back to the full
// shape. Equal shapes reuse the left buffer.
func combine(op opcode, a []float64, ra, ca int, b []float64, rb, cb int) ([]float64, int, int) {
	if !broadcastable(ra, ca, rb, cb) {
		panic(ErrShape)
	}
	if ra == rb && ca == cb {
		switch op {
		case opAdd:
			floats.Add(a, b)
		case opSub:
			floats.Sub(a, b)
		case opMul:
			floats.Mul(a, b)
		case opDiv:
			floats.Div(a, b)
		}
		return a, ra, ca
	}
	rows, cols := ra, ca
	if rb > rows {
		rows = rb
	}
	if cb > cols {
		cols = cb
	}
	out := make([]float64, rows*cols)
	for r := 0; r < rows; r++ {
		arr, brr := r, r
		if ra == 1 {
			arr = 0
		}
		if rb == 1 {
			brr = 0
		}
		for c := 0; c < cols; c++ {
			ac, bc := c, c
			if ca == 1 {
				ac = 0
			}
			if cb == 1 {
				bc = 0
			}
			x, y := a[arr*ca+ac], b[brr*cb+bc]
			var v float64
			switch op {
			case opAdd:
				v = x + y
			case opSub:
				v = x - y
			case opMul:
				v = x * y
			case opDiv:
				v = x / y
			}
			out[r*cols+c] = v
		}
	}
	return out, rows, cols
}
