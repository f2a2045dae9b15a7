// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"math"

	"gonum.org/v1/quant/stats"
)

// broadcastable reports whether two planned shapes can combine
// elementwise, allowing a collapsed axis of length one to stretch.
func broadcastable(ra, ca, rb, cb int) bool {
	return (ra == rb || ra == 1 || rb == 1) && (ca == cb || ca == 1 || cb == 1)
}

func (f Frame) binary(op opcode, other Frame) Frame {
	if !broadcastable(f.outRows, f.outCols, other.outRows, other.outCols) {
		panic(ErrShape)
	}
	o := other
	g := f.push(node{op: op, other: &o})
	if other.outRows > g.outRows {
		g.outRows = other.outRows
	}
	if other.outCols > g.outCols {
		g.outCols = other.outCols
	}
	return g
}

// Add records elementwise addition of other. The operand may carry its
// own plan; it is collected when this frame is. Shapes must match, or
// be reconcilable by broadcasting a reduced axis.
func (f Frame) Add(other Frame) Frame { return f.binary(opAdd, other) }

// Sub records elementwise subtraction of other.
func (f Frame) Sub(other Frame) Frame { return f.binary(opSub, other) }

// Mul records elementwise multiplication by other.
func (f Frame) Mul(other Frame) Frame { return f.binary(opMul, other) }

// Div records elementwise division by other.
func (f Frame) Div(other Frame) Frame { return f.binary(opDiv, other) }

// AddScalar records elementwise addition of v.
func (f Frame) AddScalar(v float64) Frame { return f.push(node{op: opAddScalar, scalar: v}) }

// SubScalar records elementwise subtraction of v.
func (f Frame) SubScalar(v float64) Frame { return f.push(node{op: opSubScalar, scalar: v}) }

// MulScalar records elementwise multiplication by v.
func (f Frame) MulScalar(v float64) Frame { return f.push(node{op: opMulScalar, scalar: v}) }

// DivScalar records elementwise division by v.
func (f Frame) DivScalar(v float64) Frame { return f.push(node{op: opDivScalar, scalar: v}) }

// Target records the inverse scalar division v / x, the building block
// of volatility targeting.
func (f Frame) Target(v float64) Frame { return f.push(node{op: opTargetScalar, scalar: v}) }

// Sign records the elementwise sign: -1, 0 or +1, with NaN preserved.
func (f Frame) Sign() Frame { return f.push(node{op: opSign}) }

// Abs records the elementwise absolute value.
func (f Frame) Abs() Frame { return f.push(node{op: opAbs}) }

// Sqrt records the elementwise square root; negative values map to NaN.
func (f Frame) Sqrt() Frame { return f.push(node{op: opSqrt}) }

// Clip records clamping into [-limit, limit]. It panics with
// ErrClipLimit when limit is negative or NaN.
func (f Frame) Clip(limit float64) Frame {
	if math.IsNaN(limit) || limit < 0 {
		panic(ErrClipLimit)
	}
	return f.push(node{op: opClip, scalar: limit})
}

// LongBias records clamping to the positive part: negative values
// become 0.
func (f Frame) LongBias() Frame { return f.push(node{op: opLongBias}) }

// ShortBias records clamping to the negative part: positive values
// become 0.
func (f Frame) ShortBias() Frame { return f.push(node{op: opShortBias}) }

// Shift records a row shift by k: positive k shifts down, introducing
// k leading NaN rows; negative k shifts up.
func (f Frame) Shift(k int) Frame { return f.push(node{op: opShift, shift: k}) }

// CrossRank records the cross-sectional normalized rank of each row
// into [-1, 1].
func (f Frame) CrossRank() Frame { return f.push(node{op: opCrossRank}) }

// FillNaN records replacement of NaN cells with zero.
func (f Frame) FillNaN() Frame { return f.push(node{op: opFillZero}) }

// Backfill records backward propagation of the next valid value into
// preceding NaN cells, per column.
func (f Frame) Backfill() Frame { return f.push(node{op: opBackfill}) }

// ForwardFill records forward propagation of the previous valid value
// into following NaN cells, per column.
func (f Frame) ForwardFill() Frame { return f.push(node{op: opForwardFill}) }

// FillByMedian records replacement of NaN cells with their column
// median.
func (f Frame) FillByMedian() Frame { return f.push(node{op: opFillMedian}) }

// A Window records trailing-window statistics. Obtain one from Rolling
// or Expanding; each statistic method returns the parent frame with
// the windowed node appended.
type Window struct {
	f        Frame
	window   int
	minCount int
}

// Rolling returns a window builder over trailing windows of the given
// length with minCount equal to the length. It panics with ErrWindow
// when the length is outside [1, rows].
func (f Frame) Rolling(window int) Window {
	if window < 1 || window > f.outRows {
		panic(ErrWindow)
	}
	return Window{f: f, window: window, minCount: window}
}

// Expanding returns a window builder whose window spans all preceding
// rows, emitting once minCount observations have accumulated. It
// panics with ErrWindow when minCount is outside [1, rows].
func (f Frame) Expanding(minCount int) Window {
	if minCount < 1 || minCount > f.outRows {
		panic(ErrWindow)
	}
	return Window{f: f, window: f.outRows, minCount: minCount}
}

// MinCount returns a copy of the builder emitting once m observations
// are in the window. It panics with ErrWindow when m is outside
// [1, window].
func (w Window) MinCount(m int) Window {
	if m < 1 || m > w.window {
		panic(ErrWindow)
	}
	w.minCount = m
	return w
}

func (w Window) stat(s statKind, q float64) Frame {
	return w.f.push(node{op: opWindow, stat: s, scalar: q, window: w.window, minCount: w.minCount})
}

// Mean records the windowed arithmetic mean.
func (w Window) Mean() Frame { return w.stat(statMean, 0) }

// Median records the windowed median.
func (w Window) Median() Frame { return w.stat(statMedian, 0) }

// Min records the windowed minimum.
func (w Window) Min() Frame { return w.stat(statMin, 0) }

// Max records the windowed maximum.
func (w Window) Max() Frame { return w.stat(statMax, 0) }

// Sum records the windowed sum.
func (w Window) Sum() Frame { return w.stat(statSum, 0) }

// Stdev records the windowed sample standard deviation (ddof=1).
func (w Window) Stdev() Frame { return w.stat(statStdev, 0) }

// Var records the windowed sample variance (ddof=1).
func (w Window) Var() Frame { return w.stat(statVar, 0) }

// Skew records the windowed bias-corrected sample skewness.
func (w Window) Skew() Frame { return w.stat(statSkew, 0) }

// Kurt records the windowed bias-corrected sample excess kurtosis.
func (w Window) Kurt() Frame { return w.stat(statKurt, 0) }

// Rank records the windowed trailing rank, normalized to [0, 1].
func (w Window) Rank() Frame { return w.stat(statRank, 0) }

// Quantile records the windowed interpolated q-quantile. It panics
// with ErrQuantile when q is outside [0, 1].
func (w Window) Quantile(q float64) Frame {
	if math.IsNaN(q) || q < 0 || q > 1 {
		panic(ErrQuantile)
	}
	return w.stat(statQuantile, q)
}

// An Agg records whole-series reductions. Obtain one from Frame.Agg;
// each statistic method returns the parent frame with the reduction
// appended. The default axis collapses rows, yielding a 1×cols result
// that broadcasts back when combined with further arithmetic.
type Agg struct {
	f    Frame
	axis stats.Axis
}

// Agg returns a reduction builder collapsing the rows of each column.
func (f Frame) Agg() Agg { return Agg{f: f, axis: stats.PerColumn} }

// Rows returns a copy of the builder collapsing the columns of each
// row, yielding a rows×1 result.
func (a Agg) Rows() Agg {
	a.axis = stats.PerRow
	return a
}

func (a Agg) stat(s statKind, q float64) Frame {
	g := a.f.push(node{op: opAgg, stat: s, scalar: q, axis: a.axis})
	if a.axis == stats.PerColumn {
		g.outRows = 1
	} else {
		g.outCols = 1
	}
	return g
}

// Mean records the reduction to the arithmetic mean.
func (a Agg) Mean() Frame { return a.stat(statMean, 0) }

// Median records the reduction to the median.
func (a Agg) Median() Frame { return a.stat(statMedian, 0) }

// Min records the reduction to the minimum.
func (a Agg) Min() Frame { return a.stat(statMin, 0) }

// Max records the reduction to the maximum.
func (a Agg) Max() Frame { return a.stat(statMax, 0) }

// Sum records the reduction to the compensated sum.
func (a Agg) Sum() Frame { return a.stat(statSum, 0) }

// Stdev records the reduction to the sample standard deviation.
func (a Agg) Stdev() Frame { return a.stat(statStdev, 0) }

// Var records the reduction to the sample variance.
func (a Agg) Var() Frame { return a.stat(statVar, 0) }

// Skew records the reduction to the sample skewness.
func (a Agg) Skew() Frame { return a.stat(statSkew, 0) }

// Kurt records the reduction to the sample excess kurtosis.
func (a Agg) Kurt() Frame { return a.stat(statKurt, 0) }

// Rank records the reduction to the normalized rank of the last valid
// observation.
func (a Agg) Rank() Frame { return a.stat(statRank, 0) }

// Quantile records the reduction to the interpolated q-quantile. It
// panics with ErrQuantile when q is outside [0, 1].
func (a Agg) Quantile(q float64) Frame {
	if math.IsNaN(q) || q < 0 || q > 1 {
		panic(ErrQuantile)
	}
	return a.stat(statQuantile, q)
}

// A Converter records return-space conversions. Obtain one from
// Frame.Convert.
type Converter struct {
	f Frame
}

// Convert returns a conversion builder for the frame.
func (f Frame) Convert() Converter { return Converter{f: f} }

func (c Converter) conv(k convKind) Frame { return c.f.push(node{op: opConvert, conv: k}) }

// EquityToLog records conversion from price levels to log returns.
func (c Converter) EquityToLog() Frame { return c.conv(convEquityToLog) }

// EquityToPct records conversion from price levels to simple returns.
func (c Converter) EquityToPct() Frame { return c.conv(convEquityToPct) }

// EquityToEquityLog records conversion from price levels to log
// levels.
func (c Converter) EquityToEquityLog() Frame { return c.conv(convEquityToEquityLog) }

// EquityLogToEquity records conversion from log levels to price
// levels.
func (c Converter) EquityLogToEquity() Frame { return c.conv(convEquityLogToEquity) }

// EquityLogToLog records conversion from log levels to log returns.
func (c Converter) EquityLogToLog() Frame { return c.conv(convEquityLogToLog) }

// PctToEquity records compounding of simple returns into price levels.
func (c Converter) PctToEquity() Frame { return c.conv(convPctToEquity) }

// PctToLog records conversion from simple to log returns.
func (c Converter) PctToLog() Frame { return c.conv(convPctToLog) }

// LogToPct records conversion from log to simple returns.
func (c Converter) LogToPct() Frame { return c.conv(convLogToPct) }

// LogToEquityLog records accumulation of log returns into log levels.
func (c Converter) LogToEquityLog() Frame { return c.conv(convLogToEquityLog) }

// PctToEquityLog records conversion of simple returns into cumulative
// log levels.
func (c Converter) PctToEquityLog() Frame { return c.conv(convPctToEquityLog) }
