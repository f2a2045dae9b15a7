// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"gonum.org/v1/quant/stats"
)

// opcode tags an expression node. Nodes are immutable once recorded;
// the plan is a flat arena of node values dispatched by tag, so
// recording an operation allocates only the extended plan slice, plus
// a copy of the right operand for frame arithmetic.
type opcode uint8

const (
	opInvalid opcode = iota

	// Scalar arithmetic. scalar holds the operand.
	opAddScalar
	opSubScalar
	opMulScalar
	opDivScalar
	opTargetScalar

	// Frame arithmetic. other holds the right operand, which is
	// collected recursively when the node executes.
	opAdd
	opSub
	opMul
	opDiv

	// Elementwise unaries. scalar holds the clip limit.
	opSign
	opAbs
	opSqrt
	opClip
	opLongBias
	opShortBias

	// Structural operations.
	opShift
	opCrossRank
	opFillZero
	opBackfill
	opForwardFill
	opFillMedian

	// Windowed and whole-series statistics. stat selects the
	// statistic; scalar holds the quantile for statQuantile.
	opWindow
	opAgg

	// Return-space conversion. conv selects the edge.
	opConvert
)

// statKind selects the statistic of a window or aggregate node.
type statKind uint8

const (
	statMean statKind = iota
	statMedian
	statMin
	statMax
	statSum
	statStdev
	statVar
	statSkew
	statKurt
	statRank
	statQuantile
)

// convKind selects a return-space conversion edge.
type convKind uint8

const (
	convEquityToLog convKind = iota
	convEquityToPct
	convEquityToEquityLog
	convEquityLogToEquity
	convEquityLogToLog
	convPctToEquity
	convPctToLog
	convLogToPct
	convLogToEquityLog
	convPctToEquityLog
)

// node is one recorded operation. Only the fields its opcode names are
// meaningful.
type node struct {
	op       opcode
	scalar   float64
	other    *Frame
	stat     statKind
	window   int
	minCount int
	shift    int
	axis     stats.Axis
	conv     convKind
}
