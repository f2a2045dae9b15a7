// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package convert

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats/scalar"
)

func sameOrClose(a, b, tol float64) bool {
	return scalar.Same(a, b) || scalar.EqualWithinAbs(a, b, tol)
}

func TestEquityToPct(t *testing.T) {
	src := []float64{100, 110, 99}
	dst := make([]float64, 3)
	EquityToPct(dst, src, 3, 1)
	want := []float64{math.NaN(), 0.1, -0.1}
	for i := range want {
		if !sameOrClose(dst[i], want[i], 1e-6) {
			t.Errorf("row %d: got %v want %v", i, dst[i], want[i])
		}
	}
}

func TestEquityToLog(t *testing.T) {
	src := []float64{100, 110, 99}
	dst := make([]float64, 3)
	EquityToLog(dst, src, 3, 1)
	want := []float64{math.NaN(), math.Log(1.1), math.Log(0.9)}
	for i := range want {
		if !sameOrClose(dst[i], want[i], 1e-12) {
			t.Errorf("row %d: got %v want %v", i, dst[i], want[i])
		}
	}
}

func TestElementwiseMaskPreserved(t *testing.T) {
	src := []float64{0.1, math.NaN(), -0.05, 0}
	cases := []struct {
		name string
		fn   func(dst, src []float64, rows, cols int)
	}{
		{"pct->log", PctToLog},
		{"log->pct", LogToPct},
		{"equity->equity_log", EquityToEquityLog},
		{"equity_log->equity", EquityLogToEquity},
	}
	for _, c := range cases {
		dst := make([]float64, 4)
		c.fn(dst, src, 4, 1)
		for i := range src {
			if math.IsNaN(src[i]) && !math.IsNaN(dst[i]) {
				t.Errorf("%s row %d: NaN not preserved: got %v", c.name, i, dst[i])
			}
		}
		if math.IsNaN(dst[0]) {
			t.Errorf("%s row 0: finite input mapped to NaN", c.name)
		}
	}
}

func TestPctToEquityMask(t *testing.T) {
	src := []float64{0.1, math.NaN(), 0.2}
	dst := make([]float64, 3)
	PctToEquity(dst, src, 3, 1)
	// The NaN return compounds as zero: 1.1, then 1.1 (masked NaN),
	// then 1.1*1.2.
	if !scalar.EqualWithinAbs(dst[0], 1.1, 1e-12) {
		t.Errorf("row 0: got %v want 1.1", dst[0])
	}
	if !math.IsNaN(dst[1]) {
		t.Errorf("row 1: got %v want NaN", dst[1])
	}
	if !scalar.EqualWithinAbs(dst[2], 1.32, 1e-12) {
		t.Errorf("row 2: got %v want 1.32", dst[2])
	}
}

func TestRoundTripEquityPct(t *testing.T) {
	// pct_to_equity(equity_to_pct(x)) reconstructs x up to a constant
	// factor per column.
	const rows, cols = 300, 4
	rnd := rand.New(rand.NewSource(3))
	src := make([]float64, rows*cols)
	for c := 0; c < cols; c++ {
		level := 50 + 100*rnd.Float64()
		for r := 0; r < rows; r++ {
			level *= 1 + 0.02*rnd.NormFloat64()
			src[r*cols+c] = level
		}
	}
	pct := make([]float64, rows*cols)
	back := make([]float64, rows*cols)
	EquityToPct(pct, src, rows, cols)
	// Row 0 of the pct series is NaN by contract; compound from row 1.
	PctToEquity(back, pct, rows, cols)
	for c := 0; c < cols; c++ {
		ratio0 := src[1*cols+c] / back[1*cols+c]
		for r := 1; r < rows; r++ {
			ratio := src[r*cols+c] / back[r*cols+c]
			if math.Abs(ratio-ratio0) > 1e-5 {
				t.Fatalf("column %d row %d: ratio drift %v vs %v", c, r, ratio, ratio0)
			}
		}
	}
}

func TestLogChainConsistency(t *testing.T) {
	// equity -> log -> equity_log should equal equity -> equity_log up
	// to the base level, i.e. first differences agree.
	const rows = 50
	rnd := rand.New(rand.NewSource(9))
	src := make([]float64, rows)
	level := 100.0
	for r := 0; r < rows; r++ {
		level *= 1 + 0.01*rnd.NormFloat64()
		src[r] = level
	}
	lg := make([]float64, rows)
	cum := make([]float64, rows)
	direct := make([]float64, rows)
	diff := make([]float64, rows)
	EquityToLog(lg, src, rows, 1)
	LogToEquityLog(cum, lg, rows, 1)
	EquityToEquityLog(direct, src, rows, 1)
	EquityLogToLog(diff, direct, rows, 1)
	for r := 1; r < rows; r++ {
		if !scalar.EqualWithinAbs(diff[r], lg[r], 1e-10) {
			t.Fatalf("row %d: diff of log level %v != log return %v", r, diff[r], lg[r])
		}
	}
	// cum is anchored at the first return rather than the first price;
	// successive differences must still match.
	for r := 2; r < rows; r++ {
		if !scalar.EqualWithinAbs(cum[r]-cum[r-1], lg[r], 1e-10) {
			t.Fatalf("row %d: cumulative log step %v != log return %v", r, cum[r]-cum[r-1], lg[r])
		}
	}
}

func TestPctToEquityLogMatchesChain(t *testing.T) {
	src := []float64{0.05, -0.02, math.NaN(), 0.03}
	got := make([]float64, 4)
	lg := make([]float64, 4)
	chain := make([]float64, 4)
	PctToEquityLog(got, src, 4, 1)
	PctToLog(lg, src, 4, 1)
	LogToEquityLog(chain, lg, 4, 1)
	for i := range src {
		if !sameOrClose(got[i], chain[i], 1e-12) {
			t.Errorf("row %d: got %v want %v", i, got[i], chain[i])
		}
	}
}

func TestShift(t *testing.T) {
	src := []float64{
		1, 2,
		3, 4,
		5, 6,
	}
	down := make([]float64, 6)
	Shift(down, src, 3, 2, 1)
	wantDown := []float64{math.NaN(), math.NaN(), 1, 2, 3, 4}
	for i := range wantDown {
		if !sameOrClose(down[i], wantDown[i], 0) {
			t.Errorf("down %d: got %v want %v", i, down[i], wantDown[i])
		}
	}
	up := make([]float64, 6)
	Shift(up, src, 3, 2, -1)
	wantUp := []float64{3, 4, 5, 6, math.NaN(), math.NaN()}
	for i := range wantUp {
		if !sameOrClose(up[i], wantUp[i], 0) {
			t.Errorf("up %d: got %v want %v", i, up[i], wantUp[i])
		}
	}
	all := make([]float64, 6)
	Shift(all, src, 3, 2, 5)
	for i, v := range all {
		if !math.IsNaN(v) {
			t.Errorf("overshift %d: got %v want NaN", i, v)
		}
	}
}

func TestShiftIdempotence(t *testing.T) {
	// On a matrix whose first row is NaN, shifting down twice and up
	// once equals a single down shift on rows 1..n-2; the upward shift
	// leaves the last row NaN.
	src := []float64{math.NaN(), 2, 3, 4, 5}
	once := make([]float64, 5)
	twice := make([]float64, 5)
	back := make([]float64, 5)
	Shift(once, src, 5, 1, 1)
	Shift(twice, once, 5, 1, 1)
	Shift(back, twice, 5, 1, -1)
	for r := 1; r < 4; r++ {
		if !sameOrClose(back[r], once[r], 0) {
			t.Errorf("row %d: got %v want %v", r, back[r], once[r])
		}
	}
	if !math.IsNaN(back[4]) {
		t.Errorf("row 4: got %v want NaN", back[4])
	}
}

func TestBackfill(t *testing.T) {
	src := []float64{math.NaN(), math.NaN(), 5, math.NaN(), 7, math.NaN()}
	dst := make([]float64, 6)
	Backfill(dst, src, 6, 1)
	want := []float64{5, 5, 5, 7, 7, math.NaN()}
	for i := range want {
		if !sameOrClose(dst[i], want[i], 0) {
			t.Errorf("row %d: got %v want %v", i, dst[i], want[i])
		}
	}
}

func TestForwardFill(t *testing.T) {
	src := []float64{math.NaN(), 3, math.NaN(), math.NaN(), 8, math.NaN()}
	dst := make([]float64, 6)
	ForwardFill(dst, src, 6, 1)
	want := []float64{math.NaN(), 3, 3, 3, 8, 8}
	for i := range want {
		if !sameOrClose(dst[i], want[i], 0) {
			t.Errorf("row %d: got %v want %v", i, dst[i], want[i])
		}
	}
}

func TestFillByMedian(t *testing.T) {
	src := []float64{
		1, math.NaN(),
		math.NaN(), math.NaN(),
		3, math.NaN(),
		5, math.NaN(),
	}
	dst := make([]float64, 8)
	FillByMedian(dst, src, 4, 2)
	want := []float64{
		1, math.NaN(),
		3, math.NaN(),
		3, math.NaN(),
		5, math.NaN(),
	}
	for i := range want {
		if !sameOrClose(dst[i], want[i], 1e-12) {
			t.Errorf("element %d: got %v want %v", i, dst[i], want[i])
		}
	}
}

func TestFillZero(t *testing.T) {
	src := []float64{math.NaN(), 2, math.NaN()}
	dst := make([]float64, 3)
	FillZero(dst, src, 3, 1)
	want := []float64{0, 2, 0}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("row %d: got %v want %v", i, dst[i], want[i])
		}
	}
	if !math.IsNaN(src[0]) {
		t.Error("source mutated")
	}
}
