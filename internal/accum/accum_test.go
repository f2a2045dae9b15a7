// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package accum

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat"
)

func TestSumAddRemove(t *testing.T) {
	var a Sum
	for _, v := range []float64{1, 2, math.NaN(), 3} {
		a.Add(v)
	}
	if a.Count() != 3 {
		t.Errorf("unexpected count: got %d want 3", a.Count())
	}
	if !scalar.EqualWithinAbs(a.Sum(), 6, 1e-12) {
		t.Errorf("unexpected sum: got %v want 6", a.Sum())
	}
	a.Remove(1)
	a.Remove(math.NaN())
	if a.Count() != 2 {
		t.Errorf("unexpected count after remove: got %d want 2", a.Count())
	}
	if !scalar.EqualWithinAbs(a.Mean(), 2.5, 1e-12) {
		t.Errorf("unexpected mean: got %v want 2.5", a.Mean())
	}
}

func TestSumCompensation(t *testing.T) {
	// A naive float64 sum of many tiny terms against a large base loses
	// all of them; the compensated sum must not.
	var a Sum
	a.Add(1e16)
	for i := 0; i < 1000; i++ {
		a.Add(1)
	}
	a.Remove(1e16)
	if !scalar.EqualWithinAbs(a.Sum(), 1000, 1e-6) {
		t.Errorf("compensation lost low-order bits: got %v want 1000", a.Sum())
	}
}

func TestVarAgainstBatch(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	x := make([]float64, 50)
	for i := range x {
		x[i] = rnd.NormFloat64() * 3
	}
	var a Var
	for _, v := range x {
		a.Add(v)
	}
	want := stat.Variance(x, nil)
	if !scalar.EqualWithinAbsOrRel(a.Variance(), want, 1e-10, 1e-10) {
		t.Errorf("unexpected variance: got %v want %v", a.Variance(), want)
	}
	if !scalar.EqualWithinAbsOrRel(a.Stdev(), math.Sqrt(want), 1e-10, 1e-10) {
		t.Errorf("unexpected stdev: got %v want %v", a.Stdev(), math.Sqrt(want))
	}
}

func TestVarSmallCounts(t *testing.T) {
	var a Var
	if !math.IsNaN(a.Variance()) {
		t.Error("variance of empty accumulator must be NaN")
	}
	a.Add(2)
	if !math.IsNaN(a.Variance()) {
		t.Error("variance of a single observation must be NaN")
	}
}

func TestSkewAgainstBatch(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	x := make([]float64, 40)
	for i := range x {
		x[i] = math.Exp(rnd.NormFloat64())
	}
	var a Skew
	a.Reset(x[0])
	for _, v := range x {
		a.Add(v)
	}
	want := stat.Skew(x, nil)
	if !scalar.EqualWithinAbsOrRel(a.Skewness(), want, 1e-8, 1e-8) {
		t.Errorf("unexpected skewness: got %v want %v", a.Skewness(), want)
	}
}

func TestSkewConstant(t *testing.T) {
	var a Skew
	a.Reset(2)
	for i := 0; i < 6; i++ {
		a.Add(2)
	}
	if got := a.Skewness(); got != 0 {
		t.Errorf("skewness of constant stream: got %v want 0", got)
	}
}

func TestSkewTooFew(t *testing.T) {
	var a Skew
	a.Reset(1)
	a.Add(1)
	a.Add(2)
	if !math.IsNaN(a.Skewness()) {
		t.Error("skewness of two observations must be NaN")
	}
}

func TestKurtAgainstBatch(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	x := make([]float64, 60)
	for i := range x {
		x[i] = rnd.NormFloat64()
	}
	var a Kurt
	a.Reset(x[0])
	for _, v := range x {
		a.Add(v)
	}
	want := stat.ExKurtosis(x, nil)
	if !scalar.EqualWithinAbsOrRel(a.Kurtosis(), want, 1e-8, 1e-8) {
		t.Errorf("unexpected kurtosis: got %v want %v", a.Kurtosis(), want)
	}
}

func TestKurtConstant(t *testing.T) {
	var a Kurt
	a.Reset(5)
	for i := 0; i < 8; i++ {
		a.Add(5)
	}
	if got := a.Kurtosis(); got != -3 {
		t.Errorf("kurtosis of constant stream: got %v want -3", got)
	}
}

func TestSlidingRemoveMatchesFresh(t *testing.T) {
	// Slide a window of 16 across a noisy series and compare the
	// incrementally maintained accumulator against one rebuilt from
	// scratch at every step.
	rnd := rand.New(rand.NewSource(4))
	const n, window = 200, 16
	x := make([]float64, n)
	for i := range x {
		x[i] = rnd.NormFloat64() * 100
		if rnd.Float64() < 0.1 {
			x[i] = math.NaN()
		}
	}
	var inc Var
	for r := 0; r < n; r++ {
		inc.Add(x[r])
		if r >= window {
			inc.Remove(x[r-window])
		}
		start := r - window + 1
		if start < 0 {
			start = 0
		}
		var fresh Var
		for _, v := range x[start : r+1] {
			fresh.Add(v)
		}
		if inc.Count() != fresh.Count() {
			t.Fatalf("row %d: count drift: got %d want %d", r, inc.Count(), fresh.Count())
		}
		gi, gf := inc.Variance(), fresh.Variance()
		if math.IsNaN(gi) != math.IsNaN(gf) {
			t.Fatalf("row %d: NaN drift: got %v want %v", r, gi, gf)
		}
		if !math.IsNaN(gi) && !scalar.EqualWithinAbs(gi, gf, 1e-8) {
			t.Fatalf("row %d: variance drift: got %v want %v", r, gi, gf)
		}
	}
}
