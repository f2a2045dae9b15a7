// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package accum provides compensated running-moment accumulators for
// sliding-window statistics. Each accumulator maintains Kahan–Neumaier
// compensated sums of v^p for the moments it needs, supports removal of
// previously added values, and skips NaN contributions entirely.
package accum

import "math"

// varEps is the variance floor below which skewness and kurtosis are
// considered undefined for a non-constant window.
const varEps = 1e-14

// kahan is a compensated running sum. The compensation term tracks the
// low-order bits lost by each addition and feeds them back on the next.
type kahan struct {
	sum  float64
	comp float64
}

func (k *kahan) add(term float64) {
	y := term - k.comp
	t := k.sum + y
	k.comp = (t - k.sum) - y
	k.sum = t
}

func (k *kahan) reset() {
	k.sum = 0
	k.comp = 0
}

// Sum accumulates the first moment of a stream of observations.
type Sum struct {
	n  int
	s1 kahan
}

// Add folds v into the accumulator. NaN values are ignored.
func (a *Sum) Add(v float64) {
	if math.IsNaN(v) {
		return
	}
	a.n++
	a.s1.add(v)
}

// Remove cancels a previous Add of v. NaN values are ignored.
func (a *Sum) Remove(v float64) {
	if math.IsNaN(v) {
		return
	}
	a.n--
	a.s1.add(-v)
}

// Reset returns the accumulator to its zero state.
func (a *Sum) Reset() {
	a.n = 0
	a.s1.reset()
}

// Count returns the number of non-NaN observations currently held.
func (a *Sum) Count() int { return a.n }

// Sum returns the compensated running total.
func (a *Sum) Sum() float64 { return a.s1.sum }

// Mean returns the arithmetic mean, or NaN when the accumulator is empty.
func (a *Sum) Mean() float64 {
	if a.n == 0 {
		return math.NaN()
	}
	return a.s1.sum / float64(a.n)
}

// Var accumulates the first two moments.
type Var struct {
	n      int
	s1, s2 kahan
}

// Add folds v into the accumulator. NaN values are ignored.
func (a *Var) Add(v float64) {
	if math.IsNaN(v) {
		return
	}
	a.n++
	a.s1.add(v)
	a.s2.add(v * v)
}

// Remove cancels a previous Add of v. NaN values are ignored.
func (a *Var) Remove(v float64) {
	if math.IsNaN(v) {
		return
	}
	a.n--
	a.s1.add(-v)
	a.s2.add(-v * v)
}

// Reset returns the accumulator to its zero state.
func (a *Var) Reset() {
	a.n = 0
	a.s1.reset()
	a.s2.reset()
}

// Count returns the number of non-NaN observations currently held.
func (a *Var) Count() int { return a.n }

// Mean returns the arithmetic mean, or NaN when the accumulator is empty.
func (a *Var) Mean() float64 {
	if a.n == 0 {
		return math.NaN()
	}
	return a.s1.sum / float64(a.n)
}

// Variance returns the sample variance with ddof=1, or NaN for fewer
// than two observations.
func (a *Var) Variance() float64 {
	if a.n < 2 {
		return math.NaN()
	}
	n := float64(a.n)
	m := a.s1.sum / n
	return (a.s2.sum - n*m*m) / (n - 1)
}

// Stdev returns the sample standard deviation, or NaN when the variance
// is undefined or negative due to rounding.
func (a *Var) Stdev() float64 {
	v := a.Variance()
	if v < 0 {
		return math.NaN()
	}
	return math.Sqrt(v)
}

// Skew accumulates the first three moments along with the running count
// of consecutive equal observations needed by the constant-window rule.
type Skew struct {
	n          int
	s1, s2, s3 kahan
	prev       float64
	run        int
}

// Add folds v into the accumulator. NaN values are ignored and do not
// break a run of equal observations.
func (a *Skew) Add(v float64) {
	if math.IsNaN(v) {
		return
	}
	a.n++
	a.s1.add(v)
	a.s2.add(v * v)
	a.s3.add(v * v * v)
	if v == a.prev {
		a.run++
	} else {
		a.run = 1
	}
	a.prev = v
}

// Remove cancels a previous Add of v. NaN values are ignored. The
// equal-observation run is left untouched; it tracks insertions only.
func (a *Skew) Remove(v float64) {
	if math.IsNaN(v) {
		return
	}
	a.n--
	a.s1.add(-v)
	a.s2.add(-v * v)
	a.s3.add(-v * v * v)
}

// Reset returns the accumulator to its zero state, seeding the
// equal-observation tracking with first.
func (a *Skew) Reset(first float64) {
	a.n = 0
	a.s1.reset()
	a.s2.reset()
	a.s3.reset()
	a.prev = first
	a.run = 0
}

// Count returns the number of non-NaN observations currently held.
func (a *Skew) Count() int { return a.n }

// Skewness returns the bias-corrected sample skewness. It is NaN for
// fewer than three observations or a vanishing variance, and exactly 0
// when every held observation is equal.
func (a *Skew) Skewness() float64 {
	if a.n < 3 {
		return math.NaN()
	}
	if a.run >= a.n {
		return 0
	}
	n := float64(a.n)
	m := a.s1.sum / n
	v := a.s2.sum/n - m*m
	if v <= varEps {
		return math.NaN()
	}
	k3 := a.s3.sum/n - m*m*m - 3*m*v
	sd := math.Sqrt(v)
	return math.Sqrt(n*(n-1)) * k3 / ((n - 2) * sd * sd * sd)
}

// Kurt accumulates the first four moments along with the running count
// of consecutive equal observations.
type Kurt struct {
	n              int
	s1, s2, s3, s4 kahan
	prev           float64
	run            int
}

// Add folds v into the accumulator. NaN values are ignored and do not
// break a run of equal observations.
func (a *Kurt) Add(v float64) {
	if math.IsNaN(v) {
		return
	}
	a.n++
	v2 := v * v
	a.s1.add(v)
	a.s2.add(v2)
	a.s3.add(v2 * v)
	a.s4.add(v2 * v2)
	if v == a.prev {
		a.run++
	} else {
		a.run = 1
	}
	a.prev = v
}

// Remove cancels a previous Add of v. NaN values are ignored.
func (a *Kurt) Remove(v float64) {
	if math.IsNaN(v) {
		return
	}
	a.n--
	v2 := v * v
	a.s1.add(-v)
	a.s2.add(-v2)
	a.s3.add(-v2 * v)
	a.s4.add(-v2 * v2)
}

// Reset returns the accumulator to its zero state, seeding the
// equal-observation tracking with first.
func (a *Kurt) Reset(first float64) {
	a.n = 0
	a.s1.reset()
	a.s2.reset()
	a.s3.reset()
	a.s4.reset()
	a.prev = first
	a.run = 0
}

// Count returns the number of non-NaN observations currently held.
func (a *Kurt) Count() int { return a.n }

// Kurtosis returns the bias-corrected sample excess kurtosis. It is NaN
// for fewer than four observations or a vanishing variance, and exactly
// -3 when every held observation is equal.
func (a *Kurt) Kurtosis() float64 {
	if a.n < 4 {
		return math.NaN()
	}
	if a.run >= a.n {
		return -3
	}
	n := float64(a.n)
	m := a.s1.sum / n
	v := a.s2.sum/n - m*m
	if v <= varEps {
		return math.NaN()
	}
	k3 := a.s3.sum/n - m*m*m - 3*m*v
	k4 := a.s4.sum/n - m*m*m*m - 6*v*m*m - 4*k3*m
	return ((n*n-1)*k4/(v*v) - 3*(n-1)*(n-1)) / ((n - 2) * (n - 3))
}
