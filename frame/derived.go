// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

// Derived signal pipelines composed from the primitive builders. Each
// is a plain chain of recorded operations, so the result is still lazy
// and collects in one pass.

// MeanDiff records x - rolling(window).mean(x).
func (f Frame) MeanDiff(window int) Frame {
	return f.Sub(f.Rolling(window).Mean())
}

// MedianDiff records x - rolling(window).median(x).
func (f Frame) MedianDiff(window int) Frame {
	return f.Sub(f.Rolling(window).Median())
}

// ZScore records the windowed standard score
// (x - rolling mean) / rolling stdev.
func (f Frame) ZScore(window int) Frame {
	return f.MeanDiff(window).Div(f.Rolling(window).Stdev())
}

// Midrange records (rolling max + rolling min) / 2.
func (f Frame) Midrange(window int) Frame {
	return f.Rolling(window).Max().Add(f.Rolling(window).Min()).DivScalar(2)
}

// Normalize records 2 * median_diff / (rolling max - rolling min),
// a median-centered signal scaled by the window range.
func (f Frame) Normalize(window int) Frame {
	return f.MedianDiff(window).
		MulScalar(2).
		Div(f.Rolling(window).Max().Sub(f.Rolling(window).Min()))
}

// compositeWindow is the lookback of the volatility composite.
const compositeWindow = 30

// StdevComposite records the blended volatility estimate
// 0.6*rolling(30).stdev + 0.4*expanding(30).stdev, scaled to
// percentage points, with remaining NaN cells filled by the column
// median.
func (f Frame) StdevComposite() Frame {
	return f.Rolling(compositeWindow).Stdev().MulScalar(0.6).
		Add(f.Expanding(compositeWindow).Stdev().MulScalar(0.4)).
		MulScalar(Percent).
		FillByMedian()
}

// VolTarget records the position scale 0.25 / stdev_composite.
func (f Frame) VolTarget() Frame {
	return f.StdevComposite().Target(0.25)
}

// signalWindow is the lookback of the signal normalizer, one trading
// year.
const signalWindow = 252

// NormalizeSignal records the normalized signal
// clip(backfill(1 / expanding(252).median(|x|)) * x, 2).
func (f Frame) NormalizeSignal() Frame {
	return f.Abs().
		Expanding(signalWindow).Median().
		Target(1).
		Backfill().
		Mul(f).
		Clip(2)
}

// AdjustedPct records volatility-adjusted returns
// x * shift(vol_target(x)), lagging the target by one row so the
// scale applied at row i is known at row i-1.
func (f Frame) AdjustedPct() Frame {
	return f.Mul(f.VolTarget().Shift(1))
}
