// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package convert

// Shift moves the rows of src by k into dst. A positive k shifts
// downwards so row i copies row i-k and the first k rows become NaN; a
// negative k shifts upwards and the trailing rows become NaN. A shift
// of at least the row count yields an all-NaN result.
func Shift(dst, src []float64, rows, cols int, k int) {
	checkShape(dst, src, rows, cols)
	switch {
	case k >= 0:
		for r := rows - 1; r >= 0; r-- {
			for c := 0; c < cols; c++ {
				if r < k {
					dst[r*cols+c] = nan
				} else {
					dst[r*cols+c] = src[(r-k)*cols+c]
				}
			}
		}
	default:
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if r-k < rows {
					dst[r*cols+c] = src[(r-k)*cols+c]
				} else {
					dst[r*cols+c] = nan
				}
			}
		}
	}
}
