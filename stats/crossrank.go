// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"gonum.org/v1/quant/internal/par"
)

// CrossRank ranks each row of src across its columns into dst,
// normalized to [-1, 1]. Within a row the non-NaN cells are sorted
// ascending (stable, so equal values keep their column order) and rank
// r of k valid cells maps to r*2/(k-1) - 1. NaN cells stay NaN, and
// rows with fewer than two valid cells emit all NaN. dst and src must
// both have length rows*cols.
func CrossRank(dst, src []float64, rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic("stats: nonpositive matrix dimension")
	}
	if len(src) != rows*cols || len(dst) != rows*cols {
		panic("stats: slice length mismatch")
	}
	par.Do(rows, func(start, end int) {
		idx := make([]int, 0, cols)
		for r := start; r < end; r++ {
			row := src[r*cols : (r+1)*cols]
			out := dst[r*cols : (r+1)*cols]
			idx = idx[:0]
			for c, v := range row {
				out[c] = math.NaN()
				if !math.IsNaN(v) {
					idx = append(idx, c)
				}
			}
			k := len(idx)
			if k < 2 {
				continue
			}
			sort.SliceStable(idx, func(i, j int) bool { return row[idx[i]] < row[idx[j]] })
			scale := 2 / float64(k-1)
			for rank, c := range idx {
				out[c] = float64(rank)*scale - 1
			}
		}
	})
}
