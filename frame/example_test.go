// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame_test

import (
	"fmt"

	"gonum.org/v1/quant/frame"
)

func ExampleFrame_Collect() {
	prices := frame.New(4, 1, []float64{100, 110, 99, 103.95})
	returns := prices.Convert().EquityToPct().Collect()
	for r := 0; r < 4; r++ {
		fmt.Printf("%.2f\n", returns.At(r, 0))
	}
	// Output:
	// NaN
	// 0.10
	// -0.10
	// 0.05
}

func ExampleFrame_Rolling() {
	f := frame.New(4, 2, []float64{
		1, 2,
		3, 4,
		5, 6,
		7, 8,
	})
	means := f.Rolling(2).Mean().Collect()
	fmt.Println(means.At(1, 0), means.At(3, 1))
	// Output:
	// 2 7
}

func ExampleMaybe() {
	f := frame.New(3, 1, []float64{1, 2, 3})
	err := frame.Maybe(func() { f.Rolling(10) })
	fmt.Println(err)
	// Output:
	// frame: window parameter out of range
}
