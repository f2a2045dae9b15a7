// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command quant applies sliding-window and aggregate statistics, and
// return-space conversions, to wide CSV matrices.
package main

func main() {
	execute()
}
