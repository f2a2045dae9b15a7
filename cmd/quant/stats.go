// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"gonum.org/v1/quant/frame"
)

var (
	statsOp       string
	statsWindow   int
	statsMinCount int
	statsIndex    bool
	statsOut      string
)

var statsCmd = &cobra.Command{
	Use:   "stats [file]",
	Short: "Apply a rolling or aggregate statistic to a CSV matrix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer in.Close()
		f, err := readFrame(in, statsIndex)
		if err != nil {
			return err
		}
		rows, cols := f.Dims()
		slog.Info("loaded matrix", "rows", rows, "cols", cols)

		out, err := frame.MaybeFrame(func() frame.Frame {
			return applyStat(f).Collect()
		})
		if err != nil {
			return err
		}
		return writeOutput(out, statsOut)
	},
}

// applyStat records the requested statistic on f. A zero window means
// a whole-column aggregate.
func applyStat(f frame.Frame) frame.Frame {
	if statsWindow == 0 {
		agg := f.Agg()
		switch statsOp {
		case "mean":
			return agg.Mean()
		case "median":
			return agg.Median()
		case "min":
			return agg.Min()
		case "max":
			return agg.Max()
		case "sum":
			return agg.Sum()
		case "stdev":
			return agg.Stdev()
		case "var":
			return agg.Var()
		case "skew":
			return agg.Skew()
		case "kurt":
			return agg.Kurt()
		case "rank":
			return agg.Rank()
		}
		panic(frame.Error("quant: unknown statistic " + statsOp))
	}
	w := f.Rolling(statsWindow)
	if statsMinCount > 0 {
		w = w.MinCount(statsMinCount)
	}
	switch statsOp {
	case "mean":
		return w.Mean()
	case "median":
		return w.Median()
	case "min":
		return w.Min()
	case "max":
		return w.Max()
	case "sum":
		return w.Sum()
	case "stdev":
		return w.Stdev()
	case "var":
		return w.Var()
	case "skew":
		return w.Skew()
	case "kurt":
		return w.Kurt()
	case "rank":
		return w.Rank()
	}
	panic(frame.Error("quant: unknown statistic " + statsOp))
}

func writeOutput(f frame.Frame, path string) error {
	if path == "" || path == "-" {
		return writeFrame(os.Stdout, f)
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeFrame(out, f); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func init() {
	statsCmd.Flags().StringVar(&statsOp, "op", "mean", "statistic (mean, median, min, max, sum, stdev, var, skew, kurt, rank)")
	statsCmd.Flags().IntVar(&statsWindow, "window", 0, "trailing window length; 0 aggregates whole columns")
	statsCmd.Flags().IntVar(&statsMinCount, "min-count", 0, "observations required to emit; defaults to the window length")
	statsCmd.Flags().BoolVar(&statsIndex, "index", false, "treat the first column as row labels")
	statsCmd.Flags().StringVarP(&statsOut, "output", "o", "-", "output file, - for stdout")
	rootCmd.AddCommand(statsCmd)
}
