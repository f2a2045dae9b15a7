// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"gonum.org/v1/quant/frame"
)

var (
	convertFrom  string
	convertTo    string
	convertIndex bool
	convertOut   string
)

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert a CSV matrix between return spaces",
	Long: `convert moves a matrix between the four return spaces: equity
(price levels), pct (simple returns), log (log returns) and equity_log
(cumulative log levels).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		record, ok := conversions[convertFrom+">"+convertTo]
		if !ok {
			return fmt.Errorf("no conversion from %q to %q", convertFrom, convertTo)
		}
		in, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer in.Close()
		f, err := readFrame(in, convertIndex)
		if err != nil {
			return err
		}
		slog.Info("converting", "from", convertFrom, "to", convertTo)
		out, err := frame.MaybeFrame(func() frame.Frame {
			return record(f.Convert()).Collect()
		})
		if err != nil {
			return err
		}
		return writeOutput(out, convertOut)
	},
}

var conversions = map[string]func(frame.Converter) frame.Frame{
	"equity>log":        frame.Converter.EquityToLog,
	"equity>pct":        frame.Converter.EquityToPct,
	"equity>equity_log": frame.Converter.EquityToEquityLog,
	"equity_log>equity": frame.Converter.EquityLogToEquity,
	"equity_log>log":    frame.Converter.EquityLogToLog,
	"pct>equity":        frame.Converter.PctToEquity,
	"pct>log":           frame.Converter.PctToLog,
	"log>pct":           frame.Converter.LogToPct,
	"log>equity_log":    frame.Converter.LogToEquityLog,
	"pct>equity_log":    frame.Converter.PctToEquityLog,
}

func init() {
	convertCmd.Flags().StringVar(&convertFrom, "from", "equity", "source space (equity, pct, log, equity_log)")
	convertCmd.Flags().StringVar(&convertTo, "to", "pct", "target space (equity, pct, log, equity_log)")
	convertCmd.Flags().BoolVar(&convertIndex, "index", false, "treat the first column as row labels")
	convertCmd.Flags().StringVarP(&convertOut, "output", "o", "-", "output file, - for stdout")
	rootCmd.AddCommand(convertCmd)
}
