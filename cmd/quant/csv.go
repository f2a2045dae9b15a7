// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"gonum.org/v1/quant/frame"
)

// readFrame parses a wide CSV matrix: a header row of column names
// followed by one row per time step. With index set, the first column
// holds row labels. Empty cells and the literal NaN (any case) parse
// as missing.
func readFrame(r io.Reader, index bool) (frame.Frame, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return frame.Frame{}, fmt.Errorf("reading csv: %w", err)
	}
	if len(records) < 2 {
		return frame.Frame{}, fmt.Errorf("csv needs a header and at least one data row")
	}
	header := records[0]
	first := 0
	if index {
		first = 1
	}
	cols := len(header) - first
	if cols < 1 {
		return frame.Frame{}, fmt.Errorf("csv has no value columns")
	}
	rows := len(records) - 1
	data := make([]float64, 0, rows*cols)
	var rowLabels []string
	if index {
		rowLabels = make([]string, 0, rows)
	}
	for i, rec := range records[1:] {
		if len(rec) != len(header) {
			return frame.Frame{}, fmt.Errorf("row %d: %d fields, want %d", i+1, len(rec), len(header))
		}
		if index {
			rowLabels = append(rowLabels, rec[0])
		}
		for _, field := range rec[first:] {
			if field == "" {
				data = append(data, math.NaN())
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return frame.Frame{}, fmt.Errorf("row %d: parsing %q: %w", i+1, field, err)
			}
			data = append(data, v)
		}
	}
	return frame.NewLabeled(rows, cols, data, rowLabels, header[first:]), nil
}

// writeFrame emits a collected frame as wide CSV, mirroring the input
// layout. NaN cells are written empty.
func writeFrame(w io.Writer, f frame.Frame) error {
	cw := csv.NewWriter(w)
	rows, cols := f.Dims()
	colLabels := f.ColLabels()
	rowLabels := f.RowLabels()
	header := make([]string, 0, cols+1)
	if rowLabels != nil {
		header = append(header, "index")
	}
	for c := 0; c < cols; c++ {
		if colLabels != nil {
			header = append(header, colLabels[c])
		} else {
			header = append(header, "c"+strconv.Itoa(c))
		}
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	record := make([]string, 0, cols+1)
	for r := 0; r < rows; r++ {
		record = record[:0]
		if rowLabels != nil {
			record = append(record, rowLabels[r])
		}
		for c := 0; c < cols; c++ {
			v := f.At(r, c)
			if math.IsNaN(v) {
				record = append(record, "")
			} else {
				record = append(record, strconv.FormatFloat(v, 'g', -1, 64))
			}
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
