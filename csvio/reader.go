// SPDX-License-Identifier: MIT
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Dataset is a design matrix with its target vector.
type Dataset struct {
	// Features names the columns of X in order; the intercept, when present,
	// comes first as InterceptName.
	Features []string
	// Target is the header name of the column copied into Y.
	Target string
	X      [][]float64
	Y      []float64
}

// newReader returns a csv.Reader that leaves field-count checks to the caller.
func newReader(r io.Reader, o options) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = o.comma
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	return cr
}

// parseCell converts one trimmed field.
func parseCell(op string, line int, col, cell string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return 0, lineErrorf(op, line, fmt.Errorf("column %s value %q: %w", col, cell, ErrParseCell))
	}

	return v, nil
}

// Parse reads every record of r as a row of numbers. When hasHeader is true
// the first record is discarded. Rows may differ in length; shape checks are
// left to matrix.NewDenseFrom.
func Parse(r io.Reader, hasHeader bool, opts ...Option) ([][]float64, error) {
	const op = "Parse"
	cr := newReader(r, gatherOptions(opts...))

	var out [][]float64
	first := true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		line, _ := cr.FieldPos(0)
		if first {
			first = false
			if hasHeader {
				continue
			}
		}

		row := make([]float64, len(rec))
		for j, cell := range rec {
			if row[j], err = parseCell(op, line, strconv.Itoa(j), cell); err != nil {
				return nil, err
			}
		}
		out = append(out, row)
	}

	return out, nil
}

// ParseWithTarget reads a header record, locates target in it and splits
// every following record into a feature row and a target value.
//
// Errors: ErrEmptyFile (no header), ErrColumnNotFound, ErrMalformedRow,
// ErrParseCell.
func ParseWithTarget(r io.Reader, target string, opts ...Option) (*Dataset, error) {
	const op = "ParseWithTarget"
	o := gatherOptions(opts...)
	cr := newReader(r, o)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyFile)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	header = append([]string(nil), header...) // ReuseRecord
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	targetIdx := -1
	for i, h := range header {
		if h == target {
			targetIdx = i
			break
		}
	}
	if targetIdx < 0 {
		return nil, fmt.Errorf("%s: %q: %w", op, target, ErrColumnNotFound)
	}

	ds := &Dataset{Target: target}
	if o.intercept {
		ds.Features = append(ds.Features, InterceptName)
	}
	for i, h := range header {
		if i != targetIdx {
			ds.Features = append(ds.Features, h)
		}
	}

	var line, j int
	var v float64
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		line, _ = cr.FieldPos(0)
		if len(rec) != len(header) {
			return nil, lineErrorf(op, line,
				fmt.Errorf("got %d fields, header has %d: %w", len(rec), len(header), ErrMalformedRow))
		}

		row := make([]float64, 0, len(ds.Features))
		if o.intercept {
			row = append(row, 1.0)
		}
		var y float64
		for j = range rec {
			if v, err = parseCell(op, line, header[j], rec[j]); err != nil {
				return nil, err
			}
			if j == targetIdx {
				y = v
			} else {
				row = append(row, v)
			}
		}
		ds.X = append(ds.X, row)
		ds.Y = append(ds.Y, y)
	}

	return ds, nil
}

// ReadMatrix opens path and delegates to Parse.
func ReadMatrix(path string, hasHeader bool, opts ...Option) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadMatrix: %w", err)
	}
	defer f.Close()

	return Parse(f, hasHeader, opts...)
}

// ReadMatrixWithTarget opens path and delegates to ParseWithTarget.
func ReadMatrixWithTarget(path, target string, opts ...Option) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadMatrixWithTarget: %w", err)
	}
	defer f.Close()

	return ParseWithTarget(f, target, opts...)
}

// PrependIntercept returns a copy of X with 1.0 inserted at the front of each row.
func PrependIntercept(X [][]float64) [][]float64 {
	out := make([][]float64, len(X))
	for i, row := range X {
		out[i] = make([]float64, 0, len(row)+1)
		out[i] = append(out[i], 1.0)
		out[i] = append(out[i], row...)
	}

	return out
}
