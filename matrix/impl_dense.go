// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep mutation explicit: only Set and the *InPlace methods write into the receiver;
//     every other method returns fresh storage and never aliases the receiver.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; NewDenseFrom: O(r*c) copy; At/Set: O(1); Clone: O(r*c).
//   - Column/Row: O(r)/O(c) copy; SetColumnInPlace: O(r); SwapRowsInPlace: O(c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxRow       = "Row"
	ctxColumn    = "Column"
	ctxSetColumn = "SetColumnInPlace"
	ctxSwapRows  = "SwapRowsInPlace"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w". Preserves the sentinel for errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); both are fixed at construction.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (> 0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	// make() zero-fills deterministically.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom copies a jagged table into a new Dense.
//
// Implementation:
//   - Stage 1: reject an empty table or an empty first row (ErrInvalidDimensions).
//   - Stage 2: check every row against len(rows[0]) (ErrRaggedRows on the first offender).
//   - Stage 3: copy each row into the flat buffer.
//
// Behavior highlights:
//   - The input is never retained; later writes to rows do not affect the matrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("NewDenseFrom: %w", ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	var i int
	for i = 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("NewDenseFrom: row %d has %d elements, want %d: %w",
				i, len(rows[i]), c, ErrRaggedRows)
		}
	}

	m := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for i = 0; i < r; i++ {
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range. Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Mutates the receiver. Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy with an independent buffer.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange. Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if err := m.validateRowIndex(i); err != nil {
		return nil, denseErrorf(ctxRow, i, 0, err)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Column returns a copy of column j (length Rows()).
//
// Behavior highlights:
//   - The returned slice is independent; writing into it never touches m.
//
// Errors:
//   - ErrOutOfRange when j is outside [0, Cols()).
//
// Complexity:
//   - Time O(r), Space O(r).
func (m *Dense) Column(j int) ([]float64, error) {
	if err := m.validateColIndex(j); err != nil {
		return nil, denseErrorf(ctxColumn, 0, j, err)
	}
	out := make([]float64, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// SetColumnInPlace overwrites column j with v. MUTATES the receiver.
//
// Errors:
//   - ErrOutOfRange when j is outside [0, Cols()).
//   - ErrDimensionMismatch when len(v) != Rows().
//
// Notes:
//   - v is copied element-wise; the matrix never aliases v.
//   - On error the receiver is untouched.
func (m *Dense) SetColumnInPlace(j int, v []float64) error {
	if err := m.validateColIndex(j); err != nil {
		return denseErrorf(ctxSetColumn, 0, j, err)
	}
	if err := ValidateVecLen(v, m.r); err != nil {
		return denseErrorf(ctxSetColumn, 0, j, err)
	}
	var i int
	for i = 0; i < m.r; i++ {
		m.data[i*m.c+j] = v[i]
	}

	return nil
}

// SwapRowsInPlace exchanges rows i and j. MUTATES the receiver.
// i == j is a no-op. Errors: ErrOutOfRange. Complexity: O(c).
func (m *Dense) SwapRowsInPlace(i, j int) error {
	if err := m.validateRowIndex(i); err != nil {
		return denseErrorf(ctxSwapRows, i, j, err)
	}
	if err := m.validateRowIndex(j); err != nil {
		return denseErrorf(ctxSwapRows, i, j, err)
	}
	if i == j {
		return nil
	}
	ri := m.data[i*m.c : (i+1)*m.c]
	rj := m.data[j*m.c : (j+1)*m.c]
	var k int
	for k = 0; k < m.c; k++ {
		ri[k], rj[k] = rj[k], ri[k]
	}

	return nil
}

// RawRows returns a freshly allocated jagged copy of the matrix.
// Complexity: O(r*c).
func (m *Dense) RawRows() [][]float64 {
	out := make([][]float64, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Equal reports exact element-wise equality of two same-shape matrices.
// Shape mismatch or a nil operand yields false.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil || m.r != o.r || m.c != o.c {
		return false
	}
	for idx, v := range m.data {
		if v != o.data[idx] {
			return false
		}
	}

	return true
}

// AllClose reports whether |m[i,j] - o[i,j]| ≤ atol + rtol*|o[i,j]| for every
// element of two same-shape matrices. NaN is never close to anything.
// Shape mismatch or a nil operand yields false.
func (m *Dense) AllClose(o *Dense, rtol, atol float64) bool {
	if m == nil || o == nil || m.r != o.r || m.c != o.c {
		return false
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	var a, b float64
	for idx := range m.data {
		a, b = m.data[idx], o.data[idx]
		if a == b { // covers equal infinities
			continue
		}
		if math.IsNaN(a) || math.IsNaN(b) || math.Abs(a-b) > atol+rtol*math.Abs(b) {
			return false
		}
	}

	return true
}

// String renders rows as lines with comma-separated values.
// Intended for logs and debugging; not for hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
