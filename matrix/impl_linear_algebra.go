// SPDX-License-Identifier: MIT
// Package matrix provides value-returning arithmetic on *Dense: transpose,
// matrix-matrix, matrix-vector and scalar products, element-wise addition and
// subtraction. All kernels perform strict fail-fast validation and return
// clear errors on dimension mismatches.
//
// Purpose:
//   - Named methods replace infix operators; every method allocates a fresh
//     result and never writes into the receiver or the operand.
//   - Define operation tags and shared constants for error reporting.

package matrix

import "fmt"

// NormZero is the additive identity for norm accumulation.
const NormZero = 0.0

// ZeroSum is the initial sum value for dot products and substitutions.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opMulVec      = "MulVec"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opBackSub     = "BackSub"
	opForSub      = "ForSub"
	opSolveQR     = "SolveQR"
	opSolveLU     = "SolveLU"
	opDeterminant = "Determinant"
	opInverse     = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes element-wise out = a + sign*b for sign ∈ {+1, -1}.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: single flat loop 0..n-1 into a freshly allocated Dense.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opTag).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub(a, b *Dense, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res := &Dense{r: a.r, c: a.c, data: make([]float64, len(a.data))}
	for idx := range a.data {
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add returns the element-wise sum m + o.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func (m *Dense) Add(o *Dense) (*Dense, error) { return addSub(m, o, +1, opAdd) }

// Sub returns the element-wise difference m - o.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func (m *Dense) Sub(o *Dense) (*Dense, error) { return addSub(m, o, -1, opSub) }

// Mul performs the standard product C = m × o.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (m.Cols == o.Rows).
//   - Stage 2: naive i→k→j triple loop over row-major strides, accumulating into
//     a zero-initialized result.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (inner mismatch); no result is produced.
//
// Determinism:
//   - Fixed loop order; identical inputs give bit-identical outputs.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func (m *Dense) Mul(o *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(m, o); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := m.r, m.c, o.c
	res := &Dense{r: aRows, c: bCols, data: make([]float64, aRows*bCols)}

	var (
		i, k, j                            int
		rowOffsetA, rowOffsetB, rowOffsetR int
		av                                 float64
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = m.data[rowOffsetA+k]
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * o.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// MulVec computes y = m · x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r) for y.
func (m *Dense) MulVec(x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	y := make([]float64, m.r)
	var i, j, base int
	var acc float64
	for i = 0; i < m.r; i++ {
		acc = ZeroSum
		base = i * m.c
		for j = 0; j < m.c; j++ {
			acc += m.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// Transpose returns a new c×r matrix with rows and columns swapped.
// The receiver is never mutated; T(T(m)) equals m exactly.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Transpose() (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.r, m.c
	res := &Dense{r: cols, c: rows, data: make([]float64, rows*cols)}
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j] // data[i*cols+j] → res[j*rows+i]
		}
	}

	return res, nil
}

// T is a short alias for Transpose, convenient when the receiver is known to be non-nil.
func (m *Dense) T() *Dense {
	res, _ := m.Transpose() // only fails on nil receiver

	return res
}

// Scale returns a new matrix alpha*m. alpha = 0 yields a zero matrix of the same shape.
// NaN/Inf propagate. Complexity: O(r*c).
func (m *Dense) Scale(alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for idx, v := range m.data {
		res.data[idx] = v * alpha
	}

	return res, nil
}
