// SPDX-License-Identifier: MIT

// Package matrix - triangular solvers (back and forward substitution).
//
// Purpose:
//   - BackSub solves U x = b reading only the upper triangle (diagonal included).
//   - ForSub solves L x = b reading only the lower triangle (diagonal included);
//     unit and general diagonals are both handled by dividing by L[i,i].
//   - Both fail with ErrSingular as soon as a diagonal entry is below the pivot
//     tolerance; no partial solution is returned.
//
// Complexity: O(n^2) time, O(n) space for x.

package matrix

import (
	"fmt"
	"math"
)

// isZeroPivot reports |p| < tol, treating an exact zero as a zero pivot
// even when tol == 0.
func isZeroPivot(p, tol float64) bool {
	return p == 0 || math.Abs(p) < tol
}

// validateTriangular runs the shared precondition chain of BackSub/ForSub:
// NotNil → Square → len(b) == Rows.
func validateTriangular(m *Dense, b []float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}

	return ValidateVecLen(b, m.r)
}

// BackSub solves the upper-triangular system m x = b.
//
// Implementation:
//   - Stage 1: validate square m and len(b) == Rows().
//   - Stage 2: iterate i = n-1 → 0; reject |m[i,i]| < tol; subtract the already
//     solved contributions m[i,j]*x[j] (j > i) and divide by m[i,i].
//
// Behavior highlights:
//   - Entries below the diagonal are ignored, so a reduced (eliminated) matrix
//     can be passed directly.
//   - Every row, the last one included, is checked for a zero pivot.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrSingular.
//
// Complexity:
//   - Time O(n^2), Space O(n).
func (m *Dense) BackSub(b []float64, opts ...Option) ([]float64, error) {
	if err := validateTriangular(m, b); err != nil {
		return nil, matrixErrorf(opBackSub, err)
	}
	tol := gatherOptions(opts...).pivotTol

	n := m.r
	x := make([]float64, n)
	var (
		i, j, base int
		sum, pivot float64
	)
	for i = n - 1; i >= 0; i-- {
		base = i * n
		pivot = m.data[base+i]
		if isZeroPivot(pivot, tol) {
			return nil, matrixErrorf(opBackSub, fmt.Errorf("row %d pivot %g: %w", i, pivot, ErrSingular))
		}
		sum = b[i]
		for j = i + 1; j < n; j++ {
			sum -= m.data[base+j] * x[j]
		}
		x[i] = sum / pivot
	}

	return x, nil
}

// ForSub solves the lower-triangular system m x = b.
//
// Implementation:
//   - Stage 1: validate square m and len(b) == Rows().
//   - Stage 2: iterate i = 0 → n-1; reject |m[i,i]| < tol; subtract m[i,j]*x[j]
//     (j < i) and divide by m[i,i].
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrSingular.
//
// Complexity:
//   - Time O(n^2), Space O(n).
func (m *Dense) ForSub(b []float64, opts ...Option) ([]float64, error) {
	if err := validateTriangular(m, b); err != nil {
		return nil, matrixErrorf(opForSub, err)
	}
	tol := gatherOptions(opts...).pivotTol

	n := m.r
	x := make([]float64, n)
	var (
		i, j, base int
		sum, pivot float64
	)
	for i = 0; i < n; i++ {
		base = i * n
		pivot = m.data[base+i]
		if isZeroPivot(pivot, tol) {
			return nil, matrixErrorf(opForSub, fmt.Errorf("row %d pivot %g: %w", i, pivot, ErrSingular))
		}
		sum = b[i]
		for j = 0; j < i; j++ {
			sum -= m.data[base+j] * x[j]
		}
		x[i] = sum / pivot
	}

	return x, nil
}
