// SPDX-License-Identifier: MIT

// Package matrix - determinant and inverse of a square matrix via partial-pivot LU.

package matrix

import (
	"errors"
	"fmt"
)

// Determinant returns det(m) as (−1)^swaps · Π U[i,i].
//
// Behavior highlights:
//   - A pivot below the tolerance returns exactly 0 with a nil error: a
//     numerically singular matrix has a zero determinant, not an error.
//   - The receiver is never mutated (the factorization runs on a clone).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func (m *Dense) Determinant(opts ...Option) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	f, err := pivotedLU(m.Clone(), gatherOptions(opts...).pivotTol)
	if errors.Is(err, ErrSingular) {
		return 0, nil
	}
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	n := m.r
	det := 1.0
	for i := 0; i < n; i++ {
		det *= f.U.data[i*n+i]
	}
	if f.swaps%2 == 1 {
		det = -det
	}

	return det, nil
}

// Inverse returns m⁻¹.
//
// Implementation:
//   - Stage 1: validate square; factorize a clone with pivotedLU (P·m = L·U).
//   - Stage 2: for each canonical basis column e_k solve L y = P e_k, U x = y and
//     write x into column k of the result.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func (m *Dense) Inverse(opts ...Option) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	f, err := pivotedLU(m.Clone(), gatherOptions(opts...).pivotTol)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := m.r
	inv := &Dense{r: n, c: n, data: make([]float64, n*n)}
	e := make([]float64, n)
	var y, x []float64
	for k := 0; k < n; k++ {
		for i := range e {
			e[i] = 0
		}
		e[k] = 1.0
		if y, err = f.L.ForSub(f.permute(e), opts...); err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		if x, err = f.U.BackSub(y, opts...); err != nil {
			return nil, matrixErrorf(opInverse, fmt.Errorf("column %d: %w", k, err))
		}
		_ = inv.SetColumnInPlace(k, x) // len(x) == n
	}

	return inv, nil
}
