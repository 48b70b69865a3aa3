// SPDX-License-Identifier: MIT

// Package matrix - least-squares solve via thin QR (modified Gram-Schmidt).
//
// Purpose:
//   - Minimize ‖A x − b‖₂ for an r×c design matrix A (r ≥ c) without forming AᵀA,
//     so the conditioning of the problem stays that of A.
//
// Determinism:
//   - Columns are orthonormalized strictly in order j = 0..c-1; each projection
//     uses the already updated working vector (modified, not classical, Gram-Schmidt).
//
// Complexity: O(r*c^2) time, O(r*c + c^2) space for the transient Q and R.

package matrix

import "fmt"

// SolveQR returns the least-squares solution x (length Cols()) of m x ≈ b.
//
// Implementation:
//   - Stage 1: validate m non-nil and len(b) == Rows().
//   - Stage 2: for j = 0..c-1 take a := column j of m; for every i < j set
//     R[i,j] = ⟨a, Qᵢ⟩ and a ← a − R[i,j]·Qᵢ; set R[j,j] = ‖a‖ and reject a
//     residual norm below the pivot tolerance (linearly dependent columns);
//     store a/‖a‖ as column j of Q.
//   - Stage 3: form Qᵀb and solve R x = Qᵀb by BackSub.
//
// Behavior highlights:
//   - The receiver is never mutated; Q and R never escape this call.
//   - Underdetermined input (r < c) necessarily produces a dependent column and
//     fails with ErrSingular.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(b) != Rows()).
//   - ErrSingular (dependent columns or a near-zero R diagonal).
//
// Complexity:
//   - Time O(r*c^2), Space O(r*c + c^2).
func (m *Dense) SolveQR(b []float64, opts ...Option) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSolveQR, err)
	}
	if err := ValidateVecLen(b, m.r); err != nil {
		return nil, matrixErrorf(opSolveQR, err)
	}
	tol := gatherOptions(opts...).pivotTol

	rows, cols := m.r, m.c
	Q := &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
	R := &Dense{r: cols, c: cols, data: make([]float64, cols*cols)}

	var (
		i, j  int
		a, qi []float64
		rij   float64
		nrm   float64
		err   error
	)
	for j = 0; j < cols; j++ {
		a, _ = m.Column(j) // j < cols: cannot fail
		for i = 0; i < j; i++ {
			qi, _ = Q.Column(i)
			if rij, err = Dot(a, qi); err != nil {
				return nil, matrixErrorf(opSolveQR, err)
			}
			R.data[i*cols+j] = rij
			if a, err = VecSub(a, VecScale(qi, rij)); err != nil {
				return nil, matrixErrorf(opSolveQR, err)
			}
		}

		nrm = Norm(a)
		if isZeroPivot(nrm, tol) {
			return nil, matrixErrorf(opSolveQR, fmt.Errorf("column %d residual norm %g: %w", j, nrm, ErrSingular))
		}
		R.data[j*cols+j] = nrm
		if err = Q.SetColumnInPlace(j, VecScale(a, 1.0/nrm)); err != nil {
			return nil, matrixErrorf(opSolveQR, err)
		}
	}

	qtb, err := Q.T().MulVec(b)
	if err != nil {
		return nil, matrixErrorf(opSolveQR, err)
	}
	x, err := R.BackSub(qtb, opts...)
	if err != nil {
		return nil, matrixErrorf(opSolveQR, err)
	}

	return x, nil
}
