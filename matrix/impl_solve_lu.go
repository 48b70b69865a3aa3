// SPDX-License-Identifier: MIT

// Package matrix - Gaussian elimination with partial pivoting and the
// normal-equations least-squares solver built on it.
//
// Purpose:
//   - pivotedLU factorizes a square matrix as P·G = L·U in place, tracking the
//     unit-lower multipliers L and the row permutation.
//   - SolveLU forms the normal equations (AᵀA) x = Aᵀb and solves them with
//     pivotedLU + ForSub + BackSub.
//
// Numeric caveat:
//   - Forming AᵀA squares the condition number of A. SolveLU trades that accuracy
//     for a single c×c factorization; SolveQR is the better-conditioned path.

package matrix

import (
	"fmt"
	"math"
)

// luFactors holds the transient output of pivotedLU.
//   - L: unit lower-triangular multipliers (c×c).
//   - U: the reduced matrix; only its upper triangle is meaningful.
//   - perm: perm[i] is the original row now at position i.
//   - swaps: number of row exchanges performed (sign of the permutation).
type luFactors struct {
	L, U  *Dense
	perm  []int
	swaps int
}

// permute returns v reordered by f.perm (out[i] = v[perm[i]]).
func (f *luFactors) permute(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, p := range f.perm {
		out[i] = v[p]
	}

	return out
}

// pivotedLU runs Gaussian elimination with partial pivoting on u IN PLACE.
//
// Implementation:
//   - At step i pick the row p ∈ [i, n) with the largest |u[p,i]| (first wins on ties).
//   - Swap rows i and p in u, mirror the swap in perm and in the already computed
//     leading columns [0, i) of L.
//   - Reject |u[i,i]| < tol with ErrSingular.
//   - For every j > i record L[j,i] = u[j,i]/u[i,i] and subtract L[j,i]·row i
//     from row j over columns [i, n).
//
// Errors:
//   - ErrSingular (step index reported in the message).
//
// Complexity:
//   - Time O(n^3), Space O(n^2) for L.
func pivotedLU(u *Dense, tol float64) (*luFactors, error) {
	n := u.r
	L := &Dense{r: n, c: n, data: make([]float64, n*n)}
	perm := make([]int, n)
	var i, j, k, p int
	for i = 0; i < n; i++ {
		L.data[i*n+i] = 1.0
		perm[i] = i
	}

	var (
		swaps       int
		pivot, lji  float64
		baseI, base int
	)
	for i = 0; i < n; i++ {
		// Partial pivoting: largest magnitude in column i at or below the diagonal.
		p = i
		for j = i + 1; j < n; j++ {
			if math.Abs(u.data[p*n+i]) < math.Abs(u.data[j*n+i]) {
				p = j
			}
		}
		if p != i {
			_ = u.SwapRowsInPlace(i, p) // both indices in range
			perm[i], perm[p] = perm[p], perm[i]
			for k = 0; k < i; k++ {
				L.data[i*n+k], L.data[p*n+k] = L.data[p*n+k], L.data[i*n+k]
			}
			swaps++
		}

		baseI = i * n
		pivot = u.data[baseI+i]
		if isZeroPivot(pivot, tol) {
			return nil, fmt.Errorf("step %d pivot %g: %w", i, pivot, ErrSingular)
		}

		for j = i + 1; j < n; j++ {
			base = j * n
			lji = u.data[base+i] / pivot
			L.data[base+i] = lji
			for k = i; k < n; k++ {
				u.data[base+k] -= lji * u.data[baseI+k]
			}
		}
	}

	return &luFactors{L: L, U: u, perm: perm, swaps: swaps}, nil
}

// SolveLU returns the least-squares solution x (length Cols()) of m x ≈ b
// through the normal equations (mᵀm) x = mᵀb.
//
// Implementation:
//   - Stage 1: validate m non-nil and len(b) == Rows().
//   - Stage 2: G = mᵀm (c×c), g = mᵀb (length c).
//   - Stage 3: pivotedLU(G); permute g alongside the row swaps.
//   - Stage 4: y = L.ForSub(Pg), x = U.BackSub(y).
//
// Behavior highlights:
//   - Despite the name, this is LU of the normal-equations matrix, not of m.
//   - The receiver and b are never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(b) != Rows()).
//   - ErrSingular (rank-deficient m, including r < c).
//
// Complexity:
//   - Time O(r*c^2 + c^3), Space O(c^2).
func (m *Dense) SolveLU(b []float64, opts ...Option) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSolveLU, err)
	}
	if err := ValidateVecLen(b, m.r); err != nil {
		return nil, matrixErrorf(opSolveLU, err)
	}
	tol := gatherOptions(opts...).pivotTol

	mt := m.T()
	G, err := mt.Mul(m)
	if err != nil {
		return nil, matrixErrorf(opSolveLU, err)
	}
	g, err := mt.MulVec(b)
	if err != nil {
		return nil, matrixErrorf(opSolveLU, err)
	}

	f, err := pivotedLU(G, tol)
	if err != nil {
		return nil, matrixErrorf(opSolveLU, err)
	}
	y, err := f.L.ForSub(f.permute(g), opts...)
	if err != nil {
		return nil, matrixErrorf(opSolveLU, err)
	}
	x, err := f.U.BackSub(y, opts...)
	if err != nil {
		return nil, matrixErrorf(opSolveLU, err)
	}

	return x, nil
}
