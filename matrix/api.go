// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points for common constructors and package-level
//     spellings of the arithmetic methods.
//   - Avoid any logic duplication: each facade delegates to the canonical method.

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// Add is the package-level spelling of a.Add(b).
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub is the package-level spelling of a.Sub(b).
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul is the package-level spelling of a.Mul(b).
func Mul(a, b *Dense) (*Dense, error) { return a.Mul(b) }

// Transpose is the package-level spelling of m.Transpose().
func Transpose(m *Dense) (*Dense, error) { return m.Transpose() }
