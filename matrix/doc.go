// Package matrix is a small dense linear-algebra engine for least-squares fitting.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked accessors.
//   - Value-returning arithmetic (Transpose, Mul, MulVec, Scale, Add, Sub) and
//     explicitly named in-place mutators (SetColumnInPlace, SwapRowsInPlace).
//   - Stateless vector kernels (VecAdd, VecSub, VecScale, Dot, Norm).
//   - Triangular solvers BackSub and ForSub with a zero-pivot policy.
//   - Two least-squares solvers: SolveQR (modified Gram-Schmidt) and SolveLU
//     (normal equations + partial-pivot LU).
//   - Determinant and Inverse for square matrices.
//
// Every failure is a sentinel from errors.go, wrapped with an operation tag;
// match it with errors.Is. The zero-pivot tolerance defaults to
// DefaultPivotTolerance and can be changed per call with WithPivotTolerance.
//
// Matrices are owned by their caller and are not safe for concurrent mutation.
package matrix
