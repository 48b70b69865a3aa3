// SPDX-License-Identifier: MIT

// Package regression fits ordinary least-squares linear models on top of the
// matrix package.
//
// A LinearRegression starts unfitted. Fit solves min‖Xβ − y‖ with one of the
// matrix solvers (QR by default, LU on the normal equations on request) and
// stores β; Predict applies β to new rows by dot product. Callers that want an
// intercept prepend a column of ones to X (csvio does this by default).
//
// Failure semantics:
//   - Every error is a sentinel from this package or from matrix, wrapped with
//     the method name; match with errors.Is.
//   - A failed Fit leaves the previously fitted coefficients untouched.
//   - Predict before a successful Fit returns ErrNotFitted.
//
// Example:
//
//	lr := regression.New(regression.WithSolver(regression.SolverLU))
//	if err := lr.Fit(X, y); err != nil {
//		return err
//	}
//	yhat, err := lr.Predict(Xnew)
package regression
