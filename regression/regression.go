// SPDX-License-Identifier: MIT
package regression

import (
	"github.com/katalvlaran/lstsq/matrix"
)

// LinearRegression holds the coefficient vector of the last successful Fit.
// It is not safe for concurrent Fit calls; concurrent Predict calls on a
// fitted model are safe.
type LinearRegression struct {
	opts Options
	beta []float64 // nil until fitted
}

// New returns an unfitted model.
func New(opts ...Option) *LinearRegression {
	return &LinearRegression{opts: gatherOptions(opts...)}
}

// Options returns the resolved configuration.
func (lr *LinearRegression) Options() Options { return lr.opts }

// IsFitted reports whether Fit has succeeded at least once.
func (lr *LinearRegression) IsFitted() bool { return lr.beta != nil }

// Coefficients returns a copy of β, or nil when unfitted.
// β has one entry per column of the last fitted design matrix.
func (lr *LinearRegression) Coefficients() []float64 {
	if lr.beta == nil {
		return nil
	}

	return append([]float64(nil), lr.beta...)
}

// Fit solves the least-squares problem for X (rows = observations) and y, and
// replaces the stored coefficients on success.
//
// Errors: ErrEmptyInput; matrix.ErrRaggedRows; matrix.ErrDimensionMismatch when
// len(y) != len(X); matrix.ErrSingular when X is rank-deficient (or has fewer
// rows than columns).
func (lr *LinearRegression) Fit(X [][]float64, y []float64) error {
	if len(X) == 0 || len(y) == 0 {
		return regressionErrorf("Fit", ErrEmptyInput)
	}
	A, err := matrix.NewDenseFrom(X)
	if err != nil {
		return regressionErrorf("Fit", err)
	}

	return lr.FitDense(A, y)
}

// FitDense is Fit for a design matrix that is already a *matrix.Dense.
func (lr *LinearRegression) FitDense(X *matrix.Dense, y []float64) error {
	if err := matrix.ValidateNotNil(X); err != nil {
		return regressionErrorf("Fit", err)
	}
	if len(y) == 0 {
		return regressionErrorf("Fit", ErrEmptyInput)
	}

	var beta []float64
	var err error
	switch lr.opts.solver {
	case SolverLU:
		beta, err = X.SolveLU(y, lr.opts.matrixOpts...)
	default:
		beta, err = X.SolveQR(y, lr.opts.matrixOpts...)
	}
	if err != nil {
		return regressionErrorf("Fit", err)
	}
	lr.beta = beta

	return nil
}

// Predict returns ŷ_i = x_i·β for each row of X. Each row must have exactly
// len(β) entries. The model is not mutated.
func (lr *LinearRegression) Predict(X [][]float64) ([]float64, error) {
	if lr.beta == nil {
		return nil, regressionErrorf("Predict", ErrNotFitted)
	}
	out := make([]float64, len(X))
	var i int
	var err error
	for i = range X {
		if out[i], err = matrix.Dot(X[i], lr.beta); err != nil {
			return nil, regressionErrorf("Predict", err)
		}
	}

	return out, nil
}
