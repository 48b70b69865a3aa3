// SPDX-License-Identifier: MIT
package regression

import (
	"math"

	"github.com/katalvlaran/lstsq/matrix"
)

// Residuals returns y − Predict(X).
func (lr *LinearRegression) Residuals(X [][]float64, y []float64) ([]float64, error) {
	yhat, err := lr.Predict(X)
	if err != nil {
		return nil, err
	}
	r, err := matrix.VecSub(y, yhat)
	if err != nil {
		return nil, regressionErrorf("Residuals", err)
	}

	return r, nil
}

// RSquared returns the coefficient of determination 1 − RSS/TSS on (X, y).
// Errors: ErrEmptyInput, ErrConstantTarget, plus those of Residuals.
func (lr *LinearRegression) RSquared(X [][]float64, y []float64) (float64, error) {
	if len(y) == 0 {
		return 0, regressionErrorf("RSquared", ErrEmptyInput)
	}
	r, err := lr.Residuals(X, y)
	if err != nil {
		return 0, err
	}

	var mean float64
	for _, v := range y {
		mean += v
	}
	mean /= float64(len(y))

	var tss, d float64
	for _, v := range y {
		d = v - mean
		tss += d * d
	}
	if tss == 0 {
		return 0, regressionErrorf("RSquared", ErrConstantTarget)
	}
	rss, _ := matrix.Dot(r, r)

	return 1 - rss/tss, nil
}

// RMSE returns sqrt(RSS/n) on (X, y).
func (lr *LinearRegression) RMSE(X [][]float64, y []float64) (float64, error) {
	if len(y) == 0 {
		return 0, regressionErrorf("RMSE", ErrEmptyInput)
	}
	r, err := lr.Residuals(X, y)
	if err != nil {
		return 0, err
	}

	return matrix.Norm(r) / math.Sqrt(float64(len(y))), nil
}
