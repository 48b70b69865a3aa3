// SPDX-License-Identifier: MIT
package regression_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lstsq/regression"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticsExactFit(t *testing.T) {
	lr := regression.New()
	y := []float64{2, 4, 6}
	require.NoError(t, lr.Fit(lineX, y))

	r, err := lr.Residuals(lineX, y)
	require.NoError(t, err)
	requireVecClose(t, []float64{0, 0, 0}, r, 1e-9)

	r2, err := lr.RSquared(lineX, y)
	require.NoError(t, err)
	require.InDelta(t, 1.0, r2, 1e-12)

	rmse, err := lr.RMSE(lineX, y)
	require.NoError(t, err)
	require.InDelta(t, 0.0, rmse, 1e-9)
}

func TestDiagnosticsNoisy(t *testing.T) {
	lr := regression.New()
	y := []float64{2.1, 3.9, 6.2}
	require.NoError(t, lr.Fit(lineX, y))

	// β = (-1/30, 2.05)
	r, err := lr.Residuals(lineX, y)
	require.NoError(t, err)
	requireVecClose(t, []float64{1.0 / 12, -1.0 / 6, 1.0 / 12}, r, 1e-9)

	rss := 1.0 / 24
	tss := 1267.0 / 150
	r2, err := lr.RSquared(lineX, y)
	require.NoError(t, err)
	require.InDelta(t, 1-rss/tss, r2, 1e-9)

	rmse, err := lr.RMSE(lineX, y)
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt(rss/3), rmse, 1e-9)
}

func TestDiagnosticsErrors(t *testing.T) {
	_, err := regression.New().RSquared(lineX, []float64{1, 2, 3})
	require.ErrorIs(t, err, regression.ErrNotFitted)

	lr := regression.New()
	require.NoError(t, lr.Fit(lineX, []float64{2, 4, 6}))

	_, err = lr.RSquared(lineX, []float64{5, 5, 5})
	require.ErrorIs(t, err, regression.ErrConstantTarget)
	_, err = lr.RMSE(lineX, nil)
	require.ErrorIs(t, err, regression.ErrEmptyInput)
}
