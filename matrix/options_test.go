// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lstsq/matrix"
	"github.com/stretchr/testify/require"
)

// 1) TestDefaultOptions_Documented verifies that NewOptions() equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.NewOptions()
	require.Equal(t, matrix.DefaultPivotTolerance, o.PivotTolerance())
}

// 2) TestNewOptions_LastWriterWins ensures later setters override earlier ones
// and nil setters are skipped.
func TestNewOptions_LastWriterWins(t *testing.T) {
	o := matrix.NewOptions(matrix.WithPivotTolerance(1e-3), nil, matrix.WithPivotTolerance(0))
	require.Zero(t, o.PivotTolerance())

	o = matrix.NewOptions(matrix.WithPivotTolerance(1e-6))
	require.Equal(t, 1e-6, o.PivotTolerance())
}

// 3) TestWithPivotTolerance_PanicsOnInvalid covers the constructor guard.
func TestWithPivotTolerance_PanicsOnInvalid(t *testing.T) {
	for _, tol := range []float64{-1e-9, math.NaN(), math.Inf(1), math.Inf(-1)} {
		tol := tol
		require.Panics(t, func() { _ = matrix.WithPivotTolerance(tol) }, "tol=%v", tol)
	}
	require.NotPanics(t, func() { _ = matrix.WithPivotTolerance(0) })
}
