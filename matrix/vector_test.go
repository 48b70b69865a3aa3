package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lstsq/matrix"
	"github.com/stretchr/testify/require"
)

func TestVecAddSub(t *testing.T) {
	t.Parallel()

	a := []float64{1, 2, 3}
	b := []float64{4, 5, 6}

	sum, err := matrix.VecAdd(a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 7, 9}, sum)

	diff, err := matrix.VecSub(b, a)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 3, 3}, diff)

	// inputs untouched
	require.Equal(t, []float64{1, 2, 3}, a)
	require.Equal(t, []float64{4, 5, 6}, b)
}

func TestVecBinaryMismatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func(a, b []float64) error
	}{
		{"VecAdd", func(a, b []float64) error { _, err := matrix.VecAdd(a, b); return err }},
		{"VecSub", func(a, b []float64) error { _, err := matrix.VecSub(a, b); return err }},
		{"Dot", func(a, b []float64) error { _, err := matrix.Dot(a, b); return err }},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.fn([]float64{1, 2}, []float64{1}), matrix.ErrDimensionMismatch)
			require.ErrorIs(t, tc.fn(nil, []float64{1}), matrix.ErrNilMatrix)
		})
	}
}

func TestVecScale(t *testing.T) {
	v := []float64{1, -2, 0.5}
	got := matrix.VecScale(v, 2)
	require.Equal(t, []float64{2, -4, 1}, got)
	got[0] = 100
	require.Equal(t, 1.0, v[0], "VecScale must allocate")

	require.Empty(t, matrix.VecScale(nil, 3))
}

func TestDotAndNorm(t *testing.T) {
	d, err := matrix.Dot([]float64{1, 2, 3}, []float64{4, -5, 6})
	require.NoError(t, err)
	require.Equal(t, 12.0, d)

	require.Equal(t, 5.0, matrix.Norm([]float64{3, 4}))
	require.Zero(t, matrix.Norm(nil))

	v := []float64{1, 2, 2}
	dd, err := matrix.Dot(v, v)
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt(dd), matrix.Norm(v), 1e-15)
}
