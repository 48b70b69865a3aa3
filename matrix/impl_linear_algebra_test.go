// Package matrix_test contains unit tests for value-returning arithmetic on Dense.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lstsq/matrix"
	"github.com/stretchr/testify/require"
)

func TestAddSub(t *testing.T) {
	t.Parallel()

	a := MustFrom(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFrom(t, [][]float64{{10, 20}, {30, 40}})
	aBefore, bBefore := a.Clone(), b.Clone()

	s, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{11, 22}, {33, 44}}, s.RawRows())

	d, err := b.Sub(a)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{9, 18}, {27, 36}}, d.RawRows())

	// package-level spellings agree with the methods
	s2, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.True(t, s.Equal(s2))
	d2, err := matrix.Sub(b, a)
	require.NoError(t, err)
	require.True(t, d.Equal(d2))

	// no aliasing
	require.True(t, a.Equal(aBefore))
	require.True(t, b.Equal(bBefore))
	MustSet(t, s, 0, 0, -1)
	require.Equal(t, 1.0, MustAt(t, a, 0, 0))
}

func TestAddSubShapeMismatch(t *testing.T) {
	a := MustDense(t, 2, 2)
	b := MustDense(t, 2, 3)

	_, err := a.Add(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = a.Sub(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = a.Add(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul(t *testing.T) {
	t.Parallel()

	a := MustFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustFrom(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	c, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{58, 64}, {139, 154}}, c.RawRows())

	c2, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.True(t, c.Equal(c2))
}

// TestMulDimensionMismatch checks that a 2×3 times 2×2 product fails and yields no result.
func TestMulDimensionMismatch(t *testing.T) {
	a := MustDense(t, 2, 3)
	b := MustDense(t, 2, 2)

	c, err := a.Mul(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Nil(t, c)
}

func TestMulAssociative(t *testing.T) {
	t.Parallel()

	A := RandomDense(t, 4, 3, 1)
	B := RandomDense(t, 3, 5, 2)
	C := RandomDense(t, 5, 2, 3)

	ab, err := A.Mul(B)
	require.NoError(t, err)
	left, err := ab.Mul(C)
	require.NoError(t, err)

	bc, err := B.Mul(C)
	require.NoError(t, err)
	right, err := A.Mul(bc)
	require.NoError(t, err)

	require.True(t, left.AllClose(right, 1e-12, 1e-12))
}

func TestMulIdentity(t *testing.T) {
	A := RandomDense(t, 3, 3, 7)
	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)

	AI, err := A.Mul(I)
	require.NoError(t, err)
	require.True(t, AI.Equal(A))
}

func TestMulVec(t *testing.T) {
	a := MustFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	y, err := a.MulVec([]float64{1, 0, -1})
	require.NoError(t, err)
	require.Equal(t, []float64{-2, -2}, y)

	_, err = a.MulVec([]float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = a.MulVec(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTransposeRoundTrip(t *testing.T) {
	a := RandomDense(t, 3, 5, 11)

	at, err := a.Transpose()
	require.NoError(t, err)
	require.Equal(t, 5, at.Rows())
	require.Equal(t, 3, at.Cols())
	require.Equal(t, MustAt(t, a, 1, 4), MustAt(t, at, 4, 1))

	require.True(t, at.T().Equal(a), "T(T(A)) must equal A exactly")

	viaFacade, err := matrix.Transpose(a)
	require.NoError(t, err)
	require.True(t, viaFacade.Equal(at))

	var nilM *matrix.Dense
	_, err = nilM.Transpose()
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestScale(t *testing.T) {
	a := MustFrom(t, [][]float64{{1, -2}, {0.5, 4}})

	s, err := a.Scale(2)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2, -4}, {1, 8}}, s.RawRows())
	require.Equal(t, 1.0, MustAt(t, a, 0, 0))

	z, err := a.Scale(0)
	require.NoError(t, err)
	require.True(t, z.Equal(MustDense(t, 2, 2)))
}
