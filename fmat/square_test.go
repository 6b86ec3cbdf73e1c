package fmat_test

import (
	"testing"

	"github.com/katalvlaran/densemat/fmat"
	"github.com/stretchr/testify/require"
)

// TestSquareScenarios walks the reference cases through every square operation.
func TestSquareScenarios(t *testing.T) {
	t.Run("swap matrix", func(t *testing.T) {
		p := fmat.MustFromRows[fmat.D2, fmat.D2]([][]int{{0, 1}, {1, 0}})
		require.False(t, fmat.IsDiagonal(p))
		require.True(t, fmat.IsSymmetric(p))
		require.True(t, fmat.IsOrthogonal(p))
		require.False(t, fmat.IsScalarIdentityMultiple(p))
		require.Equal(t, -1.0, fmat.Determinant(p))

		inv, ok := fmat.Inverse(p)
		require.True(t, ok)
		require.True(t, inv.Equal(p))
	})

	t.Run("singular", func(t *testing.T) {
		s := fmat.MustFromRows[fmat.D2, fmat.D2]([][]int{{1, 2}, {0, 0}})
		require.Equal(t, 0.0, fmat.Determinant(s))
		_, ok := fmat.Inverse(s)
		require.False(t, ok)
		_, ok = fmat.RowEchelon(s)
		require.False(t, ok)
	})

	t.Run("general 2x2", func(t *testing.T) {
		a := fmat.MustFromRows[fmat.D2, fmat.D2]([][]int{{1, 2}, {3, 4}})
		require.Equal(t, -2.0, fmat.Determinant(a))

		inv, ok := fmat.Inverse(a)
		require.True(t, ok)
		require.Equal(t, []float64{-2, 1, 1.5, -0.5}, inv.Data())
		require.True(t, fmat.Mul(a, inv).Equal(fmat.Identity[fmat.D2]()))

		r, ok := fmat.RowEchelon(a)
		require.True(t, ok)
		require.Equal(t, []float64{3, 4, 0, 0.6666666666666667}, r.Data())
	})
}

// TestScalarIdentityMultiple accepts positive, negative and zero scalars.
func TestScalarIdentityMultiple(t *testing.T) {
	i3 := fmat.Identity[fmat.D3]()
	require.True(t, fmat.IsScalarIdentityMultiple(i3))
	require.True(t, fmat.IsScalarIdentityMultiple(i3.Scale(2.5)))
	require.True(t, fmat.IsScalarIdentityMultiple(i3.Neg()))

	var z fmat.Mat[fmat.D3, fmat.D3]
	require.True(t, fmat.IsScalarIdentityMultiple(z))
	require.True(t, fmat.IsDiagonal(z))

	d := fmat.MustFromRows[fmat.D3, fmat.D3]([][]int{{1, 0, 0}, {0, 2, 0}, {0, 0, 1}})
	require.True(t, fmat.IsDiagonal(d))
	require.False(t, fmat.IsScalarIdentityMultiple(d))
}

// TestSquareDoesNotMutate leaves the operand untouched.
func TestSquareDoesNotMutate(t *testing.T) {
	a := fmat.MustFromRows[fmat.D3, fmat.D3]([][]int{{2, 1, 1}, {4, 3, 3}, {8, 7, 9}})
	before := a.Data()
	_ = fmat.Determinant(a)
	_, _ = fmat.RowEchelon(a)
	_, _ = fmat.Inverse(a)
	require.Equal(t, before, a.Data())
}

// TestInverseRoundTrip: (A⁻¹)⁻¹ is A for an exactly invertible matrix.
func TestInverseRoundTrip(t *testing.T) {
	a := fmat.MustFromRows[fmat.D3, fmat.D3]([][]int{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}})
	inv, ok := fmat.Inverse(a)
	require.True(t, ok)
	back, ok := fmat.Inverse(inv)
	require.True(t, ok)
	require.True(t, back.Equal(a))
	require.True(t, inv.Equal(a.Transpose()))
}
