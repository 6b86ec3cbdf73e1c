package gonumconv_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/densemat/dense"
	"github.com/katalvlaran/densemat/dmat"
	"github.com/katalvlaran/densemat/fmat"
	"github.com/katalvlaran/densemat/gonumconv"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestDynamicRoundTrip goes DMat → Dense → DMat and checks independence.
func TestDynamicRoundTrip(t *testing.T) {
	m, err := dmat.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	d := gonumconv.ToDense(m)
	r, c := d.Dims()
	require.Equal(t, [2]int{2, 3}, [2]int{r, c})
	require.Equal(t, 6.0, d.At(1, 2))

	d.Set(0, 0, 99)
	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)

	back, err := gonumconv.FromMatrix(d)
	require.NoError(t, err)
	require.Equal(t, []float64{99, 2, 3, 4, 5, 6}, back.Data())

	require.Nil(t, gonumconv.ToDense(nil))
}

// TestFromMatrixViews honors sliced strides and non-Dense implementations.
func TestFromMatrixViews(t *testing.T) {
	big := mat.NewDense(3, 4, []float64{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
	})

	sub, err := gonumconv.FromMatrix(big.Slice(1, 3, 1, 3))
	require.NoError(t, err)
	require.Equal(t, []float64{6, 7, 10, 11}, sub.Data())

	tr, err := gonumconv.FromMatrix(big.T())
	require.NoError(t, err)
	r, c := tr.Shape()
	require.Equal(t, [2]int{4, 3}, [2]int{r, c})
	col, _ := tr.Col(0)
	require.Equal(t, []float64{1, 2, 3, 4}, col)
}

// TestFromMatrixErrors covers nil and empty sources.
func TestFromMatrixErrors(t *testing.T) {
	_, err := gonumconv.FromMatrix(nil)
	require.ErrorIs(t, err, gonumconv.ErrNilMatrix)

	var typedNil *mat.Dense
	_, err = gonumconv.FromMatrix(typedNil)
	require.ErrorIs(t, err, gonumconv.ErrNilMatrix)

	_, err = gonumconv.FromMatrix(&mat.Dense{})
	require.ErrorIs(t, err, dmat.ErrInvalidDimensions)
}

// TestFixedConversions covers both directions and the shape check.
func TestFixedConversions(t *testing.T) {
	m := fmat.MustFromRows[fmat.D2, fmat.D2]([][]int{{4, 7}, {2, 6}})
	d := gonumconv.FixedToDense(m)
	require.True(t, mat.Equal(d, mat.NewDense(2, 2, []float64{4, 7, 2, 6})))

	back, err := gonumconv.FixedFromMatrix[fmat.D2, fmat.D2](d)
	require.NoError(t, err)
	require.True(t, back.Equal(m))

	_, err = gonumconv.FixedFromMatrix[fmat.D3, fmat.D3](d)
	require.ErrorIs(t, err, dense.ErrShapeMismatch)
	var se *dense.ShapeError
	require.True(t, errors.As(err, &se))
	require.Equal(t, "FixedFromMatrix", se.Op)

	_, err = gonumconv.FixedFromMatrix[fmat.D2, fmat.D2](nil)
	require.ErrorIs(t, err, gonumconv.ErrNilMatrix)
}

// TestGonumAgrees: determinant and inverse match gonum's LU-based answers.
func TestGonumAgrees(t *testing.T) {
	m := fmat.MustFromRows[fmat.D3, fmat.D3]([][]float64{{7, -4, 2}, {3, 1, -5}, {2, 2, -5}})
	d := gonumconv.FixedToDense(m)

	require.InDelta(t, mat.Det(d), fmat.Determinant(m), 1e-12)

	inv, ok := fmat.Inverse(m)
	require.True(t, ok)
	var want mat.Dense
	require.NoError(t, want.Inverse(d))
	require.True(t, mat.EqualApprox(&want, gonumconv.FixedToDense(inv), 1e-12))
}
