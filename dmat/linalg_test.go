package dmat_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/densemat/dmat"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestSquareOpsRejectRectangular: every square-only method reports ErrNotSquare.
func TestSquareOpsRejectRectangular(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	_, err := m.Determinant()
	require.ErrorIs(t, err, dmat.ErrNotSquare)
	var se *dmat.ShapeError
	require.True(t, errors.As(err, &se))
	require.EqualError(t, err, "Determinant: 2x3: dense: matrix is not square")

	_, err = m.RowEchelon()
	require.ErrorIs(t, err, dmat.ErrNotSquare)
	_, err = m.Inverse()
	require.ErrorIs(t, err, dmat.ErrNotSquare)

	require.False(t, m.IsSquare())
	require.False(t, m.IsDiagonal())
	require.False(t, m.IsSymmetric())
	require.False(t, m.IsOrthogonal())
	require.False(t, m.IsScalarIdentityMultiple())
}

// TestSingular: determinant answers 0, the other two report ErrSingular.
func TestSingular(t *testing.T) {
	s := mustRows(t, [][]float64{{1, 2}, {0, 0}})

	det, err := s.Determinant()
	require.NoError(t, err)
	require.Equal(t, 0.0, det)

	_, err = s.Inverse()
	require.ErrorIs(t, err, dmat.ErrSingular)
	require.EqualError(t, err, "DMat.Inverse: dense: singular matrix")

	_, err = s.RowEchelon()
	require.ErrorIs(t, err, dmat.ErrSingular)
}

// TestDeterminantKnown covers the reference values.
func TestDeterminantKnown(t *testing.T) {
	cases := []struct {
		name  string
		rows  [][]float64
		want  float64
		delta float64
	}{
		{"2x2", [][]float64{{1, 2}, {3, 4}}, -2, 0},
		{"swap", [][]float64{{0, 1}, {1, 0}}, -1, 0},
		{"3x3", [][]float64{{7, -4, 2}, {3, 1, -5}, {2, 2, -5}}, 23, 1e-12},
		{"1x1", [][]float64{{-3.5}}, -3.5, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			det, err := mustRows(t, tc.rows).Determinant()
			require.NoError(t, err)
			require.InDelta(t, tc.want, det, tc.delta)
		})
	}
}

// TestIdentityDeterminant: det(I_N) == 1 exactly.
func TestIdentityDeterminant(t *testing.T) {
	for n := 1; n <= 8; n++ {
		i, err := dmat.Identity(n)
		require.NoError(t, err)
		det, err := i.Determinant()
		require.NoError(t, err)
		require.Equal(t, 1.0, det, "n=%d", n)
	}
}

// TestInverse checks the swap matrix, a product back to I, and a gonum oracle.
func TestInverse(t *testing.T) {
	p := mustRows(t, [][]float64{{0, 1}, {1, 0}})
	inv, err := p.Inverse()
	require.NoError(t, err)
	require.True(t, inv.Equal(p))

	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	inv, err = a.Inverse()
	require.NoError(t, err)
	prod, err := a.Mul(inv)
	require.NoError(t, err)
	i2, _ := dmat.Identity(2)
	require.True(t, prod.Equal(i2))

	rng := rand.New(rand.NewSource(99))
	for n := 2; n <= 5; n++ {
		r, err := dmat.Generate(n, n, func(int, int) float64 { return rng.Float64()*2 - 1 })
		require.NoError(t, err)
		got, err := r.Inverse()
		require.NoError(t, err)

		var want mat.Dense
		require.NoError(t, want.Inverse(mat.NewDense(n, n, r.Data())))
		require.True(t, mat.EqualApprox(&want, mat.NewDense(n, n, got.Data()), 1e-9), "n=%d", n)
	}
}

// TestRowEchelon pins the non-normalized upper-triangular form.
func TestRowEchelon(t *testing.T) {
	r, err := mustRows(t, [][]float64{{1, 2}, {3, 4}}).RowEchelon()
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4, 0, 0.6666666666666667}, r.Data())
}

// TestPredicates runs the structural checks over a small table.
func TestPredicates(t *testing.T) {
	cases := []struct {
		name                       string
		rows                       [][]float64
		diag, sym, orth, scalarMul bool
	}{
		{"identity", [][]float64{{1, 0}, {0, 1}}, true, true, true, true},
		{"swap", [][]float64{{0, 1}, {1, 0}}, false, true, true, false},
		{"scaled", [][]float64{{-2, 0}, {0, -2}}, true, true, false, true},
		{"diag", [][]float64{{1, 0}, {0, 3}}, true, true, false, false},
		{"general", [][]float64{{1, 2}, {3, 4}}, false, false, false, false},
		{"symmetric", [][]float64{{1, 7}, {7, 1}}, false, true, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := mustRows(t, tc.rows)
			require.True(t, m.IsSquare())
			require.Equal(t, tc.diag, m.IsDiagonal())
			require.Equal(t, tc.sym, m.IsSymmetric())
			require.Equal(t, tc.orth, m.IsOrthogonal())
			require.Equal(t, tc.scalarMul, m.IsScalarIdentityMultiple())
		})
	}
}

// TestNilReceiver: a nil *DMat reports ErrNilMatrix or a neutral answer, never panics.
func TestNilReceiver(t *testing.T) {
	var m *dmat.DMat
	one := mustRows(t, [][]float64{{1}})

	errCases := []struct {
		name string
		fn   func() error
	}{
		{"Determinant", func() error { _, err := m.Determinant(); return err }},
		{"RowEchelon", func() error { _, err := m.RowEchelon(); return err }},
		{"Inverse", func() error { _, err := m.Inverse(); return err }},
		{"At", func() error { _, err := m.At(0, 0); return err }},
		{"Set", func() error { return m.Set(0, 0, 1) }},
		{"Row", func() error { _, err := m.Row(0); return err }},
		{"Col", func() error { _, err := m.Col(0); return err }},
		{"Add", func() error { _, err := m.Add(one); return err }},
		{"Sub", func() error { _, err := m.Sub(one); return err }},
		{"Mul", func() error { _, err := m.Mul(one); return err }},
		{"AddInPlace", func() error { return m.AddInPlace(one) }},
		{"SubInPlace", func() error { return m.SubInPlace(one) }},
		{"MulInPlace", func() error { return m.MulInPlace(one) }},
	}
	for _, tc := range errCases {
		t.Run(tc.name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() { err = tc.fn() })
			require.ErrorIs(t, err, dmat.ErrNilMatrix)
		})
	}

	require.NotPanics(t, func() {
		require.False(t, m.IsSquare())
		require.False(t, m.IsDiagonal())
		require.False(t, m.IsSymmetric())
		require.False(t, m.IsOrthogonal())
		require.False(t, m.IsScalarIdentityMultiple())

		require.Nil(t, m.Transpose())
		require.Nil(t, m.Scale(2))
		require.Nil(t, m.Div(2))
		require.Nil(t, m.Neg())
		require.Nil(t, m.Map(func(v float64) float64 { return v }))
		require.Nil(t, m.Clone())
		require.Nil(t, m.Data())

		r, c := m.Shape()
		require.Equal(t, [2]int{0, 0}, [2]int{r, c})
		require.Zero(t, m.Rows())
		require.Zero(t, m.Cols())

		for range m.All() {
			t.Fatal("nil matrix yielded a row")
		}
		m.ScaleInPlace(2)
		m.DivInPlace(2)
		m.Apply(func(float64, int, int) float64 { t.Fatal("f called on nil matrix"); return 0 })
		require.Equal(t, "<nil>", m.String())
	})
}
