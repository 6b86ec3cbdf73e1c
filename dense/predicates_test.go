package dense_test

import (
	"testing"

	"github.com/katalvlaran/densemat/dense"
	"github.com/stretchr/testify/require"
)

// TestPredicates runs every structural predicate over a table of inputs.
func TestPredicates(t *testing.T) {
	cases := []struct {
		name                       string
		rows                       [][]float64
		diag, sym, orth, scalarMul bool
	}{
		{"swap", [][]float64{{0, 1}, {1, 0}}, false, true, true, false},
		{"identity", [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, true, true, true, true},
		{"scaled identity", [][]float64{{-2, 0}, {0, -2}}, true, true, false, true},
		{"diagonal", [][]float64{{1, 0}, {0, 2}}, true, true, false, false},
		{"general", [][]float64{{1, 2}, {3, 4}}, false, false, false, false},
		{"symmetric", [][]float64{{1, 7}, {7, 4}}, false, true, false, false},
		{"reflection", [][]float64{{1, 0}, {0, -1}}, true, true, true, false},
		{"non-square", [][]float64{{1, 0, 0}, {0, 1, 0}}, false, false, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := mustRows(t, tc.rows)
			require.Equal(t, tc.diag, dense.IsDiagonal(a), "IsDiagonal")
			require.Equal(t, tc.sym, dense.IsSymmetric(a), "IsSymmetric")
			require.Equal(t, tc.orth, dense.IsOrthogonal(a), "IsOrthogonal")
			require.Equal(t, tc.scalarMul, dense.IsScalarIdentityMultiple(a), "IsScalarIdentityMultiple")
		})
	}
}

// TestPredicatesEmpty: the 0×0 buffer is vacuously diagonal/symmetric/orthogonal.
func TestPredicatesEmpty(t *testing.T) {
	var empty dense.Buffer
	require.True(t, dense.IsSquare(empty))
	require.True(t, dense.IsDiagonal(empty))
	require.True(t, dense.IsSymmetric(empty))
	require.True(t, dense.IsOrthogonal(empty))
	require.True(t, dense.IsScalarIdentityMultiple(empty))
}
