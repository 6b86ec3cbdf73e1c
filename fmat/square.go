// SPDX-License-Identifier: MIT

package fmat

import "github.com/katalvlaran/densemat/dense"

// Determinant returns det(m) by partially pivoted forward elimination.
// A singular matrix yields exactly 0; det of the 0×0 matrix is 1.
//
// Complexity: O(N³) time, O(N²) extra space.
func Determinant[N Dim](m Mat[N, N]) float64 {
	return dense.Determinant(m.b())
}

// RowEchelon returns the upper-triangular form reached by the same pivoted
// elimination as Determinant. Pivot rows are not normalized and entries
// above the pivots are not cleared. ok is false for a singular input.
func RowEchelon[N Dim](m Mat[N, N]) (Mat[N, N], bool) {
	r, ok := dense.RowEchelon(m.b())
	if !ok {
		return Mat[N, N]{}, false
	}

	return Mat[N, N]{buf: r}, true
}

// Inverse returns m⁻¹ by Gauss-Jordan elimination on [m | I].
// ok is false when the left half does not reduce exactly to I.
//
//	inv, ok := fmat.Inverse(m)
//	if !ok {
//		// singular (or numerically so)
//	}
func Inverse[N Dim](m Mat[N, N]) (Mat[N, N], bool) {
	inv, ok := dense.Inverse(m.b())
	if !ok {
		return Mat[N, N]{}, false
	}

	return Mat[N, N]{buf: inv}, true
}

// IsDiagonal reports whether every off-diagonal entry is exactly 0.
func IsDiagonal[N Dim](m Mat[N, N]) bool { return dense.IsDiagonal(m.b()) }

// IsSymmetric reports m == mᵀ.
func IsSymmetric[N Dim](m Mat[N, N]) bool { return dense.IsSymmetric(m.b()) }

// IsOrthogonal reports m·mᵀ == I exactly.
func IsOrthogonal[N Dim](m Mat[N, N]) bool { return dense.IsOrthogonal(m.b()) }

// IsScalarIdentityMultiple reports m == k·I for some k (taken from m[0][0]).
func IsScalarIdentityMultiple[N Dim](m Mat[N, N]) bool {
	return dense.IsScalarIdentityMultiple(m.b())
}
