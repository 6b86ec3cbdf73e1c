// SPDX-License-Identifier: MIT

package dmat

import "github.com/katalvlaran/densemat/dense"

// Determinant returns det(m) by partially pivoted forward elimination.
// A singular matrix yields (0, nil): singularity is an answer here, not a failure.
//
// Errors:
//   - *ShapeError wrapping ErrNotSquare if m is rectangular.
//   - ErrNilMatrix if m is nil.
func (m *DMat) Determinant() (float64, error) {
	if err := checkOperands(opDeterminant, m); err != nil {
		return 0, err
	}
	if err := dense.CheckSquare(opDeterminant, m.buf); err != nil {
		return 0, err
	}

	return dense.Determinant(m.buf), nil
}

// RowEchelon returns the upper-triangular matrix reached by the determinant's
// elimination sweep. Pivots keep their values and entries above the diagonal
// are left as they are.
//
// Errors:
//   - *ShapeError wrapping ErrNotSquare if m is rectangular.
//   - ErrNilMatrix if m is nil.
//   - ErrSingular if some column has no nonzero pivot.
func (m *DMat) RowEchelon() (*DMat, error) {
	if err := checkOperands(opRowEchelon, m); err != nil {
		return nil, err
	}
	if err := dense.CheckSquare(opRowEchelon, m.buf); err != nil {
		return nil, err
	}
	r, ok := dense.RowEchelon(m.buf)
	if !ok {
		return nil, dmatErrorf(opRowEchelon, ErrSingular)
	}

	return wrap(r), nil
}

// Inverse returns m⁻¹ via Gauss-Jordan elimination on [m | I].
//
// Errors:
//   - *ShapeError wrapping ErrNotSquare if m is rectangular.
//   - ErrNilMatrix if m is nil.
//   - ErrSingular if the left half does not reduce exactly to I.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func (m *DMat) Inverse() (*DMat, error) {
	if err := checkOperands(opInverse, m); err != nil {
		return nil, err
	}
	if err := dense.CheckSquare(opInverse, m.buf); err != nil {
		return nil, err
	}
	inv, ok := dense.Inverse(m.buf)
	if !ok {
		return nil, dmatErrorf(opInverse, ErrSingular)
	}

	return wrap(inv), nil
}

// The predicates answer false for a nil m.

// IsSquare reports rows == cols.
func (m *DMat) IsSquare() bool { return m != nil && dense.IsSquare(m.buf) }

// IsDiagonal reports whether every off-diagonal entry is exactly 0; false if not square.
func (m *DMat) IsDiagonal() bool { return m != nil && dense.IsDiagonal(m.buf) }

// IsSymmetric reports m == mᵀ; false if not square.
func (m *DMat) IsSymmetric() bool { return m != nil && dense.IsSymmetric(m.buf) }

// IsOrthogonal reports m·mᵀ == I exactly; false if not square.
func (m *DMat) IsOrthogonal() bool { return m != nil && dense.IsOrthogonal(m.buf) }

// IsScalarIdentityMultiple reports m == m[0][0]·I; false if not square.
func (m *DMat) IsScalarIdentityMultiple() bool {
	return m != nil && dense.IsScalarIdentityMultiple(m.buf)
}
