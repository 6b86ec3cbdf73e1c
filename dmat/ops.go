// SPDX-License-Identifier: MIT
// Package dmat: arithmetic with run-time shape validation.
//
// Purpose:
//   - Validate shapes through dense.Check* before handing buffers to the kernels.
//   - Keep receivers untouched on every error path, including the in-place forms.
//
// Determinism:
//   - All loops run in the kernel's fixed row-major order.

package dmat

import "github.com/katalvlaran/densemat/dense"

// Transpose returns the cols×rows matrix with result[c][r] = m[r][c].
// Like the other value-returning unary operations, it maps nil to nil.
func (m *DMat) Transpose() *DMat {
	if m == nil {
		return nil
	}

	return wrap(dense.Transpose(m.buf))
}

// Add returns m + o.
//
// Errors:
//   - ErrNilMatrix if m or o is nil.
//   - *ShapeError wrapping ErrShapeMismatch if the shapes differ.
func (m *DMat) Add(o *DMat) (*DMat, error) {
	if err := checkOperands(opAdd, m, o); err != nil {
		return nil, err
	}
	if err := dense.CheckSameShape(opAdd, m.buf, o.buf); err != nil {
		return nil, err
	}

	return wrap(dense.Add(m.buf, o.buf)), nil
}

// Sub returns m - o. Errors as for Add.
func (m *DMat) Sub(o *DMat) (*DMat, error) {
	if err := checkOperands(opSub, m, o); err != nil {
		return nil, err
	}
	if err := dense.CheckSameShape(opSub, m.buf, o.buf); err != nil {
		return nil, err
	}

	return wrap(dense.Sub(m.buf, o.buf)), nil
}

// Mul returns the matrix product m × o.
// MAIN DESCRIPTION:
//   - Classic triple loop: result[i][j] = Σ_k m[i][k]*o[k][j], summed for k = 0..K-1.
//
// Implementation:
//   - Stage 1: reject a nil receiver or operand.
//   - Stage 2: require m.Cols() == o.Rows().
//   - Stage 3: delegate to dense.Mul (no zero skipping, fixed summation order).
//
// Errors:
//   - ErrNilMatrix if m or o is nil.
//   - *ShapeError wrapping ErrShapeMismatch if the inner dimensions differ.
//
// Complexity:
//   - Time O(r*k*c), Space O(r*c).
func (m *DMat) Mul(o *DMat) (*DMat, error) {
	if err := checkOperands(opMul, m, o); err != nil {
		return nil, err
	}
	if err := dense.CheckMulShape(opMul, m.buf, o.buf); err != nil {
		return nil, err
	}

	return wrap(dense.Mul(m.buf, o.buf)), nil
}

// Scale returns s*m.
func (m *DMat) Scale(s float64) *DMat {
	if m == nil {
		return nil
	}

	return wrap(dense.Scale(m.buf, s))
}

// Div returns m/s. Division by zero follows IEEE-754.
func (m *DMat) Div(s float64) *DMat {
	if m == nil {
		return nil
	}

	return wrap(dense.Div(m.buf, s))
}

// Neg returns -m.
func (m *DMat) Neg() *DMat {
	if m == nil {
		return nil
	}

	return wrap(dense.Neg(m.buf))
}

// Map returns a new matrix with f applied to every element.
func (m *DMat) Map(f func(v float64) float64) *DMat {
	if m == nil {
		return nil
	}

	return wrap(dense.Map(m.buf, f))
}

// AddInPlace performs m += o. On error m is unchanged.
func (m *DMat) AddInPlace(o *DMat) error {
	if err := checkOperands(opAddInPlace, m, o); err != nil {
		return err
	}
	if err := dense.CheckSameShape(opAddInPlace, m.buf, o.buf); err != nil {
		return err
	}
	dense.AddInPlace(m.buf, o.buf)

	return nil
}

// SubInPlace performs m -= o. On error m is unchanged.
func (m *DMat) SubInPlace(o *DMat) error {
	if err := checkOperands(opSubInPlace, m, o); err != nil {
		return err
	}
	if err := dense.CheckSameShape(opSubInPlace, m.buf, o.buf); err != nil {
		return err
	}
	dense.SubInPlace(m.buf, o.buf)

	return nil
}

// MulInPlace performs m = m × o, keeping m's shape. o must be square with
// o.Rows() == m.Cols(); otherwise a *ShapeError is returned and m is unchanged.
func (m *DMat) MulInPlace(o *DMat) error {
	if err := checkOperands(opMulInPlace, m, o); err != nil {
		return err
	}
	if err := dense.CheckMulShape(opMulInPlace, m.buf, o.buf); err != nil {
		return err
	}
	if !dense.IsSquare(o.buf) {
		return &ShapeError{
			Op: opMulInPlace, LeftRows: m.Rows(), LeftCols: m.Cols(),
			RightRows: o.Rows(), RightCols: o.Cols(), Err: ErrShapeMismatch,
		}
	}
	dense.Copy(m.buf, dense.Mul(m.buf, o.buf))

	return nil
}

// ScaleInPlace performs m *= s. A nil m is left alone.
func (m *DMat) ScaleInPlace(s float64) {
	if m != nil {
		dense.ScaleInPlace(m.buf, s)
	}
}

// DivInPlace performs m /= s. A nil m is left alone.
func (m *DMat) DivInPlace(s float64) {
	if m != nil {
		dense.DivInPlace(m.buf, s)
	}
}

// Apply replaces every element with f(v, r, c), visiting cells in row-major
// order. f is never called for a nil m.
func (m *DMat) Apply(f func(v float64, r, c int) float64) {
	if m != nil {
		dense.Apply(m.buf, f)
	}
}
