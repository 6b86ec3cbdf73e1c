// SPDX-License-Identifier: MIT

// Package gonumconv converts between this module's matrices and
// gonum.org/v1/gonum/mat, so callers can hand a matrix to gonum's
// decompositions and bring the result back.
//
// Every conversion copies; neither side ever aliases the other's storage.
package gonumconv

import (
	"fmt"

	"github.com/katalvlaran/densemat/dense"
	"github.com/katalvlaran/densemat/dmat"
	"github.com/katalvlaran/densemat/fmat"
	"gonum.org/v1/gonum/mat"
)

// ErrNilMatrix is returned when the source matrix is nil.
var ErrNilMatrix = dmat.ErrNilMatrix

// ToDense copies m into a new *mat.Dense. A nil m yields nil.
func ToDense(m *dmat.DMat) *mat.Dense {
	if m == nil {
		return nil
	}
	r, c := m.Shape()

	return mat.NewDense(r, c, m.Data())
}

// FixedToDense copies m into a new *mat.Dense. gonum has no constructor for
// empty shapes, so a zero-size Mat yields the empty mat.Dense.
func FixedToDense[R, C fmat.Dim](m fmat.Mat[R, C]) *mat.Dense {
	if m.Rows() == 0 || m.Cols() == 0 {
		return &mat.Dense{}
	}

	return mat.NewDense(m.Rows(), m.Cols(), m.Data())
}

// FromMatrix copies any gonum matrix into a new *dmat.DMat.
//
// Errors:
//   - ErrNilMatrix for a nil src.
//   - ErrInvalidDimensions (from dmat) for an empty src.
func FromMatrix(src mat.Matrix) (*dmat.DMat, error) {
	if isNil(src) {
		return nil, fmt.Errorf("FromMatrix: %w", ErrNilMatrix)
	}
	r, c := src.Dims()

	return dmat.FromData(r, c, flatten(src, r, c))
}

// FixedFromMatrix copies a gonum matrix whose dimensions must be exactly R×C.
//
// Errors:
//   - ErrNilMatrix for a nil src.
//   - *dense.ShapeError wrapping ErrShapeMismatch for any other shape.
func FixedFromMatrix[R, C fmat.Dim](src mat.Matrix) (fmat.Mat[R, C], error) {
	var zero fmat.Mat[R, C]
	if isNil(src) {
		return zero, fmt.Errorf("FixedFromMatrix: %w", ErrNilMatrix)
	}
	r, c := src.Dims()
	if r != zero.Rows() || c != zero.Cols() {
		return zero, &dense.ShapeError{
			Op: "FixedFromMatrix", LeftRows: zero.Rows(), LeftCols: zero.Cols(),
			RightRows: r, RightCols: c, Err: dense.ErrShapeMismatch,
		}
	}

	return fmat.FromData[R, C](flatten(src, r, c))
}

// isNil also catches a typed nil *mat.Dense, whose Dims would panic.
func isNil(src mat.Matrix) bool {
	if src == nil {
		return true
	}
	d, ok := src.(*mat.Dense)

	return ok && d == nil
}

// flatten copies src into a row-major slice. Dense sources are copied row by
// row from their raw storage, honoring the stride of sliced views; anything
// else goes through At.
func flatten(src mat.Matrix, r, c int) []float64 {
	out := make([]float64, r*c)
	if r == 0 || c == 0 {
		return out
	}
	if rm, ok := src.(mat.RawMatrixer); ok {
		raw := rm.RawMatrix()
		for i := 0; i < r; i++ {
			copy(out[i*c:(i+1)*c], raw.Data[i*raw.Stride:i*raw.Stride+c])
		}

		return out
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out[i*c+j] = src.At(i, j)
		}
	}

	return out
}
