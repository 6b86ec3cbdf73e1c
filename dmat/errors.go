// SPDX-License-Identifier: MIT

package dmat

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/densemat/dense"
)

// Sentinels shared with package dense; match them with errors.Is.
var (
	// ErrInvalidDimensions: a constructor got rows < 1 or cols < 1.
	ErrInvalidDimensions = dense.ErrInvalidDimensions

	// ErrOutOfRange: At/Set/Row/Col got an index outside the shape.
	ErrOutOfRange = dense.ErrOutOfRange

	// ErrShapeMismatch: operand shapes are incompatible, or a literal is ragged.
	ErrShapeMismatch = dense.ErrShapeMismatch

	// ErrNotSquare: Determinant/RowEchelon/Inverse on a rectangular matrix.
	ErrNotSquare = dense.ErrNotSquare

	// ErrSingular: RowEchelon/Inverse found no usable pivot.
	ErrSingular = dense.ErrSingular

	// ErrNilMatrix indicates that a nil *DMat (receiver or argument) was used.
	ErrNilMatrix = errors.New("dmat: nil matrix")
)

// ShapeError is dense.ShapeError; errors.As(err, &se) with se *dmat.ShapeError works.
type ShapeError = dense.ShapeError

// Operation tags for error wrapping.
const (
	opZero        = "Zero"
	opGenerate    = "Generate"
	opFromRows    = "FromRows"
	opFromData    = "FromData"
	opIdentity    = "Identity"
	opAt          = "At"
	opSet         = "Set"
	opRow         = "Row"
	opCol         = "Col"
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opAddInPlace  = "AddInPlace"
	opSubInPlace  = "SubInPlace"
	opMulInPlace  = "MulInPlace"
	opDeterminant = "Determinant"
	opRowEchelon  = "RowEchelon"
	opInverse     = "Inverse"
)

// dmatErrorf wraps err with a "DMat.<op>" tag, preserving the sentinel via %w.
func dmatErrorf(op string, err error) error {
	return fmt.Errorf("DMat.%s: %w", op, err)
}

// checkDims enforces the public rows, cols >= 1 contract.
func checkDims(op string, rows, cols int) error {
	if rows < 1 || cols < 1 {
		return dmatErrorf(op, fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions))
	}

	return nil
}

// checkOperands rejects nil receivers and arguments before any shape check.
func checkOperands(op string, ms ...*DMat) error {
	for _, m := range ms {
		if m == nil {
			return dmatErrorf(op, ErrNilMatrix)
		}
	}

	return nil
}
