// SPDX-License-Identifier: MIT
// Package dense: sentinel error set and the typed shape failure.
// Kernels return these sentinels (optionally wrapped with an operation tag);
// callers match them via errors.Is / errors.As.

package dense

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "dense: ..." so matches are easy to grep in
// logs. dmat and fmat re-export the same values, so errors.Is works no matter
// which package the caller imported.

var (
	// ErrInvalidDimensions indicates that requested dimensions are out of range
	// (negative in the kernel; non-positive at the dmat surface).
	ErrInvalidDimensions = errors.New("dense: invalid dimensions")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("dense: index out of range")

	// ErrShapeMismatch indicates incompatible operand shapes: Add/Sub with
	// different shapes, Mul with a.Cols != b.Rows, ragged literal rows, or a
	// decoded payload whose length disagrees with its header.
	ErrShapeMismatch = errors.New("dense: shape mismatch")

	// ErrNotSquare signals that a square matrix was required but the input wasn't.
	ErrNotSquare = errors.New("dense: matrix is not square")

	// ErrSingular reports a matrix with no usable pivot in some column.
	// It is an expected outcome, not a fault: determinant answers 0 instead.
	ErrSingular = errors.New("dense: singular matrix")
)

// ShapeError is the typed failure for shape violations. It records the
// operation and both operand shapes and unwraps to ErrShapeMismatch (or
// ErrNotSquare for the single-operand square check).
type ShapeError struct {
	Op                   string // operation tag, e.g. "Add", "Mul"
	LeftRows, LeftCols   int    // shape of the left (or only) operand
	RightRows, RightCols int    // shape of the right operand; zero for unary checks
	Err                  error  // ErrShapeMismatch or ErrNotSquare
}

// Error implements error.
func (e *ShapeError) Error() string {
	if e.Err == ErrNotSquare {
		return fmt.Sprintf("%s: %dx%d: %v", e.Op, e.LeftRows, e.LeftCols, e.Err)
	}

	return fmt.Sprintf("%s: %dx%d vs %dx%d: %v",
		e.Op, e.LeftRows, e.LeftCols, e.RightRows, e.RightCols, e.Err)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ShapeError) Unwrap() error { return e.Err }

// opErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
