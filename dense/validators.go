// SPDX-License-Identifier: MIT
// Package: dense
//
// Purpose:
//  - Provide a single, canonical source of truth for shape checks.
//  - Keep kernels minimal: they assume shapes were checked here first.
//  - Return *ShapeError so callers get both errors.Is and the offending shapes.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate only on failure.

package dense

// CheckSameShape ensures a and b have equal dimensions (Add, Sub).
func CheckSameShape(op string, a, b Buffer) error {
	if a.rows != b.rows || a.cols != b.cols {
		return &ShapeError{
			Op: op, LeftRows: a.rows, LeftCols: a.cols,
			RightRows: b.rows, RightCols: b.cols, Err: ErrShapeMismatch,
		}
	}

	return nil
}

// CheckMulShape ensures the inner dimensions agree (a.Cols == b.Rows).
func CheckMulShape(op string, a, b Buffer) error {
	if a.cols != b.rows {
		return &ShapeError{
			Op: op, LeftRows: a.rows, LeftCols: a.cols,
			RightRows: b.rows, RightCols: b.cols, Err: ErrShapeMismatch,
		}
	}

	return nil
}

// CheckSquare ensures rows == cols.
func CheckSquare(op string, a Buffer) error {
	if a.rows != a.cols {
		return &ShapeError{Op: op, LeftRows: a.rows, LeftCols: a.cols, Err: ErrNotSquare}
	}

	return nil
}

// must panics with err when a kernel precondition does not hold.
// Reaching it means a caller skipped the Check* step.
func must(err error) {
	if err != nil {
		panic(err)
	}
}
