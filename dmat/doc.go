// SPDX-License-Identifier: MIT

// Package dmat provides dense matrices whose shape is known only at run time.
//
// A *DMat records its row and column counts as fields. Every binary
// operation compares them on entry and reports a violation as an error
// instead of panicking:
//
//	a, _ := dmat.FromRows([][]int{{1, 2, 3}})
//	b, _ := dmat.Identity(2)
//	_, err := a.Add(b)
//	errors.Is(err, dmat.ErrShapeMismatch) // true
//
//	var se *dmat.ShapeError
//	errors.As(err, &se) // se.Op == "Add", 1x3 vs 2x2
//
// Square-only operations (Determinant, RowEchelon, Inverse) return
// ErrNotSquare for rectangular input. RowEchelon and Inverse report an
// unusable pivot as ErrSingular; Determinant answers 0 instead. The
// structural predicates never fail and answer false for non-square input.
//
// Public constructors reject empty shapes: rows and cols must both be at
// least 1 (ErrInvalidDimensions). Every constructor copies its input and
// every accessor returns a copy, so a DMat never aliases caller memory.
//
// Indexing methods return ErrOutOfRange rather than panicking, since the
// indices often come from data rather than from code.
package dmat
