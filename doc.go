// SPDX-License-Identifier: MIT

// Package densemat is a small dense linear-algebra library over float64 with
// two matrix kinds that share one storage and elimination core.
//
// What is in the box:
//
//	fmat/       Mat[R, C]: the shape is part of the type; mismatched operands do not compile
//	dmat/       *DMat: the shape is a run-time value; mismatches come back as *ShapeError
//	dense/      the shared row-major Buffer, arithmetic kernels, determinant,
//	            row-echelon form, Gauss-Jordan inverse and structural predicates
//	matcodec/   MessagePack / CBOR / JSON serialization for both kinds
//	gonumconv/  conversion to and from gonum's mat.Dense
//
// Quick example:
//
//	a := fmat.MustFromRows[fmat.D2, fmat.D2]([][]int{{1, 2}, {3, 4}})
//	inv, ok := fmat.Inverse(a)          // [[-2, 1], [1.5, -0.5]], true
//	fmt.Println(fmat.Mul(a, inv))       // identity
//
//	d, _ := dmat.FromRows([][]int{{1, 2, 3}})
//	_, err := d.Mul(d)                  // errors.Is(err, dmat.ErrShapeMismatch)
//
// Numeric policy: elements are IEEE-754 float64; equality is exact ==, so
// NaN never equals itself and 0 equals -0. Loop orders are fixed, so every
// result is reproducible bit for bit on every platform.
package densemat
