// SPDX-License-Identifier: MIT

// Package fmat provides fixed-shape dense matrices whose row and column
// counts are part of the type.
//
// A Mat[R, C] carries its shape in two type parameters implementing Dim, so
// the compiler rejects adding a Mat[D2, D3] to a Mat[D3, D2] and only lets
// Mul combine operands whose inner dimensions agree:
//
//	var a fmat.Mat[fmat.D2, fmat.D3]
//	var b fmat.Mat[fmat.D3, fmat.D4]
//	c := fmat.Mul(a, b) // fmat.Mat[fmat.D2, fmat.D4]
//
// Square-only operations (Determinant, RowEchelon, Inverse, the structural
// predicates) are generic functions over Mat[N, N], so a non-square argument
// does not compile.
//
// The zero value of Mat[R, C] is the R×C zero matrix. A Mat behaves as a
// plain value: after y := x, writing to y through Set, Apply or an *Assign
// method never changes x, because every mutator rebinds the receiver to new
// storage.
package fmat
