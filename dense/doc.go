// SPDX-License-Identifier: MIT

// Package dense is the shared numerical core behind the fixed-shape (fmat)
// and dynamic-shape (dmat) matrix kinds.
//
// The package provides:
//
//   - Buffer: a contiguous row-major float64 store (offset = i*cols + j) that
//     exclusively owns its data. Every constructor and accessor copies.
//   - Generic arithmetic kernels: Transpose, Add, Sub, Scale, Div, Neg, Map,
//     Mul and their in-place forms.
//   - The square elimination kernel: Determinant (partial pivoting),
//     RowEchelon (the same sweep, returning the reduced matrix) and Inverse
//     (Gauss-Jordan on an augmented [A | I] system).
//   - Structural predicates: IsDiagonal, IsSymmetric, IsOrthogonal,
//     IsScalarIdentityMultiple.
//
// Kernels assume validated shapes. Callers that take shapes from user input
// run CheckSameShape / CheckMulShape / CheckSquare first and surface the
// returned *ShapeError; a kernel reached with a violated precondition panics,
// since that is a bug in the caller rather than bad input.
//
// All comparisons are exact (IEEE ==). There is no epsilon anywhere in this
// package.
package dense
