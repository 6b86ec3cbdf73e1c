// SPDX-License-Identifier: MIT
// Package dense provides the generic arithmetic kernels shared by both
// matrix kinds: transpose, elementwise add/sub, scalar scale/div, map and
// matrix multiplication, plus in-place variants.
//
// Purpose:
//   - Keep every loop order fixed (row-major) so results are reproducible bit for bit.
//   - Never mutate operands in the non-InPlace forms; results are fresh Buffers.
//
// Notes:
//   - Kernels panic on shape violations: validate with Check* first.
//   - Scalar division by zero follows IEEE-754 (±Inf or NaN), never a failure.

package dense

// Operation name constants for unified error wrapping.
const (
	opAdd = "Add"
	opSub = "Sub"
	opMul = "Mul"
)

// Transpose returns a new cols×rows buffer with result[c][r] = a[r][c].
// Transpose is an involution: Transpose(Transpose(a)) equals a.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(a Buffer) Buffer {
	out := mustNew(a.cols, a.rows)
	var i, j int
	for i = 0; i < a.rows; i++ {
		for j = 0; j < a.cols; j++ {
			out.data[j*a.rows+i] = a.data[i*a.cols+j]
		}
	}

	return out
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share the precondition and the flat loop.
// Negation is exact, so a + (-1*b) is bitwise identical to a - b.
func addSub(a, b Buffer, sign float64, op string) Buffer {
	must(CheckSameShape(op, a, b))
	out := mustNew(a.rows, a.cols)
	for idx := range a.data { // deterministic 0..n-1
		out.data[idx] = a.data[idx] + float64(sign*b.data[idx])
	}

	return out
}

// Add returns a + b. Shapes must match.
func Add(a, b Buffer) Buffer { return addSub(a, b, +1, opAdd) }

// Sub returns a - b. Shapes must match.
func Sub(a, b Buffer) Buffer { return addSub(a, b, -1, opSub) }

// AddInPlace performs dst += b elementwise. Shapes must match.
func AddInPlace(dst, b Buffer) {
	must(CheckSameShape(opAdd, dst, b))
	for idx := range dst.data {
		dst.data[idx] += b.data[idx]
	}
}

// SubInPlace performs dst -= b elementwise. Shapes must match.
func SubInPlace(dst, b Buffer) {
	must(CheckSameShape(opSub, dst, b))
	for idx := range dst.data {
		dst.data[idx] -= b.data[idx]
	}
}

// Copy overwrites dst with the elements of src. Shapes must match.
func Copy(dst, src Buffer) {
	must(CheckSameShape("Copy", dst, src))
	copy(dst.data, src.data)
}

// Scale returns s*a.
func Scale(a Buffer, s float64) Buffer {
	out := a.Clone()
	ScaleInPlace(out, s)

	return out
}

// ScaleInPlace multiplies every element of dst by s.
func ScaleInPlace(dst Buffer, s float64) {
	for idx := range dst.data {
		dst.data[idx] *= s
	}
}

// Div returns a/s. A zero divisor yields ±Inf or NaN per IEEE-754.
func Div(a Buffer, s float64) Buffer {
	out := a.Clone()
	DivInPlace(out, s)

	return out
}

// DivInPlace divides every element of dst by s.
func DivInPlace(dst Buffer, s float64) {
	for idx := range dst.data {
		dst.data[idx] /= s
	}
}

// Neg returns -a, computed as a * -1.
func Neg(a Buffer) Buffer { return Scale(a, -1) }

// Map returns a new buffer with f applied to every element of a.
func Map(a Buffer, f func(v float64) float64) Buffer {
	out := mustNew(a.rows, a.cols)
	for idx, v := range a.data {
		out.data[idx] = f(v)
	}

	return out
}

// Apply replaces each element of dst with f(v, r, c) in row-major order.
func Apply(dst Buffer, f func(v float64, r, c int) float64) {
	var i, j, base int
	for i = 0; i < dst.rows; i++ {
		base = i * dst.cols
		for j = 0; j < dst.cols; j++ {
			dst.data[base+j] = f(dst.data[base+j], i, j)
		}
	}
}

// Mul performs standard matrix multiplication C = A × B.
// MAIN DESCRIPTION:
//   - Cell (i,j) is the dot product of row i of a and column j of b.
//
// Implementation:
//   - Stage 1: precondition a.Cols == b.Rows.
//   - Stage 2: i→j→k loops; each dot product starts at 0 and accumulates
//     a[i,k]*b[k,j] for k = 0..K-1 strictly left to right.
//
// Behavior highlights:
//   - No zero skipping and no reordering: 0*Inf still contributes NaN, and the
//     floating-point summation order is exactly the textbook one.
//
// Complexity:
//   - Time O(r*k*c), Space O(r*c).
func Mul(a, b Buffer) Buffer {
	must(CheckMulShape(opMul, a, b))
	rows, inner, cols := a.rows, a.cols, b.cols
	out := mustNew(rows, cols)

	var (
		i, j, k    int
		rowOffsetA int
		acc        float64
	)
	for i = 0; i < rows; i++ {
		rowOffsetA = i * inner
		for j = 0; j < cols; j++ {
			acc = 0
			for k = 0; k < inner; k++ {
				acc += float64(a.data[rowOffsetA+k] * b.data[k*cols+j]) // no FMA
			}
			out.data[i*cols+j] = acc
		}
	}

	return out
}
