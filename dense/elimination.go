// SPDX-License-Identifier: MIT
// Package dense - square elimination kernel.
//
// Purpose:
//   - Determinant and RowEchelon share one partial-pivoted Gaussian sweep.
//   - Inverse runs Gauss-Jordan on an N×2N augmented [A | I] working copy.
//
// Notes:
//   - The two pivoting strategies are different: the Gaussian
//     sweep picks the first maximal |x| in rows k..N-1, while Gauss-Jordan
//     takes the first nonzero entry found by a forward scan. On matrices with
//     repeated magnitudes they can choose different pivot rows.
//   - Working copies are created at entry and never escape unless returned.
//   - Products are wrapped in float64(...) so the compiler never fuses them
//     into FMA instructions; results are identical on every GOARCH.

package dense

import (
	"math"

	log "github.com/sirupsen/logrus"
)

const (
	opDeterminant = "Determinant"
	opRowEchelon  = "RowEchelon"
	opInverse     = "Inverse"
)

// zeroPivot is the sentinel for an unusable pivot. Comparison is exact.
const zeroPivot = 0.0

// pivotRow returns the row index in [k, n) holding the largest |r[i][k]|.
// Ties keep the lowest index (strict > comparison).
func pivotRow(r Buffer, k int) int {
	n := r.cols
	best := k
	bestAbs := math.Abs(r.data[k*n+k])
	for i := k + 1; i < r.rows; i++ {
		if v := math.Abs(r.data[i*n+k]); v > bestAbs {
			best, bestAbs = i, v
		}
	}

	return best
}

// forwardEliminate runs the partial-pivoted Gaussian sweep on r in place.
// MAIN DESCRIPTION:
//   - For each column k: choose the pivot row, swap it into place, then zero
//     every entry below the pivot.
//
// Implementation:
//   - Stage 1: p = pivotRow(r, k); a zero pivot stops the sweep (singular).
//   - Stage 2: if p != k, swap rows and flip the sign accumulator.
//   - Stage 3: for i > k, c = -r[i][k]/r[k][k]; r[i][j] += r[k][j]*c for
//     j in k+1..N-1; r[i][k] = 0 exactly.
//
// Returns:
//   - sign: +1 or -1 (each swap multiplies the determinant by -1).
//   - ok  : false when some column had no nonzero pivot candidate.
//
// Complexity:
//   - Time O(n^3), Space O(1) beyond r.
func forwardEliminate(op string, r Buffer) (sign float64, ok bool) {
	n := r.rows
	sign = 1

	var (
		i, j, k, p int
		pivot, c   float64
	)
	for k = 0; k < n; k++ {
		p = pivotRow(r, k)
		if r.data[p*n+k] == zeroPivot {
			tracef(op, log.Fields{"col": k}, "no nonzero pivot, matrix is singular")
			return sign, false
		}
		if p != k {
			r.swapRows(k, p)
			sign = -sign
			tracef(op, log.Fields{"col": k, "pivot": p}, "row swap")
		}

		pivot = r.data[k*n+k]
		for i = k + 1; i < n; i++ {
			c = -r.data[i*n+k] / pivot
			for j = k + 1; j < n; j++ {
				r.data[i*n+j] += float64(r.data[k*n+j] * c)
			}
			r.data[i*n+k] = 0 // exact zero below the pivot, no residual noise
		}
	}

	return sign, true
}

// Determinant returns det(a) via partial-pivoted Gaussian elimination.
// A singular matrix yields 0: that is the correct value, not a failure.
//
// Implementation:
//   - Stage 1: clone a into a working copy.
//   - Stage 2: forwardEliminate; return 0 on a zero pivot.
//   - Stage 3: multiply the diagonal left to right and divide by the sign.
//
// Notes:
//   - The 0×0 determinant is the empty product, 1.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Determinant(a Buffer) float64 {
	must(CheckSquare(opDeterminant, a))
	reduced := a.Clone()
	sign, ok := forwardEliminate(opDeterminant, reduced)
	if !ok {
		return 0
	}

	n := reduced.rows
	product := 1.0
	for i := 0; i < n; i++ {
		product *= reduced.data[i*n+i]
	}

	return product / sign
}

// RowEchelon returns the upper-triangular result of the Gaussian sweep used
// by Determinant, or ok=false when the matrix is singular.
//
// This is the library's own reduced form, not textbook RREF: pivots are not
// normalized to 1 and entries above the diagonal are left as produced.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func RowEchelon(a Buffer) (Buffer, bool) {
	must(CheckSquare(opRowEchelon, a))
	reduced := a.Clone()
	if _, ok := forwardEliminate(opRowEchelon, reduced); !ok {
		return Buffer{}, false
	}

	return reduced, true
}

// Inverse returns a⁻¹ by Gauss-Jordan elimination on [A | I], or ok=false
// when a is singular.
// MAIN DESCRIPTION:
//   - Drive the left half of an N×2N working copy to the identity; the right
//     half then holds the inverse.
//
// Implementation:
//   - Stage 1: build aug = [a | I] (row stride 2N).
//   - Stage 2: for each target row, scan rows row..N-1 in column `lead` for a
//     nonzero entry; when a column is exhausted advance `lead`; when all 2N
//     columns are exhausted, stop early.
//   - Stage 3: swap the found row into place (whole augmented row), divide it
//     by the pivot, subtract hold*pivotRow from every other row where hold is
//     that row's entry in the pivot column.
//   - Stage 4: present iff the left half equals I exactly.
//
// Behavior highlights:
//   - Pivot choice is the first nonzero by forward scan, not the largest magnitude.
//
// Complexity:
//   - Time O(n^3), Space O(n^2) for the working copy.
func Inverse(a Buffer) (Buffer, bool) {
	must(CheckSquare(opInverse, a))
	n := a.rows
	width := 2 * n
	aug := mustNew(n, width)
	for i := 0; i < n; i++ {
		copy(aug.data[i*width:i*width+n], a.data[i*n:(i+1)*n])
		aug.data[i*width+n+i] = 1
	}

	var (
		row, i, j, c int
		lead         int
		divisor      float64
		hold         float64
	)
scan:
	for row = 0; row < n; row++ {
		if lead >= width {
			break
		}
		i = row
		for aug.data[i*width+lead] == zeroPivot {
			i++
			if i == n {
				i = row
				lead++
				if lead == width {
					tracef(opInverse, log.Fields{"row": row}, "pivot columns exhausted")
					break scan
				}
			}
		}
		if i != row {
			aug.swapRows(i, row)
			tracef(opInverse, log.Fields{"col": lead, "pivot": i}, "row swap")
		}

		divisor = aug.data[row*width+lead]
		for c = 0; c < width; c++ {
			aug.data[row*width+c] /= divisor
		}

		for j = 0; j < n; j++ {
			if j == row {
				continue
			}
			hold = aug.data[j*width+lead]
			for c = 0; c < width; c++ {
				aug.data[j*width+c] -= float64(hold * aug.data[row*width+c])
			}
		}
		lead++
	}

	// Left half must be exactly I; anything else means a missing pivot.
	inv := mustNew(n, n)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			if aug.data[i*width+j] != want {
				tracef(opInverse, log.Fields{"row": i, "col": j}, "left half is not the identity")
				return Buffer{}, false
			}
		}
		copy(inv.data[i*n:(i+1)*n], aug.data[i*width+n:(i+1)*width])
	}

	return inv, true
}
