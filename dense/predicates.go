// SPDX-License-Identifier: MIT

package dense

// IsSquare reports rows == cols.
func IsSquare(a Buffer) bool { return a.rows == a.cols }

// IsDiagonal reports whether every off-diagonal entry is exactly 0.
// Non-square buffers are never diagonal.
func IsDiagonal(a Buffer) bool {
	if !IsSquare(a) {
		return false
	}
	n := a.rows
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && a.data[i*n+j] != 0 {
				return false
			}
		}
	}

	return true
}

// IsSymmetric reports a == aᵀ.
func IsSymmetric(a Buffer) bool {
	if !IsSquare(a) {
		return false
	}

	return Equal(a, Transpose(a))
}

// IsOrthogonal reports a·aᵀ == I with exact comparison.
func IsOrthogonal(a Buffer) bool {
	if !IsSquare(a) {
		return false
	}

	return Equal(Mul(a, Transpose(a)), Identity(a.rows))
}

// IsScalarIdentityMultiple reports a == I·a[0][0].
// The 0×0 buffer has no (0,0) entry and counts as the empty identity.
func IsScalarIdentityMultiple(a Buffer) bool {
	if !IsSquare(a) {
		return false
	}
	if a.rows == 0 {
		return true
	}

	return Equal(a, Scale(Identity(a.rows), a.data[0]))
}
