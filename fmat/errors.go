// SPDX-License-Identifier: MIT

package fmat

import "github.com/katalvlaran/densemat/dense"

// Re-exported sentinels; they are the same values as in package dense, so
// errors.Is matches regardless of which package the caller names.
var (
	// ErrShapeMismatch: a literal or payload does not have R rows of C values.
	ErrShapeMismatch = dense.ErrShapeMismatch

	// ErrOutOfRange is the panic value wrapped by At/Set/Row/Col on bad indices.
	ErrOutOfRange = dense.ErrOutOfRange
)
