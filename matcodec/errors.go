// SPDX-License-Identifier: MIT

package matcodec

import (
	"errors"

	"github.com/katalvlaran/densemat/dense"
	"github.com/katalvlaran/densemat/dmat"
)

var (
	// ErrMalformed wraps any failure of the underlying decoder: truncated
	// input, wrong types, or unknown fields.
	ErrMalformed = errors.New("matcodec: malformed payload")

	// ErrNonFinite reports a NaN or ±Inf element given to the JSON encoder.
	ErrNonFinite = errors.New("matcodec: non-finite value cannot be encoded as JSON")

	// ErrInvalidDimensions: the decoded header is empty, negative or over the limit.
	ErrInvalidDimensions = dense.ErrInvalidDimensions

	// ErrShapeMismatch: the payload length disagrees with its header, or a
	// fixed-shape decode read a header other than R×C.
	ErrShapeMismatch = dense.ErrShapeMismatch

	// ErrNilMatrix is returned by EncodeDynamic for a nil *DMat.
	ErrNilMatrix = dmat.ErrNilMatrix
)
