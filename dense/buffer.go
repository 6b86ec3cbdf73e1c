// SPDX-License-Identifier: MIT

// Package dense - Buffer storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a contiguous row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee exclusive ownership: constructors copy their input and accessors
//     hand out copies, so no slice ever aliases the internal data.
//   - Keep algorithmic determinism (fixed row-major loop orders).
//
// Complexity quicksheet:
//   - New/Generate/FromRows/FromData: O(r*c); At/Set: O(1); Row/Col: O(c)/O(r); Clone/Data: O(r*c).

package dense

import (
	"fmt"
	"iter"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew      = "New"
	ctxGenerate = "Generate"
	ctxFromRows = "FromRows"
	ctxFromData = "FromData"
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxRow      = "Row"
	ctxCol      = "Col"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Buffer is a rows×cols matrix of float64 stored in one row-major slice.
// The zero value is a valid 0×0 buffer.
type Buffer struct {
	rows, cols int       // shape (>= 0)
	data       []float64 // contiguous row-major storage (len == rows*cols)
}

// bufferErrorf wraps an error with a uniform Buffer context and callsite indices.
func bufferErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Buffer.%s(%d,%d): %w", method, row, col, err)
}

// New returns a rows×cols buffer filled with zeros.
// Zero-sized shapes are legal at this level; negative ones are not.
//
// Errors:
//   - ErrInvalidDimensions when rows < 0 or cols < 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows, cols int) (Buffer, error) {
	if rows < 0 || cols < 0 {
		return Buffer{}, opErrorf(ctxNew, ErrInvalidDimensions)
	}

	return Buffer{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// Generate builds a rows×cols buffer whose element (r,c) is f(r,c).
// MAIN DESCRIPTION:
//   - f is evaluated exactly once per cell, in row-major order.
//
// Implementation:
//   - Stage 1: validate shape via New.
//   - Stage 2: single flat walk 0..r*c-1, deriving (r,c) from the running offset.
//
// Notes:
//   - f must be pure; the order is fixed but callers must not rely on it.
//
// Complexity:
//   - Time O(r*c) calls of f, Space O(r*c).
func Generate(rows, cols int, f func(r, c int) float64) (Buffer, error) {
	b, err := New(rows, cols)
	if err != nil {
		return Buffer{}, opErrorf(ctxGenerate, err)
	}
	var i, j, off int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			b.data[off] = f(i, j)
			off++
		}
	}

	return b, nil
}

// FromRows converts a literal 2D list into a Buffer.
// Every row must have the same length; a ragged input is a shape error.
// An empty outer slice yields a 0×0 buffer.
//
// Errors:
//   - ErrShapeMismatch (wrapped with the offending row index).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows[T Number](rows [][]T) (Buffer, error) {
	if len(rows) == 0 {
		return Buffer{}, nil
	}
	cols := len(rows[0])
	for i, row := range rows {
		if len(row) != cols {
			return Buffer{}, fmt.Errorf("%s: row %d has %d values, want %d: %w",
				ctxFromRows, i, len(row), cols, ErrShapeMismatch)
		}
	}

	data := make([]float64, 0, len(rows)*cols)
	for _, row := range rows {
		for _, v := range row {
			data = append(data, float64(v))
		}
	}

	return Buffer{rows: len(rows), cols: cols, data: data}, nil
}

// FromData copies a row-major slice into a new rows×cols Buffer.
//
// Errors:
//   - ErrInvalidDimensions for negative sizes.
//   - ErrShapeMismatch when len(data) != rows*cols.
func FromData(rows, cols int, data []float64) (Buffer, error) {
	b, err := New(rows, cols)
	if err != nil {
		return Buffer{}, opErrorf(ctxFromData, err)
	}
	if len(data) != rows*cols {
		return Buffer{}, fmt.Errorf("%s: %d values for %dx%d: %w",
			ctxFromData, len(data), rows, cols, ErrShapeMismatch)
	}
	copy(b.data, data)

	return b, nil
}

// Identity returns I_n. Negative n is a programmer error and panics.
func Identity(n int) Buffer {
	b := mustNew(n, n)
	for i := 0; i < n; i++ {
		b.data[i*n+i] = 1
	}

	return b
}

// mustNew is New for kernel-internal shapes that are valid by construction.
func mustNew(rows, cols int) Buffer {
	b, err := New(rows, cols)
	if err != nil {
		panic(err)
	}

	return b
}

// Rows returns the row count.
func (b Buffer) Rows() int { return b.rows }

// Cols returns the column count.
func (b Buffer) Cols() int { return b.cols }

// Shape packs Rows() and Cols() into a single call.
func (b Buffer) Shape() (rows, cols int) { return b.rows, b.cols }

// Len returns rows*cols.
func (b Buffer) Len() int { return len(b.data) }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (b Buffer) indexOf(row, col int) (int, error) {
	if row < 0 || row >= b.rows {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= b.cols {
		return 0, ErrOutOfRange
	}

	return row*b.cols + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (b Buffer) At(row, col int) (float64, error) {
	off, err := b.indexOf(row, col)
	if err != nil {
		return 0, bufferErrorf(ctxAt, row, col, err)
	}

	return b.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Any float64 is accepted, including NaN and ±Inf.
func (b Buffer) Set(row, col int, v float64) error {
	off, err := b.indexOf(row, col)
	if err != nil {
		return bufferErrorf(ctxSet, row, col, err)
	}
	b.data[off] = v

	return nil
}

// Row returns a copy of row i.
func (b Buffer) Row(i int) ([]float64, error) {
	if i < 0 || i >= b.rows {
		return nil, bufferErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, b.cols)
	copy(out, b.data[i*b.cols:(i+1)*b.cols])

	return out, nil
}

// Col returns a copy of column j.
func (b Buffer) Col(j int) ([]float64, error) {
	if j < 0 || j >= b.cols {
		return nil, bufferErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]float64, b.rows)
	for i := 0; i < b.rows; i++ {
		out[i] = b.data[i*b.cols+j]
	}

	return out, nil
}

// Data returns a row-major copy of all elements.
func (b Buffer) Data() []float64 {
	out := make([]float64, len(b.data))
	copy(out, b.data)

	return out
}

// All yields (i, row_i) in row order. Each row is a fresh copy, so the
// consumer may keep or modify it freely.
func (b Buffer) All() iter.Seq2[int, []float64] {
	return func(yield func(int, []float64) bool) {
		for i := 0; i < b.rows; i++ {
			row := make([]float64, b.cols)
			copy(row, b.data[i*b.cols:(i+1)*b.cols])
			if !yield(i, row) {
				return
			}
		}
	}
}

// Clone returns a deep copy.
func (b Buffer) Clone() Buffer {
	return Buffer{rows: b.rows, cols: b.cols, data: b.Data()}
}

// Equal reports whether a and b have the same shape and every element pair
// compares equal with ==. NaN is never equal to itself; 0 == -0.
func Equal(a, b Buffer) bool {
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// String renders one bracketed, comma-separated line per row, for diagnostics.
func (b Buffer) String() string {
	var sb strings.Builder
	var i, j, base int
	for i = 0; i < b.rows; i++ {
		sb.WriteString(_fmtRowOpen)
		base = i * b.cols
		for j = 0; j < b.cols; j++ {
			sb.WriteString(fmt.Sprintf("%g", b.data[base+j]))
			if j+1 < b.cols {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// swapRows exchanges rows r1 and r2 in place.
func (b Buffer) swapRows(r1, r2 int) {
	if r1 == r2 {
		return
	}
	o1, o2 := r1*b.cols, r2*b.cols
	for j := 0; j < b.cols; j++ {
		b.data[o1+j], b.data[o2+j] = b.data[o2+j], b.data[o1+j]
	}
}
