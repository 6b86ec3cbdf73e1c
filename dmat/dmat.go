// SPDX-License-Identifier: MIT

package dmat

import (
	"iter"

	"github.com/katalvlaran/densemat/dense"
)

// DMat is a rows×cols dense matrix of float64 with a run-time shape.
// The zero value is not usable; build one with a constructor.
//
// A nil *DMat never panics: error-returning methods report ErrNilMatrix,
// shape queries read 0, predicates answer false and value-returning
// operations return nil.
type DMat struct {
	buf dense.Buffer
}

// wrap adopts a kernel result; the buffer must not be shared with anyone else.
func wrap(b dense.Buffer) *DMat { return &DMat{buf: b} }

// Zero returns a rows×cols matrix of zeros.
//
// Errors:
//   - ErrInvalidDimensions if rows < 1 or cols < 1.
func Zero(rows, cols int) (*DMat, error) {
	if err := checkDims(opZero, rows, cols); err != nil {
		return nil, err
	}
	b, err := dense.New(rows, cols)
	if err != nil {
		return nil, dmatErrorf(opZero, err)
	}

	return wrap(b), nil
}

// Generate returns the matrix whose element (r,c) is f(r,c), calling f once
// per cell in row-major order.
//
// Errors:
//   - ErrInvalidDimensions if rows < 1 or cols < 1.
func Generate(rows, cols int, f func(r, c int) float64) (*DMat, error) {
	if err := checkDims(opGenerate, rows, cols); err != nil {
		return nil, err
	}
	b, err := dense.Generate(rows, cols, f)
	if err != nil {
		return nil, dmatErrorf(opGenerate, err)
	}

	return wrap(b), nil
}

// FromRows builds a matrix from a 2D literal of any numeric element type.
//
//	m, err := dmat.FromRows([][]int{{1, 2}, {3, 4}})
//
// Errors:
//   - ErrShapeMismatch for ragged rows.
//   - ErrInvalidDimensions for an empty literal or empty rows.
func FromRows[T dense.Number](rows [][]T) (*DMat, error) {
	b, err := dense.FromRows(rows)
	if err != nil {
		return nil, dmatErrorf(opFromRows, err)
	}
	if err = checkDims(opFromRows, b.Rows(), b.Cols()); err != nil {
		return nil, err
	}

	return wrap(b), nil
}

// FromData copies a row-major slice of length rows*cols.
//
// Errors:
//   - ErrInvalidDimensions if rows < 1 or cols < 1.
//   - ErrShapeMismatch if len(data) != rows*cols.
func FromData(rows, cols int, data []float64) (*DMat, error) {
	if err := checkDims(opFromData, rows, cols); err != nil {
		return nil, err
	}
	b, err := dense.FromData(rows, cols, data)
	if err != nil {
		return nil, dmatErrorf(opFromData, err)
	}

	return wrap(b), nil
}

// Identity returns I_n.
//
// Errors:
//   - ErrInvalidDimensions if n < 1.
func Identity(n int) (*DMat, error) {
	if err := checkDims(opIdentity, n, n); err != nil {
		return nil, err
	}

	return wrap(dense.Identity(n)), nil
}

// Rows returns the number of rows; 0 for nil.
func (m *DMat) Rows() int {
	if m == nil {
		return 0
	}

	return m.buf.Rows()
}

// Cols returns the number of columns; 0 for nil.
func (m *DMat) Cols() int {
	if m == nil {
		return 0
	}

	return m.buf.Cols()
}

// Shape returns (rows, cols); (0, 0) for nil.
func (m *DMat) Shape() (rows, cols int) {
	if m == nil {
		return 0, 0
	}

	return m.buf.Shape()
}

// At returns element (i, j).
//
// Errors:
//   - ErrNilMatrix if m is nil.
//   - ErrOutOfRange if (i, j) lies outside the shape.
func (m *DMat) At(i, j int) (float64, error) {
	if err := checkOperands(opAt, m); err != nil {
		return 0, err
	}
	v, err := m.buf.At(i, j)
	if err != nil {
		return 0, dmatErrorf(opAt, err)
	}

	return v, nil
}

// Set writes element (i, j).
//
// Errors:
//   - ErrOutOfRange if (i, j) lies outside the shape.
func (m *DMat) Set(i, j int, v float64) error {
	if err := checkOperands(opSet, m); err != nil {
		return err
	}
	if err := m.buf.Set(i, j, v); err != nil {
		return dmatErrorf(opSet, err)
	}

	return nil
}

// Row returns a copy of row i.
func (m *DMat) Row(i int) ([]float64, error) {
	if err := checkOperands(opRow, m); err != nil {
		return nil, err
	}
	row, err := m.buf.Row(i)
	if err != nil {
		return nil, dmatErrorf(opRow, err)
	}

	return row, nil
}

// Col returns a copy of column j.
func (m *DMat) Col(j int) ([]float64, error) {
	if err := checkOperands(opCol, m); err != nil {
		return nil, err
	}
	col, err := m.buf.Col(j)
	if err != nil {
		return nil, dmatErrorf(opCol, err)
	}

	return col, nil
}

// Data returns a row-major copy of all elements; nil for a nil m.
func (m *DMat) Data() []float64 {
	if m == nil {
		return nil
	}

	return m.buf.Data()
}

// All yields (i, row_i) in order; each row is a fresh copy.
//
//	for i, row := range m.All() {
//		fmt.Println(i, row)
//	}
//
// A nil m yields nothing.
func (m *DMat) All() iter.Seq2[int, []float64] {
	if m == nil {
		return func(func(int, []float64) bool) {}
	}

	return m.buf.All()
}

// Clone returns an independent deep copy; nil for a nil m.
func (m *DMat) Clone() *DMat {
	if m == nil {
		return nil
	}

	return wrap(m.buf.Clone())
}

// Equal reports same shape and element-wise == (NaN != NaN, 0 == -0).
// Two nil matrices are equal; nil and non-nil are not.
func (m *DMat) Equal(o *DMat) bool {
	if m == nil || o == nil {
		return m == o
	}

	return dense.Equal(m.buf, o.buf)
}

// String renders one bracketed row per line.
func (m *DMat) String() string {
	if m == nil {
		return "<nil>"
	}

	return m.buf.String()
}
