// SPDX-License-Identifier: MIT

package fmat

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/densemat/dense"
)

// Mat is an R×C dense matrix of float64 in row-major order.
// Same-shape operations take Mat[R, C], so shape agreement is checked by the
// compiler and no method here returns a shape error.
type Mat[R, C Dim] struct {
	buf dense.Buffer // nil-data zero value means "all zeros"
}

// Zero returns the R×C zero matrix.
func Zero[R, C Dim]() Mat[R, C] {
	return Mat[R, C]{buf: mustBuffer(dense.New(sizeOf[R](), sizeOf[C]()))}
}

// Generate returns the matrix whose element (r,c) is f(r,c). f is called
// once per cell in row-major order and must be pure.
func Generate[R, C Dim](f func(r, c int) float64) Mat[R, C] {
	return Mat[R, C]{buf: mustBuffer(dense.Generate(sizeOf[R](), sizeOf[C](), f))}
}

// Identity returns I_N.
func Identity[N Dim]() Mat[N, N] {
	return Mat[N, N]{buf: dense.Identity(sizeOf[N]())}
}

// FromRows builds a Mat from a literal 2D list of any numeric type.
// The literal must have exactly R rows of C values each:
//
//	m, err := fmat.FromRows[fmat.D2, fmat.D2]([][]int{{1, 2}, {3, 4}})
//
// Errors:
//   - ErrShapeMismatch for ragged rows or a row/column count other than R/C.
func FromRows[R, C Dim, T dense.Number](rows [][]T) (Mat[R, C], error) {
	b, err := dense.FromRows(rows)
	if err != nil {
		return Mat[R, C]{}, err
	}
	if err = checkShape[R, C]("FromRows", b.Rows(), b.Cols()); err != nil {
		return Mat[R, C]{}, err
	}

	return Mat[R, C]{buf: b}, nil
}

// MustFromRows is FromRows for literals known to be well-formed; it panics on error.
func MustFromRows[R, C Dim, T dense.Number](rows [][]T) Mat[R, C] {
	m, err := FromRows[R, C](rows)
	if err != nil {
		panic(err)
	}

	return m
}

// FromData copies an R*C row-major slice into a new Mat.
func FromData[R, C Dim](data []float64) (Mat[R, C], error) {
	b, err := dense.FromData(sizeOf[R](), sizeOf[C](), data)
	if err != nil {
		return Mat[R, C]{}, err
	}

	return Mat[R, C]{buf: b}, nil
}

// checkShape compares a runtime shape with the type-level one.
func checkShape[R, C Dim](op string, rows, cols int) error {
	wantR, wantC := sizeOf[R](), sizeOf[C]()
	if rows != wantR || cols != wantC {
		if rows == 0 && wantR == 0 { // an empty literal reads as 0×0
			return nil
		}
		return &dense.ShapeError{
			Op: op, LeftRows: wantR, LeftCols: wantC,
			RightRows: rows, RightCols: cols, Err: dense.ErrShapeMismatch,
		}
	}

	return nil
}

// mustBuffer unwraps kernel constructors whose only failure is a negative Dim.
func mustBuffer(b dense.Buffer, err error) dense.Buffer {
	if err != nil {
		panic(fmt.Errorf("fmat: %w", err))
	}

	return b
}

// b returns the backing buffer, materializing zeros for the zero value.
// The result may be freshly allocated, so it is only for reading. A zero-value
// Mat pays one R×C allocation per read; mutating it once binds real storage.
func (m Mat[R, C]) b() dense.Buffer {
	if m.materialized() {
		return m.buf
	}

	return Zero[R, C]().buf
}

// fresh returns a private writable copy of m's elements. Mutators write into
// it and then rebind m.buf, so copies of a Mat never observe each other.
func (m Mat[R, C]) fresh() dense.Buffer {
	if m.materialized() {
		return m.buf.Clone()
	}

	return Zero[R, C]().buf
}

func (m Mat[R, C]) materialized() bool {
	return m.buf.Rows() == sizeOf[R]() && m.buf.Cols() == sizeOf[C]()
}

// Rows returns R.
func (m Mat[R, C]) Rows() int { return sizeOf[R]() }

// Cols returns C.
func (m Mat[R, C]) Cols() int { return sizeOf[C]() }

// At returns element (i, j). Out-of-range indices are a programmer error and panic.
func (m Mat[R, C]) At(i, j int) float64 {
	v, err := m.b().At(i, j)
	if err != nil {
		panic(fmt.Errorf("fmat: %w", err))
	}

	return v
}

// Set writes element (i, j). Only m changes; a Mat copied from m before the
// call keeps its old value. Panics when out of range, leaving m as it was.
//
// Complexity:
//   - Time O(R*C): the elements are copied before the write.
func (m *Mat[R, C]) Set(i, j int, v float64) {
	nb := m.fresh()
	if err := nb.Set(i, j, v); err != nil {
		panic(fmt.Errorf("fmat: %w", err))
	}
	m.buf = nb
}

// Row returns a copy of row i. Panics when out of range.
func (m Mat[R, C]) Row(i int) []float64 {
	row, err := m.b().Row(i)
	if err != nil {
		panic(fmt.Errorf("fmat: %w", err))
	}

	return row
}

// Col returns a copy of column j. Panics when out of range.
func (m Mat[R, C]) Col(j int) []float64 {
	col, err := m.b().Col(j)
	if err != nil {
		panic(fmt.Errorf("fmat: %w", err))
	}

	return col
}

// Data returns a row-major copy of all elements.
func (m Mat[R, C]) Data() []float64 { return m.b().Data() }

// All yields (i, row_i) with fresh row copies.
func (m Mat[R, C]) All() iter.Seq2[int, []float64] { return m.b().All() }

// Clone returns an independent copy.
func (m Mat[R, C]) Clone() Mat[R, C] { return Mat[R, C]{buf: m.b().Clone()} }

// Equal reports element-wise == equality (NaN != NaN, 0 == -0).
func (m Mat[R, C]) Equal(o Mat[R, C]) bool { return dense.Equal(m.b(), o.b()) }

// String renders one bracketed row per line.
func (m Mat[R, C]) String() string { return m.b().String() }

// Transpose returns the C×R matrix with result[c][r] = m[r][c].
func (m Mat[R, C]) Transpose() Mat[C, R] { return Mat[C, R]{buf: dense.Transpose(m.b())} }

// Add returns m + o.
func (m Mat[R, C]) Add(o Mat[R, C]) Mat[R, C] { return Mat[R, C]{buf: dense.Add(m.b(), o.b())} }

// Sub returns m - o.
func (m Mat[R, C]) Sub(o Mat[R, C]) Mat[R, C] { return Mat[R, C]{buf: dense.Sub(m.b(), o.b())} }

// Scale returns s*m.
func (m Mat[R, C]) Scale(s float64) Mat[R, C] { return Mat[R, C]{buf: dense.Scale(m.b(), s)} }

// Div returns m/s; s == 0 follows IEEE-754.
func (m Mat[R, C]) Div(s float64) Mat[R, C] { return Mat[R, C]{buf: dense.Div(m.b(), s)} }

// Neg returns -m.
func (m Mat[R, C]) Neg() Mat[R, C] { return Mat[R, C]{buf: dense.Neg(m.b())} }

// Map returns a new matrix with f applied to every element.
func (m Mat[R, C]) Map(f func(v float64) float64) Mat[R, C] {
	return Mat[R, C]{buf: dense.Map(m.b(), f)}
}

// AddAssign performs m = m + o. Like every *Assign method it rebinds m to
// new storage, so values copied from m are unaffected.
func (m *Mat[R, C]) AddAssign(o Mat[R, C]) { m.buf = dense.Add(m.b(), o.b()) }

// SubAssign performs m = m - o.
func (m *Mat[R, C]) SubAssign(o Mat[R, C]) { m.buf = dense.Sub(m.b(), o.b()) }

// ScaleAssign performs m = s*m.
func (m *Mat[R, C]) ScaleAssign(s float64) { m.buf = dense.Scale(m.b(), s) }

// DivAssign performs m = m/s.
func (m *Mat[R, C]) DivAssign(s float64) { m.buf = dense.Div(m.b(), s) }

// MulAssign performs m = m × o; o must be C×C so the shape is kept.
func (m *Mat[R, C]) MulAssign(o Mat[C, C]) { m.buf = dense.Mul(m.b(), o.b()) }

// Apply replaces every element with f(v, r, c) in row-major order.
func (m *Mat[R, C]) Apply(f func(v float64, r, c int) float64) {
	nb := m.fresh()
	dense.Apply(nb, f)
	m.buf = nb
}

// Mul returns the R×C product of an R×K and a K×C matrix. The shared K is
// enforced by the type checker.
func Mul[R, K, C Dim](a Mat[R, K], b Mat[K, C]) Mat[R, C] {
	return Mat[R, C]{buf: dense.Mul(a.b(), b.b())}
}
