// Package matrix provides the dynamically sized dense matrix used by the
// network.
//
// Conventions: rowLength is the width of one example (features or nodes) and
// columnLength is the number of stacked examples. Cell (x, y) lives at
// data[y*rowLength+x]; x moves along a row, y selects the example.
package matrix

import "fmt"

// Float is the constraint for matrix cell types.
type Float interface {
	~float32 | ~float64
}

// Shape is the (rowLength, columnLength) pair of a matrix.
type Shape struct {
	RowLength    int
	ColumnLength int
}

// String renders the shape as (rowLength×columnLength).
func (s Shape) String() string {
	return fmt.Sprintf("(%d×%d)", s.RowLength, s.ColumnLength)
}

// Len returns the number of cells described by the shape.
func (s Shape) Len() int {
	return s.RowLength * s.ColumnLength
}

// Matrix is a rectangular, dense, mutable buffer of scalars.
//
// len(data) == rowLength*columnLength at all times. Matrices own their
// buffer exclusively; every operation that does not name a mutation returns
// a freshly allocated matrix.
type Matrix[T Float] struct {
	rowLength    int
	columnLength int
	data         []T
}

// RowLength returns the number of cells per row (the example width).
func (m *Matrix[T]) RowLength() int {
	return m.rowLength
}

// ColumnLength returns the number of rows (the example count).
func (m *Matrix[T]) ColumnLength() int {
	return m.columnLength
}

// Len returns rowLength*columnLength.
func (m *Matrix[T]) Len() int {
	return len(m.data)
}

// Shape returns the matrix dimensions.
func (m *Matrix[T]) Shape() Shape {
	return Shape{RowLength: m.rowLength, ColumnLength: m.columnLength}
}

// Data returns the underlying row-major buffer.
//
// The slice aliases the matrix; Extend and Assign replace it.
func (m *Matrix[T]) Data() []T {
	return m.data
}

// Get returns cell (x, y).
func (m *Matrix[T]) Get(x, y int) (T, error) {
	if !m.inBounds(x, y) {
		return 0, indexErr("Get", x, y, m.Shape())
	}
	return m.data[y*m.rowLength+x], nil
}

// Set writes cell (x, y).
func (m *Matrix[T]) Set(x, y int, value T) error {
	if !m.inBounds(x, y) {
		return indexErr("Set", x, y, m.Shape())
	}
	m.data[y*m.rowLength+x] = value
	return nil
}

// Clone returns a deep copy.
func (m *Matrix[T]) Clone() *Matrix[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)
	return &Matrix[T]{rowLength: m.rowLength, columnLength: m.columnLength, data: data}
}

// Assign overwrites m with a deep copy of other, resizing as needed.
func (m *Matrix[T]) Assign(other *Matrix[T]) {
	m.rowLength = other.rowLength
	m.columnLength = other.columnLength
	if cap(m.data) < len(other.data) {
		m.data = make([]T, len(other.data))
	}
	m.data = m.data[:len(other.data)]
	copy(m.data, other.data)
}

// Equal reports whether both matrices have the same shape and identical cells.
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if m.Shape() != other.Shape() {
		return false
	}
	for i, v := range m.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}

// EqualApprox reports whether both matrices have the same shape and every
// pair of cells differs by at most tol.
func (m *Matrix[T]) EqualApprox(other *Matrix[T], tol T) bool {
	if m.Shape() != other.Shape() {
		return false
	}
	for i, v := range m.data {
		d := v - other.data[i]
		if d < 0 {
			d = -d
		}
		if d > tol {
			return false
		}
	}
	return true
}

func (m *Matrix[T]) inBounds(x, y int) bool {
	return x >= 0 && x < m.rowLength && y >= 0 && y < m.columnLength
}

// at is the unchecked accessor used by kernels that already validated shapes.
func (m *Matrix[T]) at(x, y int) T {
	return m.data[y*m.rowLength+x]
}
