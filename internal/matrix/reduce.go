package matrix

import "fmt"

// Sum returns the total of all cells.
func (m *Matrix[T]) Sum() T {
	return sum(m.data)
}

// SumColumns collapses the example axis: the result is (rowLength, 1) with
// cell x holding the sum of slot x over every example.
func (m *Matrix[T]) SumColumns() *Matrix[T] {
	c := zeros[T](m.rowLength, 1)
	for y := 0; y < m.columnLength; y++ {
		addTo(c.data, m.data[y*m.rowLength:(y+1)*m.rowLength])
	}
	return c
}

// SumRows collapses each row: the result is (1, columnLength) with cell y
// holding the sum of example y.
func (m *Matrix[T]) SumRows() *Matrix[T] {
	c := zeros[T](1, m.columnLength)
	for y := 0; y < m.columnLength; y++ {
		c.data[y] = sum(m.data[y*m.rowLength : (y+1)*m.rowLength])
	}
	return c
}

// Max returns the largest cell.
func (m *Matrix[T]) Max() (T, error) {
	if len(m.data) == 0 {
		return 0, fmt.Errorf("Matrix.Max on %v: %w", m.Shape(), ErrEmpty)
	}
	return maxOf(m.data), nil
}

// Min returns the smallest cell.
func (m *Matrix[T]) Min() (T, error) {
	if len(m.data) == 0 {
		return 0, fmt.Errorf("Matrix.Min on %v: %w", m.Shape(), ErrEmpty)
	}
	return minOf(m.data), nil
}
