package matrix

import "fmt"

// Transpose returns a new matrix with rowLength and columnLength swapped.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	c := zeros[T](m.columnLength, m.rowLength)
	for y := 0; y < m.columnLength; y++ {
		for x := 0; x < m.rowLength; x++ {
			c.data[x*c.rowLength+y] = m.data[y*m.rowLength+x]
		}
	}
	return c
}

// QuickTranspose transposes a vector in place by swapping its lengths.
//
// The buffer is left untouched, which is only a valid transpose when one of
// the dimensions is 1. Any other shape returns ErrNotVector.
func (m *Matrix[T]) QuickTranspose() error {
	if m.rowLength != 1 && m.columnLength != 1 {
		return fmt.Errorf("Matrix.QuickTranspose on %v: %w", m.Shape(), ErrNotVector)
	}
	m.rowLength, m.columnLength = m.columnLength, m.rowLength
	return nil
}

// Extend appends the rows of other after the rows of m, growing m in place.
//
// Both matrices must share rowLength. Slices previously obtained from Data
// may no longer alias m afterwards.
func (m *Matrix[T]) Extend(other *Matrix[T]) error {
	if m.rowLength != other.rowLength {
		return shapeErr("Extend", m.Shape(), other.Shape())
	}
	m.data = append(m.data, other.data...)
	m.columnLength += other.columnLength
	return nil
}

// Feature returns slot x of every example as a (1, columnLength) vector.
//
// For a layer activation this is one node's output across all examples.
func (m *Matrix[T]) Feature(x int) (*Matrix[T], error) {
	if x < 0 || x >= m.rowLength {
		return nil, indexErr("Feature", x, 0, m.Shape())
	}
	c := zeros[T](1, m.columnLength)
	for y := 0; y < m.columnLength; y++ {
		c.data[y] = m.at(x, y)
	}
	return c, nil
}

// Example returns row y as a (rowLength, 1) matrix.
func (m *Matrix[T]) Example(y int) (*Matrix[T], error) {
	if y < 0 || y >= m.columnLength {
		return nil, indexErr("Example", 0, y, m.Shape())
	}
	c := zeros[T](m.rowLength, 1)
	copy(c.data, m.data[y*m.rowLength:(y+1)*m.rowLength])
	return c, nil
}

// Clamp saturates every cell to [lower, upper] in place.
func (m *Matrix[T]) Clamp(lower, upper T) {
	for i, v := range m.data {
		switch {
		case v < lower:
			m.data[i] = lower
		case v > upper:
			m.data[i] = upper
		}
	}
}
