package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToDense converts m to a gonum dense matrix.
//
// Each example becomes one gonum row, so the result is
// columnLength×rowLength in gonum's (rows, cols) terms.
func (m *Matrix[T]) ToDense() (*mat.Dense, error) {
	if len(m.data) == 0 {
		return nil, fmt.Errorf("Matrix.ToDense on %v: %w", m.Shape(), ErrEmpty)
	}
	data := make([]float64, len(m.data))
	for i, v := range m.data {
		data[i] = float64(v)
	}
	return mat.NewDense(m.columnLength, m.rowLength, data), nil
}

// FromDense converts any gonum matrix into a Matrix, one gonum row per example.
func FromDense[T Float](d mat.Matrix) *Matrix[T] {
	rows, cols := d.Dims()
	m := zeros[T](cols, rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			m.data[y*cols+x] = T(d.At(y, x))
		}
	}
	return m
}
