package matrix

import "fmt"

// New creates a rowLength×columnLength matrix with every cell set to value.
//
// Zero-sized dimensions are allowed; they are used as seeds for Extend.
//
// Example:
//
//	m, _ := matrix.New[float64](2, 4, 0)  // 4 examples of width 2
func New[T Float](rowLength, columnLength int, value T) (*Matrix[T], error) {
	if rowLength < 0 || columnLength < 0 {
		return nil, fmt.Errorf("matrix.New(%d,%d): %w", rowLength, columnLength, ErrBadShape)
	}
	m := zeros[T](rowLength, columnLength)
	if value != 0 {
		fill(m.data, value)
	}
	return m, nil
}

// Generate creates a matrix whose cell (x, y) is generator(x, y).
func Generate[T Float](rowLength, columnLength int, generator func(x, y int) T) (*Matrix[T], error) {
	if rowLength < 0 || columnLength < 0 {
		return nil, fmt.Errorf("matrix.Generate(%d,%d): %w", rowLength, columnLength, ErrBadShape)
	}
	m := zeros[T](rowLength, columnLength)
	for y := 0; y < columnLength; y++ {
		for x := 0; x < rowLength; x++ {
			m.data[y*rowLength+x] = generator(x, y)
		}
	}
	return m, nil
}

// FromRows builds a matrix from a literal list of rows, one per example.
//
// Every row must have the same length.
//
// Example:
//
//	xor, _ := matrix.FromRows([][]float64{
//	    {0, 0},
//	    {0, 1},
//	    {1, 0},
//	    {1, 1},
//	})  // rowLength 2, columnLength 4
func FromRows[T Float](rows [][]T) (*Matrix[T], error) {
	if len(rows) == 0 {
		return zeros[T](0, 0), nil
	}
	width := len(rows[0])
	m := zeros[T](width, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("matrix.FromRows: row %d has length %d, want %d: %w",
				y, len(row), width, ErrRaggedRows)
		}
		copy(m.data[y*width:(y+1)*width], row)
	}
	return m, nil
}

// Identity creates an identity matrix. Both lengths must be equal.
func Identity[T Float](rowLength, columnLength int) (*Matrix[T], error) {
	if rowLength != columnLength {
		return nil, fmt.Errorf("matrix.Identity(%d,%d): %w", rowLength, columnLength, ErrNonSquare)
	}
	return IdentitySquare[T](rowLength)
}

// IdentitySquare creates the n×n identity matrix.
func IdentitySquare[T Float](n int) (*Matrix[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("matrix.IdentitySquare(%d): %w", n, ErrBadShape)
	}
	m := zeros[T](n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m, nil
}

func zeros[T Float](rowLength, columnLength int) *Matrix[T] {
	return &Matrix[T]{
		rowLength:    rowLength,
		columnLength: columnLength,
		data:         make([]T, rowLength*columnLength),
	}
}
