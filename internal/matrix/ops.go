package matrix

// Add returns the element-wise sum m + other. Shapes must be identical.
func (m *Matrix[T]) Add(other *Matrix[T]) (*Matrix[T], error) {
	if m.Shape() != other.Shape() {
		return nil, shapeErr("Add", m.Shape(), other.Shape())
	}
	c := m.Clone()
	addTo(c.data, other.data)
	return c, nil
}

// Sub returns the element-wise difference m - other. Shapes must be identical.
func (m *Matrix[T]) Sub(other *Matrix[T]) (*Matrix[T], error) {
	if m.Shape() != other.Shape() {
		return nil, shapeErr("Sub", m.Shape(), other.Shape())
	}
	c := m.Clone()
	subFrom(c.data, other.data)
	return c, nil
}

// MulElem returns the Hadamard product m ⊙ other. Shapes must be identical.
func (m *Matrix[T]) MulElem(other *Matrix[T]) (*Matrix[T], error) {
	if m.Shape() != other.Shape() {
		return nil, shapeErr("MulElem", m.Shape(), other.Shape())
	}
	c := m.Clone()
	mulBy(c.data, other.data)
	return c, nil
}

// AddScalar returns m with value added to every cell.
func (m *Matrix[T]) AddScalar(value T) *Matrix[T] {
	c := m.Clone()
	addConst(value, c.data)
	return c
}

// Scale returns m with every cell multiplied by factor.
func (m *Matrix[T]) Scale(factor T) *Matrix[T] {
	c := m.Clone()
	scale(factor, c.data)
	return c
}

// Mul returns the matrix product of m and other.
//
// Requires m.RowLength() == other.ColumnLength(). The result has shape
// (other.RowLength(), m.ColumnLength()) and cell (i, j) is
//
//	Σ_p m(p, j) * other(i, p)
//
// so an input of examples (features × examples) times a weight column
// (1 × features) yields one value per example.
func (m *Matrix[T]) Mul(other *Matrix[T]) (*Matrix[T], error) {
	if m.rowLength != other.columnLength {
		return nil, shapeErr("Mul", m.Shape(), other.Shape())
	}
	c := zeros[T](other.rowLength, m.columnLength)
	for j := 0; j < m.columnLength; j++ {
		row := m.data[j*m.rowLength : (j+1)*m.rowLength]
		out := c.data[j*c.rowLength : (j+1)*c.rowLength]
		for p, a := range row {
			bRow := other.data[p*other.rowLength : (p+1)*other.rowLength]
			for i, b := range bRow {
				out[i] += a * b
			}
		}
	}
	return c, nil
}

// Apply returns a matrix of the same shape with fn applied to every cell.
func (m *Matrix[T]) Apply(fn func(T) T) *Matrix[T] {
	c := zeros[T](m.rowLength, m.columnLength)
	for i, v := range m.data {
		c.data[i] = fn(v)
	}
	return c
}
