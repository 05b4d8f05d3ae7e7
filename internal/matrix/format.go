package matrix

import (
	"strconv"
	"strings"
)

// String renders one example per line with cells separated by spaces.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	for y := 0; y < m.columnLength; y++ {
		for x := 0; x < m.rowLength; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(float64(m.at(x, y)), 'g', 6, 64))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
