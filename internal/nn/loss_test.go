package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antikrem/EscalatorNet/internal/matrix"
)

func TestSquaredError(t *testing.T) {
	pred := rows(t, [][]float64{{0.5, 1}, {0, 2}})
	want := rows(t, [][]float64{{0, 1}, {1, 0}})

	cost, err := SquaredError(pred, want)
	require.NoError(t, err)
	assert.InDelta(t, 0.25+0+1+4, cost, 1e-12)

	grad, err := SquaredErrorGrad(pred, want)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, -2, 4}, grad.Data())
}

func TestSquaredErrorShapeMismatch(t *testing.T) {
	_, err := SquaredError(rows(t, [][]float64{{1, 2}}), rows(t, [][]float64{{1}, {2}}))
	assert.ErrorIs(t, err, matrix.ErrShapeMismatch)

	_, err = SquaredErrorGrad(rows(t, [][]float64{{1, 2}}), rows(t, [][]float64{{1}}))
	assert.ErrorIs(t, err, matrix.ErrShapeMismatch)
}

func TestReportString(t *testing.T) {
	r := Report{Converged: true, Iterations: 12, Cost: 0.005}
	assert.Equal(t, "converged after 12 iterations, cost 0.005, 0.000s", r.String())
}
