package optim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antikrem/EscalatorNet/internal/matrix"
	"github.com/antikrem/EscalatorNet/internal/optim"
)

func TestSGD_Delta(t *testing.T) {
	sgd := optim.NewSGD[float64](optim.SGDConfig{LR: 0.1})

	grad, err := matrix.FromRows([][]float64{{1}, {-2}, {0.5}})
	require.NoError(t, err)

	delta := sgd.Delta(grad)
	assert.True(t, delta.EqualApprox(mustRows(t, [][]float64{{-0.1}, {0.2}, {-0.05}}), 1e-12))
	assert.Equal(t, []float64{1, -2, 0.5}, grad.Data(), "gradient must not be mutated")

	assert.InDelta(t, -0.3, sgd.DeltaScalar(3), 1e-12)
}

func TestSGD_DefaultLR(t *testing.T) {
	sgd := optim.NewSGD[float32](optim.SGDConfig{})
	assert.Equal(t, float32(optim.DefaultLR), sgd.GetLR())
	assert.Equal(t, float32(-2), sgd.DeltaScalar(2))
}

func TestSGD_SetLR(t *testing.T) {
	var opt optim.Optimizer[float64] = optim.NewSGD[float64](optim.SGDConfig{LR: 1})
	opt.SetLR(0.25)
	assert.Equal(t, 0.25, opt.GetLR())
	assert.Equal(t, -0.5, opt.DeltaScalar(2))
}

func mustRows(t *testing.T, rows [][]float64) *matrix.Matrix[float64] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)
	return m
}
