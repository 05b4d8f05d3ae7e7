package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHyperParametersDefaults(t *testing.T) {
	h := NewHyperParameters()
	assert.Equal(t, 0.01, h.Get(ConvergenceThreshold))
	assert.Equal(t, 3e6, h.Get(IterationMax))
	assert.Equal(t, 1.0, h.Get(LearningRate))
	assert.Equal(t, []string{ConvergenceThreshold, IterationMax, LearningRate}, h.Keys())
}

func TestHyperParametersSet(t *testing.T) {
	h := NewHyperParameters()
	h.Set(LearningRate, 0.5)
	h.Set("momentum", 0.9)

	assert.Equal(t, 0.5, h.Get(LearningRate))
	v, ok := h.Lookup("momentum")
	assert.True(t, ok)
	assert.Equal(t, 0.9, v)

	_, ok = h.Lookup("missing")
	assert.False(t, ok)
	assert.Equal(t, 0.0, h.Get("missing"))

	assert.Equal(t, "convergence_threshold=0.01 iteration_max=3e+06 learning_rate=0.5 momentum=0.9", h.String())
}
