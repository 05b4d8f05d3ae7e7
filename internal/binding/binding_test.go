package binding

import (
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antikrem/EscalatorNet/internal/matrix"
	"github.com/antikrem/EscalatorNet/internal/nn"
	"github.com/antikrem/EscalatorNet/internal/rng"
)

func newRegistry() *Registry {
	return NewRegistry(rng.DefaultSeed, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRegistryXOR(t *testing.T) {
	r := newRegistry()
	h, err := r.Create([]int{2, 2, 1}, "sigmoid")
	require.NoError(t, err)
	assert.Equal(t, 1, r.Len())

	inputs := [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	require.NoError(t, r.AddExample(h, inputs, [][]float64{{0}, {1}, {1}, {0}}))

	report, err := r.Train(h, false)
	require.NoError(t, err)
	assert.True(t, report.Converged)

	pred, err := r.Predict(h, inputs)
	require.NoError(t, err)
	require.Len(t, pred, 4)
	for i, want := range []float64{0, 1, 1, 0} {
		require.Len(t, pred[i], 1)
		assert.InDelta(t, want, pred[i][0], 0.2)
	}

	desc, err := r.Describe(h)
	require.NoError(t, err)
	assert.Contains(t, desc, "converged")

	require.NoError(t, r.Delete(h))
	assert.Equal(t, 0, r.Len())
}

func TestRegistryCreateInvalid(t *testing.T) {
	r := newRegistry()

	_, err := r.Create([]int{2}, "sigmoid")
	assert.ErrorIs(t, err, nn.ErrInvalidConfig)

	_, err = r.Create([]int{2, 1}, "tanh")
	assert.ErrorIs(t, err, nn.ErrInvalidConfig)

	_, err = r.Create([]int{2, 0, 1}, "ReLU")
	assert.ErrorIs(t, err, nn.ErrInvalidConfig)
	assert.Equal(t, 0, r.Len())
}

func TestRegistryUnknownHandle(t *testing.T) {
	r := newRegistry()
	h := uuid.New()

	assert.ErrorIs(t, r.Delete(h), ErrUnknownHandle)
	assert.ErrorIs(t, r.AddExample(h, [][]float64{{1}}, [][]float64{{1}}), ErrUnknownHandle)
	assert.ErrorIs(t, r.SetHyperParameter(h, nn.IterationMax, 1), ErrUnknownHandle)
	_, err := r.Train(h, false)
	assert.ErrorIs(t, err, ErrUnknownHandle)
	_, err = r.Predict(h, [][]float64{{1}})
	assert.ErrorIs(t, err, ErrUnknownHandle)
	_, err = r.Describe(h)
	assert.ErrorIs(t, err, ErrUnknownHandle)
}

func TestRegistryHandlesAreIndependent(t *testing.T) {
	r := newRegistry()
	a, err := r.Create([]int{1, 1}, "LeakyReLU")
	require.NoError(t, err)
	b, err := r.Create([]int{1, 1}, "LeakyReLU")
	require.NoError(t, err)
	require.NotEqual(t, a, b)

	require.NoError(t, r.AddExample(a, [][]float64{{0}, {1}}, [][]float64{{0}, {1}}))
	_, err = r.Train(b, false)
	assert.ErrorIs(t, err, nn.ErrNoExamples)

	require.NoError(t, r.Delete(a))
	_, err = r.Predict(b, [][]float64{{1}})
	assert.NoError(t, err)
}

func TestRegistryBadInput(t *testing.T) {
	r := newRegistry()
	h, err := r.Create([]int{2, 1}, "sigmoid")
	require.NoError(t, err)

	err = r.AddExample(h, [][]float64{{0, 1}, {1}}, [][]float64{{0}, {1}})
	assert.ErrorIs(t, err, matrix.ErrRaggedRows)

	err = r.AddExample(h, [][]float64{{0, 1}}, [][]float64{{0}, {1}})
	assert.ErrorIs(t, err, matrix.ErrShapeMismatch)

	_, err = r.Predict(h, [][]float64{{0, 1, 2}})
	assert.ErrorIs(t, err, matrix.ErrShapeMismatch)
}

func TestRegistrySetHyperParameter(t *testing.T) {
	r := newRegistry()
	h, err := r.Create([]int{2, 2, 1}, "sigmoid")
	require.NoError(t, err)
	require.NoError(t, r.SetHyperParameter(h, nn.IterationMax, 5))
	require.NoError(t, r.AddExample(h, [][]float64{{0, 0}, {1, 1}}, [][]float64{{0}, {0}}))

	report, err := r.Train(h, false)
	require.NoError(t, err)
	assert.Equal(t, 5, report.Iterations)
}

func TestRegistrySameHandleConcurrently(t *testing.T) {
	r := newRegistry()
	h, err := r.Create([]int{2, 2, 1}, "sigmoid")
	require.NoError(t, err)
	require.NoError(t, r.SetHyperParameter(h, nn.IterationMax, 20))

	inputs := [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	outputs := [][]float64{{0}, {1}, {1}, {0}}
	require.NoError(t, r.AddExample(h, inputs, outputs))

	const workers = 8
	errs := make(chan error, 4*workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- r.AddExample(h, inputs, outputs)
			_, err := r.Train(h, false)
			errs <- err
			_, err = r.Predict(h, inputs)
			errs <- err
			_, err = r.Describe(h)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}

	desc, err := r.Describe(h)
	require.NoError(t, err)
	assert.Contains(t, desc, "36 examples")
}
