package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antikrem/EscalatorNet/internal/activation"
	"github.com/antikrem/EscalatorNet/internal/rng"
)

// TestBackwardMatchesFiniteDifference checks every queued delta of a
// 3-4-3-2 network against central differences of the summed squared error.
// The last two layers have several nodes, so each hidden dC/da sums over
// more than one downstream node.
func TestBackwardMatchesFiniteDifference(t *testing.T) {
	const (
		lr   = 0.5
		step = 1e-5
	)
	inputs := [][]float64{
		{0.1, 0.9, 0.3},
		{0.7, 0.2, 0.5},
		{0.0, 1.0, 0.8},
		{0.4, 0.4, 0.1},
		{1.0, 0.3, 0.6},
	}
	outputs := [][]float64{
		{1, 0},
		{0, 1},
		{1, 1},
		{0, 0},
		{0.5, 0.2},
	}

	for _, kind := range []activation.Kind{activation.Sigmoid, activation.Softplus} {
		t.Run(kind.String(), func(t *testing.T) {
			net := newTestNetwork(t, Config{
				InputWidth:   3,
				Activation:   kind,
				LayerWidths:  []int{4, 3, 2},
				LearningRate: lr,
				Source:       rng.New(11),
			})
			in := rows(t, inputs)
			want := rows(t, outputs)
			examples := float64(in.ColumnLength())

			_, err := net.ForwardPropagate(in)
			require.NoError(t, err)
			require.NoError(t, net.BackwardPropagate(want))

			// Predict ignores the queued deltas, so it scores the
			// parameters the gradients were taken at.
			cost := func() float64 {
				pred, err := net.Predict(in)
				require.NoError(t, err)
				c, err := SquaredError(pred, want)
				require.NoError(t, err)
				return c
			}
			numerical := func(p *float64) float64 {
				orig := *p
				*p = orig + step
				plus := cost()
				*p = orig - step
				minus := cost()
				*p = orig
				return (plus - minus) / (2 * step) / examples
			}

			for l, layer := range net.Layers() {
				for j, node := range layer.Nodes() {
					require.True(t, node.HasPendingUpdate())
					weights := node.weight.Data()
					for k := range weights {
						got := -node.pendingWeight.Data()[k] / lr
						assert.InDelta(t, numerical(&weights[k]), got, 1e-6,
							"layer %d node %d weight %d", l, j, k)
					}
					got := -node.pendingBias / lr
					assert.InDelta(t, numerical(&node.bias), got, 1e-6,
						"layer %d node %d bias", l, j)
				}
			}
		})
	}
}
