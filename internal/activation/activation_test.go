package activation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
)

var samplePoints = []float64{-3, -1, 0, 1, 3}

func TestNames(t *testing.T) {
	for _, k := range append(Kinds(), None) {
		assert.Equal(t, k, Parse(k.String()), "round trip %v", k)
	}
	assert.Equal(t, "sigmoid", Sigmoid.String())
	assert.Equal(t, "LeakyReLU", LeakyReLU.String())
	assert.Equal(t, None, Parse("tanh"))
	assert.Equal(t, "Kind(42)", Kind(42).String())
}

func TestLookupUnregistered(t *testing.T) {
	_, err := Lookup[float64](None)
	assert.ErrorIs(t, err, ErrUnregistered)

	_, err = Lookup[float32](Kind(42))
	assert.ErrorIs(t, err, ErrUnregistered)

	_, err = Forward(None, 1.0)
	assert.ErrorIs(t, err, ErrUnregistered)
	_, err = Derivative(Kind(-1), 1.0)
	assert.ErrorIs(t, err, ErrUnregistered)
}

func TestForwardValues(t *testing.T) {
	tests := []struct {
		kind Kind
		x    float64
		want float64
	}{
		{Sigmoid, 0, 0.5},
		{Sigmoid, 2, 0.8807970779778823},
		{ReLU, -2, 0},
		{ReLU, 2.5, 2.5},
		{LeakyReLU, -2, -0.2},
		{LeakyReLU, 2.5, 2.5},
		{Softplus, 0, math.Ln2},
		{Softplus, 50, 50},
	}
	for _, tt := range tests {
		got, err := Forward(tt.kind, tt.x)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, got, 1e-12, "%v(%v)", tt.kind, tt.x)
	}
}

func TestDerivativeMatchesNumerical(t *testing.T) {
	settings := &fd.Settings{Formula: fd.Central, Step: 1e-4}
	for _, k := range Kinds() {
		fn, err := Lookup[float64](k)
		require.NoError(t, err)

		for _, x := range samplePoints {
			if x == 0 && (k == ReLU || k == LeakyReLU) {
				// Kink: the derivative is defined one-sided.
				continue
			}
			numerical := fd.Derivative(fn.Forward, x, settings)
			assert.InDelta(t, numerical, fn.Derivative(x), 1e-6, "%v'(%v)", k, x)
		}
	}
}

func TestFloat32MatchesFloat64(t *testing.T) {
	for _, k := range Kinds() {
		f64, err := Lookup[float64](k)
		require.NoError(t, err)
		f32, err := Lookup[float32](k)
		require.NoError(t, err)

		for _, x := range samplePoints {
			assert.InDelta(t, f64.Forward(x), float64(f32.Forward(float32(x))), 1e-5, "%v(%v)", k, x)
			assert.InDelta(t, f64.Derivative(x), float64(f32.Derivative(float32(x))), 1e-5, "%v'(%v)", k, x)
		}
	}
}

func TestReLUDerivativeAtZero(t *testing.T) {
	d, err := Derivative(ReLU, 0.0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, d)

	d, err = Derivative(LeakyReLU, -0.5)
	require.NoError(t, err)
	assert.Equal(t, 0.1, d)
}

func TestDerivativeValues(t *testing.T) {
	tests := []struct {
		kind Kind
		x    float64
		want float64
	}{
		{Sigmoid, 0, 0.25},
		{ReLU, -2, 0},
		{ReLU, 3, 1},
		{LeakyReLU, -2, 0.1},
		{LeakyReLU, 3, 1},
		{Softplus, 0, 0.5},
		{Softplus, 100, 1},
	}
	for _, tt := range tests {
		got, err := Derivative(tt.kind, tt.x)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, got, 1e-12, "%v'(%v)", tt.kind, tt.x)

		got32, err := Derivative(tt.kind, float32(tt.x))
		require.NoError(t, err)
		assert.InDelta(t, tt.want, float64(got32), 1e-6, "%v'(%v) float32", tt.kind, tt.x)
	}

	for _, k := range []Kind{None, Kind(99)} {
		_, err := Forward(k, float32(1))
		assert.ErrorIs(t, err, ErrUnregistered)
		_, err = Derivative(k, 1.0)
		assert.ErrorIs(t, err, ErrUnregistered)
	}
}

func BenchmarkForward(b *testing.B) {
	for _, k := range Kinds() {
		fn, err := Lookup[float64](k)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(k.String(), func(b *testing.B) {
			var sink float64
			for i := 0; i < b.N; i++ {
				sink += fn.Forward(float64(i%7) - 3)
			}
			_ = sink
		})
	}
}
