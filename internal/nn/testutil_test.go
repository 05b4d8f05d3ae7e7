package nn

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/antikrem/EscalatorNet/internal/matrix"
)

func rows(t *testing.T, r [][]float64) *matrix.Matrix[float64] {
	t.Helper()
	m, err := matrix.FromRows(r)
	require.NoError(t, err)
	return m
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var (
	gateInputs = [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	xorInputs  = [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	xorOutputs = [][]float64{{0}, {1}, {1}, {0}}
)
