package main

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemosAreWellFormed(t *testing.T) {
	seen := map[string]bool{}
	for _, d := range demos {
		assert.False(t, seen[d.name], "duplicate demo %s", d.name)
		seen[d.name] = true

		require.Len(t, d.outputs, len(d.inputs), d.name)
		for _, row := range d.outputs {
			assert.Len(t, row, d.layerWidths[len(d.layerWidths)-1], d.name)
		}
		for _, row := range d.trials {
			assert.Len(t, row, len(d.inputs[0]), d.name)
		}
	}
}

func TestFindDemo(t *testing.T) {
	d, ok := findDemo("XOR")
	require.True(t, ok)
	assert.Equal(t, "xor", d.name)

	_, ok = findDemo("nand")
	assert.False(t, ok)
}

func TestRunDemo(t *testing.T) {
	d, ok := findDemo("detector")
	require.True(t, ok)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, runDemo(&buf, d, logger, false))

	out := buf.String()
	assert.Contains(t, out, "== detector ==")
	assert.Contains(t, out, "converged")
	assert.Contains(t, out, "[1] -> ")
}

func TestRunVersion(t *testing.T) {
	assert.Equal(t, 0, run([]string{"version"}))
	assert.Equal(t, 2, run([]string{"nand"}))
	assert.Equal(t, 2, run(nil))
}
