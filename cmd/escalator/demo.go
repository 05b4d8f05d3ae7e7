package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/antikrem/EscalatorNet/matrix"
	"github.com/antikrem/EscalatorNet/nn"
)

type demo struct {
	name        string
	description string

	activation   nn.Activation
	layerWidths  []int
	learningRate float64

	inputs  [][]float64
	outputs [][]float64
	// trials are predicted after training; nil means the training inputs.
	trials [][]float64
}

var gateInputs = [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

var demos = []demo{
	{
		name:         "detector",
		description:  "Single LeakyReLU node passing its input through",
		activation:   nn.LeakyReLU,
		layerWidths:  []int{1},
		learningRate: 0.25,
		inputs:       [][]float64{{0}, {1}},
		outputs:      [][]float64{{0}, {1}},
	},
	{
		name:         "and",
		description:  "Single ReLU node learning AND",
		activation:   nn.ReLU,
		layerWidths:  []int{1},
		learningRate: 0.25,
		inputs:       gateInputs,
		outputs:      [][]float64{{0}, {0}, {0}, {1}},
	},
	{
		name:         "or",
		description:  "Single LeakyReLU node learning OR",
		activation:   nn.LeakyReLU,
		layerWidths:  []int{1},
		learningRate: 0.25,
		inputs:       gateInputs,
		outputs:      [][]float64{{0}, {1}, {1}, {1}},
	},
	{
		name:         "xor",
		description:  "Sigmoid 2-2-1 network learning XOR",
		activation:   nn.Sigmoid,
		layerWidths:  []int{2, 1},
		learningRate: 1.0,
		inputs:       gateInputs,
		outputs:      [][]float64{{0}, {1}, {1}, {0}},
	},
	{
		name:         "xor-softplus",
		description:  "Softplus 2-2-1 network learning XOR",
		activation:   nn.Softplus,
		layerWidths:  []int{2, 1},
		learningRate: 0.1,
		inputs:       gateInputs,
		outputs:      [][]float64{{0}, {1}, {1}, {0}},
	},
	{
		name:         "lines",
		description:  "Sigmoid 16-4-2 network telling rising from falling diagonals on a 4x4 grid",
		activation:   nn.Sigmoid,
		layerWidths:  []int{4, 2},
		learningRate: 1.0,
		inputs:       lineInputs,
		outputs:      lineOutputs,
		trials:       lineTrials,
	},
}

func runDemo(w io.Writer, d demo, logger *slog.Logger, verbose bool) error {
	net, err := nn.NewNetwork[float64](nn.Config{
		InputWidth:   len(d.inputs[0]),
		Activation:   d.activation,
		LayerWidths:  d.layerWidths,
		LearningRate: d.learningRate,
		Source:       nn.NewSource(nn.DefaultSeed),
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	in, err := matrix.FromRows(d.inputs)
	if err != nil {
		return err
	}
	out, err := matrix.FromRows(d.outputs)
	if err != nil {
		return err
	}
	if err := net.AddExample(in, out); err != nil {
		return err
	}

	logger.Info("training", "demo", d.name, "activation", d.activation, "layers", d.layerWidths)
	if err := net.Train(verbose); err != nil {
		return err
	}

	trials := d.trials
	if trials == nil {
		trials = d.inputs
	}
	tm, err := matrix.FromRows(trials)
	if err != nil {
		return err
	}
	pred, err := net.Predict(tm)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "== %s ==\n", d.name)
	fmt.Fprintln(w, net.Summary())
	if verbose {
		fmt.Fprint(w, net)
	}
	for y := 0; y < pred.ColumnLength(); y++ {
		example, err := pred.Example(y)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%v -> %v\n", trials[y], example.Data())
	}
	fmt.Fprintln(w)
	return nil
}
