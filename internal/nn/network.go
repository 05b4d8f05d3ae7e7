package nn

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/antikrem/EscalatorNet/internal/activation"
	"github.com/antikrem/EscalatorNet/internal/matrix"
	"github.com/antikrem/EscalatorNet/internal/rng"
	"github.com/antikrem/EscalatorNet/internal/stopwatch"
)

// logEvery is the iteration stride of verbose training logs.
const logEvery = 10000

// Config holds the topology and collaborators of a Network.
type Config struct {
	InputWidth   int             // Width of one input example
	Activation   activation.Kind // Activation used by every node
	LayerWidths  []int           // Node count per layer; the last entry is the output width
	LearningRate float64         // Stored as learning_rate (default: 1.0)

	Source *rng.Source      // Weight initialization (default: rng.New(rng.DefaultSeed))
	Logger *slog.Logger     // Training logs (default: slog.Default())
	Clock  func() time.Time // Timing of Train (default: time.Now)
}

// Network is a feed-forward multi-layer perceptron trained by full-batch
// gradient descent on the sum of squared errors.
//
// Examples accumulate through AddExample; Train iterates
// forward → cost → backward over all of them until the cost drops to
// convergence_threshold or iteration_max iterations have run.
type Network[T matrix.Float] struct {
	inputWidth int
	kind       activation.Kind
	layers     []*Layer[T]
	params     *HyperParameters

	input  *matrix.Matrix[T] // (inputWidth, examples)
	output *matrix.Matrix[T] // (outputWidth, examples)

	lastPrediction *matrix.Matrix[T]
	report         Report

	logger *slog.Logger
	timer  *stopwatch.Stopwatch
}

// NewNetwork builds the chained layers described by cfg.
//
// Example:
//
//	net, err := nn.NewNetwork[float64](nn.Config{
//	    InputWidth:  2,
//	    Activation:  activation.Sigmoid,
//	    LayerWidths: []int{2, 1},
//	})
func NewNetwork[T matrix.Float](cfg Config) (*Network[T], error) {
	if cfg.InputWidth <= 0 {
		return nil, fmt.Errorf("NewNetwork: input width %d: %w", cfg.InputWidth, ErrInvalidConfig)
	}
	if len(cfg.LayerWidths) == 0 {
		return nil, fmt.Errorf("NewNetwork: no layers: %w", ErrInvalidConfig)
	}
	if cfg.LearningRate == 0 {
		cfg.LearningRate = 1.0
	}
	if cfg.Source == nil {
		cfg.Source = rng.New(rng.DefaultSeed)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	n := &Network[T]{
		inputWidth: cfg.InputWidth,
		kind:       cfg.Activation,
		params:     NewHyperParameters(),
		logger:     cfg.Logger,
		timer:      stopwatch.NewWithClock(cfg.Clock),
	}
	n.params.Set(LearningRate, cfg.LearningRate)

	width := cfg.InputWidth
	for i, nodes := range cfg.LayerWidths {
		layer, err := NewLayer[T](width, nodes, cfg.Activation, cfg.LearningRate, cfg.Source)
		if err != nil {
			return nil, fmt.Errorf("NewNetwork: layer %d: %w", i, err)
		}
		n.layers = append(n.layers, layer)
		width = nodes
	}
	return n, nil
}

// AddExample appends a batch of examples. input is (InputWidth, k) and
// output is (outputWidth, k); batches are concatenated along the example axis.
func (n *Network[T]) AddExample(input, output *matrix.Matrix[T]) error {
	if input.RowLength() != n.inputWidth {
		return fmt.Errorf("Network.AddExample: input width %d, want %d: %w",
			input.RowLength(), n.inputWidth, matrix.ErrShapeMismatch)
	}
	if output.RowLength() != n.OutputWidth() {
		return fmt.Errorf("Network.AddExample: output width %d, want %d: %w",
			output.RowLength(), n.OutputWidth(), matrix.ErrShapeMismatch)
	}
	if input.ColumnLength() != output.ColumnLength() {
		return fmt.Errorf("Network.AddExample: %d inputs but %d outputs: %w",
			input.ColumnLength(), output.ColumnLength(), matrix.ErrShapeMismatch)
	}

	if n.input == nil {
		n.input = input.Clone()
		n.output = output.Clone()
		return nil
	}
	// Grow copies so matrices handed out earlier keep their shape.
	in, out := n.input.Clone(), n.output.Clone()
	if err := in.Extend(input); err != nil {
		return fmt.Errorf("Network.AddExample: %w", err)
	}
	if err := out.Extend(output); err != nil {
		return fmt.Errorf("Network.AddExample: %w", err)
	}
	n.input, n.output = in, out
	return nil
}

// Examples returns the number of accumulated examples.
func (n *Network[T]) Examples() int {
	if n.input == nil {
		return 0
	}
	return n.input.ColumnLength()
}

// ForwardPropagate feeds input through every layer in order, applying the
// pending deltas, and records the result as the last prediction.
//
// The nodes keep a reference to input until the next forward pass;
// BackwardPropagate fails if the caller resizes it in between.
func (n *Network[T]) ForwardPropagate(input *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	out := input
	for i, layer := range n.layers {
		next, err := layer.PropagateForward(out)
		if err != nil {
			return nil, fmt.Errorf("Network.ForwardPropagate: layer %d: %w", i, err)
		}
		out = next
	}
	n.lastPrediction = out
	return out, nil
}

// ComputeCost returns the squared error between the last prediction and expected.
func (n *Network[T]) ComputeCost(expected *matrix.Matrix[T]) (T, error) {
	if n.lastPrediction == nil {
		return 0, fmt.Errorf("Network.ComputeCost: %w", ErrNoForwardPass)
	}
	cost, err := SquaredError(n.lastPrediction, expected)
	if err != nil {
		return 0, fmt.Errorf("Network.ComputeCost: %w", err)
	}
	return cost, nil
}

// BackwardPropagate queues gradient-descent deltas on every node in a
// single reverse pass. Each layer's dC/da only depends on the layer after
// it, which has already been processed.
func (n *Network[T]) BackwardPropagate(expected *matrix.Matrix[T]) error {
	last := len(n.layers) - 1
	for i := last; i >= 0; i-- {
		var err error
		if i == last {
			err = n.layers[i].SetFirstDCDA(expected)
		} else {
			err = n.layers[i].SetDCDA(n.layers[i+1])
		}
		if err != nil {
			return fmt.Errorf("Network.BackwardPropagate: layer %d: %w", i, err)
		}
		if err := n.layers[i].PropagateBackwards(); err != nil {
			return fmt.Errorf("Network.BackwardPropagate: layer %d: %w", i, err)
		}
	}
	return nil
}

// Train runs full-batch gradient descent over every accumulated example.
//
// It reads convergence_threshold, iteration_max and learning_rate from the
// hyperparameters, resets the diagnostics and loops until the cost is at
// most the threshold or the iteration cap is reached. Reaching the cap is a
// normal outcome, reported through Converged. Weights carry over between
// calls. A non-positive iteration_max returns ErrInvalidConfig.
//
// With verbose set, the cost is logged every 10000th iteration.
func (n *Network[T]) Train(verbose bool) error {
	if n.Examples() == 0 {
		return fmt.Errorf("Network.Train: %w", ErrNoExamples)
	}

	threshold := n.params.Get(ConvergenceThreshold)
	iterMax := int(n.params.Get(IterationMax))
	if iterMax <= 0 {
		return fmt.Errorf("Network.Train: %s = %d: %w", IterationMax, iterMax, ErrInvalidConfig)
	}
	lr := T(n.params.Get(LearningRate))
	for _, layer := range n.layers {
		layer.SetLearningRate(lr)
	}

	n.report = Report{}
	cost := threshold + 1
	count := 0

	n.timer.Tic()
	for cost > threshold && count < iterMax {
		if _, err := n.ForwardPropagate(n.input); err != nil {
			return fmt.Errorf("Network.Train: %w", err)
		}
		c, err := n.ComputeCost(n.output)
		if err != nil {
			return fmt.Errorf("Network.Train: %w", err)
		}
		cost = float64(c)

		if verbose && count%logEvery == 0 {
			n.logger.Info("training", "iteration", count, "cost", cost)
		}

		if err := n.BackwardPropagate(n.output); err != nil {
			return fmt.Errorf("Network.Train: %w", err)
		}
		count++
	}

	n.report = Report{
		Converged:  cost < threshold,
		Iterations: count,
		Cost:       cost,
		Elapsed:    n.timer.Toc(),
	}

	level := slog.LevelDebug
	if verbose {
		level = slog.LevelInfo
	}
	n.logger.Log(context.Background(), level, "training finished",
		"iterations", n.report.Iterations,
		"cost", n.report.Cost,
		"converged", n.report.Converged,
		"elapsed", n.report.Elapsed,
	)
	return nil
}

// Predict evaluates input with the current parameters.
//
// Pending deltas are not applied and no training state changes, so Predict
// may be called before, between or after calls to Train.
func (n *Network[T]) Predict(input *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	out := input
	for i, layer := range n.layers {
		next, err := layer.Evaluate(out)
		if err != nil {
			return nil, fmt.Errorf("Network.Predict: layer %d: %w", i, err)
		}
		out = next
	}
	return out, nil
}

// MakePrediction is Predict that also records the result as the last
// prediction, so ComputeCost can score it.
func (n *Network[T]) MakePrediction(input *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	out, err := n.Predict(input)
	if err != nil {
		return nil, err
	}
	n.lastPrediction = out
	return out, nil
}

// HyperParameters returns the mutable store read by Train.
func (n *Network[T]) HyperParameters() *HyperParameters {
	return n.params
}

// Layers returns the network's layers, input side first.
func (n *Network[T]) Layers() []*Layer[T] {
	return n.layers
}

// InputWidth returns the width of one input example.
func (n *Network[T]) InputWidth() int {
	return n.inputWidth
}

// OutputWidth returns the node count of the last layer.
func (n *Network[T]) OutputWidth() int {
	return n.layers[len(n.layers)-1].Width()
}

// Activation returns the activation kind shared by all nodes.
func (n *Network[T]) Activation() activation.Kind {
	return n.kind
}

// Report returns the diagnostics of the last Train.
func (n *Network[T]) Report() Report {
	return n.report
}

// Converged reports whether the last Train ended below the threshold.
func (n *Network[T]) Converged() bool {
	return n.report.Converged
}

// IterationCount returns the number of iterations of the last Train.
func (n *Network[T]) IterationCount() int {
	return n.report.Iterations
}

// FinalCost returns the last cost computed by Train.
func (n *Network[T]) FinalCost() float64 {
	return n.report.Cost
}

// ElapsedSeconds returns the duration of the last Train in seconds.
func (n *Network[T]) ElapsedSeconds() float64 {
	return n.report.Elapsed.Seconds()
}

// Summary renders the training diagnostics on one line.
func (n *Network[T]) Summary() string {
	return n.report.String()
}

// String renders the topology, diagnostics and every node's parameters.
func (n *Network[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Network %s, %d inputs, %d examples\n", n.kind, n.inputWidth, n.Examples())
	fmt.Fprintf(&sb, "%s\n", n.report)
	for i, layer := range n.layers {
		fmt.Fprintf(&sb, "layer %d: %d -> %d\n", i, layer.InputSize(), layer.Width())
		for j, node := range layer.Nodes() {
			fmt.Fprintf(&sb, "  node %d: bias %g weight %v\n", j, float64(node.Bias()), node.weight.Data())
		}
	}
	return sb.String()
}
