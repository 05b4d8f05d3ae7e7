package nn

import (
	"fmt"

	"github.com/antikrem/EscalatorNet/internal/activation"
	"github.com/antikrem/EscalatorNet/internal/matrix"
	"github.com/antikrem/EscalatorNet/internal/rng"
)

// Layer is a fixed set of nodes reading the same input.
//
// Its activation has one slot per node and one row per example:
// shape (len(nodes), n).
type Layer[T matrix.Float] struct {
	inputSize  int
	nodes      []*Node[T]
	activation *matrix.Matrix[T]
}

// NewLayer creates nodeCount nodes, each with inputSize weights.
func NewLayer[T matrix.Float](inputSize, nodeCount int, kind activation.Kind, learningRate float64, src *rng.Source) (*Layer[T], error) {
	if nodeCount <= 0 {
		return nil, fmt.Errorf("NewLayer: node count %d: %w", nodeCount, ErrInvalidConfig)
	}
	l := &Layer[T]{
		inputSize: inputSize,
		nodes:     make([]*Node[T], 0, nodeCount),
	}
	for i := 0; i < nodeCount; i++ {
		node, err := NewNode[T](inputSize, kind, learningRate, src)
		if err != nil {
			return nil, fmt.Errorf("NewLayer: node %d: %w", i, err)
		}
		l.nodes = append(l.nodes, node)
	}
	return l, nil
}

// PropagateForward runs every node's Forward on input and caches the
// combined activation.
func (l *Layer[T]) PropagateForward(input *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	if input.RowLength() != l.inputSize {
		return nil, l.widthErr("PropagateForward", input)
	}
	out, err := l.collect(input, (*Node[T]).Forward)
	if err != nil {
		return nil, fmt.Errorf("Layer.PropagateForward: %w", err)
	}
	l.activation = out
	return out, nil
}

// Evaluate is PropagateForward without side effects.
func (l *Layer[T]) Evaluate(input *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	if input.RowLength() != l.inputSize {
		return nil, l.widthErr("Evaluate", input)
	}
	out, err := l.collect(input, (*Node[T]).Evaluate)
	if err != nil {
		return nil, fmt.Errorf("Layer.Evaluate: %w", err)
	}
	return out, nil
}

// collect stacks each node's (1, n) output as one row of an (n, nodes)
// matrix, then transposes it into (nodes, n).
func (l *Layer[T]) collect(input *matrix.Matrix[T], step func(*Node[T], *matrix.Matrix[T]) (*matrix.Matrix[T], error)) (*matrix.Matrix[T], error) {
	results, err := matrix.New[T](input.ColumnLength(), 0, 0)
	if err != nil {
		return nil, err
	}
	for _, node := range l.nodes {
		a, err := step(node, input)
		if err != nil {
			return nil, err
		}
		if err := a.QuickTranspose(); err != nil {
			return nil, err
		}
		if err := results.Extend(a); err != nil {
			return nil, err
		}
	}
	return results.Transpose(), nil
}

// SetFirstDCDA seeds backpropagation on the output layer:
// dC/da = 2·(activation - expected), split per node.
func (l *Layer[T]) SetFirstDCDA(expected *matrix.Matrix[T]) error {
	if l.activation == nil {
		return fmt.Errorf("Layer.SetFirstDCDA: %w", ErrNoForwardPass)
	}
	dcda, err := SquaredErrorGrad(l.activation, expected)
	if err != nil {
		return fmt.Errorf("Layer.SetFirstDCDA: %w", err)
	}
	for i, node := range l.nodes {
		slot, err := dcda.Feature(i)
		if err != nil {
			return fmt.Errorf("Layer.SetFirstDCDA: %w", err)
		}
		if err := node.SetDCDA(slot); err != nil {
			return fmt.Errorf("Layer.SetFirstDCDA: node %d: %w", i, err)
		}
	}
	return nil
}

// SetDCDA pulls the error back from next, the layer this one feeds:
//
//	dC/da_i = Σ_m (dC/da_m ⊙ da_m/dz_m) · w_m[i]
//
// over every node m of next. next must already hold dC/da values.
func (l *Layer[T]) SetDCDA(next *Layer[T]) error {
	if next.inputSize != len(l.nodes) {
		return fmt.Errorf("Layer.SetDCDA: next layer reads %d inputs, layer has %d nodes: %w",
			next.inputSize, len(l.nodes), matrix.ErrShapeMismatch)
	}

	dcdz := make([]*matrix.Matrix[T], len(next.nodes))
	for m, nextNode := range next.nodes {
		if nextNode.dcda == nil {
			return fmt.Errorf("Layer.SetDCDA: next node %d: %w", m, ErrMissingGradient)
		}
		d, err := nextNode.dcda.MulElem(nextNode.dadz)
		if err != nil {
			return fmt.Errorf("Layer.SetDCDA: %w", err)
		}
		dcdz[m] = d
	}

	for i, node := range l.nodes {
		if node.a == nil {
			return fmt.Errorf("Layer.SetDCDA: node %d: %w", i, ErrNoForwardPass)
		}
		acc, err := matrix.New[T](1, node.a.ColumnLength(), 0)
		if err != nil {
			return err
		}
		for m, nextNode := range next.nodes {
			w, err := nextNode.WeightComponent(i)
			if err != nil {
				return fmt.Errorf("Layer.SetDCDA: %w", err)
			}
			if acc, err = acc.Add(dcdz[m].Scale(w)); err != nil {
				return fmt.Errorf("Layer.SetDCDA: %w", err)
			}
		}
		if err := node.SetDCDA(acc); err != nil {
			return fmt.Errorf("Layer.SetDCDA: node %d: %w", i, err)
		}
	}
	return nil
}

// PropagateBackwards runs Backward on every node. All dC/da values must be set.
func (l *Layer[T]) PropagateBackwards() error {
	for i, node := range l.nodes {
		if err := node.Backward(); err != nil {
			return fmt.Errorf("Layer.PropagateBackwards: node %d: %w", i, err)
		}
	}
	return nil
}

// Activation returns the output of the last PropagateForward, or nil.
func (l *Layer[T]) Activation() *matrix.Matrix[T] {
	return l.activation
}

// Nodes returns the layer's nodes.
func (l *Layer[T]) Nodes() []*Node[T] {
	return l.nodes
}

// InputSize returns the input width shared by every node.
func (l *Layer[T]) InputSize() int {
	return l.inputSize
}

// Width returns the number of nodes.
func (l *Layer[T]) Width() int {
	return len(l.nodes)
}

// SetLearningRate updates every node.
func (l *Layer[T]) SetLearningRate(lr T) {
	for _, node := range l.nodes {
		node.SetLearningRate(lr)
	}
}

func (l *Layer[T]) widthErr(op string, input *matrix.Matrix[T]) error {
	return fmt.Errorf("Layer.%s: input width %d, want %d: %w",
		op, input.RowLength(), l.inputSize, matrix.ErrShapeMismatch)
}
