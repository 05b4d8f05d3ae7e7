package nn

import (
	"fmt"

	"github.com/antikrem/EscalatorNet/internal/activation"
	"github.com/antikrem/EscalatorNet/internal/matrix"
	"github.com/antikrem/EscalatorNet/internal/optim"
	"github.com/antikrem/EscalatorNet/internal/rng"
)

// Node is a single neuron: a weight column, a bias and an activation.
//
// A training cycle is Forward then Backward. Backward never touches the
// parameters; it leaves a pending delta that the next Forward adds before
// computing anything. The cost measured in one iteration therefore always
// belongs to the parameters that produced it.
//
// Shapes, for n examples:
//   - weight: (1, inputSize)
//   - input:  (inputSize, n)
//   - z, a, dadz, dcda: (1, n)
type Node[T matrix.Float] struct {
	inputSize int
	fn        activation.Func[T]
	optimizer optim.Optimizer[T]

	weight *matrix.Matrix[T]
	bias   T

	// Forward-pass cache, overwritten by every Forward.
	input *matrix.Matrix[T]
	z     *matrix.Matrix[T]
	a     *matrix.Matrix[T]
	dadz  *matrix.Matrix[T]

	dcda *matrix.Matrix[T]

	pendingWeight *matrix.Matrix[T]
	pendingBias   T
}

// NewNode creates a node with inputSize weights drawn from U[0, 1) and a
// zero bias.
func NewNode[T matrix.Float](inputSize int, kind activation.Kind, learningRate float64, src *rng.Source) (*Node[T], error) {
	if inputSize <= 0 {
		return nil, fmt.Errorf("NewNode: input size %d: %w", inputSize, ErrInvalidConfig)
	}
	fn, err := activation.Lookup[T](kind)
	if err != nil {
		return nil, fmt.Errorf("NewNode: %w: %w", ErrInvalidConfig, err)
	}
	weight, err := matrix.New[T](1, inputSize, 0)
	if err != nil {
		return nil, fmt.Errorf("NewNode: %w", err)
	}
	rng.FillUniform(src, weight.Data(), 0, 1)

	return &Node[T]{
		inputSize: inputSize,
		fn:        fn,
		optimizer: optim.NewSGD[T](optim.SGDConfig{LR: learningRate}),
		weight:    weight,
	}, nil
}

// Forward applies any pending delta, then computes a = f(X·w + b) for every
// example in input and caches the intermediate values.
//
// Returns a copy of a with shape (1, n).
func (n *Node[T]) Forward(input *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	if input.RowLength() != n.inputSize {
		return nil, n.widthErr("Forward", input)
	}
	if err := n.applyPending(); err != nil {
		return nil, err
	}

	z, err := n.linear(input)
	if err != nil {
		return nil, err
	}

	n.input = input
	n.z = z
	n.dadz = z.Apply(n.fn.Derivative)
	n.a = z.Apply(n.fn.Forward)
	n.dcda = nil

	return n.a.Clone(), nil
}

// Evaluate computes f(X·w + b) with the current parameters.
//
// Unlike Forward it neither applies the pending delta nor touches the cache.
func (n *Node[T]) Evaluate(input *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	if input.RowLength() != n.inputSize {
		return nil, n.widthErr("Evaluate", input)
	}
	z, err := n.linear(input)
	if err != nil {
		return nil, err
	}
	return z.Apply(n.fn.Forward), nil
}

// Backward computes the averaged gradients of the cost with respect to the
// weight and bias from the cached forward pass and the dC/da set through
// SetDCDA, and stores the resulting delta for the next Forward.
//
//	dC/dz = dC/da ⊙ da/dz
//	dC/dw = Xᵀ·dC/dz / n
//	dC/db = Σ dC/dz / n
func (n *Node[T]) Backward() error {
	if n.input == nil {
		return fmt.Errorf("Node.Backward: %w", ErrNoForwardPass)
	}
	if n.dcda == nil {
		return fmt.Errorf("Node.Backward: %w", ErrMissingGradient)
	}
	examples := n.input.ColumnLength()
	if examples == 0 {
		return fmt.Errorf("Node.Backward: %w", ErrNoExamples)
	}

	dcdz, err := n.dcda.MulElem(n.dadz)
	if err != nil {
		return fmt.Errorf("Node.Backward: %w", err)
	}
	gradWeight, err := n.input.Transpose().Mul(dcdz)
	if err != nil {
		return fmt.Errorf("Node.Backward: %w", err)
	}
	inv := 1 / T(examples)

	n.pendingWeight = n.optimizer.Delta(gradWeight.Scale(inv))
	n.pendingBias = n.optimizer.DeltaScalar(dcdz.Sum() * inv)
	return nil
}

// SetDCDA sets the rate of change of the total cost with respect to this
// node's activation, one value per example.
func (n *Node[T]) SetDCDA(dcda *matrix.Matrix[T]) error {
	if n.a == nil {
		return fmt.Errorf("Node.SetDCDA: %w", ErrNoForwardPass)
	}
	if dcda.Shape() != n.a.Shape() {
		return fmt.Errorf("Node.SetDCDA: %w", &matrix.ShapeError{Op: "SetDCDA", Left: n.a.Shape(), Right: dcda.Shape()})
	}
	n.dcda = dcda
	return nil
}

// DCDA returns the dC/da set for the current cycle, or nil.
func (n *Node[T]) DCDA() *matrix.Matrix[T] {
	return n.dcda
}

// DADZ returns da/dz from the last Forward, or nil.
func (n *Node[T]) DADZ() *matrix.Matrix[T] {
	return n.dadz
}

// Activation returns a from the last Forward, or nil.
func (n *Node[T]) Activation() *matrix.Matrix[T] {
	return n.a
}

// WeightComponent returns weight i.
func (n *Node[T]) WeightComponent(i int) (T, error) {
	return n.weight.Get(0, i)
}

// Weight returns a copy of the weight column.
func (n *Node[T]) Weight() *matrix.Matrix[T] {
	return n.weight.Clone()
}

// Bias returns the bias.
func (n *Node[T]) Bias() T {
	return n.bias
}

// InputSize returns the number of weights.
func (n *Node[T]) InputSize() int {
	return n.inputSize
}

// Kind returns the activation kind.
func (n *Node[T]) Kind() activation.Kind {
	return n.fn.Kind
}

// LearningRate returns the learning rate used by Backward.
func (n *Node[T]) LearningRate() T {
	return n.optimizer.GetLR()
}

// SetLearningRate replaces the learning rate used by later Backward calls.
func (n *Node[T]) SetLearningRate(lr T) {
	n.optimizer.SetLR(lr)
}

// HasPendingUpdate reports whether a delta is waiting for the next Forward.
func (n *Node[T]) HasPendingUpdate() bool {
	return n.pendingWeight != nil
}

func (n *Node[T]) applyPending() error {
	if n.pendingWeight == nil {
		return nil
	}
	w, err := n.weight.Add(n.pendingWeight)
	if err != nil {
		return fmt.Errorf("Node.Forward: %w", err)
	}
	n.weight = w
	n.bias += n.pendingBias
	n.pendingWeight = nil
	n.pendingBias = 0
	return nil
}

func (n *Node[T]) linear(input *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	xw, err := input.Mul(n.weight)
	if err != nil {
		return nil, fmt.Errorf("Node: %w", err)
	}
	return xw.AddScalar(n.bias), nil
}

func (n *Node[T]) widthErr(op string, input *matrix.Matrix[T]) error {
	return fmt.Errorf("Node.%s: input width %d, want %d: %w",
		op, input.RowLength(), n.inputSize, matrix.ErrShapeMismatch)
}
