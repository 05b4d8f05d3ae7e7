package optim

import "github.com/antikrem/EscalatorNet/internal/matrix"

// DefaultLR is the learning rate used when SGDConfig.LR is zero.
const DefaultLR = 1.0

// SGD is plain full-batch gradient descent.
//
// Update rule:
//
//	delta = -lr * gradient
type SGD[T matrix.Float] struct {
	lr T
}

// SGDConfig holds configuration for SGD.
type SGDConfig struct {
	LR float64 // Learning rate (default: 1.0)
}

// NewSGD creates a new SGD optimizer.
func NewSGD[T matrix.Float](config SGDConfig) *SGD[T] {
	if config.LR == 0 {
		config.LR = DefaultLR
	}
	return &SGD[T]{lr: T(config.LR)}
}

// Delta returns -lr * grad as a new matrix.
func (s *SGD[T]) Delta(grad *matrix.Matrix[T]) *matrix.Matrix[T] {
	return grad.Scale(-s.lr)
}

// DeltaScalar returns -lr * grad.
func (s *SGD[T]) DeltaScalar(grad T) T {
	return -s.lr * grad
}

// GetLR returns the current learning rate.
func (s *SGD[T]) GetLR() T {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD[T]) SetLR(lr T) {
	s.lr = lr
}
