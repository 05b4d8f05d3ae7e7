// Package optim implements the gradient-descent step used by network nodes.
//
// An optimizer never touches parameters directly. It turns an averaged
// gradient into a delta that the owning node keeps pending and adds to its
// parameters at the start of the next forward pass.
//
// Example usage:
//
//	sgd := optim.NewSGD[float64](optim.SGDConfig{LR: 0.5})
//
//	dw := sgd.Delta(gradWeight)   // -0.5 * gradWeight
//	db := sgd.DeltaScalar(gradBias)
package optim

import "github.com/antikrem/EscalatorNet/internal/matrix"

// Optimizer converts gradients into parameter deltas.
type Optimizer[T matrix.Float] interface {
	// Delta returns the update for a matrix-shaped parameter.
	Delta(grad *matrix.Matrix[T]) *matrix.Matrix[T]

	// DeltaScalar returns the update for a scalar parameter.
	DeltaScalar(grad T) T

	// GetLR returns the current learning rate.
	GetLR() T

	// SetLR replaces the learning rate.
	SetLR(lr T)
}

// Config is the configuration shared by all optimizers.
type Config struct {
	LR float64 // Learning rate
}
