package nn

import (
	"fmt"

	"github.com/antikrem/EscalatorNet/internal/matrix"
)

// SquaredError returns Σ (predictions - targets)² over every cell.
//
// This is a sum, not a mean: the convergence threshold is compared against
// the total error of the whole batch.
func SquaredError[T matrix.Float](predictions, targets *matrix.Matrix[T]) (T, error) {
	diff, err := predictions.Sub(targets)
	if err != nil {
		return 0, fmt.Errorf("SquaredError: %w", err)
	}
	sq, err := diff.MulElem(diff)
	if err != nil {
		return 0, fmt.Errorf("SquaredError: %w", err)
	}
	return sq.Sum(), nil
}

// SquaredErrorGrad returns dC/da = 2·(predictions - targets).
func SquaredErrorGrad[T matrix.Float](predictions, targets *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	diff, err := predictions.Sub(targets)
	if err != nil {
		return nil, fmt.Errorf("SquaredErrorGrad: %w", err)
	}
	return diff.Scale(2), nil
}
