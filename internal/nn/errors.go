package nn

import "errors"

// Common errors.
var (
	ErrInvalidConfig   = errors.New("nn: invalid configuration")
	ErrNoExamples      = errors.New("nn: no training examples")
	ErrNoForwardPass   = errors.New("nn: no forward pass has been run")
	ErrMissingGradient = errors.New("nn: dC/da has not been set")
)
