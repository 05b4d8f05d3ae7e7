// Package activation is the registry of scalar activation functions and their
// analytic derivatives.
//
// The set of kinds is closed: None, Sigmoid, ReLU, LeakyReLU and Softplus.
package activation

import (
	"errors"
	"fmt"
	"math"

	"github.com/chewxy/math32"

	"github.com/antikrem/EscalatorNet/internal/matrix"
)

// ErrUnregistered is returned when a kind has no registered function pair.
var ErrUnregistered = errors.New("activation: kind has no registered function")

// Kind tags an activation function.
type Kind int

// Registered kinds.
const (
	None Kind = iota
	Sigmoid
	ReLU
	LeakyReLU
	Softplus
)

// leak is the LeakyReLU slope for negative inputs.
const leak = 0.1

var names = map[Kind]string{
	None:      "none",
	Sigmoid:   "sigmoid",
	ReLU:      "ReLU",
	LeakyReLU: "LeakyReLU",
	Softplus:  "softplus",
}

// String returns the registered name of the kind.
func (k Kind) String() string {
	if name, ok := names[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Parse returns the kind registered under name, or None.
func Parse(name string) Kind {
	for k, n := range names {
		if n == name {
			return k
		}
	}
	return None
}

// Kinds lists every kind with a registered function pair.
func Kinds() []Kind {
	return []Kind{Sigmoid, ReLU, LeakyReLU, Softplus}
}

// Func is a scalar activation paired with its derivative.
type Func[T matrix.Float] struct {
	Kind       Kind
	Forward    func(T) T
	Derivative func(T) T
}

// Lookup returns the function pair for k.
//
// None and unknown kinds return ErrUnregistered; a network must never be
// built around them.
func Lookup[T matrix.Float](k Kind) (Func[T], error) {
	if k == None {
		return Func[T]{}, fmt.Errorf("Lookup(%v): %w", k, ErrUnregistered)
	}
	var dummy T
	switch any(dummy).(type) {
	case float32:
		pair, ok := registry32[k]
		if !ok {
			return Func[T]{}, fmt.Errorf("Lookup(%v): %w", k, ErrUnregistered)
		}
		return any(Func[float32]{Kind: k, Forward: pair[0], Derivative: pair[1]}).(Func[T]), nil
	default:
		pair, ok := registry64[k]
		if !ok {
			return Func[T]{}, fmt.Errorf("Lookup(%v): %w", k, ErrUnregistered)
		}
		return Func[T]{
			Kind:       k,
			Forward:    func(x T) T { return T(pair[0](float64(x))) },
			Derivative: func(x T) T { return T(pair[1](float64(x))) },
		}, nil
	}
}

// Forward evaluates kind k at x.
func Forward[T matrix.Float](k Kind, x T) (T, error) {
	fn, err := Lookup[T](k)
	if err != nil {
		return 0, err
	}
	return fn.Forward(x), nil
}

// Derivative evaluates the derivative of kind k at x.
func Derivative[T matrix.Float](k Kind, x T) (T, error) {
	fn, err := Lookup[T](k)
	if err != nil {
		return 0, err
	}
	return fn.Derivative(x), nil
}

var registry64 = map[Kind][2]func(float64) float64{
	Sigmoid:   {sigmoid64, func(x float64) float64 { s := sigmoid64(x); return s * (1 - s) }},
	ReLU:      {relu64, reluPrime64},
	LeakyReLU: {leakyReLU64, leakyReLUPrime64},
	Softplus:  {softplus64, sigmoid64},
}

var registry32 = map[Kind][2]func(float32) float32{
	Sigmoid:   {sigmoid32, func(x float32) float32 { s := sigmoid32(x); return s * (1 - s) }},
	ReLU:      {relu32, reluPrime32},
	LeakyReLU: {leakyReLU32, leakyReLUPrime32},
	Softplus:  {softplus32, sigmoid32},
}

func sigmoid64(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

func relu64(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x
}

func reluPrime64(x float64) float64 {
	if x < 0 {
		return 0
	}
	return 1
}

func leakyReLU64(x float64) float64 {
	if x < 0 {
		return leak * x
	}
	return x
}

func leakyReLUPrime64(x float64) float64 {
	if x < 0 {
		return leak
	}
	return 1
}

// softplus64 is ln(1+e^x); past x=30 the correction term is below float64 precision.
func softplus64(x float64) float64 {
	if x > 30 {
		return x
	}
	return math.Log1p(math.Exp(x))
}

func sigmoid32(x float32) float32 {
	return 1 / (1 + math32.Exp(-x))
}

func relu32(x float32) float32 {
	if x < 0 {
		return 0
	}
	return x
}

func reluPrime32(x float32) float32 {
	if x < 0 {
		return 0
	}
	return 1
}

func leakyReLU32(x float32) float32 {
	if x < 0 {
		return leak * x
	}
	return x
}

func leakyReLUPrime32(x float32) float32 {
	if x < 0 {
		return leak
	}
	return 1
}

func softplus32(x float32) float32 {
	if x > 15 {
		return x
	}
	return math32.Log1p(math32.Exp(x))
}
