package nn

import (
	"fmt"
	"sort"
	"strings"
)

// Recognized hyperparameter keys.
const (
	ConvergenceThreshold = "convergence_threshold"
	IterationMax         = "iteration_max"
	LearningRate         = "learning_rate"
)

// HyperParameters is a named-key-to-scalar store read by Network.Train.
//
// Unrecognized keys may be stored freely; nothing reads them.
type HyperParameters struct {
	values map[string]float64
}

// NewHyperParameters returns a store holding the defaults:
// convergence_threshold=0.01, iteration_max=3e6, learning_rate=1.0.
func NewHyperParameters() *HyperParameters {
	return &HyperParameters{values: map[string]float64{
		ConvergenceThreshold: 0.01,
		IterationMax:         3e6,
		LearningRate:         1.0,
	}}
}

// Set writes a parameter, overwriting any existing value.
func (h *HyperParameters) Set(name string, value float64) {
	h.values[name] = value
}

// Get returns the parameter, or 0 when it was never set.
func (h *HyperParameters) Get(name string) float64 {
	return h.values[name]
}

// Lookup returns the parameter and whether it is present.
func (h *HyperParameters) Lookup(name string) (float64, bool) {
	v, ok := h.values[name]
	return v, ok
}

// Keys returns every stored key in sorted order.
func (h *HyperParameters) Keys() []string {
	keys := make([]string, 0, len(h.values))
	for k := range h.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String renders key=value pairs in key order.
func (h *HyperParameters) String() string {
	parts := make([]string, 0, len(h.values))
	for _, k := range h.Keys() {
		parts = append(parts, fmt.Sprintf("%s=%g", k, h.values[k]))
	}
	return strings.Join(parts, " ")
}
