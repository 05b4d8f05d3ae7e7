// Package binding exposes networks behind opaque handles so they can be
// driven from outside Go through a narrow create/train/predict call
// sequence on plain nested slices.
package binding

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/antikrem/EscalatorNet/internal/activation"
	"github.com/antikrem/EscalatorNet/internal/matrix"
	"github.com/antikrem/EscalatorNet/internal/nn"
	"github.com/antikrem/EscalatorNet/internal/rng"
)

// ErrUnknownHandle is returned for handles that were never created or
// have been deleted.
var ErrUnknownHandle = errors.New("binding: unknown handle")

// Handle identifies a network owned by a Registry.
type Handle = uuid.UUID

// Registry owns every network created through it. It is safe for
// concurrent use; calls on the same handle are serialized.
type Registry struct {
	mu       sync.Mutex
	networks map[Handle]*entry
	logger   *slog.Logger
	seed     uint64
}

// NewRegistry creates an empty registry. Every network it creates draws its
// weights from a fresh source seeded with seed.
func NewRegistry(seed uint64, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		networks: make(map[Handle]*entry),
		logger:   logger,
		seed:     seed,
	}
}

// Create builds a network and returns its handle.
//
// nodeCounts lists the input width first, then the node count of every
// layer. activationName is one of the names reported by activation.Kinds.
func (r *Registry) Create(nodeCounts []int, activationName string) (Handle, error) {
	if len(nodeCounts) < 2 {
		return uuid.Nil, fmt.Errorf("binding.Create: need an input width and at least one layer, got %v: %w",
			nodeCounts, nn.ErrInvalidConfig)
	}
	kind := activation.Parse(activationName)
	net, err := nn.NewNetwork[float64](nn.Config{
		InputWidth:  nodeCounts[0],
		Activation:  kind,
		LayerWidths: append([]int(nil), nodeCounts[1:]...),
		Source:      rng.New(r.seed),
		Logger:      r.logger,
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("binding.Create: %w", err)
	}

	h := uuid.New()
	r.mu.Lock()
	r.networks[h] = &entry{net: net}
	r.mu.Unlock()

	r.logger.Debug("network created", "handle", h, "nodes", nodeCounts, "activation", kind)
	return h, nil
}

// Delete releases a network. Deleting an unknown handle is an error.
func (r *Registry) Delete(h Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.networks[h]; !ok {
		return fmt.Errorf("binding.Delete: %s: %w", h, ErrUnknownHandle)
	}
	delete(r.networks, h)
	return nil
}

// Len returns the number of live networks.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.networks)
}

// AddExample appends examples to a network. Each inner slice is one example.
func (r *Registry) AddExample(h Handle, inputs, outputs [][]float64) error {
	e, err := r.lookup(h)
	if err != nil {
		return fmt.Errorf("binding.AddExample: %w", err)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	net := e.net
	in, err := matrix.FromRows(inputs)
	if err != nil {
		return fmt.Errorf("binding.AddExample: inputs: %w", err)
	}
	out, err := matrix.FromRows(outputs)
	if err != nil {
		return fmt.Errorf("binding.AddExample: outputs: %w", err)
	}
	if err := net.AddExample(in, out); err != nil {
		return fmt.Errorf("binding.AddExample: %w", err)
	}
	return nil
}

// SetHyperParameter overrides a training hyperparameter.
func (r *Registry) SetHyperParameter(h Handle, name string, value float64) error {
	e, err := r.lookup(h)
	if err != nil {
		return fmt.Errorf("binding.SetHyperParameter: %w", err)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	net := e.net
	net.HyperParameters().Set(name, value)
	return nil
}

// Train trains a network on all of its examples and returns the report.
func (r *Registry) Train(h Handle, verbose bool) (nn.Report, error) {
	e, err := r.lookup(h)
	if err != nil {
		return nn.Report{}, fmt.Errorf("binding.Train: %w", err)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	net := e.net
	if err := net.Train(verbose); err != nil {
		return nn.Report{}, fmt.Errorf("binding.Train: %w", err)
	}
	return net.Report(), nil
}

// Predict evaluates inputs, one inner slice per example, and returns one
// output slice per example.
func (r *Registry) Predict(h Handle, inputs [][]float64) ([][]float64, error) {
	e, err := r.lookup(h)
	if err != nil {
		return nil, fmt.Errorf("binding.Predict: %w", err)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	net := e.net
	in, err := matrix.FromRows(inputs)
	if err != nil {
		return nil, fmt.Errorf("binding.Predict: %w", err)
	}
	pred, err := net.Predict(in)
	if err != nil {
		return nil, fmt.Errorf("binding.Predict: %w", err)
	}

	result := make([][]float64, pred.ColumnLength())
	width := pred.RowLength()
	data := pred.Data()
	for y := range result {
		result[y] = append([]float64(nil), data[y*width:(y+1)*width]...)
	}
	return result, nil
}

// Describe returns a network's parameters and last training report.
func (r *Registry) Describe(h Handle) (string, error) {
	e, err := r.lookup(h)
	if err != nil {
		return "", fmt.Errorf("binding.Describe: %w", err)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	net := e.net
	return net.String(), nil
}

func (r *Registry) lookup(h Handle) (*entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.networks[h]
	if !ok {
		return nil, fmt.Errorf("%s: %w", h, ErrUnknownHandle)
	}
	return e, nil
}

// entry guards one network; Network itself is not safe for concurrent use.
type entry struct {
	mu  sync.Mutex
	net *nn.Network[float64]
}
