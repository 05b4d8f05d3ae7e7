// Copyright 2026 EscalatorNet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/antikrem/EscalatorNet/internal/activation"
	"github.com/antikrem/EscalatorNet/internal/matrix"
	"github.com/antikrem/EscalatorNet/internal/nn"
	"github.com/antikrem/EscalatorNet/internal/rng"
)

// Network

// Network is a feed-forward multi-layer perceptron.
type Network[T matrix.Float] = nn.Network[T]

// Config describes the topology and collaborators of a Network.
type Config = nn.Config

// Report holds the diagnostics of one Train call.
type Report = nn.Report

// NewNetwork creates a network from cfg.
//
// Example:
//
//	net, err := nn.NewNetwork[float64](nn.Config{
//	    InputWidth:  16,
//	    Activation:  nn.Sigmoid,
//	    LayerWidths: []int{4, 2},
//	})
func NewNetwork[T matrix.Float](cfg Config) (*Network[T], error) {
	return nn.NewNetwork[T](cfg)
}

// Layers

// Layer is a set of nodes reading the same input.
type Layer[T matrix.Float] = nn.Layer[T]

// Node is a single neuron.
type Node[T matrix.Float] = nn.Node[T]

// Hyperparameters

// HyperParameters is the store read by Network.Train.
type HyperParameters = nn.HyperParameters

// Hyperparameter keys.
const (
	ConvergenceThreshold = nn.ConvergenceThreshold
	IterationMax         = nn.IterationMax
	LearningRate         = nn.LearningRate
)

// Activations

// Activation selects the function applied by every node.
type Activation = activation.Kind

// Activation kinds.
const (
	Sigmoid   = activation.Sigmoid
	ReLU      = activation.ReLU
	LeakyReLU = activation.LeakyReLU
	Softplus  = activation.Softplus
)

// ParseActivation returns the kind with the given name, or an invalid kind
// that NewNetwork rejects.
func ParseActivation(name string) Activation {
	return activation.Parse(name)
}

// Randomness

// Source is the pseudo-random source used to initialize weights.
type Source = rng.Source

// DefaultSeed seeds the source used when Config.Source is nil.
const DefaultSeed = rng.DefaultSeed

// NewSource creates a source seeded with seed.
func NewSource(seed uint64) *Source {
	return rng.New(seed)
}

// Errors

// Errors returned by this package.
var (
	ErrInvalidConfig = nn.ErrInvalidConfig
	ErrNoExamples    = nn.ErrNoExamples
	ErrNoForwardPass = nn.ErrNoForwardPass
)
