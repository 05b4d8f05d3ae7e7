// Copyright 2026 EscalatorNet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a fully-connected feed-forward network trained by
// full-batch backpropagation.
//
// # Overview
//
// This package contains:
//   - Network: chained layers, accumulated examples and the training loop
//   - Layer and Node: the building blocks a Network is made of
//   - Activations: Sigmoid, ReLU, LeakyReLU, Softplus
//   - HyperParameters: convergence_threshold, iteration_max, learning_rate
//
// # Basic Usage
//
//	import (
//	    "github.com/antikrem/EscalatorNet/matrix"
//	    "github.com/antikrem/EscalatorNet/nn"
//	)
//
//	func main() {
//	    net, err := nn.NewNetwork[float64](nn.Config{
//	        InputWidth:  2,
//	        Activation:  nn.Sigmoid,
//	        LayerWidths: []int{2, 1},
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    inputs, _ := matrix.FromRows([][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}})
//	    outputs, _ := matrix.FromRows([][]float64{{0}, {1}, {1}, {0}})
//	    _ = net.AddExample(inputs, outputs)
//
//	    if err := net.Train(true); err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(net.Summary())
//	}
//
// # Training
//
// Train repeats forward pass, cost and backward pass over every example
// until the squared error drops to convergence_threshold or iteration_max
// iterations have run. Running out of iterations is not an error; check
// Converged afterwards.
//
// Parameter updates computed by a backward pass are applied at the start of
// the following forward pass. Predict never applies them.
//
// # Reproducibility
//
// Initial weights come from the Source in Config. Two networks built from
// sources with the same seed start identical:
//
//	net, _ := nn.NewNetwork[float64](nn.Config{
//	    InputWidth:  2,
//	    Activation:  nn.ReLU,
//	    LayerWidths: []int{1},
//	    Source:      nn.NewSource(42),
//	})
package nn
