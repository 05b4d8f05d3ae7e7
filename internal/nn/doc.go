// Package nn implements a fully-connected feed-forward network trained by
// backpropagation on the squared-error cost.
//
// The network is built from three levels:
//   - Node: one neuron with a weight column, a bias and an activation
//   - Layer: nodes sharing the same input
//   - Network: chained layers, the accumulated examples and the training loop
//
// Data flows as matrix.Matrix values with one example per row: an input
// batch of n examples has shape (inputWidth, n) and a layer's activation
// has shape (nodes, n).
//
// Parameter updates are deferred. Backward stores a pending delta on each
// node which the next forward pass applies before computing anything.
//
// Example:
//
//	net, _ := nn.NewNetwork[float64](nn.Config{
//	    InputWidth:  2,
//	    Activation:  activation.Sigmoid,
//	    LayerWidths: []int{2, 1},
//	})
//	_ = net.AddExample(inputs, outputs)
//	_ = net.Train(false)
//	pred, _ := net.Predict(inputs)
package nn
