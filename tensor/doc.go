// Package tensor provides a small n-dimensional float64 array with flat
// row-major storage and NumPy-style broadcasting restricted to the rules of
// package shape.
//
// It is the input and output currency of the perspective builder: each
// camera parameter is a Tensor whose dimensions are all batch dimensions,
// and a batch of projection matrices exports as a Tensor of shape [..., 4, 4].
//
// Tensors are values in practice: the builder never mutates its inputs, and
// Data returns a copy. Set exists for callers assembling inputs by hand.
//
// Complexity:
//
//	At/Set are O(rank); BroadcastTo and SumTo are O(|dst|·rank).
package tensor
