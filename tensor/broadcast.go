// SPDX-License-Identifier: MIT
// Package: tensor
//
// broadcast.go — broadcasting kernels built on shape.Offsets.
//
// BroadcastTo (forward) and SumTo (its adjoint) read the same offset table,
// so a value stretched along an axis in the forward pass receives the sum of
// the gradients of all its copies in the backward pass.

package tensor

import (
	"fmt"

	"github.com/katalvlaran/frustum/shape"
)

// BroadcastShape returns the common shape of ts under shape.Broadcast.
// Errors: ErrNilTensor for a nil element, shape.ErrShapeMismatch on disagreement.
func BroadcastShape(ts ...*Tensor) (shape.Shape, error) {
	shapes := make([]shape.Shape, len(ts))
	for i, t := range ts {
		if t == nil {
			return nil, fmt.Errorf("BroadcastShape: input %d: %w", i, ErrNilTensor)
		}
		shapes[i] = t.shape
	}
	out, err := shape.Broadcast(shapes...)
	if err != nil {
		return nil, fmt.Errorf("BroadcastShape: %w", err)
	}

	return out, nil
}

// BroadcastTo materialises t stretched to shape s.
// Complexity: O(|s|·rank) time, O(|s|) memory.
func (t *Tensor) BroadcastTo(s shape.Shape) (*Tensor, error) {
	offs, err := shape.Offsets(t.shape, s)
	if err != nil {
		return nil, tensorErrorf("BroadcastTo", err)
	}
	out := &Tensor{shape: s.Clone(), data: make([]float64, len(offs))}
	for k, off := range offs {
		out.data[k] = t.data[off]
	}

	return out, nil
}

// SumTo reduces t to shape s by summing over every axis that s stretches.
// It is the adjoint of BroadcastTo: s must broadcast to t.Shape().
// Complexity: O(|t|·rank) time, O(|s|) memory.
func (t *Tensor) SumTo(s shape.Shape) (*Tensor, error) {
	offs, err := shape.Offsets(s, t.shape)
	if err != nil {
		return nil, tensorErrorf("SumTo", err)
	}
	out := &Tensor{shape: s.Clone(), data: make([]float64, s.Size())}
	for k, off := range offs {
		out.data[off] += t.data[k]
	}

	return out, nil
}
