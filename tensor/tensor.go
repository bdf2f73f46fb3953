// SPDX-License-Identifier: MIT
// Package: tensor
//
// tensor.go — Tensor, a row-major n-d array of float64.
// Storage is a single flat slice; the last axis varies fastest.

package tensor

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/frustum/shape"
)

// Tensor is an n-dimensional array of float64 values.
// shape holds concrete sizes; data holds shape.Size() elements in row-major order.
type Tensor struct {
	shape shape.Shape // concrete, never contains shape.Unknown
	data  []float64   // flat backing storage, len == shape.Size()
}

// New creates a Tensor of shape s holding a copy of data.
// Stage 1 (Validate): s must be concrete and len(data) must equal s.Size().
// Stage 2 (Prepare): copy data so the caller keeps ownership of its slice.
// Complexity: O(n) time and memory.
func New(s shape.Shape, data []float64) (*Tensor, error) {
	if err := shape.ValidateConcrete(s); err != nil {
		return nil, tensorErrorf("New", fmt.Errorf("%w: %w", ErrBadShape, err))
	}
	if len(data) != s.Size() {
		return nil, tensorErrorf("New",
			fmt.Errorf("shape %v wants %d values, got %d: %w", s, s.Size(), len(data), ErrDataLength))
	}
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Tensor{shape: s.Clone(), data: buf}, nil
}

// Zeros creates a zero-filled Tensor of shape s.
func Zeros(s shape.Shape) (*Tensor, error) {
	if err := shape.ValidateConcrete(s); err != nil {
		return nil, tensorErrorf("Zeros", fmt.Errorf("%w: %w", ErrBadShape, err))
	}

	return &Tensor{shape: s.Clone(), data: make([]float64, s.Size())}, nil
}

// Full creates a Tensor of shape s with every element set to v.
func Full(s shape.Shape, v float64) (*Tensor, error) {
	t, err := Zeros(s)
	if err != nil {
		return nil, tensorErrorf("Full", err)
	}
	for i := range t.data {
		t.data[i] = v
	}

	return t, nil
}

// Scalar returns a rank-0 Tensor holding v.
func Scalar(v float64) *Tensor {
	return &Tensor{shape: shape.Shape{}, data: []float64{v}}
}

// Vector returns a rank-1 Tensor holding a copy of vs.
func Vector(vs ...float64) *Tensor {
	buf := make([]float64, len(vs))
	copy(buf, vs)

	return &Tensor{shape: shape.Shape{len(vs)}, data: buf}
}

// Shape returns a copy of the tensor shape.
func (t *Tensor) Shape() shape.Shape {
	return t.shape.Clone()
}

// Rank returns the number of dimensions.
func (t *Tensor) Rank() int {
	return len(t.shape)
}

// Len returns the number of elements.
func (t *Tensor) Len() int {
	return len(t.data)
}

// offset computes the flat index for idx or returns ErrOutOfRange.
// Complexity: O(rank).
func (t *Tensor) offset(method string, idx []int) (int, error) {
	if len(idx) != len(t.shape) {
		return 0, tensorErrorf(method,
			fmt.Errorf("rank %d index for rank %d tensor: %w", len(idx), len(t.shape), ErrOutOfRange))
	}
	off := 0
	for axis, i := range idx {
		if i < 0 || i >= t.shape[axis] {
			return 0, tensorErrorf(method,
				fmt.Errorf("axis %d index %d not in [0,%d): %w", axis, i, t.shape[axis], ErrOutOfRange))
		}
		off = off*t.shape[axis] + i
	}

	return off, nil
}

// At returns the element at idx. A scalar is read with no indices.
func (t *Tensor) At(idx ...int) (float64, error) {
	off, err := t.offset("At", idx)
	if err != nil {
		return 0, err
	}

	return t.data[off], nil
}

// Set writes v at idx.
func (t *Tensor) Set(v float64, idx ...int) error {
	off, err := t.offset("Set", idx)
	if err != nil {
		return err
	}
	t.data[off] = v

	return nil
}

// Data returns a copy of the flat row-major storage.
func (t *Tensor) Data() []float64 {
	out := make([]float64, len(t.data))
	copy(out, t.data)

	return out
}

// Clone returns a deep copy.
// Complexity: O(n) time and memory.
func (t *Tensor) Clone() *Tensor {
	return &Tensor{shape: t.shape.Clone(), data: t.Data()}
}

// AllFinite reports whether no element is NaN or ±Inf.
func (t *Tensor) AllFinite() bool {
	for _, v := range t.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// String renders shape and values for debugging, e.g. "(2,)[1, 2]".
// Complexity: O(n).
func (t *Tensor) String() string {
	var sb strings.Builder
	sb.WriteString(t.shape.String())
	sb.WriteByte('[')
	for i, v := range t.data {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", v)
	}
	sb.WriteByte(']')

	return sb.String()
}
