// SPDX-License-Identifier: MIT
// Package: perspective
//
// types.go — domain types: Params, Matrix, Batch, Partials, Gradients.

package perspective

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/frustum/shape"
	"github.com/katalvlaran/frustum/tensor"
)

// Params holds the camera parameters of a single batch element.
type Params struct {
	VerticalFOV float64 // full vertical field of view, radians, in (0, π)
	AspectRatio float64 // width / height, > 0
	Near        float64 // near plane distance, > 0
	Far         float64 // far plane distance, > Near
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Matrix is a 4×4 projection matrix, row-major: m[row][col].
type Matrix [4][4]float64

// Transpose returns mᵀ.
func (m Matrix) Transpose() Matrix {
	var t Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			t[j][i] = m[i][j]
		}
	}

	return t
}

// Apply multiplies m by the homogeneous point (x, y, z, 1) and returns clip
// coordinates. Divide by the last component for normalized device coordinates.
func (m Matrix) Apply(x, y, z float64) [4]float64 {
	var out [4]float64
	for i := 0; i < 4; i++ {
		out[i] = m[i][0]*x + m[i][1]*y + m[i][2]*z + m[i][3]
	}

	return out
}

// AlmostEqual reports whether every entry differs from o by at most tol.
func (m Matrix) AlmostEqual(o Matrix, tol float64) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if math.Abs(m[i][j]-o[i][j]) > tol {
				return false
			}
		}
	}

	return true
}

// String renders m one row per line.
func (m Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < 4; i++ {
		fmt.Fprintf(&sb, "[%g, %g, %g, %g]\n", m[i][0], m[i][1], m[i][2], m[i][3])
	}

	return sb.String()
}

// Batch holds one Matrix per element of a batch shape, in row-major order.
// A Batch is never mutated after construction.
type Batch struct {
	shape shape.Shape
	mats  []Matrix
}

// NewBatch wraps a copy of mats with batch shape s.
// Errors: shape.ErrBadShape if s is not concrete; ErrShapeMismatch if
// len(mats) != s.Size().
func NewBatch(s shape.Shape, mats []Matrix) (*Batch, error) {
	if err := shape.ValidateConcrete(s); err != nil {
		return nil, perspectiveErrorf("NewBatch", err)
	}
	if len(mats) != s.Size() {
		return nil, perspectiveErrorf("NewBatch",
			fmt.Errorf("shape %v wants %d matrices, got %d: %w", s, s.Size(), len(mats), ErrShapeMismatch))
	}
	buf := make([]Matrix, len(mats))
	copy(buf, mats)

	return &Batch{shape: s.Clone(), mats: buf}, nil
}

// Shape returns a copy of the batch shape (without the trailing 4×4).
func (b *Batch) Shape() shape.Shape {
	return b.shape.Clone()
}

// Len returns the number of matrices.
func (b *Batch) Len() int {
	return len(b.mats)
}

// At returns the matrix at batch index idx. A rank-0 batch is read with no indices.
func (b *Batch) At(idx ...int) (Matrix, error) {
	if len(idx) != len(b.shape) {
		return Matrix{}, perspectiveErrorf("Batch.At",
			fmt.Errorf("rank %d index for rank %d batch: %w", len(idx), len(b.shape), tensor.ErrOutOfRange))
	}
	off := 0
	for axis, i := range idx {
		if i < 0 || i >= b.shape[axis] {
			return Matrix{}, perspectiveErrorf("Batch.At",
				fmt.Errorf("axis %d index %d not in [0,%d): %w", axis, i, b.shape[axis], tensor.ErrOutOfRange))
		}
		off = off*b.shape[axis] + i
	}

	return b.mats[off], nil
}

// Matrices returns a copy of all matrices in row-major batch order.
func (b *Batch) Matrices() []Matrix {
	out := make([]Matrix, len(b.mats))
	copy(out, b.mats)

	return out
}

// Tensor exports the batch as a tensor of shape [batch..., 4, 4].
// Complexity: O(16·Len()).
func (b *Batch) Tensor() (*tensor.Tensor, error) {
	s := append(b.shape.Clone(), 4, 4)
	data := make([]float64, 0, 16*len(b.mats))
	for k := range b.mats {
		for i := 0; i < 4; i++ {
			data = append(data, b.mats[k][i][:]...)
		}
	}
	t, err := tensor.New(s, data)
	if err != nil {
		return nil, perspectiveErrorf("Batch.Tensor", err)
	}

	return t, nil
}

// Partials holds ∂M/∂p for each camera parameter p at one batch element.
type Partials struct {
	VerticalFOV Matrix
	AspectRatio Matrix
	Near        Matrix
	Far         Matrix
}

// Gradients holds the reverse-mode gradients of a scalar loss with respect
// to each input tensor. Every field has the shape of the matching input.
type Gradients struct {
	VerticalFOV *tensor.Tensor
	AspectRatio *tensor.Tensor
	Near        *tensor.Tensor
	Far         *tensor.Tensor
}
