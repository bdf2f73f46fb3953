// SPDX-License-Identifier: MIT
// Package: perspective
//
// perspective.go — right-handed perspective matrix construction.
//
// Pipeline (RightHandedBatch):
//  1. Nil guard on all four inputs.
//  2. shape.Broadcast over the four shapes (validation AND output sizing).
//  3. Materialise each input at the broadcast shape.
//  4. Per chunk: validate every element, assemble its matrix, reject
//     entries that overflowed.
//  5. Report the lowest-index violation, or return the full Batch.
//
// Determinism: the result never depends on WithWorkers/WithChunkSize, and
// the reported error is always the first violation in row-major order.

package perspective

import (
	"fmt"
	"math"

	"github.com/katalvlaran/frustum/shape"
	"github.com/katalvlaran/frustum/tensor"
	"golang.org/x/sync/errgroup"
)

// RightHanded builds the projection matrix of one camera.
// Errors: ErrInvalidArgument if p violates its domain.
// Complexity: O(1).
func RightHanded(p Params) (Matrix, error) {
	m, err := build(p)
	if err != nil {
		Logger().Debug("perspective: rejected input", "err", err)
		return Matrix{}, perspectiveErrorf("RightHanded", err)
	}

	return m, nil
}

// RightHandedBatch builds one projection matrix per element of the common
// batch shape of its inputs. Scalars (rank-0 tensors) broadcast to any shape.
//
// Errors:
//   - ErrNilInput        if any tensor is nil;
//   - ErrShapeMismatch   if the shapes cannot be broadcast together;
//   - ErrInvalidArgument if any element violates its domain (the error names
//     the parameter, the batch index and the value).
//
// Complexity: O(n·rank) time and O(n) memory for n batch elements.
func RightHandedBatch(fov, aspect, near, far *tensor.Tensor, opts ...Option) (*Batch, error) {
	o := newOptions(opts...)
	in, err := prepare(fov, aspect, near, far)
	if err != nil {
		Logger().Debug("perspective: rejected input", "err", err)
		return nil, perspectiveErrorf("RightHandedBatch", err)
	}

	mats := make([]Matrix, in.len())
	err = runChunks(in.len(), o, func(lo, hi int) error {
		for k := lo; k < hi; k++ {
			m, err := build(in.at(k))
			if err != nil {
				return fmt.Errorf("batch index %v: %w", unravel(k, in.shape), err)
			}
			mats[k] = m
		}
		return nil
	})
	if err != nil {
		Logger().Debug("perspective: rejected input", "err", err)
		return nil, perspectiveErrorf("RightHandedBatch", err)
	}

	return &Batch{shape: in.shape, mats: mats}, nil
}

// build validates p, assembles its matrix and rejects unrepresentable entries.
func build(p Params) (Matrix, error) {
	if err := ValidateParams(p); err != nil {
		return Matrix{}, err
	}
	m := assemble(p)
	if err := validateMatrix(p, &m); err != nil {
		return Matrix{}, err
	}

	return m, nil
}

// assemble evaluates the closed-form matrix for valid p.
// It uses only tan, multiplication, division and subtraction and never
// branches on values, so it is differentiable everywhere in the domain.
func assemble(p Params) Matrix {
	f := 1 / math.Tan(p.VerticalFOV*0.5) // cot(fov/2)
	nf := p.Near - p.Far

	var m Matrix
	m[0][0] = f / p.AspectRatio
	m[1][1] = f
	m[2][2] = (p.Far + p.Near) / nf
	m[2][3] = (2 * p.Far * p.Near) / nf
	m[3][2] = -1

	return m
}

// inputs holds the four parameters materialised at the broadcast shape.
type inputs struct {
	shape                  shape.Shape
	fov, aspect, near, far []float64
}

func (in *inputs) len() int { return len(in.fov) }

func (in *inputs) at(k int) Params {
	return Params{VerticalFOV: in.fov[k], AspectRatio: in.aspect[k], Near: in.near[k], Far: in.far[k]}
}

// prepare runs the nil and shape guards and broadcasts all inputs.
func prepare(fov, aspect, near, far *tensor.Tensor) (*inputs, error) {
	names := [4]string{paramFOV, paramAspect, paramNear, paramFar}
	ts := [4]*tensor.Tensor{fov, aspect, near, far}
	for i, t := range ts {
		if t == nil {
			return nil, fmt.Errorf("%s: %w", names[i], ErrNilInput)
		}
	}

	out, err := tensor.BroadcastShape(fov, aspect, near, far)
	if err != nil {
		return nil, err
	}

	var flat [4][]float64
	for i, t := range ts {
		b, err := t.BroadcastTo(out)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", names[i], err)
		}
		flat[i] = b.Data()
	}

	return &inputs{shape: out, fov: flat[0], aspect: flat[1], near: flat[2], far: flat[3]}, nil
}

// runChunks calls fn over [0,n) split into chunks. With one worker, or when
// n fits in one chunk, it runs inline. Otherwise chunks run on an errgroup
// limited to o.workers goroutines. Every chunk runs to completion and the
// error of the lowest failing chunk is returned, so results stay deterministic.
func runChunks(n int, o options, fn func(lo, hi int) error) error {
	if o.workers <= 1 || n <= o.chunkSize {
		return fn(0, n)
	}

	chunks := (n + o.chunkSize - 1) / o.chunkSize
	Logger().Debug("perspective: parallel evaluation",
		"elements", n, "chunks", chunks, "workers", o.workers)

	errs := make([]error, chunks)
	var g errgroup.Group
	g.SetLimit(o.workers)
	for c := 0; c < chunks; c++ {
		lo := c * o.chunkSize
		hi := min(lo+o.chunkSize, n)
		g.Go(func() error {
			errs[c] = fn(lo, hi)
			return errs[c]
		})
	}
	_ = g.Wait() // first-in-time error; we want first-in-order below

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

// unravel converts flat row-major index k into a multi-index of s.
func unravel(k int, s shape.Shape) []int {
	idx := make([]int, len(s))
	for axis := len(s) - 1; axis >= 0; axis-- {
		idx[axis] = k % s[axis]
		k /= s[axis]
	}

	return idx
}
