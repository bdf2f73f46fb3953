// SPDX-License-Identifier: MIT
// Package: perspective
//
// gradient.go — closed-form derivatives of the projection matrix.
//
// With f = cot(θ/2), f' = ∂f/∂θ = -1 / (2·sin²(θ/2)) and d = near - far:
//
//	entry  expression        ∂/∂θ     ∂/∂aspect   ∂/∂near        ∂/∂far
//	M00    f/aspect          f'/a     -f/a²       0              0
//	M11    f                 f'       0           0              0
//	M22    (far+near)/d      0        0           -2·far/d²      2·near/d²
//	M23    2·far·near/d      0        0           -2·far²/d²     2·near²/d²
//	M32    -1                0        0           0              0
//
// Every other entry is identically zero. All partials are continuous on the
// open domain, so a finite-difference check converges. Points where an entry
// is not representable in float64 are rejected, never returned.

package perspective

import (
	"fmt"
	"math"

	"github.com/katalvlaran/frustum/tensor"
)

var gradNames = [4]string{paramFOV, paramAspect, paramNear, paramFar}

// Jacobian returns ∂M/∂p for every camera parameter p at the point p.
// Errors: ErrInvalidArgument if p violates its domain, or if the matrix or
// one of its partials overflows at p.
// Complexity: O(1).
func Jacobian(p Params) (Partials, error) {
	d, err := differentiate(p)
	if err != nil {
		return Partials{}, perspectiveErrorf("Jacobian", err)
	}

	return d, nil
}

// differentiate is build followed by partials and their finiteness check.
func differentiate(p Params) (Partials, error) {
	if _, err := build(p); err != nil {
		return Partials{}, err
	}
	d := partials(p)
	if err := validatePartials(p, &d); err != nil {
		return Partials{}, err
	}

	return d, nil
}

// vjp contracts up with the structurally nonzero entries of d, in the order
// fov, aspect, near, far. Upstream entries at structurally zero positions
// are never read.
func vjp(up *Matrix, d *Partials) [4]float64 {
	return [4]float64{
		up[0][0]*d.VerticalFOV[0][0] + up[1][1]*d.VerticalFOV[1][1],
		up[0][0] * d.AspectRatio[0][0],
		up[2][2]*d.Near[2][2] + up[2][3]*d.Near[2][3],
		up[2][2]*d.Far[2][2] + up[2][3]*d.Far[2][3],
	}
}

// partials evaluates the table above for valid p.
func partials(p Params) Partials {
	half := p.VerticalFOV * 0.5
	s := math.Sin(half)
	f := 1 / math.Tan(half)
	df := -0.5 / (s * s)
	a := p.AspectRatio
	d := p.Near - p.Far
	d2 := d * d

	var out Partials
	out.VerticalFOV[0][0] = df / a
	out.VerticalFOV[1][1] = df

	out.AspectRatio[0][0] = -f / (a * a)

	out.Near[2][2] = -2 * p.Far / d2
	out.Near[2][3] = -2 * p.Far * p.Far / d2

	out.Far[2][2] = 2 * p.Near / d2
	out.Far[2][3] = 2 * p.Near * p.Near / d2

	return out
}

// Backward computes the reverse-mode gradients of a scalar loss L given the
// upstream gradient ∂L/∂M for every batch element.
//
// For each input x: ∂L/∂x = Σ_k Σ_ij upstream_k[i][j] · ∂M_k[i][j]/∂x_k,
// summed over every batch axis along which x was broadcast, so each
// returned tensor has exactly the shape of its input.
//
// Errors:
//   - ErrNilInput        for a nil tensor or upstream batch;
//   - ErrShapeMismatch   if inputs do not broadcast, or upstream's batch shape
//     differs from the broadcast shape;
//   - ErrInvalidArgument if any element violates its domain, overflows as in
//     Jacobian, or a returned gradient would hold NaN/±Inf (for example from
//     a non-finite upstream).
//
// Complexity: O(n·rank) time, O(n) memory.
func Backward(fov, aspect, near, far *tensor.Tensor, upstream *Batch, opts ...Option) (Gradients, error) {
	if upstream == nil {
		return Gradients{}, perspectiveErrorf("Backward", fmt.Errorf("upstream: %w", ErrNilInput))
	}
	o := newOptions(opts...)
	in, err := prepare(fov, aspect, near, far)
	if err != nil {
		return Gradients{}, perspectiveErrorf("Backward", err)
	}
	if !upstream.shape.Equal(in.shape) {
		return Gradients{}, perspectiveErrorf("Backward",
			fmt.Errorf("upstream shape %v, inputs broadcast to %v: %w", upstream.shape, in.shape, ErrShapeMismatch))
	}

	n := in.len()
	var full [4][]float64
	for i := range full {
		full[i] = make([]float64, n)
	}
	err = runChunks(n, o, func(lo, hi int) error {
		for k := lo; k < hi; k++ {
			jac, err := differentiate(in.at(k))
			if err != nil {
				return fmt.Errorf("batch index %v: %w", unravel(k, in.shape), err)
			}
			g := vjp(&upstream.mats[k], &jac)
			for i := range full {
				full[i][k] = g[i]
			}
		}
		return nil
	})
	if err != nil {
		return Gradients{}, perspectiveErrorf("Backward", err)
	}

	var grads [4]*tensor.Tensor
	for i, x := range [4]*tensor.Tensor{fov, aspect, near, far} {
		g, err := tensor.New(in.shape, full[i])
		if err != nil {
			return Gradients{}, perspectiveErrorf("Backward", err)
		}
		if grads[i], err = g.SumTo(x.Shape()); err != nil {
			return Gradients{}, perspectiveErrorf("Backward", err)
		}
		if !grads[i].AllFinite() {
			return Gradients{}, perspectiveErrorf("Backward",
				fmt.Errorf("%s gradient is not finite: %w", gradNames[i], ErrInvalidArgument))
		}
	}

	return Gradients{VerticalFOV: grads[0], AspectRatio: grads[1], Near: grads[2], Far: grads[3]}, nil
}
