// SPDX-License-Identifier: MIT
// Package: perspective
//
// validators.go — the single source of truth for domain checks.
//
// Every check is an open interval written in the negated form !(lo < v < hi),
// so NaN always fails. ±Inf is rejected everywhere: an infinite far plane
// turns (far+near)/(near-far) into NaN, and the others have no meaning.
// The checks are guards that run before matrix assembly; they are not part
// of the differentiable expression.
//
// An in-domain value can still be unrepresentable: fov = 1e-310 overflows
// cot(fov/2), near·far overflows for very large planes, and sin²(fov/2)
// underflows for fov below ~1e-160. validateMatrix and validatePartials run
// right after assembly and turn any ±Inf or NaN entry into ErrInvalidArgument
// naming the parameter responsible, so no result ever carries one.

package perspective

import (
	"fmt"
	"math"
)

// Parameter names used in error messages.
const (
	paramFOV    = "vertical_field_of_view"
	paramAspect = "aspect_ratio"
	paramNear   = "near"
	paramFar    = "far"
)

// validatorErrorf tags an ErrInvalidArgument with the parameter and value.
func validatorErrorf(param, want string, v float64) error {
	return fmt.Errorf("%s=%g, want %s: %w", param, v, want, ErrInvalidArgument)
}

// ValidateFieldOfView checks 0 < fov < π (radians, both bounds exclusive).
func ValidateFieldOfView(fov float64) error {
	if !(fov > 0 && fov < math.Pi) {
		return validatorErrorf(paramFOV, "in (0, π)", fov)
	}

	return nil
}

// ValidateAspectRatio checks 0 < aspect < +Inf.
func ValidateAspectRatio(aspect float64) error {
	if !(aspect > 0) || math.IsInf(aspect, 1) {
		return validatorErrorf(paramAspect, "finite and > 0", aspect)
	}

	return nil
}

// ValidateNear checks 0 < near < +Inf.
func ValidateNear(near float64) error {
	if !(near > 0) || math.IsInf(near, 1) {
		return validatorErrorf(paramNear, "finite and > 0", near)
	}

	return nil
}

// ValidateFar checks near < far < +Inf. It does not validate near itself.
func ValidateFar(near, far float64) error {
	if !(far > near) || math.IsInf(far, 1) {
		return validatorErrorf(paramFar, fmt.Sprintf("finite and > near (%g)", near), far)
	}

	return nil
}

// ValidateParams – Composite: FieldOfView → AspectRatio → Near → Far.
// Returns the first violation only.
func ValidateParams(p Params) error {
	if err := ValidateFieldOfView(p.VerticalFOV); err != nil {
		return err
	}
	if err := ValidateAspectRatio(p.AspectRatio); err != nil {
		return err
	}
	if err := ValidateNear(p.Near); err != nil {
		return err
	}

	return ValidateFar(p.Near, p.Far)
}

// finite reports whether v is neither NaN nor ±Inf.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// matrixFinite reports whether every entry of m is finite.
func matrixFinite(m *Matrix) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if !finite(m[i][j]) {
				return false
			}
		}
	}

	return true
}

// validateMatrix checks the matrix assembled from an in-domain p.
// M11 depends on fov alone, M00 adds aspect, M22/M23 depend on the planes.
func validateMatrix(p Params, m *Matrix) error {
	switch {
	case !finite(m[1][1]):
		return validatorErrorf(paramFOV, "cot(fov/2) representable", p.VerticalFOV)
	case !finite(m[0][0]):
		return validatorErrorf(paramAspect, "cot(fov/2)/aspect representable", p.AspectRatio)
	case !finite(m[2][2]) || !finite(m[2][3]):
		return validatorErrorf(paramFar, fmt.Sprintf("2·far·near/(near-far) representable with near=%g", p.Near), p.Far)
	}

	return nil
}

// validatePartials checks every partial derivative matrix of an in-domain p.
func validatePartials(p Params, d *Partials) error {
	checks := [4]struct {
		param string
		m     *Matrix
		v     float64
	}{
		{paramFOV, &d.VerticalFOV, p.VerticalFOV},
		{paramAspect, &d.AspectRatio, p.AspectRatio},
		{paramNear, &d.Near, p.Near},
		{paramFar, &d.Far, p.Far},
	}
	for _, c := range checks {
		if !matrixFinite(c.m) {
			return validatorErrorf(c.param, "a representable derivative", c.v)
		}
	}

	return nil
}
