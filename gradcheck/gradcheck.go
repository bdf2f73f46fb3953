// SPDX-License-Identifier: MIT
// Package: gradcheck
//
// gradcheck.go — central differences and jacobian comparison.

package gradcheck

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
)

// Defaults tuned for float64 functions with O(1)–O(10⁴) magnitudes.
const (
	DefaultStep      = 1e-6
	DefaultTolerance = 1e-4
)

// Func maps a flat parameter vector to a flat output vector.
type Func func(x []float64) ([]float64, error)

// Numeric estimates J[out][in] = ∂f_out/∂x_in with central differences.
// Stage 1 (Validate): non-empty x, finite positive step, f(x) succeeds with
// at least one output.
// Stage 2 (Execute): fd.Jacobian with the central formula over u, where
// f is evaluated at x + scale⊙u and scale[i] = max(1, |x[i]|). Input i is
// thus perturbed by step·max(1, |x[i]|); columns are divided back by scale.
// Errors from f are returned wrapped; NaN/Inf derivatives yield ErrNonFinite.
// Complexity: 2·len(x)+1 evaluations of f.
func Numeric(f Func, x []float64, step float64) ([][]float64, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("Numeric: %w", ErrEmptyInput)
	}
	if !(step > 0) || math.IsInf(step, 1) {
		return nil, fmt.Errorf("Numeric: step %g: %w", step, ErrBadStep)
	}

	y0, err := f(x)
	if err != nil {
		return nil, fmt.Errorf("Numeric: f(x): %w", err)
	}
	if len(y0) == 0 {
		return nil, fmt.Errorf("Numeric: f(x) has no outputs: %w", ErrEmptyInput)
	}

	scale := make([]float64, len(x))
	for i, v := range x {
		scale[i] = math.Max(1, math.Abs(v))
	}

	// fd.Jacobian cannot carry an error out of f; keep the first one.
	var ferr error
	xs := make([]float64, len(x))
	shifted := func(y, u []float64) {
		if ferr != nil {
			return
		}
		in := -1
		for i := range xs {
			xs[i] = x[i] + scale[i]*u[i]
			if u[i] != 0 {
				in = i
			}
		}
		out, err := f(xs)
		switch {
		case err != nil:
			ferr = fmt.Errorf("f(x) perturbed at input %d: %w", in, err)
		case len(out) != len(y):
			ferr = fmt.Errorf("output size changed at input %d: %w", in, ErrSizeMismatch)
		default:
			copy(y, out)
		}
	}

	jac := mat.NewDense(len(y0), len(x), nil)
	fd.Jacobian(jac, shifted, make([]float64, len(x)), &fd.JacobianSettings{
		Formula:     fd.Central,
		OriginValue: y0,
		Step:        step,
	})
	if ferr != nil {
		return nil, fmt.Errorf("Numeric: %w", ferr)
	}

	out := make([][]float64, len(y0))
	for o := range out {
		out[o] = make([]float64, len(x))
		for i := range x {
			d := jac.At(o, i) / scale[i]
			if math.IsNaN(d) || math.IsInf(d, 0) {
				return nil, fmt.Errorf("Numeric: output %d input %d: %w", o, i, ErrNonFinite)
			}
			out[o][i] = d
		}
	}

	return out, nil
}

// Compare checks |a - n| ≤ tol·max(1, |a|, |n|) entry by entry and reports
// the first violation in (out, in) order.
func Compare(analytic, numeric [][]float64, tol float64) error {
	if !(tol > 0) || math.IsInf(tol, 1) {
		return fmt.Errorf("Compare: tolerance %g: %w", tol, ErrBadStep)
	}
	if len(analytic) != len(numeric) {
		return fmt.Errorf("Compare: %d vs %d outputs: %w", len(analytic), len(numeric), ErrSizeMismatch)
	}
	for o := range analytic {
		if len(analytic[o]) != len(numeric[o]) {
			return fmt.Errorf("Compare: output %d has %d vs %d inputs: %w",
				o, len(analytic[o]), len(numeric[o]), ErrSizeMismatch)
		}
		for i, a := range analytic[o] {
			n := numeric[o][i]
			if math.IsNaN(a) || math.IsInf(a, 0) {
				return fmt.Errorf("Compare: analytic[%d][%d]=%g: %w", o, i, a, ErrNonFinite)
			}
			scale := math.Max(1, math.Max(math.Abs(a), math.Abs(n)))
			if math.Abs(a-n) > tol*scale {
				return fmt.Errorf("Compare: [%d][%d] analytic=%g numeric=%g: %w", o, i, a, n, ErrMismatch)
			}
		}
	}

	return nil
}

// Check runs Numeric then Compare.
func Check(f Func, x []float64, analytic [][]float64, step, tol float64) error {
	num, err := Numeric(f, x, step)
	if err != nil {
		return fmt.Errorf("Check: %w", err)
	}
	if err := Compare(analytic, num, tol); err != nil {
		return fmt.Errorf("Check: %w", err)
	}

	return nil
}
