// SPDX-License-Identifier: MIT
// Package: gradcheck
//
// errors.go — sentinel errors for the finite-difference harness.

package gradcheck

import "errors"

var (
	// ErrMismatch indicates an analytic entry that disagrees with its
	// finite-difference estimate beyond the tolerance.
	ErrMismatch = errors.New("gradcheck: analytic and numeric jacobians differ")

	// ErrBadStep indicates a step or tolerance that is not finite and > 0.
	ErrBadStep = errors.New("gradcheck: step and tolerance must be finite and > 0")

	// ErrEmptyInput indicates an empty parameter vector.
	ErrEmptyInput = errors.New("gradcheck: empty input")

	// ErrNonFinite indicates NaN or ±Inf in a function output or a jacobian.
	ErrNonFinite = errors.New("gradcheck: NaN or Inf encountered")

	// ErrSizeMismatch indicates jacobians or outputs of inconsistent size.
	ErrSizeMismatch = errors.New("gradcheck: size mismatch")
)
