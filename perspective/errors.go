// SPDX-License-Identifier: MIT
// Package: perspective
//
// errors.go — sentinel errors for the perspective builder.
//
// Error policy:
//   - Callers branch with errors.Is; messages are never compared.
//   - Validators attach the parameter name, batch index and offending value
//     with %w, so the sentinel survives any amount of wrapping.
//   - No function returns a partial result together with an error.

package perspective

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/frustum/shape"
)

var (
	// ErrInvalidArgument indicates a value outside its numeric domain:
	// fov ∉ (0, π), aspect ≤ 0, near ≤ 0, far ≤ near, or any NaN/±Inf.
	// It also covers in-domain values whose matrix, partials or gradients
	// would overflow float64.
	ErrInvalidArgument = errors.New("perspective: invalid argument")

	// ErrShapeMismatch indicates inputs whose batch shapes cannot be broadcast
	// together. It is the same value as shape.ErrShapeMismatch.
	ErrShapeMismatch = shape.ErrShapeMismatch

	// ErrNilInput indicates a nil tensor or batch argument.
	ErrNilInput = errors.New("perspective: nil input")
)

// perspectiveErrorf wraps err with the public entry point name.
func perspectiveErrorf(fn string, err error) error {
	return fmt.Errorf("%s: %w", fn, err)
}
