// SPDX-License-Identifier: MIT
// Package: tensor
//
// errors.go — sentinel errors for tensor construction and indexing.
// Public indexers return these; nothing in this package panics on user input.

package tensor

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a shape has negative or Unknown sizes.
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrDataLength is returned when len(data) does not match the shape size.
	ErrDataLength = errors.New("tensor: data length does not match shape")

	// ErrOutOfRange indicates an index outside the tensor bounds or of the
	// wrong rank.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrNilTensor indicates a nil *Tensor receiver or argument.
	ErrNilTensor = errors.New("tensor: nil tensor")
)

// tensorErrorf wraps err with the method name, mirroring Dense.<Method> tags.
func tensorErrorf(method string, err error) error {
	return fmt.Errorf("Tensor.%s: %w", method, err)
}
