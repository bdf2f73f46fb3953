// SPDX-License-Identifier: MIT
// Package: shape
//
// errors.go — sentinel errors for shape inference.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Context (which shape, which axis) is attached with %w at the call site.

package shape

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a dimension size is negative and not Unknown,
	// or when Unknown appears where concrete sizes are required.
	ErrBadShape = errors.New("shape: invalid shape")

	// ErrShapeMismatch is returned when shapes cannot be broadcast together:
	// ranks differ (and neither is a scalar) or an axis disagrees where
	// neither side is 1 or Unknown.
	ErrShapeMismatch = errors.New("shape: not all batch dimensions are identical")
)

// shapeErrorf wraps err with the calling function tag.
func shapeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
