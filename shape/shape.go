// SPDX-License-Identifier: MIT
// Package: shape
//
// shape.go — the Shape type and its basic arithmetic.
//
// Determinism & Performance:
//   - All helpers are pure; Strides and Clone allocate exactly one slice.
//   - Row-major (C order) layout everywhere: the last axis varies fastest.

package shape

import (
	"fmt"
	"strconv"
	"strings"
)

// Unknown marks an unbounded dimension. It matches any size during
// broadcasting and is only legal in declared shapes, never in allocated data.
const Unknown = -1

// Shape is an ordered list of dimension sizes. A nil or empty Shape is a scalar.
type Shape []int

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// IsScalar reports whether s has rank 0.
func (s Shape) IsScalar() bool {
	return len(s) == 0
}

// Size returns the number of elements described by s (1 for scalars).
// A shape that contains Unknown has no definite size; Size returns Unknown.
// Complexity: O(rank).
func (s Shape) Size() int {
	n := 1
	for _, d := range s {
		if d == Unknown {
			return Unknown
		}
		n *= d
	}

	return n
}

// Strides returns row-major strides in elements.
// Strides(Shape{2,3,4}) == [12 4 1].
// Complexity: O(rank).
func (s Shape) Strides() []int {
	st := make([]int, len(s))
	acc := 1
	for i := len(s) - 1; i >= 0; i-- {
		st[i] = acc
		acc *= s[i]
	}

	return st
}

// Equal reports whether a and b have the same rank and sizes.
// Unknown only equals Unknown here; use Broadcast for compatibility checks.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of s.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	copy(out, s)

	return out
}

// String renders s like a tuple: "()", "(3,)", "(?, 2)".
func (s Shape) String() string {
	if len(s) == 0 {
		return "()"
	}
	parts := make([]string, len(s))
	for i, d := range s {
		if d == Unknown {
			parts[i] = "?"
		} else {
			parts[i] = strconv.Itoa(d)
		}
	}
	if len(s) == 1 {
		return "(" + parts[0] + ",)"
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

// Validate checks that every size is ≥ 0 or Unknown.
// Returns a wrapped ErrBadShape naming the first offending axis.
func Validate(s Shape) error {
	for i, d := range s {
		if d < 0 && d != Unknown {
			return shapeErrorf("Validate", fmt.Errorf("axis %d size %d: %w", i, d, ErrBadShape))
		}
	}

	return nil
}

// ValidateConcrete is Validate plus the requirement that no axis is Unknown.
// Use it before allocating storage.
func ValidateConcrete(s Shape) error {
	for i, d := range s {
		if d < 0 {
			return shapeErrorf("ValidateConcrete", fmt.Errorf("axis %d size %d: %w", i, d, ErrBadShape))
		}
	}

	return nil
}
