// SPDX-License-Identifier: MIT
// Package: shape
//
// broadcast.go — broadcast-shape inference and index mapping.
//
// Implementation notes:
//   - Broadcast is the single source of truth for batch compatibility; the
//     perspective builder uses it for validation AND for sizing its output.
//   - Offsets turns a (src → dst) broadcast into a flat index table so that
//     materialisation and gradient reduction share one mapping.

package shape

import "fmt"

// Broadcast returns the common shape of all inputs.
//
// Rules:
//   - Scalars (rank 0) combine with anything.
//   - Non-scalar shapes must all have the same rank.
//   - Per axis, every size must equal the others, be 1, or be Unknown.
//     The result holds the concrete size when one exists, else 1 when all
//     sizes are 1, else Unknown.
//
// Errors: ErrBadShape for negative sizes, ErrShapeMismatch otherwise.
// Complexity: O(k·rank) for k shapes.
func Broadcast(shapes ...Shape) (Shape, error) {
	rank := -1
	for i, s := range shapes {
		if err := Validate(s); err != nil {
			return nil, shapeErrorf("Broadcast", err)
		}
		if s.IsScalar() {
			continue
		}
		if rank == -1 {
			rank = len(s)
			continue
		}
		if len(s) != rank {
			return nil, shapeErrorf("Broadcast",
				fmt.Errorf("input %d %v has rank %d, want %d: %w", i, s, len(s), rank, ErrShapeMismatch))
		}
	}
	if rank == -1 {
		return Shape{}, nil // all scalars
	}

	out := make(Shape, rank)
	for axis := 0; axis < rank; axis++ {
		size, sawOne := Unknown, false
		for i, s := range shapes {
			if s.IsScalar() {
				continue
			}
			d := s[axis]
			switch {
			case d == Unknown:
				// matches anything
			case d == 1:
				sawOne = true
			case size == Unknown:
				size = d
			case size != d:
				return nil, shapeErrorf("Broadcast",
					fmt.Errorf("input %d %v axis %d size %d, want %d: %w", i, s, axis, d, size, ErrShapeMismatch))
			}
		}
		if size == Unknown && sawOne && !hasUnknown(shapes, axis) {
			size = 1
		}
		out[axis] = size
	}

	return out, nil
}

// hasUnknown reports whether any non-scalar shape is Unknown at axis.
func hasUnknown(shapes []Shape, axis int) bool {
	for _, s := range shapes {
		if !s.IsScalar() && s[axis] == Unknown {
			return true
		}
	}

	return false
}

// Offsets maps every flat row-major index of dst to the flat index of src
// it reads from under broadcasting. Both shapes must be concrete and src
// must broadcast to dst (scalar, or same rank with each axis equal or 1).
//
// Example: Offsets((2,1), (2,3)) == [0 0 0 1 1 1].
// Complexity: O(|dst|·rank) time, O(|dst|) space.
func Offsets(src, dst Shape) ([]int, error) {
	if err := ValidateConcrete(src); err != nil {
		return nil, shapeErrorf("Offsets", err)
	}
	if err := ValidateConcrete(dst); err != nil {
		return nil, shapeErrorf("Offsets", err)
	}
	n := dst.Size()
	out := make([]int, n)
	if src.IsScalar() {
		return out, nil // every element reads index 0
	}
	if len(src) != len(dst) {
		return nil, shapeErrorf("Offsets",
			fmt.Errorf("%v to %v: %w", src, dst, ErrShapeMismatch))
	}

	// Effective source strides: 0 on stretched axes.
	srcStrides := src.Strides()
	eff := make([]int, len(src))
	for i := range src {
		switch src[i] {
		case dst[i]:
			eff[i] = srcStrides[i]
		case 1:
			eff[i] = 0
		default:
			return nil, shapeErrorf("Offsets",
				fmt.Errorf("%v to %v axis %d: %w", src, dst, i, ErrShapeMismatch))
		}
	}

	// Odometer walk over dst in row-major order.
	idx := make([]int, len(dst))
	off := 0
	for k := 0; k < n; k++ {
		out[k] = off
		for axis := len(dst) - 1; axis >= 0; axis-- {
			idx[axis]++
			off += eff[axis]
			if idx[axis] < dst[axis] {
				break
			}
			off -= eff[axis] * idx[axis]
			idx[axis] = 0
		}
	}

	return out, nil
}
