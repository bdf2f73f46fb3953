// SPDX-License-Identifier: MIT
// Package: preset
//
// errors.go — sentinel errors for preset loading.

package preset

import "errors"

var (
	// ErrParse indicates malformed YAML or an unknown field.
	ErrParse = errors.New("preset: cannot parse")

	// ErrNoCameras indicates a document without any camera entry.
	ErrNoCameras = errors.New("preset: no cameras")

	// ErrFieldOfView indicates a camera with both or neither of fov_deg/fov_rad.
	ErrFieldOfView = errors.New("preset: exactly one of fov_deg, fov_rad required")

	// ErrExpected indicates an expected matrix that is not 4×4.
	ErrExpected = errors.New("preset: expected matrix must be 4x4")

	// ErrDuplicateName indicates two cameras sharing a name.
	ErrDuplicateName = errors.New("preset: duplicate camera name")
)
