// SPDX-License-Identifier: MIT
// Package: preset
//
// preset.go — YAML camera presets and their conversion to batch tensors.

package preset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/frustum/perspective"
	"github.com/katalvlaran/frustum/tensor"
	"gopkg.in/yaml.v3"
)

// Camera is one named entry of a preset file.
type Camera struct {
	Name     string      `yaml:"name"`
	FOVDeg   *float64    `yaml:"fov_deg,omitempty"`
	FOVRad   *float64    `yaml:"fov_rad,omitempty"`
	Aspect   float64     `yaml:"aspect"`
	Near     float64     `yaml:"near"`
	Far      float64     `yaml:"far"`
	Expected [][]float64 `yaml:"expected,omitempty"`
}

type document struct {
	Cameras []Camera `yaml:"cameras"`
}

// Params resolves the camera into perspective parameters in radians.
func (c Camera) Params() (perspective.Params, error) {
	var fov float64
	switch {
	case c.FOVDeg != nil && c.FOVRad == nil:
		fov = perspective.Radians(*c.FOVDeg)
	case c.FOVRad != nil && c.FOVDeg == nil:
		fov = *c.FOVRad
	default:
		return perspective.Params{}, fmt.Errorf("camera %q: %w", c.Name, ErrFieldOfView)
	}

	return perspective.Params{VerticalFOV: fov, AspectRatio: c.Aspect, Near: c.Near, Far: c.Far}, nil
}

// ExpectedMatrix returns the golden matrix, if the camera has one.
func (c Camera) ExpectedMatrix() (perspective.Matrix, bool, error) {
	var m perspective.Matrix
	if c.Expected == nil {
		return m, false, nil
	}
	if len(c.Expected) != 4 {
		return m, false, fmt.Errorf("camera %q: %d rows: %w", c.Name, len(c.Expected), ErrExpected)
	}
	for i, row := range c.Expected {
		if len(row) != 4 {
			return m, false, fmt.Errorf("camera %q: row %d has %d entries: %w", c.Name, i, len(row), ErrExpected)
		}
		copy(m[i][:], row)
	}

	return m, true, nil
}

// Load decodes a preset document from r. Unknown keys are rejected.
// Every camera must resolve its field of view, carry a well-formed expected
// matrix when present, and have a unique name.
func Load(r io.Reader) ([]Camera, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("Load: empty document: %w", ErrNoCameras)
		}
		return nil, fmt.Errorf("Load: %w: %v", ErrParse, err)
	}
	if len(doc.Cameras) == 0 {
		return nil, fmt.Errorf("Load: %w", ErrNoCameras)
	}

	seen := make(map[string]int, len(doc.Cameras))
	for i, c := range doc.Cameras {
		if j, dup := seen[c.Name]; dup {
			return nil, fmt.Errorf("Load: %q at %d and %d: %w", c.Name, j, i, ErrDuplicateName)
		}
		seen[c.Name] = i
		if _, err := c.Params(); err != nil {
			return nil, fmt.Errorf("Load: %w", err)
		}
		if _, _, err := c.ExpectedMatrix(); err != nil {
			return nil, fmt.Errorf("Load: %w", err)
		}
	}

	return doc.Cameras, nil
}

// Parse is Load over an in-memory document.
func Parse(data []byte) ([]Camera, error) {
	return Load(bytes.NewReader(data))
}

// LoadFile opens path and calls Load.
func LoadFile(path string) ([]Camera, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile: %w", err)
	}
	defer f.Close()

	cams, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("LoadFile %s: %w", path, err)
	}

	return cams, nil
}

// Batch packs cams into four rank-1 tensors of length len(cams), ready for
// perspective.RightHandedBatch.
func Batch(cams []Camera) (fov, aspect, near, far *tensor.Tensor, err error) {
	fs := make([]float64, len(cams))
	as := make([]float64, len(cams))
	ns := make([]float64, len(cams))
	rs := make([]float64, len(cams))
	for i, c := range cams {
		p, err := c.Params()
		if err != nil {
			return nil, nil, nil, nil, fmt.Errorf("Batch: %w", err)
		}
		fs[i], as[i], ns[i], rs[i] = p.VerticalFOV, p.AspectRatio, p.Near, p.Far
	}

	return tensor.Vector(fs...), tensor.Vector(as...), tensor.Vector(ns...), tensor.Vector(rs...), nil
}
