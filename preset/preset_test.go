package preset_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/frustum/perspective"
	"github.com/katalvlaran/frustum/preset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// goldenTol matches the float32-printed expected matrices.
const goldenTol = 1e-5

// TestGolden builds every camera of testdata/presets.yaml in one batch and
// compares against the expected matrices it carries.
func TestGolden(t *testing.T) {
	t.Parallel()

	cams, err := preset.LoadFile(filepath.Join("testdata", "presets.yaml"))
	require.NoError(t, err)
	require.Len(t, cams, 3)
	assert.Equal(t, []string{"wide", "narrow", "square"}, []string{cams[0].Name, cams[1].Name, cams[2].Name})

	fov, aspect, near, far, err := preset.Batch(cams)
	require.NoError(t, err)
	batch, err := perspective.RightHandedBatch(fov, aspect, near, far)
	require.NoError(t, err)
	require.Equal(t, len(cams), batch.Len())

	golden := 0
	for k, c := range cams {
		want, ok, err := c.ExpectedMatrix()
		require.NoError(t, err)
		if !ok {
			continue
		}
		golden++
		got, err := batch.At(k)
		require.NoError(t, err)
		assert.Truef(t, want.AlmostEqual(got, goldenTol), "camera %s\nwant:\n%vgot:\n%v", c.Name, want, got)
	}
	assert.Equal(t, 2, golden)

	// fov 90° and aspect 1 give unit focal scales.
	sq, err := batch.At(2)
	require.NoError(t, err)
	assert.InDelta(t, 1, sq[0][0], 1e-12)
	assert.InDelta(t, 1, sq[1][1], 1e-12)
}

func TestCamera_Params(t *testing.T) {
	t.Parallel()

	deg, rad := 90.0, math.Pi/2

	p, err := preset.Camera{FOVDeg: &deg, Aspect: 2, Near: 1, Far: 3}.Params()
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2, p.VerticalFOV, 1e-15)
	assert.Equal(t, 2.0, p.AspectRatio)

	p, err = preset.Camera{FOVRad: &rad, Aspect: 1, Near: 1, Far: 3}.Params()
	require.NoError(t, err)
	assert.Equal(t, rad, p.VerticalFOV)

	_, err = preset.Camera{Name: "both", FOVDeg: &deg, FOVRad: &rad}.Params()
	assert.ErrorIs(t, err, preset.ErrFieldOfView)
	_, err = preset.Camera{Name: "neither"}.Params()
	assert.ErrorIs(t, err, preset.ErrFieldOfView)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"empty", "", preset.ErrNoCameras},
		{"no cameras", "cameras: []\n", preset.ErrNoCameras},
		{"malformed", "cameras: [\n", preset.ErrParse},
		{"unknown field", "cameras:\n  - name: a\n    fov_deg: 60\n    zoom: 2\n", preset.ErrParse},
		{"wrong type", "cameras:\n  - name: a\n    fov_deg: wide\n", preset.ErrParse},
		{"no fov", "cameras:\n  - name: a\n    aspect: 1\n", preset.ErrFieldOfView},
		{"two fovs", "cameras:\n  - name: a\n    fov_deg: 60\n    fov_rad: 1\n", preset.ErrFieldOfView},
		{"short expected", "cameras:\n  - name: a\n    fov_deg: 60\n    expected: [[1, 0, 0, 0]]\n", preset.ErrExpected},
		{"ragged expected", "cameras:\n  - name: a\n    fov_deg: 60\n    expected: [[1], [0], [0], [0]]\n", preset.ErrExpected},
		{"duplicate", "cameras:\n  - name: a\n    fov_deg: 60\n  - name: a\n    fov_rad: 1\n", preset.ErrDuplicateName},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cams, err := preset.Parse([]byte(tc.doc))
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, cams)
		})
	}
}

// TestBatch_DomainLeftToBuilder loads a camera with near > far; loading
// succeeds and the builder rejects it.
func TestBatch_DomainLeftToBuilder(t *testing.T) {
	t.Parallel()

	cams, err := preset.Load(strings.NewReader("cameras:\n  - name: bad\n    fov_deg: 45\n    aspect: 1\n    near: 5\n    far: 1\n"))
	require.NoError(t, err)

	fov, aspect, near, far, err := preset.Batch(cams)
	require.NoError(t, err)
	_, err = perspective.RightHandedBatch(fov, aspect, near, far)
	assert.ErrorIs(t, err, perspective.ErrInvalidArgument)

	_, _, _, _, err = preset.Batch([]preset.Camera{{Name: "x"}})
	assert.ErrorIs(t, err, preset.ErrFieldOfView)
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := preset.LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
