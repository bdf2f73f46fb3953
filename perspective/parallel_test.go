package perspective_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/frustum/perspective"
	"github.com/katalvlaran/frustum/shape"
	"github.com/katalvlaran/frustum/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomCameras returns four tensors of shape s with valid camera values.
func randomCameras(t *testing.T, rng *rand.Rand, s shape.Shape) [4]*tensor.Tensor {
	t.Helper()
	n := s.Size()
	fov, aspect, near, far := make([]float64, n), make([]float64, n), make([]float64, n), make([]float64, n)
	for k := 0; k < n; k++ {
		fov[k] = 0.1 + 2.9*rng.Float64()
		aspect[k] = 0.5 + 2*rng.Float64()
		near[k] = 0.01 + rng.Float64()
		far[k] = near[k] + 1 + 100*rng.Float64()
	}

	return [4]*tensor.Tensor{
		mustTensor(t, s, fov...), mustTensor(t, s, aspect...), mustTensor(t, s, near...), mustTensor(t, s, far...),
	}
}

func TestRightHandedBatch_ParallelMatchesSequential(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(99))
	in := randomCameras(t, rng, shape.Shape{7, 13})

	seq, err := perspective.RightHandedBatch(in[0], in[1], in[2], in[3])
	require.NoError(t, err)

	for _, workers := range []int{2, 3, 8} {
		par, err := perspective.RightHandedBatch(in[0], in[1], in[2], in[3],
			perspective.WithWorkers(workers), perspective.WithChunkSize(10))
		require.NoError(t, err)
		assert.Equal(t, seq.Matrices(), par.Matrices(), "workers=%d", workers)
		assert.True(t, seq.Shape().Equal(par.Shape()))
	}
}

// TestRightHandedBatch_ParallelReportsFirstViolation places two bad
// elements in different chunks and expects the lower one to be reported.
func TestRightHandedBatch_ParallelReportsFirstViolation(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(5))
	in := randomCameras(t, rng, shape.Shape{40})
	near := in[2].Clone()
	require.NoError(t, near.Set(-1, 33))
	require.NoError(t, near.Set(-2, 12))

	for i := 0; i < 10; i++ {
		_, err := perspective.RightHandedBatch(in[0], in[1], near, in[3],
			perspective.WithWorkers(4), perspective.WithChunkSize(4))
		require.ErrorIs(t, err, perspective.ErrInvalidArgument)
		assert.Contains(t, err.Error(), "batch index [12]")
	}
}

// TestRightHandedBatch_Concurrent calls the builder from many goroutines.
func TestRightHandedBatch_Concurrent(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	in := randomCameras(t, rng, shape.Shape{16})
	want, err := perspective.RightHandedBatch(in[0], in[1], in[2], in[3])
	require.NoError(t, err)

	const goroutines = 8
	results := make(chan []perspective.Matrix, goroutines)
	for g := 0; g < goroutines; g++ {
		go func() {
			b, err := perspective.RightHandedBatch(in[0], in[1], in[2], in[3])
			if err != nil {
				results <- nil
				return
			}
			results <- b.Matrices()
		}()
	}
	for g := 0; g < goroutines; g++ {
		assert.Equal(t, want.Matrices(), <-results)
	}
}
