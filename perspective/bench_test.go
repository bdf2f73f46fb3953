package perspective_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/frustum/perspective"
	"github.com/katalvlaran/frustum/shape"
	"github.com/katalvlaran/frustum/tensor"
)

var benchSizes = []int{1, 64, 4096, 65536}

// sinks to defeat dead-code elimination
var (
	sinkB *perspective.Batch
	sinkG perspective.Gradients
	sinkM perspective.Matrix
)

func benchInputs(b *testing.B, n int) [4]*tensor.Tensor {
	b.Helper()
	rng := rand.New(rand.NewSource(1337))
	fov, aspect, near, far := make([]float64, n), make([]float64, n), make([]float64, n), make([]float64, n)
	for k := 0; k < n; k++ {
		fov[k] = 0.1 + 2.9*rng.Float64()
		aspect[k] = 0.5 + 2*rng.Float64()
		near[k] = 0.01 + rng.Float64()
		far[k] = near[k] + 1 + 100*rng.Float64()
	}
	s := shape.Shape{n}
	var out [4]*tensor.Tensor
	for i, d := range [][]float64{fov, aspect, near, far} {
		t, err := tensor.New(s, d)
		if err != nil {
			b.Fatal(err)
		}
		out[i] = t
	}

	return out
}

func BenchmarkRightHanded(b *testing.B) {
	b.ReportAllocs()
	p := perspective.Params{VerticalFOV: 1, AspectRatio: 1.5, Near: 0.1, Far: 100}
	for i := 0; i < b.N; i++ {
		m, err := perspective.RightHanded(p)
		if err != nil {
			b.Fatal(err)
		}
		sinkM = m
	}
}

func BenchmarkRightHandedBatch(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		for _, workers := range []int{1, 4} {
			b.Run(fmt.Sprintf("n=%d/workers=%d", n, workers), func(b *testing.B) {
				in := benchInputs(b, n)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					batch, err := perspective.RightHandedBatch(in[0], in[1], in[2], in[3],
						perspective.WithWorkers(workers))
					if err != nil {
						b.Fatal(err)
					}
					sinkB = batch
				}
			})
		}
	}
}

func BenchmarkBackward(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			in := benchInputs(b, n)
			up, err := perspective.RightHandedBatch(in[0], in[1], in[2], in[3])
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				g, err := perspective.Backward(in[0], in[1], in[2], in[3], up)
				if err != nil {
					b.Fatal(err)
				}
				sinkG = g
			}
		})
	}
}
