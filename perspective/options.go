// SPDX-License-Identifier: MIT
// Package: perspective
//
// options.go — functional options for RightHandedBatch.
//
// Design:
//   - options is the single source of truth for execution knobs.
//   - Defaults are deterministic and documented below; no globals.
//   - WithX constructors panic on nonsensical values (programmer error);
//     user data never causes a panic.
//   - Options never change the numeric result: parallel and sequential
//     evaluation are bit-identical.

package perspective

// Execution defaults.
const (
	// DefaultWorkers evaluates the batch on the calling goroutine.
	DefaultWorkers = 1

	// DefaultChunkSize is the number of batch elements handed to one worker.
	// Batches no larger than one chunk are always evaluated sequentially.
	DefaultChunkSize = 4096
)

const (
	panicWorkersInvalid   = "perspective: WithWorkers: n must be ≥ 1"
	panicChunkSizeInvalid = "perspective: WithChunkSize: n must be ≥ 1"
)

// Option mutates internal options. Later options override earlier ones.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	workers   int // ≥ 1; DefaultWorkers
	chunkSize int // ≥ 1; DefaultChunkSize
}

// WithWorkers bounds the number of goroutines evaluating chunks of the batch.
// n == 1 disables parallelism. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = n }
}

// WithChunkSize sets how many batch elements one worker evaluates at a time.
// Panics if n < 1.
func WithChunkSize(n int) Option {
	if n < 1 {
		panic(panicChunkSizeInvalid)
	}

	return func(o *options) { o.chunkSize = n }
}

// newOptions applies opts over the defaults in order; nil options are skipped.
// Complexity: O(len(opts)).
func newOptions(opts ...Option) options {
	o := options{
		workers:   DefaultWorkers,
		chunkSize: DefaultChunkSize,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
