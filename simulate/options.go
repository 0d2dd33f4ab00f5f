// Package simulate: functional options for Run.
//
// Option constructors validate and panic on meaningless inputs (programmer
// errors); Run itself never panics.
package simulate

import (
	"context"
	"runtime"
	"time"
)

// Option customizes Run behavior via functional arguments.
type Option func(*runOptions)

// runOptions aggregates the resolved knobs for one Run invocation.
type runOptions struct {
	ctx      context.Context
	workers  int
	baseSeed int64
	seeded   bool // distinguishes an explicit zero seed from the default
}

// newRunOptions applies opts over deterministic defaults.
// The default base seed is wall-clock derived; pass WithBaseSeed for
// reproducible experiments.
func newRunOptions(opts ...Option) runOptions {
	o := runOptions{
		ctx:     context.Background(),
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.seeded {
		o.baseSeed = time.Now().UnixNano()
	}

	return o
}

// WithContext sets a context for cancellation; a cancelled context aborts
// in-flight iterations and Run returns the context error.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("simulate: WithContext(nil)")
	}

	return func(o *runOptions) { o.ctx = ctx }
}

// WithWorkers bounds the parallel worker pool. Panics if w < 1.
// Workers beyond the iteration count are not spawned.
func WithWorkers(w int) Option {
	if w < 1 {
		panic("simulate: WithWorkers(w<1)")
	}

	return func(o *runOptions) { o.workers = w }
}

// WithBaseSeed fixes the seed from which all per-iteration seeds derive,
// making the whole batch reproducible.
func WithBaseSeed(seed int64) Option {
	return func(o *runOptions) {
		o.baseSeed = seed
		o.seeded = true
	}
}
