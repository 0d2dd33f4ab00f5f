// Package simulate: the Run driver and its worker pool.
package simulate

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/katalvlaran/banet/barabasi"
	"github.com/katalvlaran/banet/core"
)

// ErrBadIterations indicates an iteration count below 1.
var ErrBadIterations = errors.New("simulate: iterations must be at least 1")

// minIterations is the smallest meaningful batch size.
const minIterations = 1

// Result is the outcome of one independent iteration.
type Result struct {
	// Iteration is the zero-based index within the batch.
	Iteration int

	// Seed reproduces this iteration in isolation for the same config.
	Seed int64

	// Graph is the final graph after TMax steps, owned by the caller.
	Graph *core.Graph

	// DegreeSequence is Graph.DegreeSequence(), precomputed for downstream
	// statistics and export.
	DegreeSequence []int

	// Evolution is the iteration's vertex-evolution tracker (never nil).
	Evolution *barabasi.VerticesEvolution
}

// Run executes `iterations` independent simulations of cfg and returns one
// Result per iteration, ordered by iteration index.
//
// Fail-fast: cfg.Validate() and the iteration count are checked before any
// work starts; a malformed config yields no partial results. The first
// mid-run step error (an invariant violation) or context cancellation stops
// the batch and is returned alone.
//
// Complexity: O(iterations · TMax · m) expected work, spread over the pool.
func Run(cfg barabasi.ModelConfig, iterations int, opts ...Option) ([]Result, error) {
	// 1) Fail-fast validation before any iteration starts.
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if iterations < minIterations {
		return nil, fmt.Errorf("iterations=%d: %w", iterations, ErrBadIterations)
	}

	o := newRunOptions(opts...)

	// 2) Derive one seed per iteration from the base seed. Doing this
	//    up-front on a single generator keeps iteration i reproducible no
	//    matter which worker executes it.
	master := rand.New(rand.NewSource(o.baseSeed))
	seeds := make([]int64, iterations)
	for i := range seeds {
		seeds[i] = master.Int63()
	}

	// 3) Bounded worker pool; first failure cancels the rest.
	ctx, cancel := context.WithCancel(o.ctx)
	defer cancel()

	workers := o.workers
	if workers > iterations {
		workers = iterations
	}

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	results := make([]Result, iterations)
	jobs := make(chan int)

	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res, err := runOne(ctx, cfg, i, seeds[i])
				if err != nil {
					fail(err)

					return
				}
				results[i] = res
			}
		}()
	}

	// 4) Feed iteration indices until done or cancelled.
feed:
	for i := 0; i < iterations; i++ {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	// The caller's context may have been cancelled without a worker error.
	if err := o.ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// runOne executes a single iteration: fresh model, private RNG, TMax steps
// with a cancellation check per step.
func runOne(ctx context.Context, cfg barabasi.ModelConfig, iteration int, seed int64) (Result, error) {
	model, err := barabasi.New(cfg)
	if err != nil {
		// Config was validated by Run; reaching this is a programming error.
		return Result{}, fmt.Errorf("simulate: iteration %d: %w", iteration, err)
	}

	rng := rand.New(rand.NewSource(seed))
	for t := 1; t <= cfg.TMax; t++ {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		default:
		}
		if err = model.Step(rng); err != nil {
			return Result{}, fmt.Errorf("simulate: iteration %d: %w", iteration, err)
		}
	}

	g := model.Graph()

	return Result{
		Iteration:      iteration,
		Seed:           seed,
		Graph:          g,
		DegreeSequence: g.DegreeSequence(),
		Evolution:      model.Evolution(),
	}, nil
}
