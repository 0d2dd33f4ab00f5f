// Package degindex: weighted and uniform sampling without replacement.
//
// Both samplers share the same skeleton: mark exclusions in the picked
// bitmap, draw k distinct vertices by rejection, then restore the bitmap so
// the next call starts clean. Rejection against the bitmap implements exact
// per-draw renormalization: at every individual draw the selection law is
// proportional-to-degree (or uniform) over the vertices still unmarked.
package degindex

import (
	"fmt"
	"math/rand"
)

// Canonical method names used to prefix sampling errors with context.
const (
	methodSampleByDegree = "SampleByDegree"
	methodSampleUniform  = "SampleUniform"
)

// SampleByDegree draws k distinct vertex ids, excluding every id in exclude,
// with per-draw probability proportional to current degree among the
// remaining eligible vertices. Draws are sequential without replacement.
//
// Degenerate case: if at some draw every still-eligible vertex has degree
// zero, that draw (and all following ones) falls back to uniform selection;
// the first step from a Disconnected starting graph exercises this.
//
// Errors: ErrNeedRandSource (nil rng), ErrBadCount (k < 0), ErrUnknownVertex
// (exclusion out of range), ErrInsufficientTargets (k > eligible vertices).
//
// Complexity: expected O(k) plus rejection overhead; the rejection rate stays
// low while the excluded set holds a small fraction of the total degree mass,
// which is the regime of every attachment model in this module.
func (ix *Index) SampleByDegree(rng *rand.Rand, exclude []int, k int) ([]int, error) {
	return ix.sample(methodSampleByDegree, rng, exclude, k, true)
}

// SampleUniform draws k distinct vertex ids uniformly at random among the
// non-excluded vertices, sequentially without replacement, ignoring degrees
// entirely (random-attachment growth).
//
// Errors: as for SampleByDegree.
// Complexity: expected O(k) plus rejection overhead.
func (ix *Index) SampleUniform(rng *rand.Rand, exclude []int, k int) ([]int, error) {
	return ix.sample(methodSampleUniform, rng, exclude, k, false)
}

// sample is the shared without-replacement engine behind both public methods.
func (ix *Index) sample(method string, rng *rand.Rand, exclude []int, k int, weighted bool) ([]int, error) {
	// 1) Validate inputs before touching the scratch bitmap (fail fast).
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}
	if k < 0 {
		return nil, fmt.Errorf("%s: k=%d: %w", method, k, ErrBadCount)
	}
	for _, v := range exclude {
		if !ix.hasVertex(v) {
			return nil, fmt.Errorf("%s: exclude id %d: %w", method, v, ErrUnknownVertex)
		}
	}

	// 2) Mark exclusions; count them and their degree mass exactly once each
	//    (the exclude slice may legitimately contain repeats).
	n := len(ix.degrees)
	marked := 0    // vertices currently unavailable (excluded or already drawn)
	excludedW := 0 // degree mass held by excluded vertices
	for _, v := range exclude {
		if !ix.picked[v] {
			ix.picked[v] = true
			marked++
			excludedW += ix.degrees[v]
		}
	}

	// The bitmap must be restored on every exit path below.
	out := make([]int, 0, k)
	defer func() {
		for _, v := range exclude {
			ix.picked[v] = false
		}
		for _, v := range out {
			ix.picked[v] = false
		}
	}()

	// 3) Eligibility gate: drawing more distinct vertices than exist is a
	//    contract breach, surfaced before any randomness is consumed.
	eligible := n - marked
	if k > eligible {
		return nil, fmt.Errorf("%s: k=%d > eligible=%d: %w", method, k, eligible, ErrInsufficientTargets)
	}

	// remainingW is the degree mass still drawable; it shrinks as picks land.
	remainingW := len(ix.stubs) - excludedW

	// 4) Draw k distinct vertices; each draw renormalizes implicitly because
	//    rejection re-rolls until an unmarked vertex is hit.
	for len(out) < k {
		var v int
		if weighted && remainingW > 0 {
			// Degree-weighted draw: uniform arena slot ⇒ P(v) ∝ deg(v).
			for {
				v = ix.stubs[rng.Intn(len(ix.stubs))]
				if !ix.picked[v] {
					break
				}
			}
		} else {
			// Uniform draw: requested (SampleUniform) or zero-mass fallback.
			for {
				v = rng.Intn(n)
				if !ix.picked[v] {
					break
				}
			}
		}

		ix.picked[v] = true
		remainingW -= ix.degrees[v]
		out = append(out, v)
	}

	return out, nil
}
