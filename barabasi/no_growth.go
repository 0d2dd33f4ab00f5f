// Package barabasi: the no-growth + preferential-attachment variant.
//
// The vertex set is frozen at the starting graph; only edges accumulate.
// Each step:
//
//  1. Picks one source vertex u uniformly at random.
//  2. Draws up to m distinct targets preferentially, excluding u itself and
//     every current neighbor of u (no-parallel-edge invariant).
//  3. Connects u to each drawn target.
//
// Degenerate-step policy: when fewer than m eligible targets exist the step
// connects only the eligible ones (possibly zero on a complete graph) and
// still consumes one unit of t.
//
// Complexity per step: expected O(m + deg(u)·log deg(u)) for the exclusion
// snapshot; memory O(deg(u)) transient.
package barabasi

import (
	"fmt"
	"math/rand"
)

const methodNoGrowth = "NoGrowthPreferential.Step"

// noGrowthPreferential implements Model for edge-only preferential growth.
type noGrowthPreferential struct {
	runState
}

// Step wires one uniform source to up to m preferential targets.
func (m *noGrowthPreferential) Step(rng *rand.Rand) error {
	m.t++

	// Saturated graph: every vertex pair is connected, nothing to add.
	// The step still elapses (degenerate-step policy).
	if m.g.IsComplete() {
		m.evo.Update(m.g)

		return nil
	}

	// 1) Uniform source; the vertex count is constant for this variant.
	u := rng.Intn(m.g.VertexCount())

	// The no-growth tracker follows the source chosen at a tracked time,
	// since the model never introduces vertices.
	if m.tracked(m.t) {
		m.evo.Track(m.t, u)
	}

	// 2) Exclude u and its current neighborhood from the draw.
	neighbors, err := m.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("%s: t=%d: Neighbors(%d): %w", methodNoGrowth, m.t, u, err)
	}
	exclude := append(neighbors, u)

	// Degenerate-step clamp: never request more than the eligible count.
	k := m.g.VertexCount() - len(exclude)
	if k > m.cfg.EdgesPerStep {
		k = m.cfg.EdgesPerStep
	}

	targets, err := m.ix.SampleByDegree(rng, exclude, k)
	if err != nil {
		return fmt.Errorf("%s: t=%d: %w", methodNoGrowth, m.t, err)
	}

	// 3) Wire the source to every drawn target.
	for _, target := range targets {
		if err = m.connect(methodNoGrowth, u, target); err != nil {
			return err
		}
	}

	m.evo.Update(m.g)

	return nil
}
