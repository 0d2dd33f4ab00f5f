// Package barabasi: the classic growth + preferential-attachment variant.
//
// Step contract:
//   - Selects m distinct existing vertices with probability proportional to
//     degree (sampling without replacement, per-draw renormalization).
//   - Introduces one new vertex and connects it to every selected target,
//     so the newcomer is born with exactly m edges.
//   - Sampling happens BEFORE the vertex is introduced: the newcomer has no
//     prior degree and cannot be its own target by construction.
//
// Complexity per step: expected O(m); memory O(1) beyond graph growth.
package barabasi

import (
	"fmt"
	"math/rand"
)

const methodGrowthPreferential = "GrowthPreferential.Step"

// growthPreferential implements Model for the classic Barabási–Albert rule.
type growthPreferential struct {
	runState
}

// Step introduces vertex n0+t and wires it to m degree-weighted targets.
func (m *growthPreferential) Step(rng *rand.Rand) error {
	m.t++

	// Draw before the newcomer exists; eligible set = all current vertices.
	// Validate guarantees m.cfg.EdgesPerStep < n0 <= |V|, so the draw cannot
	// run out of targets in a healthy run.
	targets, err := m.ix.SampleByDegree(rng, nil, m.cfg.EdgesPerStep)
	if err != nil {
		return fmt.Errorf("%s: t=%d: %w", methodGrowthPreferential, m.t, err)
	}

	v := m.g.AddVertex()
	m.ix.AddVertex()

	for _, target := range targets {
		if err = m.connect(methodGrowthPreferential, v, target); err != nil {
			return err
		}
	}

	// Evolution bookkeeping: the vertex arriving at a tracked time is
	// followed from this step onward.
	if m.tracked(m.t) {
		m.evo.Track(m.t, v)
	}
	m.evo.Update(m.g)

	return nil
}
