// Package barabasi: the growth + random-attachment variant.
//
// Identical to GrowthPreferential except that targets are drawn uniformly at
// random over existing vertices, ignoring degree weighting entirely. The
// resulting degree distribution decays exponentially instead of as a power
// law, which is exactly what the variant exists to demonstrate.
//
// Complexity per step: expected O(m); memory O(1) beyond graph growth.
package barabasi

import (
	"fmt"
	"math/rand"
)

const methodGrowthRandom = "GrowthRandom.Step"

// growthRandom implements Model for uniform-attachment growth.
type growthRandom struct {
	runState
}

// Step introduces vertex n0+t and wires it to m uniformly chosen targets.
func (m *growthRandom) Step(rng *rand.Rand) error {
	m.t++

	// Uniform draw over all current vertices, without replacement; the
	// newcomer is not yet part of the index so no exclusion is needed.
	targets, err := m.ix.SampleUniform(rng, nil, m.cfg.EdgesPerStep)
	if err != nil {
		return fmt.Errorf("%s: t=%d: %w", methodGrowthRandom, m.t, err)
	}

	v := m.g.AddVertex()
	m.ix.AddVertex()

	for _, target := range targets {
		if err = m.connect(methodGrowthRandom, v, target); err != nil {
			return err
		}
	}

	if m.tracked(m.t) {
		m.evo.Track(m.t, v)
	}
	m.evo.Update(m.g)

	return nil
}
