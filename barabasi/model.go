// Package barabasi: the Model step contract, the New factory and the shared
// run state embedded by all three variants.
package barabasi

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/banet/builder"
	"github.com/katalvlaran/banet/core"
	"github.com/katalvlaran/banet/degindex"
)

// Model is the step contract shared by all attachment variants. One Step call
// advances simulated time by exactly one unit, mutating the run's graph and
// degree index as a side effect.
//
// Implementations never introduce self-loops or parallel edges, and never
// panic; a non-nil Step error means a simulation invariant was violated and
// the run must be abandoned (see simulate).
type Model interface {
	// Step performs one discrete growth step using the injected randomness.
	Step(rng *rand.Rand) error

	// Graph returns the run's live graph. The caller must not mutate it
	// while the run is in progress.
	Graph() *core.Graph

	// Config returns the immutable parameters this model was built from.
	Config() ModelConfig

	// Evolution returns the run's vertex-evolution tracker (never nil).
	Evolution() *VerticesEvolution
}

// New validates cfg, builds the starting graph and its degree index, and
// returns the model variant selected by cfg.Model. Selection happens exactly
// once here; Step implementations are monomorphic.
//
// Errors: ErrInvalidParameter / ErrUnknownGraphType / ErrUnknownModelType
// from validation, or a wrapped builder error.
// Complexity: O(n0²) for a Complete start, O(n0) otherwise.
func New(cfg ModelConfig) (Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ctor, err := constructorFor(cfg.StartingGraph, cfg.InitialVertices)
	if err != nil {
		return nil, err
	}
	g, err := builder.BuildGraph(ctor)
	if err != nil {
		return nil, fmt.Errorf("barabasi: starting graph: %w", err)
	}

	rs := runState{
		cfg: cfg,
		g:   g,
		ix:  degindex.FromGraph(g),
		evo: NewVerticesEvolution(),
	}

	switch cfg.Model {
	case GrowthPreferential:
		return &growthPreferential{runState: rs}, nil
	case GrowthRandom:
		return &growthRandom{runState: rs}, nil
	case NoGrowthPreferential:
		return &noGrowthPreferential{runState: rs}, nil
	default:
		// Unreachable after Validate; kept for defensive completeness.
		return nil, fmt.Errorf("model=%d: %w", uint8(cfg.Model), ErrUnknownModelType)
	}
}

// Generate advances m through its configured TMax steps and returns the final
// graph. Convenience for library users; the simulate driver runs its own
// loop to interleave cancellation checks.
// Complexity: O(TMax · m) expected.
func Generate(m Model, rng *rand.Rand) (*core.Graph, error) {
	for t := 1; t <= m.Config().TMax; t++ {
		if err := m.Step(rng); err != nil {
			return nil, err
		}
	}

	return m.Graph(), nil
}

// constructorFor maps a GraphType to its builder Constructor.
func constructorFor(t GraphType, n int) (builder.Constructor, error) {
	switch t {
	case GraphComplete:
		return builder.Complete(n), nil
	case GraphStar:
		return builder.Star(n), nil
	case GraphDisconnected:
		return builder.Disconnected(n), nil
	default:
		return nil, fmt.Errorf("graphtype(%d): %w", uint8(t), ErrUnknownGraphType)
	}
}

// runState is the mutable state shared by all variants: the graph, its degree
// index, the evolution tracker and the elapsed-time counter.
type runState struct {
	cfg ModelConfig
	g   *core.Graph
	ix  *degindex.Index
	evo *VerticesEvolution
	t   int // elapsed steps; step t runs with this already incremented
}

// Graph returns the run's live graph.
func (s *runState) Graph() *core.Graph { return s.g }

// Config returns the immutable run parameters.
func (s *runState) Config() ModelConfig { return s.cfg }

// Evolution returns the run's vertex-evolution tracker.
func (s *runState) Evolution() *VerticesEvolution { return s.evo }

// tracked reports whether arrival time t is on the tracking list.
func (s *runState) tracked(t int) bool {
	for _, a := range s.cfg.TrackedArrivals {
		if a == t {
			return true
		}
	}

	return false
}

// connect inserts edge v—target into both the graph and the index,
// keeping them in exact sync. Any failure is an invariant breach.
func (s *runState) connect(method string, v, target int) error {
	if err := s.g.AddEdge(v, target); err != nil {
		return fmt.Errorf("%s: AddEdge(%d—%d): %w", method, v, target, err)
	}
	if err := s.ix.RecordEdge(v, target); err != nil {
		return fmt.Errorf("%s: RecordEdge(%d—%d): %w", method, v, target, err)
	}

	return nil
}
