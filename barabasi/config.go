// Package barabasi: model configuration, enums and validation.
//
// ModelConfig is immutable for the lifetime of a run; Validate covers every
// InvalidParameter class before any graph is built (fail-fast contract).
package barabasi

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration handling.
var (
	// ErrInvalidParameter indicates a ModelConfig field outside its domain
	// (n0 < 1, m < 1, m >= n0, t_max < 0). Wrapped with field context.
	ErrInvalidParameter = errors.New("barabasi: invalid parameter")

	// ErrUnknownGraphType indicates an unrecognized starting-graph name.
	ErrUnknownGraphType = errors.New("barabasi: unknown starting graph type")

	// ErrUnknownModelType indicates an unrecognized model variant name.
	ErrUnknownModelType = errors.New("barabasi: unknown model type")
)

// GraphType selects the fixed starting topology a run grows from.
type GraphType uint8

const (
	// GraphComplete is K_{n0}: every pair of initial vertices connected.
	GraphComplete GraphType = iota
	// GraphStar is one hub connected to each of the n0-1 leaves.
	GraphStar
	// GraphDisconnected is n0 isolated vertices, zero edges.
	GraphDisconnected
)

// Canonical on-wire names, shared by String, ParseGraphType and the CLI.
const (
	graphCompleteName     = "complete"
	graphStarName         = "star"
	graphDisconnectedName = "disconnected"
)

// String returns the canonical name of the starting-graph kind.
func (t GraphType) String() string {
	switch t {
	case GraphComplete:
		return graphCompleteName
	case GraphStar:
		return graphStarName
	case GraphDisconnected:
		return graphDisconnectedName
	default:
		return fmt.Sprintf("graphtype(%d)", uint8(t))
	}
}

// ParseGraphType maps a canonical name to its GraphType.
// Returns ErrUnknownGraphType for anything else.
func ParseGraphType(s string) (GraphType, error) {
	switch s {
	case graphCompleteName:
		return GraphComplete, nil
	case graphStarName:
		return GraphStar, nil
	case graphDisconnectedName:
		return GraphDisconnected, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownGraphType)
	}
}

// ModelType selects the attachment variant.
type ModelType uint8

const (
	// GrowthPreferential adds a vertex per step, degree-weighted targets.
	GrowthPreferential ModelType = iota
	// GrowthRandom adds a vertex per step, uniform targets.
	GrowthRandom
	// NoGrowthPreferential keeps the vertex set fixed, degree-weighted targets.
	NoGrowthPreferential
)

// Canonical on-wire names, shared by String, ParseModelType and the CLI.
const (
	growthPreferentialName   = "growth_preferential"
	growthRandomName         = "growth_random"
	noGrowthPreferentialName = "no_growth_preferential"
)

// String returns the canonical name of the model variant.
func (t ModelType) String() string {
	switch t {
	case GrowthPreferential:
		return growthPreferentialName
	case GrowthRandom:
		return growthRandomName
	case NoGrowthPreferential:
		return noGrowthPreferentialName
	default:
		return fmt.Sprintf("modeltype(%d)", uint8(t))
	}
}

// ParseModelType maps a canonical name to its ModelType.
// Returns ErrUnknownModelType for anything else.
func ParseModelType(s string) (ModelType, error) {
	switch s {
	case growthPreferentialName:
		return GrowthPreferential, nil
	case growthRandomName:
		return GrowthRandom, nil
	case noGrowthPreferentialName:
		return NoGrowthPreferential, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownModelType)
	}
}

// ModelConfig carries the immutable parameters of one simulation run.
type ModelConfig struct {
	// InitialVertices is n0, the size of the starting graph.
	InitialVertices int

	// EdgesPerStep is m, the number of edges each step attempts to add.
	EdgesPerStep int

	// TMax is the number of growth steps; 0 leaves the starting graph as-is.
	TMax int

	// StartingGraph selects the initial topology.
	StartingGraph GraphType

	// Model selects the attachment variant.
	Model ModelType

	// TrackedArrivals lists step times t whose arriving vertex (growth
	// variants) or chosen source (no-growth) is followed by the run's
	// VerticesEvolution. Empty disables tracking.
	TrackedArrivals []int
}

// Validation domain minima (no magic numbers in checks).
const (
	minInitialVertices = 1
	minEdgesPerStep    = 1
	minTMax            = 0
)

// Validate checks every parameter domain and returns ErrInvalidParameter
// (wrapped with field context) on the first violation. A nil return
// guarantees New can build the starting graph and every step can draw its
// targets: m < n0 ensures at least m distinct candidates from step one.
func (c ModelConfig) Validate() error {
	if c.InitialVertices < minInitialVertices {
		return fmt.Errorf("initial vertices n=%d < min=%d: %w", c.InitialVertices, minInitialVertices, ErrInvalidParameter)
	}
	if c.EdgesPerStep < minEdgesPerStep {
		return fmt.Errorf("edges per step m=%d < min=%d: %w", c.EdgesPerStep, minEdgesPerStep, ErrInvalidParameter)
	}
	if c.EdgesPerStep >= c.InitialVertices {
		return fmt.Errorf("edges per step m=%d must be < initial vertices n=%d: %w", c.EdgesPerStep, c.InitialVertices, ErrInvalidParameter)
	}
	if c.TMax < minTMax {
		return fmt.Errorf("t_max=%d < min=%d: %w", c.TMax, minTMax, ErrInvalidParameter)
	}
	if _, err := constructorFor(c.StartingGraph, c.InitialVertices); err != nil {
		return err
	}
	switch c.Model {
	case GrowthPreferential, GrowthRandom, NoGrowthPreferential:
		// known variant
	default:
		return fmt.Errorf("model=%d: %w", uint8(c.Model), ErrUnknownModelType)
	}

	return nil
}
