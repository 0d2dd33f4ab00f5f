// Package builder: thin public entry-points.
//
// api.go declares the Constructor type and the single orchestrator BuildGraph;
// topology factories live in impl_*.go.
package builder

import (
	"fmt"

	"github.com/katalvlaran/banet/core"
)

// Constructor applies a deterministic graph mutation. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Preserve the core simple-graph invariants (no loops, no duplicates).
//   - Emit vertices and edges in a stable, documented order.
//
// Rationale: isolates topology logic behind a uniform function type so the
// barabasi models can be parameterized by a starting topology without
// knowing its shape.
type Constructor func(g *core.Graph) error

// BuildGraph creates a new empty core.Graph and applies all constructors in
// order. Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; no partial cleanup is attempted.
//
// Complexity: Σ cost of each constructor; wrapper overhead O(K) for K constructors.
//
// Errors: callers branch with errors.Is against the builder sentinels
// (ErrTooFewVertices, ErrConstructFailed).
func BuildGraph(cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(0)

	for i, fn := range cons {
		// Defensive: reject a nil constructor to avoid a panic later (programmer error).
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g); err != nil {
			// Wrap once at the API boundary; inner layers already attached method context.
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
