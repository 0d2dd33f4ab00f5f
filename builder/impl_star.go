// Package builder: implementation of the Star(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); n == 1 yields the hub alone, no edges.
//   - The hub is vertex HubVertexID (0); leaves are 1..n-1 in ascending order.
//   - Emits spokes hub—leaf in increasing leaf order; no edges among leaves.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity: O(n) vertices + O(n-1) edges; O(1) extra space.
package builder

import (
	"fmt"

	"github.com/katalvlaran/banet/core"
)

// Star returns a Constructor that builds a star topology with n vertices:
// one hub (vertex 0) and n-1 leaves, each connected only to the hub.
func Star(n int) Constructor {
	return func(g *core.Graph) error {
		// Validate the parameter domain early to avoid partial work.
		if n < MinStartingVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStartingVertices, ErrTooFewVertices)
		}

		// Hub first so its id is HubVertexID, then leaves in ascending order.
		hub := g.AddVertex()
		for i := 1; i < n; i++ {
			leaf := g.AddVertex()
			if err := g.AddEdge(hub, leaf); err != nil {
				return fmt.Errorf("%s: AddEdge(%d—%d): %w", MethodStar, hub, leaf, err)
			}
		}

		return nil
	}
}
