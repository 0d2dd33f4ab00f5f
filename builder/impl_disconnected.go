// Package builder: implementation of the Disconnected(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Adds n isolated vertices 0..n-1 and zero edges.
//   - Returns only sentinel errors; never panics at runtime.
//
// The all-zero degree sequence is the degenerate substrate exercising the
// degindex uniform fallback on the first preferential step.
//
// Complexity: O(n) vertices; O(1) extra space.
package builder

import (
	"fmt"

	"github.com/katalvlaran/banet/core"
)

// Disconnected returns a Constructor that builds n isolated vertices.
func Disconnected(n int) Constructor {
	return func(g *core.Graph) error {
		if n < MinStartingVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodDisconnected, n, MinStartingVertices, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			g.AddVertex()
		}

		return nil
	}
}
