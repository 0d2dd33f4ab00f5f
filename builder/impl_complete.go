// Package builder: implementation of the Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); n == 1 yields a single isolated vertex.
//   - Adds vertices in ascending id order 0..n-1.
//   - Emits each unordered pair {i,j} with i<j exactly once, lexicographically.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity: O(n) vertices + O(n²) edges; O(1) extra space.
package builder

import (
	"fmt"

	"github.com/katalvlaran/banet/core"
)

// Complete returns a Constructor that builds the complete simple graph K_n:
// n vertices and n(n-1)/2 edges.
func Complete(n int) Constructor {
	// The returned closure captures n; BuildGraph supplies g.
	return func(g *core.Graph) error {
		// Early parameter validation: K_n is defined for n≥1.
		if n < MinStartingVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinStartingVertices, ErrTooFewVertices)
		}

		// Vertices in deterministic id order.
		for i := 0; i < n; i++ {
			g.AddVertex()
		}

		// Emit each unordered pair {i,j} with i<j in stable lexicographic order.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := g.AddEdge(i, j); err != nil {
					return fmt.Errorf("%s: AddEdge(%d—%d): %w", MethodComplete, i, j, err)
				}
			}
		}

		return nil
	}
}
