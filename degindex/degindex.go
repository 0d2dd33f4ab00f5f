// Package degindex: Index construction and degree bookkeeping.
//
// This file provides the Index type with its O(1) update operations;
// the sampling methods live in sample.go.
package degindex

import (
	"fmt"

	"github.com/katalvlaran/banet/core"
)

// Index tracks the degree of every vertex in a growing graph and maintains
// the endpoint arena enabling degree-proportional sampling. It must be kept
// in exact sync with the graph's edge set: call AddVertex for every vertex
// and RecordEdge for every edge, in any order consistent with the graph.
type Index struct {
	// degrees[v] is the current degree of vertex v; index = vertex id.
	degrees []int

	// stubs holds vertex id v exactly deg(v) times; len(stubs) == 2·|E|.
	stubs []int

	// picked is the sampling scratch bitmap, len == len(degrees).
	// It is all-false between calls; sampling marks and unmarks it.
	picked []bool
}

// NewIndex creates an Index over n isolated vertices (all degrees zero).
// Negative n is treated as zero.
// Complexity: O(n).
func NewIndex(n int) *Index {
	if n < 0 {
		n = 0
	}

	return &Index{
		degrees: make([]int, n),
		picked:  make([]bool, n),
	}
}

// FromGraph builds an Index synchronized with g: one entry per vertex and
// one arena slot per edge endpoint.
// Complexity: O(V+E).
func FromGraph(g *core.Graph) *Index {
	n := g.VertexCount()
	idx := &Index{
		degrees: g.DegreeSequence(),
		picked:  make([]bool, n),
	}

	total := 0
	for _, d := range idx.degrees {
		total += d
	}
	idx.stubs = make([]int, 0, total)
	for v, d := range idx.degrees {
		for i := 0; i < d; i++ {
			idx.stubs = append(idx.stubs, v)
		}
	}

	return idx
}

// AddVertex appends a new zero-degree vertex and returns its id, mirroring
// core.Graph.AddVertex.
// Complexity: O(1) amortized.
func (ix *Index) AddVertex() int {
	id := len(ix.degrees)
	ix.degrees = append(ix.degrees, 0)
	ix.picked = append(ix.picked, false)

	return id
}

// RecordEdge registers the undirected edge u—v: both degrees increase by one
// and both endpoints join the arena. The caller is responsible for having
// inserted the edge into the graph; the Index performs no duplicate check.
// Returns ErrUnknownVertex if either id is out of range.
// Complexity: O(1) amortized.
func (ix *Index) RecordEdge(u, v int) error {
	if !ix.hasVertex(u) || !ix.hasVertex(v) {
		return fmt.Errorf("RecordEdge(%d—%d): %w", u, v, ErrUnknownVertex)
	}

	ix.degrees[u]++
	ix.degrees[v]++
	ix.stubs = append(ix.stubs, u, v)

	return nil
}

// Degree returns the recorded degree of v.
// Returns ErrUnknownVertex for an out-of-range id.
// Complexity: O(1).
func (ix *Index) Degree(v int) (int, error) {
	if !ix.hasVertex(v) {
		return 0, fmt.Errorf("Degree(%d): %w", v, ErrUnknownVertex)
	}

	return ix.degrees[v], nil
}

// VertexCount returns the number of tracked vertices.
// Complexity: O(1).
func (ix *Index) VertexCount() int {
	return len(ix.degrees)
}

// TotalDegree returns Σdeg(v) == 2·|E| == len(arena).
// Complexity: O(1).
func (ix *Index) TotalDegree() int {
	return len(ix.stubs)
}

// hasVertex reports whether id v is in range.
func (ix *Index) hasVertex(v int) bool {
	return v >= 0 && v < len(ix.degrees)
}
