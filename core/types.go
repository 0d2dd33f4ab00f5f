// Package core defines the Graph type and its sentinel errors.
//
// This file declares the storage layout and the NewGraph constructor;
// all mutating and querying methods live in methods.go.
//
// Errors:
//
//	ErrVertexNotFound      - referenced vertex id is out of range.
//	ErrLoopNotAllowed      - self-loop attempted (u == v).
//	ErrMultiEdgeNotAllowed - parallel edge attempted (u—v already present).
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex id outside 0..VertexCount()-1.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted; banet graphs are always simple.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted; banet graphs are always simple.
	ErrMultiEdgeNotAllowed = errors.New("core: parallel edge not allowed")
)

// Graph is the core in-memory graph data structure: undirected, unweighted,
// simple (no loops, no parallel edges), with integer vertex ids 0..N-1.
//
// A Graph is owned by exactly one simulation run for its lifetime and is
// therefore deliberately lock-free; callers that need cross-goroutine sharing
// must Clone() first.
type Graph struct {
	// adjacency[v] is the neighbor set of vertex v; index = vertex id.
	adjacency []map[int]struct{}

	// edgeCount tracks |E|; each undirected edge counted exactly once.
	edgeCount int
}

// NewGraph creates a Graph with n isolated vertices (ids 0..n-1).
// Negative n is treated as zero.
// Complexity: O(n).
func NewGraph(n int) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{adjacency: make([]map[int]struct{}, 0, n)}
	for i := 0; i < n; i++ {
		g.AddVertex()
	}

	return g
}
