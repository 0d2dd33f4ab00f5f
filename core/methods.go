// Package core: Graph method implementations.
//
// This file provides O(1) (amortized) operations for vertex and edge
// management on the Graph type defined in types.go. Adjacency is stored as a
// slice of neighbor sets: adjacency[v][u] = struct{}{}, allowing constant-time
// existence checks and insertion. Vertices and edges are append-only; the
// growth models never remove either.
package core

import "sort"

// AddVertex appends a new isolated vertex and returns its id.
// Ids are dense and sequential: the k-th call on an empty graph returns k-1.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex() int {
	id := len(g.adjacency)
	// Neighbor sets start empty; most simulation vertices gain >=1 edge soon after.
	g.adjacency = append(g.adjacency, make(map[int]struct{}))

	return id
}

// HasVertex reports whether vertex id v exists.
// Complexity: O(1).
func (g *Graph) HasVertex(v int) bool {
	return v >= 0 && v < len(g.adjacency)
}

// AddEdge inserts the undirected edge u—v.
// Returns ErrVertexNotFound if either endpoint is out of range,
// ErrLoopNotAllowed if u == v, ErrMultiEdgeNotAllowed if the edge exists.
// Complexity: O(1).
func (g *Graph) AddEdge(u, v int) error {
	// Validate endpoints before any mutation (fail fast, zero side effects).
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return ErrVertexNotFound
	}
	if u == v {
		return ErrLoopNotAllowed
	}
	if _, dup := g.adjacency[u][v]; dup {
		return ErrMultiEdgeNotAllowed
	}

	// Mirror the edge both ways; undirected adjacency is symmetric.
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
	g.edgeCount++

	return nil
}

// HasEdge reports whether the undirected edge u—v exists.
// Out-of-range endpoints are reported as absent.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return false
	}
	_, ok := g.adjacency[u][v]

	return ok
}

// Degree returns the number of edges incident to v.
// Returns ErrVertexNotFound for an out-of-range id.
// Complexity: O(1).
func (g *Graph) Degree(v int) (int, error) {
	if !g.HasVertex(v) {
		return 0, ErrVertexNotFound
	}

	return len(g.adjacency[v]), nil
}

// Neighbors returns the ids adjacent to v in ascending order.
// Returns ErrVertexNotFound for an out-of-range id.
// Complexity: O(d·log d) where d = deg(v).
func (g *Graph) Neighbors(v int) ([]int, error) {
	if !g.HasVertex(v) {
		return nil, ErrVertexNotFound
	}
	out := make([]int, 0, len(g.adjacency[v]))
	for u := range g.adjacency[v] {
		out = append(out, u)
	}
	sort.Ints(out)

	return out, nil
}

// VertexCount returns |V|.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	return len(g.adjacency)
}

// EdgeCount returns |E|, each undirected edge counted once.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// DegreeSequence returns the degree of every vertex, indexed by vertex id.
// The invariant sum(DegreeSequence()) == 2*EdgeCount() holds at all times.
// Complexity: O(V).
func (g *Graph) DegreeSequence() []int {
	out := make([]int, len(g.adjacency))
	for v := range g.adjacency {
		out[v] = len(g.adjacency[v])
	}

	return out
}

// Edges returns every undirected edge exactly once as an ordered pair (u,v)
// with u < v, sorted lexicographically for deterministic output.
// Complexity: O(E·log E).
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, 0, g.edgeCount)
	for u := range g.adjacency {
		for v := range g.adjacency[u] {
			if u < v { // emit each unordered pair once
				out = append(out, [2]int{u, v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}

		return out[i][1] < out[j][1]
	})

	return out
}

// IsComplete reports whether every unordered vertex pair is connected,
// i.e. |E| == n(n-1)/2. Graphs with fewer than two vertices are complete.
// Complexity: O(1).
func (g *Graph) IsComplete() bool {
	n := len(g.adjacency)

	return g.edgeCount == n*(n-1)/2
}

// Clone returns a deep copy of the graph: same vertices, same edges,
// fully independent storage.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	dup := &Graph{
		adjacency: make([]map[int]struct{}, len(g.adjacency)),
		edgeCount: g.edgeCount,
	}
	for v, set := range g.adjacency {
		ns := make(map[int]struct{}, len(set))
		for u := range set {
			ns[u] = struct{}{}
		}
		dup.adjacency[v] = ns
	}

	return dup
}
