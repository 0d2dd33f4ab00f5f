// Package core provides the in-memory Graph implementation shared by every
// banet package: a dense, undirected, simple graph over integer vertex
// identifiers 0..N-1.
//
// The representation is tuned for growth simulations that append vertices and
// edges millions of times but never remove them:
//
//   - Vertices are implicit: vertex v exists iff v < VertexCount().
//     Adding a vertex is an O(1) amortized slice append.
//   - Adjacency is a slice of neighbor sets: adjacency[v][u] = struct{}{},
//     giving O(1) HasEdge / AddEdge and O(deg(v)) neighbor iteration.
//   - Simple-graph invariants are enforced at the AddEdge boundary:
//     self-loops return ErrLoopNotAllowed, duplicates ErrMultiEdgeNotAllowed.
//
// Why use core.Graph?
//
//   - Deterministic iteration — Neighbors(), Edges() and DegreeSequence()
//     return sorted, reproducible results for golden tests.
//   - Exclusive ownership — a Graph belongs to exactly one simulation run for
//     its lifetime (see simulate), so no internal locking is needed and the
//     hot growth loop stays allocation- and contention-free.
//   - Cheap invariant checks — Sum of degrees = 2·EdgeCount() holds after
//     every mutation; IsComplete() is an O(1) arithmetic test.
//
// Core Methods:
//
//	AddVertex() int                  // O(1) amortized; returns the new id
//	AddEdge(u, v int) error          // O(1); rejects loops and duplicates
//	HasVertex(v int) bool            // O(1)
//	HasEdge(u, v int) bool           // O(1)
//	Degree(v int) (int, error)       // O(1)
//	Neighbors(v int) ([]int, error)  // O(d·log d), sorted
//	DegreeSequence() []int           // O(V), indexed by vertex id
//	Edges() [][2]int                 // O(E·log E), sorted (u,v) with u<v
//	VertexCount() / EdgeCount() int  // O(1)
//	IsComplete() bool                // O(1)
//	Clone() *Graph                   // O(V+E) deep copy
//
// Errors:
//
//	ErrVertexNotFound      – referenced vertex id is out of range
//	ErrLoopNotAllowed      – attempted self-loop
//	ErrMultiEdgeNotAllowed – attempted parallel edge
package core
