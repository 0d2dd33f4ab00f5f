// Package core_test verifies Graph construction, mutation, invariants and
// deterministic query ordering.
package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/banet/core"
)

// TestNewGraph_Sizes verifies vertex pre-allocation and the negative-n clamp.
func TestNewGraph_Sizes(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		wantV int
	}{
		{"Empty", 0, 0},
		{"Negative", -3, 0},
		{"Five", 5, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph(tc.n)
			if got := g.VertexCount(); got != tc.wantV {
				t.Errorf("VertexCount() = %d; want %d", got, tc.wantV)
			}
			if got := g.EdgeCount(); got != 0 {
				t.Errorf("EdgeCount() = %d; want 0", got)
			}
		})
	}
}

// TestAddVertex_SequentialIDs checks that ids are dense and sequential.
func TestAddVertex_SequentialIDs(t *testing.T) {
	g := core.NewGraph(0)
	for want := 0; want < 4; want++ {
		if got := g.AddVertex(); got != want {
			t.Fatalf("AddVertex() = %d; want %d", got, want)
		}
	}
	if !g.HasVertex(3) || g.HasVertex(4) || g.HasVertex(-1) {
		t.Error("HasVertex boundary checks failed")
	}
}

// TestAddEdge_Errors exercises the simple-graph guards at the AddEdge boundary.
func TestAddEdge_Errors(t *testing.T) {
	g := core.NewGraph(3)
	if err := g.AddEdge(0, 1); err != nil {
		t.Fatalf("AddEdge(0,1) error: %v", err)
	}

	cases := []struct {
		name string
		u, v int
		err  error
	}{
		{"SelfLoop", 1, 1, core.ErrLoopNotAllowed},
		{"Duplicate", 0, 1, core.ErrMultiEdgeNotAllowed},
		{"DuplicateMirrored", 1, 0, core.ErrMultiEdgeNotAllowed},
		{"OutOfRange", 0, 9, core.ErrVertexNotFound},
		{"NegativeID", -1, 0, core.ErrVertexNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := g.AddEdge(tc.u, tc.v); !errors.Is(err, tc.err) {
				t.Errorf("AddEdge(%d,%d) error = %v; want %v", tc.u, tc.v, err, tc.err)
			}
		})
	}

	// Failed inserts must leave the edge set untouched.
	if got := g.EdgeCount(); got != 1 {
		t.Errorf("EdgeCount() after rejected inserts = %d; want 1", got)
	}
}

// TestDegreeInvariant verifies sum(degrees) == 2*|E| as edges accumulate.
func TestDegreeInvariant(t *testing.T) {
	g := core.NewGraph(5)
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}, {0, 2}}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%v) error: %v", e, err)
		}
		sum := 0
		for _, d := range g.DegreeSequence() {
			sum += d
		}
		if sum != 2*g.EdgeCount() {
			t.Fatalf("degree sum = %d; want %d", sum, 2*g.EdgeCount())
		}
	}
}

// TestNeighbors_SortedAndErrors checks deterministic ordering and range errors.
func TestNeighbors_SortedAndErrors(t *testing.T) {
	g := core.NewGraph(4)
	for _, e := range [][2]int{{2, 3}, {2, 0}, {2, 1}} {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%v) error: %v", e, err)
		}
	}

	ns, err := g.Neighbors(2)
	if err != nil {
		t.Fatalf("Neighbors(2) error: %v", err)
	}
	want := []int{0, 1, 3}
	if len(ns) != len(want) {
		t.Fatalf("Neighbors(2) = %v; want %v", ns, want)
	}
	for i := range want {
		if ns[i] != want[i] {
			t.Fatalf("Neighbors(2) = %v; want %v", ns, want)
		}
	}

	if _, err = g.Neighbors(7); !errors.Is(err, core.ErrVertexNotFound) {
		t.Errorf("Neighbors(7) error = %v; want ErrVertexNotFound", err)
	}
	if _, err = g.Degree(7); !errors.Is(err, core.ErrVertexNotFound) {
		t.Errorf("Degree(7) error = %v; want ErrVertexNotFound", err)
	}
}

// TestEdges_DeterministicOrder checks the (u<v, lexicographic) emission contract.
func TestEdges_DeterministicOrder(t *testing.T) {
	g := core.NewGraph(4)
	for _, e := range [][2]int{{3, 1}, {0, 2}, {1, 0}} {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%v) error: %v", e, err)
		}
	}
	want := [][2]int{{0, 1}, {0, 2}, {1, 3}}
	got := g.Edges()
	if len(got) != len(want) {
		t.Fatalf("Edges() = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Edges() = %v; want %v", got, want)
		}
	}
}

// TestIsComplete covers trivial, complete and incomplete graphs.
func TestIsComplete(t *testing.T) {
	if !core.NewGraph(0).IsComplete() || !core.NewGraph(1).IsComplete() {
		t.Error("graphs with <2 vertices must be complete")
	}

	g := core.NewGraph(3)
	if g.IsComplete() {
		t.Error("K3 without edges reported complete")
	}
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 2}} {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%v) error: %v", e, err)
		}
	}
	if !g.IsComplete() {
		t.Error("K3 with all 3 edges reported incomplete")
	}
}

// TestClone_Independence verifies the deep-copy contract.
func TestClone_Independence(t *testing.T) {
	g := core.NewGraph(3)
	if err := g.AddEdge(0, 1); err != nil {
		t.Fatalf("AddEdge error: %v", err)
	}

	dup := g.Clone()
	dup.AddVertex()
	if err := dup.AddEdge(1, 2); err != nil {
		t.Fatalf("AddEdge on clone error: %v", err)
	}

	if g.VertexCount() != 3 || g.EdgeCount() != 1 {
		t.Errorf("original mutated: V=%d E=%d; want V=3 E=1", g.VertexCount(), g.EdgeCount())
	}
	if dup.VertexCount() != 4 || dup.EdgeCount() != 2 {
		t.Errorf("clone: V=%d E=%d; want V=4 E=2", dup.VertexCount(), dup.EdgeCount())
	}
}
