// Package builder_test contains functional tests for all Constructor
// implementations, verifying topology, counts and error classes.
package builder_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/banet/builder"
	"github.com/katalvlaran/banet/core"
)

// TestBuilders_Functional runs table-driven functional tests for each topology.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name:  "Complete(4)",
			ctor:  builder.Complete(4),
			wantV: 4, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				// K4: every vertex has degree 3.
				for v, d := range g.DegreeSequence() {
					if d != 3 {
						t.Errorf("Complete: degree(%d) = %d; want 3", v, d)
					}
				}
				if !g.IsComplete() {
					t.Error("Complete: IsComplete() = false")
				}
			},
		},
		{
			name:  "Complete(1)",
			ctor:  builder.Complete(1),
			wantV: 1, wantE: 0,
		},
		{
			name:  "Star(5)",
			ctor:  builder.Star(5),
			wantV: 5, wantE: 4,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				// Hub has degree n-1, every leaf degree 1, no leaf-leaf edges.
				seq := g.DegreeSequence()
				if seq[builder.HubVertexID] != 4 {
					t.Errorf("Star: hub degree = %d; want 4", seq[builder.HubVertexID])
				}
				for v := 1; v < 5; v++ {
					if seq[v] != 1 {
						t.Errorf("Star: leaf %d degree = %d; want 1", v, seq[v])
					}
				}
				if g.HasEdge(1, 2) {
					t.Error("Star: unexpected leaf—leaf edge 1—2")
				}
			},
		},
		{
			name:  "Star(1)",
			ctor:  builder.Star(1),
			wantV: 1, wantE: 0,
		},
		{
			name:  "Disconnected(3)",
			ctor:  builder.Disconnected(3),
			wantV: 3, wantE: 0,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for v, d := range g.DegreeSequence() {
					if d != 0 {
						t.Errorf("Disconnected: degree(%d) = %d; want 0", v, d)
					}
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(tc.ctor)
			if err != nil {
				t.Fatalf("BuildGraph error: %v", err)
			}
			if got := g.VertexCount(); got != tc.wantV {
				t.Errorf("VertexCount() = %d; want %d", got, tc.wantV)
			}
			if got := g.EdgeCount(); got != tc.wantE {
				t.Errorf("EdgeCount() = %d; want %d", got, tc.wantE)
			}
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

// TestBuilders_Errors verifies parameter validation and nil-constructor guards.
func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		ctor builder.Constructor
		err  error
	}{
		{"CompleteZero", builder.Complete(0), builder.ErrTooFewVertices},
		{"StarNegative", builder.Star(-2), builder.ErrTooFewVertices},
		{"DisconnectedZero", builder.Disconnected(0), builder.ErrTooFewVertices},
		{"NilConstructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(tc.ctor)
			if !errors.Is(err, tc.err) {
				t.Errorf("BuildGraph error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestBuildGraph_Composition checks deterministic in-order application of
// multiple constructors: a star block followed by an isolated block.
func TestBuildGraph_Composition(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(builder.Star(3), builder.Disconnected(2))
	if err != nil {
		t.Fatalf("BuildGraph error: %v", err)
	}
	if got := g.VertexCount(); got != 5 {
		t.Errorf("VertexCount() = %d; want 5", got)
	}
	if got := g.EdgeCount(); got != 2 {
		t.Errorf("EdgeCount() = %d; want 2", got)
	}
	// The trailing Disconnected(2) vertices carry no edges.
	seq := g.DegreeSequence()
	if seq[3] != 0 || seq[4] != 0 {
		t.Errorf("isolated block degrees = %d,%d; want 0,0", seq[3], seq[4])
	}
}
