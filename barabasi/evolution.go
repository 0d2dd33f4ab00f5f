// Package barabasi: vertex-evolution tracking.
//
// VerticesEvolution records how the degree of selected vertices evolves over
// simulated time, keyed by the arrival time that selected them. Growth
// variants track the vertex introduced at a tracked step; the no-growth
// variant tracks the source vertex chosen at that step.
package barabasi

import "github.com/katalvlaran/banet/core"

// VerticesEvolution follows a set of vertices through a run and records
// their degree after every step since they were first tracked.
//
// Vertices enter the tracker during the run (via Track), never before:
// a growth vertex does not exist until its arrival step executes.
type VerticesEvolution struct {
	// tracked lists followed vertex ids in tracking order.
	tracked []int

	// evolution[v] is v's degree after each step since v was tracked.
	evolution map[int][]int

	// arrivals maps an arrival time to the vertex it selected.
	arrivals map[int]int
}

// NewVerticesEvolution returns an empty tracker.
func NewVerticesEvolution() *VerticesEvolution {
	return &VerticesEvolution{
		evolution: make(map[int][]int),
		arrivals:  make(map[int]int),
	}
}

// Track starts following vertex v, recording that it was selected by arrival
// time. Tracking the same arrival twice keeps the latest vertex; tracking
// the same vertex under two arrivals records its history once per arrival
// query path but samples it once per step.
// Complexity: O(1).
func (e *VerticesEvolution) Track(arrival, v int) {
	if _, dup := e.evolution[v]; !dup {
		e.tracked = append(e.tracked, v)
		e.evolution[v] = nil
	}
	e.arrivals[arrival] = v
}

// Update appends the current degree of every tracked vertex.
// Called by the models once per step, after all mutations.
// Complexity: O(#tracked).
func (e *VerticesEvolution) Update(g *core.Graph) {
	for _, v := range e.tracked {
		d, err := g.Degree(v)
		if err != nil {
			// Tracked ids come from the live graph; out-of-range here is
			// impossible in a healthy run. Skip rather than corrupt.
			continue
		}
		e.evolution[v] = append(e.evolution[v], d)
	}
}

// ArrivalEvolution returns the degree history of the vertex selected by the
// given arrival time, and whether that arrival was ever tracked.
// The returned slice is live; callers must not mutate it.
func (e *VerticesEvolution) ArrivalEvolution(arrival int) ([]int, bool) {
	v, ok := e.arrivals[arrival]
	if !ok {
		return nil, false
	}

	return e.evolution[v], true
}

// VertexEvolution returns the degree history recorded for vertex v.
// The returned slice is live; callers must not mutate it.
func (e *VerticesEvolution) VertexEvolution(v int) []int {
	return e.evolution[v]
}

// Tracked returns the followed vertex ids in tracking order.
// The returned slice is live; callers must not mutate it.
func (e *VerticesEvolution) Tracked() []int {
	return e.tracked
}
