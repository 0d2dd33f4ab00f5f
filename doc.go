// Package banet is an in-memory engine for growing and analyzing
// Barabási–Albert family networks — from starting-graph construction to
// parallel multi-iteration experiments and degree-distribution statistics.
//
// 🚀 What is banet?
//
//	A small, deterministic network-growth toolkit that brings together:
//		• Core primitives: a dense, loop-free, multi-edge-free simple graph
//		• Builders: complete, star and disconnected starting topologies
//		• Degree index: O(1) degree-proportional and uniform sampling
//		• Models: growth_preferential, growth_random, no_growth_preferential
//		• Batch runner: reproducible parallel iterations over one config
//		• Statistics: moments, histogram, CCDF, power-law exponent fit
//		• Export: GraphViz DOT and plain degree-sequence files
//
// ✨ Why choose banet?
//
//   - Reproducible – one base seed fixes the whole batch, per iteration
//   - Predictable – sorted outputs, sentinel errors, no panics in algorithms
//   - Fast – stub-arena sampling keeps every growth step near O(m)
//
// Everything is organized under focused subpackages:
//
//	core/     — the Graph type and its mutation/query primitives
//	builder/  — Constructor closures and BuildGraph orchestration
//	degindex/ — degree bookkeeping + weighted/uniform sampling without replacement
//	barabasi/ — the three attachment models and vertex-evolution tracking
//	simulate/ — the parallel batch driver
//	degstat/  — degree-sequence statistics
//	export/   — DOT and degree-sequence writers
//	cmd/banet — the command-line front end
//
// Quick example:
//
//	cfg := barabasi.ModelConfig{
//		InitialVertices: 10,
//		EdgesPerStep:    5,
//		TMax:            100000,
//		StartingGraph:   barabasi.GraphComplete,
//		Model:           barabasi.GrowthPreferential,
//	}
//	results, err := simulate.Run(cfg, 100, simulate.WithBaseSeed(42))
//
// Each Result carries the final graph, its degree sequence and the growth
// history of the tracked vertices, ready for degstat and export.
package banet
