// Package builder constructs the fixed starting topologies from which the
// barabasi growth models evolve: Complete, Star and Disconnected graphs.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(cons...). Creates an empty core.Graph and
//     applies all constructors in order.
//   - All public factories return a Constructor closure implemented in a
//     dedicated impl_*.go file (single place to read docs).
//   - Determinism: the three topologies are fully deterministic — identical
//     parameters and constructor order produce identical graphs.
//   - Safety: constructors never panic; they return sentinel errors
//     (ErrTooFewVertices, ErrConstructFailed) wrapped with method context.
//
// Topologies:
//
//	Complete(n)     — K_n: every unordered pair connected, n(n-1)/2 edges (n ≥ 1).
//	Star(n)         — hub vertex 0 plus n-1 leaves, n-1 edges (n ≥ 1).
//	Disconnected(n) — n isolated vertices, zero edges (n ≥ 1).
//
// Edge emission order is stable and documented per constructor, so golden
// tests and DOT exports are reproducible.
package builder
