// Package barabasi implements the Barabási–Albert family of network growth
// models: repeated discrete steps that add edges (and, in growth variants,
// vertices) to a core.Graph according to a selection rule.
//
// Three model variants share one step contract:
//
//   - GrowthPreferential — the classic model: each step introduces one new
//     vertex and connects it to M distinct existing vertices chosen with
//     probability proportional to their current degree.
//   - GrowthRandom — identical growth, but targets are chosen uniformly at
//     random, ignoring degree entirely. Degree distributions stay thin-tailed,
//     making this the control experiment against preferential attachment.
//   - NoGrowthPreferential — the vertex set is frozen at the starting graph.
//     Each step picks one uniform source vertex and wires it to up to M
//     distinct non-adjacent targets chosen preferentially. When fewer than M
//     eligible targets remain the degenerate-step policy applies: the step
//     connects however many are eligible and still consumes one time unit, so
//     a saturated (complete) graph idles through its remaining steps.
//
// Lifecycle per run:
//
//	cfg := barabasi.ModelConfig{ ... }
//	m, err := barabasi.New(cfg)         // validate → build start graph → index
//	for t := 1; t <= cfg.TMax; t++ {
//	        err = m.Step(rng)           // exactly one unit of simulated time
//	}
//
// or equivalently barabasi.Generate(m, rng). The variant is selected once in
// New from the validated config (tagged dispatch), never re-checked per step.
//
// Invariants (hold after every step):
//
//   - No self-loops, no parallel edges (enforced at the core boundary).
//   - Sum of degrees == 2·|E|.
//   - Growth variants: |V| after step t == n0 + t; each vertex added at step
//     t has exactly M edges at the moment of its introduction.
//   - NoGrowthPreferential: |V| == n0 forever.
//
// Randomness is injected per call; the package owns no generator, so
// independent runs with independent *rand.Rand values never share state.
//
// Vertex evolution: a ModelConfig may name arrival times to track. For growth
// variants the vertex introduced at a tracked step t is followed; for
// NoGrowthPreferential it is the source vertex chosen at step t (the model
// never introduces vertices). The tracked vertex's degree is recorded after
// every subsequent step — the raw material for degree-vs-time plots.
package barabasi
