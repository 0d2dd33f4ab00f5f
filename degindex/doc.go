// Package degindex maintains per-vertex degree bookkeeping for a growing
// graph together with the structure needed for degree-weighted random
// selection in amortized constant time.
//
// The central idea is the endpoint arena ("stubs"): a flat []int in which a
// vertex id appears exactly once per incident edge endpoint. RecordEdge(u,v)
// appends u and v, so at all times
//
//	len(stubs) == sum(degrees) == 2·|E|,
//
// and drawing a uniform index into stubs selects vertex v with probability
// deg(v)/Σdeg — exactly preferential attachment. The arena is append-only and
// is never rebuilt; it mirrors the repeated-endpoint multiset the classic
// Barabási–Albert formulation reasons about.
//
// Sampling contract (SampleByDegree):
//
//   - k distinct vertices are drawn sequentially WITHOUT replacement;
//     after each pick the distribution is renormalized over the remaining
//     eligible vertices (implemented by rejection against a picked bitmap).
//   - Excluded vertices are never returned.
//   - Degenerate case: when every eligible vertex has degree zero (e.g. the
//     first step from a Disconnected start), the draw falls back to uniform
//     selection over the eligible vertices instead of dividing by zero.
//   - k greater than the eligible count returns ErrInsufficientTargets.
//
// SampleUniform offers the same without-replacement semantics with degree
// weighting disabled, as required by the random-attachment growth model.
//
// An Index is owned by exactly one simulation run (like core.Graph) and is
// not safe for concurrent use.
//
// Errors:
//
//	ErrNeedRandSource      – nil *rand.Rand supplied
//	ErrUnknownVertex       – vertex id out of range (Degree/RecordEdge/exclude)
//	ErrBadCount            – negative sample count
//	ErrInsufficientTargets – sample count exceeds eligible vertices
package degindex
