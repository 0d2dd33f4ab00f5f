// Package simulate orchestrates repeated, independent Barabási–Albert runs:
// one validated ModelConfig, `iterations` complete executions, one Result
// per iteration.
//
// Independence guarantees:
//
//   - Every iteration builds its own starting graph, degree index and
//     evolution tracker via barabasi.New — no shared mutable state.
//   - Every iteration owns a private *rand.Rand seeded from a per-iteration
//     seed derived once from the base seed, so any single iteration can be
//     reproduced in isolation from (baseSeed, iteration) alone. There is no
//     package-global generator.
//
// Iterations are embarrassingly parallel and run on a bounded worker pool
// (WithWorkers, default GOMAXPROCS). Results are collected into a slice
// indexed by iteration, so output order is deterministic regardless of
// scheduling.
//
// Failure policy: configuration errors surface before any iteration starts
// (fail-fast, no partial results). A mid-run step error is an invariant
// violation; the first one cancels the remaining iterations and Run returns
// it alone. Cancellation of the caller's context behaves the same way.
package simulate
