// Package builder: sentinel errors.
//
// Error policy (explicit and strict):
//   - Only package-level sentinel variables are exposed.
//   - Callers branch with errors.Is(err, ErrX); messages are not a contract.
//   - Implementations attach context via %w wrapping with the method tag,
//     e.g. "Complete: n=0 < min=1: builder: parameter too small".
//   - Constructors never panic at runtime.
package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is smaller than the
// allowed minimum for the requested topology.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* reject n */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates that a constructor could not complete without
// breaking the core simple-graph invariants. With valid parameters this is a
// programming error surfaced from core, never an expected runtime outcome.
// Usage: if errors.Is(err, ErrConstructFailed) { /* report invariant breach */ }.
var ErrConstructFailed = errors.New("builder: construction failed")
