// Package degindex: sentinel errors.
//
// Callers branch with errors.Is; implementations wrap these with method
// context via %w. Sampling never panics.
package degindex

import "errors"

// ErrNeedRandSource indicates a sampling call received a nil *rand.Rand.
// Randomness is always injected by the caller; the package owns no generator.
var ErrNeedRandSource = errors.New("degindex: rng is required")

// ErrUnknownVertex indicates a vertex id outside 0..VertexCount()-1 was
// passed to Degree, RecordEdge or a sampling exclusion list.
var ErrUnknownVertex = errors.New("degindex: vertex not found")

// ErrBadCount indicates a negative sample count.
var ErrBadCount = errors.New("degindex: negative sample count")

// ErrInsufficientTargets indicates a sampling request for more distinct
// vertices than are eligible (non-excluded). Upstream config validation
// prevents this in a healthy run; seeing it mid-run means a simulation
// invariant was violated, and the run must fail rather than recover.
var ErrInsufficientTargets = errors.New("degindex: sample exceeds eligible vertices")
