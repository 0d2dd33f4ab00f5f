// Package builder: shared constants for topology constructors, ensuring
// consistent validation and error context across all impl_*.go files.
package builder

// Canonical method names used to prefix errors with constructor context.
const (
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodDisconnected is the canonical name for the Disconnected constructor.
	MethodDisconnected = "Disconnected"
)

// HubVertexID is the id of the hub in a Star topology. The hub is always the
// first vertex added, so tests and exports can rely on it being 0.
const HubVertexID = 0

// MinStartingVertices is the smallest allowed size for any starting topology.
// A single-vertex Complete or Star graph degenerates to one isolated vertex,
// which is valid; zero vertices is not a usable simulation substrate.
const MinStartingVertices = 1
