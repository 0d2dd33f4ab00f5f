// Package export renders simulation output for downstream consumers: final
// graphs as Graphviz DOT and degree sequences as a single comma-separated
// line. No format is mandated by the engine; these are the conventional
// collaborators the CLI wires to --out-dir.
//
// Writers target io.Writer; the *File variants wrap them with file creation
// for the common case. Output is deterministic: edges are emitted in the
// sorted order core.Graph.Edges() guarantees.
package export
