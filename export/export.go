// Package export: DOT and degree-sequence writers.
package export

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/banet/core"
)

// ErrNilGraph indicates a nil *core.Graph was passed to a writer.
var ErrNilGraph = errors.New("export: graph is nil")

// WriteDOT renders g as an undirected Graphviz graph: every vertex declared
// once, every edge as "u -- v". Deterministic emission order (vertex ids
// ascending, then sorted edges).
// Complexity: O(V + E·log E).
func WriteDOT(w io.Writer, g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}

	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString("graph {\n"); err != nil {
		return fmt.Errorf("WriteDOT: %w", err)
	}

	// Declare isolated vertices explicitly; edges alone would drop them.
	for v := 0; v < g.VertexCount(); v++ {
		if _, err := fmt.Fprintf(bw, "    %d;\n", v); err != nil {
			return fmt.Errorf("WriteDOT: %w", err)
		}
	}
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "    %d -- %d;\n", e[0], e[1]); err != nil {
			return fmt.Errorf("WriteDOT: %w", err)
		}
	}
	if _, err := bw.WriteString("}\n"); err != nil {
		return fmt.Errorf("WriteDOT: %w", err)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteDOT: %w", err)
	}

	return nil
}

// WriteDegreeSequence renders seq as one comma-separated line, e.g. "3,1,2".
// An empty sequence writes an empty line.
// Complexity: O(V).
func WriteDegreeSequence(w io.Writer, seq []int) error {
	bw := bufio.NewWriter(w)
	for i, d := range seq {
		if i > 0 {
			if err := bw.WriteByte(','); err != nil {
				return fmt.Errorf("WriteDegreeSequence: %w", err)
			}
		}
		if _, err := bw.WriteString(strconv.Itoa(d)); err != nil {
			return fmt.Errorf("WriteDegreeSequence: %w", err)
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return fmt.Errorf("WriteDegreeSequence: %w", err)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteDegreeSequence: %w", err)
	}

	return nil
}

// WriteDOTFile writes the DOT rendering of g to path, truncating any
// existing file.
func WriteDOTFile(path string, g *core.Graph) error {
	return writeFile(path, func(w io.Writer) error { return WriteDOT(w, g) })
}

// WriteDegreeSequenceFile writes the sequence line to path, truncating any
// existing file.
func WriteDegreeSequenceFile(path string, seq []int) error {
	return writeFile(path, func(w io.Writer) error { return WriteDegreeSequence(w, seq) })
}

// writeFile shares the create/render/close skeleton of the *File variants.
func writeFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}

	if err = render(f); err != nil {
		f.Close() // render error dominates; close best-effort

		return err
	}

	if err = f.Close(); err != nil {
		return fmt.Errorf("export: close %s: %w", path, err)
	}

	return nil
}
