// Package export_test verifies stable output formats and file round-trips.
package export_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/banet/builder"
	"github.com/katalvlaran/banet/export"
)

// TestWriteDOT_Star pins the exact DOT rendering of Star(3).
func TestWriteDOT_Star(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(builder.Star(3))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, export.WriteDOT(&sb, g))

	want := "graph {\n" +
		"    0;\n" +
		"    1;\n" +
		"    2;\n" +
		"    0 -- 1;\n" +
		"    0 -- 2;\n" +
		"}\n"
	assert.Equal(t, want, sb.String())
}

// TestWriteDOT_IsolatedVertices keeps edge-less vertices in the output.
func TestWriteDOT_IsolatedVertices(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(builder.Disconnected(2))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, export.WriteDOT(&sb, g))
	assert.Equal(t, "graph {\n    0;\n    1;\n}\n", sb.String())
}

// TestWriteDOT_NilGraph rejects nil input with the sentinel.
func TestWriteDOT_NilGraph(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	assert.ErrorIs(t, export.WriteDOT(&sb, nil), export.ErrNilGraph)
}

// TestWriteDegreeSequence pins the comma-separated line format.
func TestWriteDegreeSequence(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		seq  []int
		want string
	}{
		{"Star5", []int{4, 1, 1, 1, 1}, "4,1,1,1,1\n"},
		{"Single", []int{0}, "0\n"},
		{"Empty", nil, "\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var sb strings.Builder
			require.NoError(t, export.WriteDegreeSequence(&sb, tc.seq))
			assert.Equal(t, tc.want, sb.String())
		})
	}
}

// TestFileRoundTrip exercises the *File variants on a temp dir.
func TestFileRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	g, err := builder.BuildGraph(builder.Complete(3))
	require.NoError(t, err)

	dotPath := filepath.Join(dir, "k3.dot")
	require.NoError(t, export.WriteDOTFile(dotPath, g))
	data, err := os.ReadFile(dotPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "1 -- 2;")

	seqPath := filepath.Join(dir, "k3.txt")
	require.NoError(t, export.WriteDegreeSequenceFile(seqPath, g.DegreeSequence()))
	data, err = os.ReadFile(seqPath)
	require.NoError(t, err)
	assert.Equal(t, "2,2,2\n", string(data))
}
