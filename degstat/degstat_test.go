// Package degstat_test verifies summary moments, histogram/CCDF shapes and
// the power-law estimate against a real growth run.
package degstat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/banet/barabasi"
	"github.com/katalvlaran/banet/degstat"
	"github.com/katalvlaran/banet/simulate"
)

// TestSummarize_Star checks the closed-form moments of a star sequence.
func TestSummarize_Star(t *testing.T) {
	t.Parallel()

	// Star(5): hub degree 4, four leaves degree 1.
	seq := []int{4, 1, 1, 1, 1}
	s, err := degstat.Summarize(seq)
	require.NoError(t, err)

	assert.Equal(t, 5, s.Vertices)
	assert.Equal(t, 4, s.Edges)
	assert.Equal(t, 1, s.Min)
	assert.Equal(t, 4, s.Max)
	assert.InDelta(t, 1.6, s.Mean, 1e-12)
	assert.InDelta(t, 1.8, s.Variance, 1e-12) // unbiased: Σ(x-μ)²/(n-1) = 7.2/4
}

// TestHistogramAndCCDF verifies shapes on a hand-checked sequence.
func TestHistogramAndCCDF(t *testing.T) {
	t.Parallel()

	seq := []int{0, 1, 1, 3}
	h, err := degstat.Histogram(seq)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0, 1}, h)

	degrees, probs, err := degstat.CCDF(seq)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 3}, degrees)
	assert.Equal(t, []float64{1, 0.75, 0.25}, probs)

	// CCDF must be non-increasing.
	for i := 1; i < len(probs); i++ {
		assert.LessOrEqual(t, probs[i], probs[i-1])
	}
}

// TestErrors covers the empty and degenerate inputs.
func TestErrors(t *testing.T) {
	t.Parallel()

	_, err := degstat.Summarize(nil)
	assert.ErrorIs(t, err, degstat.ErrEmptySequence)
	_, err = degstat.Histogram(nil)
	assert.ErrorIs(t, err, degstat.ErrEmptySequence)
	_, _, err = degstat.CCDF(nil)
	assert.ErrorIs(t, err, degstat.ErrEmptySequence)
	_, err = degstat.PowerLawExponent(nil)
	assert.ErrorIs(t, err, degstat.ErrEmptySequence)

	// All vertices share one degree: nothing to regress on.
	_, err = degstat.PowerLawExponent([]int{3, 3, 3, 3})
	assert.ErrorIs(t, err, degstat.ErrDegenerate)
}

// TestPowerLawExponent_GrowthRun estimates the exponent on a reasonably
// sized preferential run: the heavy tail must produce a clearly positive
// alpha (descending log–log slope).
func TestPowerLawExponent_GrowthRun(t *testing.T) {
	t.Parallel()

	results, err := simulate.Run(barabasi.ModelConfig{
		InitialVertices: 5,
		EdgesPerStep:    3,
		TMax:            4000,
		StartingGraph:   barabasi.GraphComplete,
		Model:           barabasi.GrowthPreferential,
	}, 1, simulate.WithBaseSeed(17))
	require.NoError(t, err)

	alpha, err := degstat.PowerLawExponent(results[0].DegreeSequence)
	require.NoError(t, err)
	assert.Greater(t, alpha, 1.0, "preferential run lost its heavy tail (alpha=%f)", alpha)
}
