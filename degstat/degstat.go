// Package degstat: implementations over raw degree sequences.
package degstat

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Sentinel errors for degree-sequence statistics.
var (
	// ErrEmptySequence indicates an empty degree sequence.
	ErrEmptySequence = errors.New("degstat: empty degree sequence")

	// ErrDegenerate indicates the sequence lacks enough distinct positive
	// degrees for a log–log regression (at least two are required).
	ErrDegenerate = errors.New("degstat: too few distinct degrees")
)

// Summary holds the first-order description of one degree sequence.
type Summary struct {
	// Vertices is the sequence length |V|.
	Vertices int
	// Edges is sum(deg)/2, valid because the graphs are simple and undirected.
	Edges int
	// Min and Max are the extreme degrees.
	Min, Max int
	// Mean, Variance and StdDev are the usual sample moments (unweighted,
	// unbiased variance per gonum/stat conventions).
	Mean, Variance, StdDev float64
}

// Summarize computes a Summary over seq.
// Returns ErrEmptySequence for a zero-length input.
// Complexity: O(V).
func Summarize(seq []int) (Summary, error) {
	if len(seq) == 0 {
		return Summary{}, fmt.Errorf("Summarize: %w", ErrEmptySequence)
	}

	xs := toFloats(seq)
	sum := 0
	minD, maxD := seq[0], seq[0]
	for _, d := range seq {
		sum += d
		if d < minD {
			minD = d
		}
		if d > maxD {
			maxD = d
		}
	}

	variance := stat.Variance(xs, nil)

	return Summary{
		Vertices: len(seq),
		Edges:    sum / 2,
		Min:      minD,
		Max:      maxD,
		Mean:     stat.Mean(xs, nil),
		Variance: variance,
		StdDev:   math.Sqrt(variance),
	}, nil
}

// Histogram returns counts[k] = number of vertices with degree k,
// for k = 0..max(seq).
// Returns ErrEmptySequence for a zero-length input.
// Complexity: O(V + max).
func Histogram(seq []int) ([]int, error) {
	if len(seq) == 0 {
		return nil, fmt.Errorf("Histogram: %w", ErrEmptySequence)
	}

	maxD := 0
	for _, d := range seq {
		if d > maxD {
			maxD = d
		}
	}
	counts := make([]int, maxD+1)
	for _, d := range seq {
		counts[d]++
	}

	return counts, nil
}

// CCDF returns the empirical complementary CDF over the observed degrees:
// for each degree k present in seq, P(deg >= k). Degrees ascend, so probs
// descend; both slices have one entry per distinct observed degree.
// Returns ErrEmptySequence for a zero-length input.
// Complexity: O(V + max).
func CCDF(seq []int) (degrees, probs []float64, err error) {
	counts, err := Histogram(seq)
	if err != nil {
		return nil, nil, fmt.Errorf("CCDF: %w", ErrEmptySequence)
	}

	n := float64(len(seq))
	remaining := len(seq) // vertices with degree >= k, updated as k ascends
	for k, c := range counts {
		if c > 0 {
			degrees = append(degrees, float64(k))
			probs = append(probs, float64(remaining)/n)
		}
		remaining -= c
	}

	return degrees, probs, nil
}

// PowerLawExponent estimates the exponent alpha of P(k) ~ k^(-alpha) by
// ordinary least squares on the log–log empirical degree distribution,
// restricted to positive degrees. The returned alpha is the negated slope.
//
// Returns ErrEmptySequence for empty input and ErrDegenerate when fewer than
// two distinct positive degrees are observed.
// Complexity: O(V + max).
func PowerLawExponent(seq []int) (float64, error) {
	counts, err := Histogram(seq)
	if err != nil {
		return 0, fmt.Errorf("PowerLawExponent: %w", ErrEmptySequence)
	}

	// Collect (log k, log P(k)) for observed positive degrees.
	var logK, logP []float64
	n := float64(len(seq))
	for k := 1; k < len(counts); k++ {
		if counts[k] == 0 {
			continue
		}
		logK = append(logK, math.Log(float64(k)))
		logP = append(logP, math.Log(float64(counts[k])/n))
	}
	if len(logK) < 2 {
		return 0, fmt.Errorf("PowerLawExponent: %d distinct positive degrees: %w", len(logK), ErrDegenerate)
	}

	_, slope := stat.LinearRegression(logK, logP, nil, false)

	return -slope, nil
}

// toFloats widens an int sequence for gonum/stat consumption.
func toFloats(seq []int) []float64 {
	out := make([]float64, len(seq))
	for i, d := range seq {
		out[i] = float64(d)
	}

	return out
}
