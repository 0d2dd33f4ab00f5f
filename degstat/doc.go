// Package degstat computes descriptive statistics over the degree sequences
// produced by simulation runs: summary moments, degree histograms, the
// empirical complementary CDF, and a log–log least-squares estimate of the
// power-law exponent.
//
// The exponent estimate is the standard quick look, not a rigorous fit:
// it regresses log(P(k)) on log(k) over the observed positive degrees and
// negates the slope. For a Barabási–Albert growth_preferential run the
// estimate approaches 3 as t_max grows; for growth_random the tail decays
// exponentially and the "exponent" is only a descriptive number. Treat it as
// plot support, not inference.
//
// All functions are pure: they read a degree sequence and allocate their own
// outputs, so results from parallel iterations can be processed concurrently.
//
// Errors:
//
//	ErrEmptySequence – statistics over zero vertices are undefined
//	ErrDegenerate    – fewer than two distinct positive degrees to regress on
package degstat
