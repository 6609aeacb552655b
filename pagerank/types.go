// SPDX-License-Identifier: MIT

// Package pagerank computes weighted PageRank over a word graph.
//
// The variant is fixed by contract and differs from the textbook one in two
// ways that change its numeric output:
//
//   - Seed: each word starts with mass proportional to its corpus frequency,
//     freq(n) = 1 + Σ weights of edges into n, rather than 1/N.
//   - Iterations: exactly Iterations rounds (default 100) run; there is no
//     convergence test.
//
// Each round, with damping d and N words:
//
//	sink   = Σ rank(s) over words s with no successors
//	new(n) = (1-d)/N + d·( Σ_{u→n} rank(u)/outDegree(u) + sink/N )
//
// outDegree counts distinct successors, not occurrences. Ranks sum to 1 after
// every round.
//
// Complexity: O(V + E) to build the reverse index, then O(Iterations·(V + E)).
package pagerank

import "log/slog"

// Defaults used when no option overrides them.
const (
	// DefaultDamping is the probability of following a link versus jumping.
	DefaultDamping = 0.85

	// DefaultIterations is the exact number of power-iteration rounds.
	DefaultIterations = 100
)

// Options configures a PageRank run.
type Options struct {
	Damping    float64
	Iterations int

	// Logger receives a debug summary per run. Nil disables logging.
	Logger *slog.Logger
}

// Option is a functional option for PageRank.
type Option func(*Options)

// DefaultOptions returns Damping = 0.85, Iterations = 100.
func DefaultOptions() Options {
	return Options{Damping: DefaultDamping, Iterations: DefaultIterations}
}

// WithDamping overrides the damping factor. Panics outside [0,1].
func WithDamping(d float64) Option {
	if d < 0 || d > 1 {
		panic("pagerank: WithDamping(d) requires 0 <= d <= 1")
	}
	return func(o *Options) {
		o.Damping = d
	}
}

// WithIterations overrides the number of rounds. Panics on k < 1.
func WithIterations(k int) Option {
	if k < 1 {
		panic("pagerank: WithIterations(k) requires k >= 1")
	}
	return func(o *Options) {
		o.Iterations = k
	}
}

// WithLogger attaches a logger for the per-run debug summary. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("pagerank: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// Score pairs a word with its rank.
type Score struct {
	Word string
	Rank float64
}
