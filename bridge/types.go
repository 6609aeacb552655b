// SPDX-License-Identifier: MIT

// Package bridge finds bridge words in a core.Graph and uses them to
// augment text.
//
// A bridge word x connects word1 to word2 in two hops: both word1→x and
// x→word2 are edges. Edge weights are irrelevant; only existence counts.
//
// Lookup outcomes are ordinary results, not faults:
//
//	– ErrWordNotFound  if word1 or word2 is not a vertex (checked first;
//	                   the two cases are deliberately not distinguished).
//	– ErrNoBridge      if both exist but nothing connects them.
//
// Query renders those outcomes as the human-readable report strings, and
// Generate inserts one randomly chosen bridge between every adjacent pair of
// an input text that has one.
package bridge

import (
	"errors"

	"github.com/katalvlaran/wordgraph/rng"
)

// Sentinel errors returned by Words.
var (
	// ErrWordNotFound indicates word1 or word2 is absent from the graph.
	ErrWordNotFound = errors.New("bridge: word1 or word2 not in graph")

	// ErrNoBridge indicates both words exist but no bridge word connects them.
	ErrNoBridge = errors.New("bridge: no bridge words")

	// ErrNilGraph indicates a nil *core.Graph was passed.
	ErrNilGraph = errors.New("bridge: graph is nil")
)

// Option configures Generate.
type Option func(*Options)

// Options holds the knobs for Generate.
type Options struct {
	// Rand picks among multiple bridges. nil means a fresh crypto-seeded
	// generator per Generate call.
	Rand rng.Source
}

// WithRand injects the randomness source. Panics on nil.
func WithRand(src rng.Source) Option {
	if src == nil {
		panic("bridge: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = src
	}
}

// WithSeed uses a deterministic generator seeded with seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rng.NewSeeded(seed)
	}
}
