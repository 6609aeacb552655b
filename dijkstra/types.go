// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Infinity is the distance reported for unreachable vertices.
const Infinity int64 = math.MaxInt64

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex ID (must be non-empty and present in the graph).
// MaxDistance      – vertices farther than this are left at Infinity. Must be ≥ 0.
// InfEdgeThreshold – edges with weight ≥ this threshold are treated as impassable.
//
//	Must be > 0. Default is math.MaxInt64 (no obstacles).
type Options struct {
	Source           string // The ID of the source vertex
	MaxDistance      int64  // Maximum distance to explore
	InfEdgeThreshold int64  // Weight threshold above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Panics on a negative value (ErrBadMaxDistance).
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold makes edges with weight ≥ threshold non-traversable,
// e.g. to route around boilerplate transitions that dominate a corpus.
// Panics on threshold ≤ 0 (ErrBadInfThreshold).
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options for source with no distance cap and no
// impassable edges.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MaxDistance:      Infinity,
		InfEdgeThreshold: Infinity,
	}
}
