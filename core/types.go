// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge, GraphStats types, GraphOption, sentinel errors and NewGraph.
// Concurrency:
//   - mu guards vertices, adjacency, order and counters.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNilGraph indicates a nil *Graph was passed where a graph is required.
	ErrNilGraph = errors.New("core: graph is nil")
)

// Edge is a value snapshot of one weighted directed edge.
//
// Edges returned by the Graph are copies; modifying them has no effect on
// the graph they came from.
type Edge struct {
	// From is the source word.
	From string

	// To is the destination word.
	To string

	// Weight is the number of recorded From→To occurrences (always ≥ 1).
	Weight int64
}

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	VertexCount int   // |V|
	EdgeCount   int   // number of distinct (from,to) pairs
	TotalWeight int64 // sum of all edge weights (number of recorded transitions)
	SinkCount   int   // vertices with no outgoing edges
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the internal maps for an expected number of
// distinct words. Panics on a negative hint.
func WithCapacity(n int) GraphOption {
	if n < 0 {
		panic("core: WithCapacity(n<0)")
	}

	return func(g *Graph) { g.capHint = n }
}

// Graph is the word-adjacency graph.
//
// vertices holds the explicit node set; adjacency[from][to] is the edge
// weight; order[from] keeps successors in the order they were first seen so
// that iteration over out-edges is deterministic.
type Graph struct {
	mu sync.RWMutex

	capHint int

	vertices  map[string]struct{}
	adjacency map[string]map[string]int64
	order     map[string][]string

	edgeCount   int
	totalWeight int64
}

// NewGraph creates an empty Graph.
// Complexity: O(1) (O(n) with WithCapacity(n)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.vertices = make(map[string]struct{}, g.capHint)
	g.adjacency = make(map[string]map[string]int64, g.capHint)
	g.order = make(map[string][]string, g.capHint)

	return g
}
