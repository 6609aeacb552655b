// SPDX-License-Identifier: MIT

// Package core provides the thread-safe in-memory word graph that every
// wordgraph engine reads from.
//
// The Graph G = (V,E) is a directed multigraph collapsed to simple weighted
// edges:
//
//   - Vertices are normalized words; identity is the string value itself.
//   - An edge (from,to) carries an integer Weight equal to the number of times
//     "from" was immediately followed by "to" in the source text.
//   - The vertex set is explicit, so sinks and isolated single-token
//     documents are representable.
//
// Invariants:
//
//   - Every edge has Weight ≥ 1.
//   - Every edge endpoint is a member of the vertex set.
//   - The graph only grows: there is no vertex or edge removal.
//
// Core Methods:
//
//	// Construction (additive only)
//	AddVertex(id string) error              // O(1)
//	AddEdge(from, to string) (int64, error) // O(1), returns the new weight
//
//	// Query (defensive copies; callers cannot mutate the graph)
//	HasVertex(id string) bool               // O(1)
//	HasEdge(from, to string) bool           // O(1)
//	Weight(from, to string) (int64, bool)   // O(1)
//	Vertices() []string                     // O(V·log V), sorted
//	Successors(id string) []string          // O(d), first-seen order
//	OutEdges(id string) map[string]int64    // O(d)
//	Edges() []Edge                          // O(E·log E), sorted by (From,To)
//
//	// Counts
//	VertexCount(), EdgeCount(), OutDegree(id), TotalWeight(), Stats()
//
//	// Cloning
//	Clone() *Graph                          // O(V+E) deep copy
//
// Concurrency:
//
// A single sync.RWMutex guards all state. Construction is serialized by the
// write lock and any number of engines may read concurrently once the graph
// is built.
//
// Quick example:
//
//	g := core.NewGraph()
//	_, _ = g.AddEdge("the", "scientist")
//	_, _ = g.AddEdge("the", "scientist")
//	w, _ := g.Weight("the", "scientist") // 2
package core
