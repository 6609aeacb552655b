// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Read-only snapshots of the vertex set and adjacency (Vertices, Successors,
//       OutEdges, Edges), counts and Stats.
// Determinism:
//   - Vertices() is sorted lex asc.
//   - Successors() follows first-seen order.
//   - Edges() is sorted by (From, To).
// Concurrency:
//   - All methods hold mu read lock and return independent copies.

package core

import "sort"

// Vertices returns a sorted copy of the vertex set.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.mu.RUnlock()
	sort.Strings(ids)

	return ids
}

// Successors returns the distinct successors of id in the order they were
// first recorded. Unknown vertices and sinks yield an empty (non-nil) slice.
//
// Behavior highlights:
//   - Querying an unknown vertex is not an error at this layer.
//   - The returned slice is a copy; appending to it cannot affect the graph.
//
// Complexity: O(d), d = out-degree.
func (g *Graph) Successors(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	succ := g.order[id]
	out := make([]string, len(succ))
	copy(out, succ)

	return out
}

// OutEdges returns a successor → weight copy for id. Unknown vertices and
// sinks yield an empty (non-nil) map.
// Complexity: O(d).
func (g *Graph) OutEdges(id string) map[string]int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make(map[string]int64, len(g.adjacency[id]))
	for to, w := range g.adjacency[id] {
		out[to] = w
	}

	return out
}

// OutDegree returns the number of distinct successors of id (not the sum of
// weights). Unknown vertices have degree 0.
// Complexity: O(1).
func (g *Graph) OutDegree(id string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order[id])
}

// Edges returns value copies of every edge, sorted by From then To.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	edges := make([]Edge, 0, g.edgeCount)
	for from, succ := range g.order {
		for _, to := range succ {
			edges = append(edges, Edge{From: from, To: to, Weight: g.adjacency[from][to]})
		}
	}
	g.mu.RUnlock()

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})

	return edges
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of distinct (from,to) pairs.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// TotalWeight returns the sum of all edge weights.
func (g *Graph) TotalWeight() int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.totalWeight
}

// Stats returns a consistent O(V) snapshot of the graph's counters.
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	st := GraphStats{
		VertexCount: len(g.vertices),
		EdgeCount:   g.edgeCount,
		TotalWeight: g.totalWeight,
	}
	for id := range g.vertices {
		if len(g.order[id]) == 0 {
			st.SinkCount++
		}
	}

	return st
}
