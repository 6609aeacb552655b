// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Vertex and edge construction (AddVertex, AddEdge) and point queries.
// Determinism:
//   - AddEdge appends a successor to order[from] only the first time the pair is seen.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

// AddVertex inserts the word id into the vertex set.
// Adding an existing vertex is a no-op.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices[id] = struct{}{}

	return nil
}

// AddEdge records one occurrence of from→to and returns the edge weight
// after the increment.
//
// Implementation:
//   - Stage 1: Validate both endpoints are non-empty.
//   - Stage 2: Under the write lock, insert both endpoints into the vertex set.
//   - Stage 3: Create the (from,to) bucket with weight 1, or increment it.
//
// Behavior highlights:
//   - Self-loops are regular edges ("b b" yields b→b).
//   - Either the whole update is applied or, on error, nothing is.
//
// Errors:
//   - ErrEmptyVertexID: if from == "" or to == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (int64, error) {
	if from == "" || to == "" {
		return 0, ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices[from] = struct{}{}
	g.vertices[to] = struct{}{}

	out, ok := g.adjacency[from]
	if !ok {
		out = make(map[string]int64)
		g.adjacency[from] = out
	}
	if _, seen := out[to]; !seen {
		g.order[from] = append(g.order[from], to)
		g.edgeCount++
	}
	out[to]++
	g.totalWeight++

	return out[to], nil
}

// HasVertex reports whether id is in the vertex set.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// HasEdge reports whether at least one from→to occurrence was recorded.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.Weight(from, to)

	return ok
}

// Weight returns the from→to weight and whether the edge exists.
// Complexity: O(1).
func (g *Graph) Weight(from, to string) (int64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, ok := g.adjacency[from][to]

	return w, ok
}
