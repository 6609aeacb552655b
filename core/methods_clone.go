// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copy of a Graph.

package core

// Clone returns a deep copy of g: vertex set, weights and successor order.
// The clone shares no maps or slices with g.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := NewGraph(WithCapacity(len(g.vertices)))
	for id := range g.vertices {
		c.vertices[id] = struct{}{}
	}
	for from, out := range g.adjacency {
		cp := make(map[string]int64, len(out))
		for to, w := range out {
			cp[to] = w
		}
		c.adjacency[from] = cp
	}
	for from, succ := range g.order {
		c.order[from] = append([]string(nil), succ...)
	}
	c.edgeCount = g.edgeCount
	c.totalWeight = g.totalWeight

	return c
}
