// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/wordgraph/core"
)

// Dijkstra computes shortest distances from Options.Source to every vertex of
// g, together with the full predecessor sets needed to enumerate tied paths.
//
// Returns:
//
//   - dist: vertex → minimum distance (Infinity if unreachable or beyond MaxDistance).
//   - prev: vertex → every predecessor u with dist[u] + w(u,v) == dist[v], in
//     the order they were discovered. The source and unreachable vertices map
//     to an empty slice.
//   - err:  non-nil only for invalid input.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string][]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}

	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, len(vertices)),
		prev:    make(map[string][]string, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
	}
	r.init(vertices)
	r.process()

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph         // The input graph; read-only within Dijkstra.
	options Options             // Configuration options (Source, thresholds).
	dist    map[string]int64    // Vertex ID → current best distance from Source.
	prev    map[string][]string // Vertex ID → predecessors achieving dist.
	pq      nodePQ              // Min-heap of *nodeItem for the lazy frontier.
}

// init sets every distance to Infinity, clears predecessor sets and seeds the
// frontier with the source at distance 0.
func (r *runner) init(vertices []string) {
	for _, v := range vertices {
		r.dist[v] = Infinity
		r.prev[v] = []string{}
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process pops the closest frontier entry until the heap is empty or the
// next distance exceeds MaxDistance. Entries whose distance is greater than
// the recorded best are stale and skipped.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if item.dist > r.dist[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.relax(item.id)
	}
}

// relax examines each out-edge u→v:
//
//   - newDist <  dist[v]: record newDist, reset prev[v] to {u}, push v.
//   - newDist == dist[v]: append u to prev[v] (another shortest route).
//
// Assumes dist[u] is final.
func (r *runner) relax(u string) {
	du := r.dist[u]
	out := r.g.OutEdges(u)
	for _, v := range r.g.Successors(u) {
		w := out[v]
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		newDist := du + w
		if newDist > r.options.MaxDistance {
			continue
		}

		switch {
		case newDist < r.dist[v]:
			r.dist[v] = newDist
			r.prev[v] = []string{u}
			heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
		case newDist == r.dist[v]:
			r.prev[v] = append(r.prev[v], u)
		}
	}
}

// Paths enumerates every path source → … → target through the predecessor
// sets produced by Dijkstra, in discovery order of the predecessors.
//
// The walk is an iterative depth-first search from target back to source
// with an explicit stack of (vertex, next-predecessor) frames; each time the
// source is reached the stack, read bottom-up reversed, is one path.
//
// Returns nil when target has no predecessors and is not the source. The
// predecessor graph of positive-weight Dijkstra is acyclic, so the walk
// always terminates.
func Paths(prev map[string][]string, source, target string) [][]string {
	if target == source {
		return [][]string{{source}}
	}
	if len(prev[target]) == 0 {
		return nil
	}

	type frame struct {
		id   string
		next int
	}
	stack := []frame{{id: target}}
	var paths [][]string
	for len(stack) > 0 {
		top := len(stack) - 1
		if stack[top].id == source {
			path := make([]string, len(stack))
			for i, f := range stack {
				path[len(stack)-1-i] = f.id
			}
			paths = append(paths, path)
			stack = stack[:top]
			continue
		}

		preds := prev[stack[top].id]
		if stack[top].next == len(preds) {
			stack = stack[:top]
			continue
		}
		pred := preds[stack[top].next]
		stack[top].next++
		stack = append(stack, frame{id: pred})
	}

	return paths
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   string // vertex ID
	dist int64  // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
