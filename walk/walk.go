// SPDX-License-Identifier: MIT

package walk

import (
	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/rng"
)

// edge is the visited-set key.
type edge struct {
	from, to string
}

// Random walks g from a uniformly chosen (or fixed) start.
//
// Implementation:
//   - Stage 1: Validate g and the optional start word.
//   - Stage 2: Draw the start uniformly from Vertices() (sorted, so a seeded
//     source reproduces the same walk).
//   - Stage 3: Loop: draw a successor uniformly; stop on a dead end or an
//     already-used edge; otherwise record the edge and append the target.
//
// An empty graph yields an empty Path with Stop == StopEmpty.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrStartNotFound if WithStart names an absent word.
//
// Complexity: O(E) steps at most, since every step consumes a new edge.
func Random(g *core.Graph, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if o.Start != "" && !g.HasVertex(o.Start) {
		return nil, ErrStartNotFound
	}

	res := &Result{Path: []string{}, Stop: StopEmpty}
	words := g.Vertices()
	if len(words) == 0 {
		return res, nil
	}

	src := rng.Or(o.Rand)
	cur := o.Start
	if cur == "" {
		cur = rng.Pick(src, words)
	}
	res.Path = append(res.Path, cur)

	used := make(map[edge]struct{})
	for {
		if o.Ctx.Err() != nil {
			res.Stop = StopCanceled
			return res, nil
		}
		succ := g.Successors(cur)
		if len(succ) == 0 {
			res.Stop = StopDeadEnd
			return res, nil
		}
		next := rng.Pick(src, succ)
		e := edge{from: cur, to: next}
		if _, seen := used[e]; seen {
			res.Stop = StopRepeatedEdge
			return res, nil
		}
		used[e] = struct{}{}
		res.Path = append(res.Path, next)
		o.OnStep(cur, next)
		cur = next
	}
}
