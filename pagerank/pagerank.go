// SPDX-License-Identifier: MIT

package pagerank

import (
	"log/slog"
	"sort"

	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/tokenize"
)

// Ranks returns the rank of every word in g. A nil or empty graph yields an
// empty map.
func Ranks(g *core.Graph, opts ...Option) map[string]float64 {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil {
		return map[string]float64{}
	}

	words := g.Vertices()
	n := len(words)
	out := make(map[string]float64, n)
	if n == 0 {
		return out
	}

	idx := make(map[string]int, n)
	for i, w := range words {
		idx[w] = i
	}

	// Reverse index, out-degrees and the frequency seed in one pass.
	in := make([][]int, n)
	outDeg := make([]float64, n)
	freq := make([]float64, n)
	for i := range freq {
		freq[i] = 1
	}
	var sinks []int
	for i, w := range words {
		edges := g.OutEdges(w)
		outDeg[i] = float64(len(edges))
		if len(edges) == 0 {
			sinks = append(sinks, i)
		}
		for _, to := range g.Successors(w) {
			j := idx[to]
			in[j] = append(in[j], i)
			freq[j] += float64(edges[to])
		}
	}

	var total float64
	for _, f := range freq {
		total += f
	}
	rank := make([]float64, n)
	for i, f := range freq {
		rank[i] = f / total
	}

	d, N := o.Damping, float64(n)
	next := make([]float64, n)
	for iter := 0; iter < o.Iterations; iter++ {
		var sink float64
		for _, s := range sinks {
			sink += rank[s]
		}
		for i := range next {
			var sum float64
			for _, u := range in[i] {
				sum += rank[u] / outDeg[u]
			}
			next[i] = (1-d)/N + d*(sum+sink/N)
		}
		rank, next = next, rank
	}

	for i, w := range words {
		out[w] = rank[i]
	}

	if o.Logger != nil {
		o.Logger.Debug("pagerank completed",
			slog.Int("words", n),
			slog.Int("sinks", len(sinks)),
			slog.Int("iterations", o.Iterations),
			slog.Float64("damping", d),
		)
	}

	return out
}

// Rank returns the rank of word after normalizing it like corpus text.
// Unknown words rank 0 by convention; this is not an error.
func Rank(g *core.Graph, word string, opts ...Option) float64 {
	w := tokenize.Word(word)
	if g == nil || !g.HasVertex(w) {
		return 0
	}

	return Ranks(g, opts...)[w]
}

// Top returns the k highest-ranked words, ties broken by word. k ≤ 0 or
// k > V returns all words.
func Top(g *core.Graph, k int, opts ...Option) []Score {
	ranks := Ranks(g, opts...)
	scores := make([]Score, 0, len(ranks))
	for w, r := range ranks {
		scores = append(scores, Score{Word: w, Rank: r})
	}
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Rank != scores[j].Rank {
			return scores[i].Rank > scores[j].Rank
		}
		return scores[i].Word < scores[j].Word
	})
	if k > 0 && k < len(scores) {
		scores = scores[:k]
	}

	return scores
}
