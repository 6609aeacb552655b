// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/tokenize"
)

// Route is the outcome for one target of a shortest-path query.
type Route struct {
	// Target is the destination word.
	Target string

	// Reachable is false when no path exists; Distance and Paths are then unset.
	Reachable bool

	// Distance is the shared length of every path in Paths.
	Distance int64

	// Paths lists every minimal path, each starting at the source and ending at Target.
	Paths [][]string
}

// Report is the result of ShortestPath. Lookup failures are data:
// NotFound is set and Missing names the word that is not a vertex.
type Report struct {
	Source string
	Target string // empty in all-targets mode

	NotFound bool
	Missing  string

	// Routes has one entry in single-target mode, and one per other vertex
	// (sorted by word) in all-targets mode.
	Routes []Route
}

// AllTargets reports whether the query was issued without a target.
func (r *Report) AllTargets() bool { return r.Target == "" }

// ShortestPath answers a word-level shortest-path query.
//
// Both words are normalized like corpus text. When word2 is blank the query
// runs in all-targets mode: one Route per other vertex, unreachable ones
// reported individually instead of failing the whole call.
//
// Behavior highlights:
//   - word1 absent → NotFound, Missing = word1 (checked first).
//   - word2 absent (single-target mode) → NotFound, Missing = word2.
//   - no path → a single Route with Reachable == false.
//
// Extra opts (e.g. WithMaxDistance) are forwarded to Dijkstra; any Source
// option is overridden by word1.
func ShortestPath(g *core.Graph, word1, word2 string, opts ...Option) *Report {
	src := tokenize.Word(word1)
	all := strings.TrimSpace(word2) == ""
	rep := &Report{Source: src}
	if !all {
		rep.Target = tokenize.Word(word2)
	}

	if g == nil || !g.HasVertex(src) {
		rep.NotFound, rep.Missing = true, src
		return rep
	}
	if !all && !g.HasVertex(rep.Target) {
		rep.NotFound, rep.Missing = true, rep.Target
		return rep
	}

	dist, prev, err := Dijkstra(g, append(opts[:len(opts):len(opts)], Source(src))...)
	if err != nil {
		// Only reachable for an empty source, which HasVertex already rejected.
		rep.NotFound, rep.Missing = true, src
		return rep
	}

	if !all {
		rep.Routes = []Route{route(dist, prev, src, rep.Target)}
		return rep
	}
	for _, v := range g.Vertices() {
		if v == src {
			continue
		}
		rep.Routes = append(rep.Routes, route(dist, prev, src, v))
	}

	return rep
}

func route(dist map[string]int64, prev map[string][]string, src, target string) Route {
	d := dist[target]
	if d == Infinity {
		return Route{Target: target}
	}

	return Route{
		Target:    target,
		Reachable: true,
		Distance:  d,
		Paths:     Paths(prev, src, target),
	}
}

// String renders the report in the line-oriented text form:
//
//	No "w" in the graph!
//	No path from "a" to "b"!
//	Shortest path(s) from "a" to "b" (length: 3):
//	Path 1: a -> x -> b
//
// All-targets reports start with `Shortest paths from "a":` followed by one
// block or `No path to "n"` line per other vertex.
func (r *Report) String() string {
	if r.NotFound {
		return fmt.Sprintf("No %q in the graph!", r.Missing)
	}

	var b strings.Builder
	if !r.AllTargets() {
		rt := r.Routes[0]
		if !rt.Reachable {
			return fmt.Sprintf("No path from %q to %q!", r.Source, r.Target)
		}
		writeRoute(&b, r.Source, rt)
		return b.String()
	}

	fmt.Fprintf(&b, "Shortest paths from %q:\n", r.Source)
	for _, rt := range r.Routes {
		if !rt.Reachable {
			fmt.Fprintf(&b, "No path to %q\n", rt.Target)
			continue
		}
		writeRoute(&b, r.Source, rt)
	}

	return b.String()
}

func writeRoute(b *strings.Builder, source string, rt Route) {
	fmt.Fprintf(b, "Shortest path(s) from %q to %q (length: %d):\n", source, rt.Target, rt.Distance)
	for i, p := range rt.Paths {
		fmt.Fprintf(b, "Path %d: %s\n", i+1, strings.Join(p, " -> "))
	}
}
