// SPDX-License-Identifier: MIT

// Package dijkstra computes weighted shortest paths over a word graph and
// enumerates every path that achieves the minimum.
//
// Overview:
//
//   - Edge weights (transition counts, always ≥ 1) are used as distances.
//   - A min-heap frontier expands the next-closest vertex; stale entries whose
//     distance exceeds the recorded best are skipped ("lazy decrease-key").
//   - Each vertex keeps a predecessor *set*: a strictly shorter distance
//     resets it to the new predecessor, an equal distance appends to it. The
//     resulting predecessor DAG encodes all tied shortest paths.
//   - Paths walks that DAG with an explicit stack and returns every minimal
//     path, bounded only by the graph's own tie structure.
//
// Two layers:
//
//   - Dijkstra / Paths: the algorithm, with sentinel errors for bad input.
//   - ShortestPath / Report: the word-level query. Words are normalized before
//     lookup and "not found" / "no path" are reported as data, not errors.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V) for distances; path enumeration is proportional
//     to the number of minimal paths, which can be exponential in tie-heavy graphs.
//   - Space: O(V + E).
//
// Example:
//
//	rep := dijkstra.ShortestPath(g, "the", "report")
//	fmt.Print(rep)
//	// Shortest path(s) from "the" to "report" (length: 1):
//	// Path 1: the -> report
package dijkstra
