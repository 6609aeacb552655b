// SPDX-License-Identifier: MIT

// Package wordgraph turns a text into a directed, weighted word-adjacency
// graph and analyzes it.
//
// Every word becomes a vertex; an edge a→b with weight w records that "a"
// was immediately followed by "b" w times. On top of that graph the module
// answers five kinds of query:
//
//	bridge/    bridge words x with a→x→b, and text augmented with them
//	dijkstra/  weighted shortest paths, with every tied path enumerated
//	pagerank/  frequency-seeded PageRank, fixed 100 rounds
//	walk/      random walks that stop on a dead end or a repeated edge
//
// Supporting packages:
//
//	core/      the thread-safe Graph with deterministic successor order
//	tokenize/  ASCII-letter normalization of text and query words
//	builder/   graph construction from text, readers and confined files
//	export/    edge-list and walk-transcript files
//	rng/       injectable randomness
//	config/    YAML + WORDGRAPH_* environment settings
//	logging/   slog logger construction
//	analysis/  one Session wiring all of the above
//	cmd/wordgraph the cobra command-line front end
//
// Quick example:
//
//	g, _ := builder.New("The scientist carefully analyzed the data")
//	fmt.Println(bridge.Query(g, "the", "carefully"))
//	// The bridge words from the to carefully is scientist.
package wordgraph
