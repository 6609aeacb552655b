// SPDX-License-Identifier: MIT

// Command wordgraph builds a word-adjacency graph from a text file and
// answers bridge-word, shortest-path, PageRank and random-walk queries.
//
//	wordgraph --input "file/Easy Test.txt" bridge scientist analyzed
//	wordgraph path the report
//	wordgraph rank --top 5
//	wordgraph walk
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
