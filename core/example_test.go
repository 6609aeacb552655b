// SPDX-License-Identifier: MIT
package core_test

import (
	"fmt"

	"github.com/katalvlaran/wordgraph/core"
)

// ExampleGraph demonstrates additive construction and read-only queries.
func ExampleGraph() {
	g := core.NewGraph()

	// "a b b a" recorded pair by pair.
	_, _ = g.AddEdge("a", "b")
	_, _ = g.AddEdge("b", "b")
	_, _ = g.AddEdge("b", "a")

	fmt.Println("Vertices:", g.Vertices())
	for _, e := range g.Edges() {
		fmt.Printf("%s -> %s (%d)\n", e.From, e.To, e.Weight)
	}

	// Output:
	// Vertices: [a b]
	// a -> b (1)
	// b -> a (1)
	// b -> b (1)
}
