// SPDX-License-Identifier: MIT

package bridge

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/rng"
	"github.com/katalvlaran/wordgraph/tokenize"
)

// Words returns every bridge word from word1 to word2, each exactly once,
// in word1's successor order.
//
// Validation order:
//  1. g must be non-nil (ErrNilGraph).
//  2. Both words must be vertices (ErrWordNotFound).
//  3. At least one bridge must exist (ErrNoBridge).
//
// Words are looked up as given; callers wanting normalization use Query.
//
// Complexity: O(d), d = out-degree of word1.
func Words(g *core.Graph, word1, word2 string) ([]string, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(word1) || !g.HasVertex(word2) {
		return nil, ErrWordNotFound
	}
	bridges := find(g, word1, word2)
	if len(bridges) == 0 {
		return nil, ErrNoBridge
	}

	return bridges, nil
}

// find lists the bridges without any presence checks.
func find(g *core.Graph, word1, word2 string) []string {
	var bridges []string
	for _, x := range g.Successors(word1) {
		if g.HasEdge(x, word2) {
			bridges = append(bridges, x)
		}
	}

	return bridges
}

// Query normalizes both words and reports the bridge words between them as
// a sentence:
//
//	No word1 or word2 in the graph!
//	No bridge words from the to data!
//	The bridge words from the to carefully is scientist.
//	The bridge words from scientist to analyzed are carefully and quickly.
func Query(g *core.Graph, word1, word2 string) string {
	w1, w2 := tokenize.Word(word1), tokenize.Word(word2)
	bridges, err := Words(g, w1, w2)
	switch {
	case errors.Is(err, ErrNoBridge):
		return fmt.Sprintf("No bridge words from %s to %s!", w1, w2)
	case err != nil:
		return "No word1 or word2 in the graph!"
	}

	verb := "are"
	if len(bridges) == 1 {
		verb = "is"
	}

	return fmt.Sprintf("The bridge words from %s to %s %s %s.", w1, w2, verb, joinAnd(bridges))
}

// joinAnd renders [a] as "a", [a b] as "a and b", [a b c] as "a, b and c".
func joinAnd(words []string) string {
	if len(words) <= 1 {
		return strings.Join(words, "")
	}

	return strings.Join(words[:len(words)-1], ", ") + " and " + words[len(words)-1]
}

// Generate normalizes text the same way the builder does and inserts one
// bridge word, chosen uniformly at random, between every adjacent pair that
// has at least one. Pairs without a bridge stay adjacent. The graph is not
// modified.
//
// The result is the word sequence joined by single spaces; text without any
// letters yields "".
//
// Complexity: O(Σ d(wᵢ)) over the input words.
func Generate(g *core.Graph, text string, opts ...Option) string {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	words := tokenize.Words(text)
	if len(words) == 0 {
		return ""
	}
	if g == nil {
		return strings.Join(words, " ")
	}
	src := rng.Or(o.Rand)

	out := make([]string, 0, 2*len(words)-1)
	for i, w := range words {
		out = append(out, w)
		if i+1 == len(words) {
			break
		}
		if bridges := find(g, w, words[i+1]); len(bridges) > 0 {
			out = append(out, rng.Pick(src, bridges))
		}
	}

	return strings.Join(out, " ")
}
