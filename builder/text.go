// SPDX-License-Identifier: MIT
// Package: wordgraph/builder
//
// text.go: in-memory sources: FromWords, FromText, FromReader, New.

package builder

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/tokenize"
)

// FromWords records words into g: each word becomes a vertex, each adjacent
// pair an edge occurrence.
//
// Empty strings in words are skipped, so a caller cannot create the
// empty-ID vertex by accident.
//
// Complexity: O(n) for n words.
func FromWords(g *core.Graph, words []string, opts ...Option) error {
	if g == nil {
		return ErrNilGraph
	}
	cfg := newBuilderConfig(opts...)

	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if w != "" {
			tokens = append(tokens, w)
		}
	}
	for _, w := range tokens {
		if err := g.AddVertex(w); err != nil {
			return err
		}
	}
	for i := 0; i+1 < len(tokens); i++ {
		if _, err := g.AddEdge(tokens[i], tokens[i+1]); err != nil {
			return err
		}
	}
	cfg.logger.Debug("words folded into graph",
		slog.Int("tokens", len(tokens)),
		slog.Int("vertices", g.VertexCount()),
		slog.Int("edges", g.EdgeCount()),
	)

	return nil
}

// FromText normalizes text and records it into g.
func FromText(g *core.Graph, text string, opts ...Option) error {
	return FromWords(g, tokenize.Words(text), opts...)
}

// FromReader consumes r once, normalizes it and records it into g. Line
// breaks act as ordinary separators, so a word at the end of one line is
// linked to the first word of the next.
//
// Errors:
//   - ErrRead: r failed (g is untouched).
func FromReader(g *core.Graph, r io.Reader, opts ...Option) error {
	if g == nil {
		return ErrNilGraph
	}
	words, err := readWords(r)
	if err != nil {
		return readErrorf("reader", err)
	}

	return FromWords(g, words, opts...)
}

// New builds a fresh graph from text.
func New(text string, opts ...Option) (*core.Graph, error) {
	g := core.NewGraph()
	if err := FromText(g, text, opts...); err != nil {
		return nil, err
	}

	return g, nil
}

// readWords reads r to the end and normalizes it as one text, so only r's
// own failures are errors, whatever the length of a punctuation-joined run.
func readWords(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return tokenize.Words(string(data)), nil
}
