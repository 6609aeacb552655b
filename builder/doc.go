// SPDX-License-Identifier: MIT
// Package: wordgraph/builder
//
// Package builder folds free text into a core.Graph.
//
// Text is normalized with tokenize.Words; every token becomes a vertex and
// each consecutive token pair is recorded with core.Graph.AddEdge:
//
//	"A B B A"  →  a→b(1), b→b(1), b→a(1), V = {a, b}
//
// Sources:
//
//   - FromWords:  an already tokenized sequence.
//   - FromText:   a string.
//   - FromReader: any io.Reader (UTF-8), consumed once.
//   - FromFile:   a file resolved against a base directory.
//
// Guarantees:
//
//   - A source that cannot be read fails with ErrRead; it never yields an
//     empty graph silently.
//   - FromFile rejects paths that escape the base directory with
//     ErrPathEscape before any read happens.
//   - On any error the graph is left untouched: input is fully tokenized
//     before the first mutation.
//   - Option constructors panic on meaningless input; builders never panic.
package builder
