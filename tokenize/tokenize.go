// SPDX-License-Identifier: MIT

// Package tokenize turns free text into the normalized word sequence the
// word graph is built from.
//
// Normalization keeps ASCII letters only: every other rune (digits,
// punctuation, non-ASCII letters) becomes a separator, letters are
// lowercased, and separator runs collapse to a single space.
//
//	Normalize("Hello, World!! 42x") == "hello world x"
package tokenize

import "strings"

// Normalize returns the cleaned form of text: lowercase ASCII words separated
// by single spaces, without leading or trailing space.
// Complexity: O(len(text)).
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	pending := false
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
			r += 'a' - 'A'
		default:
			pending = b.Len() > 0
			continue
		}
		if pending {
			b.WriteByte(' ')
			pending = false
		}
		b.WriteRune(r)
	}

	return b.String()
}

// Words splits text into normalized tokens. Text without letters yields nil.
func Words(text string) []string {
	n := Normalize(text)
	if n == "" {
		return nil
	}

	return strings.Split(n, " ")
}

// Word normalizes a single query word. Input containing separators is
// squeezed to its normalized form, e.g. " Data! " → "data"; "new-york"
// → "new york", which matches no vertex.
func Word(s string) string {
	return Normalize(s)
}
