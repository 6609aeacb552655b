// SPDX-License-Identifier: MIT

// Package rng supplies the randomness used by bridge-word text generation and
// random walks.
//
// Engines depend on the Source interface only, so tests can inject a seeded
// or scripted source while production callers get a fresh generator seeded
// from crypto/rand on every call (no shared mutable seed between calls).
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"
)

// Source picks uniformly distributed integers in [0, n). *rand.Rand
// satisfies it.
type Source interface {
	Intn(n int) int
}

// New returns a *rand.Rand seeded from crypto/rand. If the system entropy
// source fails the current time is used instead.
func New() *rand.Rand {
	var buf [8]byte
	seed := time.Now().UnixNano()
	if _, err := crand.Read(buf[:]); err == nil {
		seed = int64(binary.LittleEndian.Uint64(buf[:]))
	}

	return rand.New(rand.NewSource(seed))
}

// NewSeeded returns a deterministic *rand.Rand for reproducible runs.
func NewSeeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Pick returns a uniformly chosen element of items, or "" when items is empty.
func Pick(src Source, items []string) string {
	if len(items) == 0 {
		return ""
	}

	return items[src.Intn(len(items))]
}

// Or returns src, or a fresh crypto-seeded generator when src is nil.
func Or(src Source) Source {
	if src == nil {
		return New()
	}

	return src
}
