// SPDX-License-Identifier: MIT

// Package walk performs random walks over a core.Graph.
//
// A walk starts at a uniformly chosen word and repeatedly follows a uniformly
// chosen successor. It stops when:
//
//   - the current word has no successors (StopDeadEnd), or
//   - the chosen edge current→next was already traversed (StopRepeatedEdge);
//     the repeated target is not appended.
//
// Edge weights do not bias the choice. Revisiting a word is allowed; only
// directed edges are tracked, so a→b and b→a are distinct.
package walk

import (
	"context"
	"errors"
	"strings"

	"github.com/katalvlaran/wordgraph/rng"
)

// Sentinel errors for Random.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("walk: graph is nil")

	// ErrStartNotFound is returned when WithStart names an absent word.
	ErrStartNotFound = errors.New("walk: start vertex not found")
)

// Reason records why a walk ended.
type Reason int

const (
	// StopEmpty means the graph had no vertices.
	StopEmpty Reason = iota

	// StopDeadEnd means the last word has no successors.
	StopDeadEnd

	// StopRepeatedEdge means the next chosen edge had already been used.
	StopRepeatedEdge

	// StopCanceled means the context was canceled mid-walk.
	StopCanceled
)

// String returns a lower-case label for r.
func (r Reason) String() string {
	switch r {
	case StopEmpty:
		return "empty"
	case StopDeadEnd:
		return "dead-end"
	case StopRepeatedEdge:
		return "repeated-edge"
	case StopCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Result is the outcome of one walk.
type Result struct {
	// Path lists the visited words in order; words may repeat.
	Path []string

	// Stop is why the walk ended.
	Stop Reason
}

// String joins Path with single spaces.
func (r *Result) String() string {
	if r == nil {
		return ""
	}

	return strings.Join(r.Path, " ")
}

// Option configures Random via functional arguments.
type Option func(*Options)

// Options holds the parameters and callbacks of a walk.
type Options struct {
	// Ctx allows cancellation between steps.
	Ctx context.Context

	// Rand drives the start and step choices. nil means a fresh
	// crypto-seeded generator per walk.
	Rand rng.Source

	// Start fixes the first word instead of drawing it. Empty means random.
	Start string

	// OnStep is called for every traversed edge, after it is appended.
	OnStep func(from, to string)
}

// DefaultOptions returns a background context, random start and a no-op
// OnStep hook.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		OnStep: func(string, string) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithRand injects the randomness source. Panics on nil.
func WithRand(src rng.Source) Option {
	if src == nil {
		panic("walk: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = src
	}
}

// WithSeed uses a deterministic generator seeded with seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rng.NewSeeded(seed)
	}
}

// WithStart fixes the first word of the walk.
func WithStart(id string) Option {
	return func(o *Options) {
		o.Start = id
	}
}

// WithOnStep registers a callback run on every traversed edge.
func WithOnStep(fn func(from, to string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}
