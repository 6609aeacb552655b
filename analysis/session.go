// SPDX-License-Identifier: MIT

// Package analysis ties the wordgraph engines into one session: build a graph
// from a file once, then answer bridge-word, text-generation, shortest-path,
// PageRank and random-walk queries against it.
//
// Persistence is best-effort. RandomWalk and ExportGraph save their output
// to the configured files; a failed save is logged, counted in Diagnostics
// and does not change the returned value.
package analysis

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/wordgraph/bridge"
	"github.com/katalvlaran/wordgraph/builder"
	"github.com/katalvlaran/wordgraph/config"
	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/dijkstra"
	"github.com/katalvlaran/wordgraph/export"
	"github.com/katalvlaran/wordgraph/logging"
	"github.com/katalvlaran/wordgraph/pagerank"
	"github.com/katalvlaran/wordgraph/rng"
	"github.com/katalvlaran/wordgraph/walk"
)

// Option configures a Session.
type Option func(*Session)

// WithLogger routes session logs to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("analysis: WithLogger(nil)")
	}
	return func(s *Session) {
		s.log = l
	}
}

// WithRand injects the randomness used by GenerateText and RandomWalk.
// The source is not synchronized; sessions shared across goroutines need a
// safe one. Panics on nil.
func WithRand(src rng.Source) Option {
	if src == nil {
		panic("analysis: WithRand(nil)")
	}
	return func(s *Session) {
		s.rand = src
	}
}

// Diagnostics counts best-effort persistence outcomes.
type Diagnostics struct {
	GraphSaves    int
	WalkSaves     int
	SaveFailures  int
	LastSaveError error
}

// Session owns one graph and the settings used to build and persist it.
type Session struct {
	id   string
	cfg  *config.Config
	log  *slog.Logger
	rand rng.Source

	mu    sync.RWMutex
	graph *core.Graph
	diag  Diagnostics
}

// New creates a Session over an empty graph. A nil cfg means config.Default().
func New(cfg *config.Config, opts ...Option) *Session {
	if cfg == nil {
		cfg = config.Default()
	}
	s := &Session{id: uuid.NewString()[:8], cfg: cfg, graph: core.NewGraph()}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logging.Discard()
	}
	s.log = s.log.With(slog.String("session", s.id))

	return s
}

// BuildGraph replaces the session graph with one built from source, resolved
// inside cfg.BaseDir. On error the previous graph is kept.
//
// Errors: builder.ErrPathEscape, builder.ErrRead.
func (s *Session) BuildGraph(source string) error {
	g := core.NewGraph()
	err := builder.FromFile(g, source,
		builder.WithBaseDir(s.cfg.BaseDir),
		builder.WithLogger(s.log),
	)
	if err != nil {
		s.log.Error("graph build failed", slog.String("source", source), slog.Any("error", err))
		return err
	}

	st := g.Stats()
	s.log.Info("graph built",
		slog.String("source", source),
		slog.Int("words", st.VertexCount),
		slog.Int("edges", st.EdgeCount),
		slog.Int64("transitions", st.TotalWeight),
	)

	s.mu.Lock()
	s.graph = g
	s.mu.Unlock()

	return nil
}

// ID returns the short random identifier attached to every log record.
func (s *Session) ID() string {
	return s.id
}

// Graph returns a deep copy of the session graph.
func (s *Session) Graph() *core.Graph {
	return s.current().Clone()
}

func (s *Session) current() *core.Graph {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.graph
}

// BridgeWords reports the bridge words from word1 to word2.
func (s *Session) BridgeWords(word1, word2 string) string {
	return bridge.Query(s.current(), word1, word2)
}

// GenerateText inserts a bridge word between every adjacent pair of text
// that has one.
func (s *Session) GenerateText(text string) string {
	var opts []bridge.Option
	if s.rand != nil {
		opts = append(opts, bridge.WithRand(s.rand))
	}

	return bridge.Generate(s.current(), text, opts...)
}

// ShortestPath reports the shortest path(s) from word1 to word2, or from
// word1 to every other word when word2 is blank.
func (s *Session) ShortestPath(word1, word2 string) string {
	return dijkstra.ShortestPath(s.current(), word1, word2).String()
}

// PageRank returns the rank of word, 0 for unknown words.
func (s *Session) PageRank(word string) float64 {
	return pagerank.Rank(s.current(), word, pagerank.WithLogger(s.log))
}

// TopRanks returns the k highest-ranked words.
func (s *Session) TopRanks(k int) []pagerank.Score {
	return pagerank.Top(s.current(), k, pagerank.WithLogger(s.log))
}

// RandomWalk walks the graph once, saves the walk to cfg.WalkFile and
// returns it space-joined. An empty graph yields "" and saves nothing.
func (s *Session) RandomWalk() string {
	var opts []walk.Option
	if s.rand != nil {
		opts = append(opts, walk.WithRand(s.rand))
	}
	res, err := walk.Random(s.current(), opts...)
	if err != nil {
		// Only reachable with a nil graph, which New never leaves behind.
		s.log.Error("random walk failed", slog.Any("error", err))
		return ""
	}
	s.log.Debug("random walk finished", slog.Int("length", len(res.Path)), slog.String("stop", res.Stop.String()))
	if res.Stop == walk.StopEmpty {
		return ""
	}

	err = export.SaveWalk(s.cfg.WalkFile, res.Path)
	s.record(&s.diag.WalkSaves, "Error: Unable to save random walk", s.cfg.WalkFile, err)

	return res.String()
}

// ExportGraph renders every edge as "from -> to (weight: w)", saves the
// edge list to cfg.GraphFile and returns the rendering.
func (s *Session) ExportGraph() string {
	g := s.current()
	var b strings.Builder
	for _, e := range g.Edges() {
		fmt.Fprintf(&b, "%s -> %s (weight: %d)\n", e.From, e.To, e.Weight)
	}

	err := export.SaveGraph(s.cfg.GraphFile, g)
	s.record(&s.diag.GraphSaves, "Error: Unable to save graph", s.cfg.GraphFile, err)

	return b.String()
}

// Diagnostics returns a snapshot of the persistence counters.
func (s *Session) Diagnostics() Diagnostics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.diag
}

func (s *Session) record(ok *int, msg, path string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.diag.SaveFailures++
		s.diag.LastSaveError = err
		s.log.Error(msg, slog.String("path", path), slog.Any("error", err))
		return
	}
	*ok++
}
