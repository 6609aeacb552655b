// SPDX-License-Identifier: MIT
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/wordgraph/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	s.g = core.NewGraph()
}

func (s *GraphSuite) TestAddVertexAndHasVertex() {
	require := require.New(s.T())
	require.False(s.g.HasVertex("a"), "empty graph should not have a")
	require.False(s.g.HasVertex(""), "empty ID is always absent")

	require.NoError(s.g.AddVertex("a"))
	require.True(s.g.HasVertex("a"))

	// Idempotence
	require.NoError(s.g.AddVertex("a"))
	require.Equal(1, s.g.VertexCount())

	require.ErrorIs(s.g.AddVertex(""), core.ErrEmptyVertexID)
}

func (s *GraphSuite) TestAddEdgeAccumulatesWeight() {
	require := require.New(s.T())

	w, err := s.g.AddEdge("a", "b")
	require.NoError(err)
	require.Equal(int64(1), w)
	require.True(s.g.HasVertex("a") && s.g.HasVertex("b"), "AddEdge should auto-add vertices")

	w, err = s.g.AddEdge("a", "b")
	require.NoError(err)
	require.Equal(int64(2), w)

	got, ok := s.g.Weight("a", "b")
	require.True(ok)
	require.Equal(int64(2), got)
	require.False(s.g.HasEdge("b", "a"), "edges are directed")

	require.Equal(1, s.g.EdgeCount(), "parallel occurrences collapse into one edge")
	require.Equal(int64(2), s.g.TotalWeight())
}

func (s *GraphSuite) TestAddEdgeRejectsEmptyEndpoint() {
	require := require.New(s.T())
	_, err := s.g.AddEdge("", "b")
	require.ErrorIs(err, core.ErrEmptyVertexID)
	_, err = s.g.AddEdge("a", "")
	require.ErrorIs(err, core.ErrEmptyVertexID)
	require.Zero(s.g.VertexCount(), "failed AddEdge must not mutate the graph")
}

func (s *GraphSuite) TestSelfLoop() {
	require := require.New(s.T())
	_, err := s.g.AddEdge("b", "b")
	require.NoError(err)
	require.True(s.g.HasEdge("b", "b"))
	require.Equal([]string{"b"}, s.g.Successors("b"))
}

func (s *GraphSuite) TestSuccessorsKeepFirstSeenOrder() {
	require := require.New(s.T())
	for _, to := range []string{"z", "m", "a", "m", "z"} {
		_, err := s.g.AddEdge("x", to)
		require.NoError(err)
	}
	require.Equal([]string{"z", "m", "a"}, s.g.Successors("x"))
	require.Equal(3, s.g.OutDegree("x"))
}

func (s *GraphSuite) TestUnknownVertexQueriesAreEmpty() {
	require := require.New(s.T())
	require.NotNil(s.g.OutEdges("ghost"))
	require.Empty(s.g.OutEdges("ghost"))
	require.NotNil(s.g.Successors("ghost"))
	require.Empty(s.g.Successors("ghost"))
	require.Zero(s.g.OutDegree("ghost"))
}

func (s *GraphSuite) TestSnapshotsAreDefensiveCopies() {
	require := require.New(s.T())
	_, _ = s.g.AddEdge("a", "b")

	out := s.g.OutEdges("a")
	out["b"] = 100
	out["c"] = 1
	w, _ := s.g.Weight("a", "b")
	require.Equal(int64(1), w)
	require.False(s.g.HasEdge("a", "c"))

	succ := s.g.Successors("a")
	succ[0] = "mutated"
	require.Equal([]string{"b"}, s.g.Successors("a"))

	vs := s.g.Vertices()
	vs[0] = "mutated"
	require.Equal([]string{"a", "b"}, s.g.Vertices())

	edges := s.g.Edges()
	edges[0].Weight = 42
	require.Equal(int64(1), s.g.Edges()[0].Weight)
}

func (s *GraphSuite) TestEdgesSortedAndClosed() {
	require := require.New(s.T())
	for _, p := range [][2]string{{"b", "a"}, {"a", "c"}, {"a", "b"}, {"c", "a"}} {
		_, err := s.g.AddEdge(p[0], p[1])
		require.NoError(err)
	}
	edges := s.g.Edges()
	require.Equal([]core.Edge{
		{From: "a", To: "b", Weight: 1},
		{From: "a", To: "c", Weight: 1},
		{From: "b", To: "a", Weight: 1},
		{From: "c", To: "a", Weight: 1},
	}, edges)

	// Closure: every endpoint is a vertex.
	for _, e := range edges {
		require.True(s.g.HasVertex(e.From))
		require.True(s.g.HasVertex(e.To))
	}
}

func (s *GraphSuite) TestStats() {
	require := require.New(s.T())
	_, _ = s.g.AddEdge("a", "b")
	_, _ = s.g.AddEdge("a", "b")
	_, _ = s.g.AddEdge("b", "c")
	require.NoError(s.g.AddVertex("lonely"))

	st := s.g.Stats()
	require.Equal(core.GraphStats{VertexCount: 4, EdgeCount: 2, TotalWeight: 3, SinkCount: 2}, st)
}

func (s *GraphSuite) TestCloneIsIndependent() {
	require := require.New(s.T())
	_, _ = s.g.AddEdge("a", "b")
	c := s.g.Clone()
	_, _ = c.AddEdge("a", "b")
	_, _ = c.AddEdge("b", "c")

	w, _ := s.g.Weight("a", "b")
	require.Equal(int64(1), w)
	require.False(s.g.HasVertex("c"))
	require.Equal([]string{"a", "b", "c"}, c.Vertices())
	require.Equal(s.g.Successors("a"), c.Successors("a"))
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func TestWithCapacityPanicsOnNegative(t *testing.T) {
	require.Panics(t, func() { core.WithCapacity(-1) })
}
