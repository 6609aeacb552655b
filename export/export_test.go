// SPDX-License-Identifier: MIT

package export_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordgraph/builder"
	"github.com/katalvlaran/wordgraph/export"
)

func TestWriteEdgeList(t *testing.T) {
	g, err := builder.New("A B B A b")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, export.WriteEdgeList(&buf, g))
	assert.Equal(t, "a b 2\nb a 1\nb b 1\n", buf.String())
}

func TestEdgeListRoundTrip(t *testing.T) {
	g, err := builder.New("the cat saw the cat and the dog")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, export.WriteEdgeList(&buf, g))

	back, err := export.ReadEdgeList(strings.NewReader(buf.String()))
	require.NoError(t, err)
	assert.Equal(t, g.Edges(), back.Edges())
}

func TestReadEdgeList_Malformed(t *testing.T) {
	for _, in := range []string{
		"a b\n",
		"a b c d\n",
		"a b x\n",
		"a b 0\n",
		"a b -3\n",
	} {
		_, err := export.ReadEdgeList(strings.NewReader(in))
		assert.ErrorIs(t, err, export.ErrMalformedLine, in)
	}

	g, err := export.ReadEdgeList(strings.NewReader("\n  \na b 2\n"))
	require.NoError(t, err)
	w, ok := g.Weight("a", "b")
	assert.True(t, ok)
	assert.EqualValues(t, 2, w)
}

func TestWriteWalk(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteWalk(&buf, []string{"a", "b", "a"}))
	assert.Equal(t, "a b a", buf.String())
}

func TestSave_Overwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "random_walk.txt")
	require.NoError(t, os.WriteFile(path, []byte("old content that is longer\n"), 0o644))

	require.NoError(t, export.SaveWalk(path, []string{"x", "y"}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x y", string(data))

	g, err := builder.New("a b")
	require.NoError(t, err)
	gpath := filepath.Join(dir, "graph.txt")
	require.NoError(t, export.SaveGraph(gpath, g))
	data, err = os.ReadFile(gpath)
	require.NoError(t, err)
	assert.Equal(t, "a b 1\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "temp files must not be left behind")
}

func TestSave_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file", "random_walk.txt")
	err := export.SaveWalk(path, []string{"a"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, statErr := os.Stat(filepath.Dir(path))
	assert.True(t, os.IsNotExist(statErr), "parent directory must not be created")
}

func TestNilGraph(t *testing.T) {
	assert.ErrorIs(t, export.WriteEdgeList(&bytes.Buffer{}, nil), export.ErrNilGraph)
	assert.ErrorIs(t, export.SaveGraph(filepath.Join(t.TempDir(), "g.txt"), nil), export.ErrNilGraph)
}
