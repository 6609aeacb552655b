// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordgraph/builder"
	"github.com/katalvlaran/wordgraph/config"
)

const easyText = "The scientist carefully analyzed the data, wrote a detailed report, " +
	"and shared the report with the team, but the team requested more data, " +
	"so the scientist quickly analyzed it again."

// sandbox points every WORDGRAPH_* setting into a fresh temp dir holding the
// default input file.
func sandbox(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "file"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, defaultInput), []byte(easyText), 0o644))

	t.Setenv(config.EnvBaseDir, dir)
	t.Setenv(config.EnvGraphFile, filepath.Join(dir, "file", "graph.txt"))
	t.Setenv(config.EnvWalkFile, filepath.Join(dir, "file", "random_walk.txt"))
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvLogFormat, "text")

	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestBridge(t *testing.T) {
	sandbox(t)
	out, err := run(t, "bridge", "Scientist", "analyzed")
	require.NoError(t, err)
	assert.Equal(t, "The bridge words from scientist to analyzed are carefully and quickly.\n", out)

	out, err = run(t, "bridge", "the", "carefully")
	require.NoError(t, err)
	assert.Equal(t, "The bridge words from the to carefully is scientist.\n", out)
}

func TestGenerate(t *testing.T) {
	sandbox(t)
	out, err := run(t, "--seed", "3", "generate", "scientist", "analyzed")
	require.NoError(t, err)
	assert.Contains(t, []string{"scientist carefully analyzed\n", "scientist quickly analyzed\n"}, out)
}

func TestPath(t *testing.T) {
	sandbox(t)
	out, err := run(t, "path", "the", "zebra")
	require.NoError(t, err)
	assert.Equal(t, "No \"zebra\" in the graph!\n", out)

	out, err = run(t, "path", "scientist")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Shortest paths from \"scientist\":\n"), out)
}

func TestRank(t *testing.T) {
	sandbox(t)
	out, err := run(t, "rank", "zebra")
	require.NoError(t, err)
	assert.Equal(t, "PageRank of \"zebra\": 0.000000\n", out)

	out, err = run(t, "rank", "--top", "3")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 3)
}

func TestShowAndWalkSaveFiles(t *testing.T) {
	dir := sandbox(t)

	out, err := run(t, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "the -> scientist (weight: 2)\n")
	_, err = os.Stat(filepath.Join(dir, "file", "graph.txt"))
	assert.NoError(t, err)

	out, err = run(t, "walk")
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(dir, "file", "random_walk.txt"))
	require.NoError(t, err)
	assert.Equal(t, strings.TrimSuffix(out, "\n"), string(data))
}

func TestErrors(t *testing.T) {
	sandbox(t)
	_, err := run(t, "--input", "../escape.txt", "walk")
	assert.ErrorIs(t, err, builder.ErrPathEscape)

	_, err = run(t, "--input", "missing.txt", "walk")
	assert.ErrorIs(t, err, builder.ErrRead)

	_, err = run(t, "--log-level", "loud", "walk")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = run(t, "bridge", "only-one")
	assert.Error(t, err)
}
