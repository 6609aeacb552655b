// SPDX-License-Identifier: MIT

// Package export writes and reads the plain-text artifacts produced by a
// wordgraph session: the edge list consumed by the external visualiser and
// the random-walk transcript.
//
// Edge-list format, one edge per line, sorted by (from, to), no header:
//
//	from to weight
//
// Save functions overwrite their target atomically (temp file + rename) and
// never create missing parent directories.
package export

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/wordgraph/core"
)

// Sentinel errors for export operations.
var (
	// ErrMalformedLine indicates an edge-list line that is not "from to weight".
	ErrMalformedLine = errors.New("export: malformed edge-list line")

	// ErrNilGraph indicates a nil *core.Graph was passed.
	ErrNilGraph = errors.New("export: graph is nil")
)

// WriteEdgeList writes every edge of g to w.
func WriteEdgeList(w io.Writer, g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	bw := bufio.NewWriter(w)
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "%s %s %d\n", e.From, e.To, e.Weight); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// ReadEdgeList parses an edge list back into a graph. Blank lines are
// skipped. Each weight w is replayed as w occurrences of the edge.
//
// Errors:
//   - ErrMalformedLine (wrapped with the line number) on bad field count or
//     a weight that is not a positive integer.
//   - any error from r.
func ReadEdgeList(r io.Reader) (*core.Graph, error) {
	g := core.NewGraph()
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, line, text)
		}
		w, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil || w < 1 {
			return nil, fmt.Errorf("%w: line %d: bad weight %q", ErrMalformedLine, line, fields[2])
		}
		for i := int64(0); i < w; i++ {
			if _, err = g.AddEdge(fields[0], fields[1]); err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedLine, line, err)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return g, nil
}

// WriteWalk writes path as a single space-joined line without a trailing
// newline.
func WriteWalk(w io.Writer, path []string) error {
	_, err := io.WriteString(w, strings.Join(path, " "))

	return err
}

// SaveGraph overwrites path with the edge list of g.
func SaveGraph(path string, g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}

	return save(path, func(w io.Writer) error { return WriteEdgeList(w, g) })
}

// SaveWalk overwrites path with the walk transcript.
func SaveWalk(path string, words []string) error {
	return save(path, func(w io.Writer) error { return WriteWalk(w, words) })
}

// save writes through a temp file in the target directory and renames it
// into place. The directory must already exist.
func save(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("export: save %q: %w", path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err = write(tmp); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("export: save %q: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("export: save %q: %w", path, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("export: save %q: %w", path, err)
	}

	return nil
}
