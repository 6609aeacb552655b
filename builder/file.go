// SPDX-License-Identifier: MIT
// Package: wordgraph/builder
//
// file.go: FromFile and the base-directory path guard.

package builder

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/wordgraph/core"
)

// FromFile reads the UTF-8 text file at path and records it into g.
//
// Implementation:
//   - Stage 1: Resolve path against the base directory (WithBaseDir, default
//     the working directory) and reject it if it escapes the base.
//   - Stage 2: Open and tokenize the whole file.
//   - Stage 3: Fold the tokens into g.
//
// Errors:
//   - ErrNilGraph:   g == nil.
//   - ErrPathEscape: the resolved path lies outside the base directory.
//   - ErrRead:       the file cannot be opened or read.
func FromFile(g *core.Graph, path string, opts ...Option) error {
	if g == nil {
		return ErrNilGraph
	}
	cfg := newBuilderConfig(opts...)

	resolved, err := Resolve(cfg.baseDir, path)
	if err != nil {
		return err
	}

	f, err := os.Open(resolved)
	if err != nil {
		return readErrorf(path, err)
	}
	defer f.Close()

	words, err := readWords(f)
	if err != nil {
		return readErrorf(path, err)
	}
	cfg.logger.Debug("source file read", slog.String("path", resolved), slog.Int("tokens", len(words)))

	return FromWords(g, words, opts...)
}

// Resolve joins path onto base and returns the cleaned absolute result,
// or ErrPathEscape if it would leave base. Relative paths are taken relative
// to base; absolute paths must already lie inside it. An empty base means the
// process working directory.
//
// Symlinks in base are resolved; the target is resolved too when it exists,
// so a link inside base that points outside is rejected as well.
func Resolve(base, path string) (string, error) {
	if base == "" {
		base = "."
	}
	absBase, err := filepath.Abs(base)
	if err != nil {
		return "", fmt.Errorf("builder: resolve base %q: %w", base, err)
	}
	if resolved, err := filepath.EvalSymlinks(absBase); err == nil {
		absBase = resolved
	}

	target := path
	if !filepath.IsAbs(target) {
		target = filepath.Join(absBase, target)
	}
	target = filepath.Clean(target)
	if resolved, err := filepath.EvalSymlinks(target); err == nil {
		target = resolved
	}

	if !within(absBase, target) {
		return "", fmt.Errorf("%w: %q", ErrPathEscape, path)
	}

	return target, nil
}

// within reports whether target equals base or lies beneath it.
func within(base, target string) bool {
	if target == base {
		return true
	}
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return false
	}

	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
