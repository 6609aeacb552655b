// SPDX-License-Identifier: MIT
// Package: wordgraph/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (path, underlying OS error) is attached with %w wrapping.

package builder

import (
	"errors"
	"fmt"
)

// ErrPathEscape indicates that the requested input path resolves outside the
// configured base directory. Classification: validation error; nothing was read.
var ErrPathEscape = errors.New("builder: path escapes base directory")

// ErrRead indicates the text source could not be opened or read.
// Classification: I/O error; the wrapped error carries the OS cause.
var ErrRead = errors.New("builder: cannot read source")

// ErrNilGraph indicates a nil *core.Graph target.
var ErrNilGraph = errors.New("builder: graph is nil")

// readErrorf wraps cause under ErrRead with the offending source name.
func readErrorf(source string, cause error) error {
	return fmt.Errorf("%w %q: %w", ErrRead, source, cause)
}
