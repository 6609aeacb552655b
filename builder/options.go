// SPDX-License-Identifier: MIT
// Package: wordgraph/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"io"
	"log/slog"
)

// Option customizes FromFile and the other builders.
type Option func(*builderConfig)

// builderConfig aggregates all knobs used by the builders.
type builderConfig struct {
	// baseDir bounds FromFile; "" means the process working directory.
	baseDir string
	// logger receives debug summaries; never nil after newBuilderConfig.
	logger *slog.Logger
}

func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return cfg
}

// WithBaseDir bounds FromFile to paths inside dir. Panics on "".
func WithBaseDir(dir string) Option {
	if dir == "" {
		panic("builder: WithBaseDir(\"\")")
	}
	return func(c *builderConfig) {
		c.baseDir = dir
	}
}

// WithLogger routes build summaries to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}
