// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordgraph/analysis"
	"github.com/katalvlaran/wordgraph/config"
	"github.com/katalvlaran/wordgraph/logging"
	"github.com/katalvlaran/wordgraph/rng"
)

const defaultInput = "file/Easy Test.txt"

// app carries the state shared by all subcommands of one invocation.
type app struct {
	configPath string
	input      string
	logLevel   string
	seed       int64

	session *analysis.Session
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "wordgraph",
		Short: "Analyze a text as a directed word graph",
		Long: `wordgraph reads a text file, links every word to the word that follows it
and answers queries against the resulting weighted graph.

Settings come from --config (YAML) and WORDGRAPH_* environment variables.
Input paths are resolved inside base_dir.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	f := root.PersistentFlags()
	f.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	f.StringVarP(&a.input, "input", "i", defaultInput, "text file to build the graph from")
	f.StringVar(&a.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	f.Int64Var(&a.seed, "seed", 0, "seed for reproducible randomness (0 = random)")

	root.AddCommand(
		a.showCmd(),
		a.bridgeCmd(),
		a.generateCmd(),
		a.pathCmd(),
		a.rankCmd(),
		a.walkCmd(),
	)

	return root
}

// setup loads configuration, builds the logger and the session graph.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
		if err = cfg.Validate(); err != nil {
			return err
		}
	}

	opts := []analysis.Option{
		analysis.WithLogger(logging.New(cfg.LogFormat, cfg.LogLevel, cmd.ErrOrStderr())),
	}
	if a.seed != 0 {
		opts = append(opts, analysis.WithRand(rng.NewSeeded(a.seed)))
	}

	a.session = analysis.New(cfg, opts...)

	return a.session.BuildGraph(a.input)
}
