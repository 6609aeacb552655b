// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print every edge and save the edge list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprint(cmd.OutOrStdout(), a.session.ExportGraph())
			return nil
		},
	}
}

func (a *app) bridgeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bridge WORD1 WORD2",
		Short: "Query the bridge words between two words",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), a.session.BridgeWords(args[0], args[1]))
			return nil
		},
	}
}

func (a *app) generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate TEXT...",
		Short: "Insert bridge words into new text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), a.session.GenerateText(strings.Join(args, " ")))
			return nil
		},
	}
}

func (a *app) pathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path WORD1 [WORD2]",
		Short: "Find shortest paths from one word to another, or to all words",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var target string
			if len(args) == 2 {
				target = args[1]
			}
			fmt.Fprint(cmd.OutOrStdout(), ensureNewline(a.session.ShortestPath(args[0], target)))
			return nil
		},
	}
}

func (a *app) rankCmd() *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "rank [WORD]",
		Short: "Compute the PageRank of a word, or list the top-ranked words",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				fmt.Fprintf(out, "PageRank of %q: %.6f\n", args[0], a.session.PageRank(args[0]))
				return nil
			}
			for i, s := range a.session.TopRanks(top) {
				fmt.Fprintf(out, "%d. %s %.6f\n", i+1, s.Word, s.Rank)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&top, "top", "n", 10, "number of words to list when no word is given (0 = all)")

	return cmd
}

func (a *app) walkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "walk",
		Short: "Random-walk the graph and save the walk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), a.session.RandomWalk())
			return nil
		},
	}
}

func ensureNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
