// Package main builds the emblem developer CLI: a thin harness over the
// front end's own operations (lex, parse, lint, explain), one file per
// subcommand, the way cmd/cue/cmd assembles cue's subcommands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "emblem",
		Short:         "inspect the emblem front end's lexer, parser, and linter",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	for _, sub := range []*cobra.Command{
		newLexCmd(),
		newParseCmd(),
		newLintCmd(),
		newExplainCmd(),
	} {
		cmd.AddCommand(sub)
	}

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
