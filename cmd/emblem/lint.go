package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emblem-lang/emblem/diag"
	"github.com/emblem-lang/emblem/lint"
	"github.com/emblem-lang/emblem/parser"
)

func newLintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint [file]",
		Short: "run the built-in lint rules against a file (or stdin)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			fileName, content, err := readSource(path)
			if err != nil {
				return err
			}

			file, errs := parser.Parse(fileName, content)
			for _, e := range errs {
				fmt.Fprintln(cmd.ErrOrStderr(), e)
			}
			if len(errs) > 0 {
				return fmt.Errorf("%d syntax error(s), not linting", len(errs))
			}

			lst := diag.NewList(false)
			lst.Add(diag.Debug, lint.Run(file, lint.Registry())...)
			lst.Sort()

			out := cmd.OutOrStdout()
			for _, p := range lst.Logs() {
				fmt.Fprintf(out, "%s [%s] %s\n", p.MsgType(), p.ID(), p.Msg())
			}
			if len(lst.Logs()) == 0 {
				fmt.Fprintln(out, "no problems found")
			}
			return nil
		},
	}
}
