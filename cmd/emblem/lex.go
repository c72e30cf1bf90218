package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/emblem-lang/emblem/lexer"
)

func newLexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lex [file]",
		Short: "print the token stream for a file (or stdin)",
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

			lex := lexer.New(fileName, content)
			out := cmd.OutOrStdout()
			for {
				tok, err := lex.Next()
				if err == io.EOF {
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\t%s\t%q\n", tok.Loc(), tok.Kind, tok.Raw.Raw())
			}
		},
	}
}
