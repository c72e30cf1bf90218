package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emblem-lang/emblem/explain"
)

func newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain <code>",
		Short: "print the long-form explanation for an E-code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]
			text, ok := explain.Lookup(code)
			if !ok {
				return errors.New(explain.ErrNoSuchCode(code))
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}
