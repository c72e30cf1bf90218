package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/emblem-lang/emblem/lower"
	"github.com/emblem-lang/emblem/parser"
)

func newParseCmd() *cobra.Command {
	var showDoc bool

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "parse a file (or stdin) and report any syntax errors",
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
			out := cmd.OutOrStdout()
			for _, e := range errs {
				fmt.Fprintln(cmd.ErrOrStderr(), e)
			}
			if len(errs) > 0 {
				return fmt.Errorf("%d syntax error(s)", len(errs))
			}

			fmt.Fprintf(out, "%d paragraph(s) parsed\n", len(file.Pars))
			if showDoc {
				printDoc(out, lower.Lower(file), 0)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showDoc, "doc", false, "also print the lowered document tree")
	return cmd
}

func printDoc(w io.Writer, d *lower.Doc, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	switch d.Kind {
	case lower.Word:
		fmt.Fprintf(w, "%sword %q\n", indent, d.Text)
	case lower.Dash:
		fmt.Fprintf(w, "%sdash\n", indent)
	case lower.Glue:
		fmt.Fprintf(w, "%sglue\n", indent)
	case lower.Command:
		plus := ""
		if d.Plus {
			plus = "+"
		}
		fmt.Fprintf(w, "%scommand .%s%s\n", indent, d.Name, plus)
		for _, arg := range d.Elems {
			printDoc(w, arg, depth+1)
		}
	case lower.ContentList:
		fmt.Fprintf(w, "%scontent\n", indent)
		for _, e := range d.Elems {
			printDoc(w, e, depth+1)
		}
	}
}
