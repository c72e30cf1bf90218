// Package lint implements a pluggable lint engine: a registry of rules,
// each dispatched against every Content node of a parsed file in
// pre-order, collecting diagnostics rather than failing fast.
package lint

import (
	"github.com/emblem-lang/emblem/ast"
	"github.com/emblem-lang/emblem/diag"
)

// Lint is a single rule: analyse is called on every Content node
// encountered during traversal, done once after the whole file has been
// walked. A Lint may carry state between calls (e.g. to spot
// cross-paragraph duplicates) but must not be reused across runs.
type Lint interface {
	ID() string
	Analyse(content ast.Content) []*diag.Log
	Done() []*diag.Log
}

// Run traverses file, dispatching every Content node (pre-order: inline
// args, then remainder, then trailer args for a Command; the inner
// argument for a Sugar) to every rule in lints, then collects each rule's
// Done() report. Every returned Log is tagged with its producing rule's
// id via diag.Log.WithRuleID.
func Run(file *ast.ParsedFile, lints []Lint) []*diag.Log {
	var problems []*diag.Log
	for _, par := range file.Pars {
		lintPar(par, lints, &problems)
	}
	for _, l := range lints {
		for _, p := range l.Done() {
			problems = append(problems, p.WithRuleID(l.ID()))
		}
	}
	return problems
}

func lintPar(par *ast.Par, lints []Lint, problems *[]*diag.Log) {
	for _, part := range par.Parts {
		for _, c := range part.Line {
			lintContent(c, lints, problems)
		}
	}
}

func lintContent(c ast.Content, lints []Lint, problems *[]*diag.Log) {
	for _, l := range lints {
		for _, p := range l.Analyse(c) {
			*problems = append(*problems, p.WithRuleID(l.ID()))
		}
	}

	switch n := c.(type) {
	case *ast.Command:
		for _, arg := range n.InlineArgs {
			lintContentSlice(arg, lints, problems)
		}
		lintContentSlice(n.RemainderArg, lints, problems)
		for _, arg := range n.TrailerArgs {
			lintContentSlice(arg, lints, problems)
		}
	case *ast.Sugar:
		lintContentSlice(n.Arg, lints, problems)
	}
}

func lintContentSlice(cs []ast.Content, lints []Lint, problems *[]*diag.Log) {
	for _, c := range cs {
		lintContent(c, lints, problems)
	}
}
