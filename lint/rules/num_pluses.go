package rules

import (
	"github.com/emblem-lang/emblem/ast"
	"github.com/emblem-lang/emblem/diag"
	"github.com/emblem-lang/emblem/source"
)

// NumPluses flags a command or heading carrying more than one '+'
// specialisation marker, since only the presence of at least one plus
// is ever meaningful.
type NumPluses struct{}

// NewNumPluses builds a NumPluses rule.
func NewNumPluses() *NumPluses { return &NumPluses{} }

func (*NumPluses) ID() string { return "num-pluses" }

func (*NumPluses) Analyse(content ast.Content) []*diag.Log {
	switch n := content.(type) {
	case *ast.Command:
		if n.Pluses <= 1 {
			return nil
		}
		return []*diag.Log{numPlusesMessage(n.Loc(), n.InvocationLoc)}
	case *ast.Sugar:
		if n.Kind != ast.Heading || n.Pluses <= 1 {
			return nil
		}
		return []*diag.Log{numPlusesMessage(n.Loc(), n.InvocationLoc)}
	}
	return nil
}

func numPlusesMessage(loc, invocationLoc source.Location) *diag.Log {
	return diag.Warn("extra plus modifiers ignored").
		WithSrc(diag.NewSrc(loc).WithAnnotation(diag.HelpNote(invocationLoc, "remove all but one plus symbol")))
}

func (*NumPluses) Done() []*diag.Log { return nil }
