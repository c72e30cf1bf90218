package rules

import (
	"github.com/emblem-lang/emblem/ast"
	"github.com/emblem-lang/emblem/diag"
)

// EmphDelimiters flags the discouraged emphasis spellings: "*" for
// italic (prefer "_") and "__" for bold (prefer "**").
type EmphDelimiters struct{}

// NewEmphDelimiters builds an EmphDelimiters rule.
func NewEmphDelimiters() *EmphDelimiters { return &EmphDelimiters{} }

func (*EmphDelimiters) ID() string { return "emph-delimiters" }

func (*EmphDelimiters) Analyse(content ast.Content) []*diag.Log {
	sugar, ok := content.(*ast.Sugar)
	if !ok {
		return nil
	}

	switch {
	case sugar.Kind == ast.Italic && sugar.Delimiter == "*":
		return []*diag.Log{
			diag.Warn("asterisks used to delimit italic text").
				WithSrc(diag.NewSrc(sugar.Loc()).WithAnnotation(diag.HelpNote(sugar.Loc(), "use underscores instead"))),
		}
	case sugar.Kind == ast.Bold && sugar.Delimiter == "__":
		return []*diag.Log{
			diag.Warn("underscores used to delimit bold text").
				WithSrc(diag.NewSrc(sugar.Loc()).WithAnnotation(diag.HelpNote(sugar.Loc(), "use asterisks instead"))),
		}
	}
	return nil
}

func (*EmphDelimiters) Done() []*diag.Log { return nil }
