package rules

import (
	"github.com/emblem-lang/emblem/ast"
	"github.com/emblem-lang/emblem/diag"
)

// SpiltGlue flags every SpiltGlue token: glue that failed to connect two
// text fragments because it was surrounded by whitespace or a line break.
type SpiltGlue struct{}

// NewSpiltGlue builds a SpiltGlue rule.
func NewSpiltGlue() *SpiltGlue { return &SpiltGlue{} }

func (*SpiltGlue) ID() string { return "spilt-glue" }

func (*SpiltGlue) Analyse(content ast.Content) []*diag.Log {
	g, ok := content.(*ast.SpiltGlue)
	if !ok {
		return nil
	}
	return []*diag.Log{
		diag.Warn("glue does not connect text fragments").
			WithSrc(diag.NewSrc(g.Loc()).WithAnnotation(diag.InfoNote(g.Loc(), "found here"))),
	}
}

func (*SpiltGlue) Done() []*diag.Log { return nil }
