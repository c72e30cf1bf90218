package rules

import (
	"github.com/emblem-lang/emblem/ast"
	"github.com/emblem-lang/emblem/diag"
)

// EmptyAttrs flags a `[]` attribute list with no entries.
type EmptyAttrs struct{}

// NewEmptyAttrs builds an EmptyAttrs rule.
func NewEmptyAttrs() *EmptyAttrs { return &EmptyAttrs{} }

func (*EmptyAttrs) ID() string { return "empty-attrs" }

func (*EmptyAttrs) Analyse(content ast.Content) []*diag.Log {
	cmd, ok := content.(*ast.Command)
	if !ok || cmd.Attrs == nil || len(cmd.Attrs.List) != 0 {
		return nil
	}

	return []*diag.Log{
		diag.Warn("empty attributes").
			WithSrc(diag.NewSrc(cmd.Loc()).WithAnnotation(diag.InfoNote(cmd.Attrs.Loc(), "found here"))),
	}
}

func (*EmptyAttrs) Done() []*diag.Log { return nil }
