package rules

import (
	"github.com/emblem-lang/emblem/ast"
	"github.com/emblem-lang/emblem/diag"
)

// AttrOrdering flags an unnamed attribute that appears after any named
// attribute on the same command.
type AttrOrdering struct{}

// NewAttrOrdering builds an AttrOrdering rule.
func NewAttrOrdering() *AttrOrdering { return &AttrOrdering{} }

func (*AttrOrdering) ID() string { return "attr-ordering" }

func (*AttrOrdering) Analyse(content ast.Content) []*diag.Log {
	cmd, ok := content.(*ast.Command)
	if !ok || cmd.Attrs == nil {
		return nil
	}

	var logs []*diag.Log
	sawNamed := false
	for _, a := range cmd.Attrs.List {
		if a.Named() {
			sawNamed = true
			continue
		}
		if sawNamed {
			logs = append(logs, diag.Warn("unnamed attribute after named attributes").
				WithSrc(diag.NewSrc(cmd.Loc()).WithAnnotation(diag.WarnNote(a.Loc(), "found here"))).
				WithHelp("place unnamed attributes before named ones"))
		}
	}
	return logs
}

func (*AttrOrdering) Done() []*diag.Log { return nil }
