package rules

import (
	"fmt"

	"github.com/emblem-lang/emblem/ast"
	"github.com/emblem-lang/emblem/diag"
)

// DuplicateAttrs flags two attrs on the same command sharing a dedup
// key: a named attr's key, or an unnamed attr's bare value (so
// "[bar,bar=baz]" is flagged as a duplicate of "bar" even though one
// spelling is named and the other isn't).
type DuplicateAttrs struct{}

// NewDuplicateAttrs builds a DuplicateAttrs rule.
func NewDuplicateAttrs() *DuplicateAttrs { return &DuplicateAttrs{} }

func (*DuplicateAttrs) ID() string { return "duplicate-attrs" }

func dedupKey(a *ast.Attr) string {
	if a.Named() {
		return a.Name()
	}
	return a.Value()
}

func (*DuplicateAttrs) Analyse(content ast.Content) []*diag.Log {
	cmd, ok := content.(*ast.Command)
	if !ok || cmd.Attrs == nil {
		return nil
	}

	firstSeen := map[string]*ast.Attr{}
	var logs []*diag.Log
	for _, a := range cmd.Attrs.List {
		key := dedupKey(a)
		first, seen := firstSeen[key]
		if !seen {
			firstSeen[key] = a
			continue
		}
		logs = append(logs, diag.Warn("duplicate attributes").
			WithSrc(diag.NewSrc(cmd.Loc()).
				WithAnnotation(diag.WarnNote(a.Loc(), fmt.Sprintf("found duplicate ‘%s’ here", key))).
				WithAnnotation(diag.InfoNote(first.Loc(), fmt.Sprintf("‘%s’ first defined here", key)))).
			WithHelp("remove multiple occurrences of the same attribute"))
	}
	return logs
}

func (*DuplicateAttrs) Done() []*diag.Log { return nil }
