package rules

import (
	"fmt"

	"github.com/emblem-lang/emblem/ast"
	"github.com/emblem-lang/emblem/diag"
)

// numAttrsAffected lists the built-in commands with fixed attribute
// arity, and the (min, max) count of attrs each one accepts.
var numAttrsAffected = map[string]arity{
	"cite": {1, 1},
	"mark": {1, 1},
	"ref":  {1, 1},
	"toc":  {0, 0},
	"bf":   {0, 0},
	"it":   {0, 0},
	"sc":   {0, 0},
	"af":   {0, 0},
	"dt":   {0, 0},
	"tt":   {0, 0},
	"h1":   {0, 0},
	"h2":   {0, 0},
	"h3":   {0, 0},
	"h4":   {0, 0},
	"h5":   {0, 0},
	"h6":   {0, 0},
	"if":   {0, 0},
}

// NumAttrs flags known commands with fixed attr-count receiving the
// wrong number of attributes.
type NumAttrs struct{}

// NewNumAttrs builds a NumAttrs rule.
func NewNumAttrs() *NumAttrs { return &NumAttrs{} }

func (*NumAttrs) ID() string { return "num-attrs" }

func (*NumAttrs) Analyse(content ast.Content) []*diag.Log {
	cmd, ok := content.(*ast.Command)
	if !ok {
		return nil
	}
	a, ok := numAttrsAffected[cmd.Name]
	if !ok {
		return nil
	}

	numAttrs := 0
	if cmd.Attrs != nil {
		numAttrs = len(cmd.Attrs.List)
	}

	switch {
	case a.min == a.max && numAttrs != a.max:
		verb := "few"
		if numAttrs > a.max {
			verb = "many"
		}
		expected := fmt.Sprintf("expected %d %s", a.max, plural(a.max, "attribute", "attributes"))
		if a.max == 0 {
			expected = fmt.Sprintf("expected no %s", plural(a.max, "attribute", "attributes"))
		}
		return []*diag.Log{
			diag.Warn(fmt.Sprintf("too %s attributes passed to .%s", verb, cmd.Name)).
				WithSrc(diag.NewSrc(cmd.Loc()).WithAnnotation(diag.InfoNote(cmd.InvocationLoc, expected))),
		}
	case numAttrs > a.max:
		return []*diag.Log{
			diag.Warn(fmt.Sprintf("too many attributes passed to .%s", cmd.Name)).
				WithSrc(diag.NewSrc(cmd.Loc()).WithAnnotation(diag.InfoNote(cmd.InvocationLoc,
					fmt.Sprintf("expected at most %d %s", a.max, plural(a.max, "attribute", "attributes"))))),
		}
	case numAttrs < a.min:
		return []*diag.Log{
			diag.Warn(fmt.Sprintf("too few attributes passed to .%s", cmd.Name)).
				WithSrc(diag.NewSrc(cmd.Loc()).WithAnnotation(diag.InfoNote(cmd.InvocationLoc,
					fmt.Sprintf("expected at least %d %s", a.min, plural(a.min, "attribute", "attributes"))))),
		}
	}
	return nil
}

func (*NumAttrs) Done() []*diag.Log { return nil }
