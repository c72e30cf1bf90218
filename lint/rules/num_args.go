package rules

import (
	"fmt"

	"github.com/emblem-lang/emblem/ast"
	"github.com/emblem-lang/emblem/diag"
)

type arity struct{ min, max int }

// numArgsAffected lists the built-in commands with fixed argument
// arity, and the (min, max) count of inline+remainder+trailer arguments
// each one accepts.
var numArgsAffected = map[string]arity{
	"toc": {0, 0},
	"bf":  {1, 1},
	"it":  {1, 1},
	"sc":  {1, 1},
	"af":  {1, 1},
	"dt":  {1, 1},
	"tt":  {1, 1},
	"h1":  {1, 1},
	"h2":  {1, 1},
	"h3":  {1, 1},
	"h4":  {1, 1},
	"h5":  {1, 1},
	"h6":  {1, 1},
	"if":  {2, 3},
}

// NumArgs flags known commands with fixed arity receiving the wrong
// count of arguments (inline args, remainder arg, trailer args summed).
type NumArgs struct{}

// NewNumArgs builds a NumArgs rule.
func NewNumArgs() *NumArgs { return &NumArgs{} }

func (*NumArgs) ID() string { return "num-args" }

func (*NumArgs) Analyse(content ast.Content) []*diag.Log {
	cmd, ok := content.(*ast.Command)
	if !ok {
		return nil
	}
	a, ok := numArgsAffected[cmd.Name]
	if !ok {
		return nil
	}

	numArgs := len(cmd.InlineArgs) + len(cmd.TrailerArgs)
	if cmd.RemainderArg != nil {
		numArgs++
	}

	switch {
	case a.min == a.max && numArgs != a.max:
		verb := "few"
		if numArgs > a.max {
			verb = "many"
		}
		expected := fmt.Sprintf("expected %d %s", a.max, plural(a.max, "argument", "arguments"))
		if a.max == 0 {
			expected = fmt.Sprintf("expected no %s", plural(a.max, "argument", "arguments"))
		}
		return []*diag.Log{
			diag.Warn(fmt.Sprintf("too %s arguments passed to .%s", verb, cmd.Name)).
				WithSrc(diag.NewSrc(cmd.Loc()).WithAnnotation(diag.InfoNote(cmd.InvocationLoc, expected))),
		}
	case numArgs > a.max:
		return []*diag.Log{
			diag.Warn(fmt.Sprintf("too many arguments passed to .%s", cmd.Name)).
				WithSrc(diag.NewSrc(cmd.Loc()).WithAnnotation(diag.InfoNote(cmd.InvocationLoc,
					fmt.Sprintf("expected at most %d %s", a.max, plural(a.max, "argument", "arguments"))))),
		}
	case numArgs < a.min:
		return []*diag.Log{
			diag.Warn(fmt.Sprintf("too few arguments passed to .%s", cmd.Name)).
				WithSrc(diag.NewSrc(cmd.Loc()).WithAnnotation(diag.InfoNote(cmd.InvocationLoc,
					fmt.Sprintf("expected at least %d %s", a.min, plural(a.min, "argument", "arguments"))))),
		}
	}
	return nil
}

func (*NumArgs) Done() []*diag.Log { return nil }
