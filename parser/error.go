package parser

import (
	"fmt"
	"strings"

	"github.com/emblem-lang/emblem/diag"
	"github.com/emblem-lang/emblem/source"
	"github.com/emblem-lang/emblem/token"
)

// Error is a fatal syntax error: a token was found where the grammar
// didn't expect it.
type Error struct {
	Loc      source.Location
	Got      token.Kind
	Expected []string // human names, e.g. "a command", "'}'"
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: unexpected %s, expected %s", e.Loc, e.Got, strings.Join(e.Expected, " or "))
}

// Log converts e into a diagnostic Log.
func (e *Error) Log() *diag.Log {
	return diag.Error(fmt.Sprintf("unexpected %s", e.Got)).
		WithSrc(diag.NewSrc(e.Loc).WithAnnotation(diag.ErrorNote(e.Loc, fmt.Sprintf("expected %s", strings.Join(e.Expected, " or "))))).
		WithExpected(e.Expected)
}
