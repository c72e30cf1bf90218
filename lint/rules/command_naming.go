package rules

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/emblem-lang/emblem/ast"
	"github.com/emblem-lang/emblem/diag"
)

var conformantCommandName = regexp.MustCompile(`^[a-z0-9-]*$`)

// CommandNaming flags a command name that isn't lowercase-with-dashes,
// suggesting the Unicode-correct lowercased, underscore-to-dash form.
type CommandNaming struct{}

// NewCommandNaming builds a CommandNaming rule.
func NewCommandNaming() *CommandNaming { return &CommandNaming{} }

func (*CommandNaming) ID() string { return "command-naming" }

func (*CommandNaming) Analyse(content ast.Content) []*diag.Log {
	cmd, ok := content.(*ast.Command)
	if !ok || conformantCommandName.MatchString(cmd.Name) {
		return nil
	}

	lowered := cases.Lower(language.Und).String(cmd.Name)
	suggestion := strings.ReplaceAll(lowered, "_", "-")

	return []*diag.Log{
		diag.Warn(fmt.Sprintf("commands should be lowercase with dashes: got ‘.%s’", cmd.Name)).
			WithSrc(diag.NewSrc(cmd.Loc()).WithAnnotation(diag.HelpNote(
				cmd.InvocationLoc, fmt.Sprintf("try changing this to ‘.%s’", suggestion)))).
			WithNote("command-names are case-insensitive but lowercase reads more fluidly"),
	}
}

func (*CommandNaming) Done() []*diag.Log { return nil }
