package rules

import (
	"fmt"

	"github.com/emblem-lang/emblem/ast"
	"github.com/emblem-lang/emblem/diag"
)

type sugarForm struct {
	delimiter string // Delimiters form: surrounding text, e.g. "_", "**"
	prefix    string // Prefix form: surrounding text, e.g. "#", "@"
	plusForm  string // Prefix form used when the command carries pluses, "" if none
}

func delimiterForm(d string) sugarForm { return sugarForm{delimiter: d} }
func prefixForm(p, plusForm string) sugarForm {
	return sugarForm{prefix: p, plusForm: plusForm}
}

func (f sugarForm) isDelimiters() bool { return f.delimiter != "" }

// callsToSugars maps the canonical command a built-in sugar desugars to
// back to the surface form that would have produced the same call, per
// spec.md §4.5's Sugar.CallName table read in reverse.
var callsToSugars = map[string]sugarForm{
	"it": delimiterForm("_"),
	"bf": delimiterForm("**"),
	"tt": delimiterForm("`"),
	"sc": delimiterForm("="),
	"af": delimiterForm("=="),
	"h1": prefixForm("#", "#+"),
	"h2": prefixForm("##", "##+"),
	"h3": prefixForm("###", "###+"),
	"h4": prefixForm("####", "####+"),
	"h5": prefixForm("#####", "#####+"),
	"h6": prefixForm("######", "######+"),
	"mark": prefixForm("@", ""),
	"ref":  prefixForm("#", ""),
}

// SugarUsage flags a direct call to a command that syntactic sugar
// exists for (it, bf, tt, sc, af, h1..h6, mark, ref) made with exactly
// one argument, where the sugar form would have been equivalent and
// more idiomatic.
type SugarUsage struct{}

// NewSugarUsage builds a SugarUsage rule.
func NewSugarUsage() *SugarUsage { return &SugarUsage{} }

func (*SugarUsage) ID() string { return "sugar-usage" }

func (*SugarUsage) Analyse(content ast.Content) []*diag.Log {
	cmd, ok := content.(*ast.Command)
	if !ok {
		return nil
	}
	form, ok := callsToSugars[cmd.Name]
	if !ok {
		return nil
	}

	numAttrs := 0
	if cmd.Attrs != nil {
		numAttrs = len(cmd.Attrs.List)
	}
	hasRemainder := cmd.RemainderArg != nil
	singleArg := false
	switch {
	case numAttrs == 1 && len(cmd.InlineArgs) == 0 && !hasRemainder && len(cmd.TrailerArgs) == 0:
		singleArg = true
	case numAttrs == 0 && len(cmd.InlineArgs) == 1 && !hasRemainder && len(cmd.TrailerArgs) == 0:
		singleArg = true
	case numAttrs == 0 && len(cmd.InlineArgs) == 0 && hasRemainder && len(cmd.TrailerArgs) == 0:
		singleArg = true
	case numAttrs == 0 && len(cmd.InlineArgs) == 0 && !hasRemainder && len(cmd.TrailerArgs) == 1 && len(cmd.TrailerArgs[0]) == 1:
		singleArg = true
	}
	if !singleArg {
		return nil
	}

	help := fmt.Sprintf("try surrounding argument in ‘%s’ instead", form.delimiter)
	if !form.isDelimiters() {
		prefix := form.prefix
		if form.plusForm != "" && cmd.Pluses > 0 {
			prefix = form.plusForm
		}
		help = fmt.Sprintf("try using ‘%s’ instead", prefix)
	}

	return []*diag.Log{
		diag.Warn(fmt.Sprintf("syntactic sugar exists for .%s", cmd.Name)).
			WithSrc(diag.NewSrc(cmd.Loc()).WithAnnotation(diag.HelpNote(cmd.InvocationLoc, "found here"))).
			WithHelp(help),
	}
}

func (*SugarUsage) Done() []*diag.Log { return nil }
