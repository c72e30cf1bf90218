package parser

import (
	"testing"

	"github.com/emblem-lang/emblem/ast"
	"github.com/emblem-lang/emblem/source"
)

func parseString(t *testing.T, src string) (*ast.ParsedFile, []error) {
	t.Helper()
	fn := source.NewFileName("test.em")
	fc := source.NewFileContent(src)
	return Parse(fn, fc)
}

func TestParseSingleWordPar(t *testing.T) {
	file, errs := parseString(t, "hello\n")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(file.Pars) != 1 {
		t.Fatalf("expected 1 par, got %d", len(file.Pars))
	}
	if len(file.Pars[0].Parts) != 1 {
		t.Fatalf("expected 1 part, got %d", len(file.Pars[0].Parts))
	}
	line := file.Pars[0].Parts[0].Line
	if len(line) != 1 {
		t.Fatalf("expected 1 content node, got %d", len(line))
	}
	w, ok := line[0].(*ast.Word)
	if !ok {
		t.Fatalf("expected *ast.Word, got %T", line[0])
	}
	if w.Raw.Raw() != "hello" {
		t.Fatalf("got %q", w.Raw.Raw())
	}
}

func TestParseTwoParsSeparatedByBlank(t *testing.T) {
	file, errs := parseString(t, "first\n\nsecond\n")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(file.Pars) != 2 {
		t.Fatalf("expected 2 pars, got %d", len(file.Pars))
	}
}

func TestParseCommandWithInlineArg(t *testing.T) {
	file, errs := parseString(t, ".bf{strong}\n")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	line := file.Pars[0].Parts[0].Line
	if len(line) != 1 {
		t.Fatalf("expected 1 content node, got %d", len(line))
	}
	cmd, ok := line[0].(*ast.Command)
	if !ok {
		t.Fatalf("expected *ast.Command, got %T", line[0])
	}
	if cmd.Name != "bf" || cmd.Qualifier != "" {
		t.Fatalf("got name=%q qualifier=%q", cmd.Name, cmd.Qualifier)
	}
	if len(cmd.InlineArgs) != 1 || len(cmd.InlineArgs[0]) != 1 {
		t.Fatalf("expected 1 inline arg with 1 content node, got %v", cmd.InlineArgs)
	}
	w, ok := cmd.InlineArgs[0][0].(*ast.Word)
	if !ok || w.Raw.Raw() != "strong" {
		t.Fatalf("got %#v", cmd.InlineArgs[0][0])
	}
}

func TestParseCommandWithAttrs(t *testing.T) {
	file, errs := parseString(t, ".im[width=3,tall]{pic}\n")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	cmd := file.Pars[0].Parts[0].Line[0].(*ast.Command)
	if cmd.Attrs == nil || len(cmd.Attrs.List) != 2 {
		t.Fatalf("expected 2 attrs, got %v", cmd.Attrs)
	}
	if !cmd.Attrs.List[0].Named() || cmd.Attrs.List[0].Name() != "width" || cmd.Attrs.List[0].Value() != "3" {
		t.Fatalf("got attr 0: %#v", cmd.Attrs.List[0])
	}
	if cmd.Attrs.List[1].Named() {
		t.Fatalf("expected attr 1 unnamed")
	}
}

func TestParseEmphasisSugar(t *testing.T) {
	file, errs := parseString(t, "_italic_\n")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	sugar, ok := file.Pars[0].Parts[0].Line[0].(*ast.Sugar)
	if !ok {
		t.Fatalf("expected *ast.Sugar, got %T", file.Pars[0].Parts[0].Line[0])
	}
	if sugar.Kind != ast.Italic {
		t.Fatalf("got kind %v", sugar.Kind)
	}
	if sugar.CallName() != "it" {
		t.Fatalf("got call name %q", sugar.CallName())
	}
}

func TestParseHeadingSugar(t *testing.T) {
	file, errs := parseString(t, "## Title\n")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	sugar, ok := file.Pars[0].Parts[0].Line[0].(*ast.Sugar)
	if !ok {
		t.Fatalf("expected *ast.Sugar, got %T", file.Pars[0].Parts[0].Line[0])
	}
	if sugar.Kind != ast.Heading || sugar.Level != 2 || sugar.CallName() != "h2" {
		t.Fatalf("got %#v", sugar)
	}
}

func TestParseReferenceAndMark(t *testing.T) {
	file, errs := parseString(t, "@label see #label\n")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	line := file.Pars[0].Parts[0].Line
	mark, ok := line[0].(*ast.Sugar)
	if !ok || mark.Kind != ast.Mark || mark.Name != "label" {
		t.Fatalf("got %#v", line[0])
	}
	ref, ok := line[len(line)-1].(*ast.Sugar)
	if !ok || ref.Kind != ast.Reference || ref.Name != "label" {
		t.Fatalf("got %#v", line[len(line)-1])
	}
}

func TestParseRemainderArg(t *testing.T) {
	file, errs := parseString(t, ".cite: a citation\n")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	cmd := file.Pars[0].Parts[0].Line[0].(*ast.Command)
	if len(cmd.RemainderArg) == 0 {
		t.Fatalf("expected non-empty remainder arg")
	}
}

func TestParseTrailerArgs(t *testing.T) {
	file, errs := parseString(t, ".toc\n    first\n    second\n")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	cmd := file.Pars[0].Parts[0].Line[0].(*ast.Command)
	if len(cmd.TrailerArgs) != 2 {
		t.Fatalf("expected 2 trailer args, got %d", len(cmd.TrailerArgs))
	}
}

// spec.md's own worked example: a dedented "::" on its own line introduces
// a second trailer paragraph for the same command, rather than ending it.
func TestParseTrailerArgsWithDoubleColonContinuation(t *testing.T) {
	file, errs := parseString(t, ".p:\n\tx\n::\n\ty")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(file.Pars) != 1 || len(file.Pars[0].Parts) != 1 {
		t.Fatalf("expected a single par with a single part, got %#v", file.Pars)
	}
	cmd, ok := file.Pars[0].Parts[0].Line[0].(*ast.Command)
	if !ok {
		t.Fatalf("expected the line's content to be a Command, got %#v", file.Pars[0].Parts[0].Line)
	}
	if len(cmd.TrailerArgs) != 2 {
		t.Fatalf("expected 2 trailer args, got %d", len(cmd.TrailerArgs))
	}
	for i, want := range []string{"x", "y"} {
		arg := cmd.TrailerArgs[i]
		if len(arg) != 1 {
			t.Fatalf("trailer arg %d: expected 1 content node, got %d", i, len(arg))
		}
		word, ok := arg[0].(*ast.Word)
		if !ok || word.Raw.Raw() != want {
			t.Fatalf("trailer arg %d: expected word %q, got %#v", i, want, arg[0])
		}
	}
}

func TestParseQualifiedCommand(t *testing.T) {
	file, errs := parseString(t, ".std.bf{x}\n")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	cmd := file.Pars[0].Parts[0].Line[0].(*ast.Command)
	if cmd.Qualifier != "std" || cmd.Name != "bf" || cmd.QualifiedName() != "std.bf" {
		t.Fatalf("got %#v", cmd)
	}
}
