package lower

import (
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/kr/pretty"

	"github.com/emblem-lang/emblem/parser"
	"github.com/emblem-lang/emblem/source"
)

func lowerString(t *testing.T, src string) *Doc {
	t.Helper()
	file, errs := parser.Parse(source.NewFileName("test.em"), source.NewFileContent(src))
	qt.Assert(t, qt.HasLen(errs, 0))
	return Lower(file)
}

// A bare word paragraph has no command of its own, so it gets wrapped
// in a synthetic "p".
func TestLowerWordParagraphWrapsInP(t *testing.T) {
	doc := lowerString(t, "hello\n")
	qt.Assert(t, qt.Equals(doc.Kind, Command))
	qt.Assert(t, qt.Equals(doc.Name, "p"))
	qt.Assert(t, qt.HasLen(doc.Elems, 1))
	qt.Assert(t, qt.Equals(doc.Elems[0].Kind, Word))
	qt.Assert(t, qt.Equals(doc.Elems[0].Text, "hello"))
}

// A paragraph that is nothing but one command call stands for itself:
// it is not re-wrapped in a "p".
func TestLowerBareCommandParagraphIsNotWrapped(t *testing.T) {
	doc := lowerString(t, ".bf{strong}\n")
	qt.Assert(t, qt.Equals(doc.Kind, Command))
	qt.Assert(t, qt.Equals(doc.Name, "bf"))
	qt.Assert(t, qt.HasLen(doc.Elems, 1))
	qt.Assert(t, qt.Equals(doc.Elems[0].Kind, Word))
	qt.Assert(t, qt.Equals(doc.Elems[0].Text, "strong"))
}

// Two paragraphs lower to two elements of the file's top-level list.
func TestLowerTwoParsGivesTwoElements(t *testing.T) {
	doc := lowerString(t, "first\n\nsecond\n")
	qt.Assert(t, qt.Equals(doc.Kind, ContentList))
	qt.Assert(t, qt.HasLen(doc.Elems, 2))
	for i, want := range []string{"first", "second"} {
		p := doc.Elems[i]
		qt.Assert(t, qt.Equals(p.Kind, Command))
		qt.Assert(t, qt.Equals(p.Name, "p"))
		qt.Assert(t, qt.Equals(p.Elems[0].Text, want))
	}
}

// Emphasis sugar desugars to its one-argument command form. Like a
// bare `.bf{...}` line, a paragraph that is nothing but one emphasised
// word lowers to the call itself, not a "p" wrapping it.
func TestLowerItalicSugarDesugarsToIt(t *testing.T) {
	doc := lowerString(t, "_word_\n")
	qt.Assert(t, qt.Equals(doc.Kind, Command))
	qt.Assert(t, qt.Equals(doc.Name, "it"))
	qt.Assert(t, qt.IsFalse(doc.Plus))
	qt.Assert(t, qt.HasLen(doc.Elems, 1))
	qt.Assert(t, qt.Equals(doc.Elems[0].Kind, Word))
	qt.Assert(t, qt.Equals(doc.Elems[0].Text, "word"))
}

// *x* desugars the same as _x_: the lowered tree does not remember the
// discouraged spelling, only the lint layer does.
func TestLowerAsteriskItalicDesugarsSameAsUnderscore(t *testing.T) {
	doc := lowerString(t, "*word*\n")
	qt.Assert(t, qt.Equals(doc.Kind, Command))
	qt.Assert(t, qt.Equals(doc.Name, "it"))
}

// A heading with one '+' carries Plus=true on the lowered command.
func TestLowerHeadingWithPlus(t *testing.T) {
	doc := lowerString(t, "#+ Title\n")
	qt.Assert(t, qt.Equals(doc.Kind, Command))
	qt.Assert(t, qt.Equals(doc.Name, "h1"))
	qt.Assert(t, qt.IsTrue(doc.Plus))
}

// A heading with no '+' carries Plus=false.
func TestLowerHeadingWithoutPlus(t *testing.T) {
	doc := lowerString(t, "## Title\n")
	qt.Assert(t, qt.Equals(doc.Kind, Command))
	qt.Assert(t, qt.Equals(doc.Name, "h2"))
	qt.Assert(t, qt.IsFalse(doc.Plus))
}

// @name lowers to a zero-argument mark command carrying name as its
// single unnamed attribute.
func TestLowerMarkSugar(t *testing.T) {
	doc := lowerString(t, "@foo\n")
	qt.Assert(t, qt.Equals(doc.Kind, Command))
	qt.Assert(t, qt.Equals(doc.Name, "mark"))
	qt.Assert(t, qt.HasLen(doc.Elems, 0))

	want := []Attr{{Value: "foo"}}
	if diff := pretty.Diff(doc.Attrs, want); len(diff) > 0 {
		t.Fatalf("lowered attrs mismatch: %v", diff)
	}
}

// Whitespace and comments are dropped entirely during lowering.
func TestLowerDropsWhitespaceAndComments(t *testing.T) {
	doc := lowerString(t, "a  b // trailing comment\n")
	qt.Assert(t, qt.Equals(doc.Kind, Command))
	qt.Assert(t, qt.Equals(doc.Name, "p"))
	qt.Assert(t, qt.HasLen(doc.Elems, 1))

	body := doc.Elems[0]
	qt.Assert(t, qt.Equals(body.Kind, ContentList))
	for _, e := range body.Elems {
		qt.Assert(t, qt.Equals(e.Kind, Word))
	}
	qt.Assert(t, qt.HasLen(body.Elems, 2))
	qt.Assert(t, qt.Equals(body.Elems[0].Text, "a"))
	qt.Assert(t, qt.Equals(body.Elems[1].Text, "b"))
}

// A command with an attribute list carries it through lowering. The
// expected shape is compact enough that a structural diff reads more
// clearly than a chain of field-by-field checks.
func TestLowerCommandAttrsSurvive(t *testing.T) {
	doc := lowerString(t, ".foo[bar,baz=qux]{x}\n")
	qt.Assert(t, qt.Equals(doc.Kind, Command))
	qt.Assert(t, qt.Equals(doc.Name, "foo"))

	want := []Attr{{Value: "bar"}, {Name: "baz", Value: "qux"}}
	if diff := pretty.Diff(doc.Attrs, want); len(diff) > 0 {
		t.Fatalf("lowered attrs mismatch: %v", diff)
	}
}
