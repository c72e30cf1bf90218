package ast

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/emblem-lang/emblem/source"
)

// locSpanning builds a Location covering all of text, starting at the
// beginning of a file named "test.em" — enough to exercise Loc() without
// going through the lexer or parser.
func locSpanning(text string) source.Location {
	fn := source.NewFileName("test.em")
	fc := source.NewFileContent(text)
	start := source.NewPoint(fn, fc)
	end := start.Shift(text)
	return source.NewLocation(start, end)
}

// Every concrete Content node must satisfy the Content interface (and so,
// transitively, Node) and must report back the Location it was built with.
func TestContentNodesReportTheirLocation(t *testing.T) {
	loc := locSpanning("hello")
	raw := loc.Src()

	nodes := []Content{
		NewWord(loc, raw),
		NewWhitespace(loc, raw),
		NewDash(loc, raw, Hyphen),
		NewGlue(loc, raw, Tight),
		NewSpiltGlue(loc, raw, Nbsp),
		NewVerbatim(loc, raw),
		NewComment(loc, raw),
		NewMultiLineComment(loc, nil),
	}
	for _, n := range nodes {
		qt.Assert(t, qt.Equals(n.Loc(), loc))
	}
}

// MultiLineCommentPart has its own smaller family; each variant must
// satisfy it and report its own Location, not its parent's.
func TestMultiLineCommentPartsReportTheirLocation(t *testing.T) {
	loc := locSpanning("text")
	raw := loc.Src()
	nestedLoc := locSpanning("/* nested */")

	parts := []MultiLineCommentPart{
		NewMLCText(loc, raw),
		NewMLCNewline(loc),
		NewMLCNested(nestedLoc, nil),
	}
	want := []source.Location{loc, loc, nestedLoc}
	for i, p := range parts {
		qt.Assert(t, qt.Equals(p.Loc(), want[i]))
	}
}

// A ParsedFile's Pars, a Par's Parts, and a ParPart's Line all round-trip
// through their constructors unchanged.
func TestParsedFileTreeShape(t *testing.T) {
	loc := locSpanning("hello")
	raw := loc.Src()
	word := NewWord(loc, raw)
	part := NewParPart(loc, []Content{word})
	par := NewPar(loc, []*ParPart{part})
	file := &ParsedFile{
		FileName: source.NewFileName("test.em"),
		Pars:     []*Par{par},
	}

	qt.Assert(t, qt.HasLen(file.Pars, 1))
	qt.Assert(t, qt.HasLen(file.Pars[0].Parts, 1))
	qt.Assert(t, qt.HasLen(file.Pars[0].Parts[0].Line, 1))
	qt.Assert(t, qt.Equals(file.Pars[0].Parts[0].Line[0].(*Word).Raw.Raw(), "hello"))
}

// A Shebang is optional on a ParsedFile; a file without one leaves the
// field nil rather than a zero-value Shebang.
func TestParsedFileShebangIsNilByDefault(t *testing.T) {
	file := &ParsedFile{FileName: source.NewFileName("test.em")}
	qt.Assert(t, qt.IsNil(file.Shebang))

	loc := locSpanning("#!/usr/bin/env emblem")
	file.Shebang = NewShebang(loc, loc.Src())
	qt.Assert(t, qt.Equals(file.Shebang.Loc(), loc))
}
