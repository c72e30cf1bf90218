// Package ast declares the types used to represent a parsed Emblem source
// file: a small family of node interfaces, each satisfied by a handful of
// concrete structs tagged with an unexported marker method.
package ast

import "github.com/emblem-lang/emblem/source"

// Node is any node in the tree: every node knows the Location of the
// source text it was built from.
type Node interface {
	Loc() source.Location
}

// Content is any inline or block content that can appear inside a
// paragraph line, a command argument, or a sugar argument.
type Content interface {
	Node
	content()
}

func (*Word) content()             {}
func (*Whitespace) content()        {}
func (*Dash) content()              {}
func (*Glue) content()              {}
func (*SpiltGlue) content()         {}
func (*Verbatim) content()          {}
func (*Comment) content()           {}
func (*MultiLineComment) content()  {}
func (*Command) content()           {}
func (*Sugar) content()             {}

// ParsedFile is the root of a parsed source file.
type ParsedFile struct {
	FileName source.FileName
	Shebang  *Shebang // nil if the file has none
	Pars     []*Par
}

// Shebang is the optional `#!...` first line of a file.
type Shebang struct {
	Raw      source.FileContentSlice
	location source.Location
}

func (s *Shebang) Loc() source.Location { return s.location }

// NewShebang builds a Shebang at loc with the given raw text.
func NewShebang(loc source.Location, raw source.FileContentSlice) *Shebang {
	return &Shebang{Raw: raw, location: loc}
}

// Par is one paragraph: a run of lines with no blank line (ParBreak)
// between them.
type Par struct {
	Parts    []*ParPart
	location source.Location
}

func (p *Par) Loc() source.Location { return p.location }

// NewPar builds a Par spanning its parts.
func NewPar(loc source.Location, parts []*ParPart) *Par {
	return &Par{Parts: parts, location: loc}
}

// ParPart is one line of a paragraph: a sequence of inline Content.
type ParPart struct {
	Line     []Content
	location source.Location
}

func (p *ParPart) Loc() source.Location { return p.location }

// NewParPart builds a ParPart from a line's content.
func NewParPart(loc source.Location, line []Content) *ParPart {
	return &ParPart{Line: line, location: loc}
}

// Word is a run of non-special prose text. A `/` escape is kept in Raw
// as written, together with the character it escapes.
type Word struct {
	Raw      source.FileContentSlice
	location source.Location
}

func (w *Word) Loc() source.Location { return w.location }

// NewWord builds a Word.
func NewWord(loc source.Location, raw source.FileContentSlice) *Word {
	return &Word{Raw: raw, location: loc}
}

// Whitespace is a run of horizontal whitespace between words.
type Whitespace struct {
	Raw      source.FileContentSlice
	location source.Location
}

func (w *Whitespace) Loc() source.Location { return w.location }

// NewWhitespace builds a Whitespace node.
func NewWhitespace(loc source.Location, raw source.FileContentSlice) *Whitespace {
	return &Whitespace{Raw: raw, location: loc}
}

// DashKind mirrors token.DashKind, repeated here so callers need not
// import the lexer's token package to read a parsed Dash's width.
type DashKind int

const (
	Hyphen DashKind = iota + 1
	En
	Em
)

// Dash is a hyphen/en-dash/em-dash run.
type Dash struct {
	Raw      source.FileContentSlice
	Kind     DashKind
	location source.Location
}

func (d *Dash) Loc() source.Location { return d.location }

// NewDash builds a Dash.
func NewDash(loc source.Location, raw source.FileContentSlice, kind DashKind) *Dash {
	return &Dash{Raw: raw, Kind: kind, location: loc}
}

// GlueKind mirrors token.GlueKind.
type GlueKind int

const (
	Tight GlueKind = iota + 1
	Nbsp
)

// Glue is a valid (non-split) glue mark joining two words.
type Glue struct {
	Raw      source.FileContentSlice
	Kind     GlueKind
	location source.Location
}

func (g *Glue) Loc() source.Location { return g.location }

// NewGlue builds a Glue.
func NewGlue(loc source.Location, raw source.FileContentSlice, kind GlueKind) *Glue {
	return &Glue{Raw: raw, Kind: kind, location: loc}
}

// SpiltGlue is a glue mark that violated the no-whitespace/no-line-break
// rule; kept in the tree so the spilt-glue lint rule can flag it, rather
// than being rejected at parse time.
type SpiltGlue struct {
	Raw      source.FileContentSlice
	Kind     GlueKind
	location source.Location
}

func (g *SpiltGlue) Loc() source.Location { return g.location }

// NewSpiltGlue builds a SpiltGlue.
func NewSpiltGlue(loc source.Location, raw source.FileContentSlice, kind GlueKind) *SpiltGlue {
	return &SpiltGlue{Raw: raw, Kind: kind, location: loc}
}

// Verbatim is a `!...!` run whose contents are passed through unprocessed.
type Verbatim struct {
	Raw      source.FileContentSlice
	location source.Location
}

func (v *Verbatim) Loc() source.Location { return v.location }

// NewVerbatim builds a Verbatim node.
func NewVerbatim(loc source.Location, raw source.FileContentSlice) *Verbatim {
	return &Verbatim{Raw: raw, location: loc}
}

// Comment is a `// ...` line comment.
type Comment struct {
	Raw      source.FileContentSlice
	location source.Location
}

func (c *Comment) Loc() source.Location { return c.location }

// NewComment builds a Comment node.
func NewComment(loc source.Location, raw source.FileContentSlice) *Comment {
	return &Comment{Raw: raw, location: loc}
}

// MultiLineCommentPart is one piece of a (possibly nested) `/* ... */`
// comment: either a line of comment text, a newline, or a nested comment.
type MultiLineCommentPart interface {
	Node
	mlcPart()
}

func (*MLCText) mlcPart()    {}
func (*MLCNewline) mlcPart() {}
func (*MLCNested) mlcPart()  {}

// MLCText is a run of plain text inside a multi-line comment.
type MLCText struct {
	Raw      source.FileContentSlice
	location source.Location
}

func (t *MLCText) Loc() source.Location { return t.location }

// NewMLCText builds an MLCText part.
func NewMLCText(loc source.Location, raw source.FileContentSlice) *MLCText {
	return &MLCText{Raw: raw, location: loc}
}

// MLCNewline is a line break inside a multi-line comment.
type MLCNewline struct {
	location source.Location
}

func (n *MLCNewline) Loc() source.Location { return n.location }

// NewMLCNewline builds an MLCNewline part.
func NewMLCNewline(loc source.Location) *MLCNewline { return &MLCNewline{location: loc} }

// MLCNested is a nested `/* ... */` comment inside another comment.
type MLCNested struct {
	Parts    []MultiLineCommentPart
	location source.Location
}

func (n *MLCNested) Loc() source.Location { return n.location }

// NewMLCNested builds an MLCNested part.
func NewMLCNested(loc source.Location, parts []MultiLineCommentPart) *MLCNested {
	return &MLCNested{Parts: parts, location: loc}
}

// MultiLineComment is a top-level `/* ... */` comment.
type MultiLineComment struct {
	Parts    []MultiLineCommentPart
	location source.Location
}

func (c *MultiLineComment) Loc() source.Location { return c.location }

// NewMultiLineComment builds a MultiLineComment.
func NewMultiLineComment(loc source.Location, parts []MultiLineCommentPart) *MultiLineComment {
	return &MultiLineComment{Parts: parts, location: loc}
}
