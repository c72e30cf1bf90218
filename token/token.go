// Package token defines the lexical token kinds produced by the Emblem
// lexer: a small enum plus a carrier struct for the payload a given kind
// needs (lit text, qualifiers, nesting level, ...), rather than one Go
// type per variant.
package token

import "github.com/emblem-lang/emblem/source"

// Kind identifies the syntactic class of a Token.
type Kind int

const (
	ILLEGAL Kind = iota

	INDENT
	DEDENT

	COLON
	DCOLON // "::"

	LBRACE
	RBRACE
	LBRACKET
	RBRACKET

	NAMEDATTR
	UNNAMEDATTR
	ATTRCOMMA

	COMMAND
	HEADING

	// Emphasis delimiters. Open/close distinguish direction; Raw on the
	// Token carries the exact matched text ("_", "__", "*", "**", "`",
	// "=", "==").
	EMPHOPEN
	EMPHCLOSE

	PARBREAK
	NEWLINE

	WORD
	WHITESPACE
	DASH
	GLUE
	SPILTGLUE
	VERBATIM

	NESTEDCOMMENTOPEN
	NESTEDCOMMENTCLOSE
	COMMENT

	SHEBANG
)

var kindNames = map[Kind]string{
	ILLEGAL:            "illegal",
	INDENT:             "indent",
	DEDENT:             "dedent",
	COLON:              "colon",
	DCOLON:             "double-colon",
	LBRACE:             "lbrace",
	RBRACE:             "rbrace",
	LBRACKET:           "lbracket",
	RBRACKET:           "rbracket",
	NAMEDATTR:          "named-attr",
	UNNAMEDATTR:        "unnamed-attr",
	ATTRCOMMA:          "attr-comma",
	COMMAND:            "command",
	HEADING:            "heading",
	EMPHOPEN:           "emph-open",
	EMPHCLOSE:          "emph-close",
	PARBREAK:           "par-break",
	NEWLINE:            "newline",
	WORD:               "word",
	WHITESPACE:         "whitespace",
	DASH:               "dash",
	GLUE:               "glue",
	SPILTGLUE:          "spilt-glue",
	VERBATIM:           "verbatim",
	NESTEDCOMMENTOPEN:  "nested-comment-open",
	NESTEDCOMMENTCLOSE: "nested-comment-close",
	COMMENT:            "comment",
	SHEBANG:            "shebang",
}

// String returns the short debug name of k.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// DashKind distinguishes the three dash lengths.
type DashKind int

const (
	Hyphen DashKind = iota + 1
	En
	Em
)

// GlueKind distinguishes tight glue from a non-breaking space.
type GlueKind int

const (
	Tight GlueKind = iota + 1
	Nbsp
)

// Token is a single lexed token with its span and kind-specific payload.
// Only the fields relevant to Kind are meaningful; a single carrier struct
// is used rather than one Go type per token kind.
type Token struct {
	Kind  Kind
	Start source.Point
	End   source.Point

	// Raw holds the literal text for Word, Whitespace, Comment, Verbatim,
	// NamedAttr, UnnamedAttr, Dash, Glue, SpiltGlue, and the matched
	// delimiter for EmphOpen/EmphClose.
	Raw source.FileContentSlice

	Qualifier string // Command: "" if absent
	Name      string // Command
	Pluses    int    // Command, Heading
	Level     int    // Heading: 1-6

	DashKind DashKind
	GlueKind GlueKind

	AtEOF bool // Newline
}

// Loc builds the Location spanning this token.
func (t Token) Loc() source.Location {
	return source.NewLocation(t.Start, t.End)
}
