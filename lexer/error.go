package lexer

import (
	"fmt"

	"github.com/emblem-lang/emblem/diag"
	"github.com/emblem-lang/emblem/source"
)

// Kind identifies a lexical failure.
type Kind int

const (
	UnexpectedChar Kind = iota
	UnexpectedEOF
	UnclosedComments
	ExtraCommentClose
	NewlineInInlineArg
	NewlineInAttrs
	NewlineInEmphDelimiter
	DelimiterMismatch
	UnexpectedHeading
	HeadingTooDeep
	TooManyQualifiers
	EmptyQualifier
)

// Error is a fatal lexical failure: once returned from Lexer.Next, every
// subsequent call returns the same Error.
type Error struct {
	Kind Kind
	Loc  source.Location

	// Populated for specific kinds.
	Char        rune             // UnexpectedChar
	OpenLocs    []source.Location // UnclosedComments
	ExtraDots   []source.Location // TooManyQualifiers
	ExpectedRaw string           // DelimiterMismatch: the raw delimiter expected
	GotRaw      string           // DelimiterMismatch: the raw delimiter found
	Level       int              // HeadingTooDeep
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnexpectedChar:
		return fmt.Sprintf("%s: unexpected character %q", e.Loc, e.Char)
	case UnexpectedEOF:
		return fmt.Sprintf("%s: unexpected end of file", e.Loc)
	case UnclosedComments:
		return fmt.Sprintf("%s: unclosed comment", e.Loc)
	case ExtraCommentClose:
		return fmt.Sprintf("%s: unexpected comment close", e.Loc)
	case NewlineInInlineArg:
		return fmt.Sprintf("%s: newline in inline argument", e.Loc)
	case NewlineInAttrs:
		return fmt.Sprintf("%s: newline in attributes", e.Loc)
	case NewlineInEmphDelimiter:
		return fmt.Sprintf("%s: newline inside emphasis delimiter", e.Loc)
	case DelimiterMismatch:
		return fmt.Sprintf("%s: expected closing delimiter %q, found %q", e.Loc, e.ExpectedRaw, e.GotRaw)
	case UnexpectedHeading:
		return fmt.Sprintf("%s: unexpected heading", e.Loc)
	case HeadingTooDeep:
		return fmt.Sprintf("%s: heading is too deep (level %d)", e.Loc, e.Level)
	case TooManyQualifiers:
		return fmt.Sprintf("%s: too many qualifiers", e.Loc)
	case EmptyQualifier:
		return fmt.Sprintf("%s: empty qualifier", e.Loc)
	default:
		return fmt.Sprintf("%s: lexical error", e.Loc)
	}
}

// Log converts e into a diagnostic Log, per the Diagnostic Framework.
func (e *Error) Log() *diag.Log {
	switch e.Kind {
	case UnclosedComments:
		l := diag.Error("unclosed multi-line comment")
		src := diag.NewSrc(e.Loc)
		for _, loc := range e.OpenLocs {
			src = src.WithAnnotation(diag.InfoNote(loc, "opened here"))
		}
		return l.WithSrc(src)
	case DelimiterMismatch:
		return diag.Error("mismatched emphasis delimiter").WithID("E003").Explainable().
			WithSrc(diag.NewSrc(e.Loc).WithAnnotation(diag.ErrorNote(e.Loc, fmt.Sprintf("expected ‘%s’, found ‘%s’", e.ExpectedRaw, e.GotRaw))))
	case TooManyQualifiers:
		l := diag.Error("too many command qualifiers").WithID("E005").Explainable()
		src := diag.NewSrc(e.Loc)
		for _, loc := range e.ExtraDots {
			src = src.WithAnnotation(diag.ErrorNote(loc, "unexpected qualifier separator"))
		}
		return l.WithSrc(src)
	case EmptyQualifier:
		return diag.Error("empty command qualifier").WithID("E004").Explainable().
			WithSrc(diag.NewSrc(e.Loc).WithAnnotation(diag.ErrorNote(e.Loc, "qualifier is empty")))
	case HeadingTooDeep:
		return diag.Error(fmt.Sprintf("heading is too deep: level %d", e.Level)).
			WithSrc(diag.NewSrc(e.Loc).WithAnnotation(diag.ErrorNote(e.Loc, "expected at most level 6")))
	case UnexpectedHeading:
		return diag.Error("unexpected heading").
			WithSrc(diag.NewSrc(e.Loc).WithAnnotation(diag.ErrorNote(e.Loc, "headings may only appear at the start of a line")))
	case NewlineInInlineArg:
		return diag.Error("newline in inline argument").WithID("E002").Explainable().
			WithSrc(diag.NewSrc(e.Loc).WithAnnotation(diag.ErrorNote(e.Loc, "close ‘{’ before the end of the line")))
	case NewlineInAttrs:
		return diag.Error("newline in attributes").
			WithSrc(diag.NewSrc(e.Loc).WithAnnotation(diag.ErrorNote(e.Loc, "close ‘[’ before the end of the line")))
	case NewlineInEmphDelimiter:
		return diag.Error("newline inside emphasis delimiter").
			WithSrc(diag.NewSrc(e.Loc).WithAnnotation(diag.ErrorNote(e.Loc, "close the delimiter before the end of the line")))
	case UnexpectedEOF:
		return diag.Error("unexpected end of file").WithSrc(diag.NewSrc(e.Loc))
	case ExtraCommentClose:
		return diag.Error("unexpected comment close").
			WithSrc(diag.NewSrc(e.Loc).WithAnnotation(diag.ErrorNote(e.Loc, "no matching ‘/*’")))
	default:
		return diag.Error(e.Error()).WithSrc(diag.NewSrc(e.Loc))
	}
}
