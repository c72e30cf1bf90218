package lexer

import (
	"github.com/emblem-lang/emblem/source"
	"github.com/emblem-lang/emblem/token"
)

// lexAttr scans one token inside a command's `[...]` attribute list:
// named/unnamed attrs separated by commas, terminated by `]`. A newline
// before the closing bracket is a lexical error (the list must fit on one
// line), matching the emphasis-delimiter newline restriction.
func (l *Lexer) lexAttr() (token.Token, error) {
	if ws := l.tryMatch(regexpHorizWS); ws != "" {
		l.advance(len(ws))
	}

	if l.input == "" {
		loc := source.NewLocation(l.point, l.point)
		return l.fail(&Error{Kind: UnexpectedEOF, Loc: loc})
	}

	if nl := l.tryMatch(reNewline); nl != "" {
		loc := source.NewLocation(l.point, l.point)
		return l.fail(&Error{Kind: NewlineInAttrs, Loc: loc})
	}

	if hasPrefix(l.input, "]") {
		start := l.point
		l.advance(1)
		l.attrOpen = nil
		return token.Token{Kind: token.RBRACKET, Start: start, End: l.point}, nil
	}
	if hasPrefix(l.input, ",") {
		return l.simpleTok(token.ATTRCOMMA, 1), nil
	}

	if lit := l.tryMatch(reNamedAttr); lit != "" {
		start := l.point
		raw := l.content.Slice(l.point.Index, l.point.Index+len(lit))
		l.advance(len(lit))
		return token.Token{Kind: token.NAMEDATTR, Start: start, End: l.point, Raw: raw}, nil
	}
	if lit := l.tryMatch(reUnnamedAttr); lit != "" {
		start := l.point
		raw := l.content.Slice(l.point.Index, l.point.Index+len(lit))
		l.advance(len(lit))
		return token.Token{Kind: token.UNNAMEDATTR, Start: start, End: l.point, Raw: raw}, nil
	}

	start := l.point
	r := rune(l.input[0])
	loc := source.NewLocation(start, start)
	return l.fail(&Error{Kind: UnexpectedChar, Loc: loc, Char: r})
}

// lexComment scans one token inside a (possibly nested) multi-line comment.
// Newlines are ordinary content here: they're passed through as Newline
// tokens rather than terminating the comment, since only a matching `*/`
// for every open `/*` does that.
func (l *Lexer) lexComment() (token.Token, error) {
	if nl := l.tryMatch(reNewline); nl != "" {
		start := l.point
		l.advance(len(nl))
		return token.Token{Kind: token.NEWLINE, Start: start, End: l.point}, nil
	}
	if hasPrefix(l.input, "/*") {
		start := l.point
		l.advance(2)
		loc := source.NewLocation(start, l.point)
		l.multiLineCommentStarts = append(l.multiLineCommentStarts, loc)
		return token.Token{Kind: token.NESTEDCOMMENTOPEN, Start: start, End: l.point}, nil
	}
	if hasPrefix(l.input, "*/") {
		start := l.point
		l.advance(2)
		l.multiLineCommentStarts = l.multiLineCommentStarts[:len(l.multiLineCommentStarts)-1]
		return token.Token{Kind: token.NESTEDCOMMENTCLOSE, Start: start, End: l.point}, nil
	}

	start := l.point
	pos := 0
	for pos < len(l.input) {
		if hasPrefix(l.input[pos:], "/*") || hasPrefix(l.input[pos:], "*/") {
			break
		}
		if l.input[pos] == '\n' || l.input[pos] == '\r' {
			break
		}
		pos++
	}
	if pos == 0 {
		pos = 1
	}
	raw := l.content.Slice(start.Index, start.Index+pos)
	l.advance(pos)
	return token.Token{Kind: token.COMMENT, Start: start, End: l.point, Raw: raw}, nil
}
