package lexer

import (
	"unicode/utf8"

	"github.com/emblem-lang/emblem/source"
	"github.com/emblem-lang/emblem/token"
)

// atLineStart reports whether the token about to be scanned would be the
// first non-whitespace token on its line: true at the very start of the
// file, and immediately after Newline, ParBreak, Indent or Dedent.
func (l *Lexer) atLineStart() bool {
	if !l.hasLast {
		return true
	}
	switch l.lastKind {
	case token.NEWLINE, token.PARBREAK, token.INDENT, token.DEDENT:
		return true
	}
	return false
}

// lexDefault scans one token (or queues several) in the default mode:
// prose, commands, headings, emphasis and the structural punctuation that
// switches mode (attrs, inline-arg braces, comments).
func (l *Lexer) lexDefault() (token.Token, error) {
	if l.startOfLine {
		sawBlank := false
		for l.input != "" && isBlankLine(l.input) {
			ws := l.tryMatch(reLeadingWS)
			l.advance(len(ws))
			nl := l.tryMatch(reNewline)
			if nl == "" {
				break
			}
			l.advance(len(nl))
			sawBlank = true
		}
		if l.input == "" {
			return l.lexEOF()
		}
		if sawBlank && l.hasLast {
			return token.Token{Kind: token.PARBREAK, Start: l.point, End: l.point}, nil
		}

		ws := l.tryMatch(reLeadingWS)
		l.advance(len(ws))
		target := indentLevel(ws)
		toks := l.indentTokens(target)
		l.startOfLine = false
		if len(toks) > 0 {
			first := toks[0]
			l.pending = append(l.pending, toks[1:]...)
			return first, nil
		}
	}

	if l.input == "" {
		return l.lexEOF()
	}

	if len(l.openDelimiters) > 0 {
		if nl := l.tryMatch(reNewline); nl != "" {
			loc := source.NewLocation(l.point, l.point)
			return l.fail(&Error{Kind: NewlineInEmphDelimiter, Loc: loc})
		}
	}
	if len(l.openBraces) > 0 {
		if nl := l.tryMatch(reNewline); nl != "" {
			loc := source.NewLocation(l.point, l.point)
			return l.fail(&Error{Kind: NewlineInInlineArg, Loc: loc})
		}
	}

	if nl := l.tryMatch(reNewline); nl != "" {
		start := l.point
		l.advance(len(nl))
		l.startOfLine = true
		l.openingDelimiters = true
		return token.Token{Kind: token.NEWLINE, Start: start, End: l.point}, nil
	}

	if lit := l.tryMatch(reLineComment); lit != "" {
		start := l.point
		raw := l.content.Slice(l.point.Index, l.point.Index+len(lit))
		l.advance(len(lit))
		return token.Token{Kind: token.COMMENT, Start: start, End: l.point, Raw: raw}, nil
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
		loc := source.NewLocation(start, l.point)
		return l.fail(&Error{Kind: ExtraCommentClose, Loc: loc})
	}

	if lit := l.tryMatch(reDColon); lit != "" {
		return l.simpleTok(token.DCOLON, len(lit)), nil
	}

	if hasPrefix(l.input, "{") {
		start := l.point
		l.advance(1)
		l.openBraces = append(l.openBraces, source.NewLocation(start, l.point))
		return token.Token{Kind: token.LBRACE, Start: start, End: l.point}, nil
	}
	if hasPrefix(l.input, "}") {
		start := l.point
		if len(l.openBraces) == 0 {
			l.advance(1)
			loc := source.NewLocation(start, l.point)
			return l.fail(&Error{Kind: UnexpectedChar, Loc: loc, Char: '}'})
		}
		l.advance(1)
		l.openBraces = l.openBraces[:len(l.openBraces)-1]
		return token.Token{Kind: token.RBRACE, Start: start, End: l.point}, nil
	}

	if hasPrefix(l.input, "[") && l.hasLast && l.lastKind == token.COMMAND {
		start := l.point
		l.advance(1)
		loc := source.NewLocation(start, l.point)
		l.attrOpen = &loc
		return token.Token{Kind: token.LBRACKET, Start: start, End: l.point}, nil
	}

	if hasPrefix(l.input, ":") {
		return l.simpleTok(token.COLON, 1), nil
	}

	if hasPrefix(l.input, ".") {
		if tok, ok, err := l.tryLexCommand(); ok {
			return tok, err
		}
	}

	if hasPrefix(l.input, "#") && l.atLineStart() {
		return l.lexHeading()
	}

	if lit := l.tryMatch(reDash); lit != "" {
		start := l.point
		raw := l.content.Slice(l.point.Index, l.point.Index+len(lit))
		l.advance(len(lit))
		var dk token.DashKind
		switch len(lit) {
		case 1:
			dk = token.Hyphen
		case 2:
			dk = token.En
		case 3:
			dk = token.Em
		}
		return token.Token{Kind: token.DASH, Start: start, End: l.point, Raw: raw, DashKind: dk}, nil
	}

	if lit := l.tryMatch(reGlue); lit != "" {
		return l.lexGlue(lit)
	}

	if hasPrefix(l.input, "!") {
		if lit := l.tryMatch(reVerbatim); lit != "" {
			start := l.point
			inner := lit[1 : len(lit)-1]
			raw := l.content.Slice(l.point.Index+1, l.point.Index+1+len(inner))
			l.advance(len(lit))
			l.openingDelimiters = false
			return token.Token{Kind: token.VERBATIM, Start: start, End: l.point, Raw: raw}, nil
		}
	}

	if raw, ok := l.matchEmphDelim(); ok {
		return l.lexEmphDelim(raw)
	}

	if ws := l.tryMatch(regexpHorizWS); ws != "" {
		start := l.point
		raw := l.content.Slice(l.point.Index, l.point.Index+len(ws))
		l.advance(len(ws))
		l.openingDelimiters = true
		return token.Token{Kind: token.WHITESPACE, Start: start, End: l.point, Raw: raw}, nil
	}

	return l.lexWord()
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

// tryLexCommand attempts to scan a Command token at the current "." It
// returns ok=false (no token consumed) when the period does not begin an
// identifier, the contextual gate that keeps ordinary prose periods from
// being mis-lexed as commands.
func (l *Lexer) tryLexCommand() (token.Token, bool, error) {
	m := reCommand.FindStringSubmatchIndex(l.input)
	if m == nil {
		return token.Token{}, false, nil
	}
	body := ""
	if m[2] >= 0 {
		body = l.input[m[2]:m[3]]
	}
	pluses := l.input[m[4]:m[5]]
	if body == "" && pluses == "" {
		return token.Token{}, false, nil
	}

	start := l.point
	fullLen := m[1]
	l.advance(fullLen)
	end := l.point

	parts := splitDots(body)
	var qualifier, name string
	switch {
	case len(parts) == 1:
		name = parts[0]
	case len(parts) == 2:
		qualifier, name = parts[0], parts[1]
		if qualifier == "" {
			loc := source.NewLocation(start, end)
			_, err := l.fail(&Error{Kind: EmptyQualifier, Loc: loc})
			return token.Token{}, true, err
		}
	default:
		qualifier, name = parts[0], parts[len(parts)-1]
		loc := source.NewLocation(start, end)
		var extraDots []source.Location
		dots := 0
		for i := 0; i < len(body); i++ {
			if body[i] != '.' {
				continue
			}
			dots++
			if dots > 1 {
				dotStart := start.Shift("." + body[:i])
				extraDots = append(extraDots, source.NewLocation(dotStart, dotStart.Shift(".")))
			}
		}
		_, err := l.fail(&Error{Kind: TooManyQualifiers, Loc: loc, ExtraDots: extraDots})
		return token.Token{}, true, err
	}

	return token.Token{
		Kind: token.COMMAND, Start: start, End: end,
		Qualifier: qualifier, Name: name, Pluses: len(pluses),
	}, true, nil
}

func splitDots(body string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(body); i++ {
		if body[i] == '.' {
			parts = append(parts, body[start:i])
			start = i + 1
		}
	}
	parts = append(parts, body[start:])
	return parts
}

func (l *Lexer) lexHeading() (token.Token, error) {
	lit := l.tryMatch(reHeading)
	start := l.point
	level := 0
	pluses := 0
	for _, r := range lit {
		if r == '#' {
			level++
		} else {
			pluses++
		}
	}
	l.advance(len(lit))
	end := l.point
	if level > 6 {
		loc := source.NewLocation(start, end)
		return l.fail(&Error{Kind: HeadingTooDeep, Loc: loc, Level: level})
	}
	return token.Token{Kind: token.HEADING, Start: start, End: end, Level: level, Pluses: pluses}, nil
}

func (l *Lexer) lexGlue(lit string) (token.Token, error) {
	start := l.point
	atStart := l.atLineStart()
	l.advance(len(lit))
	rest := l.input
	nextIsBreak := rest == "" || l.tryMatch(reNewline) != ""

	hasLead := len(lit) > 0 && (lit[0] == ' ' || lit[0] == '\t')
	hasTrail := len(lit) > 0 && (lit[len(lit)-1] == ' ' || lit[len(lit)-1] == '\t')

	raw := l.content.Slice(start.Index, l.point.Index)
	tildes := 0
	for _, r := range lit {
		if r == '~' {
			tildes++
		}
	}
	gk := token.Nbsp
	if tildes == 2 {
		gk = token.Tight
	}

	if atStart || nextIsBreak || hasLead || hasTrail {
		l.openingDelimiters = true
		return token.Token{Kind: token.SPILTGLUE, Start: start, End: l.point, Raw: raw, GlueKind: gk}, nil
	}
	if gk == token.Tight {
		l.openingDelimiters = true
	}
	return token.Token{Kind: token.GLUE, Start: start, End: l.point, Raw: raw, GlueKind: gk}, nil
}

func (l *Lexer) matchEmphDelim() (string, bool) {
	for _, d := range emphDelims {
		if hasPrefix(l.input, d) {
			return d, true
		}
	}
	return "", false
}

// lexEmphDelim scans one emphasis delimiter. Whether it opens or closes is
// decided entirely by l.openingDelimiters (true just after a newline,
// whitespace, or tight "~~" glue; false just after a word or verbatim run),
// never by comparing it against the innermost open delimiter: a delimiter
// seen while closing always closes the innermost open one, raising
// DelimiterMismatch if its raw text doesn't match.
func (l *Lexer) lexEmphDelim(raw string) (token.Token, error) {
	start := l.point
	l.advance(len(raw))
	end := l.point
	loc := source.NewLocation(start, end)
	rawSlice := l.content.Slice(start.Index, end.Index)

	if l.openingDelimiters {
		l.openDelimiters = append(l.openDelimiters, delimFrame{raw: raw, loc: loc})
		return token.Token{Kind: token.EMPHOPEN, Start: start, End: end, Raw: rawSlice}, nil
	}

	if n := len(l.openDelimiters); n > 0 {
		top := l.openDelimiters[n-1]
		l.openDelimiters = l.openDelimiters[:n-1]
		if top.raw != raw {
			return l.fail(&Error{Kind: DelimiterMismatch, Loc: loc, ExpectedRaw: top.raw, GotRaw: raw})
		}
	}
	return token.Token{Kind: token.EMPHCLOSE, Start: start, End: end, Raw: rawSlice}, nil
}

func (l *Lexer) lexWord() (token.Token, error) {
	start := l.point
	pos := 0
	for pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[pos:])
		if r == '/' && pos+size < len(l.input) {
			_, size2 := utf8.DecodeRuneInString(l.input[pos+size:])
			pos += size + size2
			continue
		}
		if specialRune(r) {
			break
		}
		pos += size
	}
	if pos == 0 {
		_, size := utf8.DecodeRuneInString(l.input)
		pos = size
	}
	raw := l.content.Slice(start.Index, start.Index+pos)
	l.advance(pos)
	l.openingDelimiters = false
	return token.Token{Kind: token.WORD, Start: start, End: l.point, Raw: raw}, nil
}
