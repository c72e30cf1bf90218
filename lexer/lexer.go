// Package lexer implements a stateful, regex-driven tokenizer: a small
// pushdown automaton over three modes (default, attribute, multi-line
// comment) plus an emphasis-delimiter stack and a brace stack.
package lexer

import (
	"io"
	"regexp"
	"strings"

	"github.com/emblem-lang/emblem/source"
	"github.com/emblem-lang/emblem/token"
)

var (
	reNewline    = regexp.MustCompile(`^(\r\n|\n|\r)`)
	reLeadingWS  = regexp.MustCompile(`^[ \t]*`)
	reLineComment = regexp.MustCompile(`^//[^\r\n]*`)
	reDColon     = regexp.MustCompile(`^::`)
	reCommand    = regexp.MustCompile(`^\.([^{}\[\]:+\s]*)(\+*)`)
	reHeading    = regexp.MustCompile(`^#+\+*`)
	reDash       = regexp.MustCompile(`^-{1,3}`)
	reGlue       = regexp.MustCompile(`^[ \t]*~~?[ \t]*`)
	reVerbatim   = regexp.MustCompile(`^!([^!\r\n]*)!`)
	reNamedAttr  = regexp.MustCompile(`^[^,\]\r\n]+=[^,\]\r\n]*`)
	reUnnamedAttr = regexp.MustCompile(`^[^,\]\r\n]+`)

	regexpHorizWS = regexp.MustCompile(`^[ \t]+`)
)

// emphDelims lists the recognised emphasis delimiters. Each two-character
// spelling is listed before the one-character delimiter it shares a prefix
// with ("**" before "*", "__" before "_", "==" before "=") so matchEmphDelim
// picks the widest one; order is otherwise immaterial. Italic accepts
// either "_" or "*", bold either "__" or "**" — "_" and "**" are the
// encouraged spellings, while "*" for italic and "__" for bold are flagged
// by the emph-delimiters lint rule, not rejected by the lexer.
var emphDelims = []string{"**", "__", "==", "_", "*", "=", "`"}

// specialRune reports whether r terminates a default-mode Word run.
func specialRune(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '{', '}', '~', '_', '*', '`', '=', '-', '!', '/', '.', ':':
		return true
	}
	return false
}

type delimFrame struct {
	raw string
	loc source.Location
}

// Lexer is a pull-iterator over a single file's content. Next returns
// io.EOF once the token stream is exhausted; any other error is fatal and
// is returned again by every subsequent call (*Error, convertible via
// Error.Log()).
type Lexer struct {
	fileName source.FileName
	content  source.FileContent
	input    string
	point    source.Point

	startOfLine   bool
	isFirstToken  bool
	currentIndent int

	openBraces              []source.Location
	multiLineCommentStarts  []source.Location
	attrOpen                *source.Location
	openingDelimiters       bool
	openDelimiters          []delimFrame

	lastKind token.Kind
	hasLast  bool

	pending []token.Token
	err     error
	done    bool
}

// New builds a Lexer over content, labelled fileName.
func New(fileName source.FileName, content source.FileContent) *Lexer {
	return &Lexer{
		fileName:     fileName,
		content:      content,
		input:        content.Raw(),
		point:             source.NewPoint(fileName, content),
		startOfLine:       true,
		isFirstToken:      true,
		openingDelimiters: true,
	}
}

// Next returns the next token, io.EOF at end of stream, or a fatal *Error.
func (l *Lexer) Next() (token.Token, error) {
	if l.err != nil {
		return token.Token{}, l.err
	}
	if len(l.pending) > 0 {
		t := l.pending[0]
		l.pending = l.pending[1:]
		l.lastKind, l.hasLast = t.Kind, true
		return t, nil
	}
	if l.done {
		return token.Token{}, io.EOF
	}

	t, err := l.step()
	if err != nil {
		if err == io.EOF {
			l.done = true
		} else {
			l.err = err
		}
		return token.Token{}, err
	}
	l.lastKind, l.hasLast = t.Kind, true
	return t, nil
}

func (l *Lexer) fail(err error) (token.Token, error) {
	l.err = err
	return token.Token{}, err
}

// step produces exactly one token (possibly queueing more into l.pending),
// or returns io.EOF once input is fully consumed and all trailing
// Dedents/Newline have been queued.
func (l *Lexer) step() (token.Token, error) {
	if l.isFirstToken {
		l.isFirstToken = false
		if strings.HasPrefix(l.input, "#!") {
			return l.lexShebang()
		}
	}

	if l.input == "" {
		return l.lexEOF()
	}

	if len(l.multiLineCommentStarts) > 0 {
		return l.lexComment()
	}
	if l.attrOpen != nil {
		return l.lexAttr()
	}
	return l.lexDefault()
}

func (l *Lexer) advance(n int) string {
	text := l.input[:n]
	l.input = l.input[n:]
	l.point = l.point.Shift(text)
	return text
}

func (l *Lexer) tryMatch(re *regexp.Regexp) string {
	loc := re.FindStringIndex(l.input)
	if loc == nil {
		return ""
	}
	return l.input[loc[0]:loc[1]]
}

func (l *Lexer) simpleTok(kind token.Kind, n int) token.Token {
	start := l.point
	l.advance(n)
	return token.Token{Kind: kind, Start: start, End: l.point}
}

var reRestOfLine = regexp.MustCompile(`^[^\r\n]*`)

func (l *Lexer) lexShebang() (token.Token, error) {
	start := l.point
	line := l.tryMatch(reRestOfLine)
	raw := l.content.Slice(l.point.Index, l.point.Index+len(line))
	l.advance(len(line))
	l.startOfLine = false
	return token.Token{Kind: token.SHEBANG, Start: start, End: l.point, Raw: raw}, nil
}

func (l *Lexer) lexEOF() (token.Token, error) {
	if len(l.multiLineCommentStarts) > 0 {
		loc := source.NewLocation(l.point, l.point)
		return l.fail(&Error{Kind: UnclosedComments, Loc: loc, OpenLocs: l.multiLineCommentStarts})
	}
	if len(l.openBraces) > 0 {
		loc := source.NewLocation(l.point, l.point)
		return l.fail(&Error{Kind: UnexpectedEOF, Loc: loc})
	}

	if l.hasLast && l.lastKind != token.NEWLINE {
		start := l.point
		l.pending = append(l.pending, token.Token{Kind: token.NEWLINE, Start: start, End: l.point, AtEOF: true})
	}
	l.pending = append(l.pending, l.indentTokens(0)...)

	if len(l.pending) == 0 {
		return token.Token{}, io.EOF
	}
	t := l.pending[0]
	l.pending = l.pending[1:]
	l.done = len(l.pending) == 0
	return t, nil
}

// indentTokens computes the Indent/Dedent run needed to move from
// l.currentIndent to target, updating l.currentIndent.
func (l *Lexer) indentTokens(target int) []token.Token {
	var toks []token.Token
	for l.currentIndent < target {
		toks = append(toks, token.Token{Kind: token.INDENT, Start: l.point, End: l.point})
		l.currentIndent++
	}
	for l.currentIndent > target {
		toks = append(toks, token.Token{Kind: token.DEDENT, Start: l.point, End: l.point})
		l.currentIndent--
	}
	return toks
}

func indentLevel(s string) int {
	tabs, spaces := 0, 0
	for _, r := range s {
		switch r {
		case '\t':
			tabs++
		case ' ':
			spaces++
		default:
			return tabs + (spaces+3)/4
		}
	}
	return tabs + (spaces+3)/4
}

// isBlankLine reports whether s, taken from the current input position,
// starts with a line containing only horizontal whitespace.
func isBlankLine(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t':
			continue
		case '\n', '\r':
			return true
		default:
			return false
		}
	}
	return true
}
