// Package parser implements a recursive-descent parser: it drives a
// lexer.Lexer one token ahead and assembles an *ast.ParsedFile.
package parser

import (
	"io"
	"strings"

	"github.com/emblem-lang/emblem/ast"
	"github.com/emblem-lang/emblem/lexer"
	"github.com/emblem-lang/emblem/source"
	"github.com/emblem-lang/emblem/token"
)

type parser struct {
	lex   *lexer.Lexer
	tok   token.Token
	atEOF bool
	errs  []error
}

// Parse lexes and parses content, labelled fileName, into a ParsedFile.
// Parsing continues on error where possible; the returned error slice may
// be non-empty even when a (partial) tree is returned, so callers can
// report every problem in a file in one pass instead of stopping at the
// first one.
func Parse(fileName source.FileName, content source.FileContent) (*ast.ParsedFile, []error) {
	p := &parser{lex: lexer.New(fileName, content)}
	p.next()

	file := &ast.ParsedFile{FileName: fileName}

	if p.tok.Kind == token.SHEBANG {
		file.Shebang = ast.NewShebang(p.tok.Loc(), p.tok.Raw)
		p.next()
	}

	for !p.atEOF {
		if p.tok.Kind == token.NEWLINE || p.tok.Kind == token.PARBREAK {
			p.next()
			continue
		}
		par := p.parsePar()
		if par != nil {
			file.Pars = append(file.Pars, par)
		}
	}

	return file, p.errs
}

func (p *parser) next() {
	tok, err := p.lex.Next()
	if err != nil {
		if err != io.EOF {
			p.errs = append(p.errs, err)
		}
		p.atEOF = true
		p.tok = token.Token{}
		return
	}
	p.tok = tok
}

func (p *parser) recordUnexpected(expected []string) {
	p.errs = append(p.errs, &Error{Loc: p.tok.Loc(), Got: p.tok.Kind, Expected: expected})
}

func isLineStop(k token.Kind) bool {
	return k == token.NEWLINE || k == token.PARBREAK || k == token.DEDENT
}

func isRemainderStop(k token.Kind) bool {
	return k == token.NEWLINE || k == token.PARBREAK
}

// parsePar collects ParParts up to a ParBreak or EOF.
func (p *parser) parsePar() *ast.Par {
	var parts []*ast.ParPart
	for !p.atEOF && p.tok.Kind != token.PARBREAK {
		part := p.parseParPart()
		if part == nil {
			break
		}
		parts = append(parts, part)
	}
	if p.tok.Kind == token.PARBREAK {
		p.next()
	}
	if len(parts) == 0 {
		return nil
	}
	return ast.NewPar(parts[0].Loc().SpanTo(parts[len(parts)-1].Loc()), parts)
}

// parseParPart parses one source line's content, consuming its
// terminating Newline, then (if the line was a single bare Command)
// absorbs any indented trailer-argument block that follows.
func (p *parser) parseParPart() *ast.ParPart {
	if p.atEOF {
		return nil
	}
	startLoc := p.tok.Loc()
	line := p.parseContentRun(isLineStop)
	endLoc := startLoc
	if len(line) > 0 {
		endLoc = startLoc.SpanTo(line[len(line)-1].Loc())
	}
	if p.tok.Kind == token.NEWLINE {
		endLoc = endLoc.SpanTo(p.tok.Loc())
		p.next()
	}
	if len(line) == 0 && p.atEOF {
		return nil
	}
	part := ast.NewParPart(endLoc, line)
	p.maybeAttachTrailerArgs(part)
	return part
}

// maybeAttachTrailerArgs absorbs a following indented block into the
// command's TrailerArgs when part's line was exactly one bare Command, then
// keeps absorbing further `::`-introduced trailer blocks as they appear,
// per spec.md §4.3's
// `Trailers ::= ':' Newline Indent Par (Dedent Newline '::' Newline Indent Par)* Dedent`.
func (p *parser) maybeAttachTrailerArgs(part *ast.ParPart) {
	if len(part.Line) != 1 || p.tok.Kind != token.INDENT {
		return
	}
	cmd, ok := part.Line[0].(*ast.Command)
	if !ok {
		return
	}
	p.consumeTrailerBlock(cmd)
	for {
		for p.tok.Kind == token.NEWLINE || p.tok.Kind == token.PARBREAK {
			p.next()
		}
		if p.tok.Kind != token.DCOLON {
			return
		}
		p.next()
		for p.tok.Kind == token.NEWLINE || p.tok.Kind == token.PARBREAK {
			p.next()
		}
		if p.tok.Kind != token.INDENT {
			p.recordUnexpected([]string{"an indented trailer block"})
			return
		}
		p.consumeTrailerBlock(cmd)
	}
}

// consumeTrailerBlock consumes one `Indent Par Dedent` group, appending each
// of its lines to cmd.TrailerArgs.
func (p *parser) consumeTrailerBlock(cmd *ast.Command) {
	p.next() // consume Indent
	for !p.atEOF && p.tok.Kind != token.DEDENT {
		if p.tok.Kind == token.NEWLINE || p.tok.Kind == token.PARBREAK {
			p.next()
			continue
		}
		line := p.parseContentRun(isLineStop)
		if p.tok.Kind == token.NEWLINE {
			p.next()
		}
		if len(line) > 0 {
			cmd.TrailerArgs = append(cmd.TrailerArgs, line)
		} else {
			break
		}
	}
	if p.tok.Kind == token.DEDENT {
		p.next()
	}
}

// parseContentRun parses Content nodes until stop(current kind) or EOF.
func (p *parser) parseContentRun(stop func(token.Kind) bool) []ast.Content {
	var out []ast.Content
	for !p.atEOF && !stop(p.tok.Kind) {
		c := p.parseOneContent()
		if c == nil {
			break
		}
		out = append(out, c)
	}
	return out
}

func (p *parser) parseOneContent() ast.Content {
	switch p.tok.Kind {
	case token.WORD:
		return p.parseWordOrSugar()
	case token.WHITESPACE:
		n := ast.NewWhitespace(p.tok.Loc(), p.tok.Raw)
		p.next()
		return n
	case token.DASH:
		n := ast.NewDash(p.tok.Loc(), p.tok.Raw, ast.DashKind(p.tok.DashKind))
		p.next()
		return n
	case token.GLUE:
		n := ast.NewGlue(p.tok.Loc(), p.tok.Raw, ast.GlueKind(p.tok.GlueKind))
		p.next()
		return n
	case token.SPILTGLUE:
		n := ast.NewSpiltGlue(p.tok.Loc(), p.tok.Raw, ast.GlueKind(p.tok.GlueKind))
		p.next()
		return n
	case token.VERBATIM:
		n := ast.NewVerbatim(p.tok.Loc(), p.tok.Raw)
		p.next()
		return n
	case token.COMMENT:
		n := ast.NewComment(p.tok.Loc(), p.tok.Raw)
		p.next()
		return n
	case token.NESTEDCOMMENTOPEN:
		parts, loc := p.parseMLCParts()
		return ast.NewMultiLineComment(loc, parts)
	case token.COMMAND:
		return p.parseCommand()
	case token.HEADING:
		return p.parseHeadingSugar()
	case token.EMPHOPEN:
		return p.parseEmphSugar()
	default:
		return nil
	}
}

// parseWordOrSugar recognises the `@name`/`#name` mark/reference sugar
// within an otherwise-ordinary Word token, per the lexer's decision to
// leave that recognition to the parser.
func (p *parser) parseWordOrSugar() ast.Content {
	raw := p.tok.Raw
	loc := p.tok.Loc()
	text := raw.Raw()
	switch {
	case strings.HasPrefix(text, "@") && len(text) > 1:
		p.next()
		return ast.NewMarkSugar(loc, text[1:])
	case strings.HasPrefix(text, "#") && len(text) > 1:
		p.next()
		return ast.NewReferenceSugar(loc, text[1:])
	default:
		p.next()
		return ast.NewWord(loc, raw)
	}
}

var emphKinds = map[string]ast.SugarKind{
	"_":  ast.Italic,
	"*":  ast.Italic,
	"__": ast.Bold,
	"**": ast.Bold,
	"`":  ast.Monospace,
	"=":  ast.Smallcaps,
	"==": ast.AlternateFace,
}

func (p *parser) parseEmphSugar() ast.Content {
	raw := p.tok.Raw.Raw()
	start := p.tok.Loc()
	p.next()
	arg := p.parseContentRun(func(k token.Kind) bool { return k == token.EMPHCLOSE })
	loc := start
	if p.tok.Kind == token.EMPHCLOSE {
		loc = start.SpanTo(p.tok.Loc())
		p.next()
	} else {
		p.recordUnexpected([]string{"a closing emphasis delimiter"})
	}
	return ast.NewSugar(loc, emphKinds[raw], raw, arg)
}

func (p *parser) parseHeadingSugar() ast.Content {
	level := p.tok.Level
	pluses := p.tok.Pluses
	invocationLoc := p.tok.Loc()
	p.next()
	arg := p.parseContentRun(isRemainderStop)
	loc := invocationLoc
	if len(arg) > 0 {
		loc = invocationLoc.SpanTo(arg[len(arg)-1].Loc())
	}
	return ast.NewHeadingSugar(loc, invocationLoc, level, pluses, arg)
}

func (p *parser) parseMLCParts() ([]ast.MultiLineCommentPart, source.Location) {
	start := p.tok.Loc()
	p.next()
	var parts []ast.MultiLineCommentPart
	for !p.atEOF {
		switch p.tok.Kind {
		case token.NESTEDCOMMENTCLOSE:
			loc := start.SpanTo(p.tok.Loc())
			p.next()
			return parts, loc
		case token.NESTEDCOMMENTOPEN:
			nested, loc := p.parseMLCParts()
			parts = append(parts, ast.NewMLCNested(loc, nested))
		case token.COMMENT:
			parts = append(parts, ast.NewMLCText(p.tok.Loc(), p.tok.Raw))
			p.next()
		case token.NEWLINE:
			parts = append(parts, ast.NewMLCNewline(p.tok.Loc()))
			p.next()
		default:
			return parts, start
		}
	}
	return parts, start
}

func (p *parser) parseCommand() *ast.Command {
	start := p.tok.Loc()
	qualifier, name, pluses := p.tok.Qualifier, p.tok.Name, p.tok.Pluses
	invocationLoc := start
	fullLoc := start
	p.next()

	var attrs *ast.Attrs
	if p.tok.Kind == token.LBRACKET {
		attrs = p.parseAttrs()
		invocationLoc = invocationLoc.SpanTo(attrs.Loc())
		fullLoc = fullLoc.SpanTo(attrs.Loc())
	}

	var inlineArgs [][]ast.Content
	for p.tok.Kind == token.LBRACE {
		braceLoc := p.tok.Loc()
		p.next()
		arg := p.parseContentRun(func(k token.Kind) bool { return k == token.RBRACE })
		if p.tok.Kind == token.RBRACE {
			braceLoc = braceLoc.SpanTo(p.tok.Loc())
			p.next()
		} else {
			p.recordUnexpected([]string{"'}'"})
		}
		inlineArgs = append(inlineArgs, arg)
		fullLoc = fullLoc.SpanTo(braceLoc)
	}

	var remainder []ast.Content
	if p.tok.Kind == token.COLON || p.tok.Kind == token.DCOLON {
		p.next()
		remainder = p.parseContentRun(isRemainderStop)
		if len(remainder) > 0 {
			fullLoc = fullLoc.SpanTo(remainder[len(remainder)-1].Loc())
		}
	}

	cmd := ast.NewCommand(fullLoc, invocationLoc, qualifier, name, pluses)
	cmd.Attrs = attrs
	cmd.InlineArgs = inlineArgs
	cmd.RemainderArg = remainder
	return cmd
}

func (p *parser) parseAttrs() *ast.Attrs {
	start := p.tok.Loc()
	p.next()
	var list []*ast.Attr
	for p.tok.Kind != token.RBRACKET && !p.atEOF {
		switch p.tok.Kind {
		case token.NAMEDATTR:
			raw := p.tok.Raw.Raw()
			loc := p.tok.Loc()
			name, value := raw, ""
			if i := strings.IndexByte(raw, '='); i >= 0 {
				name, value = raw[:i], raw[i+1:]
			}
			list = append(list, ast.NewNamedAttr(loc, name, value))
			p.next()
		case token.UNNAMEDATTR:
			list = append(list, ast.NewUnnamedAttr(p.tok.Loc(), p.tok.Raw.Raw()))
			p.next()
		case token.ATTRCOMMA:
			p.next()
		default:
			p.recordUnexpected([]string{"an attribute", "','", "']'"})
			p.next()
		}
	}
	end := start
	if p.tok.Kind == token.RBRACKET {
		end = p.tok.Loc()
		p.next()
	}
	return ast.NewAttrs(start.SpanTo(end), list)
}
