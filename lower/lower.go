package lower

import (
	"github.com/emblem-lang/emblem/ast"
	"github.com/emblem-lang/emblem/source"
)

// Lower converts a parsed file into its canonical Doc tree: paragraphs
// become "p" commands (unless they already reduce to a single command,
// which is left as-is), syntactic sugar expands to the command it
// stands for, and whitespace/comments/spilt glue are dropped, the way
// doc.rs's IntoDoc impls do for ParsedFile/Par/ParPart/Content/Sugar.
func Lower(file *ast.ParsedFile) *Doc {
	var loc source.Location
	if file.Shebang != nil {
		loc = file.Shebang.Loc()
	}

	var elems []*Doc
	for _, par := range file.Pars {
		lowered := lowerParContent(par.Parts)
		if lowered == nil {
			continue
		}
		wrapped := wrapPar(lowered, par.Loc())
		elems = append(elems, wrapped)
		loc = spanInto(loc, par.Loc())
	}

	return contentDoc(elems, loc).Simplify()
}

// spanInto extends loc to cover other, treating a still-zero loc (no
// content seen yet) as "start from other".
func spanInto(loc, other source.Location) source.Location {
	if loc == (source.Location{}) {
		return other
	}
	return loc.SpanTo(other)
}

// lowerParContent lowers every line of a paragraph into one flat Doc,
// concatenating their content left to right, exactly like doc.rs
// flattening a Par's ParParts into a single Vec<DocElem> before the
// caller decides whether to wrap it.
func lowerParContent(parts []*ast.ParPart) *Doc {
	var elems []*Doc
	var loc source.Location
	for _, part := range parts {
		for _, c := range part.Line {
			d := lowerContent(c)
			if d != nil {
				elems = append(elems, d)
			}
		}
		loc = spanInto(loc, part.Loc())
	}
	if len(elems) == 0 {
		return nil
	}
	if len(elems) == 1 {
		return elems[0]
	}
	return contentDoc(elems, loc)
}

// wrapPar wraps a paragraph's lowered content in a synthetic "p"
// command unless it is already a single Command, mirroring doc.rs's
// apply_paragraph: a paragraph that is nothing but one command call
// (e.g. a bare `.figure{...}` line) stands for itself, not a
// paragraph of it.
func wrapPar(content *Doc, loc source.Location) *Doc {
	if content.Kind == Command {
		return content
	}
	return commandDoc("p", false, nil, []*Doc{content}, loc)
}

func lowerContent(c ast.Content) *Doc {
	switch n := c.(type) {
	case *ast.Word:
		return wordDoc(n.Raw.Raw(), n.Loc())
	case *ast.Whitespace:
		return nil
	case *ast.Dash:
		return dashDoc(DashKind(n.Kind), n.Loc())
	case *ast.Glue:
		return glueDoc(GlueKind(n.Kind), n.Loc())
	case *ast.SpiltGlue:
		return nil
	case *ast.Verbatim:
		return wordDoc(n.Raw.Raw(), n.Loc())
	case *ast.Comment:
		return nil
	case *ast.MultiLineComment:
		return nil
	case *ast.Command:
		return lowerCommand(n)
	case *ast.Sugar:
		return lowerSugar(n)
	default:
		return nil
	}
}

func lowerCommand(cmd *ast.Command) *Doc {
	var args []*Doc
	for _, arg := range cmd.InlineArgs {
		args = append(args, lowerContentSlice(arg, cmd.Loc()))
	}
	if cmd.RemainderArg != nil {
		args = append(args, lowerContentSlice(cmd.RemainderArg, cmd.Loc()))
	}
	for _, arg := range cmd.TrailerArgs {
		args = append(args, lowerContentSlice(arg, cmd.Loc()))
	}
	return commandDoc(cmd.QualifiedName(), cmd.Pluses != 0, lowerAttrs(cmd.Attrs), args, cmd.InvocationLoc)
}

// lowerContentSlice lowers one argument (a `{...}`, a remainder, or a
// single trailer-arg line) into a single Doc, wrapping multiple
// resulting elements in a ContentList the way a bare Vec<Content>
// argument does in doc.rs.
func lowerContentSlice(content []ast.Content, fallbackLoc source.Location) *Doc {
	var elems []*Doc
	loc := fallbackLoc
	for i, c := range content {
		d := lowerContent(c)
		if d != nil {
			elems = append(elems, d)
		}
		if i == 0 {
			loc = c.Loc()
		} else {
			loc = loc.SpanTo(c.Loc())
		}
	}
	if len(elems) == 1 {
		return elems[0]
	}
	return contentDoc(elems, loc)
}

func lowerAttrs(attrs *ast.Attrs) []Attr {
	if attrs == nil {
		return nil
	}
	out := make([]Attr, len(attrs.List))
	for i, a := range attrs.List {
		name := ""
		if a.Named() {
			name = a.Name()
		}
		out[i] = Attr{Name: name, Value: a.Value()}
	}
	return out
}

// lowerSugar expands a Sugar node to the command it stands for, per
// Sugar.CallName and spec.md §4.5: emphasis/monospace/smallcaps/
// alternate-face become a plain one-argument call, a Heading keeps its
// pluses as the call's plus marker, and Mark/Reference become a
// zero-argument call carrying the referenced name as their one
// unnamed attribute.
func lowerSugar(s *ast.Sugar) *Doc {
	switch s.Kind {
	case ast.Mark, ast.Reference:
		return commandDoc(s.CallName(), false, []Attr{{Value: s.Name}}, nil, s.Loc())
	case ast.Heading:
		arg := lowerContentSlice(s.Arg, s.Loc())
		return commandDoc(s.CallName(), s.Pluses != 0, nil, []*Doc{arg}, s.InvocationLoc)
	default:
		arg := lowerContentSlice(s.Arg, s.Loc())
		return commandDoc(s.CallName(), false, nil, []*Doc{arg}, s.Loc())
	}
}
