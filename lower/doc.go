// Package lower turns a parsed source file into the canonical document
// tree every later stage (layout, explain, ...) actually consumes: a
// typesetter sees only Words, Dashes, Glue and Commands, never the
// surface sugar or paragraph grouping that produced them. This mirrors
// emblem_core::build::typesetter::doc's IntoDoc pass.
package lower

import "github.com/emblem-lang/emblem/source"

// Kind identifies which DocElem variant a Doc node is.
type Kind int

const (
	Word Kind = iota + 1
	Dash
	Glue
	Command
	ContentList
)

// DashKind mirrors ast.DashKind.
type DashKind int

const (
	Hyphen DashKind = iota + 1
	En
	Em
)

// GlueKind mirrors ast.GlueKind.
type GlueKind int

const (
	Tight GlueKind = iota + 1
	Nbsp
)

// Attr is a lowered command attribute: named (key=value) or unnamed
// (bare value).
type Attr struct {
	Name  string // "" if unnamed
	Value string
}

// Doc is one node of the lowered document tree. Which fields are
// meaningful depends on Kind, the way ast.Content's variants each use
// only a subset of their struct's fields.
type Doc struct {
	Kind Kind
	Loc  source.Location

	Text string // Word

	DashKind DashKind // Dash
	GlueKind GlueKind // Glue

	Name  string // Command
	Plus  bool   // Command
	Attrs []Attr // Command, nil if none

	Elems []*Doc // Command: its arguments, in order; ContentList: its children
}

func wordDoc(text string, loc source.Location) *Doc {
	return &Doc{Kind: Word, Text: text, Loc: loc}
}

func dashDoc(kind DashKind, loc source.Location) *Doc {
	return &Doc{Kind: Dash, DashKind: kind, Loc: loc}
}

func glueDoc(kind GlueKind, loc source.Location) *Doc {
	return &Doc{Kind: Glue, GlueKind: kind, Loc: loc}
}

func commandDoc(name string, plus bool, attrs []Attr, args []*Doc, loc source.Location) *Doc {
	return &Doc{Kind: Command, Name: name, Plus: plus, Attrs: attrs, Elems: args, Loc: loc}
}

func contentDoc(elems []*Doc, loc source.Location) *Doc {
	return &Doc{Kind: ContentList, Elems: elems, Loc: loc}
}

// Simplify collapses a ContentList holding exactly one child into that
// child, recursively, the way doc.rs's simplify() removes wrapper nodes
// a single-element Vec<Content> would otherwise leave behind.
func (d *Doc) Simplify() *Doc {
	if d == nil {
		return nil
	}
	switch d.Kind {
	case ContentList:
		if len(d.Elems) == 1 {
			return d.Elems[0].Simplify()
		}
		out := make([]*Doc, len(d.Elems))
		for i, e := range d.Elems {
			out[i] = e.Simplify()
		}
		return &Doc{Kind: ContentList, Elems: out, Loc: d.Loc}
	case Command:
		out := make([]*Doc, len(d.Elems))
		for i, e := range d.Elems {
			out[i] = e.Simplify()
		}
		return &Doc{Kind: Command, Name: d.Name, Plus: d.Plus, Attrs: d.Attrs, Elems: out, Loc: d.Loc}
	default:
		return d
	}
}
