package ast

import "github.com/emblem-lang/emblem/source"

// Command is a `.name{...}[...]` invocation: the unit of extension in
// Emblem, carrying an optional dotted qualifier, zero or more `+`
// specialisation markers, an optional attribute list, and up to three
// kinds of argument per spec.md §4.4 (inline `{...}` args, a remainder
// arg that absorbs the rest of the current line, and indented trailer
// args on following lines).
type Command struct {
	Qualifier string // "" if unqualified
	Name      string
	Pluses    int

	Attrs *Attrs // nil if the command has no `[...]`

	InlineArgs   [][]Content // each `{...}` in sequence
	RemainderArg []Content   // nil if absent
	TrailerArgs  [][]Content // nil if absent

	// InvocationLoc spans `.qualifier.name++` and its `[...]` attribute
	// list if present, excluding arguments; Loc() spans the whole
	// construct including every argument. Lowering
	// uses InvocationLoc so a diagnostic about the call itself doesn't
	// underline its (possibly enormous) arguments.
	InvocationLoc source.Location
	location      source.Location
}

func (c *Command) Loc() source.Location { return c.location }

// NewCommand builds a Command node.
func NewCommand(loc, invocationLoc source.Location, qualifier, name string, pluses int) *Command {
	return &Command{
		Qualifier:     qualifier,
		Name:          name,
		Pluses:        pluses,
		InvocationLoc: invocationLoc,
		location:      loc,
	}
}

// QualifiedName returns the command's full dotted name, e.g. "std.bf".
func (c *Command) QualifiedName() string {
	if c.Qualifier == "" {
		return c.Name
	}
	return c.Qualifier + "." + c.Name
}

// Attrs is a command's bracketed attribute list.
type Attrs struct {
	List     []*Attr
	location source.Location
}

func (a *Attrs) Loc() source.Location { return a.location }

// NewAttrs builds an Attrs list.
func NewAttrs(loc source.Location, list []*Attr) *Attrs {
	return &Attrs{List: list, location: loc}
}

// Attr is one entry in an attribute list: named (`key=value`) or
// unnamed (bare `value`).
type Attr struct {
	name     string // "" for an unnamed attr
	value    string
	named    bool
	location source.Location
}

func (a *Attr) Loc() source.Location { return a.location }

// NewNamedAttr builds a named attribute.
func NewNamedAttr(loc source.Location, name, value string) *Attr {
	return &Attr{name: name, value: value, named: true, location: loc}
}

// NewUnnamedAttr builds an unnamed attribute.
func NewUnnamedAttr(loc source.Location, value string) *Attr {
	return &Attr{value: value, location: loc}
}

// Named reports whether this is a `key=value` attribute.
func (a *Attr) Named() bool { return a.named }

// Name returns the attribute's key, or "" if unnamed.
func (a *Attr) Name() string { return a.name }

// Value returns the attribute's value (the bare text for an unnamed
// attribute, the text after `=` for a named one).
func (a *Attr) Value() string { return a.value }

// Repr renders the attribute the way it would appear in source:
// "name=value" or "value".
func (a *Attr) Repr() string {
	if a.named {
		return a.name + "=" + a.value
	}
	return a.value
}
