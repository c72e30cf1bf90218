package ast

import "github.com/emblem-lang/emblem/source"

// SugarKind identifies which built-in shorthand a Sugar node spells out,
// per spec.md §4.3's delimiter/prefix table.
type SugarKind int

const (
	Italic SugarKind = iota + 1
	Bold
	Monospace
	Smallcaps
	AlternateFace
	Heading
	Mark
	Reference
)

// callNames maps each SugarKind to the command it desugars to during
// lowering (lower.Lower), per spec.md §4.5.
var callNames = map[SugarKind]string{
	Italic:        "it",
	Bold:          "bf",
	Monospace:     "tt",
	Smallcaps:     "sc",
	AlternateFace: "af",
	Mark:          "mark",
	Reference:     "ref",
}

// headingCallNames maps a heading level (1-6) to its command name.
var headingCallNames = [7]string{"", "h1", "h2", "h3", "h4", "h5", "h6"}

// Sugar is a shorthand form of a built-in command: emphasis delimiters
// (`_.._`, `**..**`, `` `..` ``, `=..=`, `==..==`), a heading (`# ..`), or
// the `@name`/`#name` mark/reference forms. The parser only ever produces
// a Sugar node for the built-in forms the grammar recognises directly;
// anything else is an ordinary Command.
type Sugar struct {
	Kind      SugarKind
	Arg       []Content // nil for Mark/Reference, which carry no argument
	Name      string    // Mark/Reference: the referenced name
	Level     int       // Heading: 1-6
	Pluses    int       // Heading: number of trailing '+' markers
	Delimiter string    // Italic/Bold/Monospace/Smallcaps/AlternateFace: the raw delimiter matched

	// InvocationLoc spans just the `#...+*` prefix of a Heading, excluding
	// its argument; Loc() spans the whole construct. Unused (equal to
	// Loc()) for every other SugarKind.
	InvocationLoc source.Location

	location source.Location
}

func (s *Sugar) Loc() source.Location { return s.location }

// NewSugar builds a Sugar node for an emphasis-delimited form, recording
// the exact delimiter text matched so lints like emph-delimiters can tell
// "_x_" from "*x*" even though both desugar to the same Italic kind.
func NewSugar(loc source.Location, kind SugarKind, delimiter string, arg []Content) *Sugar {
	return &Sugar{Kind: kind, Arg: arg, Delimiter: delimiter, location: loc, InvocationLoc: loc}
}

// NewHeadingSugar builds a Heading Sugar node.
func NewHeadingSugar(loc, invocationLoc source.Location, level, pluses int, arg []Content) *Sugar {
	return &Sugar{Kind: Heading, Level: level, Pluses: pluses, Arg: arg, location: loc, InvocationLoc: invocationLoc}
}

// NewMarkSugar builds a Mark Sugar node (`@name`).
func NewMarkSugar(loc source.Location, name string) *Sugar {
	return &Sugar{Kind: Mark, Name: name, location: loc, InvocationLoc: loc}
}

// NewReferenceSugar builds a Reference Sugar node (`#name`).
func NewReferenceSugar(loc source.Location, name string) *Sugar {
	return &Sugar{Kind: Reference, Name: name, location: loc, InvocationLoc: loc}
}

// CallName returns the command name this sugar desugars to, per
// spec.md §4.5's lowering table.
func (s *Sugar) CallName() string {
	if s.Kind == Heading {
		if s.Level < 1 || s.Level > 6 {
			return "h6"
		}
		return headingCallNames[s.Level]
	}
	return callNames[s.Kind]
}
