package diag

import "github.com/emblem-lang/emblem/source"

// Note annotates a single point within a Src's snippet, carrying its own
// severity which must not exceed the severity of the enclosing Log.
type Note struct {
	loc     source.Location
	msg     string
	msgType Severity
}

func newNote(msgType Severity, loc source.Location, msg string) Note {
	return Note{loc: loc, msg: msg, msgType: msgType}
}

// ErrorNote builds an error-severity annotation at loc.
func ErrorNote(loc source.Location, msg string) Note { return newNote(SevError, loc, msg) }

// WarnNote builds a warning-severity annotation at loc.
func WarnNote(loc source.Location, msg string) Note { return newNote(SevWarning, loc, msg) }

// InfoNote builds an info-severity annotation at loc.
func InfoNote(loc source.Location, msg string) Note { return newNote(SevInfo, loc, msg) }

// HelpNote builds a help-severity annotation at loc.
func HelpNote(loc source.Location, msg string) Note { return newNote(SevHelp, loc, msg) }

// Loc returns the location this annotation underlines.
func (n Note) Loc() source.Location { return n.loc }

// Msg returns the annotation text.
func (n Note) Msg() string { return n.msg }

// MsgType returns the annotation's severity.
func (n Note) MsgType() Severity { return n.msgType }
