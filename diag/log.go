package diag

import (
	"fmt"
	"regexp"
)

var explainableID = regexp.MustCompile(`^E\d{3}$`)

// Log is a single diagnostic record: a title message, severity, optional
// stable id, optional help/note footer text, zero or more annotated source
// snippets, and an optional "expected" set for grammar-style errors.
type Log struct {
	msg        string
	msgType    Severity
	id         string
	help       string
	note       string
	srcs       []Src
	explainable bool
	expected   []string
}

func newLog(msgType Severity, msg string) *Log {
	return &Log{msg: msg, msgType: msgType}
}

// Error builds an error-severity Log.
func Error(msg string) *Log { return newLog(SevError, msg) }

// Warn builds a warning-severity Log.
func Warn(msg string) *Log { return newLog(SevWarning, msg) }

// Info builds an info-severity Log.
func Info(msg string) *Log { return newLog(SevInfo, msg) }

// Msg returns the Log's title text.
func (l *Log) Msg() string { return l.msg }

// MsgType returns the Log's severity.
func (l *Log) MsgType() Severity { return l.msgType }

// WithID attaches a stable diagnostic id (e.g. a lint id or an E-code).
func (l *Log) WithID(id string) *Log {
	l.id = id
	return l
}

// ID returns the Log's id, or "" if unset.
func (l *Log) ID() string { return l.id }

// Explainable marks the Log as having a long-form explanation retrievable
// by its id. The id must already be set and match ^E\d{3}$.
func (l *Log) Explainable() *Log {
	if l.id == "" {
		panic("internal error: attempted to mark log without id as explainable")
	}
	if !explainableID.MatchString(l.id) {
		panic(fmt.Sprintf("internal error: explainable log id %q does not match E\\d{3}", l.id))
	}
	l.explainable = true
	return l
}

// IsExplainable reports whether Explainable was called.
func (l *Log) IsExplainable() bool { return l.explainable }

// WithNote attaches footer note text.
func (l *Log) WithNote(note string) *Log {
	l.note = note
	return l
}

// NoteText returns the Log's footer note, if any.
func (l *Log) NoteText() string { return l.note }

// WithHelp attaches footer help text. Panics if help is already set.
func (l *Log) WithHelp(help string) *Log {
	if l.help != "" {
		panic("internal error: help already set")
	}
	l.help = help
	return l
}

// Help returns the Log's footer help text, if any.
func (l *Log) Help() string { return l.help }

// WithSrc appends an annotated source snippet.
func (l *Log) WithSrc(src Src) *Log {
	l.srcs = append(l.srcs, src)
	return l
}

// Srcs returns the Log's annotated source snippets.
func (l *Log) Srcs() []Src { return l.srcs }

// WithExpected attaches the "expected" set for a grammar-style error.
func (l *Log) WithExpected(expected []string) *Log {
	l.expected = expected
	return l
}

// Expected returns the Log's "expected" set, if any.
func (l *Log) Expected() []string { return l.expected }

// Successful reports whether l should not count as a build failure: true
// for Info, and for Warning unless warningsAsErrors is set.
func (l *Log) Successful(warningsAsErrors bool) bool {
	switch l.msgType {
	case SevError:
		return false
	case SevWarning:
		return !warningsAsErrors
	default:
		return true
	}
}

// WithRuleID returns a copy of l tagged with a lint rule id, the way the
// lint engine tags every Log produced by a rule (mirrors lint::mod.rs's
// `problem.with_id(lint.id())`). Like WithID it replaces any previously
// set id, but unlike WithID it leaves l unchanged and returns the copy.
func (l *Log) WithRuleID(id string) *Log {
	clone := *l
	clone.id = id
	return &clone
}

func (l *Log) String() string {
	return fmt.Sprintf("%s: %s", l.msgType, l.msg)
}
