package diag

import (
	"sort"
	"strings"

	"github.com/emblem-lang/emblem/source"
)

// LogArgs groups the logging configuration a caller holds: whether to
// colour output, whether warnings should count as failures, and how
// verbose to be. Nothing in this package reads a LogArgs as a whole;
// NewList takes the warnings-as-errors flag and List.Add the Verbosity.
// Loading it from flags or a manifest is the caller's job.
type LogArgs struct {
	Colour          bool
	WarningsAsErrors bool
	Verbosity       Verbosity
}

// Verbosity gates which Logs List.Add accepts.
type Verbosity int

const (
	Terse Verbosity = iota
	Verbose
	Debug
)

// Permits reports whether a Log of the given severity should be kept at
// this verbosity level.
func (v Verbosity) Permits(s Severity) bool {
	if s == SevError || s == SevWarning {
		return true
	}
	return v >= Verbose
}

// List aggregates Logs produced across a parse/lint run: it implements
// error, can be sorted into file order, and de-duplicates near-identical
// entries. Rendering Logs to a terminal is out of scope; List only
// accumulates Logs and reports counts.
type List struct {
	logs            []*Log
	warningsAsErrors bool
}

// NewList builds an empty List.
func NewList(warningsAsErrors bool) *List {
	return &List{warningsAsErrors: warningsAsErrors}
}

// Add appends logs that pass v's verbosity gate.
func (lst *List) Add(v Verbosity, logs ...*Log) {
	for _, l := range logs {
		if v.Permits(l.MsgType()) {
			lst.logs = append(lst.logs, l)
		}
	}
}

// Logs returns the accumulated Logs in insertion order.
func (lst *List) Logs() []*Log { return lst.logs }

// Errors returns the count of error-severity Logs.
func (lst *List) Errors() int {
	n := 0
	for _, l := range lst.logs {
		if l.MsgType() == SevError {
			n++
		}
	}
	return n
}

// Warnings returns the count of warning-severity Logs.
func (lst *List) Warnings() int {
	n := 0
	for _, l := range lst.logs {
		if l.MsgType() == SevWarning {
			n++
		}
	}
	return n
}

// Failed reports whether this List represents an unsuccessful run: any
// error, or (with warningsAsErrors) any warning.
func (lst *List) Failed() bool {
	for _, l := range lst.logs {
		if !l.Successful(lst.warningsAsErrors) {
			return true
		}
	}
	return false
}

// Sort orders Logs by their primary source location (file name, then
// start and end byte offset), then message.
func (lst *List) Sort() {
	sort.SliceStable(lst.logs, func(i, j int) bool {
		a, b := lst.logs[i], lst.logs[j]
		aLoc, aOK := primaryLoc(a)
		bLoc, bOK := primaryLoc(b)
		if aOK != bOK {
			return aOK
		}
		if aOK {
			if af, bf := aLoc.FileName().String(), bLoc.FileName().String(); af != bf {
				return af < bf
			}
			as, ae := aLoc.Indices()
			bs, be := bLoc.Indices()
			if as != bs {
				return as < bs
			}
			if ae != be {
				return ae < be
			}
		}
		return a.Msg() < b.Msg()
	})
}

// RemoveMultiples drops Logs that are approximate duplicates (same
// location string and message) of one already kept.
func (lst *List) RemoveMultiples() {
	lst.Sort()
	seen := make(map[string]bool, len(lst.logs))
	out := lst.logs[:0]
	for _, l := range lst.logs {
		loc, _ := primaryLoc(l)
		key := loc.String() + "\x00" + l.Msg()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, l)
	}
	lst.logs = out
}

func primaryLoc(l *Log) (loc source.Location, ok bool) {
	srcs := l.Srcs()
	if len(srcs) == 0 {
		return source.Location{}, false
	}
	return srcs[0].Loc(), true
}

// Error renders the List as a single multi-line error string, satisfying
// the `error` interface.
func (lst *List) Error() string {
	var b strings.Builder
	for i, l := range lst.logs {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(l.String())
	}
	return b.String()
}
