package source

import (
	"fmt"
	"strings"
)

// Location is a span between two Points within a single file. Its end
// column is stored one less than the raw end Point's column (floored at 1)
// since the end Point sits just past the last included character.
type Location struct {
	fileName FileName
	src      FileContentSlice
	lines    [2]int
	cols     [2]int
	indices  [2]int
}

// NewLocation builds the Location spanning [start, end).
func NewLocation(start, end Point) Location {
	endCol := end.Col - 1
	if endCol < 1 {
		endCol = 1
	}
	return Location{
		fileName: start.FileName,
		src:      start.Content.All(),
		lines:    [2]int{start.Line, end.Line},
		cols:     [2]int{start.Col, endCol},
		indices:  [2]int{start.Index, end.Index},
	}
}

// FileName returns the file this location belongs to.
func (l Location) FileName() FileName { return l.fileName }

// Src returns the full content of the file this location belongs to.
func (l Location) Src() FileContentSlice { return l.src }

// Lines returns the (start, end) 1-based line numbers.
func (l Location) Lines() (int, int) { return l.lines[0], l.lines[1] }

// Cols returns the (start, end) 1-based column numbers.
func (l Location) Cols() (int, int) { return l.cols[0], l.cols[1] }

// Indices returns the (start, end) byte offsets within Src().
func (l Location) Indices() (int, int) { return l.indices[0], l.indices[1] }

// IndicesIn remaps l's absolute byte offsets into offsets relative to the
// start of context, typically a slice returned by Context().
func (l Location) IndicesIn(context FileContentSlice) (int, int) {
	start, _ := context.Range()
	return l.indices[0] - start, l.indices[1] - start
}

// Start reconstructs the Point at the beginning of l.
func (l Location) Start() Point {
	return Point{
		FileName: l.fileName,
		Content:  l.src.Content(),
		Line:     l.lines[0],
		Col:      l.cols[0],
		Index:    l.indices[0],
	}
}

// End reconstructs the Point at the end of l. Note this does not perfectly
// round-trip an End Point originally passed to NewLocation unless that
// Point's column already sat one past the last included character.
func (l Location) End() Point {
	return Point{
		FileName: l.fileName,
		Content:  l.src.Content(),
		Line:     l.lines[1],
		Col:      l.cols[1],
		Index:    l.indices[1],
	}
}

// SpanTo merges l and other into their enclosing span. Both must belong to
// the same file; this is an internal-invariant violation otherwise (not a
// user-facing error), so it panics rather than returning an error.
func (l Location) SpanTo(other Location) Location {
	if l.fileName != other.fileName {
		panic(fmt.Sprintf("internal error: attempted to span across files: %s and %s", l.fileName, other.fileName))
	}

	return Location{
		fileName: other.fileName,
		src:      l.src,
		lines:    [2]int{min(l.lines[0], other.lines[0]), max(l.lines[1], other.lines[1])},
		indices:  [2]int{min(l.indices[0], other.indices[0]), max(l.indices[1], other.indices[1])},
		cols:     [2]int{min(l.cols[0], other.cols[0]), max(l.cols[1], other.cols[1])},
	}
}

// Context returns the slice covering the full source line(s) enclosing l,
// the way a diagnostic snippet wants to render surrounding context.
func (l Location) Context() FileContentSlice {
	raw := l.src.Raw()
	start := 0
	if i := strings.LastIndexAny(raw[:l.indices[0]], "\r\n"); i >= 0 {
		start = i + 1
	}
	end := len(raw)
	if i := strings.IndexAny(raw[l.indices[1]:], "\r\n"); i >= 0 {
		end = l.indices[1] + i
	}
	return l.src.Slice(start, end)
}

// String renders l as "file:line:col-col" or "file:line:col-line:col" when
// the span crosses lines.
func (l Location) String() string {
	if l.lines[0] != l.lines[1] {
		return fmt.Sprintf("%s:%d:%d-%d:%d", l.fileName, l.lines[0], l.cols[0], l.lines[1], l.cols[1])
	}
	return fmt.Sprintf("%s:%d:%d-%d", l.fileName, l.lines[0], l.cols[0], l.cols[1])
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
