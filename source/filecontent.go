package source

import "strings"

// FileContent is a shared-ownership immutable source buffer.
type FileContent struct {
	raw string
}

// NewFileContent builds a FileContent directly, without interning. Prefer
// Context.AllocFileContent when a Context is available.
func NewFileContent(content string) FileContent {
	return FileContent{raw: content}
}

// Raw returns the full underlying buffer.
func (c FileContent) Raw() string {
	return c.raw
}

// Len returns the byte length of the buffer.
func (c FileContent) Len() int {
	return len(c.raw)
}

// Slice returns the FileContentSlice covering [start, end) of c.
func (c FileContent) Slice(start, end int) FileContentSlice {
	return FileContentSlice{content: c, start: start, end: end}
}

// All returns a FileContentSlice covering the whole buffer.
func (c FileContent) All() FileContentSlice {
	return c.Slice(0, len(c.raw))
}

// FileContentSlice is a (content, byte-range) pair: a cheap view into a
// FileContent. Equality compares the visible substring, not provenance.
type FileContentSlice struct {
	content FileContent
	start   int
	end     int
}

// Raw returns the substring this slice covers.
func (s FileContentSlice) Raw() string {
	return s.content.raw[s.start:s.end]
}

// Range returns the [start, end) byte range within the parent content.
func (s FileContentSlice) Range() (int, int) {
	return s.start, s.end
}

// Content returns the FileContent this slice was taken from.
func (s FileContentSlice) Content() FileContent {
	return s.content
}

// Slice further narrows s to the byte range [start, end) measured relative
// to s itself, preserving provenance into the original FileContent.
func (s FileContentSlice) Slice(start, end int) FileContentSlice {
	return FileContentSlice{content: s.content, start: s.start + start, end: s.start + end}
}

// Trimmed returns a new slice over the same content with leading and
// trailing ASCII whitespace removed from the view.
func (s FileContentSlice) Trimmed() FileContentSlice {
	raw := s.Raw()
	trimmedLeft := strings.TrimLeftFunc(raw, isSpace)
	lead := len(raw) - len(trimmedLeft)
	trimmed := strings.TrimRightFunc(trimmedLeft, isSpace)
	return FileContentSlice{
		content: s.content,
		start:   s.start + lead,
		end:     s.start + lead + len(trimmed),
	}
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// Equal reports whether two slices have the same visible text, regardless
// of which content they were sliced from.
func (s FileContentSlice) Equal(other FileContentSlice) bool {
	return s.Raw() == other.Raw()
}
