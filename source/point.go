package source

import "unicode/utf8"

// Point is a single position within a file: a byte index plus its 1-based
// line and column, where tabs count as 4 columns for display purposes.
//
// The zero Point (as from `var p Point`) has Line and Col of 0, distinct
// from a real position; use NewPoint for a point at the start of a file
// (Line 1, Col 1).
type Point struct {
	FileName FileName
	Content  FileContent
	Index    int
	Line     int
	Col      int
}

// NewPoint returns the Point at the start of content, labelled fileName.
func NewPoint(fileName FileName, content FileContent) Point {
	return Point{
		FileName: fileName,
		Content:  content,
		Index:    0,
		Line:     1,
		Col:      1,
	}
}

// Shift advances p past text, returning the resulting Point. Newlines
// (\n, \r\n, \r) increment Line; the final line's display width (tabs
// counted as 4 columns, all other runes as 1) advances Col.
func (p Point) Shift(text string) Point {
	lines := splitLines(text)
	numLines := len(lines)

	next := p
	next.Index += len(text)
	next.Line += numLines - 1

	lastLine := lines[numLines-1]
	width := displayWidth(lastLine)

	if numLines > 1 {
		next.Col = width + 1
	} else {
		next.Col = p.Col + width
	}

	return next
}

func displayWidth(s string) int {
	width := 0
	for _, r := range s {
		if r == '\t' {
			width += 4
		} else {
			width++
		}
	}
	return width
}

// splitLines splits s on \n, \r\n, or \r, always returning at least one
// element (so shifting the empty string is a no-op on Line/Col).
func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch r {
		case '\r':
			lines = append(lines, s[start:i])
			if i+size < len(s) && s[i+size] == '\n' {
				size++
			}
			start = i + size
			i += size
			continue
		case '\n':
			lines = append(lines, s[start:i])
			start = i + size
			i += size
			continue
		}
		i += size
	}
	lines = append(lines, s[start:])
	return lines
}
