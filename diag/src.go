package diag

import "github.com/emblem-lang/emblem/source"

// Src is one annotated source snippet attached to a Log: a primary
// Location plus zero or more Notes underlining points within it.
type Src struct {
	loc         source.Location
	annotations []Note
}

// NewSrc builds a Src spanning loc with no annotations yet.
func NewSrc(loc source.Location) Src {
	return Src{loc: loc}
}

// WithAnnotation appends note and returns the updated Src.
func (s Src) WithAnnotation(note Note) Src {
	s.annotations = append(append([]Note(nil), s.annotations...), note)
	return s
}

// Loc returns the snippet's primary location.
func (s Src) Loc() source.Location { return s.loc }

// Annotations returns the notes underlining points within the snippet.
func (s Src) Annotations() []Note { return s.annotations }
