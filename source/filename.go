package source

// FileName is a shared-ownership, value-comparable file identifier. Two
// FileName values compare equal iff they were allocated from equal strings,
// regardless of which Context allocated them.
type FileName struct {
	name string
}

// NewFileName builds a FileName directly, without interning. Prefer
// Context.AllocFileName when a Context is available.
func NewFileName(name string) FileName {
	return FileName{name: name}
}

// String returns the underlying file name.
func (f FileName) String() string {
	return f.name
}

// IsZero reports whether f is the zero FileName.
func (f FileName) IsZero() bool {
	return f.name == ""
}
