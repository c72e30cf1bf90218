// Package source owns the immutable, shared-ownership file identities that
// every token and AST node ultimately points back to: a [Context] interns
// file names and file contents so that slices into them stay cheap to clone
// and comparable by value.
package source

import (
	"sync"

	"github.com/google/uuid"
)

// Context allocates and deduplicates FileName and FileContent values for a
// single front-end invocation (one parse, one lint run, one batch of
// either). It carries a UUID identifying the run so that diagnostics
// produced from concurrent invocations can be correlated in structured
// logging output.
type Context struct {
	mu   sync.Mutex
	runID uuid.UUID

	names    map[string]FileName
	contents map[string]FileContent
}

// NewContext creates an empty Context with a fresh run identifier.
func NewContext() *Context {
	return &Context{
		runID:    uuid.New(),
		names:    make(map[string]FileName),
		contents: make(map[string]FileContent),
	}
}

// RunID identifies this Context for correlating diagnostics across a batch
// of files processed together.
func (c *Context) RunID() uuid.UUID {
	return c.runID
}

// AllocFileName interns name, returning the same FileName value for equal
// strings allocated through this Context.
func (c *Context) AllocFileName(name string) FileName {
	c.mu.Lock()
	defer c.mu.Unlock()

	if fn, ok := c.names[name]; ok {
		return fn
	}
	fn := FileName{name: name}
	c.names[name] = fn
	return fn
}

// AllocFileContent interns content, returning the same FileContent value
// for equal strings allocated through this Context.
func (c *Context) AllocFileContent(content string) FileContent {
	c.mu.Lock()
	defer c.mu.Unlock()

	if fc, ok := c.contents[content]; ok {
		return fc
	}
	fc := FileContent{raw: content}
	c.contents[content] = fc
	return fc
}
