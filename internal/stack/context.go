package stack

import (
	"strings"

	"github.com/google/uuid"

	"github.com/funvibe/bytegen/internal/bytecode"
	"github.com/funvibe/bytegen/internal/config"
)

// CachedField is a synthetic static field on the instrumented type that
// holds the result of Initializer, computed once in the type initializer.
type CachedField struct {
	Name        string
	Descriptor  string
	Initializer Manipulation
}

type cacheKey struct {
	m          Manipulation
	descriptor string
}

// Context accumulates what a method body needs from its enclosing type
// while manipulations are applied. It has a single owner: one code
// generation pass writes to it at a time.
type Context struct {
	// InstrumentedType is the internal name of the type being generated
	InstrumentedType string

	// Version is the class file version code is generated for
	Version bytecode.ClassFileVersion

	cache  map[cacheKey]int
	fields []CachedField
	names  map[string]bool
}

// NewContext creates a context for the given instrumented type
func NewContext(instrumentedType string, version bytecode.ClassFileVersion) *Context {
	return &Context{
		InstrumentedType: instrumentedType,
		Version:          version,
		cache:            make(map[cacheKey]int),
		names:            make(map[string]bool),
	}
}

// Cache registers m to be computed once into a static field of the given
// descriptor and returns that field. Equal manipulations share one field;
// m must therefore be comparable.
func (c *Context) Cache(m Manipulation, descriptor string) CachedField {
	key := cacheKey{m: m, descriptor: descriptor}
	if idx, ok := c.cache[key]; ok {
		return c.fields[idx]
	}
	field := CachedField{
		Name:        c.freshName(),
		Descriptor:  descriptor,
		Initializer: m,
	}
	c.cache[key] = len(c.fields)
	c.fields = append(c.fields, field)
	return field
}

// CachedFields returns the registered fields in registration order
func (c *Context) CachedFields() []CachedField {
	return append([]CachedField(nil), c.fields...)
}

func (c *Context) freshName() string {
	for {
		suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
		name := config.CachedValuePrefix + suffix
		if !c.names[name] {
			c.names[name] = true
			return name
		}
	}
}
