package stack

import (
	"fmt"

	"github.com/funvibe/bytegen/internal/bytecode"
)

// Manipulation is one logical code-generation step made of zero or more
// instructions. Implementations are immutable and comparable, so equal
// manipulations can be used as map keys (see Context.Cache).
type Manipulation interface {
	// IsValid reports whether the step can be applied. It never emits.
	IsValid() bool

	// Apply writes the step's instructions and returns its stack effect.
	// Applying an invalid manipulation panics.
	Apply(e bytecode.Emitter, ctx *Context) Size
}

// IllegalApplicationError is the panic value raised when an invalid
// manipulation is applied.
type IllegalApplicationError struct {
	Manipulation Manipulation
}

func (e *IllegalApplicationError) Error() string {
	return fmt.Sprintf("illegal stack manipulation must not be applied: %v", e.Manipulation)
}

type illegal struct{}

// Illegal is the canonical invalid manipulation
var Illegal Manipulation = illegal{}

func (illegal) IsValid() bool { return false }

func (m illegal) Apply(bytecode.Emitter, *Context) Size {
	panic(&IllegalApplicationError{Manipulation: m})
}

func (illegal) String() string { return "Illegal" }

type trivial struct{}

// Trivial is the canonical valid manipulation that emits nothing
var Trivial Manipulation = trivial{}

func (trivial) IsValid() bool { return true }

func (trivial) Apply(bytecode.Emitter, *Context) Size { return ZeroSize }

func (trivial) String() string { return "Trivial" }

// compound is a sequence of manipulations applied in order
type compound struct {
	members []Manipulation
}

// Compound sequences manipulations into one. Nested compounds are
// flattened and trivial members dropped.
func Compound(ms ...Manipulation) Manipulation {
	members := make([]Manipulation, 0, len(ms))
	for _, m := range ms {
		switch mm := m.(type) {
		case *compound:
			members = append(members, mm.members...)
		case trivial:
		default:
			members = append(members, m)
		}
	}
	switch len(members) {
	case 0:
		return Trivial
	case 1:
		return members[0]
	}
	return &compound{members: members}
}

func (c *compound) IsValid() bool {
	for _, m := range c.members {
		if !m.IsValid() {
			return false
		}
	}
	return true
}

func (c *compound) Apply(e bytecode.Emitter, ctx *Context) Size {
	// Validate first so an invalid compound never emits a prefix
	if !c.IsValid() {
		panic(&IllegalApplicationError{Manipulation: c})
	}
	size := ZeroSize
	for _, m := range c.members {
		size = size.Aggregate(m.Apply(e, ctx))
	}
	return size
}

// Members returns the flattened steps of the compound
func (c *compound) Members() []Manipulation {
	return append([]Manipulation(nil), c.members...)
}

func (c *compound) String() string {
	return fmt.Sprintf("Compound%v", c.members)
}
