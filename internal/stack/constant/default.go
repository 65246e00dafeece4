package constant

import (
	"github.com/funvibe/bytegen/internal/bytecode"
	"github.com/funvibe/bytegen/internal/stack"
	"github.com/funvibe/bytegen/internal/typedesc"
)

// DefaultValue pushes the zero value of t: 0 for numeric primitives,
// false for boolean, null for references and nothing for void.
func DefaultValue(t *typedesc.TypeDescription) stack.Manipulation {
	if !t.IsPrimitive() {
		return Null
	}
	switch t.Descriptor() {
	case "V":
		return stack.Trivial
	case "J":
		return LongZero
	case "F":
		return FloatZero
	case "D":
		return DoubleZero
	}
	return IntegerZero
}

// cached reads a value that the type initializer computes once
type cached struct {
	m          stack.Manipulation
	descriptor string
	size       stack.StackSize
}

// Cached loads the result of m from a synthetic static field of the
// instrumented type. The field is registered with the context on first
// application; equal manipulations share a field.
func Cached(m stack.Manipulation, t *typedesc.TypeDescription) stack.Manipulation {
	return cached{m: m, descriptor: t.Descriptor(), size: t.StackSize()}
}

func (c cached) IsValid() bool { return c.m.IsValid() && c.size != stack.Zero }

func (c cached) Apply(e bytecode.Emitter, ctx *stack.Context) stack.Size {
	if !c.IsValid() {
		panic(&stack.IllegalApplicationError{Manipulation: c})
	}
	field := ctx.Cache(c.m, c.descriptor)
	e.VisitFieldInsn(bytecode.GETSTATIC, ctx.InstrumentedType, field.Name, field.Descriptor)
	return c.size.ToIncreasingSize()
}
