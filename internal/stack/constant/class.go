package constant

import (
	"github.com/funvibe/bytegen/internal/bytecode"
	"github.com/funvibe/bytegen/internal/config"
	"github.com/funvibe/bytegen/internal/stack"
	"github.com/funvibe/bytegen/internal/typedesc"
)

// class pushes the java.lang.Class of a type. Fields are strings so that
// constants for equal types compare equal.
type class struct {
	descriptor string
	name       string

	// wrapper is set for primitives, whose class lives in Wrapper.TYPE
	wrapper string
}

// Class pushes a reference to the class object of t. Primitive classes are
// read from their wrapper's TYPE field; reference types use a class
// constant, or Class.forName on class files that predate class constants.
func Class(t *typedesc.TypeDescription) stack.Manipulation {
	c := class{descriptor: t.Descriptor(), name: t.Name()}
	if t.IsPrimitive() {
		w, _ := typedesc.WrapperOf(t)
		c.wrapper = w.InternalName()
	}
	return c
}

func (class) IsValid() bool { return true }

func (c class) Apply(e bytecode.Emitter, ctx *stack.Context) stack.Size {
	switch {
	case c.wrapper != "":
		e.VisitFieldInsn(bytecode.GETSTATIC, c.wrapper, config.PrimitiveTypeField, config.ClassDescriptor)
	case ctx == nil || ctx.Version.SupportsClassConstants():
		e.VisitLdcInsn(bytecode.TypeRef{Descriptor: c.descriptor})
	default:
		e.VisitLdcInsn(forName(c))
		e.VisitMethodInsn(bytecode.INVOKESTATIC, config.ClassInternalName, config.ForNameMethodName, config.ForNameDescriptor, false)
	}
	return stack.Single.ToIncreasingSize()
}

func (c class) String() string { return "Class " + c.name }

// forName returns the name Class.forName expects: binary names for
// classes and descriptors with dots for arrays.
func forName(c class) string {
	if c.descriptor[0] == '[' {
		b := []byte(c.descriptor)
		for i := range b {
			if b[i] == '/' {
				b[i] = '.'
			}
		}
		return string(b)
	}
	return c.name
}
