// Package assign decides how a value of one raw type becomes a value of
// another. The answer is always a stack manipulation; a conversion that
// does not exist is an invalid manipulation, never an error.
package assign

import (
	"github.com/funvibe/bytegen/internal/stack"
	"github.com/funvibe/bytegen/internal/stack/constant"
	"github.com/funvibe/bytegen/internal/typedesc"
)

// Assigner converts a value of source on top of the stack into target.
// With implicit set, conversions that can fail at run time (downcasts,
// unboxing of non-wrapper references) are allowed.
type Assigner interface {
	Assign(source, target *typedesc.TypeDescription, implicit bool) stack.Manipulation
}

// AssignerFunc adapts a function to Assigner
type AssignerFunc func(source, target *typedesc.TypeDescription, implicit bool) stack.Manipulation

func (f AssignerFunc) Assign(source, target *typedesc.TypeDescription, implicit bool) stack.Manipulation {
	return f(source, target, implicit)
}

type voidAware struct {
	delegate Assigner
}

// VoidAware handles void on either side and leaves everything else to
// delegate. A void result is dropped; assigning from void pushes the
// target's default value, and only implicitly.
func VoidAware(delegate Assigner) Assigner {
	return voidAware{delegate: delegate}
}

func (a voidAware) Assign(source, target *typedesc.TypeDescription, implicit bool) stack.Manipulation {
	switch {
	case source.IsVoid() && target.IsVoid():
		return stack.Trivial
	case source.IsVoid():
		if implicit {
			return constant.DefaultValue(target)
		}
		return stack.Illegal
	case target.IsVoid():
		return stack.Removal(source.StackSize())
	}
	return a.delegate.Assign(source, target, implicit)
}
