// Package reference assigns between reference types.
package reference

import (
	"github.com/funvibe/bytegen/internal/assign"
	"github.com/funvibe/bytegen/internal/stack"
	"github.com/funvibe/bytegen/internal/typedesc"
)

type referenceAware struct{}

// Assigner widens references for free and downcasts with a checkcast when
// the assignment is implicit. Primitives only assign to themselves.
var Assigner assign.Assigner = referenceAware{}

func (referenceAware) Assign(source, target *typedesc.TypeDescription, implicit bool) stack.Manipulation {
	if source.IsPrimitive() || target.IsPrimitive() {
		if source.Equal(target) {
			return stack.Trivial
		}
		return stack.Illegal
	}
	if source.IsAssignableTo(target) {
		return stack.Trivial
	}
	if implicit {
		return assign.TypeCasting(target)
	}
	return stack.Illegal
}
