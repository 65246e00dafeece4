package primitive

import (
	"github.com/funvibe/bytegen/internal/assign"
	"github.com/funvibe/bytegen/internal/assign/reference"
	"github.com/funvibe/bytegen/internal/stack"
	"github.com/funvibe/bytegen/internal/typedesc"
)

type primitiveAware struct {
	reference assign.Assigner
}

// NewAssigner handles primitives on either side by widening, boxing or
// unboxing, and leaves reference-to-reference assignments (including the
// reference half of boxing) to ref.
func NewAssigner(ref assign.Assigner) assign.Assigner {
	return primitiveAware{reference: ref}
}

func (a primitiveAware) Assign(source, target *typedesc.TypeDescription, implicit bool) stack.Manipulation {
	switch {
	case source.IsPrimitive() && target.IsPrimitive():
		return Widen(source, target)
	case source.IsPrimitive():
		boxing, ok := ForPrimitive(source)
		if !ok {
			return stack.Illegal
		}
		return boxing.AssignBoxedTo(target, a.reference, implicit)
	case target.IsPrimitive():
		return ForReferenceType(source).AssignUnboxedTo(target, a.reference, implicit)
	}
	return a.reference.Assign(source, target, implicit)
}

// Default is the complete assigner: void handling, then primitives, then
// references.
var Default = assign.VoidAware(NewAssigner(reference.Assigner))
