package primitive

import (
	"github.com/funvibe/bytegen/internal/assign"
	"github.com/funvibe/bytegen/internal/stack"
	"github.com/funvibe/bytegen/internal/stack/member"
	"github.com/funvibe/bytegen/internal/typedesc"
)

// UnboxingResponsible turns a reference on top of the stack into a
// primitive.
type UnboxingResponsible interface {
	AssignUnboxedTo(target *typedesc.TypeDescription, chained assign.Assigner, implicit bool) stack.Manipulation
}

// ForReferenceType returns the unboxing strategy for values of t. Wrapper
// classes unbox directly; any other reference is first assigned to the
// wrapper the target primitive expects.
func ForReferenceType(t *typedesc.TypeDescription) UnboxingResponsible {
	if p, ok := typedesc.PrimitiveOf(t); ok {
		return wrapperUnboxing{primitive: p}
	}
	return implicitUnboxing{original: t}
}

// unboxingCall invokes the <primitive>Value accessor of p's wrapper
func unboxingCall(p *typedesc.TypeDescription) stack.Manipulation {
	w, ok := typedesc.WrapperOf(p)
	if !ok {
		return stack.Illegal
	}
	accessor, ok := w.FindMethod(p.Name()+"Value", "()"+p.Descriptor())
	if !ok {
		return stack.Illegal
	}
	return member.Invoke(accessor)
}

type wrapperUnboxing struct {
	primitive *typedesc.TypeDescription
}

// AssignUnboxedTo unboxes and widens to target if needed. The chained
// assigner is not consulted.
func (u wrapperUnboxing) AssignUnboxedTo(target *typedesc.TypeDescription, _ assign.Assigner, _ bool) stack.Manipulation {
	return stack.Compound(unboxingCall(u.primitive), Widen(u.primitive, target))
}

type implicitUnboxing struct {
	original *typedesc.TypeDescription
}

// AssignUnboxedTo assigns the original type to target's wrapper through
// chained, then unboxes. An invalid chained step invalidates the result.
func (u implicitUnboxing) AssignUnboxedTo(target *typedesc.TypeDescription, chained assign.Assigner, implicit bool) stack.Manipulation {
	if !target.IsPrimitive() || target.IsVoid() {
		return stack.Illegal
	}
	wrapper, _ := typedesc.WrapperOf(target)
	return stack.Compound(chained.Assign(u.original, wrapper, implicit), unboxingCall(target))
}
