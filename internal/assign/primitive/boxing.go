package primitive

import (
	"github.com/funvibe/bytegen/internal/assign"
	"github.com/funvibe/bytegen/internal/config"
	"github.com/funvibe/bytegen/internal/stack"
	"github.com/funvibe/bytegen/internal/stack/member"
	"github.com/funvibe/bytegen/internal/typedesc"
)

// BoxingDelegate turns a primitive on top of the stack into a reference
type BoxingDelegate struct {
	primitive *typedesc.TypeDescription
	wrapper   *typedesc.TypeDescription
}

// ForPrimitive returns the boxing delegate of p. ok is false for void and
// reference types.
func ForPrimitive(p *typedesc.TypeDescription) (BoxingDelegate, bool) {
	if !p.IsPrimitive() || p.IsVoid() {
		return BoxingDelegate{}, false
	}
	w, _ := typedesc.WrapperOf(p)
	return BoxingDelegate{primitive: p, wrapper: w}, true
}

// Wrapper is the class values are boxed into
func (b BoxingDelegate) Wrapper() *typedesc.TypeDescription {
	return b.wrapper
}

// AssignBoxedTo boxes with Wrapper.valueOf and lets chained bridge the
// wrapper to target.
func (b BoxingDelegate) AssignBoxedTo(target *typedesc.TypeDescription, chained assign.Assigner, implicit bool) stack.Manipulation {
	valueOf, ok := b.wrapper.FindMethod(config.ValueOfMethodName, "("+b.primitive.Descriptor()+")"+b.wrapper.Descriptor())
	if !ok {
		return stack.Illegal
	}
	return stack.Compound(member.Invoke(valueOf), chained.Assign(b.wrapper, target, implicit))
}
