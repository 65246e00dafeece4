package assign

import (
	"github.com/funvibe/bytegen/internal/bytecode"
	"github.com/funvibe/bytegen/internal/stack"
	"github.com/funvibe/bytegen/internal/typedesc"
)

type typeCasting struct {
	internalName string
}

// TypeCasting checks that the reference on top of the stack is a target.
// Primitives cannot be cast this way.
func TypeCasting(target *typedesc.TypeDescription) stack.Manipulation {
	if target.IsPrimitive() {
		return stack.Illegal
	}
	return typeCasting{internalName: target.InternalName()}
}

func (typeCasting) IsValid() bool { return true }

func (c typeCasting) Apply(e bytecode.Emitter, _ *stack.Context) stack.Size {
	e.VisitTypeInsn(bytecode.CHECKCAST, c.internalName)
	return stack.ZeroSize
}

func (c typeCasting) String() string { return "CHECKCAST " + c.internalName }
