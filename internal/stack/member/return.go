package member

import (
	"github.com/funvibe/bytegen/internal/bytecode"
	"github.com/funvibe/bytegen/internal/stack"
	"github.com/funvibe/bytegen/internal/typedesc"
)

type methodReturn struct {
	op   bytecode.Opcode
	size stack.StackSize
}

// Void returns from a void method
var Void stack.Manipulation = methodReturn{op: bytecode.RETURN, size: stack.Zero}

// Return returns a value of type t
func Return(t *typedesc.TypeDescription) stack.Manipulation {
	if !t.IsPrimitive() {
		return methodReturn{op: bytecode.ARETURN, size: stack.Single}
	}
	switch t.Descriptor() {
	case "V":
		return Void
	case "J":
		return methodReturn{op: bytecode.LRETURN, size: stack.Double}
	case "F":
		return methodReturn{op: bytecode.FRETURN, size: stack.Single}
	case "D":
		return methodReturn{op: bytecode.DRETURN, size: stack.Double}
	}
	return methodReturn{op: bytecode.IRETURN, size: stack.Single}
}

func (methodReturn) IsValid() bool { return true }

func (r methodReturn) Apply(e bytecode.Emitter, _ *stack.Context) stack.Size {
	e.VisitInsn(r.op)
	return r.size.ToDecreasingSize()
}

func (r methodReturn) String() string { return r.op.String() }
