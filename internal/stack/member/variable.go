package member

import (
	"fmt"

	"github.com/funvibe/bytegen/internal/bytecode"
	"github.com/funvibe/bytegen/internal/stack"
	"github.com/funvibe/bytegen/internal/typedesc"
)

// Opcodes indexed by value category
type variableOps struct {
	load, store bytecode.Opcode
}

var (
	intOps       = variableOps{bytecode.ILOAD, bytecode.ISTORE}
	longOps      = variableOps{bytecode.LLOAD, bytecode.LSTORE}
	floatOps     = variableOps{bytecode.FLOAD, bytecode.FSTORE}
	doubleOps    = variableOps{bytecode.DLOAD, bytecode.DSTORE}
	referenceOps = variableOps{bytecode.ALOAD, bytecode.ASTORE}
)

func opsOf(t *typedesc.TypeDescription) (variableOps, bool) {
	if !t.IsPrimitive() {
		return referenceOps, true
	}
	switch t.Descriptor() {
	case "V":
		return variableOps{}, false
	case "J":
		return longOps, true
	case "F":
		return floatOps, true
	case "D":
		return doubleOps, true
	}
	return intOps, true
}

type variableAccess struct {
	op   bytecode.Opcode
	slot int
	size stack.Size
}

func (variableAccess) IsValid() bool { return true }

func (v variableAccess) Apply(e bytecode.Emitter, _ *stack.Context) stack.Size {
	e.VisitVarInsn(v.op, v.slot)
	return v.size
}

func (v variableAccess) String() string { return fmt.Sprintf("%s %d", v.op, v.slot) }

// Load reads the local variable of type t at slot
func Load(t *typedesc.TypeDescription, slot int) stack.Manipulation {
	ops, ok := opsOf(t)
	if !ok || slot < 0 {
		return stack.Illegal
	}
	return variableAccess{op: ops.load, slot: slot, size: t.StackSize().ToIncreasingSize()}
}

// Store writes the top of the stack to the local variable at slot
func Store(t *typedesc.TypeDescription, slot int) stack.Manipulation {
	ops, ok := opsOf(t)
	if !ok || slot < 0 {
		return stack.Illegal
	}
	return variableAccess{op: ops.store, slot: slot, size: t.StackSize().ToDecreasingSize()}
}

// LoadThis pushes the receiver of an instance method
func LoadThis() stack.Manipulation {
	return variableAccess{op: bytecode.ALOAD, slot: 0, size: stack.Single.ToIncreasingSize()}
}

// LoadArguments pushes every parameter of m in order. Slots start after
// the receiver of instance methods; long and double take two.
func LoadArguments(m *typedesc.MethodDescription) stack.Manipulation {
	slot := 0
	if !m.IsStatic() {
		slot = 1
	}
	loads := make([]stack.Manipulation, 0, len(m.Parameters()))
	for _, p := range m.Parameters() {
		loads = append(loads, Load(p, slot))
		slot += p.StackSize().Size()
	}
	return stack.Compound(loads...)
}
