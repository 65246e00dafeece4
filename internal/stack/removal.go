package stack

import "github.com/funvibe/bytegen/internal/bytecode"

// slotOp is a single stack instruction with a fixed effect
type slotOp struct {
	op   bytecode.Opcode
	size Size
}

func (s slotOp) IsValid() bool { return true }

func (s slotOp) Apply(e bytecode.Emitter, _ *Context) Size {
	e.VisitInsn(s.op)
	return s.size
}

func (s slotOp) String() string { return s.op.String() }

// Removal pops a value of the given size
func Removal(size StackSize) Manipulation {
	switch size {
	case Zero:
		return Trivial
	case Single:
		return slotOp{op: bytecode.POP, size: Single.ToDecreasingSize()}
	case Double:
		return slotOp{op: bytecode.POP2, size: Double.ToDecreasingSize()}
	}
	return Illegal
}

// Duplication duplicates the top value of the given size
func Duplication(size StackSize) Manipulation {
	switch size {
	case Zero:
		return Trivial
	case Single:
		return slotOp{op: bytecode.DUP, size: Single.ToIncreasingSize()}
	case Double:
		return slotOp{op: bytecode.DUP2, size: Double.ToIncreasingSize()}
	}
	return Illegal
}
