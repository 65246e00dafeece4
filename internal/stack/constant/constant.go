// Package constant holds the stack manipulations that push one constant:
// class references, numbers, strings, null and per-type default values.
// Small numbers map to canonical singletons with dedicated instructions;
// anything else is a pooled constant compared by its literal value.
package constant

import (
	"fmt"
	"math"

	"github.com/funvibe/bytegen/internal/bytecode"
	"github.com/funvibe/bytegen/internal/stack"
)

// insn pushes a constant with an operand-free instruction
type insn struct {
	op   bytecode.Opcode
	size stack.StackSize
}

func (insn) IsValid() bool { return true }

func (c insn) Apply(e bytecode.Emitter, _ *stack.Context) stack.Size {
	e.VisitInsn(c.op)
	return c.size.ToIncreasingSize()
}

func (c insn) String() string { return c.op.String() }

// push is BIPUSH or SIPUSH with an immediate operand
type push struct {
	op    bytecode.Opcode
	value int32
}

func (push) IsValid() bool { return true }

func (c push) Apply(e bytecode.Emitter, _ *stack.Context) stack.Size {
	e.VisitIntInsn(c.op, int(c.value))
	return stack.Single.ToIncreasingSize()
}

func (c push) String() string { return fmt.Sprintf("%s %d", c.op, c.value) }

// pooled loads a literal from the constant pool. value is one of int32,
// int64, string, floatBits or doubleBits, so two pooled constants are
// equal exactly when their literals are, NaN included.
type pooled struct {
	value any
	size  stack.StackSize
}

// floatBits and doubleBits hold floating point literals by bit pattern
type (
	floatBits  uint32
	doubleBits uint64
)

// literal returns the value handed to the emitter
func (c pooled) literal() any {
	switch b := c.value.(type) {
	case floatBits:
		return math.Float32frombits(uint32(b))
	case doubleBits:
		return math.Float64frombits(uint64(b))
	}
	return c.value
}

func (pooled) IsValid() bool { return true }

func (c pooled) Apply(e bytecode.Emitter, _ *stack.Context) stack.Size {
	e.VisitLdcInsn(c.literal())
	return c.size.ToIncreasingSize()
}

func (c pooled) String() string { return fmt.Sprintf("LDC %#v", c.literal()) }

// Null pushes the null reference
var Null stack.Manipulation = insn{op: bytecode.ACONST_NULL, size: stack.Single}

// Text pushes a string constant
func Text(s string) stack.Manipulation {
	return pooled{value: s, size: stack.Single}
}
