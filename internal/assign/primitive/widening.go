// Package primitive converts between primitive values and between
// primitives and their wrapper classes.
package primitive

import (
	"github.com/funvibe/bytegen/internal/bytecode"
	"github.com/funvibe/bytegen/internal/stack"
	"github.com/funvibe/bytegen/internal/typedesc"
)

type widening struct {
	op   bytecode.Opcode
	size stack.Size
}

func (widening) IsValid() bool { return true }

func (w widening) Apply(e bytecode.Emitter, _ *stack.Context) stack.Size {
	e.VisitInsn(w.op)
	return w.size
}

func (w widening) String() string { return w.op.String() }

var (
	intToLong     = widening{op: bytecode.I2L, size: stack.Single.ToIncreasingSize()}
	intToFloat    = widening{op: bytecode.I2F, size: stack.ZeroSize}
	intToDouble   = widening{op: bytecode.I2D, size: stack.Single.ToIncreasingSize()}
	longToFloat   = widening{op: bytecode.L2F, size: stack.Single.ToDecreasingSize()}
	longToDouble  = widening{op: bytecode.L2D, size: stack.ZeroSize}
	floatToDouble = widening{op: bytecode.F2D, size: stack.Single.ToIncreasingSize()}
)

// widenings lists the legal widening conversions by source and target
// descriptor. byte, short and char are ints on the stack already.
var widenings = map[string]map[string]stack.Manipulation{
	"Z": {},
	"B": {"S": stack.Trivial, "I": stack.Trivial, "J": intToLong, "F": intToFloat, "D": intToDouble},
	"S": {"I": stack.Trivial, "J": intToLong, "F": intToFloat, "D": intToDouble},
	"C": {"I": stack.Trivial, "J": intToLong, "F": intToFloat, "D": intToDouble},
	"I": {"J": intToLong, "F": intToFloat, "D": intToDouble},
	"J": {"F": longToFloat, "D": longToDouble},
	"F": {"D": floatToDouble},
	"D": {},
}

// Widen converts primitive source to primitive target. Identity is
// trivial; narrowing and anything involving boolean or void is illegal.
func Widen(source, target *typedesc.TypeDescription) stack.Manipulation {
	if !source.IsPrimitive() || !target.IsPrimitive() {
		return stack.Illegal
	}
	targets, ok := widenings[source.Descriptor()]
	if !ok {
		return stack.Illegal
	}
	if source.Equal(target) {
		return stack.Trivial
	}
	if m, ok := targets[target.Descriptor()]; ok {
		return m
	}
	return stack.Illegal
}
