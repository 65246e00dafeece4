package constant

import (
	"math"

	"github.com/funvibe/bytegen/internal/bytecode"
	"github.com/funvibe/bytegen/internal/stack"
)

// Canonical small constants
var (
	IntegerMinusOne stack.Manipulation = insn{op: bytecode.ICONST_M1, size: stack.Single}
	IntegerZero     stack.Manipulation = insn{op: bytecode.ICONST_0, size: stack.Single}
	IntegerOne      stack.Manipulation = insn{op: bytecode.ICONST_1, size: stack.Single}
	IntegerTwo      stack.Manipulation = insn{op: bytecode.ICONST_2, size: stack.Single}
	IntegerThree    stack.Manipulation = insn{op: bytecode.ICONST_3, size: stack.Single}
	IntegerFour     stack.Manipulation = insn{op: bytecode.ICONST_4, size: stack.Single}
	IntegerFive     stack.Manipulation = insn{op: bytecode.ICONST_5, size: stack.Single}

	LongZero stack.Manipulation = insn{op: bytecode.LCONST_0, size: stack.Double}
	LongOne  stack.Manipulation = insn{op: bytecode.LCONST_1, size: stack.Double}

	FloatZero stack.Manipulation = insn{op: bytecode.FCONST_0, size: stack.Single}
	FloatOne  stack.Manipulation = insn{op: bytecode.FCONST_1, size: stack.Single}
	FloatTwo  stack.Manipulation = insn{op: bytecode.FCONST_2, size: stack.Single}

	DoubleZero stack.Manipulation = insn{op: bytecode.DCONST_0, size: stack.Double}
	DoubleOne  stack.Manipulation = insn{op: bytecode.DCONST_1, size: stack.Double}
)

var smallIntegers = [...]stack.Manipulation{
	IntegerMinusOne, IntegerZero, IntegerOne, IntegerTwo, IntegerThree, IntegerFour, IntegerFive,
}

// Integer pushes an int (also used for boolean, byte, short and char)
func Integer(v int32) stack.Manipulation {
	switch {
	case v >= -1 && v <= 5:
		return smallIntegers[v+1]
	case v >= math.MinInt8 && v <= math.MaxInt8:
		return push{op: bytecode.BIPUSH, value: v}
	case v >= math.MinInt16 && v <= math.MaxInt16:
		return push{op: bytecode.SIPUSH, value: v}
	}
	return pooled{value: v, size: stack.Single}
}

// Boolean pushes 1 for true and 0 for false
func Boolean(v bool) stack.Manipulation {
	if v {
		return IntegerOne
	}
	return IntegerZero
}

// Long pushes a long
func Long(v int64) stack.Manipulation {
	switch v {
	case 0:
		return LongZero
	case 1:
		return LongOne
	}
	return pooled{value: v, size: stack.Double}
}

// Canonical NaN bit patterns; every NaN literal is pooled as one of these
const (
	canonicalFloatNaN  = 0x7fc00000
	canonicalDoubleNaN = 0x7ff8000000000000
)

// Float pushes a float. Negative zero is not 0.0 and goes to the pool.
func Float(v float32) stack.Manipulation {
	switch {
	case math.Float32bits(v) == 0:
		return FloatZero
	case v == 1:
		return FloatOne
	case v == 2:
		return FloatTwo
	case math.IsNaN(float64(v)):
		return pooled{value: floatBits(canonicalFloatNaN), size: stack.Single}
	}
	return pooled{value: floatBits(math.Float32bits(v)), size: stack.Single}
}

// Double pushes a double. Negative zero goes to the pool.
func Double(v float64) stack.Manipulation {
	switch {
	case math.Float64bits(v) == 0:
		return DoubleZero
	case v == 1:
		return DoubleOne
	case math.IsNaN(v):
		return pooled{value: doubleBits(canonicalDoubleNaN), size: stack.Double}
	}
	return pooled{value: doubleBits(math.Float64bits(v)), size: stack.Double}
}
