// Package stack models code-generation steps that know their own validity
// and their exact effect on the operand stack, so that a method body can be
// sequenced and its maximum stack depth computed before anything is
// written out.
package stack

import "fmt"

// StackSize is the number of operand stack slots a single value occupies.
type StackSize int

const (
	Zero   StackSize = 0 // void
	Single StackSize = 1 // references and all primitives but long/double
	Double StackSize = 2 // long and double
)

// Size returns the number of slots
func (s StackSize) Size() int {
	return int(s)
}

// ToIncreasingSize describes pushing a value of this size
func (s StackSize) ToIncreasingSize() Size {
	return Size{Impact: int(s), Maximal: int(s)}
}

// ToDecreasingSize describes popping a value of this size
func (s StackSize) ToDecreasingSize() Size {
	return Size{Impact: -int(s), Maximal: 0}
}

// Maximum returns the larger of two stack sizes
func (s StackSize) Maximum(other StackSize) StackSize {
	if other > s {
		return other
	}
	return s
}

func (s StackSize) String() string {
	switch s {
	case Zero:
		return "ZERO"
	case Single:
		return "SINGLE"
	case Double:
		return "DOUBLE"
	default:
		return fmt.Sprintf("StackSize(%d)", int(s))
	}
}

// Size is the effect of a manipulation on the operand stack: Impact is the
// net change in height, Maximal the highest point reached relative to the
// height on entry.
type Size struct {
	Impact  int
	Maximal int
}

// ZeroSize is the size of a manipulation that does not touch the stack
var ZeroSize = Size{}

// Aggregate returns the size of executing s followed by other
func (s Size) Aggregate(other Size) Size {
	return Size{
		Impact:  s.Impact + other.Impact,
		Maximal: max(s.Maximal, s.Impact+other.Maximal),
	}
}

func (s Size) String() string {
	return fmt.Sprintf("Size{impact=%d, maximal=%d}", s.Impact, s.Maximal)
}
