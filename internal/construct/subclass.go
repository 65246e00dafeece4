package construct

import (
	"github.com/funvibe/bytegen/internal/bytecode"
	"github.com/funvibe/bytegen/internal/stack"
	"github.com/funvibe/bytegen/internal/typedesc"
)

// Constructor is a planned constructor with its body
type Constructor struct {
	Method *typedesc.MethodDescription
	Body   stack.Manipulation
}

// Subclass describes a new class name extending super with the
// constructors s declares.
func Subclass(name string, super *typedesc.TypeDescription, s Strategy) (*typedesc.TypeDescription, []Constructor) {
	t := typedesc.NewClass(name).Link(super)
	var ctors []Constructor
	for _, m := range s.Constructors(t) {
		t.AddMethod(m)
		ctors = append(ctors, Constructor{Method: m, Body: s.Body(m)})
	}
	return t, ctors
}

// Implementation is the emitted code of one constructor
type Implementation struct {
	Code      *bytecode.Recorder
	MaxStack  int
	MaxLocals int
}

// Implement applies the body of c. ok is false when the body is invalid.
func Implement(c Constructor, ctx *stack.Context) (Implementation, bool) {
	if !c.Body.IsValid() {
		return Implementation{}, false
	}
	rec := bytecode.NewRecorder()
	size := c.Body.Apply(rec, ctx)
	return Implementation{Code: rec, MaxStack: size.Maximal, MaxLocals: c.Method.StackSize()}, true
}
