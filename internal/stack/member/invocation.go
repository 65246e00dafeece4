// Package member holds stack manipulations that touch members of a type:
// method invocations, local variable access and returns.
package member

import (
	"fmt"

	"github.com/funvibe/bytegen/internal/bytecode"
	"github.com/funvibe/bytegen/internal/stack"
	"github.com/funvibe/bytegen/internal/typedesc"
)

type invocation struct {
	op     bytecode.Opcode
	owner  string
	itf    bool
	method *typedesc.MethodDescription
}

// Invoke calls m with the instruction its kind requires: invokestatic for
// static methods, invokespecial for constructors and private methods,
// invokeinterface for interface methods and invokevirtual otherwise.
func Invoke(m *typedesc.MethodDescription) stack.Manipulation {
	owner := m.DeclaringType()
	i := invocation{op: bytecode.INVOKEVIRTUAL, owner: owner.InternalName(), itf: owner.IsInterface(), method: m}
	switch {
	case m.IsStatic():
		i.op = bytecode.INVOKESTATIC
	case m.IsConstructor() || m.IsPrivate():
		i.op = bytecode.INVOKESPECIAL
	case owner.IsInterface():
		i.op = bytecode.INVOKEINTERFACE
	}
	return i
}

// InvokeSpecial calls m non-virtually on behalf of target, as in a super
// call. Static methods and methods target cannot see are illegal.
func InvokeSpecial(m *typedesc.MethodDescription, target *typedesc.TypeDescription) stack.Manipulation {
	if m.IsStatic() || !m.IsVisibleTo(target) {
		return stack.Illegal
	}
	owner := m.DeclaringType()
	return invocation{op: bytecode.INVOKESPECIAL, owner: owner.InternalName(), itf: owner.IsInterface(), method: m}
}

// InvokeVirtualOn calls m on a receiver of the given type, which must be a
// subtype of the declaring type.
func InvokeVirtualOn(m *typedesc.MethodDescription, receiver *typedesc.TypeDescription) stack.Manipulation {
	if m.IsStatic() || m.IsConstructor() || m.IsPrivate() || receiver.IsPrimitive() || !receiver.IsAssignableTo(m.DeclaringType()) {
		return stack.Illegal
	}
	op := bytecode.INVOKEVIRTUAL
	if receiver.IsInterface() {
		op = bytecode.INVOKEINTERFACE
	}
	return invocation{op: op, owner: receiver.InternalName(), itf: receiver.IsInterface(), method: m}
}

func (invocation) IsValid() bool { return true }

// Apply pops the receiver and arguments and pushes the return value
func (i invocation) Apply(e bytecode.Emitter, _ *stack.Context) stack.Size {
	e.VisitMethodInsn(i.op, i.owner, i.method.Name(), i.method.Descriptor(), i.itf)
	impact := i.method.ReturnType().StackSize().Size() - i.method.StackSize()
	return stack.Size{Impact: impact, Maximal: max(impact, 0)}
}

func (i invocation) String() string {
	return fmt.Sprintf("%s %s.%s%s", i.op, i.owner, i.method.Name(), i.method.Descriptor())
}
