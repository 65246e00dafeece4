// Package construct decides which constructors a generated subclass gets
// and what their bodies do.
package construct

import (
	"github.com/funvibe/bytegen/internal/stack"
	"github.com/funvibe/bytegen/internal/stack/member"
	"github.com/funvibe/bytegen/internal/typedesc"
)

// Strategy is a constructor policy. Each policy answers both questions
// itself, so a new policy is one new implementation.
type Strategy interface {
	// Name identifies the policy on the command line
	Name() string

	// Constructors lists the constructors to declare on instrumented,
	// a direct subclass of its super class.
	Constructors(instrumented *typedesc.TypeDescription) []*typedesc.MethodDescription

	// Body is the code of a constructor returned by Constructors
	Body(ctor *typedesc.MethodDescription) stack.Manipulation
}

type noConstructors struct{}

// NoConstructors declares no constructor at all
var NoConstructors Strategy = noConstructors{}

func (noConstructors) Name() string { return "none" }

func (noConstructors) Constructors(*typedesc.TypeDescription) []*typedesc.MethodDescription {
	return nil
}

func (noConstructors) Body(*typedesc.MethodDescription) stack.Manipulation {
	return stack.Illegal
}

type imitateSuperType struct{}

// ImitateSuperType mirrors every constructor of the super class that the
// subclass can call, each forwarding its arguments to the super
// constructor.
var ImitateSuperType Strategy = imitateSuperType{}

func (imitateSuperType) Name() string { return "imitate" }

func (imitateSuperType) Constructors(instrumented *typedesc.TypeDescription) []*typedesc.MethodDescription {
	super, ok := instrumented.SuperClass()
	if !ok {
		return nil
	}
	var out []*typedesc.MethodDescription
	for _, c := range super.DeclaredConstructors() {
		if !c.IsVisibleTo(instrumented) {
			continue
		}
		out = append(out, typedesc.NewConstructor(instrumented, c.Parameters()...).WithModifiers(c.Modifiers()))
	}
	return out
}

func (imitateSuperType) Body(ctor *typedesc.MethodDescription) stack.Manipulation {
	instrumented := ctor.DeclaringType()
	super, ok := instrumented.SuperClass()
	if !ok {
		return stack.Illegal
	}
	target, ok := super.FindMethod(ctor.Name(), ctor.Descriptor())
	if !ok || !target.IsConstructor() {
		return stack.Illegal
	}
	return stack.Compound(
		member.LoadThis(),
		member.LoadArguments(ctor),
		member.InvokeSpecial(target, instrumented),
		member.Void,
	)
}

// Strategies lists the known policies
var Strategies = []Strategy{NoConstructors, ImitateSuperType}

// Lookup finds a policy by name
func Lookup(name string) (Strategy, bool) {
	for _, s := range Strategies {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}
