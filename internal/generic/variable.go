package generic

import (
	"strings"

	"github.com/funvibe/bytegen/internal/config"
	"github.com/funvibe/bytegen/internal/reflective"
	"github.com/funvibe/bytegen/internal/typedesc"
)

// Variable is a type variable such as T. Its erasure is the erasure of its
// first bound.
type Variable struct {
	handle *reflective.TypeVariable
}

func (*Variable) sealed() {}

func (*Variable) Sort() Sort { return SortVariable }

func (v *Variable) Name() string { return v.handle.Name }

// Symbol renders "T" or "T extends Comparable<T> & Serializable". Bounds
// refer to variables by name only, which keeps recursive bounds finite.
func (v *Variable) Symbol() string {
	bounds := v.UpperBounds()
	if bounds.Size() == 1 && bounds.Get(0).AsRawType().Equal(typedesc.Object) {
		return v.handle.Name
	}
	return v.handle.Name + " " + config.ExtendsSymbol + " " + joinSymbols(bounds, config.BoundSeparator)
}

// UpperBounds are the declared bounds, java.lang.Object when none are.
func (v *Variable) UpperBounds() List {
	if len(v.handle.Bounds) == 0 {
		return NewExplicit(Raw{t: typedesc.Object})
	}
	return loadedList(v.handle.Bounds)
}

func (*Variable) LowerBounds() List { return Empty }

func (*Variable) Parameters() List { return Empty }

func (*Variable) ComponentType() (GenericType, bool) { return nil, false }

// DeclaringElement returns the type, method or constructor description
// that declares v.
func (v *Variable) DeclaringElement() (typedesc.Element, bool) {
	switch d := v.handle.Declaration.(type) {
	case *typedesc.TypeDescription:
		return d, true
	case *reflective.Method:
		return d.Description, true
	case *reflective.Constructor:
		return d.Description, true
	}
	// unreachable for resolved variables
	panic(NewIllegalDeclarationError(v.handle.Name, v.handle.Declaration))
}

func (v *Variable) AsRawType() *typedesc.TypeDescription {
	return v.UpperBounds().Get(0).AsRawType()
}

func (v *Variable) String() string { return v.Symbol() }

// nestedSymbol renders a type as it appears inside another type's symbol
func nestedSymbol(t GenericType) string {
	if v, ok := t.(*Variable); ok {
		return v.Name()
	}
	return t.Symbol()
}

func joinSymbols(l List, sep string) string {
	symbols := make([]string, l.Size())
	for i := range symbols {
		symbols[i] = nestedSymbol(l.Get(i))
	}
	return strings.Join(symbols, sep)
}
