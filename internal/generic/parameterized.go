package generic

import (
	"strings"

	"github.com/funvibe/bytegen/internal/config"
	"github.com/funvibe/bytegen/internal/reflective"
	"github.com/funvibe/bytegen/internal/typedesc"
)

// Parameterized is a generic class applied to arguments, List<String>
type Parameterized struct {
	handle *reflective.ParameterizedType
}

func (*Parameterized) sealed() {}

func (*Parameterized) Sort() Sort { return SortParameterized }

func (p *Parameterized) Name() string { return p.handle.TypeName() }

// Symbol renders "java.util.Map<K, java.util.List<? extends V>>"
func (p *Parameterized) Symbol() string {
	var sb strings.Builder
	if owner, ok := p.OwnerType(); ok {
		sb.WriteString(nestedSymbol(owner))
		sb.WriteByte('$')
		name := p.handle.Raw.Name()
		sb.WriteString(name[strings.LastIndexByte(name, '$')+1:])
	} else {
		sb.WriteString(p.handle.Raw.Name())
	}
	if len(p.handle.Arguments) > 0 {
		sb.WriteByte('<')
		sb.WriteString(joinSymbols(p.Parameters(), config.ParameterSeparator))
		sb.WriteByte('>')
	}
	return sb.String()
}

func (*Parameterized) UpperBounds() List { return Empty }

func (*Parameterized) LowerBounds() List { return Empty }

// Parameters are the actual type arguments in declaration order
func (p *Parameterized) Parameters() List {
	return loadedList(p.handle.Arguments)
}

// OwnerType is the enclosing type of an inner class, Outer<T>.Inner<U>
func (p *Parameterized) OwnerType() (GenericType, bool) {
	if p.handle.Owner == nil {
		return nil, false
	}
	return resolve(p.handle.Owner), true
}

func (*Parameterized) ComponentType() (GenericType, bool) { return nil, false }

func (*Parameterized) DeclaringElement() (typedesc.Element, bool) { return nil, false }

func (p *Parameterized) AsRawType() *typedesc.TypeDescription { return p.handle.Raw }

func (p *Parameterized) String() string { return p.Symbol() }
