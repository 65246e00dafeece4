package generic

import (
	"github.com/funvibe/bytegen/internal/config"
	"github.com/funvibe/bytegen/internal/reflective"
	"github.com/funvibe/bytegen/internal/typedesc"
)

// Array is an array of a variable or parameterized type, T[] or List<T>[]
type Array struct {
	handle *reflective.GenericArrayType
}

func (*Array) sealed() {}

func (*Array) Sort() Sort { return SortArray }

func (a *Array) component() GenericType { return resolve(a.handle.Component) }

func (a *Array) Name() string { return a.component().Name() + config.ArraySymbolSuffix }

func (a *Array) Symbol() string { return nestedSymbol(a.component()) + config.ArraySymbolSuffix }

func (*Array) UpperBounds() List { return Empty }

func (*Array) LowerBounds() List { return Empty }

func (*Array) Parameters() List { return Empty }

func (a *Array) ComponentType() (GenericType, bool) { return a.component(), true }

func (*Array) DeclaringElement() (typedesc.Element, bool) { return nil, false }

// AsRawType is an array, one dimension deeper than the component's erasure
func (a *Array) AsRawType() *typedesc.TypeDescription {
	return typedesc.ArrayOf(a.component().AsRawType(), 1)
}

func (a *Array) String() string { return a.Symbol() }
