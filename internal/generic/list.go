package generic

import (
	"github.com/funvibe/bytegen/internal/reflective"
	"github.com/funvibe/bytegen/internal/typedesc"
)

// List is an ordered, immutable list of generic types
type List interface {
	// Get returns the element at i and panics when out of range
	Get(i int) GenericType
	Size() int

	// Filter keeps the elements matching pred, in order, in a list of
	// the same kind
	Filter(pred func(GenericType) bool) List

	// RawTypes erases every element
	RawTypes() typedesc.TypeList

	// StackSize sums the stack sizes of the erased elements
	StackSize() int

	// InternalNames lists the internal names of the erased elements
	InternalNames() []string

	// Slice copies the elements out
	Slice() []GenericType
}

type emptyList struct{}

// Empty is the list without elements
var Empty List = emptyList{}

func (emptyList) Get(i int) GenericType {
	panic(indexError(i, 0))
}

func (emptyList) Size() int                          { return 0 }
func (emptyList) Filter(func(GenericType) bool) List { return Empty }
func (emptyList) RawTypes() typedesc.TypeList        { return typedesc.TypeList{} }
func (emptyList) StackSize() int                     { return 0 }
func (emptyList) InternalNames() []string            { return []string{} }
func (emptyList) Slice() []GenericType               { return nil }

// explicitList holds already resolved types
type explicitList []GenericType

// NewExplicit creates a list of the given types
func NewExplicit(types ...GenericType) List {
	if len(types) == 0 {
		return Empty
	}
	return explicitList(append([]GenericType(nil), types...))
}

func (l explicitList) Get(i int) GenericType {
	if i < 0 || i >= len(l) {
		panic(indexError(i, len(l)))
	}
	return l[i]
}

func (l explicitList) Size() int { return len(l) }

func (l explicitList) Filter(pred func(GenericType) bool) List {
	return filter(l, pred)
}

func (l explicitList) RawTypes() typedesc.TypeList { return rawTypes(l) }
func (l explicitList) StackSize() int              { return rawTypes(l).StackSize() }
func (l explicitList) InternalNames() []string     { return rawTypes(l).InternalNames() }
func (l explicitList) Slice() []GenericType        { return append([]GenericType(nil), l...) }

// loadedList resolves validated reflective handles on access
type loadedList []reflective.Type

// NewLoaded creates a list backed by reflective handles. Every handle is
// validated now; elements are resolved when they are read.
func NewLoaded(handles ...reflective.Type) (List, error) {
	for _, h := range handles {
		if _, err := Resolve(h); err != nil {
			return nil, err
		}
	}
	if len(handles) == 0 {
		return Empty, nil
	}
	return loadedList(append([]reflective.Type(nil), handles...)), nil
}

func (l loadedList) Get(i int) GenericType {
	if i < 0 || i >= len(l) {
		panic(indexError(i, len(l)))
	}
	return resolve(l[i])
}

func (l loadedList) Size() int { return len(l) }

// Filter keeps the handles of the matching elements, so the result stays
// a loaded list.
func (l loadedList) Filter(pred func(GenericType) bool) List {
	var kept loadedList
	for i, h := range l {
		if pred(l.Get(i)) {
			kept = append(kept, h)
		}
	}
	if len(kept) == 0 {
		return Empty
	}
	return kept
}

func (l loadedList) RawTypes() typedesc.TypeList { return rawTypes(l) }
func (l loadedList) StackSize() int              { return rawTypes(l).StackSize() }
func (l loadedList) InternalNames() []string     { return rawTypes(l).InternalNames() }

func (l loadedList) Slice() []GenericType {
	out := make([]GenericType, len(l))
	for i := range l {
		out[i] = l.Get(i)
	}
	return out
}

func filter(l List, pred func(GenericType) bool) List {
	var kept []GenericType
	for i := 0; i < l.Size(); i++ {
		if t := l.Get(i); pred(t) {
			kept = append(kept, t)
		}
	}
	return NewExplicit(kept...)
}

func rawTypes(l List) typedesc.TypeList {
	out := make(typedesc.TypeList, l.Size())
	for i := range out {
		out[i] = l.Get(i).AsRawType()
	}
	return out
}
