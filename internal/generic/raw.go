package generic

import "github.com/funvibe/bytegen/internal/typedesc"

// Raw is a non-generic type: a primitive, a plain class or an array of
// either.
type Raw struct {
	t *typedesc.TypeDescription
}

// RawOf wraps a raw type description
func RawOf(t *typedesc.TypeDescription) Raw {
	return Raw{t: t}
}

func (Raw) sealed() {}

func (Raw) Sort() Sort { return SortRaw }

func (r Raw) Name() string { return r.t.Name() }

func (r Raw) Symbol() string { return r.t.Name() }

// UpperBounds of a raw type is the type itself
func (r Raw) UpperBounds() List { return NewExplicit(r) }

func (Raw) LowerBounds() List { return Empty }

func (Raw) Parameters() List { return Empty }

func (r Raw) ComponentType() (GenericType, bool) {
	c, ok := r.t.ComponentType()
	if !ok {
		return nil, false
	}
	return Raw{t: c}, true
}

func (r Raw) DeclaringElement() (typedesc.Element, bool) {
	outer, ok := r.t.DeclaringType()
	if !ok {
		return nil, false
	}
	return outer, true
}

func (r Raw) AsRawType() *typedesc.TypeDescription { return r.t }

func (r Raw) String() string { return r.Symbol() }
