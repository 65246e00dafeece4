package generic

import (
	"github.com/funvibe/bytegen/internal/config"
	"github.com/funvibe/bytegen/internal/reflective"
	"github.com/funvibe/bytegen/internal/typedesc"
)

// Direction tells which side of a wildcard is bounded
type Direction int

const (
	BoundedAbove Direction = iota // ? extends X
	BoundedBelow                  // ? super X
)

func (d Direction) keyword() string {
	if d == BoundedBelow {
		return config.SuperSymbol
	}
	return config.ExtendsSymbol
}

func (d Direction) String() string {
	return d.keyword()
}

// Wildcard is a wildcard type argument. A wildcard is bounded either above
// or below, never both; the unbounded "?" is bounded above by Object.
type Wildcard struct {
	direction Direction
	bounds    List
}

func wildcardOf(h *reflective.WildcardType) *Wildcard {
	if len(h.LowerBounds) > 0 {
		return &Wildcard{direction: BoundedBelow, bounds: loadedList(h.LowerBounds)}
	}
	if len(h.UpperBounds) == 0 {
		return &Wildcard{direction: BoundedAbove, bounds: NewExplicit(Raw{t: typedesc.Object})}
	}
	return &Wildcard{direction: BoundedAbove, bounds: loadedList(h.UpperBounds)}
}

// NewUpperBoundedWildcard builds "? extends bounds"
func NewUpperBoundedWildcard(bounds ...GenericType) *Wildcard {
	if len(bounds) == 0 {
		bounds = []GenericType{Raw{t: typedesc.Object}}
	}
	return &Wildcard{direction: BoundedAbove, bounds: NewExplicit(bounds...)}
}

// NewLowerBoundedWildcard builds "? super bounds"
func NewLowerBoundedWildcard(bounds ...GenericType) *Wildcard {
	if len(bounds) == 0 {
		return NewUpperBoundedWildcard()
	}
	return &Wildcard{direction: BoundedBelow, bounds: NewExplicit(bounds...)}
}

func (*Wildcard) sealed() {}

func (*Wildcard) Sort() Sort { return SortWildcard }

// Direction reports which side the wildcard is bounded on
func (w *Wildcard) Direction() Direction { return w.direction }

func (w *Wildcard) Name() string { return w.Symbol() }

func (w *Wildcard) Symbol() string {
	if w.direction == BoundedAbove && w.bounds.Size() == 1 && w.bounds.Get(0).AsRawType().Equal(typedesc.Object) {
		return config.WildcardSymbol
	}
	return config.WildcardSymbol + " " + w.direction.keyword() + " " + joinSymbols(w.bounds, config.BoundSeparator)
}

// UpperBounds is empty for a wildcard bounded below
func (w *Wildcard) UpperBounds() List {
	if w.direction == BoundedAbove {
		return w.bounds
	}
	return Empty
}

func (w *Wildcard) LowerBounds() List {
	if w.direction == BoundedBelow {
		return w.bounds
	}
	return Empty
}

func (*Wildcard) Parameters() List { return Empty }

func (*Wildcard) ComponentType() (GenericType, bool) { return nil, false }

func (*Wildcard) DeclaringElement() (typedesc.Element, bool) { return nil, false }

// AsRawType erases to the first upper bound, java.lang.Object when the
// wildcard is bounded below.
func (w *Wildcard) AsRawType() *typedesc.TypeDescription {
	if w.direction == BoundedBelow {
		return typedesc.Object
	}
	return w.bounds.Get(0).AsRawType()
}

func (w *Wildcard) String() string { return w.Symbol() }
