// Package generic is the algebra of possibly-generic types: a closed set
// of five variants (Raw, Variable, Wildcard, Parameterized, Array) built
// from reflective handles, each of which can be erased to a raw type.
package generic

import (
	set "github.com/hashicorp/go-set/v3"

	"github.com/funvibe/bytegen/internal/reflective"
	"github.com/funvibe/bytegen/internal/typedesc"
)

// Sort tags the variant of a GenericType
type Sort int

const (
	SortRaw Sort = iota
	SortVariable
	SortWildcard
	SortParameterized
	SortArray
)

func (s Sort) String() string {
	switch s {
	case SortRaw:
		return "raw"
	case SortVariable:
		return "variable"
	case SortWildcard:
		return "wildcard"
	case SortParameterized:
		return "parameterized"
	case SortArray:
		return "array"
	}
	return "unknown"
}

// GenericType is one of Raw, *Variable, *Wildcard, *Parameterized or
// *Array. The set is closed: switch on the concrete type (or Sort) and
// every case is covered.
type GenericType interface {
	// Sort returns the variant tag
	Sort() Sort

	// Name is the type name as reflection reports it
	Name() string

	// Symbol renders the type in source form including bounds
	Symbol() string

	UpperBounds() List
	LowerBounds() List

	// Parameters are the type arguments of a parameterized type
	Parameters() List

	// ComponentType is the element type of arrays
	ComponentType() (GenericType, bool)

	// DeclaringElement is the type, method or constructor that declared a
	// type variable, or the enclosing type of a nested raw class
	DeclaringElement() (typedesc.Element, bool)

	// AsRawType erases the type
	AsRawType() *typedesc.TypeDescription

	sealed()
}

// Resolve turns a reflective handle into its generic type variant. The
// whole handle graph is checked up front, so variants built from it later
// (bounds, arguments, components) never fail.
func Resolve(handle reflective.Type) (GenericType, error) {
	if err := validate(handle, "type", set.New[*reflective.TypeVariable](0)); err != nil {
		return nil, err
	}
	return resolve(handle), nil
}

// resolve dispatches on the handle category; handle must be validated.
func resolve(handle reflective.Type) GenericType {
	switch h := handle.(type) {
	case *typedesc.TypeDescription:
		return Raw{t: h}
	case *reflective.TypeVariable:
		return &Variable{handle: h}
	case *reflective.WildcardType:
		return wildcardOf(h)
	case *reflective.ParameterizedType:
		return &Parameterized{handle: h}
	case *reflective.GenericArrayType:
		return &Array{handle: h}
	}
	panic(NewUnsupportedTypeKindError(handle))
}

func validate(handle reflective.Type, path string, seen *set.Set[*reflective.TypeVariable]) error {
	if isNil(handle) {
		return NewNullHandleError(path)
	}
	switch h := handle.(type) {
	case *typedesc.TypeDescription:
		return nil
	case *reflective.TypeVariable:
		if !seen.Insert(h) {
			return nil
		}
		if err := erasureChain(h); err != nil {
			return err
		}
		switch d := h.Declaration.(type) {
		case *typedesc.TypeDescription:
			if d == nil {
				return NewIllegalDeclarationError(h.Name, h.Declaration)
			}
		case *reflective.Method:
			if d == nil || d.Description == nil {
				return NewIllegalDeclarationError(h.Name, h.Declaration)
			}
		case *reflective.Constructor:
			if d == nil || d.Description == nil {
				return NewIllegalDeclarationError(h.Name, h.Declaration)
			}
		default:
			return NewIllegalDeclarationError(h.Name, h.Declaration)
		}
		return validateAll(h.Bounds, path+" bound of "+h.Name, seen)
	case *reflective.WildcardType:
		if err := validateAll(h.UpperBounds, path+" upper bound", seen); err != nil {
			return err
		}
		return validateAll(h.LowerBounds, path+" lower bound", seen)
	case *reflective.ParameterizedType:
		if h.Raw == nil {
			return NewNullHandleError(path + " raw type")
		}
		if h.Owner != nil {
			if err := validate(h.Owner, path+" owner", seen); err != nil {
				return err
			}
		}
		return validateAll(h.Arguments, path+" argument of "+h.Raw.Name(), seen)
	case *reflective.GenericArrayType:
		return validate(h.Component, path+" component", seen)
	}
	return NewUnsupportedTypeKindError(handle)
}

// erasureChain follows the handles erasure of v reads (first bounds and
// array components) and fails if v's erasure would depend on itself.
func erasureChain(v *reflective.TypeVariable) error {
	visited := set.New[*reflective.TypeVariable](0)
	chain := []string{}
	var cur reflective.Type = v
	for {
		switch h := cur.(type) {
		case *reflective.TypeVariable:
			if h == nil {
				return nil
			}
			chain = append(chain, h.Name)
			if !visited.Insert(h) {
				return NewCyclicBoundError(chain)
			}
			if len(h.Bounds) == 0 {
				return nil
			}
			cur = h.Bounds[0]
		case *reflective.GenericArrayType:
			if h == nil {
				return nil
			}
			cur = h.Component
		case *reflective.WildcardType:
			if h == nil || len(h.UpperBounds) == 0 {
				return nil
			}
			cur = h.UpperBounds[0]
		default:
			return nil
		}
	}
}

func validateAll(handles []reflective.Type, path string, seen *set.Set[*reflective.TypeVariable]) error {
	for _, h := range handles {
		if err := validate(h, path, seen); err != nil {
			return err
		}
	}
	return nil
}

// isNil catches both a nil interface and typed nil handles
func isNil(handle reflective.Type) bool {
	switch h := handle.(type) {
	case nil:
		return true
	case *typedesc.TypeDescription:
		return h == nil
	case *reflective.TypeVariable:
		return h == nil
	case *reflective.WildcardType:
		return h == nil
	case *reflective.ParameterizedType:
		return h == nil
	case *reflective.GenericArrayType:
		return h == nil
	}
	return false
}
