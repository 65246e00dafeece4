// Package reflective is the external type source the generic type algebra
// consumes: handles shaped like a JVM reflection API. Raw classes are
// plain *typedesc.TypeDescription values; the generic categories have
// their own handle types below. Handles are read-only once built.
package reflective

import (
	"strings"

	"github.com/funvibe/bytegen/internal/config"
	"github.com/funvibe/bytegen/internal/typedesc"
)

// Type is an external reflective type handle. *typedesc.TypeDescription
// implements it for raw classes, primitives and raw arrays.
type Type interface {
	TypeName() string
}

// GenericDeclaration is the construct a type variable is declared on:
// a *typedesc.TypeDescription, a *Method or a *Constructor.
type GenericDeclaration interface {
	DeclarationName() string
}

// TypeVariable is a declared type variable such as T in class Box<T>.
// Bounds may refer back to the variable (T extends Comparable<T>).
type TypeVariable struct {
	Name        string
	Bounds      []Type
	Declaration GenericDeclaration
}

func (v *TypeVariable) TypeName() string {
	return v.Name
}

// WildcardType is a type argument such as ? extends Number. Following JVM
// reflection, upper bounds are never empty (java.lang.Object when the
// wildcard is unbounded or bounded below).
type WildcardType struct {
	UpperBounds []Type
	LowerBounds []Type
}

func (w *WildcardType) TypeName() string {
	if len(w.LowerBounds) > 0 {
		return config.WildcardSymbol + " " + config.SuperSymbol + " " + joinNames(w.LowerBounds, config.BoundSeparator)
	}
	if len(w.UpperBounds) == 0 || isObject(w.UpperBounds[0]) && len(w.UpperBounds) == 1 {
		return config.WildcardSymbol
	}
	return config.WildcardSymbol + " " + config.ExtendsSymbol + " " + joinNames(w.UpperBounds, config.BoundSeparator)
}

// ParameterizedType is a generic class applied to type arguments
type ParameterizedType struct {
	Raw       *typedesc.TypeDescription
	Arguments []Type

	// Owner is the enclosing type of an inner class, or nil
	Owner Type
}

func (p *ParameterizedType) TypeName() string {
	var sb strings.Builder
	if p.Owner != nil {
		sb.WriteString(p.Owner.TypeName())
		sb.WriteByte('$')
		name := p.Raw.Name()
		sb.WriteString(name[strings.LastIndexByte(name, '$')+1:])
	} else {
		sb.WriteString(p.Raw.Name())
	}
	if len(p.Arguments) > 0 {
		sb.WriteByte('<')
		sb.WriteString(joinNames(p.Arguments, config.ParameterSeparator))
		sb.WriteByte('>')
	}
	return sb.String()
}

// GenericArrayType is an array whose component is a type variable or a
// parameterized type (T[], List<String>[]).
type GenericArrayType struct {
	Component Type
}

func (a *GenericArrayType) TypeName() string {
	return a.Component.TypeName() + config.ArraySymbolSuffix
}

// Method declares method-level type variables
type Method struct {
	Description *typedesc.MethodDescription
}

func (m *Method) DeclarationName() string {
	return m.Description.DeclarationName()
}

// Constructor declares constructor-level type variables
type Constructor struct {
	Description *typedesc.MethodDescription
}

func (c *Constructor) DeclarationName() string {
	return c.Description.DeclarationName()
}

func joinNames(types []Type, sep string) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.TypeName()
	}
	return strings.Join(names, sep)
}

func isObject(t Type) bool {
	raw, ok := t.(*typedesc.TypeDescription)
	return ok && raw.Equal(typedesc.Object)
}
