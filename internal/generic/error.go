package generic

import (
	"fmt"
	"strings"

	"github.com/funvibe/bytegen/internal/reflective"
)

// UnsupportedTypeKindError indicates a reflective handle of a category
// the resolver does not know.
type UnsupportedTypeKindError struct {
	Handle reflective.Type
}

func (e *UnsupportedTypeKindError) Error() string {
	return fmt.Sprintf("unsupported type kind %T: %s", e.Handle, e.Handle.TypeName())
}

func NewUnsupportedTypeKindError(handle reflective.Type) *UnsupportedTypeKindError {
	return &UnsupportedTypeKindError{Handle: handle}
}

// NullHandleError indicates an absent reflective handle. Path names where
// in the type expression the handle was missing.
type NullHandleError struct {
	Path string
}

func (e *NullHandleError) Error() string {
	if e.Path == "" {
		return "null type handle"
	}
	return fmt.Sprintf("null type handle in %s", e.Path)
}

func NewNullHandleError(path string) *NullHandleError {
	return &NullHandleError{Path: path}
}

// IllegalDeclarationError indicates a type variable declared on something
// other than a type, method or constructor.
type IllegalDeclarationError struct {
	Variable    string
	Declaration reflective.GenericDeclaration
}

func (e *IllegalDeclarationError) Error() string {
	return fmt.Sprintf("illegal declaration of type variable %s: %T", e.Variable, e.Declaration)
}

func NewIllegalDeclarationError(variable string, decl reflective.GenericDeclaration) *IllegalDeclarationError {
	return &IllegalDeclarationError{Variable: variable, Declaration: decl}
}

// CyclicBoundError indicates a type variable whose first bound leads back
// to itself, as in <T extends U, U extends T>. Such a variable has no
// erasure.
type CyclicBoundError struct {
	Chain []string
}

func (e *CyclicBoundError) Error() string {
	return fmt.Sprintf("cyclic bound of type variable %s", strings.Join(e.Chain, " -> "))
}

func NewCyclicBoundError(chain []string) *CyclicBoundError {
	return &CyclicBoundError{Chain: chain}
}

// IndexError is the panic value of List.Get out of range
type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range for list of size %d", e.Index, e.Size)
}

func indexError(i, size int) *IndexError {
	return &IndexError{Index: i, Size: size}
}
