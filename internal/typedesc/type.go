// Package typedesc is the raw, erased type surface generated code is
// checked against: primitives, arrays and classes with their descriptors,
// internal names and hierarchy.
package typedesc

import (
	"strings"

	set "github.com/hashicorp/go-set/v3"

	"github.com/funvibe/bytegen/internal/config"
	"github.com/funvibe/bytegen/internal/stack"
)

// Sort classifies a type description
type Sort int

const (
	SortPrimitive Sort = iota
	SortArray
	SortClass
)

// Element is anything that can declare a type variable or be declared by
// a type: types, methods and constructors.
type Element interface {
	ElementName() string
}

// TypeDescription describes one erased type. Descriptions are built once
// (pool loaders link hierarchies before publishing them) and are read-only
// afterwards. Two descriptions denote the same type iff Equal.
type TypeDescription struct {
	name        string
	sort        Sort
	descriptor  string
	stackSize   stack.StackSize
	component   *TypeDescription
	superClass  *TypeDescription
	interfaces  TypeList
	iface       bool
	declaringBy *TypeDescription
	methods     []*MethodDescription
}

func primitive(name, descriptor string, size stack.StackSize) *TypeDescription {
	return &TypeDescription{name: name, sort: SortPrimitive, descriptor: descriptor, stackSize: size}
}

// Primitive types
var (
	Boolean = primitive("boolean", "Z", stack.Single)
	Byte    = primitive("byte", "B", stack.Single)
	Short   = primitive("short", "S", stack.Single)
	Char    = primitive("char", "C", stack.Single)
	Int     = primitive("int", "I", stack.Single)
	Long    = primitive("long", "J", stack.Double)
	Float   = primitive("float", "F", stack.Single)
	Double  = primitive("double", "D", stack.Double)
	Void    = primitive("void", "V", stack.Zero)
)

// Primitives lists all primitive types except void
var Primitives = []*TypeDescription{Boolean, Byte, Short, Char, Int, Long, Float, Double}

// NewClass creates a class description. name is the binary name in dotted
// form ("java.util.Map$Entry"). Hierarchy is attached with Link.
func NewClass(name string) *TypeDescription {
	return &TypeDescription{
		name:       name,
		sort:       SortClass,
		descriptor: "L" + strings.ReplaceAll(name, ".", "/") + ";",
		stackSize:  stack.Single,
	}
}

// NewInterface creates an interface description.
func NewInterface(name string) *TypeDescription {
	t := NewClass(name)
	t.iface = true
	return t
}

// Link attaches the super class and interfaces. It is meant for type
// sources while they build a hierarchy and returns t for chaining.
func (t *TypeDescription) Link(superClass *TypeDescription, interfaces ...*TypeDescription) *TypeDescription {
	t.superClass = superClass
	t.interfaces = append(TypeList(nil), interfaces...)
	return t
}

// SetDeclaringType records the enclosing type of a nested class.
func (t *TypeDescription) SetDeclaringType(outer *TypeDescription) *TypeDescription {
	t.declaringBy = outer
	return t
}

// AddMethod declares a method or constructor on t.
func (t *TypeDescription) AddMethod(m *MethodDescription) *TypeDescription {
	t.methods = append(t.methods, m)
	return t
}

// ArrayOf returns component with dims additional array dimensions.
func ArrayOf(component *TypeDescription, dims int) *TypeDescription {
	t := component
	for i := 0; i < dims; i++ {
		t = &TypeDescription{
			name:       t.name + config.ArraySymbolSuffix,
			sort:       SortArray,
			descriptor: "[" + t.descriptor,
			stackSize:  stack.Single,
			component:  t,
		}
	}
	return t
}

// Name returns the source-level name ("int", "java.lang.String[]")
func (t *TypeDescription) Name() string {
	return t.name
}

func (t *TypeDescription) String() string {
	return t.name
}

// TypeName makes raw types usable as reflective type handles
func (t *TypeDescription) TypeName() string {
	return t.name
}

// ElementName identifies t as a declaring element
func (t *TypeDescription) ElementName() string {
	return t.name
}

// DeclarationName identifies t as a generic declaration
func (t *TypeDescription) DeclarationName() string {
	return t.name
}

// Sort returns the kind of type
func (t *TypeDescription) Sort() Sort {
	return t.sort
}

// Descriptor returns the JVM field descriptor ("J", "[I", "Ljava/lang/Long;")
func (t *TypeDescription) Descriptor() string {
	return t.descriptor
}

// InternalName returns the slash-separated name of a class, or the
// descriptor of primitives and arrays.
func (t *TypeDescription) InternalName() string {
	if t.sort == SortClass {
		return t.descriptor[1 : len(t.descriptor)-1]
	}
	return t.descriptor
}

// IsPrimitive reports whether t is a primitive type (including void)
func (t *TypeDescription) IsPrimitive() bool {
	return t.sort == SortPrimitive
}

// IsArray reports whether t is an array type
func (t *TypeDescription) IsArray() bool {
	return t.sort == SortArray
}

// IsInterface reports whether t is an interface
func (t *TypeDescription) IsInterface() bool {
	return t.iface
}

// IsVoid reports whether t is void
func (t *TypeDescription) IsVoid() bool {
	return t == Void || t.descriptor == Void.descriptor
}

// StackSize returns the operand stack slots a value of t occupies
func (t *TypeDescription) StackSize() stack.StackSize {
	return t.stackSize
}

// ComponentType returns the element type of an array
func (t *TypeDescription) ComponentType() (*TypeDescription, bool) {
	if t.component == nil {
		return nil, false
	}
	return t.component, true
}

// Dimensions returns the number of array dimensions of t
func (t *TypeDescription) Dimensions() int {
	n := 0
	for c := t; c.component != nil; c = c.component {
		n++
	}
	return n
}

// BaseComponent strips all array dimensions
func (t *TypeDescription) BaseComponent() *TypeDescription {
	c := t
	for c.component != nil {
		c = c.component
	}
	return c
}

// SuperClass returns the direct super class. Interfaces, primitives and
// java.lang.Object have none; arrays report java.lang.Object.
func (t *TypeDescription) SuperClass() (*TypeDescription, bool) {
	if t.sort == SortArray {
		return Object, true
	}
	if t.superClass == nil {
		return nil, false
	}
	return t.superClass, true
}

// Interfaces returns the directly implemented interfaces
func (t *TypeDescription) Interfaces() TypeList {
	if t.sort == SortArray {
		return TypeList{Cloneable, Serializable}
	}
	return t.interfaces
}

// DeclaringType returns the enclosing type of a nested class
func (t *TypeDescription) DeclaringType() (*TypeDescription, bool) {
	if t.declaringBy == nil {
		return nil, false
	}
	return t.declaringBy, true
}

// DeclaredMethods returns the methods declared by t, excluding constructors
func (t *TypeDescription) DeclaredMethods() []*MethodDescription {
	var out []*MethodDescription
	for _, m := range t.methods {
		if !m.IsConstructor() {
			out = append(out, m)
		}
	}
	return out
}

// DeclaredConstructors returns the constructors declared by t
func (t *TypeDescription) DeclaredConstructors() []*MethodDescription {
	var out []*MethodDescription
	for _, m := range t.methods {
		if m.IsConstructor() {
			out = append(out, m)
		}
	}
	return out
}

// FindMethod returns the declared method with the given name and descriptor
func (t *TypeDescription) FindMethod(name, descriptor string) (*MethodDescription, bool) {
	for _, m := range t.methods {
		if m.Name() == name && m.Descriptor() == descriptor {
			return m, true
		}
	}
	return nil, false
}

// Equal reports whether both descriptions denote the same type
func (t *TypeDescription) Equal(other *TypeDescription) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t == other || t.descriptor == other.descriptor
}

// Represents reports whether t has the given descriptor
func (t *TypeDescription) Represents(descriptor string) bool {
	return t.descriptor == descriptor
}

// IsAssignableTo reports whether a value of t can be stored in target
// without any instruction: identity or reference widening.
func (t *TypeDescription) IsAssignableTo(target *TypeDescription) bool {
	if t.Equal(target) {
		return true
	}
	if t.IsPrimitive() || target.IsPrimitive() {
		return false
	}
	if target.Equal(Object) {
		return true
	}
	if t.IsArray() {
		if target.IsArray() {
			tc, _ := t.ComponentType()
			oc, _ := target.ComponentType()
			if tc.IsPrimitive() || oc.IsPrimitive() {
				return tc.Equal(oc)
			}
			return tc.IsAssignableTo(oc)
		}
		return target.Equal(Cloneable) || target.Equal(Serializable)
	}
	if target.IsArray() {
		return false
	}
	return t.isSubtypeOf(target, set.New[string](0))
}

// IsAssignableFrom is IsAssignableTo with the operands swapped
func (t *TypeDescription) IsAssignableFrom(source *TypeDescription) bool {
	return source.IsAssignableTo(t)
}

func (t *TypeDescription) isSubtypeOf(target *TypeDescription, visited *set.Set[string]) bool {
	if !visited.Insert(t.descriptor) {
		return false
	}
	if t.Equal(target) {
		return true
	}
	if super, ok := t.SuperClass(); ok && super.isSubtypeOf(target, visited) {
		return true
	}
	for _, itf := range t.Interfaces() {
		if itf.isSubtypeOf(target, visited) {
			return true
		}
	}
	return false
}
