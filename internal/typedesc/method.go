package typedesc

import (
	"strings"

	"github.com/funvibe/bytegen/internal/config"
	"github.com/funvibe/bytegen/internal/stack"
)

// Modifier is a bit set of member access flags
type Modifier int

const (
	ModifierPublic    Modifier = 0x0001
	ModifierPrivate   Modifier = 0x0002
	ModifierProtected Modifier = 0x0004
	ModifierStatic    Modifier = 0x0008
	ModifierFinal     Modifier = 0x0010
	ModifierAbstract  Modifier = 0x0400
)

// MethodDescription describes a method or constructor of a type
type MethodDescription struct {
	name          string
	declaringType *TypeDescription
	returnType    *TypeDescription
	parameters    TypeList
	modifiers     Modifier
}

// NewMethod describes a public instance method
func NewMethod(declaringType *TypeDescription, name string, returnType *TypeDescription, parameters ...*TypeDescription) *MethodDescription {
	return &MethodDescription{
		name:          name,
		declaringType: declaringType,
		returnType:    returnType,
		parameters:    append(TypeList(nil), parameters...),
		modifiers:     ModifierPublic,
	}
}

// NewConstructor describes a public constructor
func NewConstructor(declaringType *TypeDescription, parameters ...*TypeDescription) *MethodDescription {
	return NewMethod(declaringType, config.ConstructorName, Void, parameters...)
}

// WithModifiers returns m with its modifiers replaced
func (m *MethodDescription) WithModifiers(modifiers Modifier) *MethodDescription {
	m.modifiers = modifiers
	return m
}

func (m *MethodDescription) Name() string                    { return m.name }
func (m *MethodDescription) DeclaringType() *TypeDescription { return m.declaringType }
func (m *MethodDescription) ReturnType() *TypeDescription    { return m.returnType }
func (m *MethodDescription) Parameters() TypeList            { return m.parameters }
func (m *MethodDescription) Modifiers() Modifier             { return m.modifiers }
func (m *MethodDescription) IsStatic() bool                  { return m.modifiers&ModifierStatic != 0 }
func (m *MethodDescription) IsPrivate() bool                 { return m.modifiers&ModifierPrivate != 0 }
func (m *MethodDescription) IsConstructor() bool             { return m.name == config.ConstructorName }
func (m *MethodDescription) IsVisibleTo(t *TypeDescription) bool {
	return !m.IsPrivate() || m.declaringType.Equal(t)
}

// Descriptor returns the JVM method descriptor, e.g. "(IJ)Ljava/lang/String;"
func (m *MethodDescription) Descriptor() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for _, p := range m.parameters {
		sb.WriteString(p.Descriptor())
	}
	sb.WriteByte(')')
	sb.WriteString(m.returnType.Descriptor())
	return sb.String()
}

// ParameterStackSize is the stack size of all arguments, without receiver
func (m *MethodDescription) ParameterStackSize() int {
	return m.parameters.StackSize()
}

// StackSize is the stack size of all arguments including the receiver of
// instance methods
func (m *MethodDescription) StackSize() int {
	size := m.ParameterStackSize()
	if !m.IsStatic() {
		size += stack.Single.Size()
	}
	return size
}

// ElementName identifies m as a declaring element
func (m *MethodDescription) ElementName() string {
	return m.declaringType.Name() + "." + m.name + m.Descriptor()
}

// DeclarationName identifies m as a generic declaration
func (m *MethodDescription) DeclarationName() string {
	return m.ElementName()
}

func (m *MethodDescription) String() string {
	return m.ElementName()
}
