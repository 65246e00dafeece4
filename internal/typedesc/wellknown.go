package typedesc

import "github.com/funvibe/bytegen/internal/config"

// Core java.lang types every pool starts from
var (
	Object       = NewClass("java.lang.Object")
	Serializable = NewInterface("java.io.Serializable")
	Cloneable    = NewInterface("java.lang.Cloneable")
	Comparable   = NewInterface("java.lang.Comparable")
	CharSequence = NewInterface("java.lang.CharSequence")
	String       = NewClass("java.lang.String").Link(Object, Serializable, Comparable, CharSequence)
	Class        = NewClass("java.lang.Class").Link(Object, Serializable)
	Number       = NewClass("java.lang.Number").Link(Object, Serializable)
	VoidWrapper  = NewClass("java.lang.Void").Link(Object)

	BoxedBoolean   = NewClass("java.lang.Boolean").Link(Object, Serializable, Comparable)
	BoxedByte      = NewClass("java.lang.Byte").Link(Number, Comparable)
	BoxedShort     = NewClass("java.lang.Short").Link(Number, Comparable)
	BoxedCharacter = NewClass("java.lang.Character").Link(Object, Serializable, Comparable)
	BoxedInteger   = NewClass("java.lang.Integer").Link(Number, Comparable)
	BoxedLong      = NewClass("java.lang.Long").Link(Number, Comparable)
	BoxedFloat     = NewClass("java.lang.Float").Link(Number, Comparable)
	BoxedDouble    = NewClass("java.lang.Double").Link(Number, Comparable)
)

// CoreTypes lists the built-in class descriptions
var CoreTypes = []*TypeDescription{
	Object, Serializable, Cloneable, Comparable, CharSequence, String, Class, Number, VoidWrapper,
	BoxedBoolean, BoxedByte, BoxedShort, BoxedCharacter, BoxedInteger, BoxedLong, BoxedFloat, BoxedDouble,
}

var (
	primitiveToWrapper = map[string]*TypeDescription{
		Boolean.descriptor: BoxedBoolean,
		Byte.descriptor:    BoxedByte,
		Short.descriptor:   BoxedShort,
		Char.descriptor:    BoxedCharacter,
		Int.descriptor:     BoxedInteger,
		Long.descriptor:    BoxedLong,
		Float.descriptor:   BoxedFloat,
		Double.descriptor:  BoxedDouble,
		Void.descriptor:    VoidWrapper,
	}
	wrapperToPrimitive = map[string]*TypeDescription{}
)

func init() {
	Object.AddMethod(NewConstructor(Object))
	Number.AddMethod(NewConstructor(Number))
	String.AddMethod(NewConstructor(String))
	Class.AddMethod(NewMethod(Class, config.ForNameMethodName, Class, String).WithModifiers(ModifierPublic | ModifierStatic))

	for _, p := range Primitives {
		w := primitiveToWrapper[p.descriptor]
		wrapperToPrimitive[w.descriptor] = p
		w.AddMethod(NewMethod(w, p.name+"Value", p))
		w.AddMethod(NewMethod(w, config.ValueOfMethodName, w, p).WithModifiers(ModifierPublic | ModifierStatic))
	}
}

// WrapperOf returns the wrapper class of a primitive type
func WrapperOf(primitive *TypeDescription) (*TypeDescription, bool) {
	w, ok := primitiveToWrapper[primitive.descriptor]
	return w, ok && primitive.IsPrimitive()
}

// PrimitiveOf returns the primitive type a wrapper class boxes
func PrimitiveOf(wrapper *TypeDescription) (*TypeDescription, bool) {
	p, ok := wrapperToPrimitive[wrapper.descriptor]
	return p, ok
}
