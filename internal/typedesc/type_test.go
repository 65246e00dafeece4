package typedesc

import (
	"testing"

	"github.com/funvibe/bytegen/internal/stack"
)

func TestDescriptors(t *testing.T) {
	tests := []struct {
		name         string
		typ          *TypeDescription
		descriptor   string
		internalName string
		typeName     string
		size         stack.StackSize
	}{
		{name: "int", typ: Int, descriptor: "I", internalName: "I", typeName: "int", size: stack.Single},
		{name: "long", typ: Long, descriptor: "J", internalName: "J", typeName: "long", size: stack.Double},
		{name: "void", typ: Void, descriptor: "V", internalName: "V", typeName: "void", size: stack.Zero},
		{name: "string", typ: String, descriptor: "Ljava/lang/String;", internalName: "java/lang/String", typeName: "java.lang.String", size: stack.Single},
		{name: "int[][]", typ: ArrayOf(Int, 2), descriptor: "[[I", internalName: "[[I", typeName: "int[][]", size: stack.Single},
		{name: "Long[]", typ: ArrayOf(BoxedLong, 1), descriptor: "[Ljava/lang/Long;", internalName: "[Ljava/lang/Long;", typeName: "java.lang.Long[]", size: stack.Single},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.Descriptor(); got != tt.descriptor {
				t.Errorf("Descriptor() = %s, want %s", got, tt.descriptor)
			}
			if got := tt.typ.InternalName(); got != tt.internalName {
				t.Errorf("InternalName() = %s, want %s", got, tt.internalName)
			}
			if got := tt.typ.Name(); got != tt.typeName {
				t.Errorf("Name() = %s, want %s", got, tt.typeName)
			}
			if got := tt.typ.StackSize(); got != tt.size {
				t.Errorf("StackSize() = %s, want %s", got, tt.size)
			}
		})
	}
}

func TestArrayDimensions(t *testing.T) {
	arr := ArrayOf(String, 3)
	if arr.Dimensions() != 3 {
		t.Errorf("Dimensions() = %d, want 3", arr.Dimensions())
	}
	if !arr.BaseComponent().Equal(String) {
		t.Errorf("BaseComponent() = %s, want java.lang.String", arr.BaseComponent())
	}
	c, ok := arr.ComponentType()
	if !ok || !c.Equal(ArrayOf(String, 2)) {
		t.Errorf("ComponentType() = %v, %v", c, ok)
	}
	if _, ok := String.ComponentType(); ok {
		t.Errorf("non-array should have no component type")
	}
}

func TestAssignability(t *testing.T) {
	list := NewInterface("java.util.List")
	arrayList := NewClass("java.util.ArrayList").Link(Object, list)
	cyclic := NewInterface("test.Cyclic")
	cyclic.Link(nil, cyclic)

	tests := []struct {
		name   string
		source *TypeDescription
		target *TypeDescription
		want   bool
	}{
		{"identity primitive", Int, Int, true},
		{"primitive widening is not assignment", Int, Long, false},
		{"boxing is not assignment", Int, BoxedInteger, false},
		{"class to object", BoxedLong, Object, true},
		{"class to super", BoxedLong, Number, true},
		{"class to interface", BoxedLong, Comparable, true},
		{"transitive interface", BoxedLong, Serializable, true},
		{"super to sub", Number, BoxedLong, false},
		{"sibling", BoxedLong, BoxedInteger, false},
		{"interface to object", list, Object, true},
		{"implementor to interface", arrayList, list, true},
		{"array to object", ArrayOf(Int, 1), Object, true},
		{"array to cloneable", ArrayOf(Int, 1), Cloneable, true},
		{"covariant arrays", ArrayOf(BoxedLong, 1), ArrayOf(Number, 1), true},
		{"primitive arrays are invariant", ArrayOf(Int, 1), ArrayOf(Long, 1), false},
		{"array to non-array", ArrayOf(String, 1), String, false},
		{"cyclic hierarchy terminates", cyclic, String, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.source.IsAssignableTo(tt.target); got != tt.want {
				t.Errorf("%s.IsAssignableTo(%s) = %v, want %v", tt.source, tt.target, got, tt.want)
			}
		})
	}
}

func TestWrappers(t *testing.T) {
	for _, p := range Primitives {
		w, ok := WrapperOf(p)
		if !ok {
			t.Fatalf("no wrapper for %s", p)
		}
		back, ok := PrimitiveOf(w)
		if !ok || back != p {
			t.Errorf("PrimitiveOf(%s) = %v, want %s", w, back, p)
		}
		if _, ok := w.FindMethod(p.Name()+"Value", "()"+p.Descriptor()); !ok {
			t.Errorf("%s should declare %sValue", w, p.Name())
		}
	}
	if _, ok := PrimitiveOf(String); ok {
		t.Errorf("String is not a wrapper")
	}
	if _, ok := WrapperOf(String); ok {
		t.Errorf("String has no wrapper")
	}
}

func TestMethodDescription(t *testing.T) {
	owner := NewClass("test.Foo").Link(Object)
	m := NewMethod(owner, "bar", String, Int, Long, ArrayOf(Double, 1))
	if got := m.Descriptor(); got != "(IJ[D)Ljava/lang/String;" {
		t.Errorf("Descriptor() = %s", got)
	}
	if got := m.StackSize(); got != 5 {
		t.Errorf("StackSize() = %d, want 5 (receiver + int + long + array)", got)
	}
	static := NewMethod(owner, "baz", Void, Long).WithModifiers(ModifierStatic)
	if got := static.StackSize(); got != 2 {
		t.Errorf("static StackSize() = %d, want 2", got)
	}
	ctor := NewConstructor(owner, Int)
	owner.AddMethod(m).AddMethod(ctor)
	if len(owner.DeclaredConstructors()) != 1 || len(owner.DeclaredMethods()) != 1 {
		t.Errorf("declared members not split by kind")
	}
	if got := ctor.Descriptor(); got != "(I)V" {
		t.Errorf("constructor descriptor = %s", got)
	}
}

func TestTypeListStackSize(t *testing.T) {
	l := TypeList{Int, Long, String, Double}
	if got := l.StackSize(); got != 6 {
		t.Errorf("StackSize() = %d, want 6", got)
	}
	if got := TypeList(nil).StackSize(); got != 0 {
		t.Errorf("empty StackSize() = %d", got)
	}
	prims := l.Filter(func(t *TypeDescription) bool { return t.IsPrimitive() })
	if len(prims) != 3 || prims[0] != Int || prims[2] != Double {
		t.Errorf("Filter() = %v", prims)
	}
}
