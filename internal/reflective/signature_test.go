package reflective

import (
	"errors"
	"testing"

	"github.com/funvibe/bytegen/internal/typedesc"
)

var (
	listType = typedesc.NewInterface("java.util.List")
	mapType  = typedesc.NewInterface("java.util.Map")
	pairType = typedesc.NewClass("test.Pair").Link(typedesc.Object)
)

var testLookup = LookupFunc(func(name string) (*typedesc.TypeDescription, bool) {
	for _, t := range []*typedesc.TypeDescription{listType, mapType, pairType, typedesc.Object, typedesc.String, typedesc.Number, typedesc.Comparable, typedesc.BoxedInteger} {
		if t.Name() == name {
			return t, true
		}
	}
	return nil, false
})

func TestParseTypeSignature(t *testing.T) {
	tests := []struct {
		sig  string
		name string
	}{
		{"I", "int"},
		{"[I", "int[]"},
		{"Ljava/lang/String;", "java.lang.String"},
		{"[[Ljava/lang/String;", "java.lang.String[][]"},
		{"Ljava/util/List<Ljava/lang/String;>;", "java.util.List<java.lang.String>"},
		{"Ljava/util/List<*>;", "java.util.List<?>"},
		{"Ljava/util/List<+Ljava/lang/Number;>;", "java.util.List<? extends java.lang.Number>"},
		{"Ljava/util/List<-Ljava/lang/Integer;>;", "java.util.List<? super java.lang.Integer>"},
		{"Ljava/util/Map<Ljava/lang/String;[Ljava/util/List<Ljava/lang/String;>;>;",
			"java.util.Map<java.lang.String, java.util.List<java.lang.String>[]>"},
	}

	for _, tt := range tests {
		got, err := ParseTypeSignature(tt.sig, testLookup)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.sig, err)
			continue
		}
		if got.TypeName() != tt.name {
			t.Errorf("%s: got %q, want %q", tt.sig, got.TypeName(), tt.name)
		}
	}
}

func TestParseTypeSignatureErrors(t *testing.T) {
	tests := []string{
		"",
		"V",
		"Ljava/lang/String",
		"Ljava/util/List<>;",
		"TT;",
		"Ljava/lang/String;X",
	}
	for _, sig := range tests {
		if _, err := ParseTypeSignature(sig, testLookup); err == nil {
			t.Errorf("%q: expected error", sig)
		}
	}

	_, err := ParseTypeSignature("Lcom/example/Missing;", testLookup)
	var unknown *typedesc.UnknownTypeError
	if !errors.As(err, &unknown) || unknown.Name != "com.example.Missing" {
		t.Errorf("expected UnknownTypeError, got %v", err)
	}
}

func TestParseClassSignature(t *testing.T) {
	cs, err := ParseClassSignature("<K::Ljava/lang/Comparable<TK;>;V:Ljava/lang/Object;>Ljava/lang/Object;Ljava/util/Map<TK;TV;>;", pairType, testLookup)
	if err != nil {
		t.Fatal(err)
	}
	if len(cs.TypeParameters) != 2 {
		t.Fatalf("type parameters = %d", len(cs.TypeParameters))
	}
	k := cs.TypeParameters[0]
	if k.Declaration != GenericDeclaration(pairType) {
		t.Errorf("K declared on %v", k.Declaration)
	}
	bound, ok := k.Bounds[0].(*ParameterizedType)
	if !ok || bound.Arguments[0] != Type(k) {
		t.Errorf("K bound should refer back to K, got %v", k.Bounds)
	}
	if cs.SuperClass != Type(typedesc.Object) {
		t.Errorf("super class = %v", cs.SuperClass)
	}
	if len(cs.Interfaces) != 1 || cs.Interfaces[0].TypeName() != "java.util.Map<K, V>" {
		t.Errorf("interfaces = %v", cs.Interfaces)
	}
}

func TestParseMethodSignature(t *testing.T) {
	m := typedesc.NewMethod(pairType, "swap", typedesc.Object, typedesc.Object, typedesc.Int)
	outer := &TypeVariable{Name: "K", Bounds: []Type{typedesc.Object}, Declaration: pairType}

	ms, err := ParseMethodSignature("<R:Ljava/lang/Number;>(TK;I)Ljava/util/List<TR;>;^Ljava/lang/Object;", m, testLookup, outer)
	if err != nil {
		t.Fatal(err)
	}
	if ms.Parameters[0] != Type(outer) {
		t.Errorf("outer variable not resolved: %v", ms.Parameters[0])
	}
	if ms.Parameters[1] != Type(typedesc.Int) {
		t.Errorf("second parameter = %v", ms.Parameters[1])
	}
	if ms.Return.TypeName() != "java.util.List<R>" {
		t.Errorf("return = %v", ms.Return.TypeName())
	}
	if _, ok := ms.TypeParameters[0].Declaration.(*Method); !ok {
		t.Errorf("R should be declared on a method, got %T", ms.TypeParameters[0].Declaration)
	}
	if len(ms.Exceptions) != 1 {
		t.Errorf("exceptions = %v", ms.Exceptions)
	}

	ctor := typedesc.NewConstructor(pairType)
	cms, err := ParseMethodSignature("<T:Ljava/lang/Object;>()V", ctor, testLookup)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := cms.TypeParameters[0].Declaration.(*Constructor); !ok {
		t.Errorf("T should be declared on a constructor, got %T", cms.TypeParameters[0].Declaration)
	}
}

func TestWildcardTypeName(t *testing.T) {
	tests := []struct {
		w    *WildcardType
		want string
	}{
		{&WildcardType{}, "?"},
		{&WildcardType{UpperBounds: []Type{typedesc.Object}}, "?"},
		{&WildcardType{UpperBounds: []Type{typedesc.Number, typedesc.Comparable}}, "? extends java.lang.Number & java.lang.Comparable"},
		{&WildcardType{UpperBounds: []Type{typedesc.Object}, LowerBounds: []Type{typedesc.String}}, "? super java.lang.String"},
	}
	for _, tt := range tests {
		if got := tt.w.TypeName(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}
