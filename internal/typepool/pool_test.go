package typepool

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/funvibe/bytegen/internal/generic"
	"github.com/funvibe/bytegen/internal/typedesc"
)

const zooYAML = `
types:
  - name: java.util.List
    interface: true
    signature: "<E:Ljava/lang/Object;>Ljava/lang/Object;"
    methods:
      - name: size
        returns: int
        modifiers: [public, abstract]
  - name: com.example.Animal
    interfaces: [java.io.Serializable]
    methods:
      - name: <init>
        params: [java.lang.String]
      - name: getName
        returns: java.lang.String
      - name: weigh
        returns: double
        params: [int, "long[]"]
        modifiers: [protected]
  - name: com.example.Zoo
    signature: "<A:Lcom/example/Animal;>Ljava/lang/Object;"
    methods:
      - name: animals
        returns: java.util.List
        signature: "()Ljava/util/List<TA;>;"
      - name: adopt
        params: [java.util.List]
        signature: "<B:TA;>(Ljava/util/List<+TB;>;)V"
  - name: com.example.Zoo$Keeper
    outer: com.example.Zoo
    methods:
      - name: favourite
        returns: com.example.Animal
        signature: "()TA;"
`

func loadZoo(t *testing.T) *Pool {
	t.Helper()
	entries, err := ParseYAML([]byte(zooYAML))
	if err != nil {
		t.Fatal(err)
	}
	p := New()
	if err := p.Load(entries); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoad(t *testing.T) {
	p := loadZoo(t)
	if p.Len() != 4 {
		t.Errorf("loaded %d types, want 4", p.Len())
	}

	animal, ok := p.Lookup("com.example.Animal")
	if !ok {
		t.Fatal("Animal not found")
	}
	if super, _ := animal.SuperClass(); super != typedesc.Object {
		t.Errorf("default super class should be Object, got %v", super)
	}
	if !animal.IsAssignableTo(typedesc.Serializable) {
		t.Errorf("Animal implements Serializable")
	}
	if len(animal.DeclaredConstructors()) != 1 || len(animal.DeclaredMethods()) != 2 {
		t.Errorf("unexpected members of Animal")
	}
	weigh, ok := animal.FindMethod("weigh", "(I[J)D")
	if !ok {
		t.Fatal("weigh(I[J)D not found")
	}
	if weigh.Modifiers() != typedesc.ModifierProtected {
		t.Errorf("modifiers = %v", weigh.Modifiers())
	}

	list, _ := p.Lookup("java.util.List")
	if !list.IsInterface() {
		t.Errorf("List should be an interface")
	}
	if _, ok := list.SuperClass(); ok {
		t.Errorf("interfaces have no super class")
	}

	keeper, _ := p.Lookup("com.example.Zoo$Keeper")
	if outer, ok := keeper.DeclaringType(); !ok || outer.Name() != "com.example.Zoo" {
		t.Errorf("Keeper should be nested in Zoo")
	}
}

func TestDescribe(t *testing.T) {
	p := New()
	tests := []struct {
		name string
		want string
	}{
		{"int", "I"},
		{"int[][]", "[[I"},
		{"java.lang.String[]", "[Ljava/lang/String;"},
		{"void", "V"},
	}
	for _, tt := range tests {
		got, err := p.Describe(tt.name)
		if err != nil {
			t.Errorf("Describe(%q): %v", tt.name, err)
			continue
		}
		if got.Descriptor() != tt.want {
			t.Errorf("Describe(%q) = %s, want %s", tt.name, got.Descriptor(), tt.want)
		}
	}

	var unknown *typedesc.UnknownTypeError
	if _, err := p.Describe("com.example.Missing[]"); !errors.As(err, &unknown) || unknown.Name != "com.example.Missing" {
		t.Errorf("expected UnknownTypeError, got %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		entries []TypeEntry
	}{
		{"no name", []TypeEntry{{}}},
		{"core duplicate", []TypeEntry{{Name: "java.lang.String"}}},
		{"unknown super", []TypeEntry{{Name: "a.B", Super: "a.Missing"}}},
		{"unknown param", []TypeEntry{{Name: "a.B", Methods: []MethodEntry{{Name: "m", Params: []string{"a.Missing"}}}}}},
		{"void param", []TypeEntry{{Name: "a.B", Methods: []MethodEntry{{Name: "m", Params: []string{"void"}}}}}},
		{"bad modifier", []TypeEntry{{Name: "a.B", Methods: []MethodEntry{{Name: "m", Modifiers: []string{"sealed"}}}}}},
		{"constructor with result", []TypeEntry{{Name: "a.B", Methods: []MethodEntry{{Name: "<init>", Returns: "int"}}}}},
	}
	for _, tt := range tests {
		if err := New().Load(tt.entries); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}

	var dup *DuplicateTypeError
	err := New().Load([]TypeEntry{{Name: "a.B"}, {Name: "a.B"}})
	if !errors.As(err, &dup) || dup.Name != "a.B" {
		t.Errorf("expected DuplicateTypeError, got %v", err)
	}
}

func TestGenericMembers(t *testing.T) {
	p := loadZoo(t)
	zoo, _ := p.Lookup("com.example.Zoo")

	vars, err := p.TypeVariables(zoo)
	if err != nil || len(vars) != 1 || vars[0].Name != "A" {
		t.Fatalf("type variables = %v, %v", vars, err)
	}

	animals, _ := zoo.FindMethod("animals", "()Ljava/util/List;")
	ret, err := p.GenericReturnType(animals)
	if err != nil {
		t.Fatal(err)
	}
	if ret.Symbol() != "java.util.List<A>" || ret.Sort() != generic.SortParameterized {
		t.Errorf("animals() returns %s", ret.Symbol())
	}
	if arg := ret.Parameters().Get(0); arg.AsRawType().Name() != "com.example.Animal" {
		t.Errorf("A should erase to Animal, got %v", arg.AsRawType())
	}

	adopt, _ := zoo.FindMethod("adopt", "(Ljava/util/List;)V")
	params, err := p.GenericParameterTypes(adopt)
	if err != nil {
		t.Fatal(err)
	}
	if got := params.Get(0).Symbol(); got != "java.util.List<? extends B>" {
		t.Errorf("adopt parameter = %s", got)
	}

	keeper, _ := p.Lookup("com.example.Zoo$Keeper")
	fav, _ := keeper.FindMethod("favourite", "()Lcom/example/Animal;")
	fret, err := p.GenericReturnType(fav)
	if err != nil {
		t.Fatal(err)
	}
	if decl, ok := fret.DeclaringElement(); !ok || decl.ElementName() != "com.example.Zoo" {
		t.Errorf("A in Keeper should come from Zoo, got %v", decl)
	}

	animal, _ := p.Lookup("com.example.Animal")
	name, _ := animal.FindMethod("getName", "()Ljava/lang/String;")
	plain, err := p.GenericReturnType(name)
	if err != nil || plain.Sort() != generic.SortRaw || plain.AsRawType() != typedesc.String {
		t.Errorf("methods without signature return raw types, got %v, %v", plain, err)
	}
}

func TestEntriesRoundTrip(t *testing.T) {
	p := loadZoo(t)
	data, err := MarshalYAML(p.Entries())
	if err != nil {
		t.Fatal(err)
	}
	entries, err := ParseYAML(data)
	if err != nil {
		t.Fatal(err)
	}
	again := New()
	if err := again.Load(entries); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(again.Entries(), p.Entries()) {
		t.Errorf("entries changed after YAML round trip:\n%v\n%v", again.Entries(), p.Entries())
	}
}

func TestSQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "types.db")
	p := loadZoo(t)

	if err := SaveSQLite(ctx, path, p.Entries()); err != nil {
		t.Fatal(err)
	}
	// saving twice replaces the previous contents
	if err := SaveSQLite(ctx, path, p.Entries()); err != nil {
		t.Fatal(err)
	}
	entries, err := LoadSQLite(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(entries, p.Entries()) {
		t.Errorf("sqlite round trip:\n got %v\nwant %v", entries, p.Entries())
	}

	// an empty export is still a valid database
	emptyPath := filepath.Join(t.TempDir(), "empty.db")
	if err := SaveSQLite(ctx, emptyPath, nil); err != nil {
		t.Fatal(err)
	}
	empty, err := LoadSQLite(ctx, emptyPath)
	if err != nil || len(empty) != 0 {
		t.Errorf("empty database = %v, %v", empty, err)
	}
}

func TestLoadSQLiteMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typo.db")
	entries, err := LoadSQLite(context.Background(), path)
	if err == nil {
		t.Fatalf("expected an error, got %d entries", len(entries))
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error %v does not report a missing file", err)
	}
	if _, statErr := os.Stat(path); !errors.Is(statErr, fs.ErrNotExist) {
		t.Errorf("loading must not create %s", path)
	}
}
