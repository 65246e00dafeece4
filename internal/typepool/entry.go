package typepool

import (
	"strings"

	"github.com/funvibe/bytegen/internal/typedesc"
)

// TypeEntry is the serialized form of one class or interface, shared by
// the YAML, SQLite and protobuf sources.
type TypeEntry struct {
	Name       string        `yaml:"name"`
	Interface  bool          `yaml:"interface,omitempty"`
	Super      string        `yaml:"super,omitempty"`
	Interfaces []string      `yaml:"interfaces,omitempty"`
	Outer      string        `yaml:"outer,omitempty"`
	Signature  string        `yaml:"signature,omitempty"`
	Methods    []MethodEntry `yaml:"methods,omitempty"`
}

// MethodEntry describes a method or, when Name is "<init>", a constructor.
// Types are source names ("int", "java.lang.String[]"); Returns defaults
// to void.
type MethodEntry struct {
	Name      string   `yaml:"name"`
	Returns   string   `yaml:"returns,omitempty"`
	Params    []string `yaml:"params,omitempty"`
	Modifiers []string `yaml:"modifiers,omitempty"`
	Signature string   `yaml:"signature,omitempty"`
}

// TypeFile is the top level of a YAML type file
type TypeFile struct {
	Types []TypeEntry `yaml:"types"`
}

var modifierNames = []struct {
	name string
	flag typedesc.Modifier
}{
	{"public", typedesc.ModifierPublic},
	{"private", typedesc.ModifierPrivate},
	{"protected", typedesc.ModifierProtected},
	{"static", typedesc.ModifierStatic},
	{"final", typedesc.ModifierFinal},
	{"abstract", typedesc.ModifierAbstract},
}

// parseModifiers defaults to public when no access modifier is given
func parseModifiers(names []string) (typedesc.Modifier, bool) {
	var m typedesc.Modifier
	for _, n := range names {
		found := false
		for _, mn := range modifierNames {
			if strings.EqualFold(n, mn.name) {
				m |= mn.flag
				found = true
			}
		}
		if !found {
			return 0, false
		}
	}
	if m&(typedesc.ModifierPublic|typedesc.ModifierPrivate|typedesc.ModifierProtected) == 0 {
		m |= typedesc.ModifierPublic
	}
	return m, true
}

func modifierList(m typedesc.Modifier) []string {
	var out []string
	for _, mn := range modifierNames {
		if m&mn.flag != 0 {
			out = append(out, mn.name)
		}
	}
	return out
}
