// Package typepool is the registry type sources load class descriptions
// into. A pool starts with the java.lang core types and primitives; it is
// built by one loader and read-only afterwards.
package typepool

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/funvibe/bytegen/internal/config"
	"github.com/funvibe/bytegen/internal/generic"
	"github.com/funvibe/bytegen/internal/reflective"
	"github.com/funvibe/bytegen/internal/typedesc"
)

// DuplicateTypeError reports a second definition of a type name
type DuplicateTypeError struct {
	Name string
}

func (e *DuplicateTypeError) Error() string {
	return fmt.Sprintf("type %s is already defined", e.Name)
}

// Pool maps binary names to type descriptions
type Pool struct {
	types      map[string]*typedesc.TypeDescription
	loaded     []string
	signatures map[string]string
	methodSigs map[*typedesc.MethodDescription]string
}

// New creates a pool holding the primitives and core java.lang types
func New() *Pool {
	p := &Pool{
		types:      make(map[string]*typedesc.TypeDescription),
		signatures: make(map[string]string),
		methodSigs: make(map[*typedesc.MethodDescription]string),
	}
	for _, t := range typedesc.Primitives {
		p.types[t.Name()] = t
	}
	p.types[typedesc.Void.Name()] = typedesc.Void
	for _, t := range typedesc.CoreTypes {
		p.types[t.Name()] = t
	}
	return p
}

// Lookup finds a type by binary name. Pool implements reflective.Lookup.
func (p *Pool) Lookup(name string) (*typedesc.TypeDescription, bool) {
	t, ok := p.types[name]
	return t, ok
}

// Describe finds a type by source name, including array types such as
// "int[][]".
func (p *Pool) Describe(name string) (*typedesc.TypeDescription, error) {
	base := strings.TrimSpace(name)
	dims := 0
	for strings.HasSuffix(base, config.ArraySymbolSuffix) {
		base = strings.TrimSpace(strings.TrimSuffix(base, config.ArraySymbolSuffix))
		dims++
	}
	t, ok := p.types[base]
	if !ok {
		return nil, typedesc.NewUnknownTypeError(base)
	}
	return typedesc.ArrayOf(t, dims), nil
}

// Names lists the types added by loaders, sorted
func (p *Pool) Names() []string {
	out := append([]string(nil), p.loaded...)
	sort.Strings(out)
	return out
}

// Len is the number of types added by loaders
func (p *Pool) Len() int {
	return len(p.loaded)
}

// Load adds entries to the pool. Names are declared first so that entries
// may refer to each other in any order.
func (p *Pool) Load(entries []TypeEntry) error {
	declared := make([]*typedesc.TypeDescription, len(entries))
	for i, e := range entries {
		if e.Name == "" {
			return errors.Errorf("type entry %d has no name", i)
		}
		if _, exists := p.types[e.Name]; exists {
			return &DuplicateTypeError{Name: e.Name}
		}
		if e.Interface {
			declared[i] = typedesc.NewInterface(e.Name)
		} else {
			declared[i] = typedesc.NewClass(e.Name)
		}
		p.types[e.Name] = declared[i]
		p.loaded = append(p.loaded, e.Name)
	}
	for i, e := range entries {
		if err := p.link(declared[i], e); err != nil {
			return errors.Wrapf(err, "loading %s", e.Name)
		}
	}
	return nil
}

func (p *Pool) link(t *typedesc.TypeDescription, e TypeEntry) error {
	var super *typedesc.TypeDescription
	switch {
	case e.Super != "":
		s, err := p.Describe(e.Super)
		if err != nil {
			return err
		}
		super = s
	case !e.Interface:
		super = typedesc.Object
	}
	interfaces := make([]*typedesc.TypeDescription, 0, len(e.Interfaces))
	for _, name := range e.Interfaces {
		itf, err := p.Describe(name)
		if err != nil {
			return err
		}
		interfaces = append(interfaces, itf)
	}
	t.Link(super, interfaces...)

	if e.Outer != "" {
		outer, err := p.Describe(e.Outer)
		if err != nil {
			return err
		}
		t.SetDeclaringType(outer)
	}
	if e.Signature != "" {
		p.signatures[e.Name] = e.Signature
	}

	for _, me := range e.Methods {
		m, err := p.method(t, me)
		if err != nil {
			return errors.Wrapf(err, "method %s", me.Name)
		}
		t.AddMethod(m)
		if me.Signature != "" {
			p.methodSigs[m] = me.Signature
		}
	}
	return nil
}

func (p *Pool) method(owner *typedesc.TypeDescription, me MethodEntry) (*typedesc.MethodDescription, error) {
	returns := typedesc.Void
	if me.Returns != "" {
		r, err := p.Describe(me.Returns)
		if err != nil {
			return nil, err
		}
		returns = r
	}
	params := make([]*typedesc.TypeDescription, 0, len(me.Params))
	for _, name := range me.Params {
		pt, err := p.Describe(name)
		if err != nil {
			return nil, err
		}
		if pt.IsVoid() {
			return nil, errors.New("void parameter")
		}
		params = append(params, pt)
	}
	mods, ok := parseModifiers(me.Modifiers)
	if !ok {
		return nil, errors.Errorf("unknown modifier in %v", me.Modifiers)
	}
	if me.Name == config.ConstructorName && !returns.IsVoid() {
		return nil, errors.New("constructor must return void")
	}
	return typedesc.NewMethod(owner, me.Name, returns, params...).WithModifiers(mods), nil
}

// Entries exports the loaded types in load order
func (p *Pool) Entries() []TypeEntry {
	out := make([]TypeEntry, 0, len(p.loaded))
	for _, name := range p.loaded {
		t := p.types[name]
		e := TypeEntry{Name: name, Interface: t.IsInterface(), Signature: p.signatures[name]}
		if super, ok := t.SuperClass(); ok && !(super.Equal(typedesc.Object) && !t.IsInterface()) {
			e.Super = super.Name()
		}
		for _, itf := range t.Interfaces() {
			e.Interfaces = append(e.Interfaces, itf.Name())
		}
		if outer, ok := t.DeclaringType(); ok {
			e.Outer = outer.Name()
		}
		for _, m := range append(t.DeclaredConstructors(), t.DeclaredMethods()...) {
			me := MethodEntry{Name: m.Name(), Modifiers: modifierList(m.Modifiers()), Signature: p.methodSigs[m]}
			if !m.ReturnType().IsVoid() {
				me.Returns = m.ReturnType().Name()
			}
			for _, pt := range m.Parameters() {
				me.Params = append(me.Params, pt.Name())
			}
			e.Methods = append(e.Methods, me)
		}
		out = append(out, e)
	}
	return out
}

// TypeVariables returns the type parameters t declares, if any
func (p *Pool) TypeVariables(t *typedesc.TypeDescription) ([]*reflective.TypeVariable, error) {
	sig, ok := p.signatures[t.Name()]
	if !ok {
		return nil, nil
	}
	cs, err := reflective.ParseClassSignature(sig, t, p)
	if err != nil {
		return nil, err
	}
	return cs.TypeParameters, nil
}

// scope collects the type variables visible inside t, innermost last
func (p *Pool) scope(t *typedesc.TypeDescription) ([]*reflective.TypeVariable, error) {
	var vars []*reflective.TypeVariable
	for c, ok := t, true; ok; c, ok = c.DeclaringType() {
		vs, err := p.TypeVariables(c)
		if err != nil {
			return nil, err
		}
		vars = append(vs, vars...)
	}
	return vars, nil
}

// MethodSignature parses the generic signature of m. Methods without one
// get a signature built from their erased types.
func (p *Pool) MethodSignature(m *typedesc.MethodDescription) (*reflective.MethodSignature, error) {
	sig, ok := p.methodSigs[m]
	if !ok {
		params := make([]reflective.Type, len(m.Parameters()))
		for i, pt := range m.Parameters() {
			params[i] = pt
		}
		return &reflective.MethodSignature{Parameters: params, Return: m.ReturnType()}, nil
	}
	outer, err := p.scope(m.DeclaringType())
	if err != nil {
		return nil, err
	}
	return reflective.ParseMethodSignature(sig, m, p, outer...)
}

// GenericReturnType resolves the generic return type of m
func (p *Pool) GenericReturnType(m *typedesc.MethodDescription) (generic.GenericType, error) {
	ms, err := p.MethodSignature(m)
	if err != nil {
		return nil, err
	}
	return generic.Resolve(ms.Return)
}

// GenericParameterTypes resolves the generic parameter types of m
func (p *Pool) GenericParameterTypes(m *typedesc.MethodDescription) (generic.List, error) {
	ms, err := p.MethodSignature(m)
	if err != nil {
		return nil, err
	}
	return generic.NewLoaded(ms.Parameters...)
}
