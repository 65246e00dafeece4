package reflective

import (
	"fmt"
	"strings"

	"github.com/funvibe/bytegen/internal/typedesc"
)

// Lookup finds raw class descriptions by binary name ("java.util.Map$Entry")
type Lookup interface {
	Lookup(name string) (*typedesc.TypeDescription, bool)
}

// LookupFunc adapts a function to Lookup
type LookupFunc func(name string) (*typedesc.TypeDescription, bool)

func (f LookupFunc) Lookup(name string) (*typedesc.TypeDescription, bool) {
	return f(name)
}

// SignatureError reports a malformed or unresolvable generic signature
type SignatureError struct {
	Signature string
	Pos       int
	Msg       string
}

func (e *SignatureError) Error() string {
	return fmt.Sprintf("signature %q at %d: %s", e.Signature, e.Pos, e.Msg)
}

// ClassSignature is a parsed class Signature attribute
type ClassSignature struct {
	TypeParameters []*TypeVariable
	SuperClass     Type
	Interfaces     []Type
}

// MethodSignature is a parsed method Signature attribute
type MethodSignature struct {
	TypeParameters []*TypeVariable
	Parameters     []Type
	Return         Type
	Exceptions     []Type
}

// ParseTypeSignature parses a field or standalone type signature such as
// "Ljava/util/List<+Ljava/lang/Number;>;". Type variables are resolved
// against vars.
func ParseTypeSignature(sig string, lookup Lookup, vars ...*TypeVariable) (Type, error) {
	p := newParser(sig, lookup, vars)
	t, err := p.javaType(false)
	if err != nil {
		return nil, err
	}
	if err := p.end(); err != nil {
		return nil, err
	}
	return t, nil
}

// ParseClassSignature parses the generic signature of owner, declaring its
// type parameters on it.
func ParseClassSignature(sig string, owner *typedesc.TypeDescription, lookup Lookup) (*ClassSignature, error) {
	p := newParser(sig, lookup, nil)
	params, err := p.typeParameters(owner)
	if err != nil {
		return nil, err
	}
	cs := &ClassSignature{TypeParameters: params}
	if cs.SuperClass, err = p.classType(); err != nil {
		return nil, err
	}
	for p.pos < len(p.sig) {
		itf, err := p.classType()
		if err != nil {
			return nil, err
		}
		cs.Interfaces = append(cs.Interfaces, itf)
	}
	return cs, nil
}

// ParseMethodSignature parses the generic signature of a method or
// constructor. outer holds the type variables of the declaring class.
func ParseMethodSignature(sig string, method *typedesc.MethodDescription, lookup Lookup, outer ...*TypeVariable) (*MethodSignature, error) {
	var decl GenericDeclaration = &Method{Description: method}
	if method.IsConstructor() {
		decl = &Constructor{Description: method}
	}
	p := newParser(sig, lookup, outer)
	params, err := p.typeParameters(decl)
	if err != nil {
		return nil, err
	}
	ms := &MethodSignature{TypeParameters: params}
	if err := p.expect('('); err != nil {
		return nil, err
	}
	for p.peek() != ')' {
		t, err := p.javaType(false)
		if err != nil {
			return nil, err
		}
		ms.Parameters = append(ms.Parameters, t)
	}
	p.pos++
	if ms.Return, err = p.javaType(true); err != nil {
		return nil, err
	}
	for p.peek() == '^' {
		p.pos++
		t, err := p.referenceType()
		if err != nil {
			return nil, err
		}
		ms.Exceptions = append(ms.Exceptions, t)
	}
	if err := p.end(); err != nil {
		return nil, err
	}
	return ms, nil
}

type parser struct {
	sig    string
	pos    int
	lookup Lookup
	scope  map[string]*TypeVariable

	// declaring is set while type parameter names are collected; type
	// variable references are not resolved in that pass.
	declaring bool
}

func newParser(sig string, lookup Lookup, vars []*TypeVariable) *parser {
	scope := make(map[string]*TypeVariable, len(vars))
	for _, v := range vars {
		scope[v.Name] = v
	}
	return &parser{sig: sig, lookup: lookup, scope: scope}
}

func (p *parser) errorf(format string, args ...any) error {
	return &SignatureError{Signature: p.sig, Pos: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) peek() byte {
	if p.pos >= len(p.sig) {
		return 0
	}
	return p.sig[p.pos]
}

func (p *parser) expect(c byte) error {
	if p.peek() != c {
		return p.errorf("expected %q", c)
	}
	p.pos++
	return nil
}

func (p *parser) end() error {
	if p.pos != len(p.sig) {
		return p.errorf("unexpected trailing input %q", p.sig[p.pos:])
	}
	return nil
}

func (p *parser) identifier(stops string) (string, error) {
	start := p.pos
	for p.pos < len(p.sig) && !strings.ContainsRune(stops, rune(p.sig[p.pos])) {
		p.pos++
	}
	if p.pos == start {
		return "", p.errorf("expected identifier")
	}
	if p.pos >= len(p.sig) {
		return "", p.errorf("unterminated identifier")
	}
	return p.sig[start:p.pos], nil
}

// typeParameters parses an optional <...> section. Names are collected in
// a first pass so bounds can refer to any parameter of the same section.
func (p *parser) typeParameters(decl GenericDeclaration) ([]*TypeVariable, error) {
	if p.peek() != '<' {
		return nil, nil
	}
	start := p.pos

	p.declaring = true
	names, err := p.typeParameterSection(nil)
	p.declaring = false
	if err != nil {
		return nil, err
	}

	vars := make([]*TypeVariable, len(names))
	for i, name := range names {
		vars[i] = &TypeVariable{Name: name, Declaration: decl}
		p.scope[name] = vars[i]
	}

	p.pos = start
	if _, err := p.typeParameterSection(vars); err != nil {
		return nil, err
	}
	return vars, nil
}

func (p *parser) typeParameterSection(vars []*TypeVariable) ([]string, error) {
	if err := p.expect('<'); err != nil {
		return nil, err
	}
	var names []string
	for i := 0; p.peek() != '>'; i++ {
		name, err := p.identifier(":>;")
		if err != nil {
			return nil, err
		}
		names = append(names, name)
		var bounds []Type
		for p.peek() == ':' {
			p.pos++
			if p.peek() == ':' {
				// empty class bound, interface bounds follow
				continue
			}
			b, err := p.referenceType()
			if err != nil {
				return nil, err
			}
			bounds = append(bounds, b)
		}
		if vars != nil {
			if len(bounds) == 0 {
				bounds = []Type{typedesc.Object}
			}
			vars[i].Bounds = bounds
		}
	}
	p.pos++
	if len(names) == 0 {
		return nil, p.errorf("empty type parameter list")
	}
	return names, nil
}

func (p *parser) javaType(allowVoid bool) (Type, error) {
	switch c := p.peek(); c {
	case 'Z', 'B', 'S', 'C', 'I', 'J', 'F', 'D':
		p.pos++
		return baseType(c), nil
	case 'V':
		if !allowVoid {
			return nil, p.errorf("void is only valid as a return type")
		}
		p.pos++
		return typedesc.Void, nil
	}
	return p.referenceType()
}

func baseType(c byte) *typedesc.TypeDescription {
	for _, t := range typedesc.Primitives {
		if t.Descriptor()[0] == c {
			return t
		}
	}
	return nil
}

func (p *parser) referenceType() (Type, error) {
	switch p.peek() {
	case 'L':
		return p.classType()
	case 'T':
		return p.typeVariable()
	case '[':
		p.pos++
		component, err := p.javaType(false)
		if err != nil {
			return nil, err
		}
		if raw, ok := component.(*typedesc.TypeDescription); ok {
			return typedesc.ArrayOf(raw, 1), nil
		}
		if component == nil {
			return nil, nil
		}
		return &GenericArrayType{Component: component}, nil
	case 0:
		return nil, p.errorf("unexpected end of signature")
	}
	return nil, p.errorf("unexpected %q", p.peek())
}

func (p *parser) typeVariable() (Type, error) {
	p.pos++
	name, err := p.identifier(";")
	if err != nil {
		return nil, err
	}
	p.pos++
	if p.declaring {
		return nil, nil
	}
	v, ok := p.scope[name]
	if !ok {
		return nil, p.errorf("undeclared type variable %s", name)
	}
	return v, nil
}

func (p *parser) classType() (Type, error) {
	if err := p.expect('L'); err != nil {
		return nil, err
	}
	var (
		name  string
		owner Type
		cur   Type
	)
	for {
		segment, err := p.identifier("<.;")
		if err != nil {
			return nil, err
		}
		if name == "" {
			name = strings.ReplaceAll(segment, "/", ".")
		} else {
			name += "$" + segment
		}
		raw, ok := p.lookup.Lookup(name)
		if !ok {
			return nil, &typedesc.UnknownTypeError{Name: name}
		}
		var args []Type
		if p.peek() == '<' {
			if args, err = p.typeArguments(); err != nil {
				return nil, err
			}
		}
		if len(args) > 0 || owner != nil {
			cur = &ParameterizedType{Raw: raw, Arguments: args, Owner: owner}
		} else {
			cur = raw
		}
		switch p.peek() {
		case '.':
			p.pos++
			if _, generic := cur.(*ParameterizedType); generic {
				owner = cur
			}
			continue
		case ';':
			p.pos++
			return cur, nil
		}
		return nil, p.errorf("expected '.' or ';'")
	}
}

func (p *parser) typeArguments() ([]Type, error) {
	p.pos++
	var args []Type
	for p.peek() != '>' {
		switch p.peek() {
		case '*':
			p.pos++
			args = append(args, &WildcardType{UpperBounds: []Type{typedesc.Object}})
		case '+':
			p.pos++
			b, err := p.referenceType()
			if err != nil {
				return nil, err
			}
			args = append(args, &WildcardType{UpperBounds: []Type{b}})
		case '-':
			p.pos++
			b, err := p.referenceType()
			if err != nil {
				return nil, err
			}
			args = append(args, &WildcardType{UpperBounds: []Type{typedesc.Object}, LowerBounds: []Type{b}})
		case 0:
			return nil, p.errorf("unterminated type arguments")
		default:
			t, err := p.referenceType()
			if err != nil {
				return nil, err
			}
			args = append(args, t)
		}
	}
	p.pos++
	if len(args) == 0 {
		return nil, p.errorf("empty type argument list")
	}
	return args, nil
}
