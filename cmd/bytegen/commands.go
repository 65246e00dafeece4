package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"github.com/pkg/errors"

	"github.com/funvibe/bytegen/internal/assign/primitive"
	"github.com/funvibe/bytegen/internal/bytecode"
	"github.com/funvibe/bytegen/internal/construct"
	"github.com/funvibe/bytegen/internal/generic"
	"github.com/funvibe/bytegen/internal/reflective"
	"github.com/funvibe/bytegen/internal/stack"
	"github.com/funvibe/bytegen/internal/stack/constant"
	"github.com/funvibe/bytegen/internal/typedesc"
	"github.com/funvibe/bytegen/internal/typepool"
)

// listingOwner is the instrumented type listings are generated into
const listingOwner = "bytegen/Listing"

func (s *session) types(args []string) error {
	if len(args) != 0 {
		return errUsage
	}
	for _, name := range s.pool.Names() {
		t, _ := s.pool.Lookup(name)
		kind := "class"
		if t.IsInterface() {
			kind = "interface"
		}
		fmt.Fprintf(s.out, "%-9s %s\n", kind, name)
	}
	return nil
}

func (s *session) resolve(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return errUsage
	}
	var vars []*reflective.TypeVariable
	if len(args) == 2 {
		owner, err := s.pool.Describe(args[1])
		if err != nil {
			return err
		}
		if vars, err = s.pool.TypeVariables(owner); err != nil {
			return err
		}
	}
	handle, err := reflective.ParseTypeSignature(args[0], s.pool, vars...)
	if err != nil {
		return err
	}
	t, err := generic.Resolve(handle)
	if err != nil {
		return err
	}
	s.describeGeneric(t)
	s.dumpValue(t)
	return nil
}

func (s *session) describeGeneric(t generic.GenericType) {
	fmt.Fprintf(s.out, "sort:    %s\n", t.Sort())
	fmt.Fprintf(s.out, "symbol:  %s\n", t.Symbol())
	raw := t.AsRawType()
	fmt.Fprintf(s.out, "erasure: %s (%s)\n", raw.Name(), raw.Descriptor())
	if l := t.UpperBounds(); l.Size() > 0 {
		fmt.Fprintf(s.out, "upper:   %s\n", symbols(l))
	}
	if l := t.LowerBounds(); l.Size() > 0 {
		fmt.Fprintf(s.out, "lower:   %s\n", symbols(l))
	}
	if l := t.Parameters(); l.Size() > 0 {
		fmt.Fprintf(s.out, "params:  %s\n", symbols(l))
	}
	if c, ok := t.ComponentType(); ok {
		fmt.Fprintf(s.out, "element: %s\n", c.Symbol())
	}
	if d, ok := t.DeclaringElement(); ok {
		fmt.Fprintf(s.out, "owner:   %s\n", d.ElementName())
	}
}

func symbols(l generic.List) string {
	out := make([]string, l.Size())
	for i, t := range l.Slice() {
		out[i] = t.Symbol()
	}
	return strings.Join(out, ", ")
}

func (s *session) members(args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	t, err := s.pool.Describe(args[0])
	if err != nil {
		return err
	}
	for _, m := range append(t.DeclaredConstructors(), t.DeclaredMethods()...) {
		ret, err := s.pool.GenericReturnType(m)
		if err != nil {
			return errors.Wrapf(err, "%s.%s", t.Name(), m.Name())
		}
		params, err := s.pool.GenericParameterTypes(m)
		if err != nil {
			return errors.Wrapf(err, "%s.%s", t.Name(), m.Name())
		}
		fmt.Fprintf(s.out, "%s %s(%s) %s\n", ret.Symbol(), m.Name(), symbols(params), m.Descriptor())
	}
	return nil
}

func (s *session) assign(args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	source, err := s.pool.Describe(args[0])
	if err != nil {
		return err
	}
	target, err := s.pool.Describe(args[1])
	if err != nil {
		return err
	}
	m := primitive.Default.Assign(source, target, s.implicit)
	if !m.IsValid() {
		return errors.Errorf("%s cannot be assigned to %s", source, target)
	}
	return s.listing(fmt.Sprintf("%s -> %s", source, target), m)
}

func (s *session) constant(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return errUsage
	}
	t, err := s.pool.Describe(args[0])
	if err != nil {
		return err
	}
	if len(args) == 1 {
		m := constant.DefaultValue(t)
		if !m.IsValid() {
			return errors.Errorf("%s has no default value", t)
		}
		return s.listing("default "+t.Name(), m)
	}
	m, err := s.literal(t, args[1])
	if err != nil {
		return err
	}
	return s.listing(fmt.Sprintf("%s %s", t, args[1]), m)
}

// literal parses value as a constant of type t
func (s *session) literal(t *typedesc.TypeDescription, value string) (stack.Manipulation, error) {
	if !t.IsPrimitive() {
		switch {
		case value == "null":
			return constant.Null, nil
		case t.Equal(typedesc.String):
			return constant.Text(value), nil
		case t.Equal(typedesc.Class):
			c, err := s.pool.Describe(value)
			if err != nil {
				return nil, err
			}
			return constant.Class(c), nil
		}
		return nil, errors.Errorf("%s has no literals besides null", t)
	}
	var (
		m   stack.Manipulation
		err error
	)
	switch t {
	case typedesc.Boolean:
		var v bool
		v, err = strconv.ParseBool(value)
		m = constant.Boolean(v)
	case typedesc.Byte, typedesc.Short, typedesc.Int:
		var v int64
		if v, err = strconv.ParseInt(value, 0, 64); err == nil {
			m, err = integer(t, v)
		}
	case typedesc.Char:
		r := []rune(value)
		if len(r) != 1 {
			err = errors.New("expected a single character")
		} else {
			var c uint16
			if c, err = safecast.Conv[uint16](r[0]); err == nil {
				m = constant.Integer(int32(c))
			}
		}
	case typedesc.Long:
		var v int64
		v, err = strconv.ParseInt(value, 0, 64)
		m = constant.Long(v)
	case typedesc.Float:
		var v float64
		v, err = strconv.ParseFloat(value, 32)
		m = constant.Float(float32(v))
	case typedesc.Double:
		var v float64
		v, err = strconv.ParseFloat(value, 64)
		m = constant.Double(v)
	default:
		return nil, errors.Errorf("%s has no literals", t)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "%s literal %q", t, value)
	}
	return m, nil
}

// integer range checks v against the int-like primitive t
func integer(t *typedesc.TypeDescription, v int64) (stack.Manipulation, error) {
	var (
		n   int32
		err error
	)
	switch t {
	case typedesc.Byte:
		var b int8
		b, err = safecast.Conv[int8](v)
		n = int32(b)
	case typedesc.Short:
		var h int16
		h, err = safecast.Conv[int16](v)
		n = int32(h)
	default:
		n, err = safecast.Conv[int32](v)
	}
	if err != nil {
		return nil, err
	}
	return constant.Integer(n), nil
}

func (s *session) ctor(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return errUsage
	}
	super, err := s.pool.Describe(args[0])
	if err != nil {
		return err
	}
	if super.IsPrimitive() || super.IsArray() || super.IsInterface() {
		return errors.Errorf("%s cannot be subclassed", super)
	}
	strategy := construct.ImitateSuperType
	if len(args) == 2 {
		var ok bool
		if strategy, ok = construct.Lookup(args[1]); !ok {
			return errors.Errorf("unknown constructor strategy %q", args[1])
		}
	}
	sub, ctors := construct.Subclass(super.Name()+"$Generated", super, strategy)
	if len(ctors) == 0 {
		fmt.Fprintf(s.out, "%s declares no constructors\n", sub)
		return nil
	}
	ctx := stack.NewContext(sub.InternalName(), s.cfg.Version)
	for _, c := range ctors {
		impl, ok := construct.Implement(c, ctx)
		if !ok {
			return errors.Errorf("%s has no valid body", c.Method)
		}
		s.print(impl.Code, c.Method.String())
		fmt.Fprintf(s.out, "max stack %d, max locals %d\n", impl.MaxStack, impl.MaxLocals)
	}
	return nil
}

func (s *session) export(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	entries := s.pool.Entries()
	if err := typepool.SaveSQLite(ctx, args[0], entries); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "exported %d types to %s\n", len(entries), args[0])
	return nil
}

// listing applies m to a fresh recorder and prints the result
func (s *session) listing(name string, m stack.Manipulation) error {
	rec := bytecode.NewRecorder()
	ctx := stack.NewContext(listingOwner, s.cfg.Version)
	size := m.Apply(rec, ctx)
	s.print(rec, name)
	fmt.Fprintf(s.out, "stack impact %+d, max %d\n", size.Impact, size.Maximal)
	for _, f := range ctx.CachedFields() {
		fmt.Fprintf(s.out, "cached field %s %s\n", f.Name, f.Descriptor)
	}
	s.dumpValue(m)
	return nil
}

func (s *session) print(rec *bytecode.Recorder, name string) {
	if s.color {
		fmt.Fprint(s.out, bytecode.DisassembleColor(rec, name))
	} else {
		fmt.Fprint(s.out, bytecode.Disassemble(rec, name))
	}
}
