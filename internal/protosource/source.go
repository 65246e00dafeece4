// Package protosource derives class descriptions from protobuf schemas,
// naming classes and accessors the way protoc's Java generator does. Each
// message becomes a GeneratedMessageV3 subclass with one getter per field;
// repeated and map fields get generic List and Map signatures.
package protosource

import (
	"strings"

	"github.com/jhump/protoreflect/desc"
	"github.com/jhump/protoreflect/desc/protoparse"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/funvibe/bytegen/internal/config"
	"github.com/funvibe/bytegen/internal/reflective"
	"github.com/funvibe/bytegen/internal/typepool"
)

// Support class names referenced by generated accessors
const (
	ByteStringName          = "com.google.protobuf.ByteString"
	ProtocolMessageEnumName = "com.google.protobuf.ProtocolMessageEnum"
	ListName                = "java.util.List"
	MapName                 = "java.util.Map"
)

// Load parses the given proto files, resolving imports against
// importPaths, and converts them together with their dependencies.
func Load(importPaths []string, files []string, known reflective.Lookup) ([]typepool.TypeEntry, error) {
	parser := protoparse.Parser{ImportPaths: importPaths}
	return Parse(parser, files, known)
}

// Parse is Load with a caller-configured parser
func Parse(parser protoparse.Parser, files []string, known reflective.Lookup) ([]typepool.TypeEntry, error) {
	if len(files) == 0 {
		return nil, nil
	}
	fds, err := parser.ParseFiles(files...)
	if err != nil {
		return nil, errors.Wrap(err, "parsing proto files")
	}
	return Entries(fds, known), nil
}

// Entries converts parsed files and everything they import. Support
// classes (GeneratedMessageV3, ByteString, List, Map) are included unless
// known already has them; known may be nil.
func Entries(fds []*desc.FileDescriptor, known reflective.Lookup) []typepool.TypeEntry {
	c := &converter{
		names: make(map[string]string),
		seen:  make(map[string]bool),
	}
	var files []*desc.FileDescriptor
	visited := make(map[string]bool)
	var walk func(fd *desc.FileDescriptor)
	walk = func(fd *desc.FileDescriptor) {
		if visited[fd.GetName()] {
			return
		}
		visited[fd.GetName()] = true
		for _, dep := range fd.GetDependencies() {
			walk(dep)
		}
		files = append(files, fd)
	}
	for _, fd := range fds {
		walk(fd)
	}

	for _, fd := range files {
		c.nameFile(fd)
	}
	for _, e := range supportEntries() {
		if known != nil {
			if _, ok := known.Lookup(e.Name); ok {
				continue
			}
		}
		c.add(e)
	}
	for _, fd := range files {
		c.convertFile(fd)
	}
	return c.entries
}

type converter struct {
	// names maps fully-qualified proto names to binary Java names
	names   map[string]string
	seen    map[string]bool
	entries []typepool.TypeEntry
}

func (c *converter) add(e typepool.TypeEntry) {
	if c.seen[e.Name] {
		return
	}
	c.seen[e.Name] = true
	c.entries = append(c.entries, e)
}

func (c *converter) nameFile(fd *desc.FileDescriptor) {
	for _, md := range fd.GetMessageTypes() {
		c.nameMessage(md, topLevelName(fd, md.GetName()))
	}
	for _, ed := range fd.GetEnumTypes() {
		c.names[ed.GetFullyQualifiedName()] = topLevelName(fd, ed.GetName())
	}
}

func (c *converter) nameMessage(md *desc.MessageDescriptor, javaName string) {
	c.names[md.GetFullyQualifiedName()] = javaName
	for _, nested := range md.GetNestedMessageTypes() {
		c.nameMessage(nested, javaName+"$"+nested.GetName())
	}
	for _, ed := range md.GetNestedEnumTypes() {
		c.names[ed.GetFullyQualifiedName()] = javaName + "$" + ed.GetName()
	}
}

func (c *converter) convertFile(fd *desc.FileDescriptor) {
	outer := enclosingName(fd)
	if outer != "" {
		c.add(typepool.TypeEntry{
			Name: outer,
			Methods: []typepool.MethodEntry{
				{Name: config.ConstructorName, Modifiers: []string{"private"}},
			},
		})
	}
	for _, md := range fd.GetMessageTypes() {
		c.convertMessage(md, outer)
	}
	for _, ed := range fd.GetEnumTypes() {
		c.convertEnum(ed, outer)
	}
}

func (c *converter) convertMessage(md *desc.MessageDescriptor, outer string) {
	if md.IsMapEntry() {
		return
	}
	name := c.names[md.GetFullyQualifiedName()]
	e := typepool.TypeEntry{
		Name:  name,
		Super: config.GeneratedMessageName,
		Outer: outer,
		Methods: []typepool.MethodEntry{
			{Name: config.ConstructorName, Modifiers: []string{"private"}},
			{Name: "getDefaultInstance", Returns: name, Modifiers: []string{"public", "static"}},
		},
	}
	for _, fd := range md.GetFields() {
		e.Methods = append(e.Methods, c.accessors(fd)...)
	}
	c.add(e)

	for _, nested := range md.GetNestedMessageTypes() {
		c.convertMessage(nested, name)
	}
	for _, ed := range md.GetNestedEnumTypes() {
		c.convertEnum(ed, name)
	}
}

func (c *converter) convertEnum(ed *desc.EnumDescriptor, outer string) {
	name := c.names[ed.GetFullyQualifiedName()]
	c.add(typepool.TypeEntry{
		Name:       name,
		Interfaces: []string{ProtocolMessageEnumName},
		Outer:      outer,
		Methods: []typepool.MethodEntry{
			{Name: "getNumber", Returns: "int"},
			{Name: "forNumber", Returns: name, Params: []string{"int"}, Modifiers: []string{"public", "static"}},
		},
	})
}

// accessors lists the generated read accessors of one field
func (c *converter) accessors(fd *desc.FieldDescriptor) []typepool.MethodEntry {
	property := camelCase(fd.GetName(), true)
	count := typepool.MethodEntry{Name: "get" + property + "Count", Returns: "int"}

	switch {
	case fd.IsMap():
		key := c.javaType(fd.GetMapKeyType())
		value := c.javaType(fd.GetMapValueType())
		return []typepool.MethodEntry{
			{
				Name:      "get" + property + "Map",
				Returns:   MapName,
				Signature: "()" + generic(MapName, key.boxed, value.boxed),
			},
			count,
		}
	case fd.IsRepeated():
		elem := c.javaType(fd)
		return []typepool.MethodEntry{
			{
				Name:      "get" + property + "List",
				Returns:   ListName,
				Signature: "()" + generic(ListName, elem.boxed),
			},
			count,
			{Name: "get" + property, Returns: elem.name, Params: []string{"int"}},
		}
	}

	t := c.javaType(fd)
	out := []typepool.MethodEntry{{Name: "get" + property, Returns: t.name}}
	if fd.GetType() == descriptorpb.FieldDescriptorProto_TYPE_MESSAGE || fd.GetOneOf() != nil {
		out = append(out, typepool.MethodEntry{Name: "has" + property, Returns: "boolean"})
	}
	return out
}

// javaType is the Java rendering of a field's value type
type javaType struct {
	// name is the source name used in type entries
	name string
	// boxed is the signature of the type as a generic argument
	boxed string
}

var scalarTypes = map[descriptorpb.FieldDescriptorProto_Type]javaType{
	descriptorpb.FieldDescriptorProto_TYPE_INT32:    {"int", "Ljava/lang/Integer;"},
	descriptorpb.FieldDescriptorProto_TYPE_SINT32:   {"int", "Ljava/lang/Integer;"},
	descriptorpb.FieldDescriptorProto_TYPE_SFIXED32: {"int", "Ljava/lang/Integer;"},
	descriptorpb.FieldDescriptorProto_TYPE_UINT32:   {"int", "Ljava/lang/Integer;"},
	descriptorpb.FieldDescriptorProto_TYPE_FIXED32:  {"int", "Ljava/lang/Integer;"},
	descriptorpb.FieldDescriptorProto_TYPE_INT64:    {"long", "Ljava/lang/Long;"},
	descriptorpb.FieldDescriptorProto_TYPE_SINT64:   {"long", "Ljava/lang/Long;"},
	descriptorpb.FieldDescriptorProto_TYPE_SFIXED64: {"long", "Ljava/lang/Long;"},
	descriptorpb.FieldDescriptorProto_TYPE_UINT64:   {"long", "Ljava/lang/Long;"},
	descriptorpb.FieldDescriptorProto_TYPE_FIXED64:  {"long", "Ljava/lang/Long;"},
	descriptorpb.FieldDescriptorProto_TYPE_FLOAT:    {"float", "Ljava/lang/Float;"},
	descriptorpb.FieldDescriptorProto_TYPE_DOUBLE:   {"double", "Ljava/lang/Double;"},
	descriptorpb.FieldDescriptorProto_TYPE_BOOL:     {"boolean", "Ljava/lang/Boolean;"},
	descriptorpb.FieldDescriptorProto_TYPE_STRING:   {"java.lang.String", "Ljava/lang/String;"},
	descriptorpb.FieldDescriptorProto_TYPE_BYTES:    {ByteStringName, classSignature(ByteStringName)},
}

func (c *converter) javaType(fd *desc.FieldDescriptor) javaType {
	switch fd.GetType() {
	case descriptorpb.FieldDescriptorProto_TYPE_MESSAGE, descriptorpb.FieldDescriptorProto_TYPE_GROUP:
		name := c.names[fd.GetMessageType().GetFullyQualifiedName()]
		return javaType{name: name, boxed: classSignature(name)}
	case descriptorpb.FieldDescriptorProto_TYPE_ENUM:
		name := c.names[fd.GetEnumType().GetFullyQualifiedName()]
		return javaType{name: name, boxed: classSignature(name)}
	}
	return scalarTypes[fd.GetType()]
}

// classSignature renders a binary class name as a signature. Nested
// classes keep '$', which the signature parser reads as part of the name.
func classSignature(name string) string {
	return "L" + strings.ReplaceAll(name, ".", "/") + ";"
}

func generic(raw string, args ...string) string {
	sig := classSignature(raw)
	return sig[:len(sig)-1] + "<" + strings.Join(args, "") + ">;"
}

func supportEntries() []typepool.TypeEntry {
	return []typepool.TypeEntry{
		{
			Name: config.GeneratedMessageName,
			Methods: []typepool.MethodEntry{
				{Name: config.ConstructorName, Modifiers: []string{"protected"}},
				{Name: "getSerializedSize", Returns: "int"},
			},
		},
		{
			Name: ByteStringName,
			Methods: []typepool.MethodEntry{
				{Name: "size", Returns: "int"},
				{Name: "toStringUtf8", Returns: "java.lang.String"},
			},
		},
		{
			Name:      ProtocolMessageEnumName,
			Interface: true,
			Methods: []typepool.MethodEntry{
				{Name: "getNumber", Returns: "int", Modifiers: []string{"public", "abstract"}},
			},
		},
		{
			Name:      ListName,
			Interface: true,
			Signature: "<E:Ljava/lang/Object;>Ljava/lang/Object;",
			Methods: []typepool.MethodEntry{
				{Name: "size", Returns: "int", Modifiers: []string{"public", "abstract"}},
				{Name: "get", Returns: "java.lang.Object", Params: []string{"int"}, Modifiers: []string{"public", "abstract"}, Signature: "(I)TE;"},
			},
		},
		{
			Name:      MapName,
			Interface: true,
			Signature: "<K:Ljava/lang/Object;V:Ljava/lang/Object;>Ljava/lang/Object;",
			Methods: []typepool.MethodEntry{
				{Name: "size", Returns: "int", Modifiers: []string{"public", "abstract"}},
				{Name: "get", Returns: "java.lang.Object", Params: []string{"java.lang.Object"}, Modifiers: []string{"public", "abstract"}, Signature: "(Ljava/lang/Object;)TV;"},
			},
		},
	}
}
