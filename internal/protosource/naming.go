package protosource

import (
	"path"
	"strings"
	"unicode"

	"github.com/jhump/protoreflect/desc"
)

// camelCase converts a proto identifier the way protoc's Java generator
// does: separators are dropped and the following letter is upper-cased,
// as is any letter after a digit.
func camelCase(name string, capitalizeFirst bool) string {
	var sb strings.Builder
	capNext := capitalizeFirst
	for i, r := range name {
		switch {
		case unicode.IsLower(r):
			if capNext {
				r = unicode.ToUpper(r)
			}
			sb.WriteRune(r)
			capNext = false
		case unicode.IsUpper(r):
			if i == 0 && !capitalizeFirst {
				r = unicode.ToLower(r)
			}
			sb.WriteRune(r)
			capNext = false
		case unicode.IsDigit(r):
			sb.WriteRune(r)
			capNext = true
		default:
			capNext = true
		}
	}
	return sb.String()
}

// javaPackage is the java_package option or, failing that, the proto package
func javaPackage(fd *desc.FileDescriptor) string {
	if opts := fd.GetFileOptions(); opts.GetJavaPackage() != "" {
		return opts.GetJavaPackage()
	}
	return fd.GetPackage()
}

// outerClassName is java_outer_classname or the camel-cased file name,
// suffixed with OuterClass when a top-level type already has that name.
func outerClassName(fd *desc.FileDescriptor) string {
	if name := fd.GetFileOptions().GetJavaOuterClassname(); name != "" {
		return name
	}
	base := strings.TrimSuffix(path.Base(fd.GetName()), ".proto")
	name := camelCase(base, true)
	for _, md := range fd.GetMessageTypes() {
		if md.GetName() == name {
			return name + "OuterClass"
		}
	}
	for _, ed := range fd.GetEnumTypes() {
		if ed.GetName() == name {
			return name + "OuterClass"
		}
	}
	for _, sd := range fd.GetServices() {
		if sd.GetName() == name {
			return name + "OuterClass"
		}
	}
	return name
}

func qualify(pkg, name string) string {
	if pkg == "" {
		return name
	}
	return pkg + "." + name
}

// enclosingName is the class top-level types of fd are nested in, or ""
// when they are top-level classes themselves.
func enclosingName(fd *desc.FileDescriptor) string {
	if fd.GetFileOptions().GetJavaMultipleFiles() {
		return ""
	}
	return qualify(javaPackage(fd), outerClassName(fd))
}

// topLevelName is the binary Java name of a top-level message or enum
func topLevelName(fd *desc.FileDescriptor, simple string) string {
	if outer := enclosingName(fd); outer != "" {
		return outer + "$" + simple
	}
	return qualify(javaPackage(fd), simple)
}
