package bytecode

import (
	"fmt"

	semver "github.com/Masterminds/semver/v3"
)

// ClassFileVersion is the major version a class file is emitted for.
type ClassFileVersion struct {
	Major int
}

// Well-known class file versions
var (
	Java4  = ClassFileVersion{Major: 48}
	Java5  = ClassFileVersion{Major: 49}
	Java8  = ClassFileVersion{Major: 52}
	Java11 = ClassFileVersion{Major: 55}
	Java17 = ClassFileVersion{Major: 61}
	Java21 = ClassFileVersion{Major: 65}
)

// javaBaseMajor is the offset between a Java release number and its class
// file major version (Java 5 -> 49).
const javaBaseMajor = 44

// ParseJavaVersion accepts both the legacy "1.x" form and plain release
// numbers ("8", "17", "21.0.2").
func ParseJavaVersion(s string) (ClassFileVersion, error) {
	v, err := semver.NewVersion(s)
	if err != nil {
		return ClassFileVersion{}, fmt.Errorf("invalid java version %q: %w", s, err)
	}
	release := v.Major()
	if release == 1 {
		release = v.Minor()
	}
	if release < 1 {
		return ClassFileVersion{}, fmt.Errorf("invalid java version %q: no such release", s)
	}
	return ClassFileVersion{Major: javaBaseMajor + int(release)}, nil
}

// JavaRelease returns the Java release number of the version
func (v ClassFileVersion) JavaRelease() int {
	return v.Major - javaBaseMajor
}

// SupportsClassConstants reports whether LDC may load a class constant
func (v ClassFileVersion) SupportsClassConstants() bool {
	return v.Major >= Java5.Major
}

// AtLeast reports whether v is the same as or newer than other
func (v ClassFileVersion) AtLeast(other ClassFileVersion) bool {
	return v.Major >= other.Major
}

func (v ClassFileVersion) String() string {
	return fmt.Sprintf("Java %d (major %d)", v.JavaRelease(), v.Major)
}
