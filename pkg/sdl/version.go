package sdl

import (
	"fmt"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/backend"
)

// Populated at build time via ldflags.
var (
	BuildVersion = "v0.0.0-in-progress"
	BuildCommit  = "unknown"
)

// Version is a native library version triple.
type Version struct {
	Major int
	Minor int
	Patch int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// AtLeast reports whether v is the same as or newer than major.minor.patch.
func (v Version) AtLeast(major, minor, patch int) bool {
	if v.Major != major {
		return v.Major > major
	}
	if v.Minor != minor {
		return v.Minor > minor
	}
	return v.Patch >= patch
}

// WrapperVersion returns the semantic version of the Go bindings.
func WrapperVersion() string {
	return BuildVersion
}

// NativeVersion returns the version of the linked native library, or the
// zero Version when the bindings are not built.
func NativeVersion() Version {
	major, minor, patch := backend.Version()
	return Version{Major: major, Minor: minor, Patch: patch}
}

// Revision returns the native source revision string; empty when unknown.
func Revision() string {
	return backend.Revision()
}
