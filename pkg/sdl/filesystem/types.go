package filesystem

import (
	"errors"
	"io/fs"
	"time"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/backend"
)

// PathType mirrors SDL_PathType.
type PathType int

const (
	PathNone PathType = iota
	PathFile
	PathDirectory
	PathOther
)

func (t PathType) String() string {
	switch t {
	case PathFile:
		return "file"
	case PathDirectory:
		return "directory"
	case PathOther:
		return "other"
	default:
		return "none"
	}
}

// PathInfo describes a file system entry. Zero times mean unknown.
type PathInfo struct {
	Type       PathType
	Size       uint64
	CreateTime time.Time
	ModifyTime time.Time
	AccessTime time.Time
}

func nsTime(ns int64) time.Time {
	if ns == 0 {
		return time.Time{}
	}
	return time.Unix(0, ns)
}

func timeNS(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}

// InfoFromNative converts the backend record. Storage shares it.
func InfoFromNative(p backend.PathInfo) PathInfo {
	return PathInfo{
		Type:       PathType(p.Type),
		Size:       p.Size,
		CreateTime: nsTime(p.CreateTime),
		ModifyTime: nsTime(p.ModifyTime),
		AccessTime: nsTime(p.AccessTime),
	}
}

// Native is the inverse of InfoFromNative.
func (p PathInfo) Native() backend.PathInfo {
	return backend.PathInfo{
		Type:       int(p.Type),
		Size:       p.Size,
		CreateTime: timeNS(p.CreateTime),
		ModifyTime: timeNS(p.ModifyTime),
		AccessTime: timeNS(p.AccessTime),
	}
}

// InfoFromFileInfo builds a PathInfo from a Go fs.FileInfo. Only the
// modification time is known.
func InfoFromFileInfo(fi fs.FileInfo) PathInfo {
	info := PathInfo{Type: PathOther, ModifyTime: fi.ModTime()}
	switch {
	case fi.Mode().IsRegular():
		info.Type = PathFile
		info.Size = uint64(fi.Size())
	case fi.IsDir():
		info.Type = PathDirectory
	}
	return info
}

// GlobFlags modify glob matching.
type GlobFlags uint32

const GlobCaseInsensitive GlobFlags = 1 << 0

// WalkFunc is called for each entry during enumeration. Returning
// fs.SkipAll stops the walk without error; any other error aborts it and is
// returned by the enumerating call.
type WalkFunc func(dir, name string) error

// Enumerator adapts fn for the backend, recording the first real error in
// *failed.
func Enumerator(fn WalkFunc, failed *error) backend.EnumerateFunc {
	return func(dir, name string) backend.EnumerationResult {
		err := fn(dir, name)
		switch {
		case err == nil:
			return backend.EnumContinue
		case errors.Is(err, fs.SkipAll):
			return backend.EnumSuccess
		default:
			*failed = err
			return backend.EnumFailure
		}
	}
}
