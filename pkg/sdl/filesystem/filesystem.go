// Package filesystem queries well-known directories and manipulates paths
// through the native file layer.
package filesystem

import (
	"fmt"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/backend"
)

// Folder mirrors SDL_Folder.
type Folder int

const (
	FolderHome Folder = iota
	FolderDesktop
	FolderDocuments
	FolderDownloads
	FolderMusic
	FolderPictures
	FolderPublicShare
	FolderSavedGames
	FolderScreenshots
	FolderTemplates
	FolderVideos
	folderCount
)

func required(name, v string) error {
	if v == "" {
		return fmt.Errorf("%w: empty %s", sdl.ErrInvalidArgument, name)
	}
	return nil
}

// BasePath returns the directory the application was run from, with a
// trailing separator.
func BasePath() (string, error) {
	p, err := backend.GetBasePath()
	return p, sdl.RemapError(err)
}

// PrefPath returns, creating it if needed, the per-user writable directory
// for org and app.
func PrefPath(org, app string) (string, error) {
	if err := required("app", app); err != nil {
		return "", err
	}
	p, err := backend.GetPrefPath(org, app)
	return p, sdl.RemapError(err)
}

func UserFolder(f Folder) (string, error) {
	if f < 0 || f >= folderCount {
		return "", fmt.Errorf("%w: folder %d", sdl.ErrInvalidArgument, f)
	}
	p, err := backend.GetUserFolder(int(f))
	return p, sdl.RemapError(err)
}

func CurrentDirectory() (string, error) {
	p, err := backend.GetCurrentDirectory()
	return p, sdl.RemapError(err)
}

// CreateDirectory creates path and any missing parents.
func CreateDirectory(path string) error {
	if err := required("path", path); err != nil {
		return err
	}
	return sdl.RemapError(backend.CreateDirectory(path))
}

// Enumerate calls fn for each entry of the directory at path.
func Enumerate(path string, fn WalkFunc) error {
	if err := required("path", path); err != nil {
		return err
	}
	if fn == nil {
		return fmt.Errorf("%w: nil callback", sdl.ErrInvalidArgument)
	}
	var failed error
	err := backend.EnumerateDirectory(path, Enumerator(fn, &failed))
	if failed != nil {
		return failed
	}
	return sdl.RemapError(err)
}

// RemovePath deletes a file or an empty directory.
func RemovePath(path string) error {
	if err := required("path", path); err != nil {
		return err
	}
	return sdl.RemapError(backend.RemovePath(path))
}

func RenamePath(oldpath, newpath string) error {
	if err := required("old path", oldpath); err != nil {
		return err
	}
	if err := required("new path", newpath); err != nil {
		return err
	}
	return sdl.RemapError(backend.RenamePath(oldpath, newpath))
}

func CopyFile(oldpath, newpath string) error {
	if err := required("old path", oldpath); err != nil {
		return err
	}
	if err := required("new path", newpath); err != nil {
		return err
	}
	return sdl.RemapError(backend.CopyFile(oldpath, newpath))
}

func Info(path string) (PathInfo, error) {
	if err := required("path", path); err != nil {
		return PathInfo{}, err
	}
	p, err := backend.GetPathInfo(path)
	if err != nil {
		return PathInfo{}, sdl.RemapError(err)
	}
	return InfoFromNative(p), nil
}

// Glob lists entries under path matching pattern (* and ? wildcards; an
// empty pattern matches everything), relative to path.
func Glob(path, pattern string, flags GlobFlags) ([]string, error) {
	if err := required("path", path); err != nil {
		return nil, err
	}
	out, err := backend.GlobDirectory(path, pattern, uint32(flags))
	return out, sdl.RemapError(err)
}
