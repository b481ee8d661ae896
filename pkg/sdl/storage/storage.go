// Package storage reads and writes application title data and user save
// data through native storage containers.
//
// Containers may need time to mount; check Ready or call WaitReady before
// any other operation. OpenFS serves a container from an afero.Fs.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/filesystem"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/backend"
)

// readyPoll is the WaitReady polling interval.
const readyPoll = 10 * time.Millisecond

type Storage struct {
	s backend.Storage
}

func wrap(s backend.Storage, err error) (*Storage, error) {
	if err != nil {
		return nil, sdl.RemapError(err)
	}
	return &Storage{s: s}, nil
}

// OpenTitle opens the read-only application data. override replaces the
// platform location when not empty.
func OpenTitle(override string, props sdl.Properties) (*Storage, error) {
	return wrap(backend.OpenTitleStorage(override, uint32(props)))
}

// OpenUser opens the writable save data of org/app.
func OpenUser(org, app string, props sdl.Properties) (*Storage, error) {
	if app == "" {
		return nil, fmt.Errorf("%w: empty app", sdl.ErrInvalidArgument)
	}
	return wrap(backend.OpenUserStorage(org, app, uint32(props)))
}

// OpenFile opens a container rooted at a local directory.
func OpenFile(path string) (*Storage, error) {
	return wrap(backend.OpenFileStorage(path))
}

func (s *Storage) valid() bool { return s != nil && s.s != nil }

// Close flushes and closes the container.
func (s *Storage) Close() error {
	if !s.valid() {
		return nil
	}
	err := backend.CloseStorage(s.s)
	s.s = nil
	return sdl.RemapError(err)
}

func (s *Storage) Ready() bool {
	return s.valid() && backend.StorageReady(s.s)
}

// WaitReady polls Ready until it succeeds or ctx is done.
func (s *Storage) WaitReady(ctx context.Context) error {
	if !s.valid() {
		return sdl.ErrInvalidHandle
	}
	t := time.NewTicker(readyPoll)
	defer t.Stop()
	for !backend.StorageReady(s.s) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
	return nil
}

func checkPath(p string) error {
	if p == "" {
		return fmt.Errorf("%w: empty path", sdl.ErrInvalidArgument)
	}
	return nil
}

func (s *Storage) FileSize(path string) (uint64, error) {
	if !s.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	if err := checkPath(path); err != nil {
		return 0, err
	}
	n, err := backend.GetStorageFileSize(s.s, path)
	return n, sdl.RemapError(err)
}

// ReadFile reads the whole file at path.
func (s *Storage) ReadFile(path string) ([]byte, error) {
	size, err := s.FileSize(path)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, size)
	if err := backend.ReadStorageFile(s.s, path, buf); err != nil {
		return nil, sdl.RemapError(err)
	}
	return buf, nil
}

// WriteFile replaces the file at path with data.
func (s *Storage) WriteFile(path string, data []byte) error {
	if !s.valid() {
		return sdl.ErrInvalidHandle
	}
	if err := checkPath(path); err != nil {
		return err
	}
	return sdl.RemapError(backend.WriteStorageFile(s.s, path, data))
}

func (s *Storage) CreateDirectory(path string) error {
	if !s.valid() {
		return sdl.ErrInvalidHandle
	}
	if err := checkPath(path); err != nil {
		return err
	}
	return sdl.RemapError(backend.CreateStorageDirectory(s.s, path))
}

// Enumerate calls fn for each entry of the directory at path; "" is the
// container root.
func (s *Storage) Enumerate(path string, fn filesystem.WalkFunc) error {
	if !s.valid() {
		return sdl.ErrInvalidHandle
	}
	if fn == nil {
		return fmt.Errorf("%w: nil callback", sdl.ErrInvalidArgument)
	}
	var failed error
	err := backend.EnumerateStorageDirectory(s.s, path, filesystem.Enumerator(fn, &failed))
	if failed != nil {
		return failed
	}
	return sdl.RemapError(err)
}

func (s *Storage) Remove(path string) error {
	if !s.valid() {
		return sdl.ErrInvalidHandle
	}
	if err := checkPath(path); err != nil {
		return err
	}
	return sdl.RemapError(backend.RemoveStoragePath(s.s, path))
}

func (s *Storage) Rename(oldpath, newpath string) error {
	if !s.valid() {
		return sdl.ErrInvalidHandle
	}
	if err := checkPath(oldpath); err != nil {
		return err
	}
	if err := checkPath(newpath); err != nil {
		return err
	}
	return sdl.RemapError(backend.RenameStoragePath(s.s, oldpath, newpath))
}

func (s *Storage) Copy(oldpath, newpath string) error {
	if !s.valid() {
		return sdl.ErrInvalidHandle
	}
	if err := checkPath(oldpath); err != nil {
		return err
	}
	if err := checkPath(newpath); err != nil {
		return err
	}
	return sdl.RemapError(backend.CopyStorageFile(s.s, oldpath, newpath))
}

func (s *Storage) PathInfo(path string) (filesystem.PathInfo, error) {
	if !s.valid() {
		return filesystem.PathInfo{}, sdl.ErrInvalidHandle
	}
	if err := checkPath(path); err != nil {
		return filesystem.PathInfo{}, err
	}
	info, err := backend.GetStoragePathInfo(s.s, path)
	if err != nil {
		return filesystem.PathInfo{}, sdl.RemapError(err)
	}
	return filesystem.InfoFromNative(info), nil
}

// SpaceRemaining returns the free bytes in the container.
func (s *Storage) SpaceRemaining() uint64 {
	if !s.valid() {
		return 0
	}
	return backend.GetStorageSpaceRemaining(s.s)
}

// Glob lists entries under path matching pattern.
func (s *Storage) Glob(path, pattern string, flags filesystem.GlobFlags) ([]string, error) {
	if !s.valid() {
		return nil, sdl.ErrInvalidHandle
	}
	out, err := backend.GlobStorageDirectory(s.s, path, pattern, uint32(flags))
	return out, sdl.RemapError(err)
}
