package storage

import (
	"fmt"
	"io"
	"math"
	"path"

	"github.com/spf13/afero"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/filesystem"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/backend"
)

// fsStorage serves native storage callbacks from an afero.Fs. Container
// paths are relative and "/" separated; they are rooted at "/" of the Fs.
type fsStorage struct {
	fs afero.Fs
}

func (f *fsStorage) abs(p string) string {
	return path.Join("/", p)
}

func (f *fsStorage) Close() error { return nil }

func (f *fsStorage) Ready() bool { return true }

func (f *fsStorage) Enumerate(dir string, fn backend.EnumerateFunc) error {
	entries, err := afero.ReadDir(f.fs, f.abs(dir))
	if err != nil {
		return err
	}
	for _, e := range entries {
		switch fn(dir, e.Name()) {
		case backend.EnumSuccess:
			return nil
		case backend.EnumFailure:
			return fmt.Errorf("storage: enumeration of %q aborted", dir)
		}
	}
	return nil
}

func (f *fsStorage) Info(p string) (backend.PathInfo, error) {
	fi, err := f.fs.Stat(f.abs(p))
	if err != nil {
		return backend.PathInfo{}, err
	}
	return filesystem.InfoFromFileInfo(fi).Native(), nil
}

// ReadFile fills dst exactly; the native side sizes it from Info. A file
// whose size no longer matches dst is an error rather than a partial read.
func (f *fsStorage) ReadFile(p string, dst []byte) error {
	file, err := f.fs.Open(f.abs(p))
	if err != nil {
		return err
	}
	defer file.Close()
	fi, err := file.Stat()
	if err != nil {
		return err
	}
	if fi.Size() != int64(len(dst)) {
		return fmt.Errorf("storage: %q is %d bytes, buffer holds %d", p, fi.Size(), len(dst))
	}
	_, err = io.ReadFull(file, dst)
	return err
}

func (f *fsStorage) WriteFile(p string, src []byte) error {
	return afero.WriteFile(f.fs, f.abs(p), src, 0o644)
}

func (f *fsStorage) Mkdir(p string) error {
	return f.fs.MkdirAll(f.abs(p), 0o755)
}

func (f *fsStorage) Remove(p string) error {
	return f.fs.Remove(f.abs(p))
}

func (f *fsStorage) Rename(oldpath, newpath string) error {
	return f.fs.Rename(f.abs(oldpath), f.abs(newpath))
}

func (f *fsStorage) Copy(oldpath, newpath string) error {
	src, err := f.fs.Open(f.abs(oldpath))
	if err != nil {
		return err
	}
	defer src.Close()
	dst, err := f.fs.Create(f.abs(newpath))
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}

// SpaceRemaining is unbounded: afero has no notion of capacity.
func (f *fsStorage) SpaceRemaining() uint64 {
	return math.MaxUint64
}

// OpenFS exposes fsys as a native storage container. Wrap a directory of
// the host with afero.NewBasePathFs to keep the container inside it.
func OpenFS(fsys afero.Fs) (*Storage, error) {
	if fsys == nil {
		return nil, fmt.Errorf("%w: nil filesystem", sdl.ErrInvalidArgument)
	}
	return wrap(backend.OpenStorage(&fsStorage{fs: fsys}))
}
