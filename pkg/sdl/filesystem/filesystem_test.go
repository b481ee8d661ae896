package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/backend"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/sdltest"
)

func TestInfoConversion(t *testing.T) {
	mod := time.Unix(1700000000, 42)
	info := PathInfo{Type: PathFile, Size: 10, ModifyTime: mod}
	n := info.Native()
	assert.Equal(t, int64(0), n.CreateTime)
	assert.Equal(t, mod.UnixNano(), n.ModifyTime)

	back := InfoFromNative(n)
	assert.True(t, back.CreateTime.IsZero())
	assert.True(t, back.ModifyTime.Equal(mod))
	assert.Equal(t, PathFile, back.Type)
}

func TestInfoFromFileInfo(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/f.txt", []byte("abc"), 0o644))
	require.NoError(t, mem.Mkdir("/d", 0o755))

	fi, err := mem.Stat("/f.txt")
	require.NoError(t, err)
	info := InfoFromFileInfo(fi)
	assert.Equal(t, PathFile, info.Type)
	assert.Equal(t, uint64(3), info.Size)

	di, err := mem.Stat("/d")
	require.NoError(t, err)
	assert.Equal(t, PathDirectory, InfoFromFileInfo(di).Type)
}

func TestEnumerator(t *testing.T) {
	var failed error
	boom := errors.New("boom")
	fn := Enumerator(func(dir, name string) error {
		switch name {
		case "stop":
			return fs.SkipAll
		case "bad":
			return boom
		}
		return nil
	}, &failed)

	assert.Equal(t, backend.EnumContinue, fn("/", "a"))
	assert.Equal(t, backend.EnumSuccess, fn("/", "stop"))
	assert.NoError(t, failed)
	assert.Equal(t, backend.EnumFailure, fn("/", "bad"))
	assert.ErrorIs(t, failed, boom)
}

func TestValidation(t *testing.T) {
	_, err := UserFolder(Folder(99))
	assert.ErrorIs(t, err, sdl.ErrInvalidArgument)
	_, err = PrefPath("org", "")
	assert.ErrorIs(t, err, sdl.ErrInvalidArgument)
	assert.ErrorIs(t, CopyFile("a", ""), sdl.ErrInvalidArgument)
	assert.ErrorIs(t, Enumerate("/", nil), sdl.ErrInvalidArgument)
}

func TestNativeOperations(t *testing.T) {
	sdltest.RequireBuilt(t)

	root := t.TempDir()
	dir := filepath.Join(root, "a", "b")
	require.NoError(t, CreateDirectory(dir))

	file := filepath.Join(dir, "one.txt")
	require.NoError(t, os.WriteFile(file, []byte("1"), 0o600))
	require.NoError(t, CopyFile(file, filepath.Join(dir, "two.txt")))
	require.NoError(t, RenamePath(filepath.Join(dir, "two.txt"), filepath.Join(dir, "three.log")))

	info, err := Info(file)
	require.NoError(t, err)
	assert.Equal(t, PathFile, info.Type)
	assert.Equal(t, uint64(1), info.Size)

	var names []string
	require.NoError(t, Enumerate(dir, func(_, name string) error {
		names = append(names, name)
		return nil
	}))
	assert.ElementsMatch(t, []string{"one.txt", "three.log"}, names)

	matches, err := Glob(dir, "*.TXT", GlobCaseInsensitive)
	require.NoError(t, err)
	assert.Equal(t, []string{"one.txt"}, matches)

	stop := errors.New("stop")
	assert.ErrorIs(t, Enumerate(dir, func(string, string) error { return stop }), stop)

	require.NoError(t, RemovePath(file))
	_, err = Info(file)
	assert.Error(t, err)

	cwd, err := CurrentDirectory()
	require.NoError(t, err)
	assert.NotEmpty(t, cwd)
}
