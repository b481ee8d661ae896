package storage

import (
	"context"
	"errors"
	"io/fs"
	"math"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/filesystem"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/backend"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/sdltest"
)

func TestFSStorageAdapter(t *testing.T) {
	mem := afero.NewMemMapFs()
	s := &fsStorage{fs: mem}

	require.NoError(t, s.Mkdir("saves/slot1"))
	require.NoError(t, s.WriteFile("saves/slot1/game.sav", []byte("level=3")))
	require.NoError(t, s.Copy("saves/slot1/game.sav", "saves/backup.sav"))
	require.NoError(t, s.Rename("saves/backup.sav", "saves/old.sav"))

	info, err := s.Info("saves/slot1/game.sav")
	require.NoError(t, err)
	assert.Equal(t, int(filesystem.PathFile), info.Type)
	assert.Equal(t, uint64(7), info.Size)

	dst := make([]byte, info.Size)
	require.NoError(t, s.ReadFile("saves/slot1/game.sav", dst))
	assert.Equal(t, "level=3", string(dst))

	var names []string
	require.NoError(t, s.Enumerate("saves", func(dir, name string) backend.EnumerationResult {
		assert.Equal(t, "saves", dir)
		names = append(names, name)
		return backend.EnumContinue
	}))
	assert.ElementsMatch(t, []string{"slot1", "old.sav"}, names)

	err = s.Enumerate("saves", func(string, string) backend.EnumerationResult { return backend.EnumFailure })
	assert.Error(t, err)

	require.NoError(t, s.Remove("saves/old.sav"))
	_, err = s.Info("saves/old.sav")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	assert.True(t, s.Ready())
	assert.Equal(t, uint64(math.MaxUint64), s.SpaceRemaining())
}

func TestFSStorageReadFileSizeMismatch(t *testing.T) {
	mem := afero.NewMemMapFs()
	s := &fsStorage{fs: mem}
	require.NoError(t, s.WriteFile("notes.txt", []byte("0123456789")))

	short := make([]byte, 4)
	err := s.ReadFile("notes.txt", short)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "10 bytes")
	assert.Equal(t, make([]byte, 4), short)

	long := make([]byte, 16)
	assert.Error(t, s.ReadFile("notes.txt", long))

	exact := make([]byte, 10)
	require.NoError(t, s.ReadFile("notes.txt", exact))
	assert.Equal(t, "0123456789", string(exact))
}

func TestValidation(t *testing.T) {
	_, err := OpenFS(nil)
	assert.ErrorIs(t, err, sdl.ErrInvalidArgument)
	_, err = OpenUser("org", "", 0)
	assert.ErrorIs(t, err, sdl.ErrInvalidArgument)

	var s *Storage
	assert.False(t, s.Ready())
	assert.ErrorIs(t, s.WaitReady(context.Background()), sdl.ErrInvalidHandle)
	_, err = s.ReadFile("x")
	assert.ErrorIs(t, err, sdl.ErrInvalidHandle)
	assert.NoError(t, s.Close())
}

func TestOpenFS(t *testing.T) {
	sdltest.RequireBuilt(t)

	mem := afero.NewMemMapFs()
	st, err := OpenFS(mem)
	require.NoError(t, err)
	defer st.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, st.WaitReady(ctx))

	require.NoError(t, st.CreateDirectory("cfg"))
	require.NoError(t, st.WriteFile("cfg/settings.toml", []byte("volume = 7\n")))

	got, err := st.ReadFile("cfg/settings.toml")
	require.NoError(t, err)
	assert.Equal(t, "volume = 7\n", string(got))

	raw, err := afero.ReadFile(mem, "/cfg/settings.toml")
	require.NoError(t, err)
	assert.Equal(t, got, raw)

	info, err := st.PathInfo("cfg")
	require.NoError(t, err)
	assert.Equal(t, filesystem.PathDirectory, info.Type)

	require.NoError(t, st.Copy("cfg/settings.toml", "cfg/settings.bak"))
	matches, err := st.Glob("cfg", "*.toml", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"settings.toml"}, matches)

	stop := errors.New("stop")
	err = st.Enumerate("cfg", func(string, string) error { return stop })
	assert.ErrorIs(t, err, stop)

	require.NoError(t, st.Remove("cfg/settings.bak"))
	assert.Positive(t, st.SpaceRemaining())
}

func TestOpenFileStorage(t *testing.T) {
	sdltest.RequireBuilt(t)

	st, err := OpenFile(t.TempDir())
	require.NoError(t, err)
	defer st.Close()
	require.True(t, st.Ready())

	require.NoError(t, st.WriteFile("a.bin", []byte{1, 2}))
	n, err := st.FileSize("a.bin")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), n)
}
