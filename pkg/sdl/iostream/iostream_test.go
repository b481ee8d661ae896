package iostream

import (
	"bytes"
	"io"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/sdltest"
)

func TestValidation(t *testing.T) {
	_, err := FromMem(nil)
	assert.ErrorIs(t, err, sdl.ErrInvalidArgument)
	_, err = FromConstMem([]byte{})
	assert.ErrorIs(t, err, sdl.ErrInvalidArgument)
	_, err = FromFile("", "rb")
	assert.ErrorIs(t, err, sdl.ErrInvalidArgument)
	_, err = FromReadWriteSeeker(nil)
	assert.ErrorIs(t, err, sdl.ErrInvalidArgument)
	_, err = LoadFile("")
	assert.ErrorIs(t, err, sdl.ErrInvalidArgument)

	var s *Stream
	_, err = s.Read(make([]byte, 1))
	assert.ErrorIs(t, err, sdl.ErrInvalidHandle)
	_, err = s.ReadU32LE()
	assert.ErrorIs(t, err, sdl.ErrInvalidHandle)
	assert.Equal(t, StatusError, s.Status())
	assert.NoError(t, s.Close())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "eof", StatusEOF.String())
	assert.Equal(t, "status(42)", Status(42).String())
}

func TestConstMemReadToEOF(t *testing.T) {
	sdltest.RequireBuilt(t)

	s, err := FromConstMem([]byte("hello, world"))
	require.NoError(t, err)
	defer s.Close()

	size, err := s.Size()
	require.NoError(t, err)
	assert.Equal(t, int64(12), size)

	got, err := io.ReadAll(s)
	require.NoError(t, err)
	assert.Equal(t, "hello, world", string(got))

	n, err := s.Read(make([]byte, 4))
	assert.Zero(t, n)
	assert.ErrorIs(t, err, io.EOF)

	pos, err := s.Seek(7, io.SeekStart)
	require.NoError(t, err)
	assert.Equal(t, int64(7), pos)
	rest, err := s.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, "world", string(rest))
}

func TestDynamicMemEndian(t *testing.T) {
	sdltest.RequireBuilt(t)

	s, err := FromDynamicMem()
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.WriteU8(0x01))
	require.NoError(t, s.WriteU16LE(0x0302))
	require.NoError(t, s.WriteU32BE(0x04050607))
	require.NoError(t, s.WriteU64LE(0x0f0e0d0c0b0a0908))

	b, err := s.Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}, b)

	_, err = s.Seek(0, io.SeekStart)
	require.NoError(t, err)
	u8, err := s.ReadU8()
	require.NoError(t, err)
	assert.Equal(t, uint8(1), u8)
	u16, err := s.ReadU16LE()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0302), u16)
	u32, err := s.ReadU32BE()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x04050607), u32)
	u64, err := s.ReadU64LE()
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0f0e0d0c0b0a0908), u64)

	_, err = s.ReadU16BE()
	assert.ErrorIs(t, err, io.EOF)
}

func TestFixedMemRejectsGrowth(t *testing.T) {
	sdltest.RequireBuilt(t)

	s, err := FromMem(make([]byte, 4))
	require.NoError(t, err)
	defer s.Close()

	n, err := s.Write([]byte("abcdef"))
	assert.Equal(t, 4, n)
	assert.Error(t, err)
}

func TestReadWriteSeekerBackedStream(t *testing.T) {
	sdltest.RequireBuilt(t)

	fs := afero.NewMemMapFs()
	f, err := fs.Create("/data.bin")
	require.NoError(t, err)

	s, err := FromReadWriteSeeker(f)
	require.NoError(t, err)

	_, err = s.Write([]byte("native through go"))
	require.NoError(t, err)
	require.NoError(t, s.WriteU32LE(0xdeadbeef))
	require.NoError(t, s.Flush())

	size, err := s.Size()
	require.NoError(t, err)
	assert.Equal(t, int64(21), size)

	_, err = s.Seek(0, io.SeekStart)
	require.NoError(t, err)
	head := make([]byte, 6)
	_, err = io.ReadFull(s, head)
	require.NoError(t, err)
	assert.Equal(t, "native", string(head))
	require.NoError(t, s.Close())

	raw, err := afero.ReadFile(fs, "/data.bin")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xef, 0xbe, 0xad, 0xde}, raw[17:])
}

func TestReadSeekerIsReadOnly(t *testing.T) {
	sdltest.RequireBuilt(t)

	s, err := FromReadSeeker(bytes.NewReader([]byte("abc")))
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Write([]byte("x"))
	assert.Error(t, err)
	assert.Equal(t, StatusReadOnly, s.Status())

	got, err := io.ReadAll(s)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

type closeTracker struct {
	*bytes.Reader
	closed *atomic.Bool
}

func (c closeTracker) Close() error {
	c.closed.Store(true)
	return nil
}

func TestDroppedStreamIsClosed(t *testing.T) {
	sdltest.RequireBuilt(t)

	var closed atomic.Bool
	func() {
		s, err := FromReadSeeker(closeTracker{Reader: bytes.NewReader([]byte("abc")), closed: &closed})
		require.NoError(t, err)
		_, err = s.Size()
		require.NoError(t, err)
	}()

	assert.Eventually(t, func() bool {
		runtime.GC()
		return closed.Load()
	}, 2*time.Second, 10*time.Millisecond)
}

func TestCloseTwice(t *testing.T) {
	sdltest.RequireBuilt(t)

	s, err := FromMem([]byte("xyz"))
	require.NoError(t, err)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
	_, err = s.Tell()
	assert.ErrorIs(t, err, sdl.ErrInvalidHandle)
}

func TestLoadSaveFile(t *testing.T) {
	sdltest.RequireBuilt(t)

	path := filepath.Join(t.TempDir(), "blob")
	require.NoError(t, SaveFile(path, []byte{1, 2, 3}))
	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, got)

	s, err := FromFile(path, "rb")
	require.NoError(t, err)
	defer s.Close()
	b, err := s.ReadU8()
	require.NoError(t, err)
	assert.Equal(t, uint8(1), b)
}
