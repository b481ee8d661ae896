// Package iostream wraps native I/O streams as Go io interfaces.
//
// Streams over memory copy the caller's bytes into native memory that lives
// until Close. FromReadWriteSeeker goes the other way: it lets native code
// read and write through a Go value.
package iostream

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"unsafe"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/backend"
)

// Status mirrors SDL_IOStatus.
type Status int

const (
	StatusReady     = Status(backend.IOStatusReady)
	StatusError     = Status(backend.IOStatusError)
	StatusEOF       = Status(backend.IOStatusEOF)
	StatusNotReady  = Status(backend.IOStatusNotReady)
	StatusReadOnly  = Status(backend.IOStatusReadOnly)
	StatusWriteOnly = Status(backend.IOStatusWriteOnly)
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusError:
		return "error"
	case StatusEOF:
		return "eof"
	case StatusNotReady:
		return "not-ready"
	case StatusReadOnly:
		return "read-only"
	case StatusWriteOnly:
		return "write-only"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// ErrNotReady is returned when a non-blocking stream has no data or room.
var ErrNotReady = errors.New("iostream: stream not ready")

// Stream is an open native stream. It implements io.ReadWriteSeeker and
// io.Closer.
type Stream struct {
	s   backend.IOStream
	mem unsafe.Pointer
}

var (
	_ io.ReadWriteSeeker = (*Stream)(nil)
	_ io.Closer          = (*Stream)(nil)
)

// FromFile opens path with an fopen-style mode such as "rb" or "w+b".
func FromFile(path, mode string) (*Stream, error) {
	if path == "" || mode == "" {
		return nil, fmt.Errorf("%w: path and mode are required", sdl.ErrInvalidArgument)
	}
	s, err := backend.IOFromFile(path, mode)
	if err != nil {
		return nil, sdl.RemapError(err)
	}
	return newStream(s, nil), nil
}

// FromMem opens a fixed-size read/write stream over a copy of data. Writes
// past the end fail; use Bytes to read back what was written.
func FromMem(data []byte) (*Stream, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty buffer", sdl.ErrInvalidArgument)
	}
	s, mem, err := backend.IOFromMem(data)
	if err != nil {
		return nil, sdl.RemapError(err)
	}
	return newStream(s, mem), nil
}

// FromConstMem opens a read-only stream over a copy of data.
func FromConstMem(data []byte) (*Stream, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty buffer", sdl.ErrInvalidArgument)
	}
	s, mem, err := backend.IOFromConstMem(data)
	if err != nil {
		return nil, sdl.RemapError(err)
	}
	return newStream(s, mem), nil
}

// FromDynamicMem opens an empty stream that grows as it is written.
func FromDynamicMem() (*Stream, error) {
	s, err := backend.IOFromDynamicMem()
	if err != nil {
		return nil, sdl.RemapError(err)
	}
	return newStream(s, nil), nil
}

// newStream wraps s; streams dropped without Close are closed by a
// finalizer.
func newStream(s backend.IOStream, mem unsafe.Pointer) *Stream {
	st := &Stream{s: s, mem: mem}
	runtime.SetFinalizer(st, (*Stream).Close)
	return st
}

func (s *Stream) valid() bool { return s != nil && s.s != nil }

// Handle returns the native stream for other packages of the bindings.
func (s *Stream) Handle() backend.IOStream {
	if s == nil {
		return nil
	}
	return s.s
}

// Close flushes and closes the stream and releases any memory copy.
func (s *Stream) Close() error {
	if !s.valid() {
		return nil
	}
	err := backend.CloseIO(s.s)
	s.s = nil
	backend.FreeMem(s.mem)
	s.mem = nil
	runtime.SetFinalizer(s, nil)
	return sdl.RemapError(err)
}

func (s *Stream) Read(p []byte) (int, error) {
	if !s.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	defer runtime.KeepAlive(s)
	if len(p) == 0 {
		return 0, nil
	}
	n, st, err := backend.ReadIO(s.s, p)
	if err != nil {
		return n, sdl.RemapError(err)
	}
	if n == 0 {
		switch Status(st) {
		case StatusEOF:
			return 0, io.EOF
		case StatusNotReady:
			return 0, ErrNotReady
		case StatusWriteOnly:
			return 0, fmt.Errorf("iostream: read: stream is %s", Status(st))
		}
	}
	return n, nil
}

func (s *Stream) Write(p []byte) (int, error) {
	if !s.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	defer runtime.KeepAlive(s)
	n, st, err := backend.WriteIO(s.s, p)
	if err != nil {
		return n, sdl.RemapError(err)
	}
	if n < len(p) {
		if Status(st) == StatusNotReady {
			return n, ErrNotReady
		}
		return n, io.ErrShortWrite
	}
	return n, nil
}

// Seek uses the io.Seek* whence values, which match the native ones.
func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	if !s.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	defer runtime.KeepAlive(s)
	if whence < io.SeekStart || whence > io.SeekEnd {
		return 0, fmt.Errorf("%w: whence %d", sdl.ErrInvalidArgument, whence)
	}
	pos, err := backend.SeekIO(s.s, offset, whence)
	return pos, sdl.RemapError(err)
}

// Tell returns the current offset.
func (s *Stream) Tell() (int64, error) {
	if !s.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	defer runtime.KeepAlive(s)
	pos, err := backend.TellIO(s.s)
	return pos, sdl.RemapError(err)
}

// Size returns the stream size, or an error when it is unknown.
func (s *Stream) Size() (int64, error) {
	if !s.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	defer runtime.KeepAlive(s)
	n, err := backend.GetIOSize(s.s)
	return n, sdl.RemapError(err)
}

// Status reports the state left by the last read or write.
func (s *Stream) Status() Status {
	if !s.valid() {
		return StatusError
	}
	defer runtime.KeepAlive(s)
	return Status(backend.GetIOStatus(s.s))
}

func (s *Stream) Flush() error {
	if !s.valid() {
		return sdl.ErrInvalidHandle
	}
	defer runtime.KeepAlive(s)
	return sdl.RemapError(backend.FlushIO(s.s))
}

// Bytes returns a copy of everything written to a FromDynamicMem stream.
func (s *Stream) Bytes() ([]byte, error) {
	if !s.valid() {
		return nil, sdl.ErrInvalidHandle
	}
	defer runtime.KeepAlive(s)
	b, err := backend.DynamicMemBytes(s.s)
	return b, sdl.RemapError(err)
}

// LoadAll reads from the current position to the end. The stream stays
// open.
func (s *Stream) LoadAll() ([]byte, error) {
	if !s.valid() {
		return nil, sdl.ErrInvalidHandle
	}
	defer runtime.KeepAlive(s)
	b, err := backend.LoadFileIO(s.s, false)
	return b, sdl.RemapError(err)
}

// SaveAll writes data at the current position. The stream stays open.
func (s *Stream) SaveAll(data []byte) error {
	if !s.valid() {
		return sdl.ErrInvalidHandle
	}
	defer runtime.KeepAlive(s)
	return sdl.RemapError(backend.SaveFileIO(s.s, data, false))
}

// LoadFile reads a whole file through the native file layer.
func LoadFile(path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", sdl.ErrInvalidArgument)
	}
	b, err := backend.LoadFile(path)
	return b, sdl.RemapError(err)
}

// SaveFile replaces path with data.
func SaveFile(path string, data []byte) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", sdl.ErrInvalidArgument)
	}
	return sdl.RemapError(backend.SaveFile(path, data))
}
