package iostream

import (
	"io"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/backend"
)

// readErr turns a failed fixed-size read at end of stream into io.EOF or
// io.ErrUnexpectedEOF.
func (s *Stream) readErr(err error, start int64) error {
	if Status(backend.GetIOStatus(s.s)) != StatusEOF {
		return sdl.RemapError(err)
	}
	if pos, perr := backend.TellIO(s.s); perr == nil && pos > start {
		return io.ErrUnexpectedEOF
	}
	return io.EOF
}

func (s *Stream) tell() int64 {
	pos, err := backend.TellIO(s.s)
	if err != nil {
		return -1
	}
	return pos
}

func (s *Stream) ReadU8() (uint8, error) {
	if !s.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	start := s.tell()
	v, err := backend.ReadU8(s.s)
	if err != nil {
		return 0, s.readErr(err, start)
	}
	return v, nil
}

func (s *Stream) readU16(big bool) (uint16, error) {
	if !s.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	start := s.tell()
	v, err := backend.ReadU16(s.s, big)
	if err != nil {
		return 0, s.readErr(err, start)
	}
	return v, nil
}

func (s *Stream) readU32(big bool) (uint32, error) {
	if !s.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	start := s.tell()
	v, err := backend.ReadU32(s.s, big)
	if err != nil {
		return 0, s.readErr(err, start)
	}
	return v, nil
}

func (s *Stream) readU64(big bool) (uint64, error) {
	if !s.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	start := s.tell()
	v, err := backend.ReadU64(s.s, big)
	if err != nil {
		return 0, s.readErr(err, start)
	}
	return v, nil
}

func (s *Stream) ReadU16LE() (uint16, error) { return s.readU16(false) }
func (s *Stream) ReadU16BE() (uint16, error) { return s.readU16(true) }
func (s *Stream) ReadU32LE() (uint32, error) { return s.readU32(false) }
func (s *Stream) ReadU32BE() (uint32, error) { return s.readU32(true) }
func (s *Stream) ReadU64LE() (uint64, error) { return s.readU64(false) }
func (s *Stream) ReadU64BE() (uint64, error) { return s.readU64(true) }

func (s *Stream) WriteU8(v uint8) error {
	if !s.valid() {
		return sdl.ErrInvalidHandle
	}
	return sdl.RemapError(backend.WriteU8(s.s, v))
}

func (s *Stream) writeU16(v uint16, big bool) error {
	if !s.valid() {
		return sdl.ErrInvalidHandle
	}
	return sdl.RemapError(backend.WriteU16(s.s, v, big))
}

func (s *Stream) writeU32(v uint32, big bool) error {
	if !s.valid() {
		return sdl.ErrInvalidHandle
	}
	return sdl.RemapError(backend.WriteU32(s.s, v, big))
}

func (s *Stream) writeU64(v uint64, big bool) error {
	if !s.valid() {
		return sdl.ErrInvalidHandle
	}
	return sdl.RemapError(backend.WriteU64(s.s, v, big))
}

func (s *Stream) WriteU16LE(v uint16) error { return s.writeU16(v, false) }
func (s *Stream) WriteU16BE(v uint16) error { return s.writeU16(v, true) }
func (s *Stream) WriteU32LE(v uint32) error { return s.writeU32(v, false) }
func (s *Stream) WriteU32BE(v uint32) error { return s.writeU32(v, true) }
func (s *Stream) WriteU64LE(v uint64) error { return s.writeU64(v, false) }
func (s *Stream) WriteU64BE(v uint64) error { return s.writeU64(v, true) }
