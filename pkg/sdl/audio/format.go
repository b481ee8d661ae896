package audio

import (
	"fmt"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/backend"
)

// Format mirrors SDL_AudioFormat: the low byte is the sample bit size and
// the high bits flag float, big-endian and signed samples.
type Format uint16

const (
	FormatUnknown Format = 0x0000
	FormatU8      Format = 0x0008
	FormatS8      Format = 0x8008
	FormatS16LE   Format = 0x8010
	FormatS16BE   Format = 0x9010
	FormatS32LE   Format = 0x8020
	FormatS32BE   Format = 0x9020
	FormatF32LE   Format = 0x8120
	FormatF32BE   Format = 0x9120
)

const (
	maskBitSize   = 0x00FF
	maskFloat     = 1 << 8
	maskBigEndian = 1 << 12
	maskSigned    = 1 << 15
)

var formatNames = map[Format]string{
	FormatU8:    "U8",
	FormatS8:    "S8",
	FormatS16LE: "S16LE",
	FormatS16BE: "S16BE",
	FormatS32LE: "S32LE",
	FormatS32BE: "S32BE",
	FormatF32LE: "F32LE",
	FormatF32BE: "F32BE",
}

func (f Format) BitSize() int    { return int(f & maskBitSize) }
func (f Format) ByteSize() int   { return f.BitSize() / 8 }
func (f Format) IsFloat() bool   { return f&maskFloat != 0 }
func (f Format) IsInt() bool     { return !f.IsFloat() }
func (f Format) IsSigned() bool  { return f&maskSigned != 0 }
func (f Format) BigEndian() bool { return f&maskBigEndian != 0 }

// Known reports whether f is one of the defined sample formats.
func (f Format) Known() bool {
	_, ok := formatNames[f]
	return ok
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("format(0x%04x)", uint16(f))
}

// Silence returns the byte value that encodes silence in f.
func (f Format) Silence() byte {
	if f == FormatU8 {
		return 0x80
	}
	return 0
}

// NativeName is the name reported by the native library.
func (f Format) NativeName() string {
	return backend.GetAudioFormatName(uint16(f))
}

// Spec is a sample format, channel count and frame rate.
type Spec struct {
	Format   Format
	Channels int
	Freq     int
}

// FrameSize is the byte size of one sample frame across all channels.
func (s Spec) FrameSize() int {
	return s.Format.ByteSize() * s.Channels
}

// Validate rejects specs the native library would refuse.
func (s Spec) Validate() error {
	if !s.Format.Known() {
		return fmt.Errorf("%w: audio format %s", sdl.ErrInvalidArgument, s.Format)
	}
	if s.Channels < 1 || s.Channels > 8 {
		return fmt.Errorf("%w: %d channels outside [1, 8]", sdl.ErrInvalidArgument, s.Channels)
	}
	if s.Freq <= 0 {
		return fmt.Errorf("%w: frequency %d", sdl.ErrInvalidArgument, s.Freq)
	}
	return nil
}

func (s Spec) native() backend.AudioSpec {
	return backend.AudioSpec{Format: uint16(s.Format), Channels: s.Channels, Freq: s.Freq}
}

func specFrom(n backend.AudioSpec) Spec {
	return Spec{Format: Format(n.Format), Channels: n.Channels, Freq: n.Freq}
}
