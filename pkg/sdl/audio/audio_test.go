package audio

import (
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/sdltest"
)

func TestFormatBits(t *testing.T) {
	assert.Equal(t, 16, FormatS16BE.BitSize())
	assert.Equal(t, 2, FormatS16BE.ByteSize())
	assert.True(t, FormatS16BE.BigEndian())
	assert.True(t, FormatS16BE.IsSigned())
	assert.False(t, FormatS16BE.IsFloat())

	assert.True(t, FormatF32LE.IsFloat())
	assert.False(t, FormatF32LE.BigEndian())
	assert.Equal(t, 4, FormatF32LE.ByteSize())

	assert.False(t, FormatU8.IsSigned())
	assert.Equal(t, byte(0x80), FormatU8.Silence())
	assert.Equal(t, byte(0), FormatS32LE.Silence())

	assert.Equal(t, "F32BE", FormatF32BE.String())
	assert.Equal(t, "format(0x1234)", Format(0x1234).String())
}

func TestSpecValidate(t *testing.T) {
	ok := Spec{Format: FormatS16LE, Channels: 2, Freq: 48000}
	require.NoError(t, ok.Validate())
	assert.Equal(t, 4, ok.FrameSize())

	for _, bad := range []Spec{
		{Format: Format(0x1234), Channels: 2, Freq: 48000},
		{Format: FormatS16LE, Channels: 0, Freq: 48000},
		{Format: FormatS16LE, Channels: 9, Freq: 48000},
		{Format: FormatS16LE, Channels: 2, Freq: 0},
	} {
		assert.ErrorIs(t, bad.Validate(), sdl.ErrInvalidArgument, "%+v", bad)
	}
}

func TestZeroHandles(t *testing.T) {
	_, err := DeviceName(0)
	assert.ErrorIs(t, err, sdl.ErrInvalidHandle)
	_, err = OpenDevice(0, nil)
	assert.ErrorIs(t, err, sdl.ErrInvalidHandle)
	assert.False(t, DevicePaused(0))

	var s *Stream
	_, err = s.Write([]byte{0})
	assert.ErrorIs(t, err, sdl.ErrInvalidHandle)
	assert.ErrorIs(t, s.Bind(1), sdl.ErrInvalidHandle)
	s.Destroy()
}

func TestStreamConversion(t *testing.T) {
	sdltest.RequireBuilt(t)

	src := Spec{Format: FormatS16LE, Channels: 1, Freq: 8000}
	dst := Spec{Format: FormatS32LE, Channels: 1, Freq: 8000}
	s, err := NewStream(src, dst)
	require.NoError(t, err)
	defer s.Destroy()

	gotSrc, gotDst, err := s.Format()
	require.NoError(t, err)
	assert.Equal(t, src, gotSrc)
	assert.Equal(t, dst, gotDst)

	in := make([]byte, 2*4)
	for i, v := range []int16{0, 1000, -1000, 32767} {
		binary.LittleEndian.PutUint16(in[2*i:], uint16(v))
	}
	_, err = s.Write(in)
	require.NoError(t, err)
	require.NoError(t, s.Flush())

	out, err := io.ReadAll(s)
	require.NoError(t, err)
	require.Len(t, out, 16)
	assert.Equal(t, int32(1000)<<16, int32(binary.LittleEndian.Uint32(out[4:])))
}

func TestDummyDevice(t *testing.T) {
	sdltest.Init(t, uint32(sdl.InitAudio))

	assert.Equal(t, "dummy", CurrentDriver())
	s, err := OpenDeviceStream(DefaultPlayback, Spec{Format: FormatF32LE, Channels: 2, Freq: 44100})
	require.NoError(t, err)
	defer s.Destroy()

	dev := s.Device()
	require.NotZero(t, dev)
	assert.True(t, DevicePaused(dev))
	require.NoError(t, s.ResumeDevice())
	assert.False(t, DevicePaused(dev))

	_, err = s.Write(make([]byte, 8*64))
	require.NoError(t, err)
}
