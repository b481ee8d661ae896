package joystick

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/sdltest"
)

func TestGUIDRoundTrip(t *testing.T) {
	g := GUID{0x03, 0x00, 0x00, 0x00, 0x5e, 0x04, 0x00, 0x00, 0x8e, 0x02, 0x00, 0x00, 0x14, 0x01, 0x00, 0x00}
	s := g.String()
	assert.Equal(t, "030000005e0400008e02000014010000", s)

	back, err := ParseGUID(s)
	require.NoError(t, err)
	assert.Equal(t, g, back)

	upper, err := ParseGUID(strings.ToUpper(s))
	require.NoError(t, err)
	assert.Equal(t, g, upper)
	assert.True(t, GUID{}.IsZero())
}

func TestParseGUIDRejects(t *testing.T) {
	for _, in := range []string{"", "abc", strings.Repeat("zz", 16), strings.Repeat("0", 33)} {
		_, err := ParseGUID(in)
		assert.ErrorIs(t, err, sdl.ErrInvalidArgument, in)
	}
}

func TestHatBits(t *testing.T) {
	assert.Equal(t, uint8(0x03), HatRightUp)
	assert.Equal(t, uint8(0x0c), HatLeftDown)
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "flight-stick", TypeFlightStick.String())
	assert.Equal(t, "unknown", Type(42).String())
	assert.Equal(t, "wireless", ConnectionWireless.String())
	assert.Equal(t, "invalid", ConnectionInvalid.String())
}

func TestZeroHandles(t *testing.T) {
	_, err := Open(0)
	assert.ErrorIs(t, err, sdl.ErrInvalidHandle)
	_, err = FromID(0)
	assert.ErrorIs(t, err, sdl.ErrInvalidHandle)
	_, err = NameForID(0)
	assert.ErrorIs(t, err, sdl.ErrInvalidHandle)
	assert.ErrorIs(t, DetachVirtual(0), sdl.ErrInvalidHandle)
	assert.Equal(t, -1, PlayerIndexForID(0))
	assert.True(t, GUIDForID(0).IsZero())

	var j *Joystick
	_, err = j.Name()
	assert.ErrorIs(t, err, sdl.ErrInvalidHandle)
	_, err = j.Axis(0)
	assert.ErrorIs(t, err, sdl.ErrInvalidHandle)
	assert.ErrorIs(t, j.Rumble(1, 1, 10), sdl.ErrInvalidHandle)
	assert.False(t, j.Connected())
	assert.Equal(t, ConnectionInvalid, j.ConnectionState())
	j.Close()

	closed := &Joystick{}
	assert.ErrorIs(t, closed.SetVirtualHat(0, HatUp), sdl.ErrInvalidHandle)
}

func TestAttachVirtualRejectsType(t *testing.T) {
	_, err := AttachVirtual(VirtualDesc{Type: Type(99)})
	assert.ErrorIs(t, err, sdl.ErrInvalidArgument)
}

func TestVirtualJoystick(t *testing.T) {
	sdltest.Init(t, uint32(sdl.InitJoystick))

	id, err := AttachVirtual(VirtualDesc{
		Type:       TypeGamepad,
		VendorID:   0x1234,
		ProductID:  0x5678,
		NumAxes:    2,
		NumButtons: 4,
		NumHats:    1,
		Name:       "test pad",
	})
	require.NoError(t, err)
	defer func() { require.NoError(t, DetachVirtual(id)) }()

	assert.True(t, IsVirtual(id))
	assert.Equal(t, uint16(0x1234), VendorForID(id))

	j, err := Open(id)
	require.NoError(t, err)
	defer j.Close()

	name, err := j.Name()
	require.NoError(t, err)
	assert.Equal(t, "test pad", name)

	axes, err := j.NumAxes()
	require.NoError(t, err)
	assert.Equal(t, 2, axes)

	require.NoError(t, j.SetVirtualAxis(1, 1000))
	require.NoError(t, j.SetVirtualButton(3, true))
	require.NoError(t, j.SetVirtualHat(0, HatLeftUp))
	assert.ErrorIs(t, j.SetVirtualHat(0, 0x10), sdl.ErrInvalidArgument)
	Update()

	v, err := j.Axis(1)
	require.NoError(t, err)
	assert.Equal(t, int16(1000), v)
	down, err := j.Button(3)
	require.NoError(t, err)
	assert.True(t, down)
	hat, err := j.Hat(0)
	require.NoError(t, err)
	assert.Equal(t, HatLeftUp, hat)

	got, err := j.ID()
	require.NoError(t, err)
	assert.Equal(t, id, got)

	same, err := FromID(id)
	require.NoError(t, err)
	assert.Equal(t, j.Handle(), same.Handle())
}
