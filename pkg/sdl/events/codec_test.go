package events

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/backend"
)

func rawEvent(t Type, ts uint64) backend.Event {
	var ev backend.Event
	binary.LittleEndian.PutUint32(ev.Raw[0:], uint32(t))
	binary.LittleEndian.PutUint64(ev.Raw[8:], ts)
	return ev
}

func putF32(b []byte, v float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
}

func TestDecodeKeyboard(t *testing.T) {
	ev := rawEvent(KeyDown, 42)
	binary.LittleEndian.PutUint32(ev.Raw[16:], 7)
	binary.LittleEndian.PutUint32(ev.Raw[20:], 3)
	binary.LittleEndian.PutUint32(ev.Raw[24:], 4)
	binary.LittleEndian.PutUint32(ev.Raw[28:], 'a')
	binary.LittleEndian.PutUint16(ev.Raw[32:], 0x0001)
	ev.Raw[36] = 1
	ev.Raw[37] = 1

	got, ok := decode(ev).(KeyboardEvent)
	require.True(t, ok)
	assert.Equal(t, KeyDown, got.EventType())
	assert.Equal(t, uint64(42), got.EventTimestamp())
	assert.Equal(t, uint32(7), got.WindowID)
	assert.Equal(t, uint32(3), got.Which)
	assert.Equal(t, uint32(4), got.Scancode)
	assert.Equal(t, uint32('a'), got.Key)
	assert.Equal(t, uint16(1), got.Mod)
	assert.True(t, got.Down)
	assert.True(t, got.Repeat)
}

func TestDecodeMouseButton(t *testing.T) {
	ev := rawEvent(MouseButtonUp, 1)
	binary.LittleEndian.PutUint32(ev.Raw[16:], 2)
	ev.Raw[24] = 3
	ev.Raw[26] = 2
	putF32(ev.Raw[28:], 10.5)
	putF32(ev.Raw[32:], -4)

	got, ok := decode(ev).(MouseButtonEvent)
	require.True(t, ok)
	assert.Equal(t, uint8(3), got.Button)
	assert.False(t, got.Down)
	assert.Equal(t, uint8(2), got.Clicks)
	assert.Equal(t, float32(10.5), got.X)
	assert.Equal(t, float32(-4), got.Y)
}

func TestDecodeJoystick(t *testing.T) {
	axis := rawEvent(JoystickAxisMotion, 0)
	binary.LittleEndian.PutUint32(axis.Raw[16:], 9)
	axis.Raw[20] = 1
	binary.LittleEndian.PutUint16(axis.Raw[24:], uint16(0x8000))
	a, ok := decode(axis).(JoyAxisEvent)
	require.True(t, ok)
	assert.Equal(t, uint32(9), a.Which)
	assert.Equal(t, uint8(1), a.Axis)
	assert.Equal(t, int16(math.MinInt16), a.Value)

	hat := rawEvent(JoystickHatMotion, 0)
	hat.Raw[20] = 0
	hat.Raw[21] = 0x03
	h, ok := decode(hat).(JoyHatEvent)
	require.True(t, ok)
	assert.Equal(t, uint8(0x03), h.Value)

	battery := rawEvent(JoystickBatteryUpdated, 0)
	binary.LittleEndian.PutUint32(battery.Raw[20:], 2)
	binary.LittleEndian.PutUint32(battery.Raw[24:], 75)
	b, ok := decode(battery).(JoyBatteryEvent)
	require.True(t, ok)
	assert.Equal(t, int32(2), b.State)
	assert.Equal(t, int32(75), b.Percent)

	_, ok = decode(rawEvent(JoystickAdded, 0)).(JoyDeviceEvent)
	assert.True(t, ok)
}

func TestDecodeSensor(t *testing.T) {
	ev := rawEvent(SensorUpdate, 5)
	binary.LittleEndian.PutUint32(ev.Raw[16:], 11)
	for i := 0; i < 6; i++ {
		putF32(ev.Raw[20+4*i:], float32(i)+0.5)
	}
	binary.LittleEndian.PutUint64(ev.Raw[48:], 123456)

	got, ok := decode(ev).(SensorEvent)
	require.True(t, ok)
	assert.Equal(t, uint32(11), got.Which)
	assert.Equal(t, [6]float32{0.5, 1.5, 2.5, 3.5, 4.5, 5.5}, got.Data)
	assert.Equal(t, uint64(123456), got.SensorTimestamp)
}

func TestDecodeTouch(t *testing.T) {
	ev := rawEvent(FingerMotion, 0)
	binary.LittleEndian.PutUint64(ev.Raw[16:], 1)
	binary.LittleEndian.PutUint64(ev.Raw[24:], 2)
	putF32(ev.Raw[32:], 0.25)
	putF32(ev.Raw[48:], 1)
	binary.LittleEndian.PutUint32(ev.Raw[52:], 8)

	got, ok := decode(ev).(TouchFingerEvent)
	require.True(t, ok)
	assert.Equal(t, uint64(1), got.TouchID)
	assert.Equal(t, uint64(2), got.FingerID)
	assert.Equal(t, float32(0.25), got.X)
	assert.Equal(t, float32(1), got.Pressure)
	assert.Equal(t, uint32(8), got.WindowID)
}

func TestDecodeStrings(t *testing.T) {
	text := rawEvent(TextInput, 0)
	text.Text = "héllo"
	ti, ok := decode(text).(TextInputEvent)
	require.True(t, ok)
	assert.Equal(t, "héllo", ti.Text)

	drop := rawEvent(DropFile, 0)
	drop.Text = "/tmp/file.txt"
	drop.Source = "files"
	putF32(drop.Raw[20:], 3)
	de, ok := decode(drop).(DropEvent)
	require.True(t, ok)
	assert.Equal(t, "/tmp/file.txt", de.Data)
	assert.Equal(t, "files", de.Source)
	assert.Equal(t, float32(3), de.X)
}

func TestDecodeWindowRange(t *testing.T) {
	for _, typ := range []Type{WindowShown, WindowResized, WindowHDRStateChanged} {
		ev := rawEvent(typ, 0)
		binary.LittleEndian.PutUint32(ev.Raw[20:], 640)
		got, ok := decode(ev).(WindowEvent)
		require.True(t, ok, typ.String())
		assert.Equal(t, int32(640), got.Data1)
	}
}

func TestDecodeUnknownKeepsRaw(t *testing.T) {
	ev := rawEvent(PenMotion, 9)
	ev.Raw[100] = 0xAB

	got, ok := decode(ev).(CommonEvent)
	require.True(t, ok)
	assert.Equal(t, PenMotion, got.Type)
	assert.Equal(t, uint64(9), got.Timestamp)
	assert.Equal(t, byte(0xAB), got.Raw[100])
}

func TestDecodeShortRecord(t *testing.T) {
	_, err := Decode(make([]byte, 16))
	require.ErrorIs(t, err, sdl.ErrInvalidArgument)

	raw := rawEvent(Quit, 3)
	got, err := Decode(raw.Raw[:])
	require.NoError(t, err)
	assert.Equal(t, QuitEvent{Common: Common{Type: Quit, Timestamp: 3}}, got)
}

func TestEncodeUserEvent(t *testing.T) {
	in := UserEvent{
		Common:   Common{Type: User + 2},
		WindowID: 4,
		Code:     -7,
		Data1:    0xdead,
		Data2:    0xbeef,
	}
	raw, err := encode(in)
	require.NoError(t, err)
	assert.Equal(t, in, decode(raw))

	_, err = encode(&in)
	require.NoError(t, err)
}

func TestEncodeRejects(t *testing.T) {
	cases := map[string]Event{
		"nil":            nil,
		"user out range": UserEvent{Common: Common{Type: KeyDown}},
		"zero common":    Common{},
		"keyboard":       KeyboardEvent{Common: Common{Type: KeyDown}},
		"nil user":       (*UserEvent)(nil),
	}
	for name, ev := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := encode(ev)
			require.ErrorIs(t, err, sdl.ErrInvalidArgument)
		})
	}
}

func TestEncodeCommon(t *testing.T) {
	raw, err := encode(Common{Type: LocaleChanged, Timestamp: 8})
	require.NoError(t, err)
	got, ok := decode(raw).(CommonEvent)
	require.True(t, ok)
	assert.Equal(t, LocaleChanged, got.Type)

	raw, err = encode(QuitEvent{})
	require.NoError(t, err)
	assert.IsType(t, QuitEvent{}, decode(raw))
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "quit", Quit.String())
	assert.Equal(t, "gamepad-touchpad-motion", GamepadTouchpadMotion.String())
	assert.Equal(t, "user+3", (User + 3).String())
	assert.Equal(t, "type(0x123)", Type(0x123).String())
	assert.True(t, Last.IsUser())
	assert.False(t, PollSentinel.IsUser())
}
