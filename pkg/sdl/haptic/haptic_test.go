package haptic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/backend"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/sdltest"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/joystick"
)

func TestMarshalPeriodic(t *testing.T) {
	n, err := marshal(Periodic{
		Wave:      KindSine,
		Direction: Direction{Type: Polar, Dir: [3]int32{18000}},
		Replay:    Replay{Length: 1000, Delay: 5},
		Period:    100,
		Magnitude: 20000,
		Phase:     9000,
		Envelope:  Envelope{AttackLength: 10, FadeLevel: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, uint16(backend.HapticSine), n.Type)
	assert.Equal(t, int32(18000), n.Direction.Dir[0])
	assert.Equal(t, uint32(1000), n.Length)
	assert.Equal(t, uint16(5), n.Delay)
	assert.Equal(t, int16(20000), n.Magnitude)
	assert.Equal(t, uint16(9000), n.Phase)
	assert.Equal(t, uint16(10), n.AttackLength)
	assert.Equal(t, uint16(3), n.FadeLevel)
}

func TestMarshalCondition(t *testing.T) {
	c := Condition{
		Type:      KindSpring,
		Direction: Direction{Type: Cartesian, Dir: [3]int32{1, 0, 0}},
		RightSat:  [3]uint16{0xFFFF, 0xFFFF},
		Center:    [3]int16{-5, 5},
	}
	n, err := marshal(c)
	require.NoError(t, err)
	assert.Equal(t, uint16(KindSpring), n.Type)
	assert.Equal(t, c.RightSat, n.RightSat)
	assert.Equal(t, c.Center, n.Center)
	assert.Equal(t, uint8(Cartesian), n.Direction.Type)
}

func TestMarshalLeftRight(t *testing.T) {
	n, err := marshal(LeftRight{Length: 250, LargeMagnitude: 0x8000, SmallMagnitude: 0x4000})
	require.NoError(t, err)
	assert.Equal(t, uint16(KindLeftRight), n.Type)
	assert.Equal(t, uint16(0x8000), n.LargeMagnitude)
	assert.Equal(t, uint16(0x4000), n.SmallMagnitude)
}

func TestMarshalRejects(t *testing.T) {
	cases := map[string]Effect{
		"nil":             nil,
		"periodic kind":   Periodic{Wave: KindRamp},
		"periodic phase":  Periodic{Wave: KindSquare, Phase: 36000},
		"condition kind":  Condition{Type: KindSine},
		"polar angle":     Constant{Direction: Direction{Type: Polar, Dir: [3]int32{-1}}},
		"spherical pitch": Constant{Direction: Direction{Type: Spherical, Dir: [3]int32{0, 9001}}},
		"direction type":  Constant{Direction: Direction{Type: DirectionType(9)}},
		"infinite ramp":   Ramp{Replay: Replay{Length: Infinity}},
	}
	for name, e := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := marshal(e)
			assert.ErrorIs(t, err, sdl.ErrInvalidArgument)
		})
	}
}

func TestKinds(t *testing.T) {
	assert.Equal(t, KindConstant, Constant{}.Kind())
	assert.Equal(t, KindTriangle, Periodic{Wave: KindTriangle}.Kind())
	assert.Equal(t, KindFriction, Condition{Type: KindFriction}.Kind())
	assert.Equal(t, KindRamp, Ramp{}.Kind())
	assert.Equal(t, KindLeftRight, LeftRight{}.Kind())
}

func TestZeroHandles(t *testing.T) {
	_, err := Open(0)
	assert.ErrorIs(t, err, sdl.ErrInvalidHandle)
	_, err = OpenFromJoystick(nil)
	assert.ErrorIs(t, err, sdl.ErrInvalidHandle)
	assert.False(t, IsJoystickHaptic(nil))

	var h *Haptic
	_, err = h.CreateEffect(Constant{})
	assert.ErrorIs(t, err, sdl.ErrInvalidHandle)
	assert.ErrorIs(t, h.SetGain(50), sdl.ErrInvalidHandle)
	assert.ErrorIs(t, h.PlayRumble(0.5, 100), sdl.ErrInvalidHandle)
	assert.False(t, h.RumbleSupported())
	h.DestroyEffect(0)
	h.Close()
}

func TestVirtualJoystickRumble(t *testing.T) {
	sdltest.Init(t, uint32(sdl.InitJoystick|sdl.InitHaptic))

	id, err := joystick.AttachVirtual(joystick.VirtualDesc{Type: joystick.TypeGamepad, NumAxes: 2, NumButtons: 2})
	require.NoError(t, err)
	defer func() { require.NoError(t, joystick.DetachVirtual(id)) }()

	j, err := joystick.Open(id)
	require.NoError(t, err)
	defer j.Close()

	if !IsJoystickHaptic(j) {
		t.Skip("virtual joystick has no haptic backend on this platform")
	}
	h, err := OpenFromJoystick(j)
	require.NoError(t, err)
	defer h.Close()

	assert.ErrorIs(t, h.SetGain(101), sdl.ErrInvalidArgument)
	assert.ErrorIs(t, h.PlayRumble(2, 10), sdl.ErrInvalidArgument)
}
