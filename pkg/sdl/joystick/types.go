package joystick

import (
	"encoding/hex"
	"fmt"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
)

// ID identifies a joystick for as long as it stays connected. Zero is
// invalid.
type ID uint32

// GUID is the stable 16-byte device identifier.
type GUID [16]byte

// String returns the GUID as 32 lowercase hex digits.
func (g GUID) String() string {
	return hex.EncodeToString(g[:])
}

// IsZero reports whether g is the all-zero GUID returned for invalid IDs.
func (g GUID) IsZero() bool {
	return g == GUID{}
}

// ParseGUID parses the 32 hex digit form produced by GUID.String.
func ParseGUID(s string) (GUID, error) {
	var g GUID
	if len(s) != 2*len(g) {
		return g, fmt.Errorf("%w: guid %q must be %d hex digits", sdl.ErrInvalidArgument, s, 2*len(g))
	}
	if _, err := hex.Decode(g[:], []byte(s)); err != nil {
		return GUID{}, fmt.Errorf("%w: guid %q: %v", sdl.ErrInvalidArgument, s, err)
	}
	return g, nil
}

// Type mirrors SDL_JoystickType.
type Type int

const (
	TypeUnknown Type = iota
	TypeGamepad
	TypeWheel
	TypeArcadeStick
	TypeFlightStick
	TypeDancePad
	TypeGuitar
	TypeDrumKit
	TypeArcadePad
	TypeThrottle
)

var typeNames = [...]string{
	"unknown", "gamepad", "wheel", "arcade-stick", "flight-stick",
	"dance-pad", "guitar", "drum-kit", "arcade-pad", "throttle",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return typeNames[0]
	}
	return typeNames[t]
}

// ConnectionState mirrors SDL_JoystickConnectionState.
type ConnectionState int

const (
	ConnectionInvalid ConnectionState = iota - 1
	ConnectionUnknown
	ConnectionWired
	ConnectionWireless
)

func (c ConnectionState) String() string {
	switch c {
	case ConnectionUnknown:
		return "unknown"
	case ConnectionWired:
		return "wired"
	case ConnectionWireless:
		return "wireless"
	default:
		return "invalid"
	}
}

// Hat position bits.
const (
	HatCentered  uint8 = 0x00
	HatUp        uint8 = 0x01
	HatRight     uint8 = 0x02
	HatDown      uint8 = 0x04
	HatLeft      uint8 = 0x08
	HatRightUp         = HatRight | HatUp
	HatRightDown       = HatRight | HatDown
	HatLeftUp          = HatLeft | HatUp
	HatLeftDown        = HatLeft | HatDown
)

// Axis range.
const (
	AxisMax int16 = 32767
	AxisMin int16 = -32768
)

// PowerInfo is the battery state of a device. Percent is -1 when unknown.
type PowerInfo struct {
	State   sdl.PowerState
	Percent int
}

// VirtualDesc describes a software joystick for AttachVirtual.
type VirtualDesc struct {
	Type       Type
	VendorID   uint16
	ProductID  uint16
	NumAxes    uint16
	NumButtons uint16
	NumBalls   uint16
	NumHats    uint16
	Name       string
}
