// Package gamepad opens joysticks through the native controller mapping
// database, exposing a fixed layout of axes and buttons.
package gamepad

import (
	"fmt"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/backend"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/joystick"
)

// Axis mirrors SDL_GamepadAxis.
type Axis int

const (
	AxisInvalid Axis = iota - 1
	AxisLeftX
	AxisLeftY
	AxisRightX
	AxisRightY
	AxisLeftTrigger
	AxisRightTrigger
	AxisCount
)

// String returns the mapping-string name of the axis.
func (a Axis) String() string {
	if a < 0 || a >= AxisCount {
		return ""
	}
	return backend.GetGamepadStringForAxis(int(a))
}

// Button mirrors SDL_GamepadButton.
type Button int

const (
	ButtonInvalid Button = iota - 1
	ButtonSouth
	ButtonEast
	ButtonWest
	ButtonNorth
	ButtonBack
	ButtonGuide
	ButtonStart
	ButtonLeftStick
	ButtonRightStick
	ButtonLeftShoulder
	ButtonRightShoulder
	ButtonDPadUp
	ButtonDPadDown
	ButtonDPadLeft
	ButtonDPadRight
	ButtonMisc1
	ButtonRightPaddle1
	ButtonLeftPaddle1
	ButtonRightPaddle2
	ButtonLeftPaddle2
	ButtonTouchpad
	ButtonMisc2
	ButtonMisc3
	ButtonMisc4
	ButtonMisc5
	ButtonMisc6
	ButtonCount
)

func (b Button) String() string {
	if b < 0 || b >= ButtonCount {
		return ""
	}
	return backend.GetGamepadStringForButton(int(b))
}

// Type mirrors SDL_GamepadType.
type Type int

const (
	TypeUnknown Type = iota
	TypeStandard
	TypeXbox360
	TypeXboxOne
	TypePS3
	TypePS4
	TypePS5
	TypeSwitchPro
	TypeJoyconLeft
	TypeJoyconRight
	TypeJoyconPair
)

var typeNames = [...]string{
	"unknown", "standard", "xbox360", "xboxone", "ps3", "ps4", "ps5",
	"switchpro", "joyconleft", "joyconright", "joyconpair",
}

// String returns the name used in mapping strings' type field.
func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "unknown"
	}
	return typeNames[t]
}

// Gamepad is an open controller.
type Gamepad struct {
	g backend.Gamepad
}

func Has() bool {
	return backend.HasGamepad()
}

// IDs lists the connected joysticks that have a gamepad mapping.
func IDs() ([]joystick.ID, error) {
	raw, err := backend.GetGamepads()
	if err != nil {
		return nil, sdl.RemapError(err)
	}
	out := make([]joystick.ID, len(raw))
	for i, id := range raw {
		out[i] = joystick.ID(id)
	}
	return out, nil
}

// IsGamepad reports whether the joystick has a gamepad mapping.
func IsGamepad(id joystick.ID) bool {
	return id != 0 && backend.IsGamepad(uint32(id))
}

func NameForID(id joystick.ID) (string, error) {
	if id == 0 {
		return "", sdl.ErrInvalidHandle
	}
	name, err := backend.GetGamepadNameForID(uint32(id))
	return name, sdl.RemapError(err)
}

func TypeForID(id joystick.ID) Type {
	if id == 0 {
		return TypeUnknown
	}
	return Type(backend.GetGamepadTypeForID(uint32(id)))
}

func MappingForID(id joystick.ID) (string, error) {
	if id == 0 {
		return "", sdl.ErrInvalidHandle
	}
	m, err := backend.GetGamepadMappingForID(uint32(id))
	return m, sdl.RemapError(err)
}

// AddMapping adds or replaces a mapping line in the controller database. It
// reports true when a new mapping was added and false when one was updated.
func AddMapping(mapping string) (bool, error) {
	if mapping == "" {
		return false, fmt.Errorf("%w: empty mapping", sdl.ErrInvalidArgument)
	}
	n, err := backend.AddGamepadMapping(mapping)
	if err != nil {
		return false, sdl.RemapError(err)
	}
	return n == 1, nil
}

func Open(id joystick.ID) (*Gamepad, error) {
	if id == 0 {
		return nil, sdl.ErrInvalidHandle
	}
	g, err := backend.OpenGamepad(uint32(id))
	if err != nil {
		return nil, sdl.RemapError(err)
	}
	return &Gamepad{g: g}, nil
}

func (g *Gamepad) valid() bool { return g != nil && g.g != nil }

func (g *Gamepad) Close() {
	if !g.valid() {
		return
	}
	backend.CloseGamepad(g.g)
	g.g = nil
}

func (g *Gamepad) Name() (string, error) {
	if !g.valid() {
		return "", sdl.ErrInvalidHandle
	}
	name, err := backend.GetGamepadName(g.g)
	return name, sdl.RemapError(err)
}

func (g *Gamepad) ID() (joystick.ID, error) {
	if !g.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	id, err := backend.GetGamepadID(g.g)
	return joystick.ID(id), sdl.RemapError(err)
}

func (g *Gamepad) Type() Type {
	if !g.valid() {
		return TypeUnknown
	}
	return Type(backend.GetGamepadType(g.g))
}

func (g *Gamepad) Connected() bool {
	return g.valid() && backend.GamepadConnected(g.g)
}

// Joystick returns the joystick underneath the gamepad. It is owned by the
// gamepad and must not be closed separately.
func (g *Gamepad) Joystick() (*joystick.Joystick, error) {
	if !g.valid() {
		return nil, sdl.ErrInvalidHandle
	}
	j, err := backend.GetGamepadJoystick(g.g)
	if err != nil {
		return nil, sdl.RemapError(err)
	}
	return joystick.Wrap(j), nil
}

// Axis returns the axis position. Triggers range from 0 to joystick.AxisMax.
func (g *Gamepad) Axis(a Axis) (int16, error) {
	if !g.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	if a < 0 || a >= AxisCount {
		return 0, fmt.Errorf("%w: gamepad axis %d", sdl.ErrInvalidArgument, a)
	}
	return backend.GetGamepadAxis(g.g, int(a)), nil
}

func (g *Gamepad) Button(b Button) (bool, error) {
	if !g.valid() {
		return false, sdl.ErrInvalidHandle
	}
	if b < 0 || b >= ButtonCount {
		return false, fmt.Errorf("%w: gamepad button %d", sdl.ErrInvalidArgument, b)
	}
	return backend.GetGamepadButton(g.g, int(b)), nil
}

func (g *Gamepad) HasAxis(a Axis) bool {
	return g.valid() && a >= 0 && a < AxisCount && backend.GamepadHasAxis(g.g, int(a))
}

func (g *Gamepad) HasButton(b Button) bool {
	return g.valid() && b >= 0 && b < ButtonCount && backend.GamepadHasButton(g.g, int(b))
}

func (g *Gamepad) Rumble(low, high uint16, durationMS uint32) error {
	if !g.valid() {
		return sdl.ErrInvalidHandle
	}
	return sdl.RemapError(backend.RumbleGamepad(g.g, low, high, durationMS))
}

// Mapping returns the mapping line currently applied to the gamepad.
func (g *Gamepad) Mapping() (string, error) {
	if !g.valid() {
		return "", sdl.ErrInvalidHandle
	}
	m, err := backend.GetGamepadMapping(g.g)
	return m, sdl.RemapError(err)
}
