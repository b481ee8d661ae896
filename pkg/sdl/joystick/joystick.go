// Package joystick enumerates, opens and drives joysticks, including
// software-defined virtual devices.
package joystick

import (
	"fmt"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/backend"
)

// Joystick is an open device. Close it when done.
type Joystick struct {
	j backend.Joystick
}

// Wrap adopts a native joystick handle obtained elsewhere in the bindings.
// It is used by gamepad to expose the underlying joystick.
func Wrap(j backend.Joystick) *Joystick {
	if j == nil {
		return nil
	}
	return &Joystick{j: j}
}

func ids(raw []uint32, err error) ([]ID, error) {
	if err != nil {
		return nil, sdl.RemapError(err)
	}
	out := make([]ID, len(raw))
	for i, id := range raw {
		out[i] = ID(id)
	}
	return out, nil
}

// IDs lists the connected joysticks.
func IDs() ([]ID, error) {
	return ids(backend.GetJoysticks())
}

// Has reports whether any joystick is connected.
func Has() bool {
	return backend.HasJoystick()
}

func NameForID(id ID) (string, error) {
	if id == 0 {
		return "", sdl.ErrInvalidHandle
	}
	name, err := backend.GetJoystickNameForID(uint32(id))
	return name, sdl.RemapError(err)
}

func PathForID(id ID) (string, error) {
	if id == 0 {
		return "", sdl.ErrInvalidHandle
	}
	path, err := backend.GetJoystickPathForID(uint32(id))
	return path, sdl.RemapError(err)
}

// PlayerIndexForID returns -1 when no player index is assigned.
func PlayerIndexForID(id ID) int {
	if id == 0 {
		return -1
	}
	return backend.GetJoystickPlayerIndexForID(uint32(id))
}

func GUIDForID(id ID) GUID {
	if id == 0 {
		return GUID{}
	}
	return GUID(backend.GetJoystickGUIDForID(uint32(id)))
}

func VendorForID(id ID) uint16 {
	if id == 0 {
		return 0
	}
	return backend.GetJoystickVendorForID(uint32(id))
}

func ProductForID(id ID) uint16 {
	if id == 0 {
		return 0
	}
	return backend.GetJoystickProductForID(uint32(id))
}

func ProductVersionForID(id ID) uint16 {
	if id == 0 {
		return 0
	}
	return backend.GetJoystickProductVersionForID(uint32(id))
}

func TypeForID(id ID) Type {
	if id == 0 {
		return TypeUnknown
	}
	return Type(backend.GetJoystickTypeForID(uint32(id)))
}

func Open(id ID) (*Joystick, error) {
	if id == 0 {
		return nil, sdl.ErrInvalidHandle
	}
	j, err := backend.OpenJoystick(uint32(id))
	if err != nil {
		return nil, sdl.RemapError(err)
	}
	return &Joystick{j: j}, nil
}

// FromID returns the already opened joystick with the given ID.
func FromID(id ID) (*Joystick, error) {
	if id == 0 {
		return nil, sdl.ErrInvalidHandle
	}
	j, err := backend.GetJoystickFromID(uint32(id))
	if err != nil {
		return nil, sdl.RemapError(err)
	}
	return &Joystick{j: j}, nil
}

func (j *Joystick) valid() bool { return j != nil && j.j != nil }

// Handle returns the native handle, or nil for a closed joystick.
func (j *Joystick) Handle() backend.Joystick {
	if j == nil {
		return nil
	}
	return j.j
}

func (j *Joystick) Close() {
	if !j.valid() {
		return
	}
	backend.CloseJoystick(j.j)
	j.j = nil
}

func (j *Joystick) Name() (string, error) {
	if !j.valid() {
		return "", sdl.ErrInvalidHandle
	}
	name, err := backend.GetJoystickName(j.j)
	return name, sdl.RemapError(err)
}

func (j *Joystick) Path() (string, error) {
	if !j.valid() {
		return "", sdl.ErrInvalidHandle
	}
	path, err := backend.GetJoystickPath(j.j)
	return path, sdl.RemapError(err)
}

func (j *Joystick) ID() (ID, error) {
	if !j.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	id, err := backend.GetJoystickID(j.j)
	return ID(id), sdl.RemapError(err)
}

func (j *Joystick) Type() Type {
	if !j.valid() {
		return TypeUnknown
	}
	return Type(backend.GetJoystickType(j.j))
}

func (j *Joystick) GUID() GUID {
	if !j.valid() {
		return GUID{}
	}
	return GUID(backend.GetJoystickGUID(j.j))
}

// Serial returns the serial number, or "" when the device has none.
func (j *Joystick) Serial() string {
	if !j.valid() {
		return ""
	}
	return backend.GetJoystickSerial(j.j)
}

func (j *Joystick) Vendor() uint16 {
	if !j.valid() {
		return 0
	}
	return backend.GetJoystickVendor(j.j)
}

func (j *Joystick) Product() uint16 {
	if !j.valid() {
		return 0
	}
	return backend.GetJoystickProduct(j.j)
}

func (j *Joystick) PlayerIndex() int {
	if !j.valid() {
		return -1
	}
	return backend.GetJoystickPlayerIndex(j.j)
}

// SetPlayerIndex assigns a player slot; -1 clears it.
func (j *Joystick) SetPlayerIndex(index int) error {
	if !j.valid() {
		return sdl.ErrInvalidHandle
	}
	return sdl.RemapError(backend.SetJoystickPlayerIndex(j.j, index))
}

func (j *Joystick) NumAxes() (int, error) {
	if !j.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	n, err := backend.GetNumJoystickAxes(j.j)
	return n, sdl.RemapError(err)
}

func (j *Joystick) NumBalls() (int, error) {
	if !j.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	n, err := backend.GetNumJoystickBalls(j.j)
	return n, sdl.RemapError(err)
}

func (j *Joystick) NumHats() (int, error) {
	if !j.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	n, err := backend.GetNumJoystickHats(j.j)
	return n, sdl.RemapError(err)
}

func (j *Joystick) NumButtons() (int, error) {
	if !j.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	n, err := backend.GetNumJoystickButtons(j.j)
	return n, sdl.RemapError(err)
}

func checkIndex(kind string, i int) error {
	if i < 0 {
		return fmt.Errorf("%w: negative %s index %d", sdl.ErrInvalidArgument, kind, i)
	}
	return nil
}

// Axis returns the current position of axis i in [AxisMin, AxisMax].
func (j *Joystick) Axis(i int) (int16, error) {
	if !j.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	if err := checkIndex("axis", i); err != nil {
		return 0, err
	}
	return backend.GetJoystickAxis(j.j, i), nil
}

// Ball returns the motion of trackball i since the last call.
func (j *Joystick) Ball(i int) (dx, dy int, err error) {
	if !j.valid() {
		return 0, 0, sdl.ErrInvalidHandle
	}
	if err := checkIndex("ball", i); err != nil {
		return 0, 0, err
	}
	dx, dy, err = backend.GetJoystickBall(j.j, i)
	return dx, dy, sdl.RemapError(err)
}

// Hat returns the Hat* bits of hat i.
func (j *Joystick) Hat(i int) (uint8, error) {
	if !j.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	if err := checkIndex("hat", i); err != nil {
		return 0, err
	}
	return backend.GetJoystickHat(j.j, i), nil
}

func (j *Joystick) Button(i int) (bool, error) {
	if !j.valid() {
		return false, sdl.ErrInvalidHandle
	}
	if err := checkIndex("button", i); err != nil {
		return false, err
	}
	return backend.GetJoystickButton(j.j, i), nil
}

// Rumble starts the motors for durationMS milliseconds; zero intensities
// stop them.
func (j *Joystick) Rumble(low, high uint16, durationMS uint32) error {
	if !j.valid() {
		return sdl.ErrInvalidHandle
	}
	return sdl.RemapError(backend.RumbleJoystick(j.j, low, high, durationMS))
}

func (j *Joystick) RumbleTriggers(left, right uint16, durationMS uint32) error {
	if !j.valid() {
		return sdl.ErrInvalidHandle
	}
	return sdl.RemapError(backend.RumbleJoystickTriggers(j.j, left, right, durationMS))
}

func (j *Joystick) SetLED(r, g, b uint8) error {
	if !j.valid() {
		return sdl.ErrInvalidHandle
	}
	return sdl.RemapError(backend.SetJoystickLED(j.j, r, g, b))
}

func (j *Joystick) PowerInfo() (PowerInfo, error) {
	if !j.valid() {
		return PowerInfo{State: sdl.PowerStateError, Percent: -1}, sdl.ErrInvalidHandle
	}
	state, percent := backend.GetJoystickPowerInfo(j.j)
	return PowerInfo{State: sdl.PowerState(state), Percent: percent}, nil
}

func (j *Joystick) ConnectionState() ConnectionState {
	if !j.valid() {
		return ConnectionInvalid
	}
	return ConnectionState(backend.GetJoystickConnectionState(j.j))
}

func (j *Joystick) Connected() bool {
	return j.valid() && backend.JoystickConnected(j.j)
}

// Update polls device state when joystick events are disabled.
func Update() {
	backend.UpdateJoysticks()
}

func SetEventsEnabled(enabled bool) {
	backend.SetJoystickEventsEnabled(enabled)
}

func EventsEnabled() bool {
	return backend.JoystickEventsEnabled()
}

// Lock guards joystick access from multiple threads. Every Lock needs a
// matching Unlock.
func Lock() {
	backend.LockJoysticks()
}

func Unlock() {
	backend.UnlockJoysticks()
}
