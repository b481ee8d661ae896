// Package haptic plays force feedback effects on joysticks, mice and
// standalone haptic devices.
//
// Effects are plain Go structs validated before they are copied into the
// native effect union.
package haptic

import (
	"fmt"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/backend"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/joystick"
)

// ID identifies a haptic device. Zero is invalid.
type ID uint32

// EffectID identifies an effect uploaded with CreateEffect.
type EffectID int

type Haptic struct {
	h backend.Haptic
}

func IDs() ([]ID, error) {
	raw, err := backend.GetHaptics()
	if err != nil {
		return nil, sdl.RemapError(err)
	}
	out := make([]ID, len(raw))
	for i, id := range raw {
		out[i] = ID(id)
	}
	return out, nil
}

func NameForID(id ID) (string, error) {
	if id == 0 {
		return "", sdl.ErrInvalidHandle
	}
	name, err := backend.GetHapticNameForID(uint32(id))
	return name, sdl.RemapError(err)
}

func wrap(h backend.Haptic, err error) (*Haptic, error) {
	if err != nil {
		return nil, sdl.RemapError(err)
	}
	return &Haptic{h: h}, nil
}

func Open(id ID) (*Haptic, error) {
	if id == 0 {
		return nil, sdl.ErrInvalidHandle
	}
	return wrap(backend.OpenHaptic(uint32(id)))
}

// FromID returns an already opened device.
func FromID(id ID) (*Haptic, error) {
	if id == 0 {
		return nil, sdl.ErrInvalidHandle
	}
	return wrap(backend.GetHapticFromID(uint32(id)))
}

func IsMouseHaptic() bool {
	return backend.IsMouseHaptic()
}

func OpenFromMouse() (*Haptic, error) {
	return wrap(backend.OpenHapticFromMouse())
}

func IsJoystickHaptic(j *joystick.Joystick) bool {
	h := j.Handle()
	return h != nil && backend.IsJoystickHaptic(h)
}

// OpenFromJoystick opens the force feedback side of j. Close the returned
// device before closing j.
func OpenFromJoystick(j *joystick.Joystick) (*Haptic, error) {
	h := j.Handle()
	if h == nil {
		return nil, sdl.ErrInvalidHandle
	}
	return wrap(backend.OpenHapticFromJoystick(h))
}

func (h *Haptic) valid() bool { return h != nil && h.h != nil }

func (h *Haptic) Close() {
	if !h.valid() {
		return
	}
	backend.CloseHaptic(h.h)
	h.h = nil
}

func (h *Haptic) ID() (ID, error) {
	if !h.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	id, err := backend.GetHapticID(h.h)
	return ID(id), sdl.RemapError(err)
}

func (h *Haptic) Name() (string, error) {
	if !h.valid() {
		return "", sdl.ErrInvalidHandle
	}
	name, err := backend.GetHapticName(h.h)
	return name, sdl.RemapError(err)
}

// MaxEffects is the number of effects the device can store.
func (h *Haptic) MaxEffects() (int, error) {
	if !h.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	n, err := backend.GetMaxHapticEffects(h.h)
	return n, sdl.RemapError(err)
}

func (h *Haptic) MaxEffectsPlaying() (int, error) {
	if !h.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	n, err := backend.GetMaxHapticEffectsPlaying(h.h)
	return n, sdl.RemapError(err)
}

// Features returns the Kind and Feature bits the device supports.
func (h *Haptic) Features() (Kind, error) {
	if !h.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	f, err := backend.GetHapticFeatures(h.h)
	return Kind(f), sdl.RemapError(err)
}

func (h *Haptic) NumAxes() (int, error) {
	if !h.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	n, err := backend.GetNumHapticAxes(h.h)
	return n, sdl.RemapError(err)
}

// require fails with ErrUnsupported unless every bit of want is supported.
func (h *Haptic) require(want Kind) error {
	have, err := h.Features()
	if err != nil {
		return err
	}
	if have&want != want {
		return fmt.Errorf("%w: 0x%x", ErrUnsupported, uint32(want&^have))
	}
	return nil
}

func (h *Haptic) EffectSupported(e Effect) (bool, error) {
	if !h.valid() {
		return false, sdl.ErrInvalidHandle
	}
	n, err := marshal(e)
	if err != nil {
		return false, err
	}
	return backend.HapticEffectSupported(h.h, n), nil
}

// CreateEffect uploads e to the device.
func (h *Haptic) CreateEffect(e Effect) (EffectID, error) {
	if !h.valid() {
		return -1, sdl.ErrInvalidHandle
	}
	n, err := marshal(e)
	if err != nil {
		return -1, err
	}
	if err := h.require(e.Kind()); err != nil {
		return -1, err
	}
	id, err := backend.CreateHapticEffect(h.h, n)
	if err != nil {
		return -1, sdl.RemapError(err)
	}
	return EffectID(id), nil
}

// UpdateEffect replaces the parameters of a running or stored effect. The
// kind cannot change.
func (h *Haptic) UpdateEffect(id EffectID, e Effect) error {
	if !h.valid() {
		return sdl.ErrInvalidHandle
	}
	if id < 0 {
		return fmt.Errorf("%w: effect id %d", sdl.ErrInvalidArgument, id)
	}
	n, err := marshal(e)
	if err != nil {
		return err
	}
	return sdl.RemapError(backend.UpdateHapticEffect(h.h, int(id), n))
}

// RunEffect plays the effect iterations times; Infinity repeats it until
// stopped.
func (h *Haptic) RunEffect(id EffectID, iterations uint32) error {
	if !h.valid() {
		return sdl.ErrInvalidHandle
	}
	if id < 0 {
		return fmt.Errorf("%w: effect id %d", sdl.ErrInvalidArgument, id)
	}
	return sdl.RemapError(backend.RunHapticEffect(h.h, int(id), iterations))
}

func (h *Haptic) StopEffect(id EffectID) error {
	if !h.valid() {
		return sdl.ErrInvalidHandle
	}
	if id < 0 {
		return fmt.Errorf("%w: effect id %d", sdl.ErrInvalidArgument, id)
	}
	return sdl.RemapError(backend.StopHapticEffect(h.h, int(id)))
}

// DestroyEffect stops and frees the effect. Unknown ids are ignored.
func (h *Haptic) DestroyEffect(id EffectID) {
	if !h.valid() || id < 0 {
		return
	}
	backend.DestroyHapticEffect(h.h, int(id))
}

// EffectStatus reports whether the effect is playing. The device must
// support FeatureStatus.
func (h *Haptic) EffectStatus(id EffectID) (bool, error) {
	if !h.valid() {
		return false, sdl.ErrInvalidHandle
	}
	if err := h.require(FeatureStatus); err != nil {
		return false, err
	}
	return backend.GetHapticEffectStatus(h.h, int(id)), nil
}

// SetGain scales all effects, 0 to 100.
func (h *Haptic) SetGain(gain int) error {
	if !h.valid() {
		return sdl.ErrInvalidHandle
	}
	if gain < 0 || gain > 100 {
		return fmt.Errorf("%w: gain %d outside [0, 100]", sdl.ErrInvalidArgument, gain)
	}
	if err := h.require(FeatureGain); err != nil {
		return err
	}
	return sdl.RemapError(backend.SetHapticGain(h.h, gain))
}

// SetAutocenter sets the autocenter strength, 0 (off) to 100.
func (h *Haptic) SetAutocenter(autocenter int) error {
	if !h.valid() {
		return sdl.ErrInvalidHandle
	}
	if autocenter < 0 || autocenter > 100 {
		return fmt.Errorf("%w: autocenter %d outside [0, 100]", sdl.ErrInvalidArgument, autocenter)
	}
	if err := h.require(FeatureAutocenter); err != nil {
		return err
	}
	return sdl.RemapError(backend.SetHapticAutocenter(h.h, autocenter))
}

func (h *Haptic) Pause() error {
	if !h.valid() {
		return sdl.ErrInvalidHandle
	}
	if err := h.require(FeaturePause); err != nil {
		return err
	}
	return sdl.RemapError(backend.PauseHaptic(h.h))
}

func (h *Haptic) Resume() error {
	if !h.valid() {
		return sdl.ErrInvalidHandle
	}
	if err := h.require(FeaturePause); err != nil {
		return err
	}
	return sdl.RemapError(backend.ResumeHaptic(h.h))
}

// StopAll stops every running effect.
func (h *Haptic) StopAll() error {
	if !h.valid() {
		return sdl.ErrInvalidHandle
	}
	return sdl.RemapError(backend.StopHapticEffects(h.h))
}

func (h *Haptic) RumbleSupported() bool {
	return h.valid() && backend.HapticRumbleSupported(h.h)
}

// InitRumble prepares the simple rumble API. Call it once before PlayRumble.
func (h *Haptic) InitRumble() error {
	if !h.valid() {
		return sdl.ErrInvalidHandle
	}
	return sdl.RemapError(backend.InitHapticRumble(h.h))
}

// PlayRumble rumbles at strength (0 to 1) for lengthMS milliseconds.
func (h *Haptic) PlayRumble(strength float32, lengthMS uint32) error {
	if !h.valid() {
		return sdl.ErrInvalidHandle
	}
	if strength < 0 || strength > 1 {
		return fmt.Errorf("%w: rumble strength %v outside [0, 1]", sdl.ErrInvalidArgument, strength)
	}
	return sdl.RemapError(backend.PlayHapticRumble(h.h, strength, lengthMS))
}

func (h *Haptic) StopRumble() error {
	if !h.valid() {
		return sdl.ErrInvalidHandle
	}
	return sdl.RemapError(backend.StopHapticRumble(h.h))
}
