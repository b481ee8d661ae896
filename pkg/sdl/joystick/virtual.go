package joystick

import (
	"fmt"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/backend"
)

// AttachVirtual registers a software joystick and returns its ID. Open it to
// drive its inputs.
func AttachVirtual(desc VirtualDesc) (ID, error) {
	if desc.Type < TypeUnknown || desc.Type > TypeThrottle {
		return 0, fmt.Errorf("%w: joystick type %d", sdl.ErrInvalidArgument, desc.Type)
	}
	id, err := backend.AttachVirtualJoystick(backend.VirtualJoystickDesc{
		Type:       uint16(desc.Type),
		VendorID:   desc.VendorID,
		ProductID:  desc.ProductID,
		NumAxes:    desc.NumAxes,
		NumButtons: desc.NumButtons,
		NumBalls:   desc.NumBalls,
		NumHats:    desc.NumHats,
		Name:       desc.Name,
	})
	if err != nil {
		return 0, sdl.RemapError(err)
	}
	return ID(id), nil
}

func DetachVirtual(id ID) error {
	if id == 0 {
		return sdl.ErrInvalidHandle
	}
	return sdl.RemapError(backend.DetachVirtualJoystick(uint32(id)))
}

func IsVirtual(id ID) bool {
	return id != 0 && backend.IsJoystickVirtual(uint32(id))
}

// SetVirtualAxis sets axis i of an opened virtual joystick. The new value is
// reported after the next Update.
func (j *Joystick) SetVirtualAxis(i int, value int16) error {
	if !j.valid() {
		return sdl.ErrInvalidHandle
	}
	if err := checkIndex("axis", i); err != nil {
		return err
	}
	return sdl.RemapError(backend.SetJoystickVirtualAxis(j.j, i, value))
}

func (j *Joystick) SetVirtualButton(i int, down bool) error {
	if !j.valid() {
		return sdl.ErrInvalidHandle
	}
	if err := checkIndex("button", i); err != nil {
		return err
	}
	return sdl.RemapError(backend.SetJoystickVirtualButton(j.j, i, down))
}

func (j *Joystick) SetVirtualHat(i int, value uint8) error {
	if !j.valid() {
		return sdl.ErrInvalidHandle
	}
	if err := checkIndex("hat", i); err != nil {
		return err
	}
	if value&^(HatUp|HatRight|HatDown|HatLeft) != 0 {
		return fmt.Errorf("%w: hat value 0x%x", sdl.ErrInvalidArgument, value)
	}
	return sdl.RemapError(backend.SetJoystickVirtualHat(j.j, i, value))
}
