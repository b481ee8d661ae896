package events

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/backend"
)

// Size is the size of one native event record.
const Size = backend.EventSize

var le = binary.LittleEndian

// record reads fields of a native event at fixed offsets.
type record []byte

func (r record) u8(off int) uint8         { return r[off] }
func (r record) b(off int) bool           { return r[off] != 0 }
func (r record) i16(off int) int16        { return int16(le.Uint16(r[off:])) }
func (r record) u16(off int) uint16       { return le.Uint16(r[off:]) }
func (r record) u32(off int) uint32       { return le.Uint32(r[off:]) }
func (r record) i32(off int) int32        { return int32(le.Uint32(r[off:])) }
func (r record) u64(off int) uint64       { return le.Uint64(r[off:]) }
func (r record) f32(off int) float32      { return math.Float32frombits(le.Uint32(r[off:])) }
func (r record) ptr(off int) uintptr      { return uintptr(le.Uint64(r[off:])) }
func (r record) common() Common           { return Common{Type: Type(r.u32(0)), Timestamp: r.u64(8)} }
func (r record) putU32(off int, v uint32) { le.PutUint32(r[off:], v) }
func (r record) putU64(off int, v uint64) { le.PutUint64(r[off:], v) }

// Decode interprets a raw native event record. String-bearing kinds decode
// with empty strings because the record only holds their pointers.
func Decode(raw []byte) (Event, error) {
	if len(raw) < Size {
		return nil, fmt.Errorf("%w: event record is %d bytes, want %d", sdl.ErrInvalidArgument, len(raw), Size)
	}
	var ev backend.Event
	copy(ev.Raw[:], raw)
	return decode(ev), nil
}

func decode(ev backend.Event) Event {
	r := record(ev.Raw[:])
	c := r.common()
	t := c.Type

	switch {
	case t == Quit:
		return QuitEvent{Common: c}
	case t >= DisplayOrientation && t <= DisplayContentScaleChanged:
		return DisplayEvent{Common: c, DisplayID: r.u32(16), Data1: r.i32(20), Data2: r.i32(24)}
	case t >= WindowShown && t <= WindowHDRStateChanged:
		return WindowEvent{Common: c, WindowID: r.u32(16), Data1: r.i32(20), Data2: r.i32(24)}
	case t == KeyDown || t == KeyUp:
		return KeyboardEvent{
			Common:   c,
			WindowID: r.u32(16),
			Which:    r.u32(20),
			Scancode: r.u32(24),
			Key:      r.u32(28),
			Mod:      r.u16(32),
			RawCode:  r.u16(34),
			Down:     r.b(36),
			Repeat:   r.b(37),
		}
	case t == KeyboardAdded || t == KeyboardRemoved:
		return KeyboardDeviceEvent{Common: c, Which: r.u32(16)}
	case t == TextEditing:
		return TextEditingEvent{Common: c, WindowID: r.u32(16), Text: ev.Text, Start: r.i32(32), Length: r.i32(36)}
	case t == TextInput:
		return TextInputEvent{Common: c, WindowID: r.u32(16), Text: ev.Text}
	case t == MouseMotion:
		return MouseMotionEvent{
			Common:   c,
			WindowID: r.u32(16),
			Which:    r.u32(20),
			State:    r.u32(24),
			X:        r.f32(28),
			Y:        r.f32(32),
			XRel:     r.f32(36),
			YRel:     r.f32(40),
		}
	case t == MouseButtonDown || t == MouseButtonUp:
		return MouseButtonEvent{
			Common:   c,
			WindowID: r.u32(16),
			Which:    r.u32(20),
			Button:   r.u8(24),
			Down:     r.b(25),
			Clicks:   r.u8(26),
			X:        r.f32(28),
			Y:        r.f32(32),
		}
	case t == MouseWheel:
		return MouseWheelEvent{
			Common:    c,
			WindowID:  r.u32(16),
			Which:     r.u32(20),
			X:         r.f32(24),
			Y:         r.f32(28),
			Direction: r.u32(32),
			MouseX:    r.f32(36),
			MouseY:    r.f32(40),
		}
	case t == MouseAdded || t == MouseRemoved:
		return MouseDeviceEvent{Common: c, Which: r.u32(16)}
	case t == JoystickAxisMotion:
		return JoyAxisEvent{Common: c, Which: r.u32(16), Axis: r.u8(20), Value: r.i16(24)}
	case t == JoystickBallMotion:
		return JoyBallEvent{Common: c, Which: r.u32(16), Ball: r.u8(20), XRel: r.i16(24), YRel: r.i16(26)}
	case t == JoystickHatMotion:
		return JoyHatEvent{Common: c, Which: r.u32(16), Hat: r.u8(20), Value: r.u8(21)}
	case t == JoystickButtonDown || t == JoystickButtonUp:
		return JoyButtonEvent{Common: c, Which: r.u32(16), Button: r.u8(20), Down: r.b(21)}
	case t == JoystickAdded || t == JoystickRemoved || t == JoystickUpdateComplete:
		return JoyDeviceEvent{Common: c, Which: r.u32(16)}
	case t == JoystickBatteryUpdated:
		return JoyBatteryEvent{Common: c, Which: r.u32(16), State: r.i32(20), Percent: r.i32(24)}
	case t == GamepadAxisMotion:
		return GamepadAxisEvent{Common: c, Which: r.u32(16), Axis: r.u8(20), Value: r.i16(24)}
	case t == GamepadButtonDown || t == GamepadButtonUp:
		return GamepadButtonEvent{Common: c, Which: r.u32(16), Button: r.u8(20), Down: r.b(21)}
	case t == GamepadAdded || t == GamepadRemoved || t == GamepadRemapped ||
		t == GamepadUpdateComplete || t == GamepadSteamHandleUpdated:
		return GamepadDeviceEvent{Common: c, Which: r.u32(16)}
	case t >= GamepadTouchpadDown && t <= GamepadTouchpadUp:
		return GamepadTouchpadEvent{
			Common:   c,
			Which:    r.u32(16),
			Touchpad: r.i32(20),
			Finger:   r.i32(24),
			X:        r.f32(28),
			Y:        r.f32(32),
			Pressure: r.f32(36),
		}
	case t == GamepadSensorUpdate:
		e := GamepadSensorEvent{Common: c, Which: r.u32(16), Sensor: r.i32(20), SensorTimestamp: r.u64(40)}
		for i := range e.Data {
			e.Data[i] = r.f32(24 + 4*i)
		}
		return e
	case t >= FingerDown && t <= FingerCanceled:
		return TouchFingerEvent{
			Common:   c,
			TouchID:  r.u64(16),
			FingerID: r.u64(24),
			X:        r.f32(32),
			Y:        r.f32(36),
			DX:       r.f32(40),
			DY:       r.f32(44),
			Pressure: r.f32(48),
			WindowID: r.u32(52),
		}
	case t == ClipboardUpdate:
		return ClipboardEvent{Common: c, Owner: r.b(16), NumMimeTypes: r.i32(20)}
	case t >= DropFile && t <= DropPosition:
		return DropEvent{Common: c, WindowID: r.u32(16), X: r.f32(20), Y: r.f32(24), Source: ev.Source, Data: ev.Text}
	case t >= AudioDeviceAdded && t <= AudioDeviceFormatChanged:
		return AudioDeviceEvent{Common: c, Which: r.u32(16), Recording: r.b(20)}
	case t == SensorUpdate:
		e := SensorEvent{Common: c, Which: r.u32(16), SensorTimestamp: r.u64(48)}
		for i := range e.Data {
			e.Data[i] = r.f32(20 + 4*i)
		}
		return e
	case t >= CameraDeviceAdded && t <= CameraDeviceDenied:
		return CameraDeviceEvent{Common: c, Which: r.u32(16)}
	case t.IsUser():
		return UserEvent{Common: c, WindowID: r.u32(16), Code: r.i32(20), Data1: r.ptr(24), Data2: r.ptr(32)}
	}
	return CommonEvent{Common: c, Raw: ev.Raw}
}

// encode builds a native record for the kinds that may be pushed: user,
// quit and raw common events.
func encode(ev Event) (backend.Event, error) {
	var out backend.Event
	r := record(out.Raw[:])

	switch e := ev.(type) {
	case UserEvent:
		if !e.Type.IsUser() {
			return out, fmt.Errorf("%w: user event type %s outside the user range", sdl.ErrInvalidArgument, e.Type)
		}
		r.putU32(0, uint32(e.Type))
		r.putU64(8, e.Timestamp)
		r.putU32(16, e.WindowID)
		r.putU32(20, uint32(e.Code))
		r.putU64(24, uint64(e.Data1))
		r.putU64(32, uint64(e.Data2))
	case *UserEvent:
		if e == nil {
			return out, fmt.Errorf("%w: nil event", sdl.ErrInvalidArgument)
		}
		return encode(*e)
	case QuitEvent:
		r.putU32(0, uint32(Quit))
		r.putU64(8, e.Timestamp)
	case CommonEvent:
		if e.Type == First {
			return out, fmt.Errorf("%w: zero event type", sdl.ErrInvalidArgument)
		}
		out.Raw = e.Raw
		r.putU32(0, uint32(e.Type))
		r.putU64(8, e.Timestamp)
	case Common:
		if e.Type == First {
			return out, fmt.Errorf("%w: zero event type", sdl.ErrInvalidArgument)
		}
		r.putU32(0, uint32(e.Type))
		r.putU64(8, e.Timestamp)
	case nil:
		return out, fmt.Errorf("%w: nil event", sdl.ErrInvalidArgument)
	default:
		return out, fmt.Errorf("%w: %T cannot be pushed", sdl.ErrInvalidArgument, ev)
	}
	return out, nil
}
