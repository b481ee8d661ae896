package events

// Event is any decoded event. Switch on the concrete type to read the
// kind-specific fields.
type Event interface {
	EventType() Type
	// EventTimestamp is the native nanosecond tick at which the event was
	// queued.
	EventTimestamp() uint64
}

// Common holds the header shared by every event record.
type Common struct {
	Type      Type
	Timestamp uint64
}

func (c Common) EventType() Type        { return c.Type }
func (c Common) EventTimestamp() uint64 { return c.Timestamp }

// CommonEvent is produced for types without a dedicated struct. Raw is the
// complete native record.
type CommonEvent struct {
	Common
	Raw [Size]byte
}

type QuitEvent struct {
	Common
}

type DisplayEvent struct {
	Common
	DisplayID uint32
	Data1     int32
	Data2     int32
}

type WindowEvent struct {
	Common
	WindowID uint32
	Data1    int32
	Data2    int32
}

// KeyboardDeviceEvent reports a keyboard being added or removed.
type KeyboardDeviceEvent struct {
	Common
	Which uint32
}

type KeyboardEvent struct {
	Common
	WindowID uint32
	Which    uint32
	Scancode uint32
	Key      uint32
	Mod      uint16
	RawCode  uint16
	Down     bool
	Repeat   bool
}

type TextEditingEvent struct {
	Common
	WindowID uint32
	Text     string
	Start    int32
	Length   int32
}

type TextInputEvent struct {
	Common
	WindowID uint32
	Text     string
}

type MouseDeviceEvent struct {
	Common
	Which uint32
}

type MouseMotionEvent struct {
	Common
	WindowID uint32
	Which    uint32
	State    uint32
	X, Y     float32
	XRel     float32
	YRel     float32
}

type MouseButtonEvent struct {
	Common
	WindowID uint32
	Which    uint32
	Button   uint8
	Down     bool
	Clicks   uint8
	X, Y     float32
}

type MouseWheelEvent struct {
	Common
	WindowID  uint32
	Which     uint32
	X, Y      float32
	Direction uint32
	MouseX    float32
	MouseY    float32
}

type JoyAxisEvent struct {
	Common
	Which uint32
	Axis  uint8
	Value int16
}

type JoyBallEvent struct {
	Common
	Which uint32
	Ball  uint8
	XRel  int16
	YRel  int16
}

// JoyHatEvent carries the hat position as a joystick.Hat* bit mask.
type JoyHatEvent struct {
	Common
	Which uint32
	Hat   uint8
	Value uint8
}

type JoyButtonEvent struct {
	Common
	Which  uint32
	Button uint8
	Down   bool
}

// JoyDeviceEvent covers added, removed and update-complete notifications.
type JoyDeviceEvent struct {
	Common
	Which uint32
}

type JoyBatteryEvent struct {
	Common
	Which   uint32
	State   int32
	Percent int32
}

type GamepadAxisEvent struct {
	Common
	Which uint32
	Axis  uint8
	Value int16
}

type GamepadButtonEvent struct {
	Common
	Which  uint32
	Button uint8
	Down   bool
}

type GamepadDeviceEvent struct {
	Common
	Which uint32
}

type GamepadTouchpadEvent struct {
	Common
	Which    uint32
	Touchpad int32
	Finger   int32
	X, Y     float32
	Pressure float32
}

type GamepadSensorEvent struct {
	Common
	Which           uint32
	Sensor          int32
	Data            [3]float32
	SensorTimestamp uint64
}

type AudioDeviceEvent struct {
	Common
	Which     uint32
	Recording bool
}

type CameraDeviceEvent struct {
	Common
	Which uint32
}

type SensorEvent struct {
	Common
	Which           uint32
	Data            [6]float32
	SensorTimestamp uint64
}

type TouchFingerEvent struct {
	Common
	TouchID  uint64
	FingerID uint64
	X, Y     float32
	DX, DY   float32
	Pressure float32
	WindowID uint32
}

type ClipboardEvent struct {
	Common
	Owner        bool
	NumMimeTypes int32
}

// DropEvent carries the file name or text in Data. Source names the
// originating application when the platform reports it.
type DropEvent struct {
	Common
	WindowID uint32
	X, Y     float32
	Source   string
	Data     string
}

// UserEvent is the application-defined event. Data1 and Data2 travel as
// plain integers; never store Go pointers in them.
type UserEvent struct {
	Common
	WindowID uint32
	Code     int32
	Data1    uintptr
	Data2    uintptr
}
