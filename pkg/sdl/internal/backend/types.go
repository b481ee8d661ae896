package backend

import (
	"errors"
	"fmt"
	"unsafe"
)

// Opaque native handles. A nil handle is always invalid.
type (
	Window       unsafe.Pointer
	Joystick     unsafe.Pointer
	Gamepad      unsafe.Pointer
	Sensor       unsafe.Pointer
	Haptic       unsafe.Pointer
	HIDDevice    unsafe.Pointer
	IOStream     unsafe.Pointer
	AsyncIO      unsafe.Pointer
	AsyncIOQueue unsafe.Pointer
	Storage      unsafe.Pointer
	AudioStream  unsafe.Pointer
	Camera       unsafe.Pointer
	Mutex        unsafe.Pointer
	RWLock       unsafe.Pointer
	Semaphore    unsafe.Pointer
	Condition    unsafe.Pointer
	AtomicInt    unsafe.Pointer
	AtomicU32    unsafe.Pointer
	SpinLock     unsafe.Pointer
)

var (
	// ErrNotBuilt reports that the native bindings were not linked into the
	// current binary.
	ErrNotBuilt = errors.New("sdl/internal/backend: native bindings not built")

	// ErrCGONotEnabled signals that the package was compiled without cgo and
	// therefore cannot talk to the native library.
	ErrCGONotEnabled = fmt.Errorf("%w: cgo not enabled", ErrNotBuilt)

	// ErrEventFiltered is returned by PushEvent when an event filter dropped
	// the event without setting an error.
	ErrEventFiltered = errors.New("sdl: event was filtered")
)

// Error carries the native error string captured right after a failed call.
type Error struct {
	Op  string
	Msg string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return "sdl: " + e.Op + " failed"
	}
	return "sdl: " + e.Op + ": " + e.Msg
}

// EventSize is the size of the native SDL_Event union.
const EventSize = 128

// Event is a copy of one native event record. Pointer-bearing events have
// their strings resolved while the native record is still alive.
type Event struct {
	Raw    [EventSize]byte
	Text   string
	Source string
}

// EventFunc is the Go side of an event watch or filter.
type EventFunc func(ev Event) bool

// TimerFunc receives the timer id and the current interval in milliseconds
// and returns the next interval; 0 cancels the timer.
type TimerFunc func(id uint32, interval uint32) uint32

// TimerNSFunc is TimerFunc with nanosecond intervals.
type TimerNSFunc func(id uint32, interval uint64) uint64

// LogFunc receives every native log line once routed.
type LogFunc func(category int, priority int, message string)

// IOStatus mirrors SDL_IOStatus.
type IOStatus int

const (
	IOStatusReady IOStatus = iota
	IOStatusError
	IOStatusEOF
	IOStatusNotReady
	IOStatusReadOnly
	IOStatusWriteOnly
)

// StreamIO is implemented by Go values that back a native SDL_IOStream.
type StreamIO interface {
	Size() (int64, error)
	Seek(offset int64, whence int) (int64, error)
	Read(p []byte) (int, IOStatus)
	Write(p []byte) (int, IOStatus)
	Flush() error
	Close() error
}

// EnumerationResult mirrors SDL_EnumerationResult.
type EnumerationResult int

const (
	EnumContinue EnumerationResult = iota
	EnumSuccess
	EnumFailure
)

// EnumerateFunc is called once per directory entry.
type EnumerateFunc func(dir, name string) EnumerationResult

// PathInfo mirrors SDL_PathInfo. Times are nanoseconds since the Unix epoch.
type PathInfo struct {
	Type       int
	Size       uint64
	CreateTime int64
	ModifyTime int64
	AccessTime int64
}

// StorageIO is implemented by Go values that back a native SDL_Storage.
type StorageIO interface {
	Close() error
	Ready() bool
	Enumerate(path string, fn EnumerateFunc) error
	Info(path string) (PathInfo, error)
	ReadFile(path string, dst []byte) error
	WriteFile(path string, src []byte) error
	Mkdir(path string) error
	Remove(path string) error
	Rename(oldpath, newpath string) error
	Copy(oldpath, newpath string) error
	SpaceRemaining() uint64
}

// GUID is the 16-byte SDL_GUID.
type GUID [16]byte

// VirtualJoystickDesc is the subset of SDL_VirtualJoystickDesc the bindings
// expose.
type VirtualJoystickDesc struct {
	Type       uint16
	VendorID   uint16
	ProductID  uint16
	NumAxes    uint16
	NumButtons uint16
	NumBalls   uint16
	NumHats    uint16
	Name       string
}

// Haptic effect type bits, matching SDL_HAPTIC_*.
const (
	HapticConstant     uint32 = 1 << 0
	HapticSine         uint32 = 1 << 1
	HapticSquare       uint32 = 1 << 2
	HapticTriangle     uint32 = 1 << 3
	HapticSawtoothUp   uint32 = 1 << 4
	HapticSawtoothDown uint32 = 1 << 5
	HapticRamp         uint32 = 1 << 6
	HapticSpring       uint32 = 1 << 7
	HapticDamper       uint32 = 1 << 8
	HapticInertia      uint32 = 1 << 9
	HapticFriction     uint32 = 1 << 10
	HapticLeftRight    uint32 = 1 << 11
	HapticCustom       uint32 = 1 << 15
)

// HapticDirection mirrors SDL_HapticDirection.
type HapticDirection struct {
	Type uint8
	Dir  [3]int32
}

// HapticEffect is a flattened SDL_HapticEffect; Type selects which fields
// are marshalled.
type HapticEffect struct {
	Type      uint16
	Direction HapticDirection
	Length    uint32
	Delay     uint16
	Button    uint16
	Interval  uint16

	Level int16

	Period    uint16
	Magnitude int16
	Offset    int16
	Phase     uint16

	RightSat   [3]uint16
	LeftSat    [3]uint16
	RightCoeff [3]int16
	LeftCoeff  [3]int16
	Deadband   [3]uint16
	Center     [3]int16

	Start int16
	End   int16

	AttackLength uint16
	AttackLevel  uint16
	FadeLength   uint16
	FadeLevel    uint16

	LargeMagnitude uint16
	SmallMagnitude uint16
}

// HIDDeviceInfo mirrors one node of the SDL_hid_device_info list.
type HIDDeviceInfo struct {
	Path              string
	VendorID          uint16
	ProductID         uint16
	SerialNumber      string
	ReleaseNumber     uint16
	Manufacturer      string
	Product           string
	UsagePage         uint16
	Usage             uint16
	InterfaceNumber   int
	InterfaceClass    int
	InterfaceSubclass int
	InterfaceProtocol int
	BusType           int
}

// AsyncOutcome mirrors SDL_AsyncIOOutcome after the request bookkeeping has
// been released.
type AsyncOutcome struct {
	Request     uintptr
	File        AsyncIO
	Type        int
	Result      int
	Offset      uint64
	Requested   uint64
	Transferred uint64
	Data        []byte
}

// AudioSpec mirrors SDL_AudioSpec.
type AudioSpec struct {
	Format   uint16
	Channels int
	Freq     int
}

// CameraSpec mirrors SDL_CameraSpec.
type CameraSpec struct {
	Format               uint32
	Colorspace           uint32
	Width                int
	Height               int
	FramerateNumerator   int
	FramerateDenominator int
}

// Frame is a camera frame whose pixels were copied out of native memory.
type Frame struct {
	Format      uint32
	Width       int
	Height      int
	Pitch       int
	Pixels      []byte
	TimestampNS uint64
}

// MessageBoxButton mirrors SDL_MessageBoxButtonData.
type MessageBoxButton struct {
	Flags uint32
	ID    int
	Text  string
}

// MessageBoxData mirrors SDL_MessageBoxData. Colors is optional.
type MessageBoxData struct {
	Flags   uint32
	Window  Window
	Title   string
	Message string
	Buttons []MessageBoxButton
	Colors  *[5][3]uint8
}
