// Package camera enumerates cameras and pulls frames from them. Frame
// pixels are copied into Go memory and the native frame is released before
// AcquireFrame returns.
package camera

import (
	"fmt"
	"time"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/backend"
)

// ID identifies a camera device. Zero is invalid.
type ID uint32

type Position int

const (
	PositionUnknown Position = iota
	PositionFrontFacing
	PositionBackFacing
)

func (p Position) String() string {
	switch p {
	case PositionFrontFacing:
		return "front"
	case PositionBackFacing:
		return "back"
	default:
		return "unknown"
	}
}

// Permission is the user's answer to the camera access prompt.
type Permission int

const (
	PermissionDenied   Permission = -1
	PermissionPending  Permission = 0
	PermissionApproved Permission = 1
)

func (p Permission) String() string {
	switch p {
	case PermissionDenied:
		return "denied"
	case PermissionApproved:
		return "approved"
	default:
		return "pending"
	}
}

// Spec is a pixel format, size and frame rate a camera can deliver.
type Spec struct {
	Format               uint32
	Colorspace           uint32
	Width                int
	Height               int
	FramerateNumerator   int
	FramerateDenominator int
}

// FPS is the frame rate, or 0 when the denominator is unset.
func (s Spec) FPS() float64 {
	if s.FramerateDenominator == 0 {
		return 0
	}
	return float64(s.FramerateNumerator) / float64(s.FramerateDenominator)
}

func (s Spec) native() backend.CameraSpec { return backend.CameraSpec(s) }

// Frame is one captured image.
type Frame struct {
	Format    uint32
	Width     int
	Height    int
	Pitch     int
	Pixels    []byte
	Timestamp time.Duration
}

func Drivers() []string {
	return backend.GetCameraDrivers()
}

func CurrentDriver() string {
	return backend.GetCurrentCameraDriver()
}

func IDs() ([]ID, error) {
	raw, err := backend.GetCameras()
	if err != nil {
		return nil, sdl.RemapError(err)
	}
	out := make([]ID, len(raw))
	for i, id := range raw {
		out[i] = ID(id)
	}
	return out, nil
}

func Name(id ID) (string, error) {
	if id == 0 {
		return "", sdl.ErrInvalidHandle
	}
	name, err := backend.GetCameraName(uint32(id))
	return name, sdl.RemapError(err)
}

func PositionOf(id ID) Position {
	if id == 0 {
		return PositionUnknown
	}
	return Position(backend.GetCameraPosition(uint32(id)))
}

func SupportedFormats(id ID) ([]Spec, error) {
	if id == 0 {
		return nil, sdl.ErrInvalidHandle
	}
	raw, err := backend.GetCameraSupportedFormats(uint32(id))
	if err != nil {
		return nil, sdl.RemapError(err)
	}
	out := make([]Spec, len(raw))
	for i, s := range raw {
		out[i] = Spec(s)
	}
	return out, nil
}

// Camera is an open device. Frames only arrive once permission is approved.
type Camera struct {
	c backend.Camera
}

// Open starts id. A nil spec takes the device's preferred format.
func Open(id ID, spec *Spec) (*Camera, error) {
	if id == 0 {
		return nil, sdl.ErrInvalidHandle
	}
	var ns *backend.CameraSpec
	if spec != nil {
		if spec.Width < 0 || spec.Height < 0 {
			return nil, fmt.Errorf("%w: camera size %dx%d", sdl.ErrInvalidArgument, spec.Width, spec.Height)
		}
		n := spec.native()
		ns = &n
	}
	c, err := backend.OpenCamera(uint32(id), ns)
	if err != nil {
		return nil, sdl.RemapError(err)
	}
	return &Camera{c: c}, nil
}

func (c *Camera) valid() bool { return c != nil && c.c != nil }

func (c *Camera) PermissionState() Permission {
	if !c.valid() {
		return PermissionDenied
	}
	return Permission(backend.GetCameraPermissionState(c.c))
}

func (c *Camera) ID() (ID, error) {
	if !c.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	id, err := backend.GetCameraID(c.c)
	return ID(id), sdl.RemapError(err)
}

// Format is the spec frames are delivered in after any conversion.
func (c *Camera) Format() (Spec, error) {
	if !c.valid() {
		return Spec{}, sdl.ErrInvalidHandle
	}
	s, err := backend.GetCameraFormat(c.c)
	if err != nil {
		return Spec{}, sdl.RemapError(err)
	}
	return Spec(s), nil
}

// AcquireFrame returns the next frame, or ok=false when none is ready.
func (c *Camera) AcquireFrame() (Frame, bool, error) {
	if !c.valid() {
		return Frame{}, false, sdl.ErrInvalidHandle
	}
	f, ok := backend.AcquireCameraFrame(c.c)
	if !ok {
		return Frame{}, false, nil
	}
	return Frame{
		Format:    f.Format,
		Width:     f.Width,
		Height:    f.Height,
		Pitch:     f.Pitch,
		Pixels:    f.Pixels,
		Timestamp: time.Duration(f.TimestampNS),
	}, true, nil
}

func (c *Camera) Close() {
	if !c.valid() {
		return
	}
	backend.CloseCamera(c.c)
	c.c = nil
}
