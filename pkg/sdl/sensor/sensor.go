// Package sensor reads accelerometers and gyroscopes.
package sensor

import (
	"fmt"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/backend"
)

// StandardGravity is the earth gravity in m/s², as reported on the
// accelerometer axis pointing down.
const StandardGravity = 9.80665

// maxValues bounds Data requests; no native sensor reports more.
const maxValues = 16

// ID identifies a sensor. Zero is invalid.
type ID uint32

// Type mirrors SDL_SensorType.
type Type int

const (
	TypeInvalid Type = iota - 1
	TypeUnknown
	TypeAccel
	TypeGyro
	TypeAccelL
	TypeGyroL
	TypeAccelR
	TypeGyroR
)

func (t Type) String() string {
	switch t {
	case TypeUnknown:
		return "unknown"
	case TypeAccel:
		return "accel"
	case TypeGyro:
		return "gyro"
	case TypeAccelL:
		return "accel-left"
	case TypeGyroL:
		return "gyro-left"
	case TypeAccelR:
		return "accel-right"
	case TypeGyroR:
		return "gyro-right"
	default:
		return "invalid"
	}
}

type Sensor struct {
	s backend.Sensor
}

func IDs() ([]ID, error) {
	raw, err := backend.GetSensors()
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
	name, err := backend.GetSensorNameForID(uint32(id))
	return name, sdl.RemapError(err)
}

func TypeForID(id ID) Type {
	if id == 0 {
		return TypeInvalid
	}
	return Type(backend.GetSensorTypeForID(uint32(id)))
}

// NonPortableTypeForID returns the platform-specific sensor type, or -1.
func NonPortableTypeForID(id ID) int {
	if id == 0 {
		return -1
	}
	return backend.GetSensorNonPortableTypeForID(uint32(id))
}

func Open(id ID) (*Sensor, error) {
	if id == 0 {
		return nil, sdl.ErrInvalidHandle
	}
	s, err := backend.OpenSensor(uint32(id))
	if err != nil {
		return nil, sdl.RemapError(err)
	}
	return &Sensor{s: s}, nil
}

// FromID returns an already opened sensor.
func FromID(id ID) (*Sensor, error) {
	if id == 0 {
		return nil, sdl.ErrInvalidHandle
	}
	s, err := backend.GetSensorFromID(uint32(id))
	if err != nil {
		return nil, sdl.RemapError(err)
	}
	return &Sensor{s: s}, nil
}

func (s *Sensor) valid() bool { return s != nil && s.s != nil }

func (s *Sensor) Name() (string, error) {
	if !s.valid() {
		return "", sdl.ErrInvalidHandle
	}
	name, err := backend.GetSensorName(s.s)
	return name, sdl.RemapError(err)
}

func (s *Sensor) Type() Type {
	if !s.valid() {
		return TypeInvalid
	}
	return Type(backend.GetSensorType(s.s))
}

func (s *Sensor) NonPortableType() int {
	if !s.valid() {
		return -1
	}
	return backend.GetSensorNonPortableType(s.s)
}

func (s *Sensor) ID() (ID, error) {
	if !s.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	id, err := backend.GetSensorID(s.s)
	return ID(id), sdl.RemapError(err)
}

// Data returns the n most recent values. Accelerometers report m/s² and
// gyroscopes rad/s, both as x, y, z.
func (s *Sensor) Data(n int) ([]float32, error) {
	if !s.valid() {
		return nil, sdl.ErrInvalidHandle
	}
	if n <= 0 || n > maxValues {
		return nil, fmt.Errorf("%w: sensor value count %d", sdl.ErrInvalidArgument, n)
	}
	out := make([]float32, n)
	if err := backend.GetSensorData(s.s, out); err != nil {
		return nil, sdl.RemapError(err)
	}
	return out, nil
}

func (s *Sensor) Close() {
	if !s.valid() {
		return
	}
	backend.CloseSensor(s.s)
	s.s = nil
}

// Update refreshes sensor state when sensor events are disabled.
func Update() {
	backend.UpdateSensors()
}
