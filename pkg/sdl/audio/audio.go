// Package audio enumerates audio devices and moves samples through
// conversion streams bound to them.
package audio

import (
	"fmt"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/backend"
)

// DeviceID identifies a physical or logical audio device. Zero is invalid.
type DeviceID uint32

// Default device requests for OpenDevice and OpenDeviceStream.
const (
	DefaultPlayback  DeviceID = 0xFFFFFFFF
	DefaultRecording DeviceID = 0xFFFFFFFE
)

func Drivers() []string {
	return backend.GetAudioDrivers()
}

// CurrentDriver returns "" when audio is not initialised.
func CurrentDriver() string {
	return backend.GetCurrentAudioDriver()
}

func deviceIDs(raw []uint32, err error) ([]DeviceID, error) {
	if err != nil {
		return nil, sdl.RemapError(err)
	}
	out := make([]DeviceID, len(raw))
	for i, id := range raw {
		out[i] = DeviceID(id)
	}
	return out, nil
}

func PlaybackDevices() ([]DeviceID, error) {
	return deviceIDs(backend.GetAudioPlaybackDevices())
}

func RecordingDevices() ([]DeviceID, error) {
	return deviceIDs(backend.GetAudioRecordingDevices())
}

func DeviceName(id DeviceID) (string, error) {
	if id == 0 {
		return "", sdl.ErrInvalidHandle
	}
	name, err := backend.GetAudioDeviceName(uint32(id))
	return name, sdl.RemapError(err)
}

// DeviceFormat returns the device's preferred spec and its buffer size in
// sample frames.
func DeviceFormat(id DeviceID) (Spec, int, error) {
	if id == 0 {
		return Spec{}, 0, sdl.ErrInvalidHandle
	}
	spec, frames, err := backend.GetAudioDeviceFormat(uint32(id))
	if err != nil {
		return Spec{}, 0, sdl.RemapError(err)
	}
	return specFrom(spec), frames, nil
}

// OpenDevice opens a logical device on id. A nil spec lets the device pick.
func OpenDevice(id DeviceID, spec *Spec) (DeviceID, error) {
	if id == 0 {
		return 0, sdl.ErrInvalidHandle
	}
	var ns *backend.AudioSpec
	if spec != nil {
		if err := spec.Validate(); err != nil {
			return 0, err
		}
		n := spec.native()
		ns = &n
	}
	dev, err := backend.OpenAudioDevice(uint32(id), ns)
	if err != nil {
		return 0, sdl.RemapError(err)
	}
	return DeviceID(dev), nil
}

func CloseDevice(id DeviceID) {
	if id == 0 {
		return
	}
	backend.CloseAudioDevice(uint32(id))
}

func PauseDevice(id DeviceID) error {
	if id == 0 {
		return sdl.ErrInvalidHandle
	}
	return sdl.RemapError(backend.PauseAudioDevice(uint32(id)))
}

func ResumeDevice(id DeviceID) error {
	if id == 0 {
		return sdl.ErrInvalidHandle
	}
	return sdl.RemapError(backend.ResumeAudioDevice(uint32(id)))
}

func DevicePaused(id DeviceID) bool {
	return id != 0 && backend.AudioDevicePaused(uint32(id))
}

func DeviceGain(id DeviceID) (float32, error) {
	if id == 0 {
		return -1, sdl.ErrInvalidHandle
	}
	g, err := backend.GetAudioDeviceGain(uint32(id))
	return g, sdl.RemapError(err)
}

// SetDeviceGain scales the output of a logical device; 1 is unchanged.
func SetDeviceGain(id DeviceID, gain float32) error {
	if id == 0 {
		return sdl.ErrInvalidHandle
	}
	if gain < 0 {
		return fmt.Errorf("%w: negative gain %v", sdl.ErrInvalidArgument, gain)
	}
	return sdl.RemapError(backend.SetAudioDeviceGain(uint32(id), gain))
}
