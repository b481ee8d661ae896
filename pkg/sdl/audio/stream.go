package audio

import (
	"fmt"
	"io"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/backend"
)

// Stream converts audio from its source spec to its destination spec.
// Write puts source samples in; Read takes converted samples out.
type Stream struct {
	s backend.AudioStream
}

var (
	_ io.Reader = (*Stream)(nil)
	_ io.Writer = (*Stream)(nil)
)

func NewStream(src, dst Spec) (*Stream, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}
	if err := dst.Validate(); err != nil {
		return nil, err
	}
	s, err := backend.CreateAudioStream(src.native(), dst.native())
	if err != nil {
		return nil, sdl.RemapError(err)
	}
	return &Stream{s: s}, nil
}

// OpenDeviceStream opens id and binds a new stream fed with spec samples.
// The device starts paused; call ResumeDevice. Destroy closes the device.
func OpenDeviceStream(id DeviceID, spec Spec) (*Stream, error) {
	if id == 0 {
		return nil, sdl.ErrInvalidHandle
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	s, err := backend.OpenAudioDeviceStream(uint32(id), spec.native())
	if err != nil {
		return nil, sdl.RemapError(err)
	}
	return &Stream{s: s}, nil
}

func (s *Stream) valid() bool { return s != nil && s.s != nil }

func (s *Stream) Format() (src, dst Spec, err error) {
	if !s.valid() {
		return Spec{}, Spec{}, sdl.ErrInvalidHandle
	}
	ns, nd, err := backend.GetAudioStreamFormat(s.s)
	if err != nil {
		return Spec{}, Spec{}, sdl.RemapError(err)
	}
	return specFrom(ns), specFrom(nd), nil
}

// Write queues source samples; len(p) should be a multiple of the source
// frame size.
func (s *Stream) Write(p []byte) (int, error) {
	if !s.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	if err := backend.PutAudioStreamData(s.s, p); err != nil {
		return 0, sdl.RemapError(err)
	}
	return len(p), nil
}

// Read copies converted samples into p. It returns io.EOF once the stream
// holds no input at all, and 0 with a nil error while input is buffered but
// not yet convertible; Flush releases that remainder.
func (s *Stream) Read(p []byte) (int, error) {
	if !s.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	if len(p) == 0 {
		return 0, nil
	}
	n, err := backend.GetAudioStreamData(s.s, p)
	if err != nil {
		return 0, sdl.RemapError(err)
	}
	if n == 0 {
		if queued, err := backend.GetAudioStreamQueued(s.s); err == nil && queued == 0 {
			return 0, io.EOF
		}
	}
	return n, nil
}

// Available is the number of converted bytes ready for Read.
func (s *Stream) Available() (int, error) {
	if !s.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	n, err := backend.GetAudioStreamAvailable(s.s)
	return n, sdl.RemapError(err)
}

// Queued is the number of source bytes not yet consumed.
func (s *Stream) Queued() (int, error) {
	if !s.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	n, err := backend.GetAudioStreamQueued(s.s)
	return n, sdl.RemapError(err)
}

// Flush converts all pending input, padding the last frame if needed.
func (s *Stream) Flush() error {
	if !s.valid() {
		return sdl.ErrInvalidHandle
	}
	return sdl.RemapError(backend.FlushAudioStream(s.s))
}

// Clear drops all buffered data.
func (s *Stream) Clear() error {
	if !s.valid() {
		return sdl.ErrInvalidHandle
	}
	return sdl.RemapError(backend.ClearAudioStream(s.s))
}

func (s *Stream) Destroy() {
	if !s.valid() {
		return
	}
	backend.DestroyAudioStream(s.s)
	s.s = nil
}

// Bind attaches the stream to an opened logical device.
func (s *Stream) Bind(dev DeviceID) error {
	if !s.valid() || dev == 0 {
		return sdl.ErrInvalidHandle
	}
	return sdl.RemapError(backend.BindAudioStream(uint32(dev), s.s))
}

func (s *Stream) Unbind() {
	if !s.valid() {
		return
	}
	backend.UnbindAudioStream(s.s)
}

// Device returns the bound device, or 0.
func (s *Stream) Device() DeviceID {
	if !s.valid() {
		return 0
	}
	return DeviceID(backend.GetAudioStreamDevice(s.s))
}

func (s *Stream) PauseDevice() error {
	if !s.valid() {
		return sdl.ErrInvalidHandle
	}
	return sdl.RemapError(backend.PauseAudioStreamDevice(s.s))
}

func (s *Stream) ResumeDevice() error {
	if !s.valid() {
		return sdl.ErrInvalidHandle
	}
	if s.Device() == 0 {
		return fmt.Errorf("%w: stream is not bound to a device", sdl.ErrInvalidArgument)
	}
	return sdl.RemapError(backend.ResumeAudioStreamDevice(s.s))
}
