// Package video exposes the small window surface that message boxes,
// keyboard focus and window events need.
package video

import (
	"fmt"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/backend"
)

// WindowFlags mirrors SDL_WindowFlags.
type WindowFlags uint64

const (
	WindowFullscreen       WindowFlags = 0x0000000000000001
	WindowOpenGL           WindowFlags = 0x0000000000000002
	WindowOccluded         WindowFlags = 0x0000000000000004
	WindowHidden           WindowFlags = 0x0000000000000008
	WindowBorderless       WindowFlags = 0x0000000000000010
	WindowResizable        WindowFlags = 0x0000000000000020
	WindowMinimized        WindowFlags = 0x0000000000000040
	WindowMaximized        WindowFlags = 0x0000000000000080
	WindowMouseGrabbed     WindowFlags = 0x0000000000000100
	WindowInputFocus       WindowFlags = 0x0000000000000200
	WindowMouseFocus       WindowFlags = 0x0000000000000400
	WindowExternal         WindowFlags = 0x0000000000000800
	WindowModal            WindowFlags = 0x0000000000001000
	WindowHighPixelDensity WindowFlags = 0x0000000000002000
	WindowMouseCapture     WindowFlags = 0x0000000000004000
	WindowAlwaysOnTop      WindowFlags = 0x0000000000010000
	WindowUtility          WindowFlags = 0x0000000000020000
	WindowTooltip          WindowFlags = 0x0000000000040000
	WindowPopupMenu        WindowFlags = 0x0000000000080000
	WindowKeyboardGrabbed  WindowFlags = 0x0000000000100000
	WindowVulkan           WindowFlags = 0x0000000010000000
	WindowMetal            WindowFlags = 0x0000000020000000
	WindowTransparent      WindowFlags = 0x0000000040000000
	WindowNotFocusable     WindowFlags = 0x0000000080000000
)

// WindowID identifies a window in events. Zero is invalid.
type WindowID uint32

// Window is a native window. Destroy it when done.
type Window struct {
	w backend.Window
}

func CurrentDriver() string {
	return backend.GetCurrentVideoDriver()
}

func Drivers() []string {
	return backend.GetVideoDrivers()
}

// CreateWindow opens a window of w by h screen units.
func CreateWindow(title string, w, h int, flags WindowFlags) (*Window, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: window size %dx%d", sdl.ErrInvalidArgument, w, h)
	}
	win, err := backend.CreateWindow(title, w, h, uint64(flags))
	if err != nil {
		return nil, sdl.RemapError(err)
	}
	return &Window{w: win}, nil
}

// FromID finds an existing window, such as the one named in an event.
func FromID(id WindowID) (*Window, error) {
	if id == 0 {
		return nil, sdl.ErrInvalidHandle
	}
	win, err := backend.GetWindowFromID(uint32(id))
	if err != nil {
		return nil, sdl.RemapError(err)
	}
	return &Window{w: win}, nil
}

func (w *Window) valid() bool { return w != nil && w.w != nil }

// Handle exposes the native window to sibling packages.
func (w *Window) Handle() backend.Window {
	if w == nil {
		return nil
	}
	return w.w
}

func (w *Window) Destroy() {
	if !w.valid() {
		return
	}
	backend.DestroyWindow(w.w)
	w.w = nil
}

func (w *Window) ID() (WindowID, error) {
	if !w.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	id, err := backend.GetWindowID(w.w)
	return WindowID(id), sdl.RemapError(err)
}

func (w *Window) Flags() WindowFlags {
	if !w.valid() {
		return 0
	}
	return WindowFlags(backend.GetWindowFlags(w.w))
}

func (w *Window) Title() string {
	if !w.valid() {
		return ""
	}
	return backend.GetWindowTitle(w.w)
}

func (w *Window) SetTitle(title string) error {
	if !w.valid() {
		return sdl.ErrInvalidHandle
	}
	return sdl.RemapError(backend.SetWindowTitle(w.w, title))
}

func (w *Window) Size() (int, int, error) {
	if !w.valid() {
		return 0, 0, sdl.ErrInvalidHandle
	}
	width, height, err := backend.GetWindowSize(w.w)
	return width, height, sdl.RemapError(err)
}

func (w *Window) SetSize(width, height int) error {
	if !w.valid() {
		return sdl.ErrInvalidHandle
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", sdl.ErrInvalidArgument, width, height)
	}
	return sdl.RemapError(backend.SetWindowSize(w.w, width, height))
}

func (w *Window) Show() error {
	if !w.valid() {
		return sdl.ErrInvalidHandle
	}
	return sdl.RemapError(backend.ShowWindow(w.w))
}

func (w *Window) Hide() error {
	if !w.valid() {
		return sdl.ErrInvalidHandle
	}
	return sdl.RemapError(backend.HideWindow(w.w))
}
