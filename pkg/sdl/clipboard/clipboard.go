// Package clipboard reads and writes the system clipboard text. The video
// subsystem must be initialised.
package clipboard

import (
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/backend"
)

func SetText(text string) error {
	return sdl.RemapError(backend.SetClipboardText(text))
}

// Text returns "" without error when the clipboard is empty.
func Text() (string, error) {
	text, err := backend.GetClipboardText()
	return text, sdl.RemapError(err)
}

func HasText() bool {
	return backend.HasClipboardText()
}

func Clear() error {
	return sdl.RemapError(backend.ClearClipboardData())
}

// SetPrimarySelection sets the X11/Wayland primary selection.
func SetPrimarySelection(text string) error {
	return sdl.RemapError(backend.SetPrimarySelectionText(text))
}

func PrimarySelection() string {
	return backend.GetPrimarySelectionText()
}

func HasPrimarySelection() bool {
	return backend.HasPrimarySelectionText()
}
