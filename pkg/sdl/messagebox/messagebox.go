// Package messagebox shows modal native message boxes. Show blocks the
// calling goroutine until the user answers.
package messagebox

import (
	"fmt"
	"strings"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/backend"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/video"
)

// Flags select the icon and button order.
type Flags uint32

const (
	Error              Flags = 0x00000010
	Warning            Flags = 0x00000020
	Information        Flags = 0x00000040
	ButtonsLeftToRight Flags = 0x00000080
	ButtonsRightToLeft Flags = 0x00000100
)

// ButtonFlags mark a button as the default for a key.
type ButtonFlags uint32

const (
	ReturnKeyDefault ButtonFlags = 0x00000001
	EscapeKeyDefault ButtonFlags = 0x00000002
)

type Button struct {
	Flags ButtonFlags
	ID    int
	Text  string
}

type Color struct{ R, G, B uint8 }

// ColorScheme indexes match SDL_MessageBoxColorType.
type ColorScheme struct {
	Background       Color
	Text             Color
	ButtonBorder     Color
	ButtonBackground Color
	ButtonSelected   Color
}

// Data describes a box. Window and Colors are optional.
type Data struct {
	Flags   Flags
	Window  *video.Window
	Title   string
	Message string
	Buttons []Button
	Colors  *ColorScheme
}

// Closed is the button ID reported when the box is dismissed without a
// choice.
const Closed = -1

// checkText rejects strings that a C string would silently truncate.
func checkText(what, s string) error {
	if strings.IndexByte(s, 0) >= 0 {
		return fmt.Errorf("%w: %s contains a NUL byte", sdl.ErrInvalidArgument, what)
	}
	return nil
}

// Validate checks the text and the button list before anything is
// marshalled.
func (d *Data) Validate() error {
	if err := checkText("title", d.Title); err != nil {
		return err
	}
	if err := checkText("message", d.Message); err != nil {
		return err
	}
	if len(d.Buttons) == 0 {
		return fmt.Errorf("%w: message box needs at least one button", sdl.ErrInvalidArgument)
	}
	seen := make(map[int]struct{}, len(d.Buttons))
	var returns, escapes int
	for _, b := range d.Buttons {
		if _, dup := seen[b.ID]; dup {
			return fmt.Errorf("%w: duplicate button id %d", sdl.ErrInvalidArgument, b.ID)
		}
		seen[b.ID] = struct{}{}
		if err := checkText(fmt.Sprintf("button %d text", b.ID), b.Text); err != nil {
			return err
		}
		if b.Flags&ReturnKeyDefault != 0 {
			returns++
		}
		if b.Flags&EscapeKeyDefault != 0 {
			escapes++
		}
	}
	if returns > 1 {
		return fmt.Errorf("%w: %d return-key default buttons", sdl.ErrInvalidArgument, returns)
	}
	if escapes > 1 {
		return fmt.Errorf("%w: %d escape-key default buttons", sdl.ErrInvalidArgument, escapes)
	}
	return nil
}

func (d *Data) native() *backend.MessageBoxData {
	n := &backend.MessageBoxData{
		Flags:   uint32(d.Flags),
		Window:  d.Window.Handle(),
		Title:   d.Title,
		Message: d.Message,
		Buttons: make([]backend.MessageBoxButton, len(d.Buttons)),
	}
	for i, b := range d.Buttons {
		n.Buttons[i] = backend.MessageBoxButton{Flags: uint32(b.Flags), ID: b.ID, Text: b.Text}
	}
	if c := d.Colors; c != nil {
		n.Colors = &[5][3]uint8{}
		for i, col := range []Color{c.Background, c.Text, c.ButtonBorder, c.ButtonBackground, c.ButtonSelected} {
			n.Colors[i] = [3]uint8{col.R, col.G, col.B}
		}
	}
	return n
}

// Show displays d and returns the chosen button ID, or Closed.
func Show(d Data) (int, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	id, err := backend.ShowMessageBox(d.native())
	if err != nil {
		return 0, sdl.RemapError(err)
	}
	return id, nil
}

// ShowSimple displays a box with a single OK button. parent may be nil.
func ShowSimple(flags Flags, title, message string, parent *video.Window) error {
	if err := checkText("title", title); err != nil {
		return err
	}
	if err := checkText("message", message); err != nil {
		return err
	}
	return sdl.RemapError(backend.ShowSimpleMessageBox(uint32(flags), title, message, parent.Handle()))
}
