//go:build cgo && !windows

package backend

/*
#include <stdlib.h>
#include <SDL3/SDL.h>
*/
import "C"

import "unsafe"

func cwin(w Window) *C.SDL_Window { return (*C.SDL_Window)(w) }

func GetCurrentVideoDriver() string {
	p := C.SDL_GetCurrentVideoDriver()
	if p == nil {
		return ""
	}
	return C.GoString(p)
}

func GetVideoDrivers() []string {
	n := int(C.SDL_GetNumVideoDrivers())
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if p := C.SDL_GetVideoDriver(C.int(i)); p != nil {
			out = append(out, C.GoString(p))
		}
	}
	return out
}

func CreateWindow(title string, w, h int, flags uint64) (Window, error) {
	defer pinThread()()
	ct := C.CString(title)
	defer C.free(unsafe.Pointer(ct))
	win := C.SDL_CreateWindow(ct, C.int(w), C.int(h), C.SDL_WindowFlags(flags))
	if win == nil {
		return nil, lastError("SDL_CreateWindow")
	}
	return Window(unsafe.Pointer(win)), nil
}

func DestroyWindow(w Window) { C.SDL_DestroyWindow(cwin(w)) }

func GetWindowID(w Window) (uint32, error) {
	defer pinThread()()
	id := C.SDL_GetWindowID(cwin(w))
	if id == 0 {
		return 0, lastError("SDL_GetWindowID")
	}
	return uint32(id), nil
}

func GetWindowFromID(id uint32) (Window, error) {
	defer pinThread()()
	w := C.SDL_GetWindowFromID(C.SDL_WindowID(id))
	if w == nil {
		return nil, lastError("SDL_GetWindowFromID")
	}
	return Window(unsafe.Pointer(w)), nil
}

func GetWindowFlags(w Window) uint64 { return uint64(C.SDL_GetWindowFlags(cwin(w))) }

func GetWindowTitle(w Window) string { return C.GoString(C.SDL_GetWindowTitle(cwin(w))) }

func SetWindowTitle(w Window, title string) error {
	defer pinThread()()
	ct := C.CString(title)
	defer C.free(unsafe.Pointer(ct))
	if !C.SDL_SetWindowTitle(cwin(w), ct) {
		return lastError("SDL_SetWindowTitle")
	}
	return nil
}

func GetWindowSize(w Window) (int, int, error) {
	defer pinThread()()
	var width, height C.int
	if !C.SDL_GetWindowSize(cwin(w), &width, &height) {
		return 0, 0, lastError("SDL_GetWindowSize")
	}
	return int(width), int(height), nil
}

func SetWindowSize(w Window, width, height int) error {
	defer pinThread()()
	if !C.SDL_SetWindowSize(cwin(w), C.int(width), C.int(height)) {
		return lastError("SDL_SetWindowSize")
	}
	return nil
}

func ShowWindow(w Window) error {
	defer pinThread()()
	if !C.SDL_ShowWindow(cwin(w)) {
		return lastError("SDL_ShowWindow")
	}
	return nil
}

func HideWindow(w Window) error {
	defer pinThread()()
	if !C.SDL_HideWindow(cwin(w)) {
		return lastError("SDL_HideWindow")
	}
	return nil
}

func SetClipboardText(text string) error {
	defer pinThread()()
	ct := C.CString(text)
	defer C.free(unsafe.Pointer(ct))
	if !C.SDL_SetClipboardText(ct) {
		return lastError("SDL_SetClipboardText")
	}
	return nil
}

// GetClipboardText returns "" both for an empty clipboard and on failure,
// as the native call does; the error distinguishes the two.
func GetClipboardText() (string, error) {
	defer pinThread()()
	C.SDL_ClearError()
	p := C.SDL_GetClipboardText()
	s := takeString(p)
	if s == "" {
		if msg := C.GoString(C.SDL_GetError()); msg != "" {
			return "", &Error{Op: "SDL_GetClipboardText", Msg: msg}
		}
	}
	return s, nil
}

func HasClipboardText() bool { return bool(C.SDL_HasClipboardText()) }

func ClearClipboardData() error {
	defer pinThread()()
	if !C.SDL_ClearClipboardData() {
		return lastError("SDL_ClearClipboardData")
	}
	return nil
}

func SetPrimarySelectionText(text string) error {
	defer pinThread()()
	ct := C.CString(text)
	defer C.free(unsafe.Pointer(ct))
	if !C.SDL_SetPrimarySelectionText(ct) {
		return lastError("SDL_SetPrimarySelectionText")
	}
	return nil
}

func GetPrimarySelectionText() string { return takeString(C.SDL_GetPrimarySelectionText()) }

func HasPrimarySelectionText() bool { return bool(C.SDL_HasPrimarySelectionText()) }
