//go:build cgo && !windows

package backend

/*
#include <stdlib.h>
#include <string.h>
#include <SDL3/SDL.h>
*/
import "C"

import "unsafe"

func align8(n uintptr) uintptr { return (n + 7) &^ 7 }

// messageBoxBlock lays out the data record, the button array, the optional
// colour scheme and every string in one native allocation. It returns nils
// when the allocation fails. Strings must not contain NUL bytes.
func messageBoxBlock(d *MessageBoxData) (unsafe.Pointer, *C.SDL_MessageBoxData) {
	dataSize := align8(unsafe.Sizeof(C.SDL_MessageBoxData{}))
	buttonsSize := align8(uintptr(len(d.Buttons)) * unsafe.Sizeof(C.SDL_MessageBoxButtonData{}))
	schemeSize := uintptr(0)
	if d.Colors != nil {
		schemeSize = align8(unsafe.Sizeof(C.SDL_MessageBoxColorScheme{}))
	}
	strSize := uintptr(len(d.Title) + 1 + len(d.Message) + 1)
	for _, b := range d.Buttons {
		strSize += uintptr(len(b.Text) + 1)
	}

	block := C.calloc(1, C.size_t(dataSize+buttonsSize+schemeSize+strSize))
	if block == nil {
		return nil, nil
	}
	data := (*C.SDL_MessageBoxData)(block)
	strs := unsafe.Add(block, dataSize+buttonsSize+schemeSize)
	putString := func(s string) *C.char {
		p := (*C.char)(strs)
		if len(s) > 0 {
			C.memcpy(strs, unsafe.Pointer(unsafe.StringData(s)), C.size_t(len(s)))
		}
		strs = unsafe.Add(strs, len(s)+1)
		return p
	}

	data.flags = C.SDL_MessageBoxFlags(d.Flags)
	data.window = (*C.SDL_Window)(d.Window)
	data.title = putString(d.Title)
	data.message = putString(d.Message)
	data.numbuttons = C.int(len(d.Buttons))
	if len(d.Buttons) > 0 {
		buttons := unsafe.Slice((*C.SDL_MessageBoxButtonData)(unsafe.Add(block, dataSize)), len(d.Buttons))
		for i, b := range d.Buttons {
			buttons[i].flags = C.SDL_MessageBoxButtonFlags(b.Flags)
			buttons[i].buttonID = C.int(b.ID)
			buttons[i].text = putString(b.Text)
		}
		data.buttons = &buttons[0]
	}
	if d.Colors != nil {
		scheme := (*C.SDL_MessageBoxColorScheme)(unsafe.Add(block, dataSize+buttonsSize))
		for i, c := range d.Colors {
			scheme.colors[i].r = C.Uint8(c[0])
			scheme.colors[i].g = C.Uint8(c[1])
			scheme.colors[i].b = C.Uint8(c[2])
		}
		data.colorScheme = scheme
	}
	return block, data
}

// ShowMessageBox blocks until the user picks a button and returns its ID;
// -1 means the box was closed without a choice.
func ShowMessageBox(d *MessageBoxData) (int, error) {
	defer pinThread()()
	block, data := messageBoxBlock(d)
	if block == nil {
		return 0, errOutOfMemory("SDL_ShowMessageBox")
	}
	defer C.free(block)
	var id C.int
	if !C.SDL_ShowMessageBox(data, &id) {
		return 0, lastError("SDL_ShowMessageBox")
	}
	return int(id), nil
}

func ShowSimpleMessageBox(flags uint32, title, message string, w Window) error {
	defer pinThread()()
	ct, cm := C.CString(title), C.CString(message)
	defer C.free(unsafe.Pointer(ct))
	defer C.free(unsafe.Pointer(cm))
	if !C.SDL_ShowSimpleMessageBox(C.SDL_MessageBoxFlags(flags), ct, cm, (*C.SDL_Window)(w)) {
		return lastError("SDL_ShowSimpleMessageBox")
	}
	return nil
}
