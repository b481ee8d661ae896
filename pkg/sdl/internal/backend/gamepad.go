//go:build cgo && !windows

package backend

/*
#include <stdlib.h>
#include <SDL3/SDL.h>
*/
import "C"

import "unsafe"

func cpad(g Gamepad) *C.SDL_Gamepad { return (*C.SDL_Gamepad)(g) }

func HasGamepad() bool { return bool(C.SDL_HasGamepad()) }

func GetGamepads() ([]uint32, error) {
	defer pinThread()()
	var n C.int
	ids := C.SDL_GetGamepads(&n)
	if ids == nil {
		return nil, lastError("SDL_GetGamepads")
	}
	return idSlice(ids, n), nil
}

func IsGamepad(id uint32) bool { return bool(C.SDL_IsGamepad(C.SDL_JoystickID(id))) }

func GetGamepadNameForID(id uint32) (string, error) {
	defer pinThread()()
	name := C.SDL_GetGamepadNameForID(C.SDL_JoystickID(id))
	if name == nil {
		return "", lastError("SDL_GetGamepadNameForID")
	}
	return C.GoString(name), nil
}

func GetGamepadTypeForID(id uint32) int {
	return int(C.SDL_GetGamepadTypeForID(C.SDL_JoystickID(id)))
}

func GetGamepadMappingForID(id uint32) (string, error) {
	defer pinThread()()
	m := C.SDL_GetGamepadMappingForID(C.SDL_JoystickID(id))
	if m == nil {
		return "", lastError("SDL_GetGamepadMappingForID")
	}
	return takeString(m), nil
}

func OpenGamepad(id uint32) (Gamepad, error) {
	defer pinThread()()
	g := C.SDL_OpenGamepad(C.SDL_JoystickID(id))
	if g == nil {
		return nil, lastError("SDL_OpenGamepad")
	}
	return Gamepad(unsafe.Pointer(g)), nil
}

func CloseGamepad(g Gamepad) { C.SDL_CloseGamepad(cpad(g)) }

func GetGamepadName(g Gamepad) (string, error) {
	defer pinThread()()
	name := C.SDL_GetGamepadName(cpad(g))
	if name == nil {
		return "", lastError("SDL_GetGamepadName")
	}
	return C.GoString(name), nil
}

func GetGamepadID(g Gamepad) (uint32, error) {
	defer pinThread()()
	id := C.SDL_GetGamepadID(cpad(g))
	if id == 0 {
		return 0, lastError("SDL_GetGamepadID")
	}
	return uint32(id), nil
}

func GetGamepadType(g Gamepad) int { return int(C.SDL_GetGamepadType(cpad(g))) }

func GamepadConnected(g Gamepad) bool { return bool(C.SDL_GamepadConnected(cpad(g))) }

func GetGamepadJoystick(g Gamepad) (Joystick, error) {
	defer pinThread()()
	j := C.SDL_GetGamepadJoystick(cpad(g))
	if j == nil {
		return nil, lastError("SDL_GetGamepadJoystick")
	}
	return Joystick(unsafe.Pointer(j)), nil
}

func GetGamepadAxis(g Gamepad, axis int) int16 {
	return int16(C.SDL_GetGamepadAxis(cpad(g), C.SDL_GamepadAxis(axis)))
}

func GetGamepadButton(g Gamepad, button int) bool {
	return bool(C.SDL_GetGamepadButton(cpad(g), C.SDL_GamepadButton(button)))
}

func GamepadHasAxis(g Gamepad, axis int) bool {
	return bool(C.SDL_GamepadHasAxis(cpad(g), C.SDL_GamepadAxis(axis)))
}

func GamepadHasButton(g Gamepad, button int) bool {
	return bool(C.SDL_GamepadHasButton(cpad(g), C.SDL_GamepadButton(button)))
}

func RumbleGamepad(g Gamepad, low, high uint16, durationMS uint32) error {
	defer pinThread()()
	if !C.SDL_RumbleGamepad(cpad(g), C.Uint16(low), C.Uint16(high), C.Uint32(durationMS)) {
		return lastError("SDL_RumbleGamepad")
	}
	return nil
}

func GetGamepadMapping(g Gamepad) (string, error) {
	defer pinThread()()
	m := C.SDL_GetGamepadMapping(cpad(g))
	if m == nil {
		return "", lastError("SDL_GetGamepadMapping")
	}
	return takeString(m), nil
}

// AddGamepadMapping returns 1 for a new mapping and 0 for an updated one.
func AddGamepadMapping(mapping string) (int, error) {
	defer pinThread()()
	cs := C.CString(mapping)
	defer C.free(unsafe.Pointer(cs))
	r := C.SDL_AddGamepadMapping(cs)
	if r < 0 {
		return 0, lastError("SDL_AddGamepadMapping")
	}
	return int(r), nil
}

func GetGamepadStringForAxis(axis int) string {
	s := C.SDL_GetGamepadStringForAxis(C.SDL_GamepadAxis(axis))
	if s == nil {
		return ""
	}
	return C.GoString(s)
}

func GetGamepadStringForButton(button int) string {
	s := C.SDL_GetGamepadStringForButton(C.SDL_GamepadButton(button))
	if s == nil {
		return ""
	}
	return C.GoString(s)
}
