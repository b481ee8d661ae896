//go:build cgo && !windows

package backend

/*
#include <stdlib.h>
#include <SDL3/SDL.h>

static SDL_JoystickID sdlgo_attach_virtual_joystick(Uint16 type, Uint16 vendor, Uint16 product,
		Uint16 naxes, Uint16 nbuttons, Uint16 nballs, Uint16 nhats, const char *name) {
	SDL_VirtualJoystickDesc desc;
	SDL_INIT_INTERFACE(&desc);
	desc.type = type;
	desc.vendor_id = vendor;
	desc.product_id = product;
	desc.naxes = naxes;
	desc.nbuttons = nbuttons;
	desc.nballs = nballs;
	desc.nhats = nhats;
	desc.name = name;
	return SDL_AttachVirtualJoystick(&desc);
}
*/
import "C"

import "unsafe"

func cjoy(j Joystick) *C.SDL_Joystick { return (*C.SDL_Joystick)(j) }

func guidFromC(g C.SDL_GUID) GUID {
	var out GUID
	for i := range out {
		out[i] = byte(g.data[i])
	}
	return out
}

func GetJoysticks() ([]uint32, error) {
	defer pinThread()()
	var count C.int
	ids := C.SDL_GetJoysticks(&count)
	if ids == nil {
		return nil, lastError("SDL_GetJoysticks")
	}
	return idSlice(ids, count), nil
}

func HasJoystick() bool { return bool(C.SDL_HasJoystick()) }

func GetJoystickNameForID(id uint32) (string, error) {
	defer pinThread()()
	name := C.SDL_GetJoystickNameForID(C.SDL_JoystickID(id))
	if name == nil {
		return "", lastError("SDL_GetJoystickNameForID")
	}
	return C.GoString(name), nil
}

func GetJoystickPathForID(id uint32) (string, error) {
	defer pinThread()()
	path := C.SDL_GetJoystickPathForID(C.SDL_JoystickID(id))
	if path == nil {
		return "", lastError("SDL_GetJoystickPathForID")
	}
	return C.GoString(path), nil
}

func GetJoystickPlayerIndexForID(id uint32) int {
	return int(C.SDL_GetJoystickPlayerIndexForID(C.SDL_JoystickID(id)))
}

func GetJoystickGUIDForID(id uint32) GUID {
	return guidFromC(C.SDL_GetJoystickGUIDForID(C.SDL_JoystickID(id)))
}

func GetJoystickVendorForID(id uint32) uint16 {
	return uint16(C.SDL_GetJoystickVendorForID(C.SDL_JoystickID(id)))
}

func GetJoystickProductForID(id uint32) uint16 {
	return uint16(C.SDL_GetJoystickProductForID(C.SDL_JoystickID(id)))
}

func GetJoystickProductVersionForID(id uint32) uint16 {
	return uint16(C.SDL_GetJoystickProductVersionForID(C.SDL_JoystickID(id)))
}

func GetJoystickTypeForID(id uint32) int {
	return int(C.SDL_GetJoystickTypeForID(C.SDL_JoystickID(id)))
}

func OpenJoystick(id uint32) (Joystick, error) {
	defer pinThread()()
	j := C.SDL_OpenJoystick(C.SDL_JoystickID(id))
	if j == nil {
		return nil, lastError("SDL_OpenJoystick")
	}
	return Joystick(unsafe.Pointer(j)), nil
}

func GetJoystickFromID(id uint32) (Joystick, error) {
	defer pinThread()()
	j := C.SDL_GetJoystickFromID(C.SDL_JoystickID(id))
	if j == nil {
		return nil, lastError("SDL_GetJoystickFromID")
	}
	return Joystick(unsafe.Pointer(j)), nil
}

func CloseJoystick(j Joystick) { C.SDL_CloseJoystick(cjoy(j)) }

func GetJoystickName(j Joystick) (string, error) {
	defer pinThread()()
	name := C.SDL_GetJoystickName(cjoy(j))
	if name == nil {
		return "", lastError("SDL_GetJoystickName")
	}
	return C.GoString(name), nil
}

func GetJoystickPath(j Joystick) (string, error) {
	defer pinThread()()
	path := C.SDL_GetJoystickPath(cjoy(j))
	if path == nil {
		return "", lastError("SDL_GetJoystickPath")
	}
	return C.GoString(path), nil
}

func GetJoystickID(j Joystick) (uint32, error) {
	defer pinThread()()
	id := C.SDL_GetJoystickID(cjoy(j))
	if id == 0 {
		return 0, lastError("SDL_GetJoystickID")
	}
	return uint32(id), nil
}

func GetJoystickType(j Joystick) int      { return int(C.SDL_GetJoystickType(cjoy(j))) }
func GetJoystickGUID(j Joystick) GUID     { return guidFromC(C.SDL_GetJoystickGUID(cjoy(j))) }
func GetJoystickVendor(j Joystick) uint16 { return uint16(C.SDL_GetJoystickVendor(cjoy(j))) }
func GetJoystickProduct(j Joystick) uint16 {
	return uint16(C.SDL_GetJoystickProduct(cjoy(j)))
}
func GetJoystickSerial(j Joystick) string {
	s := C.SDL_GetJoystickSerial(cjoy(j))
	if s == nil {
		return ""
	}
	return C.GoString(s)
}
func GetJoystickPlayerIndex(j Joystick) int { return int(C.SDL_GetJoystickPlayerIndex(cjoy(j))) }

func SetJoystickPlayerIndex(j Joystick, index int) error {
	defer pinThread()()
	if !C.SDL_SetJoystickPlayerIndex(cjoy(j), C.int(index)) {
		return lastError("SDL_SetJoystickPlayerIndex")
	}
	return nil
}

func GetNumJoystickAxes(j Joystick) (int, error) {
	defer pinThread()()
	return countResult("SDL_GetNumJoystickAxes", C.SDL_GetNumJoystickAxes(cjoy(j)))
}

func GetNumJoystickBalls(j Joystick) (int, error) {
	defer pinThread()()
	return countResult("SDL_GetNumJoystickBalls", C.SDL_GetNumJoystickBalls(cjoy(j)))
}

func GetNumJoystickHats(j Joystick) (int, error) {
	defer pinThread()()
	return countResult("SDL_GetNumJoystickHats", C.SDL_GetNumJoystickHats(cjoy(j)))
}

func GetNumJoystickButtons(j Joystick) (int, error) {
	defer pinThread()()
	return countResult("SDL_GetNumJoystickButtons", C.SDL_GetNumJoystickButtons(cjoy(j)))
}

func GetJoystickAxis(j Joystick, axis int) int16 {
	return int16(C.SDL_GetJoystickAxis(cjoy(j), C.int(axis)))
}

func GetJoystickBall(j Joystick, ball int) (int, int, error) {
	defer pinThread()()
	var dx, dy C.int
	if !C.SDL_GetJoystickBall(cjoy(j), C.int(ball), &dx, &dy) {
		return 0, 0, lastError("SDL_GetJoystickBall")
	}
	return int(dx), int(dy), nil
}

func GetJoystickHat(j Joystick, hat int) uint8 {
	return uint8(C.SDL_GetJoystickHat(cjoy(j), C.int(hat)))
}

func GetJoystickButton(j Joystick, button int) bool {
	return bool(C.SDL_GetJoystickButton(cjoy(j), C.int(button)))
}

func RumbleJoystick(j Joystick, low, high uint16, durationMS uint32) error {
	defer pinThread()()
	if !C.SDL_RumbleJoystick(cjoy(j), C.Uint16(low), C.Uint16(high), C.Uint32(durationMS)) {
		return lastError("SDL_RumbleJoystick")
	}
	return nil
}

func RumbleJoystickTriggers(j Joystick, left, right uint16, durationMS uint32) error {
	defer pinThread()()
	if !C.SDL_RumbleJoystickTriggers(cjoy(j), C.Uint16(left), C.Uint16(right), C.Uint32(durationMS)) {
		return lastError("SDL_RumbleJoystickTriggers")
	}
	return nil
}

func SetJoystickLED(j Joystick, r, g, b uint8) error {
	defer pinThread()()
	if !C.SDL_SetJoystickLED(cjoy(j), C.Uint8(r), C.Uint8(g), C.Uint8(b)) {
		return lastError("SDL_SetJoystickLED")
	}
	return nil
}

// GetJoystickPowerInfo returns the power state and the battery percent
// (-1 when unknown).
func GetJoystickPowerInfo(j Joystick) (int, int) {
	var percent C.int
	state := C.SDL_GetJoystickPowerInfo(cjoy(j), &percent)
	return int(state), int(percent)
}

func GetJoystickConnectionState(j Joystick) int {
	return int(C.SDL_GetJoystickConnectionState(cjoy(j)))
}

func JoystickConnected(j Joystick) bool { return bool(C.SDL_JoystickConnected(cjoy(j))) }

func UpdateJoysticks()                 { C.SDL_UpdateJoysticks() }
func SetJoystickEventsEnabled(on bool) { C.SDL_SetJoystickEventsEnabled(C.bool(on)) }
func JoystickEventsEnabled() bool      { return bool(C.SDL_JoystickEventsEnabled()) }
func LockJoysticks()                   { C.SDL_LockJoysticks() }
func UnlockJoysticks()                 { C.SDL_UnlockJoysticks() }

func AttachVirtualJoystick(desc VirtualJoystickDesc) (uint32, error) {
	defer pinThread()()
	name := optString(desc.Name)
	defer freeString(name)
	id := C.sdlgo_attach_virtual_joystick(C.Uint16(desc.Type), C.Uint16(desc.VendorID), C.Uint16(desc.ProductID),
		C.Uint16(desc.NumAxes), C.Uint16(desc.NumButtons), C.Uint16(desc.NumBalls), C.Uint16(desc.NumHats), name)
	if id == 0 {
		return 0, lastError("SDL_AttachVirtualJoystick")
	}
	return uint32(id), nil
}

func DetachVirtualJoystick(id uint32) error {
	defer pinThread()()
	if !C.SDL_DetachVirtualJoystick(C.SDL_JoystickID(id)) {
		return lastError("SDL_DetachVirtualJoystick")
	}
	return nil
}

func IsJoystickVirtual(id uint32) bool { return bool(C.SDL_IsJoystickVirtual(C.SDL_JoystickID(id))) }

func SetJoystickVirtualAxis(j Joystick, axis int, value int16) error {
	defer pinThread()()
	if !C.SDL_SetJoystickVirtualAxis(cjoy(j), C.int(axis), C.Sint16(value)) {
		return lastError("SDL_SetJoystickVirtualAxis")
	}
	return nil
}

func SetJoystickVirtualButton(j Joystick, button int, down bool) error {
	defer pinThread()()
	if !C.SDL_SetJoystickVirtualButton(cjoy(j), C.int(button), C.bool(down)) {
		return lastError("SDL_SetJoystickVirtualButton")
	}
	return nil
}

func SetJoystickVirtualHat(j Joystick, hat int, value uint8) error {
	defer pinThread()()
	if !C.SDL_SetJoystickVirtualHat(cjoy(j), C.int(hat), C.Uint8(value)) {
		return lastError("SDL_SetJoystickVirtualHat")
	}
	return nil
}
