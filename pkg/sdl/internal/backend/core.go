//go:build cgo && !windows

package backend

/*
#cgo pkg-config: sdl3
#include <stdlib.h>
#include <SDL3/SDL.h>

static bool sdlgo_set_error(const char *msg) {
	return SDL_SetError("%s", msg);
}
*/
import "C"

import (
	"runtime"
	"unsafe"
)

// errBufSize bounds native error messages copied out inside a C helper.
const errBufSize = 1024

// pinThread wires the goroutine to its OS thread until the returned func
// runs. The native error string is thread-local, so a failing call and the
// lastError read after it must happen on the same thread.
func pinThread() func() {
	runtime.LockOSThread()
	return runtime.UnlockOSThread
}

// lastError wraps the native error string for op. The caller must hold
// pinThread across the failing call and this read.
func lastError(op string) error {
	return &Error{Op: op, Msg: C.GoString(C.SDL_GetError())}
}

func errOutOfMemory(op string) error {
	return &Error{Op: op, Msg: "out of memory"}
}

// setError stores msg as the native error so callers of a Go-backed callback
// see it through SDL_GetError.
func setError(msg string) {
	cmsg := C.CString(msg)
	defer C.free(unsafe.Pointer(cmsg))
	C.sdlgo_set_error(cmsg)
}

// optString returns NULL for the empty string. The caller frees the result
// with freeString.
func optString(s string) *C.char {
	if s == "" {
		return nil
	}
	return C.CString(s)
}

func freeString(p *C.char) {
	if p != nil {
		C.free(unsafe.Pointer(p))
	}
}

// takeString copies and frees a string allocated by SDL.
func takeString(p *C.char) string {
	if p == nil {
		return ""
	}
	defer C.SDL_free(unsafe.Pointer(p))
	return C.GoString(p)
}

func Init(flags uint32) error {
	defer pinThread()()
	if !C.SDL_Init(C.SDL_InitFlags(flags)) {
		return lastError("SDL_Init")
	}
	return nil
}

func InitSubSystem(flags uint32) error {
	defer pinThread()()
	if !C.SDL_InitSubSystem(C.SDL_InitFlags(flags)) {
		return lastError("SDL_InitSubSystem")
	}
	return nil
}

func QuitSubSystem(flags uint32) {
	C.SDL_QuitSubSystem(C.SDL_InitFlags(flags))
}

func WasInit(flags uint32) uint32 {
	return uint32(C.SDL_WasInit(C.SDL_InitFlags(flags)))
}

func Quit() {
	C.SDL_Quit()
}

func GetError() string {
	return C.GoString(C.SDL_GetError())
}

func ClearError() {
	C.SDL_ClearError()
}

func SetError(msg string) {
	setError(msg)
}

// Version returns the linked library version as major, minor, patch.
func Version() (int, int, int) {
	v := int(C.SDL_GetVersion())
	return v / 1000000, (v / 1000) % 1000, v % 1000
}

func Revision() string {
	return C.GoString(C.SDL_GetRevision())
}

func SetAppMetadata(name, version, identifier string) error {
	defer pinThread()()
	cname, cversion, cid := optString(name), optString(version), optString(identifier)
	defer freeString(cname)
	defer freeString(cversion)
	defer freeString(cid)
	if !C.SDL_SetAppMetadata(cname, cversion, cid) {
		return lastError("SDL_SetAppMetadata")
	}
	return nil
}

func SetHint(name, value string) error {
	defer pinThread()()
	cname, cvalue := C.CString(name), C.CString(value)
	defer C.free(unsafe.Pointer(cname))
	defer C.free(unsafe.Pointer(cvalue))
	if !C.SDL_SetHint(cname, cvalue) {
		return lastError("SDL_SetHint")
	}
	return nil
}

func SetHintWithPriority(name, value string, priority int) error {
	defer pinThread()()
	cname, cvalue := C.CString(name), C.CString(value)
	defer C.free(unsafe.Pointer(cname))
	defer C.free(unsafe.Pointer(cvalue))
	if !C.SDL_SetHintWithPriority(cname, cvalue, C.SDL_HintPriority(priority)) {
		return lastError("SDL_SetHintWithPriority")
	}
	return nil
}

// GetHint reports the hint value and whether it is set.
func GetHint(name string) (string, bool) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	v := C.SDL_GetHint(cname)
	if v == nil {
		return "", false
	}
	return C.GoString(v), true
}

func ResetHint(name string) error {
	defer pinThread()()
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	if !C.SDL_ResetHint(cname) {
		return lastError("SDL_ResetHint")
	}
	return nil
}

func ResetHints() {
	C.SDL_ResetHints()
}

func GetPlatform() string {
	return C.GoString(C.SDL_GetPlatform())
}

func NumLogicalCPUCores() int {
	return int(C.SDL_GetNumLogicalCPUCores())
}

func SystemRAM() int {
	return int(C.SDL_GetSystemRAM())
}

// GetPowerInfo returns the power state, seconds and percent left (-1 when
// unknown).
func GetPowerInfo() (int, int, int, error) {
	defer pinThread()()
	var seconds, percent C.int
	state := C.SDL_GetPowerInfo(&seconds, &percent)
	if state == C.SDL_POWERSTATE_ERROR {
		return int(state), -1, -1, lastError("SDL_GetPowerInfo")
	}
	return int(state), int(seconds), int(percent), nil
}

// Properties

func CreateProperties() (uint32, error) {
	defer pinThread()()
	id := C.SDL_CreateProperties()
	if id == 0 {
		return 0, lastError("SDL_CreateProperties")
	}
	return uint32(id), nil
}

func GlobalProperties() (uint32, error) {
	defer pinThread()()
	id := C.SDL_GetGlobalProperties()
	if id == 0 {
		return 0, lastError("SDL_GetGlobalProperties")
	}
	return uint32(id), nil
}

func DestroyProperties(id uint32) {
	C.SDL_DestroyProperties(C.SDL_PropertiesID(id))
}

func SetStringProperty(id uint32, name, value string) error {
	defer pinThread()()
	cname, cvalue := C.CString(name), C.CString(value)
	defer C.free(unsafe.Pointer(cname))
	defer C.free(unsafe.Pointer(cvalue))
	if !C.SDL_SetStringProperty(C.SDL_PropertiesID(id), cname, cvalue) {
		return lastError("SDL_SetStringProperty")
	}
	return nil
}

func GetStringProperty(id uint32, name, def string) string {
	cname, cdef := C.CString(name), C.CString(def)
	defer C.free(unsafe.Pointer(cname))
	defer C.free(unsafe.Pointer(cdef))
	return C.GoString(C.SDL_GetStringProperty(C.SDL_PropertiesID(id), cname, cdef))
}

func SetNumberProperty(id uint32, name string, value int64) error {
	defer pinThread()()
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	if !C.SDL_SetNumberProperty(C.SDL_PropertiesID(id), cname, C.Sint64(value)) {
		return lastError("SDL_SetNumberProperty")
	}
	return nil
}

func GetNumberProperty(id uint32, name string, def int64) int64 {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return int64(C.SDL_GetNumberProperty(C.SDL_PropertiesID(id), cname, C.Sint64(def)))
}

func SetFloatProperty(id uint32, name string, value float32) error {
	defer pinThread()()
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	if !C.SDL_SetFloatProperty(C.SDL_PropertiesID(id), cname, C.float(value)) {
		return lastError("SDL_SetFloatProperty")
	}
	return nil
}

func GetFloatProperty(id uint32, name string, def float32) float32 {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return float32(C.SDL_GetFloatProperty(C.SDL_PropertiesID(id), cname, C.float(def)))
}

func SetBooleanProperty(id uint32, name string, value bool) error {
	defer pinThread()()
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	if !C.SDL_SetBooleanProperty(C.SDL_PropertiesID(id), cname, C.bool(value)) {
		return lastError("SDL_SetBooleanProperty")
	}
	return nil
}

func GetBooleanProperty(id uint32, name string, def bool) bool {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return bool(C.SDL_GetBooleanProperty(C.SDL_PropertiesID(id), cname, C.bool(def)))
}

func HasProperty(id uint32, name string) bool {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return bool(C.SDL_HasProperty(C.SDL_PropertiesID(id), cname))
}

func ClearProperty(id uint32, name string) error {
	defer pinThread()()
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	if !C.SDL_ClearProperty(C.SDL_PropertiesID(id), cname) {
		return lastError("SDL_ClearProperty")
	}
	return nil
}

func GetPropertyType(id uint32, name string) int {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return int(C.SDL_GetPropertyType(C.SDL_PropertiesID(id), cname))
}

// idSlice copies an SDL-allocated ID array and frees it.
func idSlice[T ~uint32](ids *T, count C.int) []uint32 {
	defer C.SDL_free(unsafe.Pointer(ids))
	if count <= 0 {
		return []uint32{}
	}
	src := unsafe.Slice(ids, int(count))
	out := make([]uint32, len(src))
	for i, id := range src {
		out[i] = uint32(id)
	}
	return out
}

// countResult maps the negative-on-failure int convention onto an error.
func countResult(op string, n C.int) (int, error) {
	if n < 0 {
		return 0, lastError(op)
	}
	return int(n), nil
}
