//go:build cgo && !windows

package backend

/*
#include <stdlib.h>
#include <string.h>
#include <SDL3/SDL.h>

static void *sdlgo_dynamic_mem_pointer(SDL_IOStream *s) {
	return SDL_GetPointerProperty(SDL_GetIOProperties(s), SDL_PROP_IOSTREAM_DYNAMIC_MEMORY_POINTER, NULL);
}
*/
import "C"

import "unsafe"

func cio(s IOStream) *C.SDL_IOStream { return (*C.SDL_IOStream)(s) }

func IOFromFile(path, mode string) (IOStream, error) {
	defer pinThread()()
	cpath, cmode := C.CString(path), C.CString(mode)
	defer C.free(unsafe.Pointer(cpath))
	defer C.free(unsafe.Pointer(cmode))
	s := C.SDL_IOFromFile(cpath, cmode)
	if s == nil {
		return nil, lastError("SDL_IOFromFile")
	}
	return IOStream(unsafe.Pointer(s)), nil
}

// copyToC returns a native copy of data that the caller must release with
// FreeMem once the stream using it is closed. It returns nil when the
// allocation fails.
func copyToC(data []byte) unsafe.Pointer {
	n := len(data)
	if n == 0 {
		n = 1
	}
	p := C.malloc(C.size_t(n))
	if p != nil && len(data) > 0 {
		C.memcpy(p, unsafe.Pointer(&data[0]), C.size_t(len(data)))
	}
	return p
}

// IOFromMem opens a read/write stream over a native copy of data.
func IOFromMem(data []byte) (IOStream, unsafe.Pointer, error) {
	defer pinThread()()
	mem := copyToC(data)
	if mem == nil {
		return nil, nil, errOutOfMemory("SDL_IOFromMem")
	}
	s := C.SDL_IOFromMem(mem, C.size_t(len(data)))
	if s == nil {
		C.free(mem)
		return nil, nil, lastError("SDL_IOFromMem")
	}
	return IOStream(unsafe.Pointer(s)), mem, nil
}

// IOFromConstMem opens a read-only stream over a native copy of data.
func IOFromConstMem(data []byte) (IOStream, unsafe.Pointer, error) {
	defer pinThread()()
	mem := copyToC(data)
	if mem == nil {
		return nil, nil, errOutOfMemory("SDL_IOFromConstMem")
	}
	s := C.SDL_IOFromConstMem(mem, C.size_t(len(data)))
	if s == nil {
		C.free(mem)
		return nil, nil, lastError("SDL_IOFromConstMem")
	}
	return IOStream(unsafe.Pointer(s)), mem, nil
}

func FreeMem(p unsafe.Pointer) {
	if p != nil {
		C.free(p)
	}
}

func IOFromDynamicMem() (IOStream, error) {
	defer pinThread()()
	s := C.SDL_IOFromDynamicMem()
	if s == nil {
		return nil, lastError("SDL_IOFromDynamicMem")
	}
	return IOStream(unsafe.Pointer(s)), nil
}

// DynamicMemBytes copies the current contents of a dynamic memory stream.
func DynamicMemBytes(s IOStream) ([]byte, error) {
	defer pinThread()()
	size := C.SDL_GetIOSize(cio(s))
	if size < 0 {
		return nil, lastError("SDL_GetIOSize")
	}
	p := C.sdlgo_dynamic_mem_pointer(cio(s))
	if p == nil || size == 0 {
		return []byte{}, nil
	}
	return C.GoBytes(p, C.int(size)), nil
}

// OpenIO backs a native stream with a Go implementation. The registry entry
// is released by the native close callback.
func OpenIO(impl StreamIO) (IOStream, error) {
	defer pinThread()()
	h := put(impl)
	s := openIO(h)
	if s == nil {
		del(h)
		return nil, lastError("SDL_OpenIO")
	}
	return IOStream(unsafe.Pointer(s)), nil
}

func CloseIO(s IOStream) error {
	defer pinThread()()
	if !C.SDL_CloseIO(cio(s)) {
		return lastError("SDL_CloseIO")
	}
	return nil
}

func GetIOSize(s IOStream) (int64, error) {
	defer pinThread()()
	n := C.SDL_GetIOSize(cio(s))
	if n < 0 {
		return 0, lastError("SDL_GetIOSize")
	}
	return int64(n), nil
}

func SeekIO(s IOStream, offset int64, whence int) (int64, error) {
	defer pinThread()()
	pos := C.SDL_SeekIO(cio(s), C.Sint64(offset), C.SDL_IOWhence(whence))
	if pos < 0 {
		return 0, lastError("SDL_SeekIO")
	}
	return int64(pos), nil
}

func TellIO(s IOStream) (int64, error) {
	defer pinThread()()
	pos := C.SDL_TellIO(cio(s))
	if pos < 0 {
		return 0, lastError("SDL_TellIO")
	}
	return int64(pos), nil
}

// ReadIO returns the byte count and the stream status after the call; a
// short read with IOStatusError carries the native error.
func ReadIO(s IOStream, p []byte) (int, IOStatus, error) {
	defer pinThread()()
	if len(p) == 0 {
		return 0, IOStatusReady, nil
	}
	n := C.SDL_ReadIO(cio(s), unsafe.Pointer(&p[0]), C.size_t(len(p)))
	st := IOStatus(C.SDL_GetIOStatus(cio(s)))
	if st == IOStatusError {
		return int(n), st, lastError("SDL_ReadIO")
	}
	return int(n), st, nil
}

func WriteIO(s IOStream, p []byte) (int, IOStatus, error) {
	defer pinThread()()
	if len(p) == 0 {
		return 0, IOStatusReady, nil
	}
	n := C.SDL_WriteIO(cio(s), unsafe.Pointer(&p[0]), C.size_t(len(p)))
	st := IOStatus(C.SDL_GetIOStatus(cio(s)))
	if int(n) < len(p) && st != IOStatusNotReady {
		return int(n), st, lastError("SDL_WriteIO")
	}
	return int(n), st, nil
}

func FlushIO(s IOStream) error {
	defer pinThread()()
	if !C.SDL_FlushIO(cio(s)) {
		return lastError("SDL_FlushIO")
	}
	return nil
}

func GetIOStatus(s IOStream) IOStatus { return IOStatus(C.SDL_GetIOStatus(cio(s))) }

func ReadU8(s IOStream) (uint8, error) {
	defer pinThread()()
	var v C.Uint8
	if !C.SDL_ReadU8(cio(s), &v) {
		return 0, lastError("SDL_ReadU8")
	}
	return uint8(v), nil
}

func ReadU16(s IOStream, bigEndian bool) (uint16, error) {
	defer pinThread()()
	var v C.Uint16
	var ok C.bool
	if bigEndian {
		ok = C.SDL_ReadU16BE(cio(s), &v)
	} else {
		ok = C.SDL_ReadU16LE(cio(s), &v)
	}
	if !ok {
		return 0, lastError("SDL_ReadU16")
	}
	return uint16(v), nil
}

func ReadU32(s IOStream, bigEndian bool) (uint32, error) {
	defer pinThread()()
	var v C.Uint32
	var ok C.bool
	if bigEndian {
		ok = C.SDL_ReadU32BE(cio(s), &v)
	} else {
		ok = C.SDL_ReadU32LE(cio(s), &v)
	}
	if !ok {
		return 0, lastError("SDL_ReadU32")
	}
	return uint32(v), nil
}

func ReadU64(s IOStream, bigEndian bool) (uint64, error) {
	defer pinThread()()
	var v C.Uint64
	var ok C.bool
	if bigEndian {
		ok = C.SDL_ReadU64BE(cio(s), &v)
	} else {
		ok = C.SDL_ReadU64LE(cio(s), &v)
	}
	if !ok {
		return 0, lastError("SDL_ReadU64")
	}
	return uint64(v), nil
}

func WriteU8(s IOStream, v uint8) error {
	defer pinThread()()
	if !C.SDL_WriteU8(cio(s), C.Uint8(v)) {
		return lastError("SDL_WriteU8")
	}
	return nil
}

func WriteU16(s IOStream, v uint16, bigEndian bool) error {
	defer pinThread()()
	var ok C.bool
	if bigEndian {
		ok = C.SDL_WriteU16BE(cio(s), C.Uint16(v))
	} else {
		ok = C.SDL_WriteU16LE(cio(s), C.Uint16(v))
	}
	if !ok {
		return lastError("SDL_WriteU16")
	}
	return nil
}

func WriteU32(s IOStream, v uint32, bigEndian bool) error {
	defer pinThread()()
	var ok C.bool
	if bigEndian {
		ok = C.SDL_WriteU32BE(cio(s), C.Uint32(v))
	} else {
		ok = C.SDL_WriteU32LE(cio(s), C.Uint32(v))
	}
	if !ok {
		return lastError("SDL_WriteU32")
	}
	return nil
}

func WriteU64(s IOStream, v uint64, bigEndian bool) error {
	defer pinThread()()
	var ok C.bool
	if bigEndian {
		ok = C.SDL_WriteU64BE(cio(s), C.Uint64(v))
	} else {
		ok = C.SDL_WriteU64LE(cio(s), C.Uint64(v))
	}
	if !ok {
		return lastError("SDL_WriteU64")
	}
	return nil
}

func takeBytes(p unsafe.Pointer, n C.size_t) []byte {
	defer C.SDL_free(p)
	return C.GoBytes(p, C.int(n))
}

func LoadFile(path string) ([]byte, error) {
	defer pinThread()()
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	var n C.size_t
	p := C.SDL_LoadFile(cpath, &n)
	if p == nil {
		return nil, lastError("SDL_LoadFile")
	}
	return takeBytes(p, n), nil
}

// LoadFileIO reads the rest of s; closeIO hands ownership of s to the call.
func LoadFileIO(s IOStream, closeIO bool) ([]byte, error) {
	defer pinThread()()
	var n C.size_t
	p := C.SDL_LoadFile_IO(cio(s), &n, C.bool(closeIO))
	if p == nil {
		return nil, lastError("SDL_LoadFile_IO")
	}
	return takeBytes(p, n), nil
}

func SaveFile(path string, data []byte) error {
	defer pinThread()()
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = unsafe.Pointer(&data[0])
	}
	if !C.SDL_SaveFile(cpath, ptr, C.size_t(len(data))) {
		return lastError("SDL_SaveFile")
	}
	return nil
}

func SaveFileIO(s IOStream, data []byte, closeIO bool) error {
	defer pinThread()()
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = unsafe.Pointer(&data[0])
	}
	if !C.SDL_SaveFile_IO(cio(s), ptr, C.size_t(len(data)), C.bool(closeIO)) {
		return lastError("SDL_SaveFile_IO")
	}
	return nil
}
