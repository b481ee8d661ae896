//go:build cgo && !windows

package backend

/*
#include <stdlib.h>
#include <SDL3/SDL.h>
*/
import "C"

import "unsafe"

func cstorage(s Storage) *C.SDL_Storage { return (*C.SDL_Storage)(s) }

func pathInfoFromC(info *C.SDL_PathInfo) PathInfo {
	return PathInfo{
		Type:       int(info._type),
		Size:       uint64(info.size),
		CreateTime: int64(info.create_time),
		ModifyTime: int64(info.modify_time),
		AccessTime: int64(info.access_time),
	}
}

// globResult copies and frees the string array returned by the SDL_Glob*
// calls.
func globResult(list **C.char, n C.int) []string {
	defer C.SDL_free(unsafe.Pointer(list))
	out := make([]string, 0, int(n))
	for _, p := range unsafe.Slice(list, int(n)) {
		out = append(out, C.GoString(p))
	}
	return out
}

func OpenTitleStorage(override string, props uint32) (Storage, error) {
	defer pinThread()()
	cs := optString(override)
	defer freeString(cs)
	s := C.SDL_OpenTitleStorage(cs, C.SDL_PropertiesID(props))
	if s == nil {
		return nil, lastError("SDL_OpenTitleStorage")
	}
	return Storage(unsafe.Pointer(s)), nil
}

func OpenUserStorage(org, app string, props uint32) (Storage, error) {
	defer pinThread()()
	corg, capp := C.CString(org), C.CString(app)
	defer C.free(unsafe.Pointer(corg))
	defer C.free(unsafe.Pointer(capp))
	s := C.SDL_OpenUserStorage(corg, capp, C.SDL_PropertiesID(props))
	if s == nil {
		return nil, lastError("SDL_OpenUserStorage")
	}
	return Storage(unsafe.Pointer(s)), nil
}

func OpenFileStorage(path string) (Storage, error) {
	defer pinThread()()
	cs := optString(path)
	defer freeString(cs)
	s := C.SDL_OpenFileStorage(cs)
	if s == nil {
		return nil, lastError("SDL_OpenFileStorage")
	}
	return Storage(unsafe.Pointer(s)), nil
}

// OpenStorage backs a native storage container with a Go implementation. The
// registry entry is released by the native close callback.
func OpenStorage(impl StorageIO) (Storage, error) {
	defer pinThread()()
	h := put(impl)
	s := openStorage(h)
	if s == nil {
		del(h)
		return nil, lastError("SDL_OpenStorage")
	}
	return Storage(unsafe.Pointer(s)), nil
}

func CloseStorage(s Storage) error {
	defer pinThread()()
	if !C.SDL_CloseStorage(cstorage(s)) {
		return lastError("SDL_CloseStorage")
	}
	return nil
}

func StorageReady(s Storage) bool { return bool(C.SDL_StorageReady(cstorage(s))) }

func GetStorageFileSize(s Storage, path string) (uint64, error) {
	defer pinThread()()
	cs := C.CString(path)
	defer C.free(unsafe.Pointer(cs))
	var n C.Uint64
	if !C.SDL_GetStorageFileSize(cstorage(s), cs, &n) {
		return 0, lastError("SDL_GetStorageFileSize")
	}
	return uint64(n), nil
}

func ReadStorageFile(s Storage, path string, dst []byte) error {
	defer pinThread()()
	cs := C.CString(path)
	defer C.free(unsafe.Pointer(cs))
	var ptr unsafe.Pointer
	if len(dst) > 0 {
		ptr = unsafe.Pointer(&dst[0])
	}
	if !C.SDL_ReadStorageFile(cstorage(s), cs, ptr, C.Uint64(len(dst))) {
		return lastError("SDL_ReadStorageFile")
	}
	return nil
}

func WriteStorageFile(s Storage, path string, src []byte) error {
	defer pinThread()()
	cs := C.CString(path)
	defer C.free(unsafe.Pointer(cs))
	var ptr unsafe.Pointer
	if len(src) > 0 {
		ptr = unsafe.Pointer(&src[0])
	}
	if !C.SDL_WriteStorageFile(cstorage(s), cs, ptr, C.Uint64(len(src))) {
		return lastError("SDL_WriteStorageFile")
	}
	return nil
}

func CreateStorageDirectory(s Storage, path string) error {
	defer pinThread()()
	cs := C.CString(path)
	defer C.free(unsafe.Pointer(cs))
	if !C.SDL_CreateStorageDirectory(cstorage(s), cs) {
		return lastError("SDL_CreateStorageDirectory")
	}
	return nil
}

func EnumerateStorageDirectory(s Storage, path string, fn EnumerateFunc) error {
	defer pinThread()()
	cs := optString(path)
	defer freeString(cs)
	h := put(fn)
	defer del(h)
	if !enumerateStorageDirectory(cstorage(s), cs, h) {
		return lastError("SDL_EnumerateStorageDirectory")
	}
	return nil
}

func RemoveStoragePath(s Storage, path string) error {
	defer pinThread()()
	cs := C.CString(path)
	defer C.free(unsafe.Pointer(cs))
	if !C.SDL_RemoveStoragePath(cstorage(s), cs) {
		return lastError("SDL_RemoveStoragePath")
	}
	return nil
}

func RenameStoragePath(s Storage, oldpath, newpath string) error {
	defer pinThread()()
	co, cn := C.CString(oldpath), C.CString(newpath)
	defer C.free(unsafe.Pointer(co))
	defer C.free(unsafe.Pointer(cn))
	if !C.SDL_RenameStoragePath(cstorage(s), co, cn) {
		return lastError("SDL_RenameStoragePath")
	}
	return nil
}

func CopyStorageFile(s Storage, oldpath, newpath string) error {
	defer pinThread()()
	co, cn := C.CString(oldpath), C.CString(newpath)
	defer C.free(unsafe.Pointer(co))
	defer C.free(unsafe.Pointer(cn))
	if !C.SDL_CopyStorageFile(cstorage(s), co, cn) {
		return lastError("SDL_CopyStorageFile")
	}
	return nil
}

func GetStoragePathInfo(s Storage, path string) (PathInfo, error) {
	defer pinThread()()
	cs := C.CString(path)
	defer C.free(unsafe.Pointer(cs))
	var info C.SDL_PathInfo
	if !C.SDL_GetStoragePathInfo(cstorage(s), cs, &info) {
		return PathInfo{}, lastError("SDL_GetStoragePathInfo")
	}
	return pathInfoFromC(&info), nil
}

func GetStorageSpaceRemaining(s Storage) uint64 {
	return uint64(C.SDL_GetStorageSpaceRemaining(cstorage(s)))
}

func GlobStorageDirectory(s Storage, path, pattern string, flags uint32) ([]string, error) {
	defer pinThread()()
	cpath, cpat := optString(path), optString(pattern)
	defer freeString(cpath)
	defer freeString(cpat)
	var n C.int
	list := C.SDL_GlobStorageDirectory(cstorage(s), cpath, cpat, C.SDL_GlobFlags(flags), &n)
	if list == nil {
		return nil, lastError("SDL_GlobStorageDirectory")
	}
	return globResult(list, n), nil
}
