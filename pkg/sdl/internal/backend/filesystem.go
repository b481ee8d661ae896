//go:build cgo && !windows

package backend

/*
#include <stdlib.h>
#include <SDL3/SDL.h>
*/
import "C"

import "unsafe"

func GetBasePath() (string, error) {
	defer pinThread()()
	p := C.SDL_GetBasePath()
	if p == nil {
		return "", lastError("SDL_GetBasePath")
	}
	return C.GoString(p), nil
}

func GetPrefPath(org, app string) (string, error) {
	defer pinThread()()
	corg, capp := optString(org), C.CString(app)
	defer freeString(corg)
	defer C.free(unsafe.Pointer(capp))
	p := C.SDL_GetPrefPath(corg, capp)
	if p == nil {
		return "", lastError("SDL_GetPrefPath")
	}
	return takeString(p), nil
}

func GetUserFolder(folder int) (string, error) {
	defer pinThread()()
	p := C.SDL_GetUserFolder(C.SDL_Folder(folder))
	if p == nil {
		return "", lastError("SDL_GetUserFolder")
	}
	return C.GoString(p), nil
}

func GetCurrentDirectory() (string, error) {
	defer pinThread()()
	p := C.SDL_GetCurrentDirectory()
	if p == nil {
		return "", lastError("SDL_GetCurrentDirectory")
	}
	return takeString(p), nil
}

func CreateDirectory(path string) error {
	defer pinThread()()
	cs := C.CString(path)
	defer C.free(unsafe.Pointer(cs))
	if !C.SDL_CreateDirectory(cs) {
		return lastError("SDL_CreateDirectory")
	}
	return nil
}

func EnumerateDirectory(path string, fn EnumerateFunc) error {
	defer pinThread()()
	cs := C.CString(path)
	defer C.free(unsafe.Pointer(cs))
	h := put(fn)
	defer del(h)
	if !enumerateDirectory(cs, h) {
		return lastError("SDL_EnumerateDirectory")
	}
	return nil
}

func RemovePath(path string) error {
	defer pinThread()()
	cs := C.CString(path)
	defer C.free(unsafe.Pointer(cs))
	if !C.SDL_RemovePath(cs) {
		return lastError("SDL_RemovePath")
	}
	return nil
}

func RenamePath(oldpath, newpath string) error {
	defer pinThread()()
	co, cn := C.CString(oldpath), C.CString(newpath)
	defer C.free(unsafe.Pointer(co))
	defer C.free(unsafe.Pointer(cn))
	if !C.SDL_RenamePath(co, cn) {
		return lastError("SDL_RenamePath")
	}
	return nil
}

func CopyFile(oldpath, newpath string) error {
	defer pinThread()()
	co, cn := C.CString(oldpath), C.CString(newpath)
	defer C.free(unsafe.Pointer(co))
	defer C.free(unsafe.Pointer(cn))
	if !C.SDL_CopyFile(co, cn) {
		return lastError("SDL_CopyFile")
	}
	return nil
}

func GetPathInfo(path string) (PathInfo, error) {
	defer pinThread()()
	cs := C.CString(path)
	defer C.free(unsafe.Pointer(cs))
	var info C.SDL_PathInfo
	if !C.SDL_GetPathInfo(cs, &info) {
		return PathInfo{}, lastError("SDL_GetPathInfo")
	}
	return pathInfoFromC(&info), nil
}

func GlobDirectory(path, pattern string, flags uint32) ([]string, error) {
	defer pinThread()()
	cpath, cpat := C.CString(path), optString(pattern)
	defer C.free(unsafe.Pointer(cpath))
	defer freeString(cpat)
	var n C.int
	list := C.SDL_GlobDirectory(cpath, cpat, C.SDL_GlobFlags(flags), &n)
	if list == nil {
		return nil, lastError("SDL_GlobDirectory")
	}
	return globResult(list, n), nil
}
