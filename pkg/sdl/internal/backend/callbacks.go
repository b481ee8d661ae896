//go:build cgo && !windows

package backend

// This file only holds //export functions, so its preamble must stay
// declaration-only.

/*
#include <stdlib.h>
#include <SDL3/SDL.h>

extern SDL_EnumerationResult sdlgo_call_enumerate(void *cb, void *userdata, const char *dirname, const char *fname);
*/
import "C"

import (
	"unsafe"
)

func userdataHandle(p unsafe.Pointer) handle {
	return handle(uintptr(p))
}

//export sdlgoEventFilter
func sdlgoEventFilter(userdata unsafe.Pointer, event *C.SDL_Event) C.bool {
	v, ok := get(userdataHandle(userdata))
	if !ok {
		return C.bool(true)
	}
	fn, ok := v.(EventFunc)
	if !ok || event == nil {
		return C.bool(true)
	}
	return C.bool(fn(eventFromC(event)))
}

//export sdlgoTimer
func sdlgoTimer(userdata unsafe.Pointer, id C.SDL_TimerID, interval C.Uint32) C.Uint32 {
	h := userdataHandle(userdata)
	v, ok := get(h)
	if !ok {
		return 0
	}
	fn, ok := v.(TimerFunc)
	if !ok {
		return 0
	}
	nextInterval := fn(uint32(id), uint32(interval))
	if nextInterval == 0 {
		forgetTimer(uint32(id), h)
	}
	return C.Uint32(nextInterval)
}

//export sdlgoTimerNS
func sdlgoTimerNS(userdata unsafe.Pointer, id C.SDL_TimerID, interval C.Uint64) C.Uint64 {
	h := userdataHandle(userdata)
	v, ok := get(h)
	if !ok {
		return 0
	}
	fn, ok := v.(TimerNSFunc)
	if !ok {
		return 0
	}
	nextInterval := fn(uint32(id), uint64(interval))
	if nextInterval == 0 {
		forgetTimer(uint32(id), h)
	}
	return C.Uint64(nextInterval)
}

//export sdlgoLogOutput
func sdlgoLogOutput(userdata unsafe.Pointer, category C.int, priority C.SDL_LogPriority, message *C.char) {
	v, ok := get(userdataHandle(userdata))
	if !ok {
		return
	}
	fn, ok := v.(LogFunc)
	if !ok {
		return
	}
	fn(int(category), int(priority), C.GoString(message))
}

//export sdlgoEnumerate
func sdlgoEnumerate(userdata unsafe.Pointer, dirname *C.char, fname *C.char) C.SDL_EnumerationResult {
	v, ok := get(userdataHandle(userdata))
	if !ok {
		return C.SDL_ENUM_FAILURE
	}
	fn, ok := v.(EnumerateFunc)
	if !ok {
		return C.SDL_ENUM_FAILURE
	}
	return C.SDL_EnumerationResult(fn(C.GoString(dirname), C.GoString(fname)))
}

func streamIO(userdata unsafe.Pointer) (StreamIO, bool) {
	v, ok := get(userdataHandle(userdata))
	if !ok {
		return nil, false
	}
	s, ok := v.(StreamIO)
	return s, ok
}

//export sdlgoIOSize
func sdlgoIOSize(userdata unsafe.Pointer) C.Sint64 {
	s, ok := streamIO(userdata)
	if !ok {
		return -1
	}
	n, err := s.Size()
	if err != nil {
		setError(err.Error())
		return -1
	}
	return C.Sint64(n)
}

//export sdlgoIOSeek
func sdlgoIOSeek(userdata unsafe.Pointer, offset C.Sint64, whence C.SDL_IOWhence) C.Sint64 {
	s, ok := streamIO(userdata)
	if !ok {
		return -1
	}
	pos, err := s.Seek(int64(offset), int(whence))
	if err != nil {
		setError(err.Error())
		return -1
	}
	return C.Sint64(pos)
}

//export sdlgoIORead
func sdlgoIORead(userdata unsafe.Pointer, ptr unsafe.Pointer, size C.size_t, status *C.SDL_IOStatus) C.size_t {
	s, ok := streamIO(userdata)
	if !ok {
		*status = C.SDL_IO_STATUS_ERROR
		return 0
	}
	if size == 0 || ptr == nil {
		return 0
	}
	n, st := s.Read(unsafe.Slice((*byte)(ptr), int(size)))
	if st != IOStatusReady {
		*status = C.SDL_IOStatus(st)
	}
	return C.size_t(n)
}

//export sdlgoIOWrite
func sdlgoIOWrite(userdata unsafe.Pointer, ptr unsafe.Pointer, size C.size_t, status *C.SDL_IOStatus) C.size_t {
	s, ok := streamIO(userdata)
	if !ok {
		*status = C.SDL_IO_STATUS_ERROR
		return 0
	}
	if size == 0 || ptr == nil {
		return 0
	}
	n, st := s.Write(unsafe.Slice((*byte)(ptr), int(size)))
	if st != IOStatusReady {
		*status = C.SDL_IOStatus(st)
	}
	return C.size_t(n)
}

//export sdlgoIOFlush
func sdlgoIOFlush(userdata unsafe.Pointer, status *C.SDL_IOStatus) C.bool {
	s, ok := streamIO(userdata)
	if !ok {
		*status = C.SDL_IO_STATUS_ERROR
		return C.bool(false)
	}
	if err := s.Flush(); err != nil {
		setError(err.Error())
		*status = C.SDL_IO_STATUS_ERROR
		return C.bool(false)
	}
	return C.bool(true)
}

//export sdlgoIOClose
func sdlgoIOClose(userdata unsafe.Pointer) C.bool {
	v, ok := take(userdataHandle(userdata))
	if !ok {
		return C.bool(true)
	}
	s, ok := v.(StreamIO)
	if !ok {
		return C.bool(true)
	}
	if err := s.Close(); err != nil {
		setError(err.Error())
		return C.bool(false)
	}
	return C.bool(true)
}

func storageIO(userdata unsafe.Pointer) (StorageIO, bool) {
	v, ok := get(userdataHandle(userdata))
	if !ok {
		return nil, false
	}
	s, ok := v.(StorageIO)
	return s, ok
}

// storageResult converts a Go error into the native bool convention.
func storageResult(err error) C.bool {
	if err != nil {
		setError(err.Error())
		return C.bool(false)
	}
	return C.bool(true)
}

//export sdlgoStorageClose
func sdlgoStorageClose(userdata unsafe.Pointer) C.bool {
	v, ok := take(userdataHandle(userdata))
	if !ok {
		return C.bool(true)
	}
	s, ok := v.(StorageIO)
	if !ok {
		return C.bool(true)
	}
	return storageResult(s.Close())
}

//export sdlgoStorageReady
func sdlgoStorageReady(userdata unsafe.Pointer) C.bool {
	s, ok := storageIO(userdata)
	if !ok {
		return C.bool(false)
	}
	return C.bool(s.Ready())
}

//export sdlgoStorageEnumerate
func sdlgoStorageEnumerate(userdata unsafe.Pointer, path *C.char, cb unsafe.Pointer, cbUserdata unsafe.Pointer) C.bool {
	s, ok := storageIO(userdata)
	if !ok {
		setError("storage is closed")
		return C.bool(false)
	}
	err := s.Enumerate(C.GoString(path), func(dir, name string) EnumerationResult {
		cdir, cname := C.CString(dir), C.CString(name)
		defer C.free(unsafe.Pointer(cdir))
		defer C.free(unsafe.Pointer(cname))
		return EnumerationResult(C.sdlgo_call_enumerate(cb, cbUserdata, cdir, cname))
	})
	return storageResult(err)
}

//export sdlgoStorageInfo
func sdlgoStorageInfo(userdata unsafe.Pointer, path *C.char, info *C.SDL_PathInfo) C.bool {
	s, ok := storageIO(userdata)
	if !ok {
		setError("storage is closed")
		return C.bool(false)
	}
	pi, err := s.Info(C.GoString(path))
	if err != nil {
		return storageResult(err)
	}
	if info != nil {
		info._type = C.SDL_PathType(pi.Type)
		info.size = C.Uint64(pi.Size)
		info.create_time = C.SDL_Time(pi.CreateTime)
		info.modify_time = C.SDL_Time(pi.ModifyTime)
		info.access_time = C.SDL_Time(pi.AccessTime)
	}
	return C.bool(true)
}

//export sdlgoStorageReadFile
func sdlgoStorageReadFile(userdata unsafe.Pointer, path *C.char, dst unsafe.Pointer, length C.Uint64) C.bool {
	s, ok := storageIO(userdata)
	if !ok {
		setError("storage is closed")
		return C.bool(false)
	}
	var buf []byte
	if dst != nil && length > 0 {
		buf = unsafe.Slice((*byte)(dst), int(length))
	}
	return storageResult(s.ReadFile(C.GoString(path), buf))
}

//export sdlgoStorageWriteFile
func sdlgoStorageWriteFile(userdata unsafe.Pointer, path *C.char, src unsafe.Pointer, length C.Uint64) C.bool {
	s, ok := storageIO(userdata)
	if !ok {
		setError("storage is closed")
		return C.bool(false)
	}
	var buf []byte
	if src != nil && length > 0 {
		buf = C.GoBytes(src, C.int(length))
	}
	return storageResult(s.WriteFile(C.GoString(path), buf))
}

//export sdlgoStorageMkdir
func sdlgoStorageMkdir(userdata unsafe.Pointer, path *C.char) C.bool {
	s, ok := storageIO(userdata)
	if !ok {
		setError("storage is closed")
		return C.bool(false)
	}
	return storageResult(s.Mkdir(C.GoString(path)))
}

//export sdlgoStorageRemove
func sdlgoStorageRemove(userdata unsafe.Pointer, path *C.char) C.bool {
	s, ok := storageIO(userdata)
	if !ok {
		setError("storage is closed")
		return C.bool(false)
	}
	return storageResult(s.Remove(C.GoString(path)))
}

//export sdlgoStorageRename
func sdlgoStorageRename(userdata unsafe.Pointer, oldpath, newpath *C.char) C.bool {
	s, ok := storageIO(userdata)
	if !ok {
		setError("storage is closed")
		return C.bool(false)
	}
	return storageResult(s.Rename(C.GoString(oldpath), C.GoString(newpath)))
}

//export sdlgoStorageCopy
func sdlgoStorageCopy(userdata unsafe.Pointer, oldpath, newpath *C.char) C.bool {
	s, ok := storageIO(userdata)
	if !ok {
		setError("storage is closed")
		return C.bool(false)
	}
	return storageResult(s.Copy(C.GoString(oldpath), C.GoString(newpath)))
}

//export sdlgoStorageSpaceRemaining
func sdlgoStorageSpaceRemaining(userdata unsafe.Pointer) C.Uint64 {
	s, ok := storageIO(userdata)
	if !ok {
		return 0
	}
	return C.Uint64(s.SpaceRemaining())
}
