//go:build cgo && !windows

package backend

/*
#include <stdlib.h>
#include <SDL3/SDL.h>

static void sdlgo_log_message(int category, SDL_LogPriority priority, const char *msg) {
	SDL_LogMessage(category, priority, "%s", msg);
}
*/
import "C"

import (
	"sync"
	"unsafe"
)

var (
	logMu     sync.Mutex
	logHandle handle
)

// SetLogOutput routes native log lines to fn; nil restores the default
// native output.
func SetLogOutput(fn LogFunc) {
	logMu.Lock()
	defer logMu.Unlock()

	var h handle
	if fn != nil {
		h = put(fn)
	}
	setLogOutput(h)
	if logHandle != 0 {
		del(logHandle)
	}
	logHandle = h
}

func SetLogPriorities(priority int) {
	C.SDL_SetLogPriorities(C.SDL_LogPriority(priority))
}

func SetLogPriority(category, priority int) {
	C.SDL_SetLogPriority(C.int(category), C.SDL_LogPriority(priority))
}

func GetLogPriority(category int) int {
	return int(C.SDL_GetLogPriority(C.int(category)))
}

func ResetLogPriorities() {
	C.SDL_ResetLogPriorities()
}

func LogMessage(category, priority int, msg string) {
	cmsg := C.CString(msg)
	defer C.free(unsafe.Pointer(cmsg))
	C.sdlgo_log_message(C.int(category), C.SDL_LogPriority(priority), cmsg)
}
