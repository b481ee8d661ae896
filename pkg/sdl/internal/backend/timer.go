//go:build cgo && !windows

package backend

/*
#include <SDL3/SDL.h>
*/
import "C"

import "sync"

// timers maps live timer IDs to their registry handles so RemoveTimer can
// release the Go callback.
var (
	timerMu sync.Mutex
	timers  = map[uint32]handle{}
)

// rememberTimer records id unless its callback already ran to completion
// and released h.
func rememberTimer(id uint32, h handle) {
	timerMu.Lock()
	defer timerMu.Unlock()
	if _, live := get(h); live {
		timers[id] = h
	}
}

func liveTimers() int {
	timerMu.Lock()
	defer timerMu.Unlock()
	return len(timers)
}

func GetTicks() uint64                { return uint64(C.SDL_GetTicks()) }
func GetTicksNS() uint64              { return uint64(C.SDL_GetTicksNS()) }
func GetPerformanceCounter() uint64   { return uint64(C.SDL_GetPerformanceCounter()) }
func GetPerformanceFrequency() uint64 { return uint64(C.SDL_GetPerformanceFrequency()) }
func Delay(ms uint32)                 { C.SDL_Delay(C.Uint32(ms)) }
func DelayNS(ns uint64)               { C.SDL_DelayNS(C.Uint64(ns)) }
func DelayPrecise(ns uint64)          { C.SDL_DelayPrecise(C.Uint64(ns)) }

func AddTimer(intervalMS uint32, fn TimerFunc) (uint32, error) {
	defer pinThread()()
	h := put(fn)
	id := addTimer(intervalMS, h)
	if id == 0 {
		del(h)
		return 0, lastError("SDL_AddTimer")
	}
	rememberTimer(id, h)
	return id, nil
}

func AddTimerNS(intervalNS uint64, fn TimerNSFunc) (uint32, error) {
	defer pinThread()()
	h := put(fn)
	id := addTimerNS(intervalNS, h)
	if id == 0 {
		del(h)
		return 0, lastError("SDL_AddTimerNS")
	}
	rememberTimer(id, h)
	return id, nil
}

func RemoveTimer(id uint32) error {
	defer pinThread()()
	ok := bool(C.SDL_RemoveTimer(C.SDL_TimerID(id)))
	timerMu.Lock()
	if h, found := timers[id]; found {
		delete(timers, id)
		del(h)
	}
	timerMu.Unlock()
	if !ok {
		return lastError("SDL_RemoveTimer")
	}
	return nil
}

// forgetTimer releases a timer whose callback returned 0.
func forgetTimer(id uint32, h handle) {
	timerMu.Lock()
	defer timerMu.Unlock()
	delete(timers, id)
	del(h)
}
