//go:build cgo && !windows

package backend

/*
#include <stdlib.h>
#include <SDL3/SDL.h>
*/
import "C"

import "unsafe"

func CreateMutex() (Mutex, error) {
	defer pinThread()()
	m := C.SDL_CreateMutex()
	if m == nil {
		return nil, lastError("SDL_CreateMutex")
	}
	return Mutex(unsafe.Pointer(m)), nil
}

func LockMutex(m Mutex)         { C.SDL_LockMutex((*C.SDL_Mutex)(m)) }
func TryLockMutex(m Mutex) bool { return bool(C.SDL_TryLockMutex((*C.SDL_Mutex)(m))) }
func UnlockMutex(m Mutex)       { C.SDL_UnlockMutex((*C.SDL_Mutex)(m)) }
func DestroyMutex(m Mutex)      { C.SDL_DestroyMutex((*C.SDL_Mutex)(m)) }

func CreateRWLock() (RWLock, error) {
	defer pinThread()()
	l := C.SDL_CreateRWLock()
	if l == nil {
		return nil, lastError("SDL_CreateRWLock")
	}
	return RWLock(unsafe.Pointer(l)), nil
}

func LockRWLockForReading(l RWLock) { C.SDL_LockRWLockForReading((*C.SDL_RWLock)(l)) }
func LockRWLockForWriting(l RWLock) { C.SDL_LockRWLockForWriting((*C.SDL_RWLock)(l)) }
func TryLockRWLockForReading(l RWLock) bool {
	return bool(C.SDL_TryLockRWLockForReading((*C.SDL_RWLock)(l)))
}
func TryLockRWLockForWriting(l RWLock) bool {
	return bool(C.SDL_TryLockRWLockForWriting((*C.SDL_RWLock)(l)))
}
func UnlockRWLock(l RWLock)  { C.SDL_UnlockRWLock((*C.SDL_RWLock)(l)) }
func DestroyRWLock(l RWLock) { C.SDL_DestroyRWLock((*C.SDL_RWLock)(l)) }

func CreateSemaphore(initial uint32) (Semaphore, error) {
	defer pinThread()()
	s := C.SDL_CreateSemaphore(C.Uint32(initial))
	if s == nil {
		return nil, lastError("SDL_CreateSemaphore")
	}
	return Semaphore(unsafe.Pointer(s)), nil
}

func WaitSemaphore(s Semaphore)         { C.SDL_WaitSemaphore((*C.SDL_Semaphore)(s)) }
func TryWaitSemaphore(s Semaphore) bool { return bool(C.SDL_TryWaitSemaphore((*C.SDL_Semaphore)(s))) }
func WaitSemaphoreTimeout(s Semaphore, timeoutMS int32) bool {
	return bool(C.SDL_WaitSemaphoreTimeout((*C.SDL_Semaphore)(s), C.Sint32(timeoutMS)))
}
func SignalSemaphore(s Semaphore) { C.SDL_SignalSemaphore((*C.SDL_Semaphore)(s)) }
func GetSemaphoreValue(s Semaphore) uint32 {
	return uint32(C.SDL_GetSemaphoreValue((*C.SDL_Semaphore)(s)))
}
func DestroySemaphore(s Semaphore) { C.SDL_DestroySemaphore((*C.SDL_Semaphore)(s)) }

func CreateCondition() (Condition, error) {
	defer pinThread()()
	c := C.SDL_CreateCondition()
	if c == nil {
		return nil, lastError("SDL_CreateCondition")
	}
	return Condition(unsafe.Pointer(c)), nil
}

func SignalCondition(c Condition)    { C.SDL_SignalCondition((*C.SDL_Condition)(c)) }
func BroadcastCondition(c Condition) { C.SDL_BroadcastCondition((*C.SDL_Condition)(c)) }
func WaitCondition(c Condition, m Mutex) {
	C.SDL_WaitCondition((*C.SDL_Condition)(c), (*C.SDL_Mutex)(m))
}
func WaitConditionTimeout(c Condition, m Mutex, timeoutMS int32) bool {
	return bool(C.SDL_WaitConditionTimeout((*C.SDL_Condition)(c), (*C.SDL_Mutex)(m), C.Sint32(timeoutMS)))
}
func DestroyCondition(c Condition) { C.SDL_DestroyCondition((*C.SDL_Condition)(c)) }

// Atomics live in calloc'd memory so native code may hold their address.

func NewAtomicInt() (AtomicInt, error) {
	p := C.calloc(1, C.sizeof_SDL_AtomicInt)
	if p == nil {
		return nil, &Error{Op: "calloc", Msg: "out of memory"}
	}
	return AtomicInt(p), nil
}

func FreeAtomicInt(a AtomicInt) { C.free(unsafe.Pointer(a)) }

func CompareAndSwapAtomicInt(a AtomicInt, oldval, newval int) bool {
	return bool(C.SDL_CompareAndSwapAtomicInt((*C.SDL_AtomicInt)(a), C.int(oldval), C.int(newval)))
}
func SetAtomicInt(a AtomicInt, v int) int {
	return int(C.SDL_SetAtomicInt((*C.SDL_AtomicInt)(a), C.int(v)))
}
func GetAtomicInt(a AtomicInt) int {
	return int(C.SDL_GetAtomicInt((*C.SDL_AtomicInt)(a)))
}
func AddAtomicInt(a AtomicInt, v int) int {
	return int(C.SDL_AddAtomicInt((*C.SDL_AtomicInt)(a), C.int(v)))
}

func NewAtomicU32() (AtomicU32, error) {
	p := C.calloc(1, C.sizeof_SDL_AtomicU32)
	if p == nil {
		return nil, &Error{Op: "calloc", Msg: "out of memory"}
	}
	return AtomicU32(p), nil
}

func FreeAtomicU32(a AtomicU32) { C.free(unsafe.Pointer(a)) }

func CompareAndSwapAtomicU32(a AtomicU32, oldval, newval uint32) bool {
	return bool(C.SDL_CompareAndSwapAtomicU32((*C.SDL_AtomicU32)(a), C.Uint32(oldval), C.Uint32(newval)))
}
func SetAtomicU32(a AtomicU32, v uint32) uint32 {
	return uint32(C.SDL_SetAtomicU32((*C.SDL_AtomicU32)(a), C.Uint32(v)))
}
func GetAtomicU32(a AtomicU32) uint32 {
	return uint32(C.SDL_GetAtomicU32((*C.SDL_AtomicU32)(a)))
}

func NewSpinLock() (SpinLock, error) {
	p := C.calloc(1, C.sizeof_SDL_SpinLock)
	if p == nil {
		return nil, &Error{Op: "calloc", Msg: "out of memory"}
	}
	return SpinLock(p), nil
}

func FreeSpinLock(l SpinLock)         { C.free(unsafe.Pointer(l)) }
func TryLockSpinlock(l SpinLock) bool { return bool(C.SDL_TryLockSpinlock((*C.SDL_SpinLock)(l))) }
func LockSpinlock(l SpinLock)         { C.SDL_LockSpinlock((*C.SDL_SpinLock)(l)) }
func UnlockSpinlock(l SpinLock)       { C.SDL_UnlockSpinlock((*C.SDL_SpinLock)(l)) }

func MemoryBarrierRelease() { C.SDL_MemoryBarrierReleaseFunction() }
func MemoryBarrierAcquire() { C.SDL_MemoryBarrierAcquireFunction() }
