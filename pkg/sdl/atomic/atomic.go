// Package atomic wraps the native atomic integers and spin locks. Their
// storage is allocated in native memory so it can be shared with native
// code; release it with Free, or leave it to the finalizer that frees
// storage dropped without Free.
package atomic

import (
	"runtime"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/backend"
)

// Int is an SDL_AtomicInt.
type Int struct {
	p backend.AtomicInt
}

func NewInt() (*Int, error) {
	p, err := backend.NewAtomicInt()
	if err != nil {
		return nil, sdl.RemapError(err)
	}
	a := &Int{p: p}
	runtime.SetFinalizer(a, (*Int).Free)
	return a, nil
}

func (a *Int) valid() bool { return a != nil && a.p != nil }

// CompareAndSwap sets the value to newval if it currently equals oldval.
func (a *Int) CompareAndSwap(oldval, newval int) (bool, error) {
	if !a.valid() {
		return false, sdl.ErrInvalidHandle
	}
	r := backend.CompareAndSwapAtomicInt(a.p, oldval, newval)
	runtime.KeepAlive(a)
	return r, nil
}

// Set stores v and returns the previous value.
func (a *Int) Set(v int) (int, error) {
	if !a.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	r := backend.SetAtomicInt(a.p, v)
	runtime.KeepAlive(a)
	return r, nil
}

func (a *Int) Get() (int, error) {
	if !a.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	r := backend.GetAtomicInt(a.p)
	runtime.KeepAlive(a)
	return r, nil
}

// Add adds v and returns the previous value.
func (a *Int) Add(v int) (int, error) {
	if !a.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	r := backend.AddAtomicInt(a.p, v)
	runtime.KeepAlive(a)
	return r, nil
}

// Free releases the native storage. It is safe to call more than once.
func (a *Int) Free() {
	if !a.valid() {
		return
	}
	backend.FreeAtomicInt(a.p)
	a.p = nil
	runtime.SetFinalizer(a, nil)
}

// U32 is an SDL_AtomicU32.
type U32 struct {
	p backend.AtomicU32
}

func NewU32() (*U32, error) {
	p, err := backend.NewAtomicU32()
	if err != nil {
		return nil, sdl.RemapError(err)
	}
	a := &U32{p: p}
	runtime.SetFinalizer(a, (*U32).Free)
	return a, nil
}

func (a *U32) valid() bool { return a != nil && a.p != nil }

func (a *U32) CompareAndSwap(oldval, newval uint32) (bool, error) {
	if !a.valid() {
		return false, sdl.ErrInvalidHandle
	}
	r := backend.CompareAndSwapAtomicU32(a.p, oldval, newval)
	runtime.KeepAlive(a)
	return r, nil
}

func (a *U32) Set(v uint32) (uint32, error) {
	if !a.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	r := backend.SetAtomicU32(a.p, v)
	runtime.KeepAlive(a)
	return r, nil
}

func (a *U32) Get() (uint32, error) {
	if !a.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	r := backend.GetAtomicU32(a.p)
	runtime.KeepAlive(a)
	return r, nil
}

func (a *U32) Free() {
	if !a.valid() {
		return
	}
	backend.FreeAtomicU32(a.p)
	a.p = nil
	runtime.SetFinalizer(a, nil)
}

// SpinLock is an SDL_SpinLock. Hold it only for very short sections.
type SpinLock struct {
	p backend.SpinLock
}

func NewSpinLock() (*SpinLock, error) {
	p, err := backend.NewSpinLock()
	if err != nil {
		return nil, sdl.RemapError(err)
	}
	l := &SpinLock{p: p}
	runtime.SetFinalizer(l, (*SpinLock).Free)
	return l, nil
}

func (l *SpinLock) valid() bool { return l != nil && l.p != nil }

func (l *SpinLock) TryLock() (bool, error) {
	if !l.valid() {
		return false, sdl.ErrInvalidHandle
	}
	r := backend.TryLockSpinlock(l.p)
	runtime.KeepAlive(l)
	return r, nil
}

func (l *SpinLock) Lock() error {
	if !l.valid() {
		return sdl.ErrInvalidHandle
	}
	backend.LockSpinlock(l.p)
	runtime.KeepAlive(l)
	return nil
}

func (l *SpinLock) Unlock() error {
	if !l.valid() {
		return sdl.ErrInvalidHandle
	}
	backend.UnlockSpinlock(l.p)
	runtime.KeepAlive(l)
	return nil
}

func (l *SpinLock) Free() {
	if !l.valid() {
		return
	}
	backend.FreeSpinLock(l.p)
	l.p = nil
	runtime.SetFinalizer(l, nil)
}

// MemoryBarrierRelease and MemoryBarrierAcquire order native memory accesses
// around lock-free hand-offs.
func MemoryBarrierRelease() { backend.MemoryBarrierRelease() }
func MemoryBarrierAcquire() { backend.MemoryBarrierAcquire() }
