package mutex

import (
	"runtime"
	"time"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/backend"
)

// Mutex is a recursive native mutex.
type Mutex struct {
	m backend.Mutex
}

func New() (*Mutex, error) {
	m, err := backend.CreateMutex()
	if err != nil {
		return nil, sdl.RemapError(err)
	}
	mu := &Mutex{m: m}
	runtime.SetFinalizer(mu, (*Mutex).Destroy)
	return mu, nil
}

func (m *Mutex) valid() bool { return m != nil && m.m != nil }

// Lock wires the calling goroutine to its OS thread until the matching
// Unlock, since the native mutex is owned by a thread.
func (m *Mutex) Lock() error {
	if !m.valid() {
		return sdl.ErrInvalidHandle
	}
	runtime.LockOSThread()
	backend.LockMutex(m.m)
	runtime.KeepAlive(m)
	return nil
}

// TryLock reports whether the lock was acquired without blocking. On success
// the goroutine stays wired to its thread as with Lock.
func (m *Mutex) TryLock() (bool, error) {
	if !m.valid() {
		return false, sdl.ErrInvalidHandle
	}
	runtime.LockOSThread()
	ok := backend.TryLockMutex(m.m)
	runtime.KeepAlive(m)
	if !ok {
		runtime.UnlockOSThread()
	}
	return ok, nil
}

// Unlock must run on the goroutine that locked m.
func (m *Mutex) Unlock() error {
	if !m.valid() {
		return sdl.ErrInvalidHandle
	}
	backend.UnlockMutex(m.m)
	runtime.KeepAlive(m)
	runtime.UnlockOSThread()
	return nil
}

func (m *Mutex) Destroy() {
	if !m.valid() {
		return
	}
	backend.DestroyMutex(m.m)
	m.m = nil
	runtime.SetFinalizer(m, nil)
}

// RWLock is a native reader/writer lock.
type RWLock struct {
	l backend.RWLock
}

func NewRWLock() (*RWLock, error) {
	l, err := backend.CreateRWLock()
	if err != nil {
		return nil, sdl.RemapError(err)
	}
	rw := &RWLock{l: l}
	runtime.SetFinalizer(rw, (*RWLock).Destroy)
	return rw, nil
}

func (l *RWLock) valid() bool { return l != nil && l.l != nil }

// LockForReading wires the goroutine to its thread until Unlock.
func (l *RWLock) LockForReading() error {
	if !l.valid() {
		return sdl.ErrInvalidHandle
	}
	runtime.LockOSThread()
	backend.LockRWLockForReading(l.l)
	runtime.KeepAlive(l)
	return nil
}

// LockForWriting wires the goroutine to its thread until Unlock.
func (l *RWLock) LockForWriting() error {
	if !l.valid() {
		return sdl.ErrInvalidHandle
	}
	runtime.LockOSThread()
	backend.LockRWLockForWriting(l.l)
	runtime.KeepAlive(l)
	return nil
}

func (l *RWLock) TryLockForReading() (bool, error) {
	if !l.valid() {
		return false, sdl.ErrInvalidHandle
	}
	return l.try(backend.TryLockRWLockForReading), nil
}

func (l *RWLock) TryLockForWriting() (bool, error) {
	if !l.valid() {
		return false, sdl.ErrInvalidHandle
	}
	return l.try(backend.TryLockRWLockForWriting), nil
}

func (l *RWLock) try(lock func(backend.RWLock) bool) bool {
	runtime.LockOSThread()
	ok := lock(l.l)
	runtime.KeepAlive(l)
	if !ok {
		runtime.UnlockOSThread()
	}
	return ok
}

// Unlock releases either kind of hold. It must run on the goroutine that
// took the hold.
func (l *RWLock) Unlock() error {
	if !l.valid() {
		return sdl.ErrInvalidHandle
	}
	backend.UnlockRWLock(l.l)
	runtime.KeepAlive(l)
	runtime.UnlockOSThread()
	return nil
}

func (l *RWLock) Destroy() {
	if !l.valid() {
		return
	}
	backend.DestroyRWLock(l.l)
	l.l = nil
	runtime.SetFinalizer(l, nil)
}

// Semaphore is a native counting semaphore.
type Semaphore struct {
	s backend.Semaphore
}

func NewSemaphore(initial uint32) (*Semaphore, error) {
	s, err := backend.CreateSemaphore(initial)
	if err != nil {
		return nil, sdl.RemapError(err)
	}
	sem := &Semaphore{s: s}
	runtime.SetFinalizer(sem, (*Semaphore).Destroy)
	return sem, nil
}

func (s *Semaphore) valid() bool { return s != nil && s.s != nil }

func (s *Semaphore) Wait() error {
	if !s.valid() {
		return sdl.ErrInvalidHandle
	}
	backend.WaitSemaphore(s.s)
	runtime.KeepAlive(s)
	return nil
}

func (s *Semaphore) TryWait() (bool, error) {
	if !s.valid() {
		return false, sdl.ErrInvalidHandle
	}
	ok := backend.TryWaitSemaphore(s.s)
	runtime.KeepAlive(s)
	return ok, nil
}

// WaitTimeout reports false when d elapsed first. Negative d waits forever.
func (s *Semaphore) WaitTimeout(d time.Duration) (bool, error) {
	if !s.valid() {
		return false, sdl.ErrInvalidHandle
	}
	ok := backend.WaitSemaphoreTimeout(s.s, timeoutMS(d))
	runtime.KeepAlive(s)
	return ok, nil
}

func (s *Semaphore) Signal() error {
	if !s.valid() {
		return sdl.ErrInvalidHandle
	}
	backend.SignalSemaphore(s.s)
	runtime.KeepAlive(s)
	return nil
}

func (s *Semaphore) Value() (uint32, error) {
	if !s.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	v := backend.GetSemaphoreValue(s.s)
	runtime.KeepAlive(s)
	return v, nil
}

func (s *Semaphore) Destroy() {
	if !s.valid() {
		return
	}
	backend.DestroySemaphore(s.s)
	s.s = nil
	runtime.SetFinalizer(s, nil)
}

// Condition is a native condition variable used together with a Mutex.
type Condition struct {
	c backend.Condition
}

func NewCondition() (*Condition, error) {
	c, err := backend.CreateCondition()
	if err != nil {
		return nil, sdl.RemapError(err)
	}
	cond := &Condition{c: c}
	runtime.SetFinalizer(cond, (*Condition).Destroy)
	return cond, nil
}

func (c *Condition) valid() bool { return c != nil && c.c != nil }

func (c *Condition) Signal() error {
	if !c.valid() {
		return sdl.ErrInvalidHandle
	}
	backend.SignalCondition(c.c)
	runtime.KeepAlive(c)
	return nil
}

func (c *Condition) Broadcast() error {
	if !c.valid() {
		return sdl.ErrInvalidHandle
	}
	backend.BroadcastCondition(c.c)
	runtime.KeepAlive(c)
	return nil
}

// Wait unlocks m, waits for a signal and locks m again.
func (c *Condition) Wait(m *Mutex) error {
	if !c.valid() || !m.valid() {
		return sdl.ErrInvalidHandle
	}
	backend.WaitCondition(c.c, m.m)
	runtime.KeepAlive(c)
	runtime.KeepAlive(m)
	return nil
}

// WaitTimeout is Wait with a limit; false means d elapsed.
func (c *Condition) WaitTimeout(m *Mutex, d time.Duration) (bool, error) {
	if !c.valid() || !m.valid() {
		return false, sdl.ErrInvalidHandle
	}
	ok := backend.WaitConditionTimeout(c.c, m.m, timeoutMS(d))
	runtime.KeepAlive(c)
	runtime.KeepAlive(m)
	return ok, nil
}

func (c *Condition) Destroy() {
	if !c.valid() {
		return
	}
	backend.DestroyCondition(c.c)
	c.c = nil
	runtime.SetFinalizer(c, nil)
}

// timeoutMS converts d to the native millisecond timeout, where -1 means
// wait forever.
func timeoutMS(d time.Duration) int32 {
	if d < 0 {
		return -1
	}
	ms := d.Milliseconds()
	if ms > 1<<31-1 {
		return 1<<31 - 1
	}
	return int32(ms)
}
