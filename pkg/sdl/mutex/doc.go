// Package mutex wraps the native mutex, read/write lock, semaphore and
// condition variable. They are meant for sharing state with native code or
// native callbacks; pure Go code should keep using package sync.
//
// Native locks belong to the OS thread that took them. A successful Lock,
// TryLock or RWLock acquisition wires the calling goroutine to its thread
// with runtime.LockOSThread, and Unlock releases that wiring, so Lock and
// Unlock must be called from the same goroutine. Holds nest: a recursive
// Mutex lock pins once per level.
//
// Every type's zero value is invalid: methods return sdl.ErrInvalidHandle
// without calling native code, and Destroy is always safe to repeat. Handles
// dropped without Destroy are released by a finalizer.
package mutex
