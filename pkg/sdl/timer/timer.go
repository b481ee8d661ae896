// Package timer exposes the native clock and callback timers.
//
// Timer callbacks run on a native timer thread, not on the goroutine that
// added them. Keep them short and hand work off through channels.
package timer

import (
	"fmt"
	"time"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/backend"
)

// ID identifies a running timer. Zero is never a valid timer.
type ID uint32

// Callback receives the timer ID and its current interval and returns the
// next interval; returning 0 cancels the timer.
type Callback func(id ID, interval time.Duration) time.Duration

// CallbackNS is the nanosecond-resolution variant of Callback.
type CallbackNS func(id ID, interval uint64) uint64

// Ticks returns the time since the library was initialised.
func Ticks() time.Duration {
	return time.Duration(backend.GetTicks()) * time.Millisecond
}

// TicksNS returns Ticks in nanoseconds.
func TicksNS() uint64 {
	return backend.GetTicksNS()
}

func PerformanceCounter() uint64 {
	return backend.GetPerformanceCounter()
}

// PerformanceFrequency returns the PerformanceCounter ticks per second.
func PerformanceFrequency() uint64 {
	return backend.GetPerformanceFrequency()
}

// Delay sleeps the calling thread for at least d, at millisecond resolution.
func Delay(d time.Duration) {
	if d <= 0 {
		return
	}
	backend.Delay(uint32(d.Milliseconds()))
}

func DelayNS(d time.Duration) {
	if d <= 0 {
		return
	}
	backend.DelayNS(uint64(d))
}

// DelayPrecise busy-waits the tail of d for better accuracy.
func DelayPrecise(d time.Duration) {
	if d <= 0 {
		return
	}
	backend.DelayPrecise(uint64(d))
}

// Add starts a timer that first fires after interval. The interval is
// rounded down to whole milliseconds and must be at least 1ms.
func Add(interval time.Duration, cb Callback) (ID, error) {
	if cb == nil {
		return 0, fmt.Errorf("%w: nil callback", sdl.ErrInvalidArgument)
	}
	ms := interval.Milliseconds()
	if ms < 1 || ms > 1<<32-1 {
		return 0, fmt.Errorf("%w: interval %s out of range", sdl.ErrInvalidArgument, interval)
	}
	id, err := backend.AddTimer(uint32(ms), func(id uint32, current uint32) uint32 {
		next := cb(ID(id), time.Duration(current)*time.Millisecond)
		if next <= 0 {
			return 0
		}
		return uint32(max(next.Milliseconds(), 1))
	})
	if err != nil {
		return 0, sdl.RemapError(err)
	}
	return ID(id), nil
}

// AddNS starts a timer with a nanosecond interval.
func AddNS(interval uint64, cb CallbackNS) (ID, error) {
	if cb == nil {
		return 0, fmt.Errorf("%w: nil callback", sdl.ErrInvalidArgument)
	}
	if interval == 0 {
		return 0, fmt.Errorf("%w: zero interval", sdl.ErrInvalidArgument)
	}
	id, err := backend.AddTimerNS(interval, func(id uint32, current uint64) uint64 {
		return cb(ID(id), current)
	})
	if err != nil {
		return 0, sdl.RemapError(err)
	}
	return ID(id), nil
}

// Remove cancels a timer and releases its callback.
func Remove(id ID) error {
	if id == 0 {
		return sdl.ErrInvalidHandle
	}
	return sdl.RemapError(backend.RemoveTimer(uint32(id)))
}
