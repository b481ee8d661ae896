package events

import (
	"context"
	"fmt"
	"time"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/backend"
)

// ErrFiltered is returned by Push when a filter dropped the event.
var ErrFiltered = backend.ErrEventFiltered

// Action selects what Peep does with the queue.
type Action int

const (
	ActionAdd Action = iota
	ActionPeek
	ActionGet
)

// waitSlice bounds each native wait in Wait so cancellation is noticed.
const waitSlice = 50 * time.Millisecond

// Filter inspects an event; returning false drops it (filters) or is
// ignored (watches).
type Filter func(ev Event) bool

// WatchID identifies a watch registered with AddWatch.
type WatchID uintptr

// Pump gathers pending input from devices into the queue.
func Pump() {
	backend.PumpEvents()
}

// Poll returns the next queued event, or false when the queue is empty.
func Poll() (Event, bool) {
	ev, ok := backend.PollEvent()
	if !ok {
		return nil, false
	}
	return decode(ev), true
}

// Wait blocks until an event arrives or ctx is done.
func Wait(ctx context.Context) (Event, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		slice := waitSlice
		if deadline, ok := ctx.Deadline(); ok {
			if left := time.Until(deadline); left < slice {
				slice = max(left, time.Millisecond)
			}
		}
		if ev, ok := backend.WaitEventTimeout(int32(slice.Milliseconds())); ok {
			return decode(ev), nil
		}
	}
}

// WaitTimeout waits up to d for an event. A negative d waits forever.
func WaitTimeout(d time.Duration) (Event, bool) {
	ms := int32(-1)
	if d >= 0 {
		ms = int32(min(d.Milliseconds(), int64(1<<31-1)))
	}
	ev, ok := backend.WaitEventTimeout(ms)
	if !ok {
		return nil, false
	}
	return decode(ev), true
}

// Push appends ev to the queue.
func Push(ev Event) error {
	raw, err := encode(ev)
	if err != nil {
		return err
	}
	return sdl.RemapError(backend.PushEvent(raw))
}

// Peep adds evs to the queue (ActionAdd) or returns up to n events in
// [minType, maxType], leaving them queued (ActionPeek) or removing them
// (ActionGet). For ActionAdd the events actually added are returned.
func Peep(action Action, evs []Event, n int, minType, maxType Type) ([]Event, error) {
	if minType > maxType {
		return nil, fmt.Errorf("%w: type range %s..%s", sdl.ErrInvalidArgument, minType, maxType)
	}
	switch action {
	case ActionAdd:
		raws := make([]backend.Event, len(evs))
		for i, ev := range evs {
			raw, err := encode(ev)
			if err != nil {
				return nil, err
			}
			raws[i] = raw
		}
		added, err := backend.PeepEvents(raws, 0, int(action), uint32(minType), uint32(maxType))
		if err != nil {
			return nil, sdl.RemapError(err)
		}
		return evs[:len(added)], nil
	case ActionPeek, ActionGet:
		if n < 0 {
			return nil, fmt.Errorf("%w: negative count %d", sdl.ErrInvalidArgument, n)
		}
		raws, err := backend.PeepEvents(nil, n, int(action), uint32(minType), uint32(maxType))
		if err != nil {
			return nil, sdl.RemapError(err)
		}
		out := make([]Event, len(raws))
		for i, raw := range raws {
			out[i] = decode(raw)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: peep action %d", sdl.ErrInvalidArgument, action)
}

func Has(t Type) bool {
	return backend.HasEvent(uint32(t))
}

func HasRange(minType, maxType Type) bool {
	return backend.HasEvents(uint32(minType), uint32(maxType))
}

// Flush drops queued events of type t. Call Pump first to include input not
// yet gathered.
func Flush(t Type) {
	backend.FlushEvent(uint32(t))
}

func FlushRange(minType, maxType Type) {
	backend.FlushEvents(uint32(minType), uint32(maxType))
}

// SetEnabled turns queueing of t on or off.
func SetEnabled(t Type, enabled bool) {
	backend.SetEventEnabled(uint32(t), enabled)
}

func Enabled(t Type) bool {
	return backend.EventEnabled(uint32(t))
}

// Register reserves n consecutive user event types and returns the first.
func Register(n int) (Type, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: cannot register %d event types", sdl.ErrInvalidArgument, n)
	}
	first, err := backend.RegisterEvents(n)
	if err != nil {
		return 0, sdl.RemapError(err)
	}
	return Type(first), nil
}

func wrap(fn Filter) backend.EventFunc {
	return func(ev backend.Event) bool {
		return fn(decode(ev))
	}
}

// AddWatch calls fn for every event as it is queued. fn runs on the thread
// that pushed the event.
func AddWatch(fn Filter) (WatchID, error) {
	if fn == nil {
		return 0, fmt.Errorf("%w: nil watch", sdl.ErrInvalidArgument)
	}
	id, err := backend.AddEventWatch(wrap(fn))
	if err != nil {
		return 0, sdl.RemapError(err)
	}
	return WatchID(id), nil
}

// RemoveWatch unregisters a watch. Unknown IDs are ignored.
func RemoveWatch(id WatchID) error {
	if id == 0 {
		return sdl.ErrInvalidHandle
	}
	backend.RemoveEventWatch(uintptr(id))
	return nil
}

// SetFilter installs fn as the queue filter; nil removes it.
func SetFilter(fn Filter) {
	if fn == nil {
		backend.SetEventFilter(nil)
		return
	}
	backend.SetEventFilter(wrap(fn))
}

// FilterEvents removes every queued event for which fn returns false.
func FilterEvents(fn Filter) error {
	if fn == nil {
		return fmt.Errorf("%w: nil filter", sdl.ErrInvalidArgument)
	}
	backend.FilterEvents(wrap(fn))
	return nil
}

// KeyName returns the human-readable name of a key code.
func KeyName(key uint32) string {
	return backend.KeyName(key)
}

func ScancodeName(code uint32) string {
	return backend.ScancodeName(code)
}
