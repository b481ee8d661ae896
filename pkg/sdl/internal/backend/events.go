//go:build cgo && !windows

package backend

/*
#include <stdlib.h>
#include <SDL3/SDL.h>

// sdlgo_push_event returns 1 when the event was queued, 0 when a filter
// dropped it and -1 on failure, with the error copied into buf on the same
// thread that produced it.
static int sdlgo_push_event(SDL_Event *ev, char *buf, size_t n) {
	SDL_ClearError();
	if (SDL_PushEvent(ev)) {
		return 1;
	}
	const char *msg = SDL_GetError();
	if (msg == NULL || msg[0] == '\0') {
		return 0;
	}
	SDL_strlcpy(buf, msg, n);
	return -1;
}
*/
import "C"

import (
	"sync"
	"unsafe"
)

// eventFromC copies a native event and resolves the strings of
// pointer-bearing event kinds while the native record is still valid.
func eventFromC(ev *C.SDL_Event) Event {
	var out Event
	out.Raw = *(*[EventSize]byte)(unsafe.Pointer(ev))

	switch uint32(*(*C.Uint32)(unsafe.Pointer(ev))) {
	case C.SDL_EVENT_TEXT_INPUT:
		te := (*C.SDL_TextInputEvent)(unsafe.Pointer(ev))
		if te.text != nil {
			out.Text = C.GoString(te.text)
		}
	case C.SDL_EVENT_TEXT_EDITING:
		te := (*C.SDL_TextEditingEvent)(unsafe.Pointer(ev))
		if te.text != nil {
			out.Text = C.GoString(te.text)
		}
	case C.SDL_EVENT_DROP_FILE, C.SDL_EVENT_DROP_TEXT, C.SDL_EVENT_DROP_BEGIN,
		C.SDL_EVENT_DROP_COMPLETE, C.SDL_EVENT_DROP_POSITION:
		de := (*C.SDL_DropEvent)(unsafe.Pointer(ev))
		if de.data != nil {
			out.Text = C.GoString(de.data)
		}
		if de.source != nil {
			out.Source = C.GoString(de.source)
		}
	}
	return out
}

func eventToC(ev Event, dst *C.SDL_Event) {
	*(*[EventSize]byte)(unsafe.Pointer(dst)) = ev.Raw
}

func PumpEvents() {
	C.SDL_PumpEvents()
}

func PollEvent() (Event, bool) {
	var ev C.SDL_Event
	if !C.SDL_PollEvent(&ev) {
		return Event{}, false
	}
	return eventFromC(&ev), true
}

func WaitEvent() (Event, error) {
	defer pinThread()()
	var ev C.SDL_Event
	if !C.SDL_WaitEvent(&ev) {
		return Event{}, lastError("SDL_WaitEvent")
	}
	return eventFromC(&ev), nil
}

// WaitEventTimeout returns false when the timeout elapsed without an event.
func WaitEventTimeout(timeoutMS int32) (Event, bool) {
	var ev C.SDL_Event
	if !C.SDL_WaitEventTimeout(&ev, C.Sint32(timeoutMS)) {
		return Event{}, false
	}
	return eventFromC(&ev), true
}

func PushEvent(ev Event) error {
	var cev C.SDL_Event
	eventToC(ev, &cev)
	var buf [errBufSize]C.char
	switch C.sdlgo_push_event(&cev, &buf[0], C.size_t(len(buf))) {
	case 1:
		return nil
	case 0:
		return ErrEventFiltered
	default:
		return &Error{Op: "SDL_PushEvent", Msg: C.GoString(&buf[0])}
	}
}

// PeepEvents adds events (action 0) or peeks/gets up to n events (action 1/2)
// in the [minType, maxType] range.
func PeepEvents(in []Event, n int, action int, minType, maxType uint32) ([]Event, error) {
	defer pinThread()()
	if action == C.SDL_ADDEVENT {
		n = len(in)
	}
	if n <= 0 {
		return nil, nil
	}
	buf := make([]C.SDL_Event, n)
	if action == C.SDL_ADDEVENT {
		for i := range in {
			eventToC(in[i], &buf[i])
		}
	}
	got := C.SDL_PeepEvents(&buf[0], C.int(n), C.SDL_EventAction(action), C.Uint32(minType), C.Uint32(maxType))
	if got < 0 {
		return nil, lastError("SDL_PeepEvents")
	}
	if action == C.SDL_ADDEVENT {
		return in[:int(got)], nil
	}
	out := make([]Event, int(got))
	for i := range out {
		out[i] = eventFromC(&buf[i])
	}
	return out, nil
}

func HasEvent(typ uint32) bool {
	return bool(C.SDL_HasEvent(C.Uint32(typ)))
}

func HasEvents(minType, maxType uint32) bool {
	return bool(C.SDL_HasEvents(C.Uint32(minType), C.Uint32(maxType)))
}

func FlushEvent(typ uint32) {
	C.SDL_FlushEvent(C.Uint32(typ))
}

func FlushEvents(minType, maxType uint32) {
	C.SDL_FlushEvents(C.Uint32(minType), C.Uint32(maxType))
}

func SetEventEnabled(typ uint32, enabled bool) {
	C.SDL_SetEventEnabled(C.Uint32(typ), C.bool(enabled))
}

func EventEnabled(typ uint32) bool {
	return bool(C.SDL_EventEnabled(C.Uint32(typ)))
}

// RegisterEvents returns the first allocated user event type.
func RegisterEvents(n int) (uint32, error) {
	first := C.SDL_RegisterEvents(C.int(n))
	if first == 0 {
		return 0, &Error{Op: "SDL_RegisterEvents", Msg: "not enough user event types left"}
	}
	return uint32(first), nil
}

// AddEventWatch returns a token for RemoveEventWatch.
func AddEventWatch(fn EventFunc) (uintptr, error) {
	defer pinThread()()
	h := put(fn)
	if !addEventWatch(h) {
		del(h)
		return 0, lastError("SDL_AddEventWatch")
	}
	return uintptr(h), nil
}

func RemoveEventWatch(token uintptr) {
	h := handle(token)
	if _, ok := get(h); !ok {
		return
	}
	removeEventWatch(h)
	del(h)
}

var (
	filterMu     sync.Mutex
	filterHandle handle
)

// SetEventFilter replaces the global event filter; nil clears it.
func SetEventFilter(fn EventFunc) {
	filterMu.Lock()
	defer filterMu.Unlock()

	var h handle
	if fn != nil {
		h = put(fn)
	}
	setEventFilter(h)
	if filterHandle != 0 {
		del(filterHandle)
	}
	filterHandle = h
}

// FilterEvents runs fn over the queue, dropping events it rejects.
func FilterEvents(fn EventFunc) {
	h := put(fn)
	defer del(h)
	filterEvents(h)
}

func KeyName(key uint32) string {
	return C.GoString(C.SDL_GetKeyName(C.SDL_Keycode(key)))
}

func ScancodeName(code uint32) string {
	return C.GoString(C.SDL_GetScancodeName(C.SDL_Scancode(code)))
}
