//go:build cgo && !windows

package backend

/*
#include <stdint.h>
#include <stdlib.h>
#include <string.h>
#include <SDL3/SDL.h>

static bool sdlgo_read_async_io(SDL_AsyncIO *f, void *buf, Uint64 offset, Uint64 size, SDL_AsyncIOQueue *q, uintptr_t h) {
	return SDL_ReadAsyncIO(f, buf, offset, size, q, (void *)h);
}

static bool sdlgo_write_async_io(SDL_AsyncIO *f, void *buf, Uint64 offset, Uint64 size, SDL_AsyncIOQueue *q, uintptr_t h) {
	return SDL_WriteAsyncIO(f, buf, offset, size, q, (void *)h);
}

static bool sdlgo_close_async_io(SDL_AsyncIO *f, bool flush, SDL_AsyncIOQueue *q, uintptr_t h) {
	return SDL_CloseAsyncIO(f, flush, q, (void *)h);
}

static bool sdlgo_load_file_async(const char *path, SDL_AsyncIOQueue *q, uintptr_t h) {
	return SDL_LoadFileAsync(path, q, (void *)h);
}

static uintptr_t sdlgo_outcome_userdata(const SDL_AsyncIOOutcome *o) {
	return (uintptr_t)o->userdata;
}
*/
import "C"

import (
	"sync"
	"unsafe"
)

// asyncRequest is the registry record for one in-flight request. buf is
// native memory owned by the binding unless sdlOwned is set, in which case
// it came from SDL_LoadFileAsync and is released with SDL_free.
type asyncRequest struct {
	queue    AsyncIOQueue
	buf      unsafe.Pointer
	sdlOwned bool
}

// pending counts, per queue, the requests whose outcome has not been
// collected yet.
var (
	pendingMu sync.Mutex
	pending   = map[AsyncIOQueue]int{}
)

func track(q AsyncIOQueue, delta int) {
	pendingMu.Lock()
	defer pendingMu.Unlock()
	if n := pending[q] + delta; n > 0 {
		pending[q] = n
	} else {
		delete(pending, q)
	}
}

func inFlight(q AsyncIOQueue) int {
	pendingMu.Lock()
	defer pendingMu.Unlock()
	return pending[q]
}

// submit registers req against q and runs start; the registration is undone
// when start reports failure.
func submit(req *asyncRequest, start func(h handle) bool) (handle, bool) {
	h := put(req)
	track(req.queue, 1)
	if !start(h) {
		track(req.queue, -1)
		del(h)
		return 0, false
	}
	return h, true
}

func casync(f AsyncIO) *C.SDL_AsyncIO           { return (*C.SDL_AsyncIO)(f) }
func cqueue(q AsyncIOQueue) *C.SDL_AsyncIOQueue { return (*C.SDL_AsyncIOQueue)(q) }

func AsyncIOFromFile(path, mode string) (AsyncIO, error) {
	defer pinThread()()
	cpath, cmode := C.CString(path), C.CString(mode)
	defer C.free(unsafe.Pointer(cpath))
	defer C.free(unsafe.Pointer(cmode))
	f := C.SDL_AsyncIOFromFile(cpath, cmode)
	if f == nil {
		return nil, lastError("SDL_AsyncIOFromFile")
	}
	return AsyncIO(unsafe.Pointer(f)), nil
}

func GetAsyncIOSize(f AsyncIO) (int64, error) {
	defer pinThread()()
	n := C.SDL_GetAsyncIOSize(casync(f))
	if n < 0 {
		return 0, lastError("SDL_GetAsyncIOSize")
	}
	return int64(n), nil
}

// ReadAsyncIO queues a read of n bytes into a native buffer and returns the
// request token carried by the matching outcome.
func ReadAsyncIO(f AsyncIO, offset, n uint64, q AsyncIOQueue) (uintptr, error) {
	defer pinThread()()
	size := n
	if size == 0 {
		size = 1
	}
	buf := C.malloc(C.size_t(size))
	if buf == nil {
		return 0, errOutOfMemory("SDL_ReadAsyncIO")
	}
	h, ok := submit(&asyncRequest{queue: q, buf: buf}, func(h handle) bool {
		return bool(C.sdlgo_read_async_io(casync(f), buf, C.Uint64(offset), C.Uint64(n), cqueue(q), C.uintptr_t(h)))
	})
	if !ok {
		err := lastError("SDL_ReadAsyncIO")
		C.free(buf)
		return 0, err
	}
	return uintptr(h), nil
}

// WriteAsyncIO copies data into native memory that stays alive until the
// outcome is collected.
func WriteAsyncIO(f AsyncIO, offset uint64, data []byte, q AsyncIOQueue) (uintptr, error) {
	defer pinThread()()
	buf := copyToC(data)
	if buf == nil {
		return 0, errOutOfMemory("SDL_WriteAsyncIO")
	}
	h, ok := submit(&asyncRequest{queue: q, buf: buf}, func(h handle) bool {
		return bool(C.sdlgo_write_async_io(casync(f), buf, C.Uint64(offset), C.Uint64(len(data)), cqueue(q), C.uintptr_t(h)))
	})
	if !ok {
		err := lastError("SDL_WriteAsyncIO")
		C.free(buf)
		return 0, err
	}
	return uintptr(h), nil
}

func CloseAsyncIO(f AsyncIO, flush bool, q AsyncIOQueue) (uintptr, error) {
	defer pinThread()()
	h, ok := submit(&asyncRequest{queue: q}, func(h handle) bool {
		return bool(C.sdlgo_close_async_io(casync(f), C.bool(flush), cqueue(q), C.uintptr_t(h)))
	})
	if !ok {
		return 0, lastError("SDL_CloseAsyncIO")
	}
	return uintptr(h), nil
}

func LoadFileAsync(path string, q AsyncIOQueue) (uintptr, error) {
	defer pinThread()()
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	h, ok := submit(&asyncRequest{queue: q, sdlOwned: true}, func(h handle) bool {
		return bool(C.sdlgo_load_file_async(cpath, cqueue(q), C.uintptr_t(h)))
	})
	if !ok {
		return 0, lastError("SDL_LoadFileAsync")
	}
	return uintptr(h), nil
}

func CreateAsyncIOQueue() (AsyncIOQueue, error) {
	defer pinThread()()
	q := C.SDL_CreateAsyncIOQueue()
	if q == nil {
		return nil, lastError("SDL_CreateAsyncIOQueue")
	}
	return AsyncIOQueue(unsafe.Pointer(q)), nil
}

// DestroyAsyncIOQueue collects every outstanding outcome, releasing request
// buffers and handles, before destroying the queue. Outcomes collected here
// are discarded.
func DestroyAsyncIOQueue(q AsyncIOQueue) {
	for inFlight(q) > 0 {
		var o C.SDL_AsyncIOOutcome
		if C.SDL_WaitAsyncIOResult(cqueue(q), &o, -1) {
			outcomeFromC(&o)
		}
	}
	C.SDL_DestroyAsyncIOQueue(cqueue(q))
}

func SignalAsyncIOQueue(q AsyncIOQueue) { C.SDL_SignalAsyncIOQueue(cqueue(q)) }

// outcomeFromC copies the result out and releases the request's buffer and
// registry entry.
func outcomeFromC(o *C.SDL_AsyncIOOutcome) AsyncOutcome {
	h := handle(C.sdlgo_outcome_userdata(o))
	out := AsyncOutcome{
		Request:     uintptr(h),
		File:        AsyncIO(unsafe.Pointer(o.asyncio)),
		Type:        int(o._type),
		Result:      int(o.result),
		Offset:      uint64(o.offset),
		Requested:   uint64(o.bytes_requested),
		Transferred: uint64(o.bytes_transferred),
	}
	if o.buffer != nil && o._type == C.SDL_ASYNCIO_TASK_READ && o.bytes_transferred > 0 {
		out.Data = C.GoBytes(o.buffer, C.int(o.bytes_transferred))
	}
	v, ok := take(h)
	if !ok {
		return out
	}
	req := v.(*asyncRequest)
	track(req.queue, -1)
	switch {
	case req.sdlOwned && o.buffer != nil:
		C.SDL_free(o.buffer)
	case req.buf != nil:
		C.free(req.buf)
	}
	return out
}

func GetAsyncIOResult(q AsyncIOQueue) (AsyncOutcome, bool) {
	var o C.SDL_AsyncIOOutcome
	if !C.SDL_GetAsyncIOResult(cqueue(q), &o) {
		return AsyncOutcome{}, false
	}
	return outcomeFromC(&o), true
}

func WaitAsyncIOResult(q AsyncIOQueue, timeoutMS int32) (AsyncOutcome, bool) {
	var o C.SDL_AsyncIOOutcome
	if !C.SDL_WaitAsyncIOResult(cqueue(q), &o, C.Sint32(timeoutMS)) {
		return AsyncOutcome{}, false
	}
	return outcomeFromC(&o), true
}
