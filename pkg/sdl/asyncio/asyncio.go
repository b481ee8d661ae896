// Package asyncio queues file reads and writes on native worker threads and
// collects their outcomes from a Queue.
//
// Buffers for in-flight requests live in native memory. Collecting an
// outcome copies read data into Go and releases the buffer, so every
// request should eventually be collected through Result, WaitResult or Wait.
package asyncio

import (
	"context"
	"fmt"
	"time"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/backend"
)

// waitSlice bounds each native wait in Queue.Wait.
const waitSlice = 50 * time.Millisecond

// TaskType mirrors SDL_AsyncIOTaskType.
type TaskType int

const (
	TaskRead TaskType = iota
	TaskWrite
	TaskClose
)

func (t TaskType) String() string {
	switch t {
	case TaskRead:
		return "read"
	case TaskWrite:
		return "write"
	case TaskClose:
		return "close"
	default:
		return fmt.Sprintf("task(%d)", int(t))
	}
}

// Result mirrors SDL_AsyncIOResult.
type Result int

const (
	ResultComplete Result = iota
	ResultFailure
	ResultCanceled
)

func (r Result) String() string {
	switch r {
	case ResultComplete:
		return "complete"
	case ResultFailure:
		return "failure"
	case ResultCanceled:
		return "canceled"
	default:
		return fmt.Sprintf("result(%d)", int(r))
	}
}

// Request identifies a queued task; it is echoed in the task's Outcome.
type Request uintptr

// Outcome is a finished task. Data holds the bytes read for read tasks.
type Outcome struct {
	Request     Request
	Type        TaskType
	Result      Result
	Offset      uint64
	Requested   uint64
	Transferred uint64
	Data        []byte
}

// Err returns nil for completed tasks.
func (o Outcome) Err() error {
	if o.Result == ResultComplete {
		return nil
	}
	return fmt.Errorf("asyncio: %s request %d %s", o.Type, o.Request, o.Result)
}

func outcomeFrom(o backend.AsyncOutcome) Outcome {
	return Outcome{
		Request:     Request(o.Request),
		Type:        TaskType(o.Type),
		Result:      Result(o.Result),
		Offset:      o.Offset,
		Requested:   o.Requested,
		Transferred: o.Transferred,
		Data:        o.Data,
	}
}

// Queue collects outcomes of the tasks submitted to it.
type Queue struct {
	q backend.AsyncIOQueue
}

func NewQueue() (*Queue, error) {
	q, err := backend.CreateAsyncIOQueue()
	if err != nil {
		return nil, sdl.RemapError(err)
	}
	return &Queue{q: q}, nil
}

func (q *Queue) valid() bool { return q != nil && q.q != nil }

// Destroy blocks until every task submitted to the queue has finished,
// releases their buffers and destroys the queue. Uncollected outcomes are
// discarded.
func (q *Queue) Destroy() {
	if !q.valid() {
		return
	}
	backend.DestroyAsyncIOQueue(q.q)
	q.q = nil
}

// Signal wakes every goroutine blocked in WaitResult or Wait.
func (q *Queue) Signal() {
	if !q.valid() {
		return
	}
	backend.SignalAsyncIOQueue(q.q)
}

// Result returns a finished outcome without blocking.
func (q *Queue) Result() (Outcome, bool) {
	if !q.valid() {
		return Outcome{}, false
	}
	o, ok := backend.GetAsyncIOResult(q.q)
	if !ok {
		return Outcome{}, false
	}
	return outcomeFrom(o), true
}

// WaitResult blocks up to timeout for an outcome; a negative timeout waits
// until one arrives or Signal is called.
func (q *Queue) WaitResult(timeout time.Duration) (Outcome, bool) {
	if !q.valid() {
		return Outcome{}, false
	}
	ms := int32(-1)
	if timeout >= 0 {
		ms = int32(min(timeout.Milliseconds(), int64(1<<31-1)))
	}
	o, ok := backend.WaitAsyncIOResult(q.q, ms)
	if !ok {
		return Outcome{}, false
	}
	return outcomeFrom(o), true
}

// Wait blocks until an outcome arrives or ctx is done.
func (q *Queue) Wait(ctx context.Context) (Outcome, error) {
	if !q.valid() {
		return Outcome{}, sdl.ErrInvalidHandle
	}
	for {
		if err := ctx.Err(); err != nil {
			return Outcome{}, err
		}
		if o, ok := backend.WaitAsyncIOResult(q.q, int32(waitSlice.Milliseconds())); ok {
			return outcomeFrom(o), nil
		}
	}
}

// File is a file opened for asynchronous access.
type File struct {
	f backend.AsyncIO
}

// Open opens path with mode "r", "w", "r+" or "w+".
func Open(path, mode string) (*File, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", sdl.ErrInvalidArgument)
	}
	switch mode {
	case "r", "w", "r+", "w+":
	default:
		return nil, fmt.Errorf("%w: mode %q", sdl.ErrInvalidArgument, mode)
	}
	f, err := backend.AsyncIOFromFile(path, mode)
	if err != nil {
		return nil, sdl.RemapError(err)
	}
	return &File{f: f}, nil
}

func (f *File) valid() bool { return f != nil && f.f != nil }

// Size returns the file size. It may block briefly.
func (f *File) Size() (int64, error) {
	if !f.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	n, err := backend.GetAsyncIOSize(f.f)
	return n, sdl.RemapError(err)
}

// Read queues a read of n bytes at offset.
func (f *File) Read(offset, n uint64, q *Queue) (Request, error) {
	if !f.valid() || !q.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	if n == 0 {
		return 0, fmt.Errorf("%w: zero-length read", sdl.ErrInvalidArgument)
	}
	req, err := backend.ReadAsyncIO(f.f, offset, n, q.q)
	return Request(req), sdl.RemapError(err)
}

// Write queues a write of a copy of data at offset.
func (f *File) Write(offset uint64, data []byte, q *Queue) (Request, error) {
	if !f.valid() || !q.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	if len(data) == 0 {
		return 0, fmt.Errorf("%w: empty write", sdl.ErrInvalidArgument)
	}
	req, err := backend.WriteAsyncIO(f.f, offset, data, q.q)
	return Request(req), sdl.RemapError(err)
}

// Close queues the close after pending tasks, optionally flushing to disk.
// The File is unusable afterwards whatever the outcome.
func (f *File) Close(flush bool, q *Queue) (Request, error) {
	if !f.valid() || !q.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	req, err := backend.CloseAsyncIO(f.f, flush, q.q)
	if err != nil {
		return 0, sdl.RemapError(err)
	}
	f.f = nil
	return Request(req), nil
}

// LoadFile queues a read of the whole file at path; the outcome's Data holds
// the contents.
func LoadFile(path string, q *Queue) (Request, error) {
	if !q.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	if path == "" {
		return 0, fmt.Errorf("%w: empty path", sdl.ErrInvalidArgument)
	}
	req, err := backend.LoadFileAsync(path, q.q)
	return Request(req), sdl.RemapError(err)
}
