package events

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/sdltest"
)

const initEvents = uint32(sdl.InitEvents)

func TestRegisterRejectsZero(t *testing.T) {
	_, err := Register(0)
	require.ErrorIs(t, err, sdl.ErrInvalidArgument)
}

func TestNilCallbacks(t *testing.T) {
	_, err := AddWatch(nil)
	require.ErrorIs(t, err, sdl.ErrInvalidArgument)
	require.ErrorIs(t, FilterEvents(nil), sdl.ErrInvalidArgument)
	require.ErrorIs(t, RemoveWatch(0), sdl.ErrInvalidHandle)
}

func TestPeepValidation(t *testing.T) {
	_, err := Peep(ActionGet, nil, 1, Last, First)
	require.ErrorIs(t, err, sdl.ErrInvalidArgument)
	_, err = Peep(ActionPeek, nil, -1, First, Last)
	require.ErrorIs(t, err, sdl.ErrInvalidArgument)
	_, err = Peep(Action(9), nil, 1, First, Last)
	require.ErrorIs(t, err, sdl.ErrInvalidArgument)
}

func TestPushPollUserEvent(t *testing.T) {
	sdltest.Init(t, initEvents)

	typ, err := Register(1)
	require.NoError(t, err)
	FlushRange(First, Last)

	require.NoError(t, Push(UserEvent{Common: Common{Type: typ}, Code: 12, Data1: 99}))
	assert.True(t, Has(typ))

	ev, ok := Poll()
	require.True(t, ok)
	got, ok := ev.(UserEvent)
	require.True(t, ok)
	assert.Equal(t, typ, got.Type)
	assert.Equal(t, int32(12), got.Code)
	assert.Equal(t, uintptr(99), got.Data1)
}

func TestPeepAddAndGet(t *testing.T) {
	sdltest.Init(t, initEvents)
	FlushRange(First, Last)

	typ, err := Register(1)
	require.NoError(t, err)
	batch := []Event{
		UserEvent{Common: Common{Type: typ}, Code: 1},
		UserEvent{Common: Common{Type: typ}, Code: 2},
	}
	added, err := Peep(ActionAdd, batch, 0, First, Last)
	require.NoError(t, err)
	assert.Len(t, added, 2)

	peeked, err := Peep(ActionPeek, nil, 8, typ, typ)
	require.NoError(t, err)
	assert.Len(t, peeked, 2)

	got, err := Peep(ActionGet, nil, 8, typ, typ)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int32(2), got[1].(UserEvent).Code)
	assert.False(t, Has(typ))
}

func TestWaitHonoursContext(t *testing.T) {
	sdltest.Init(t, initEvents)
	FlushRange(First, Last)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()
	_, err := Wait(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFilterDropsEvents(t *testing.T) {
	sdltest.Init(t, initEvents)
	FlushRange(First, Last)

	typ, err := Register(1)
	require.NoError(t, err)
	SetFilter(func(ev Event) bool { return ev.EventType() != typ })
	defer SetFilter(nil)

	err = Push(UserEvent{Common: Common{Type: typ}})
	require.ErrorIs(t, err, ErrFiltered)
}

func TestFilteredPushUnderLoad(t *testing.T) {
	sdltest.Init(t, initEvents)
	FlushRange(First, Last)

	typ, err := Register(1)
	require.NoError(t, err)
	SetFilter(func(ev Event) bool { return ev.EventType() != typ })
	defer SetFilter(nil)

	stop := make(chan struct{})
	var noise sync.WaitGroup
	for i := 0; i < runtime.GOMAXPROCS(0); i++ {
		noise.Add(1)
		go func() {
			defer noise.Done()
			for {
				select {
				case <-stop:
					return
				default:
					sdl.SetError("unrelated failure")
					runtime.Gosched()
				}
			}
		}()
	}

	var pushers sync.WaitGroup
	errs := make(chan error, 4*200)
	for i := 0; i < 4; i++ {
		pushers.Add(1)
		go func() {
			defer pushers.Done()
			for j := 0; j < 200; j++ {
				errs <- Push(UserEvent{Common: Common{Type: typ}})
			}
		}()
	}
	pushers.Wait()
	close(stop)
	noise.Wait()
	close(errs)

	for err := range errs {
		require.ErrorIs(t, err, ErrFiltered)
	}
}

func TestWatchSeesPushedEvents(t *testing.T) {
	sdltest.Init(t, initEvents)

	typ, err := Register(1)
	require.NoError(t, err)
	var seen atomic.Int32
	id, err := AddWatch(func(ev Event) bool {
		if ev.EventType() == typ {
			seen.Add(1)
		}
		return true
	})
	require.NoError(t, err)

	require.NoError(t, Push(UserEvent{Common: Common{Type: typ}}))
	require.NoError(t, RemoveWatch(id))
	require.NoError(t, Push(UserEvent{Common: Common{Type: typ}}))
	assert.Equal(t, int32(1), seen.Load())

	require.NoError(t, FilterEvents(func(ev Event) bool { return ev.EventType() != typ }))
	assert.False(t, Has(typ))
}

func TestSetEnabled(t *testing.T) {
	sdltest.Init(t, initEvents)

	SetEnabled(DropFile, false)
	assert.False(t, Enabled(DropFile))
	SetEnabled(DropFile, true)
	assert.True(t, Enabled(DropFile))
}
