package timer

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/sdltest"
)

func TestAddValidatesArguments(t *testing.T) {
	_, err := Add(time.Second, nil)
	assert.ErrorIs(t, err, sdl.ErrInvalidArgument)

	_, err = Add(500*time.Microsecond, func(ID, time.Duration) time.Duration { return 0 })
	assert.ErrorIs(t, err, sdl.ErrInvalidArgument)

	_, err = AddNS(0, func(ID, uint64) uint64 { return 0 })
	assert.ErrorIs(t, err, sdl.ErrInvalidArgument)

	assert.ErrorIs(t, Remove(0), sdl.ErrInvalidHandle)
}

func TestTimerFiresUntilCancelled(t *testing.T) {
	sdltest.Init(t, uint32(sdl.InitEvents))

	fired := make(chan ID, 8)
	var calls atomic.Int32
	id, err := Add(5*time.Millisecond, func(id ID, interval time.Duration) time.Duration {
		fired <- id
		if calls.Add(1) >= 3 {
			return 0
		}
		return interval
	})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		select {
		case got := <-fired:
			assert.Equal(t, id, got)
		case <-time.After(2 * time.Second):
			t.Fatal("timer did not fire")
		}
	}
}

func TestRemoveStopsTimer(t *testing.T) {
	sdltest.Init(t, uint32(sdl.InitEvents))

	id, err := AddNS(uint64(time.Hour), func(ID, uint64) uint64 { return 0 })
	require.NoError(t, err)
	require.NoError(t, Remove(id))
	assert.Error(t, Remove(id))
}

func TestTicksAdvance(t *testing.T) {
	sdltest.Init(t, uint32(sdl.InitEvents))

	start := TicksNS()
	DelayNS(2 * time.Millisecond)
	assert.Greater(t, TicksNS(), start)
	assert.NotZero(t, PerformanceFrequency())
}
