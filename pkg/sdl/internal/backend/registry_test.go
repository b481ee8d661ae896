package backend

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRoundTrip(t *testing.T) {
	before := registered()

	h := put("value")
	require.NotZero(t, h)

	v, ok := get(h)
	require.True(t, ok)
	assert.Equal(t, "value", v)

	del(h)
	_, ok = get(h)
	assert.False(t, ok)
	assert.Equal(t, before, registered())
}

func TestRegistryZeroHandle(t *testing.T) {
	_, ok := get(0)
	assert.False(t, ok)
}

func TestRegistryTake(t *testing.T) {
	h := put(42)
	v, ok := take(h)
	require.True(t, ok)
	assert.Equal(t, 42, v)

	_, ok = take(h)
	assert.False(t, ok)
}

func TestRegistryConcurrentPut(t *testing.T) {
	const n = 64
	handles := make([]handle, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			handles[i] = put(i)
		}(i)
	}
	wg.Wait()

	seen := make(map[handle]bool, n)
	for _, h := range handles {
		assert.False(t, seen[h], "duplicate handle %d", h)
		seen[h] = true
		del(h)
	}
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "sdl: SDL_Init: No available video device", (&Error{Op: "SDL_Init", Msg: "No available video device"}).Error())
	assert.Equal(t, "sdl: SDL_OpenJoystick failed", (&Error{Op: "SDL_OpenJoystick"}).Error())
}
