package atomic

import (
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/sdltest"
)

func TestZeroValuesRejected(t *testing.T) {
	var i *Int
	_, err := i.Get()
	assert.ErrorIs(t, err, sdl.ErrInvalidHandle)
	i.Free()

	var u U32
	_, err = u.Set(1)
	assert.ErrorIs(t, err, sdl.ErrInvalidHandle)

	var l SpinLock
	assert.ErrorIs(t, l.Lock(), sdl.ErrInvalidHandle)
	_, err = l.TryLock()
	assert.ErrorIs(t, err, sdl.ErrInvalidHandle)
}

func TestIntOperations(t *testing.T) {
	sdltest.RequireBuilt(t)

	a, err := NewInt()
	require.NoError(t, err)
	defer a.Free()

	prev, err := a.Set(5)
	require.NoError(t, err)
	assert.Equal(t, 0, prev)

	ok, err := a.CompareAndSwap(5, 9)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, _ = a.CompareAndSwap(5, 1)
	assert.False(t, ok)

	prev, _ = a.Add(-2)
	assert.Equal(t, 9, prev)
	v, _ := a.Get()
	assert.Equal(t, 7, v)

	a.Free()
	_, err = a.Get()
	assert.ErrorIs(t, err, sdl.ErrInvalidHandle)
}

func TestConcurrentAdd(t *testing.T) {
	sdltest.RequireBuilt(t)

	a, err := NewInt()
	require.NoError(t, err)
	defer a.Free()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				_, _ = a.Add(1)
			}
		}()
	}
	wg.Wait()

	v, err := a.Get()
	require.NoError(t, err)
	assert.Equal(t, 8000, v)
}

func TestSpinLock(t *testing.T) {
	sdltest.RequireBuilt(t)

	l, err := NewSpinLock()
	require.NoError(t, err)
	defer l.Free()

	ok, err := l.TryLock()
	require.NoError(t, err)
	require.True(t, ok)

	ok, _ = l.TryLock()
	assert.False(t, ok)

	require.NoError(t, l.Unlock())
	require.NoError(t, l.Lock())
	require.NoError(t, l.Unlock())
}

func TestU32(t *testing.T) {
	sdltest.RequireBuilt(t)

	u, err := NewU32()
	require.NoError(t, err)
	defer u.Free()

	_, _ = u.Set(0xFFFFFFFF)
	v, _ := u.Get()
	assert.Equal(t, uint32(0xFFFFFFFF), v)
	ok, _ := u.CompareAndSwap(0xFFFFFFFF, 1)
	assert.True(t, ok)
}

func TestDroppedValuesAreReclaimed(t *testing.T) {
	sdltest.RequireBuilt(t)

	for i := 0; i < 256; i++ {
		a, err := NewInt()
		require.NoError(t, err)
		_, err = a.Add(i)
		require.NoError(t, err)
		l, err := NewSpinLock()
		require.NoError(t, err)
		require.NoError(t, l.Lock())
		require.NoError(t, l.Unlock())
	}
	runtime.GC()
	runtime.GC()

	kept, err := NewU32()
	require.NoError(t, err)
	kept.Free()
	kept.Free()
	_, err = kept.Get()
	assert.ErrorIs(t, err, sdl.ErrInvalidHandle)
}
