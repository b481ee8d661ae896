package mutex

import (
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/sdltest"
)

func TestZeroHandles(t *testing.T) {
	var m Mutex
	assert.ErrorIs(t, m.Lock(), sdl.ErrInvalidHandle)
	assert.ErrorIs(t, m.Unlock(), sdl.ErrInvalidHandle)
	m.Destroy()

	var l *RWLock
	assert.ErrorIs(t, l.LockForReading(), sdl.ErrInvalidHandle)
	l.Destroy()

	var s Semaphore
	_, err := s.WaitTimeout(time.Millisecond)
	assert.ErrorIs(t, err, sdl.ErrInvalidHandle)

	var c Condition
	assert.ErrorIs(t, c.Wait(&m), sdl.ErrInvalidHandle)
}

func TestTimeoutMS(t *testing.T) {
	assert.Equal(t, int32(-1), timeoutMS(-time.Second))
	assert.Equal(t, int32(0), timeoutMS(0))
	assert.Equal(t, int32(1500), timeoutMS(1500*time.Millisecond))
	assert.Equal(t, int32(1<<31-1), timeoutMS(1000*time.Hour))
}

func TestMutexTryLock(t *testing.T) {
	sdltest.RequireBuilt(t)

	m, err := New()
	require.NoError(t, err)
	defer m.Destroy()

	ok, err := m.TryLock()
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, m.Unlock())

	m.Destroy()
	assert.ErrorIs(t, m.Lock(), sdl.ErrInvalidHandle)
}

func TestMutexHeldAcrossReschedule(t *testing.T) {
	sdltest.RequireBuilt(t)

	m, err := New()
	require.NoError(t, err)
	defer m.Destroy()

	stop := make(chan struct{})
	var busy sync.WaitGroup
	for i := 0; i < runtime.GOMAXPROCS(0)*2; i++ {
		busy.Add(1)
		go func() {
			defer busy.Done()
			for {
				select {
				case <-stop:
					return
				default:
					runtime.Gosched()
				}
			}
		}()
	}

	require.NoError(t, m.Lock())
	for i := 0; i < 1000; i++ {
		runtime.Gosched()
	}
	require.NoError(t, m.Unlock())
	close(stop)
	busy.Wait()

	done := make(chan bool)
	go func() {
		ok, _ := m.TryLock()
		if ok {
			_ = m.Unlock()
		}
		done <- ok
	}()
	assert.True(t, <-done)
}

func TestRWLockExcludesWriters(t *testing.T) {
	sdltest.RequireBuilt(t)

	l, err := NewRWLock()
	require.NoError(t, err)
	defer l.Destroy()

	require.NoError(t, l.LockForReading())
	done := make(chan bool)
	go func() {
		ok, _ := l.TryLockForWriting()
		done <- ok
	}()
	assert.False(t, <-done)
	require.NoError(t, l.Unlock())
}

func TestSemaphore(t *testing.T) {
	sdltest.RequireBuilt(t)

	s, err := NewSemaphore(1)
	require.NoError(t, err)
	defer s.Destroy()

	ok, err := s.TryWait()
	require.NoError(t, err)
	assert.True(t, ok)

	ok, _ = s.WaitTimeout(10 * time.Millisecond)
	assert.False(t, ok)

	require.NoError(t, s.Signal())
	v, _ := s.Value()
	assert.Equal(t, uint32(1), v)
}

func TestConditionSignal(t *testing.T) {
	sdltest.RequireBuilt(t)

	m, err := New()
	require.NoError(t, err)
	defer m.Destroy()
	c, err := NewCondition()
	require.NoError(t, err)
	defer c.Destroy()

	require.NoError(t, m.Lock())
	ok, err := c.WaitTimeout(m, 10*time.Millisecond)
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, m.Unlock())
}
