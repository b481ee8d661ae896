//go:build cgo && !windows

package backend

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOneShotTimersReleaseEverything(t *testing.T) {
	const n = 200
	before := registered()

	fired := make(chan struct{}, n)
	for i := 0; i < n; i++ {
		_, err := AddTimer(1, func(uint32, uint32) uint32 {
			fired <- struct{}{}
			return 0
		})
		if err != nil {
			t.Skipf("timers unavailable: %v", err)
		}
	}
	for i := 0; i < n; i++ {
		select {
		case <-fired:
		case <-time.After(5 * time.Second):
			require.FailNow(t, "timer did not fire", "%d of %d fired", i, n)
		}
	}

	assert.Eventually(t, func() bool {
		return registered() == before && liveTimers() == 0
	}, time.Second, 5*time.Millisecond)
}

func TestRemoveUnknownTimer(t *testing.T) {
	before := registered()
	assert.Error(t, RemoveTimer(0xfffffff0))
	assert.Equal(t, before, registered())
}
