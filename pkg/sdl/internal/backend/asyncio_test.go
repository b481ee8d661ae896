//go:build cgo && !windows

package backend

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDestroyQueueCollectsInFlightRequests(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.bin")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte{7}, 64<<10), 0o600))

	before := registered()
	q, err := CreateAsyncIOQueue()
	if err != nil {
		t.Skipf("async io unavailable: %v", err)
	}
	f, err := AsyncIOFromFile(path, "r")
	require.NoError(t, err)

	_, err = ReadAsyncIO(f, 0, 64<<10, q)
	require.NoError(t, err)
	_, err = CloseAsyncIO(f, false, q)
	require.NoError(t, err)
	assert.Equal(t, 2, inFlight(q))
	assert.Equal(t, before+2, registered())

	DestroyAsyncIOQueue(q)
	assert.Zero(t, inFlight(q))
	assert.Equal(t, before, registered())
}

func TestSubmitFailureUndoesRegistration(t *testing.T) {
	q := AsyncIOQueue(nil)
	before := registered()
	h, ok := submit(&asyncRequest{queue: q}, func(handle) bool { return false })
	assert.False(t, ok)
	assert.Zero(t, h)
	assert.Zero(t, inFlight(q))
	assert.Equal(t, before, registered())
}
