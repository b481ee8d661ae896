package asyncio

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/sdltest"
)

func TestValidation(t *testing.T) {
	_, err := Open("", "r")
	assert.ErrorIs(t, err, sdl.ErrInvalidArgument)
	_, err = Open("x", "rb")
	assert.ErrorIs(t, err, sdl.ErrInvalidArgument)

	var f *File
	_, err = f.Read(0, 1, nil)
	assert.ErrorIs(t, err, sdl.ErrInvalidHandle)
	_, err = LoadFile("x", nil)
	assert.ErrorIs(t, err, sdl.ErrInvalidHandle)

	var q *Queue
	_, ok := q.Result()
	assert.False(t, ok)
	_, err = q.Wait(context.Background())
	assert.ErrorIs(t, err, sdl.ErrInvalidHandle)
	q.Destroy()
}

func TestOutcomeErr(t *testing.T) {
	assert.NoError(t, Outcome{Result: ResultComplete}.Err())
	err := Outcome{Request: 3, Type: TaskRead, Result: ResultFailure}.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read request 3 failure")
}

func collect(t *testing.T, q *Queue, want Request) Outcome {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for {
		o, err := q.Wait(ctx)
		require.NoError(t, err)
		if o.Request == want {
			return o
		}
	}
}

func TestWriteReadClose(t *testing.T) {
	sdltest.RequireBuilt(t)

	q, err := NewQueue()
	require.NoError(t, err)
	defer q.Destroy()

	path := filepath.Join(t.TempDir(), "async.bin")
	f, err := Open(path, "w+")
	require.NoError(t, err)

	req, err := f.Write(0, []byte("asynchronous"), q)
	require.NoError(t, err)
	o := collect(t, q, req)
	require.NoError(t, o.Err())
	assert.Equal(t, TaskWrite, o.Type)
	assert.Equal(t, uint64(12), o.Transferred)

	req, err = f.Read(1, 4, q)
	require.NoError(t, err)
	o = collect(t, q, req)
	require.NoError(t, o.Err())
	assert.Equal(t, "sync", string(o.Data))

	req, err = f.Close(true, q)
	require.NoError(t, err)
	o = collect(t, q, req)
	require.NoError(t, o.Err())
	assert.Equal(t, TaskClose, o.Type)

	_, err = f.Size()
	assert.ErrorIs(t, err, sdl.ErrInvalidHandle)
}

func TestLoadFile(t *testing.T) {
	sdltest.RequireBuilt(t)

	path := filepath.Join(t.TempDir(), "load.txt")
	require.NoError(t, os.WriteFile(path, []byte("whole file"), 0o600))

	q, err := NewQueue()
	require.NoError(t, err)
	defer q.Destroy()

	req, err := LoadFile(path, q)
	require.NoError(t, err)
	o := collect(t, q, req)
	require.NoError(t, o.Err())
	assert.Equal(t, "whole file", string(o.Data))
}

func TestWaitCancelled(t *testing.T) {
	sdltest.RequireBuilt(t)

	q, err := NewQueue()
	require.NoError(t, err)
	defer q.Destroy()

	_, ok := q.WaitResult(10 * time.Millisecond)
	assert.False(t, ok)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = q.Wait(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
