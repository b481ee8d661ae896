package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/sdltest"
)

func TestNilWindow(t *testing.T) {
	var w *Window
	_, err := w.ID()
	assert.ErrorIs(t, err, sdl.ErrInvalidHandle)
	assert.ErrorIs(t, w.SetTitle("x"), sdl.ErrInvalidHandle)
	assert.ErrorIs(t, w.Show(), sdl.ErrInvalidHandle)
	assert.Empty(t, w.Title())
	assert.Zero(t, w.Flags())
	w.Destroy()

	_, err = FromID(0)
	assert.ErrorIs(t, err, sdl.ErrInvalidHandle)
	_, err = CreateWindow("x", 0, 10, 0)
	assert.ErrorIs(t, err, sdl.ErrInvalidArgument)
}

func TestWindowLifecycle(t *testing.T) {
	sdltest.Init(t, uint32(sdl.InitVideo))
	assert.Equal(t, "dummy", CurrentDriver())

	w, err := CreateWindow("first", 320, 200, WindowHidden)
	require.NoError(t, err)
	defer w.Destroy()

	assert.Equal(t, "first", w.Title())
	require.NoError(t, w.SetTitle("second"))
	assert.Equal(t, "second", w.Title())

	id, err := w.ID()
	require.NoError(t, err)
	found, err := FromID(id)
	require.NoError(t, err)
	assert.Equal(t, w.Handle(), found.Handle())

	width, height, err := w.Size()
	require.NoError(t, err)
	assert.Equal(t, 320, width)
	assert.Equal(t, 200, height)
	assert.ErrorIs(t, w.SetSize(-1, 5), sdl.ErrInvalidArgument)

	w.Destroy()
	_, err = w.ID()
	assert.ErrorIs(t, err, sdl.ErrInvalidHandle)
}
