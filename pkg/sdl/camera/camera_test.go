package camera

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/sdltest"
)

func TestEnums(t *testing.T) {
	assert.Equal(t, "front", PositionFrontFacing.String())
	assert.Equal(t, "unknown", Position(9).String())
	assert.Equal(t, "denied", PermissionDenied.String())
	assert.Equal(t, "pending", PermissionPending.String())
	assert.InDelta(t, 29.97, Spec{FramerateNumerator: 30000, FramerateDenominator: 1001}.FPS(), 0.01)
	assert.Zero(t, Spec{FramerateNumerator: 30}.FPS())
}

func TestInvalidHandles(t *testing.T) {
	_, err := Name(0)
	assert.ErrorIs(t, err, sdl.ErrInvalidHandle)
	_, err = Open(0, nil)
	assert.ErrorIs(t, err, sdl.ErrInvalidHandle)
	assert.Equal(t, PositionUnknown, PositionOf(0))

	var c *Camera
	_, _, err = c.AcquireFrame()
	assert.ErrorIs(t, err, sdl.ErrInvalidHandle)
	assert.Equal(t, PermissionDenied, c.PermissionState())
	c.Close()
}

func TestDummyDriver(t *testing.T) {
	sdltest.Init(t, uint32(sdl.InitCamera))

	ids, err := IDs()
	require.NoError(t, err)
	if len(ids) == 0 {
		t.Skip("no cameras on this driver")
	}
	c, err := Open(ids[0], nil)
	require.NoError(t, err)
	defer c.Close()

	id, err := c.ID()
	require.NoError(t, err)
	assert.Equal(t, ids[0], id)

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if f, ok, err := c.AcquireFrame(); err == nil && ok {
			assert.NotEmpty(t, f.Pixels)
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
}
