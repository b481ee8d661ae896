package clipboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/sdltest"
)

func TestRoundTrip(t *testing.T) {
	sdltest.Init(t, uint32(sdl.InitVideo))

	require.NoError(t, SetText("héllo"))
	assert.True(t, HasText())
	text, err := Text()
	require.NoError(t, err)
	assert.Equal(t, "héllo", text)

	require.NoError(t, Clear())
	assert.False(t, HasText())
}
