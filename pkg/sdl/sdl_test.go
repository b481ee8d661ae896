package sdl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/sdltest"
)

func TestInitFlagsString(t *testing.T) {
	assert.Equal(t, "none", InitFlags(0).String())
	assert.Equal(t, "video|events", (InitVideo | InitEvents).String())
	assert.Equal(t, "audio|0x40000000", (InitAudio | 0x40000000).String())
}

func TestInitFlagsHas(t *testing.T) {
	f := InitJoystick | InitGamepad
	assert.True(t, f.Has(InitJoystick))
	assert.True(t, f.Has(InitJoystick|InitGamepad))
	assert.False(t, f.Has(InitJoystick|InitHaptic))
}

func TestParseInitFlags(t *testing.T) {
	f, err := ParseInitFlags([]string{"Events", " joystick ", ""})
	require.NoError(t, err)
	assert.Equal(t, InitEvents|InitJoystick, f)

	_, err = ParseInitFlags([]string{"gpu"})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestVersionAtLeast(t *testing.T) {
	v := Version{Major: 3, Minor: 2, Patch: 10}
	assert.Equal(t, "3.2.10", v.String())
	assert.True(t, v.AtLeast(3, 2, 10))
	assert.True(t, v.AtLeast(3, 1, 99))
	assert.True(t, v.AtLeast(2, 30, 0))
	assert.False(t, v.AtLeast(3, 2, 11))
	assert.False(t, v.AtLeast(3, 4, 0))
}

func TestWrapperVersionDefaults(t *testing.T) {
	assert.Equal(t, BuildVersion, WrapperVersion())
}

func TestRemapError(t *testing.T) {
	assert.NoError(t, RemapError(nil))

	native := &Error{Op: "SDL_OpenJoystick", Msg: "no such device"}
	err := RemapError(native)
	var got *Error
	require.ErrorAs(t, err, &got)
	assert.Equal(t, "sdl: SDL_OpenJoystick: no such device", got.Error())

	assert.ErrorIs(t, RemapError(ErrCGONotEnabled), ErrNotBuilt)
}

func TestPropertiesRejectInvalid(t *testing.T) {
	var zero Properties
	assert.ErrorIs(t, zero.SetString("name", "v"), ErrInvalidHandle)
	assert.Equal(t, "fallback", zero.String("name", "fallback"))
	assert.False(t, zero.Has("name"))
	assert.Equal(t, PropertyInvalid, zero.Type("name"))
	zero.Destroy()

	p := Properties(42)
	assert.ErrorIs(t, p.SetNumber("", 1), ErrInvalidArgument)
	assert.ErrorIs(t, p.Clear(""), ErrInvalidArgument)
}

func TestHintsRejectEmptyName(t *testing.T) {
	assert.ErrorIs(t, SetHint("", "1"), ErrInvalidArgument)
	assert.ErrorIs(t, SetHintWithPriority("", "1", HintOverride), ErrInvalidArgument)
	assert.ErrorIs(t, ResetHint(""), ErrInvalidArgument)
}

func TestConfigSortedHints(t *testing.T) {
	cfg := Config{Hints: map[string]string{"b": "2", "a": "1", "c": "3"}}
	assert.Equal(t, []string{"a", "b", "c"}, cfg.sortedHints())
	assert.False(t, cfg.hasMetadata())
	cfg.AppIdentifier = "dev.sdl3go.test"
	assert.True(t, cfg.hasMetadata())
}

func TestLibraryCloseIsIdempotent(t *testing.T) {
	var nilLib *Library
	assert.NoError(t, nilLib.Close())

	lib, err := Open(Config{Flags: InitEvents})
	if errors.Is(err, ErrNotBuilt) {
		assert.Nil(t, lib)
		return
	}
	if err != nil {
		t.Skipf("events subsystem unavailable: %v", err)
	}
	assert.Equal(t, InitEvents, lib.Flags())
	require.NoError(t, lib.Close())
	assert.ErrorIs(t, lib.Close(), ErrLibraryClosed)
}

func TestPropertiesRoundTrip(t *testing.T) {
	sdltest.RequireBuilt(t)

	p, err := NewProperties()
	require.NoError(t, err)
	defer p.Destroy()

	require.NoError(t, p.SetString("name", "pad"))
	require.NoError(t, p.SetNumber("count", 7))
	require.NoError(t, p.SetFloat("gain", 0.5))
	require.NoError(t, p.SetBoolean("enabled", true))

	assert.Equal(t, "pad", p.String("name", ""))
	assert.Equal(t, int64(7), p.Number("count", 0))
	assert.InDelta(t, 0.5, p.Float("gain", 0), 1e-6)
	assert.True(t, p.Boolean("enabled", false))
	assert.Equal(t, PropertyNumber, p.Type("count"))

	require.NoError(t, p.Clear("count"))
	assert.False(t, p.Has("count"))
	assert.Equal(t, int64(-1), p.Number("count", -1))
}

func TestHintRoundTrip(t *testing.T) {
	sdltest.RequireBuilt(t)

	const name = "SDL3GO_TEST_HINT"
	require.NoError(t, SetHintWithPriority(name, "on", HintOverride))
	v, ok := GetHint(name)
	assert.True(t, ok)
	assert.Equal(t, "on", v)
	require.NoError(t, ResetHint(name))
}
