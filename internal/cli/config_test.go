package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := LoadConfig(newViper(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig.Subsystems, cfg.Subsystems)
	assert.Equal(t, "table", cfg.Format)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfigTOML(t *testing.T) {
	path := writeFile(t, "sdl3-go.toml", `
subsystems = ["audio", "joystick"]
format = "json"

[hints]
SDL_JOYSTICK_ALLOW_BACKGROUND_EVENTS = "1"

[log]
level = "debug"
native = true
`)
	cfg, err := LoadConfig(newViper(path))
	require.NoError(t, err)
	assert.Equal(t, []string{"audio", "joystick"}, cfg.Subsystems)
	assert.Equal(t, "json", cfg.Format)
	assert.True(t, cfg.Log.Native)

	lib, err := cfg.Library(sdl.InitEvents)
	require.NoError(t, err)
	assert.Equal(t, sdl.InitAudio|sdl.InitJoystick|sdl.InitEvents, lib.Flags)
	assert.Equal(t, map[string]string{"SDL_JOYSTICK_ALLOW_BACKGROUND_EVENTS": "1"}, lib.Hints)
	assert.Equal(t, sdl.WrapperVersion(), lib.AppVersion)
}

func TestLoadConfigYAMLAndEnv(t *testing.T) {
	path := writeFile(t, "sdl3-go.yaml", "format: yaml\nhints:\n  video_driver: dummy\n")
	t.Setenv("SDL3GO_LOG_LEVEL", "warn")

	cfg, err := LoadConfig(newViper(path))
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, "warn", cfg.Log.Level)

	lib, err := cfg.Library(0)
	require.NoError(t, err)
	assert.Equal(t, "dummy", lib.Hints["SDL_VIDEO_DRIVER"])
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(newViper(writeFile(t, "bad.toml", "subsystems = [")))
	assert.Error(t, err)

	_, err = Config{Subsystems: []string{"teleport"}}.Library(0)
	assert.ErrorIs(t, err, sdl.ErrInvalidArgument)
}

func TestHintName(t *testing.T) {
	assert.Equal(t, "SDL_AUDIO_DRIVER", hintName("audio_driver"))
	assert.Equal(t, "SDL_AUDIO_DRIVER", hintName("sdl_audio_driver"))
}
