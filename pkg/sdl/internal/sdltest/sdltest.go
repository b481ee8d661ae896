// Package sdltest initialises the native library for tests with headless
// drivers and skips the calling test when that is not possible.
package sdltest

import (
	"errors"
	"testing"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/backend"
)

// Headless hints keep tests away from real displays and sound cards.
var headless = map[string]string{
	"SDL_VIDEO_DRIVER":  "dummy",
	"SDL_AUDIO_DRIVER":  "dummy",
	"SDL_CAMERA_DRIVER": "dummy",
}

// Init initialises the subsystems in flags (raw SDL_INIT_* bits) and
// registers a cleanup that shuts them down again. The test is skipped when
// the bindings are not built or the subsystem cannot start on this host.
func Init(t testing.TB, flags uint32) {
	t.Helper()
	for name, value := range headless {
		if _, set := backend.GetHint(name); !set {
			if err := backend.SetHint(name, value); err != nil {
				Skip(t, err)
			}
		}
	}
	if err := backend.InitSubSystem(flags); err != nil {
		Skip(t, err)
	}
	t.Cleanup(func() { backend.QuitSubSystem(flags) })
}

// Skip skips t, telling missing bindings apart from a subsystem that failed
// to start.
func Skip(t testing.TB, err error) {
	t.Helper()
	if errors.Is(err, backend.ErrNotBuilt) {
		t.Skipf("native bindings unavailable: %v", err)
	}
	t.Skipf("native subsystem unavailable: %v", err)
}

// RequireBuilt skips t when the bindings were compiled without cgo.
func RequireBuilt(t testing.TB) {
	t.Helper()
	id, err := backend.CreateProperties()
	if errors.Is(err, backend.ErrNotBuilt) {
		t.Skipf("native bindings unavailable: %v", err)
	}
	if err == nil {
		backend.DestroyProperties(id)
	}
}
