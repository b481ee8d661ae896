// Package sdl is the entry point of the Go bindings for the SDL3 native
// library. It owns library initialisation, the shared error model, hints,
// properties and basic system information; each native subsystem lives in
// its own subpackage (events, joystick, haptic, storage, ...).
//
// The bindings compile without cgo. In that configuration, and on Windows,
// every call that needs the native library returns an error wrapping
// ErrNotBuilt so callers can detect the situation with errors.Is.
//
//	lib, err := sdl.Open(sdl.Config{
//	    Flags: sdl.InitEvents | sdl.InitJoystick,
//	    Hints: map[string]string{"SDL_JOYSTICK_ALLOW_BACKGROUND_EVENTS": "1"},
//	})
//	if err != nil {
//	    return err
//	}
//	defer lib.Close()
package sdl
