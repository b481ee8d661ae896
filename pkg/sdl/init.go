package sdl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/backend"
)

// InitFlags selects native subsystems.
type InitFlags uint32

const (
	InitAudio    InitFlags = 0x00000010
	InitVideo    InitFlags = 0x00000020
	InitJoystick InitFlags = 0x00000200
	InitHaptic   InitFlags = 0x00001000
	InitGamepad  InitFlags = 0x00002000
	InitEvents   InitFlags = 0x00004000
	InitSensor   InitFlags = 0x00008000
	InitCamera   InitFlags = 0x00010000
)

// Has reports whether every bit of other is set in f.
func (f InitFlags) Has(other InitFlags) bool {
	return f&other == other
}

func (f InitFlags) String() string {
	if f == 0 {
		return "none"
	}
	var parts []string
	rest := f
	for _, n := range initFlagNames {
		if f&n.flag != 0 {
			parts = append(parts, n.name)
			rest &^= n.flag
		}
	}
	if rest != 0 {
		parts = append(parts, "0x"+strconv.FormatUint(uint64(rest), 16))
	}
	return strings.Join(parts, "|")
}

var initFlagNames = []struct {
	flag InitFlags
	name string
}{
	{InitAudio, "audio"},
	{InitVideo, "video"},
	{InitJoystick, "joystick"},
	{InitHaptic, "haptic"},
	{InitGamepad, "gamepad"},
	{InitEvents, "events"},
	{InitSensor, "sensor"},
	{InitCamera, "camera"},
}

// ParseInitFlags is the inverse of InitFlags.String for the named flags.
func ParseInitFlags(names []string) (InitFlags, error) {
	var f InitFlags
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		found := false
		for _, n := range initFlagNames {
			if n.name == name {
				f |= n.flag
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("%w: unknown subsystem %q", ErrInvalidArgument, name)
		}
	}
	return f, nil
}

// Init initialises the requested subsystems. It may be called repeatedly;
// subsystems are reference counted natively.
func Init(flags InitFlags) error {
	return RemapError(backend.Init(uint32(flags)))
}

func InitSubSystem(flags InitFlags) error {
	return RemapError(backend.InitSubSystem(uint32(flags)))
}

func QuitSubSystem(flags InitFlags) {
	backend.QuitSubSystem(uint32(flags))
}

// WasInit returns the subset of flags that is currently initialised; zero
// flags asks for every initialised subsystem.
func WasInit(flags InitFlags) InitFlags {
	return InitFlags(backend.WasInit(uint32(flags)))
}

// Quit shuts every subsystem down.
func Quit() {
	backend.Quit()
}
