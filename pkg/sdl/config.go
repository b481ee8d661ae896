package sdl

import (
	"sort"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/logging"
)

// Config expresses what Open applies before initialising the native library.
type Config struct {
	// Flags selects the subsystems to initialise.
	Flags InitFlags

	// AppName, AppVersion and AppIdentifier are forwarded to
	// SDL_SetAppMetadata when any of them is set.
	AppName       string
	AppVersion    string
	AppIdentifier string

	// Hints are applied with normal priority before initialisation.
	Hints map[string]string

	// Logger receives native log output when set. Leaving it nil keeps the
	// native default output.
	Logger logging.Logger

	// LogPriority, when non-zero, is applied to every native log category.
	LogPriority logging.Priority
}

func (c Config) hasMetadata() bool {
	return c.AppName != "" || c.AppVersion != "" || c.AppIdentifier != ""
}

// sortedHints returns the hint names in a stable order so hint application
// is reproducible.
func (c Config) sortedHints() []string {
	names := make([]string, 0, len(c.Hints))
	for name := range c.Hints {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
