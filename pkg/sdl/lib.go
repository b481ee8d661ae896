package sdl

import (
	"context"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/backend"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/logging"
)

// Library is an initialised native library. Close releases the subsystems it
// initialised.
type Library struct {
	cfg    Config
	closed bool
}

// Open applies cfg and initialises the requested subsystems.
func Open(cfg Config) (*Library, error) {
	if cfg.hasMetadata() {
		if err := backend.SetAppMetadata(cfg.AppName, cfg.AppVersion, cfg.AppIdentifier); err != nil {
			return nil, RemapError(err)
		}
	}
	for _, name := range cfg.sortedHints() {
		if err := backend.SetHint(name, cfg.Hints[name]); err != nil {
			return nil, RemapError(err)
		}
	}
	if cfg.Logger != nil {
		if err := logging.RouteNative(cfg.Logger); err != nil {
			return nil, err
		}
	}
	if cfg.LogPriority != logging.PriorityInvalid {
		logging.SetPriorities(cfg.LogPriority)
	}

	if err := backend.Init(uint32(cfg.Flags)); err != nil {
		if cfg.Logger != nil {
			logging.RestoreNative()
		}
		return nil, RemapError(err)
	}

	logging.Default().Debug(context.Background(), "sdl initialised", "subsystems", cfg.Flags.String())
	return &Library{cfg: cfg}, nil
}

// Flags returns the subsystems the library was opened with.
func (l *Library) Flags() InitFlags {
	if l == nil {
		return 0
	}
	return l.cfg.Flags
}

// Close shuts down the subsystems opened by Open. The method is idempotent,
// returning ErrLibraryClosed when called twice.
func (l *Library) Close() error {
	if l == nil {
		return nil
	}

	if l.closed {
		return ErrLibraryClosed
	}

	backend.QuitSubSystem(uint32(l.cfg.Flags))
	if backend.WasInit(0) == 0 {
		backend.Quit()
	}
	if l.cfg.Logger != nil {
		logging.RestoreNative()
	}

	l.closed = true
	return nil
}
