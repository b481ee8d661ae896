package sdl

import (
	"fmt"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/backend"
)

// HintPriority mirrors SDL_HintPriority.
type HintPriority int

const (
	HintDefault HintPriority = iota
	HintNormal
	HintOverride
)

func SetHint(name, value string) error {
	if name == "" {
		return fmt.Errorf("%w: empty hint name", ErrInvalidArgument)
	}
	return RemapError(backend.SetHint(name, value))
}

func SetHintWithPriority(name, value string, priority HintPriority) error {
	if name == "" {
		return fmt.Errorf("%w: empty hint name", ErrInvalidArgument)
	}
	return RemapError(backend.SetHintWithPriority(name, value, int(priority)))
}

// GetHint returns the hint value and whether it is set at all.
func GetHint(name string) (string, bool) {
	return backend.GetHint(name)
}

// ResetHint restores the hint to its environment value or removes it.
func ResetHint(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty hint name", ErrInvalidArgument)
	}
	return RemapError(backend.ResetHint(name))
}

func ResetHints() {
	backend.ResetHints()
}
