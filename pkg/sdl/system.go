package sdl

import "github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/backend"

// PowerState mirrors SDL_PowerState.
type PowerState int

const (
	PowerStateError PowerState = iota - 1
	PowerStateUnknown
	PowerStateOnBattery
	PowerStateNoBattery
	PowerStateCharging
	PowerStateCharged
)

func (s PowerState) String() string {
	switch s {
	case PowerStateUnknown:
		return "unknown"
	case PowerStateOnBattery:
		return "on-battery"
	case PowerStateNoBattery:
		return "no-battery"
	case PowerStateCharging:
		return "charging"
	case PowerStateCharged:
		return "charged"
	default:
		return "error"
	}
}

// PowerInfo is the battery snapshot returned by GetPowerInfo. Seconds and
// Percent are -1 when unknown.
type PowerInfo struct {
	State   PowerState
	Seconds int
	Percent int
}

func GetPowerInfo() (PowerInfo, error) {
	state, secs, pct, err := backend.GetPowerInfo()
	info := PowerInfo{State: PowerState(state), Seconds: secs, Percent: pct}
	return info, RemapError(err)
}

// GetPlatform returns the native platform name, such as "Linux".
func GetPlatform() string {
	return backend.GetPlatform()
}

func NumLogicalCPUCores() int {
	return backend.NumLogicalCPUCores()
}

// SystemRAM returns the amount of RAM in MiB.
func SystemRAM() int {
	return backend.SystemRAM()
}

func SetAppMetadata(name, version, identifier string) error {
	return RemapError(backend.SetAppMetadata(name, version, identifier))
}
