//go:build !cgo || windows

package backend

func GetTicks() uint64                               { return 0 }
func GetTicksNS() uint64                             { return 0 }
func GetPerformanceCounter() uint64                  { return 0 }
func GetPerformanceFrequency() uint64                { return 0 }
func Delay(uint32)                                   {}
func DelayNS(uint64)                                 {}
func DelayPrecise(uint64)                            {}
func AddTimer(uint32, TimerFunc) (uint32, error)     { return 0, errUnavailable }
func AddTimerNS(uint64, TimerNSFunc) (uint32, error) { return 0, errUnavailable }
func RemoveTimer(uint32) error                       { return errUnavailable }
