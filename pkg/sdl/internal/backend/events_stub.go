//go:build !cgo || windows

package backend

func PumpEvents()                              {}
func PollEvent() (Event, bool)                 { return Event{}, false }
func WaitEvent() (Event, error)                { return Event{}, errUnavailable }
func WaitEventTimeout(int32) (Event, bool)     { return Event{}, false }
func PushEvent(Event) error                    { return errUnavailable }
func HasEvent(uint32) bool                     { return false }
func HasEvents(uint32, uint32) bool            { return false }
func FlushEvent(uint32)                        {}
func FlushEvents(uint32, uint32)               {}
func SetEventEnabled(uint32, bool)             {}
func EventEnabled(uint32) bool                 { return false }
func RegisterEvents(int) (uint32, error)       { return 0, errUnavailable }
func AddEventWatch(EventFunc) (uintptr, error) { return 0, errUnavailable }
func RemoveEventWatch(uintptr)                 {}
func SetEventFilter(EventFunc)                 {}
func FilterEvents(EventFunc)                   {}
func KeyName(uint32) string                    { return "" }
func ScancodeName(uint32) string               { return "" }

func PeepEvents([]Event, int, int, uint32, uint32) ([]Event, error) {
	return nil, errUnavailable
}
