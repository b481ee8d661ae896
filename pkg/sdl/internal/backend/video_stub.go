//go:build !cgo || windows

package backend

func GetCurrentVideoDriver() string                         { return "" }
func GetVideoDrivers() []string                             { return nil }
func CreateWindow(string, int, int, uint64) (Window, error) { return nil, errUnavailable }
func DestroyWindow(Window)                                  {}
func GetWindowID(Window) (uint32, error)                    { return 0, errUnavailable }
func GetWindowFromID(uint32) (Window, error)                { return nil, errUnavailable }
func GetWindowFlags(Window) uint64                          { return 0 }
func GetWindowTitle(Window) string                          { return "" }
func SetWindowTitle(Window, string) error                   { return errUnavailable }
func GetWindowSize(Window) (int, int, error)                { return 0, 0, errUnavailable }
func SetWindowSize(Window, int, int) error                  { return errUnavailable }
func ShowWindow(Window) error                               { return errUnavailable }
func HideWindow(Window) error                               { return errUnavailable }
func SetClipboardText(string) error                         { return errUnavailable }
func GetClipboardText() (string, error)                     { return "", errUnavailable }
func HasClipboardText() bool                                { return false }
func ClearClipboardData() error                             { return errUnavailable }
func SetPrimarySelectionText(string) error                  { return errUnavailable }
func GetPrimarySelectionText() string                       { return "" }
func HasPrimarySelectionText() bool                         { return false }
