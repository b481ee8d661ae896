//go:build !cgo || windows

package backend

func HasGamepad() bool                                    { return false }
func GetGamepads() ([]uint32, error)                      { return nil, errUnavailable }
func IsGamepad(uint32) bool                               { return false }
func GetGamepadNameForID(uint32) (string, error)          { return "", errUnavailable }
func GetGamepadTypeForID(uint32) int                      { return 0 }
func GetGamepadMappingForID(uint32) (string, error)       { return "", errUnavailable }
func OpenGamepad(uint32) (Gamepad, error)                 { return nil, errUnavailable }
func CloseGamepad(Gamepad)                                {}
func GetGamepadName(Gamepad) (string, error)              { return "", errUnavailable }
func GetGamepadID(Gamepad) (uint32, error)                { return 0, errUnavailable }
func GetGamepadType(Gamepad) int                          { return 0 }
func GamepadConnected(Gamepad) bool                       { return false }
func GetGamepadJoystick(Gamepad) (Joystick, error)        { return nil, errUnavailable }
func GetGamepadAxis(Gamepad, int) int16                   { return 0 }
func GetGamepadButton(Gamepad, int) bool                  { return false }
func GamepadHasAxis(Gamepad, int) bool                    { return false }
func GamepadHasButton(Gamepad, int) bool                  { return false }
func RumbleGamepad(Gamepad, uint16, uint16, uint32) error { return errUnavailable }
func GetGamepadMapping(Gamepad) (string, error)           { return "", errUnavailable }
func AddGamepadMapping(string) (int, error)               { return 0, errUnavailable }
func GetGamepadStringForAxis(int) string                  { return "" }
func GetGamepadStringForButton(int) string                { return "" }
