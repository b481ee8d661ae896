//go:build !cgo || windows

package backend

func GetJoysticks() ([]uint32, error)                               { return nil, errUnavailable }
func HasJoystick() bool                                             { return false }
func GetJoystickNameForID(uint32) (string, error)                   { return "", errUnavailable }
func GetJoystickPathForID(uint32) (string, error)                   { return "", errUnavailable }
func GetJoystickPlayerIndexForID(uint32) int                        { return -1 }
func GetJoystickGUIDForID(uint32) GUID                              { return GUID{} }
func GetJoystickVendorForID(uint32) uint16                          { return 0 }
func GetJoystickProductForID(uint32) uint16                         { return 0 }
func GetJoystickProductVersionForID(uint32) uint16                  { return 0 }
func GetJoystickTypeForID(uint32) int                               { return 0 }
func OpenJoystick(uint32) (Joystick, error)                         { return nil, errUnavailable }
func GetJoystickFromID(uint32) (Joystick, error)                    { return nil, errUnavailable }
func CloseJoystick(Joystick)                                        {}
func GetJoystickName(Joystick) (string, error)                      { return "", errUnavailable }
func GetJoystickPath(Joystick) (string, error)                      { return "", errUnavailable }
func GetJoystickID(Joystick) (uint32, error)                        { return 0, errUnavailable }
func GetJoystickType(Joystick) int                                  { return 0 }
func GetJoystickGUID(Joystick) GUID                                 { return GUID{} }
func GetJoystickVendor(Joystick) uint16                             { return 0 }
func GetJoystickProduct(Joystick) uint16                            { return 0 }
func GetJoystickSerial(Joystick) string                             { return "" }
func GetJoystickPlayerIndex(Joystick) int                           { return -1 }
func SetJoystickPlayerIndex(Joystick, int) error                    { return errUnavailable }
func GetNumJoystickAxes(Joystick) (int, error)                      { return 0, errUnavailable }
func GetNumJoystickBalls(Joystick) (int, error)                     { return 0, errUnavailable }
func GetNumJoystickHats(Joystick) (int, error)                      { return 0, errUnavailable }
func GetNumJoystickButtons(Joystick) (int, error)                   { return 0, errUnavailable }
func GetJoystickAxis(Joystick, int) int16                           { return 0 }
func GetJoystickBall(Joystick, int) (int, int, error)               { return 0, 0, errUnavailable }
func GetJoystickHat(Joystick, int) uint8                            { return 0 }
func GetJoystickButton(Joystick, int) bool                          { return false }
func RumbleJoystick(Joystick, uint16, uint16, uint32) error         { return errUnavailable }
func RumbleJoystickTriggers(Joystick, uint16, uint16, uint32) error { return errUnavailable }
func SetJoystickLED(Joystick, uint8, uint8, uint8) error            { return errUnavailable }
func GetJoystickPowerInfo(Joystick) (int, int)                      { return -1, -1 }
func GetJoystickConnectionState(Joystick) int                       { return -1 }
func JoystickConnected(Joystick) bool                               { return false }
func UpdateJoysticks()                                              {}
func SetJoystickEventsEnabled(bool)                                 {}
func JoystickEventsEnabled() bool                                   { return false }
func LockJoysticks()                                                {}
func UnlockJoysticks()                                              {}
func AttachVirtualJoystick(VirtualJoystickDesc) (uint32, error)     { return 0, errUnavailable }
func DetachVirtualJoystick(uint32) error                            { return errUnavailable }
func IsJoystickVirtual(uint32) bool                                 { return false }
func SetJoystickVirtualAxis(Joystick, int, int16) error             { return errUnavailable }
func SetJoystickVirtualButton(Joystick, int, bool) error            { return errUnavailable }
func SetJoystickVirtualHat(Joystick, int, uint8) error              { return errUnavailable }
