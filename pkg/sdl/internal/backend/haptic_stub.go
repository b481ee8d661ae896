//go:build !cgo || windows

package backend

func GetHaptics() ([]uint32, error)                         { return nil, errUnavailable }
func GetHapticNameForID(uint32) (string, error)             { return "", errUnavailable }
func OpenHaptic(uint32) (Haptic, error)                     { return nil, errUnavailable }
func GetHapticFromID(uint32) (Haptic, error)                { return nil, errUnavailable }
func IsMouseHaptic() bool                                   { return false }
func OpenHapticFromMouse() (Haptic, error)                  { return nil, errUnavailable }
func IsJoystickHaptic(Joystick) bool                        { return false }
func OpenHapticFromJoystick(Joystick) (Haptic, error)       { return nil, errUnavailable }
func CloseHaptic(Haptic)                                    {}
func GetHapticID(Haptic) (uint32, error)                    { return 0, errUnavailable }
func GetHapticName(Haptic) (string, error)                  { return "", errUnavailable }
func GetMaxHapticEffects(Haptic) (int, error)               { return 0, errUnavailable }
func GetMaxHapticEffectsPlaying(Haptic) (int, error)        { return 0, errUnavailable }
func GetHapticFeatures(Haptic) (uint32, error)              { return 0, errUnavailable }
func GetNumHapticAxes(Haptic) (int, error)                  { return 0, errUnavailable }
func HapticEffectSupported(Haptic, *HapticEffect) bool      { return false }
func CreateHapticEffect(Haptic, *HapticEffect) (int, error) { return 0, errUnavailable }
func UpdateHapticEffect(Haptic, int, *HapticEffect) error   { return errUnavailable }
func RunHapticEffect(Haptic, int, uint32) error             { return errUnavailable }
func StopHapticEffect(Haptic, int) error                    { return errUnavailable }
func DestroyHapticEffect(Haptic, int)                       {}
func GetHapticEffectStatus(Haptic, int) bool                { return false }
func SetHapticGain(Haptic, int) error                       { return errUnavailable }
func SetHapticAutocenter(Haptic, int) error                 { return errUnavailable }
func PauseHaptic(Haptic) error                              { return errUnavailable }
func ResumeHaptic(Haptic) error                             { return errUnavailable }
func StopHapticEffects(Haptic) error                        { return errUnavailable }
func HapticRumbleSupported(Haptic) bool                     { return false }
func InitHapticRumble(Haptic) error                         { return errUnavailable }
func PlayHapticRumble(Haptic, float32, uint32) error        { return errUnavailable }
func StopHapticRumble(Haptic) error                         { return errUnavailable }
