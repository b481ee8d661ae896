//go:build !cgo || windows

package backend

func Init(uint32) error          { return errUnavailable }
func InitSubSystem(uint32) error { return errUnavailable }
func QuitSubSystem(uint32)       {}
func WasInit(uint32) uint32      { return 0 }
func Quit()                      {}

func GetError() string { return errUnavailable.Error() }
func ClearError()      {}
func SetError(string)  {}

func Version() (int, int, int) { return 0, 0, 0 }
func Revision() string         { return "" }

func SetAppMetadata(string, string, string) error              { return errUnavailable }
func SetHint(string, string) error                             { return errUnavailable }
func SetHintWithPriority(string, string, int) error            { return errUnavailable }
func GetHint(string) (string, bool)                            { return "", false }
func ResetHint(string) error                                   { return errUnavailable }
func ResetHints()                                              {}
func GetPlatform() string                                      { return "" }
func NumLogicalCPUCores() int                                  { return 0 }
func SystemRAM() int                                           { return 0 }
func GetPowerInfo() (int, int, int, error)                     { return -1, -1, -1, errUnavailable }
func CreateProperties() (uint32, error)                        { return 0, errUnavailable }
func GlobalProperties() (uint32, error)                        { return 0, errUnavailable }
func DestroyProperties(uint32)                                 {}
func SetStringProperty(uint32, string, string) error           { return errUnavailable }
func GetStringProperty(_ uint32, _ string, def string) string  { return def }
func SetNumberProperty(uint32, string, int64) error            { return errUnavailable }
func GetNumberProperty(_ uint32, _ string, def int64) int64    { return def }
func SetFloatProperty(uint32, string, float32) error           { return errUnavailable }
func GetFloatProperty(_ uint32, _ string, def float32) float32 { return def }
func SetBooleanProperty(uint32, string, bool) error            { return errUnavailable }
func GetBooleanProperty(_ uint32, _ string, def bool) bool     { return def }
func HasProperty(uint32, string) bool                          { return false }
func ClearProperty(uint32, string) error                       { return errUnavailable }
func GetPropertyType(uint32, string) int                       { return 0 }
