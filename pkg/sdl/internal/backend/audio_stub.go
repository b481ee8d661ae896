//go:build !cgo || windows

package backend

func GetAudioDrivers() []string                                   { return nil }
func GetCurrentAudioDriver() string                               { return "" }
func GetAudioPlaybackDevices() ([]uint32, error)                  { return nil, errUnavailable }
func GetAudioRecordingDevices() ([]uint32, error)                 { return nil, errUnavailable }
func GetAudioDeviceName(uint32) (string, error)                   { return "", errUnavailable }
func GetAudioDeviceFormat(uint32) (AudioSpec, int, error)         { return AudioSpec{}, 0, errUnavailable }
func OpenAudioDevice(uint32, *AudioSpec) (uint32, error)          { return 0, errUnavailable }
func CloseAudioDevice(uint32)                                     {}
func PauseAudioDevice(uint32) error                               { return errUnavailable }
func ResumeAudioDevice(uint32) error                              { return errUnavailable }
func AudioDevicePaused(uint32) bool                               { return false }
func GetAudioDeviceGain(uint32) (float32, error)                  { return 0, errUnavailable }
func SetAudioDeviceGain(uint32, float32) error                    { return errUnavailable }
func CreateAudioStream(AudioSpec, AudioSpec) (AudioStream, error) { return nil, errUnavailable }
func OpenAudioDeviceStream(uint32, AudioSpec) (AudioStream, error) {
	return nil, errUnavailable
}
func GetAudioStreamFormat(AudioStream) (AudioSpec, AudioSpec, error) {
	return AudioSpec{}, AudioSpec{}, errUnavailable
}
func PutAudioStreamData(AudioStream, []byte) error        { return errUnavailable }
func GetAudioStreamData(AudioStream, []byte) (int, error) { return 0, errUnavailable }
func GetAudioStreamAvailable(AudioStream) (int, error)    { return 0, errUnavailable }
func GetAudioStreamQueued(AudioStream) (int, error)       { return 0, errUnavailable }
func FlushAudioStream(AudioStream) error                  { return errUnavailable }
func ClearAudioStream(AudioStream) error                  { return errUnavailable }
func DestroyAudioStream(AudioStream)                      {}
func BindAudioStream(uint32, AudioStream) error           { return errUnavailable }
func UnbindAudioStream(AudioStream)                       {}
func GetAudioStreamDevice(AudioStream) uint32             { return 0 }
func PauseAudioStreamDevice(AudioStream) error            { return errUnavailable }
func ResumeAudioStreamDevice(AudioStream) error           { return errUnavailable }
func GetAudioFormatName(uint16) string                    { return "" }
func GetSilenceValueForFormat(uint16) int                 { return 0 }
