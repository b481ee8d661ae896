//go:build cgo && !windows

package backend

/*
#include <SDL3/SDL.h>
*/
import "C"

import "unsafe"

func caudio(s AudioStream) *C.SDL_AudioStream { return (*C.SDL_AudioStream)(s) }

func specToC(s AudioSpec) C.SDL_AudioSpec {
	return C.SDL_AudioSpec{
		format:   C.SDL_AudioFormat(s.Format),
		channels: C.int(s.Channels),
		freq:     C.int(s.Freq),
	}
}

func specFromC(s *C.SDL_AudioSpec) AudioSpec {
	return AudioSpec{Format: uint16(s.format), Channels: int(s.channels), Freq: int(s.freq)}
}

func GetAudioDrivers() []string {
	n := int(C.SDL_GetNumAudioDrivers())
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if p := C.SDL_GetAudioDriver(C.int(i)); p != nil {
			out = append(out, C.GoString(p))
		}
	}
	return out
}

func GetCurrentAudioDriver() string {
	p := C.SDL_GetCurrentAudioDriver()
	if p == nil {
		return ""
	}
	return C.GoString(p)
}

func GetAudioPlaybackDevices() ([]uint32, error) {
	defer pinThread()()
	var n C.int
	ids := C.SDL_GetAudioPlaybackDevices(&n)
	if ids == nil {
		return nil, lastError("SDL_GetAudioPlaybackDevices")
	}
	return idSlice(ids, n), nil
}

func GetAudioRecordingDevices() ([]uint32, error) {
	defer pinThread()()
	var n C.int
	ids := C.SDL_GetAudioRecordingDevices(&n)
	if ids == nil {
		return nil, lastError("SDL_GetAudioRecordingDevices")
	}
	return idSlice(ids, n), nil
}

func GetAudioDeviceName(id uint32) (string, error) {
	defer pinThread()()
	p := C.SDL_GetAudioDeviceName(C.SDL_AudioDeviceID(id))
	if p == nil {
		return "", lastError("SDL_GetAudioDeviceName")
	}
	return C.GoString(p), nil
}

// GetAudioDeviceFormat returns the device spec and its buffer size in sample
// frames.
func GetAudioDeviceFormat(id uint32) (AudioSpec, int, error) {
	defer pinThread()()
	var spec C.SDL_AudioSpec
	var frames C.int
	if !C.SDL_GetAudioDeviceFormat(C.SDL_AudioDeviceID(id), &spec, &frames) {
		return AudioSpec{}, 0, lastError("SDL_GetAudioDeviceFormat")
	}
	return specFromC(&spec), int(frames), nil
}

func OpenAudioDevice(id uint32, spec *AudioSpec) (uint32, error) {
	defer pinThread()()
	var cs *C.SDL_AudioSpec
	if spec != nil {
		v := specToC(*spec)
		cs = &v
	}
	dev := C.SDL_OpenAudioDevice(C.SDL_AudioDeviceID(id), cs)
	if dev == 0 {
		return 0, lastError("SDL_OpenAudioDevice")
	}
	return uint32(dev), nil
}

func CloseAudioDevice(id uint32) { C.SDL_CloseAudioDevice(C.SDL_AudioDeviceID(id)) }

func PauseAudioDevice(id uint32) error {
	defer pinThread()()
	if !C.SDL_PauseAudioDevice(C.SDL_AudioDeviceID(id)) {
		return lastError("SDL_PauseAudioDevice")
	}
	return nil
}

func ResumeAudioDevice(id uint32) error {
	defer pinThread()()
	if !C.SDL_ResumeAudioDevice(C.SDL_AudioDeviceID(id)) {
		return lastError("SDL_ResumeAudioDevice")
	}
	return nil
}

func AudioDevicePaused(id uint32) bool {
	return bool(C.SDL_AudioDevicePaused(C.SDL_AudioDeviceID(id)))
}

func GetAudioDeviceGain(id uint32) (float32, error) {
	defer pinThread()()
	g := C.SDL_GetAudioDeviceGain(C.SDL_AudioDeviceID(id))
	if g < 0 {
		return 0, lastError("SDL_GetAudioDeviceGain")
	}
	return float32(g), nil
}

func SetAudioDeviceGain(id uint32, gain float32) error {
	defer pinThread()()
	if !C.SDL_SetAudioDeviceGain(C.SDL_AudioDeviceID(id), C.float(gain)) {
		return lastError("SDL_SetAudioDeviceGain")
	}
	return nil
}

func CreateAudioStream(src, dst AudioSpec) (AudioStream, error) {
	defer pinThread()()
	cs, cd := specToC(src), specToC(dst)
	s := C.SDL_CreateAudioStream(&cs, &cd)
	if s == nil {
		return nil, lastError("SDL_CreateAudioStream")
	}
	return AudioStream(unsafe.Pointer(s)), nil
}

func OpenAudioDeviceStream(id uint32, spec AudioSpec) (AudioStream, error) {
	defer pinThread()()
	cs := specToC(spec)
	s := C.SDL_OpenAudioDeviceStream(C.SDL_AudioDeviceID(id), &cs, nil, nil)
	if s == nil {
		return nil, lastError("SDL_OpenAudioDeviceStream")
	}
	return AudioStream(unsafe.Pointer(s)), nil
}

func GetAudioStreamFormat(s AudioStream) (AudioSpec, AudioSpec, error) {
	defer pinThread()()
	var src, dst C.SDL_AudioSpec
	if !C.SDL_GetAudioStreamFormat(caudio(s), &src, &dst) {
		return AudioSpec{}, AudioSpec{}, lastError("SDL_GetAudioStreamFormat")
	}
	return specFromC(&src), specFromC(&dst), nil
}

func PutAudioStreamData(s AudioStream, p []byte) error {
	defer pinThread()()
	if len(p) == 0 {
		return nil
	}
	if !C.SDL_PutAudioStreamData(caudio(s), unsafe.Pointer(&p[0]), C.int(len(p))) {
		return lastError("SDL_PutAudioStreamData")
	}
	return nil
}

func GetAudioStreamData(s AudioStream, p []byte) (int, error) {
	defer pinThread()()
	if len(p) == 0 {
		return 0, nil
	}
	return countResult("SDL_GetAudioStreamData", C.SDL_GetAudioStreamData(caudio(s), unsafe.Pointer(&p[0]), C.int(len(p))))
}

func GetAudioStreamAvailable(s AudioStream) (int, error) {
	defer pinThread()()
	return countResult("SDL_GetAudioStreamAvailable", C.SDL_GetAudioStreamAvailable(caudio(s)))
}

func GetAudioStreamQueued(s AudioStream) (int, error) {
	defer pinThread()()
	return countResult("SDL_GetAudioStreamQueued", C.SDL_GetAudioStreamQueued(caudio(s)))
}

func FlushAudioStream(s AudioStream) error {
	defer pinThread()()
	if !C.SDL_FlushAudioStream(caudio(s)) {
		return lastError("SDL_FlushAudioStream")
	}
	return nil
}

func ClearAudioStream(s AudioStream) error {
	defer pinThread()()
	if !C.SDL_ClearAudioStream(caudio(s)) {
		return lastError("SDL_ClearAudioStream")
	}
	return nil
}

func DestroyAudioStream(s AudioStream) { C.SDL_DestroyAudioStream(caudio(s)) }

func BindAudioStream(dev uint32, s AudioStream) error {
	defer pinThread()()
	if !C.SDL_BindAudioStream(C.SDL_AudioDeviceID(dev), caudio(s)) {
		return lastError("SDL_BindAudioStream")
	}
	return nil
}

func UnbindAudioStream(s AudioStream) { C.SDL_UnbindAudioStream(caudio(s)) }

func GetAudioStreamDevice(s AudioStream) uint32 {
	return uint32(C.SDL_GetAudioStreamDevice(caudio(s)))
}

func PauseAudioStreamDevice(s AudioStream) error {
	defer pinThread()()
	if !C.SDL_PauseAudioStreamDevice(caudio(s)) {
		return lastError("SDL_PauseAudioStreamDevice")
	}
	return nil
}

func ResumeAudioStreamDevice(s AudioStream) error {
	defer pinThread()()
	if !C.SDL_ResumeAudioStreamDevice(caudio(s)) {
		return lastError("SDL_ResumeAudioStreamDevice")
	}
	return nil
}

func GetAudioFormatName(format uint16) string {
	return C.GoString(C.SDL_GetAudioFormatName(C.SDL_AudioFormat(format)))
}

func GetSilenceValueForFormat(format uint16) int {
	return int(C.SDL_GetSilenceValueForFormat(C.SDL_AudioFormat(format)))
}
