//go:build cgo && !windows

package backend

/*
#include <SDL3/SDL.h>

static int sdlgo_create_haptic_effect(SDL_Haptic *h, const SDL_HapticEffect *e) {
	return (int)SDL_CreateHapticEffect(h, e);
}

static bool sdlgo_update_haptic_effect(SDL_Haptic *h, int id, const SDL_HapticEffect *e) {
	return SDL_UpdateHapticEffect(h, id, e);
}

static bool sdlgo_run_haptic_effect(SDL_Haptic *h, int id, Uint32 iterations) {
	return SDL_RunHapticEffect(h, id, iterations);
}

static bool sdlgo_stop_haptic_effect(SDL_Haptic *h, int id) {
	return SDL_StopHapticEffect(h, id);
}

static void sdlgo_destroy_haptic_effect(SDL_Haptic *h, int id) {
	SDL_DestroyHapticEffect(h, id);
}

static bool sdlgo_haptic_effect_status(SDL_Haptic *h, int id) {
	return SDL_GetHapticEffectStatus(h, id);
}
*/
import "C"

import "unsafe"

func chaptic(h Haptic) *C.SDL_Haptic { return (*C.SDL_Haptic)(h) }

func directionToC(dst *C.SDL_HapticDirection, d HapticDirection) {
	dst._type = C.Uint8(d.Type)
	for i, v := range d.Dir {
		dst.dir[i] = C.Sint32(v)
	}
}

// effectToC fills the union member selected by e.Type.
func effectToC(e *HapticEffect) C.SDL_HapticEffect {
	var out C.SDL_HapticEffect
	p := unsafe.Pointer(&out)
	switch uint32(e.Type) {
	case HapticConstant:
		c := (*C.SDL_HapticConstant)(p)
		c._type = C.Uint16(e.Type)
		directionToC(&c.direction, e.Direction)
		c.length = C.Uint32(e.Length)
		c.delay = C.Uint16(e.Delay)
		c.button = C.Uint16(e.Button)
		c.interval = C.Uint16(e.Interval)
		c.level = C.Sint16(e.Level)
		c.attack_length = C.Uint16(e.AttackLength)
		c.attack_level = C.Uint16(e.AttackLevel)
		c.fade_length = C.Uint16(e.FadeLength)
		c.fade_level = C.Uint16(e.FadeLevel)
	case HapticSine, HapticSquare, HapticTriangle, HapticSawtoothUp, HapticSawtoothDown:
		c := (*C.SDL_HapticPeriodic)(p)
		c._type = C.Uint16(e.Type)
		directionToC(&c.direction, e.Direction)
		c.length = C.Uint32(e.Length)
		c.delay = C.Uint16(e.Delay)
		c.button = C.Uint16(e.Button)
		c.interval = C.Uint16(e.Interval)
		c.period = C.Uint16(e.Period)
		c.magnitude = C.Sint16(e.Magnitude)
		c.offset = C.Sint16(e.Offset)
		c.phase = C.Uint16(e.Phase)
		c.attack_length = C.Uint16(e.AttackLength)
		c.attack_level = C.Uint16(e.AttackLevel)
		c.fade_length = C.Uint16(e.FadeLength)
		c.fade_level = C.Uint16(e.FadeLevel)
	case HapticSpring, HapticDamper, HapticInertia, HapticFriction:
		c := (*C.SDL_HapticCondition)(p)
		c._type = C.Uint16(e.Type)
		directionToC(&c.direction, e.Direction)
		c.length = C.Uint32(e.Length)
		c.delay = C.Uint16(e.Delay)
		c.button = C.Uint16(e.Button)
		c.interval = C.Uint16(e.Interval)
		for i := 0; i < 3; i++ {
			c.right_sat[i] = C.Uint16(e.RightSat[i])
			c.left_sat[i] = C.Uint16(e.LeftSat[i])
			c.right_coeff[i] = C.Sint16(e.RightCoeff[i])
			c.left_coeff[i] = C.Sint16(e.LeftCoeff[i])
			c.deadband[i] = C.Uint16(e.Deadband[i])
			c.center[i] = C.Sint16(e.Center[i])
		}
	case HapticRamp:
		c := (*C.SDL_HapticRamp)(p)
		c._type = C.Uint16(e.Type)
		directionToC(&c.direction, e.Direction)
		c.length = C.Uint32(e.Length)
		c.delay = C.Uint16(e.Delay)
		c.button = C.Uint16(e.Button)
		c.interval = C.Uint16(e.Interval)
		c.start = C.Sint16(e.Start)
		c.end = C.Sint16(e.End)
		c.attack_length = C.Uint16(e.AttackLength)
		c.attack_level = C.Uint16(e.AttackLevel)
		c.fade_length = C.Uint16(e.FadeLength)
		c.fade_level = C.Uint16(e.FadeLevel)
	case HapticLeftRight:
		c := (*C.SDL_HapticLeftRight)(p)
		c._type = C.Uint16(e.Type)
		c.length = C.Uint32(e.Length)
		c.large_magnitude = C.Uint16(e.LargeMagnitude)
		c.small_magnitude = C.Uint16(e.SmallMagnitude)
	default:
		*(*C.Uint16)(p) = C.Uint16(e.Type)
	}
	return out
}

func GetHaptics() ([]uint32, error) {
	defer pinThread()()
	var n C.int
	ids := C.SDL_GetHaptics(&n)
	if ids == nil {
		return nil, lastError("SDL_GetHaptics")
	}
	return idSlice(ids, n), nil
}

func GetHapticNameForID(id uint32) (string, error) {
	defer pinThread()()
	name := C.SDL_GetHapticNameForID(C.SDL_HapticID(id))
	if name == nil {
		return "", lastError("SDL_GetHapticNameForID")
	}
	return C.GoString(name), nil
}

func OpenHaptic(id uint32) (Haptic, error) {
	defer pinThread()()
	h := C.SDL_OpenHaptic(C.SDL_HapticID(id))
	if h == nil {
		return nil, lastError("SDL_OpenHaptic")
	}
	return Haptic(unsafe.Pointer(h)), nil
}

func GetHapticFromID(id uint32) (Haptic, error) {
	defer pinThread()()
	h := C.SDL_GetHapticFromID(C.SDL_HapticID(id))
	if h == nil {
		return nil, lastError("SDL_GetHapticFromID")
	}
	return Haptic(unsafe.Pointer(h)), nil
}

func IsMouseHaptic() bool { return bool(C.SDL_IsMouseHaptic()) }

func OpenHapticFromMouse() (Haptic, error) {
	defer pinThread()()
	h := C.SDL_OpenHapticFromMouse()
	if h == nil {
		return nil, lastError("SDL_OpenHapticFromMouse")
	}
	return Haptic(unsafe.Pointer(h)), nil
}

func IsJoystickHaptic(j Joystick) bool { return bool(C.SDL_IsJoystickHaptic(cjoy(j))) }

func OpenHapticFromJoystick(j Joystick) (Haptic, error) {
	defer pinThread()()
	h := C.SDL_OpenHapticFromJoystick(cjoy(j))
	if h == nil {
		return nil, lastError("SDL_OpenHapticFromJoystick")
	}
	return Haptic(unsafe.Pointer(h)), nil
}

func CloseHaptic(h Haptic) { C.SDL_CloseHaptic(chaptic(h)) }

func GetHapticID(h Haptic) (uint32, error) {
	defer pinThread()()
	id := C.SDL_GetHapticID(chaptic(h))
	if id == 0 {
		return 0, lastError("SDL_GetHapticID")
	}
	return uint32(id), nil
}

func GetHapticName(h Haptic) (string, error) {
	defer pinThread()()
	name := C.SDL_GetHapticName(chaptic(h))
	if name == nil {
		return "", lastError("SDL_GetHapticName")
	}
	return C.GoString(name), nil
}

func GetMaxHapticEffects(h Haptic) (int, error) {
	defer pinThread()()
	return countResult("SDL_GetMaxHapticEffects", C.SDL_GetMaxHapticEffects(chaptic(h)))
}

func GetMaxHapticEffectsPlaying(h Haptic) (int, error) {
	defer pinThread()()
	return countResult("SDL_GetMaxHapticEffectsPlaying", C.SDL_GetMaxHapticEffectsPlaying(chaptic(h)))
}

func GetHapticFeatures(h Haptic) (uint32, error) {
	defer pinThread()()
	f := C.SDL_GetHapticFeatures(chaptic(h))
	if f == 0 {
		return 0, lastError("SDL_GetHapticFeatures")
	}
	return uint32(f), nil
}

func GetNumHapticAxes(h Haptic) (int, error) {
	defer pinThread()()
	return countResult("SDL_GetNumHapticAxes", C.SDL_GetNumHapticAxes(chaptic(h)))
}

func HapticEffectSupported(h Haptic, e *HapticEffect) bool {
	ce := effectToC(e)
	return bool(C.SDL_HapticEffectSupported(chaptic(h), &ce))
}

func CreateHapticEffect(h Haptic, e *HapticEffect) (int, error) {
	defer pinThread()()
	ce := effectToC(e)
	id := C.sdlgo_create_haptic_effect(chaptic(h), &ce)
	if id < 0 {
		return 0, lastError("SDL_CreateHapticEffect")
	}
	return int(id), nil
}

func UpdateHapticEffect(h Haptic, id int, e *HapticEffect) error {
	defer pinThread()()
	ce := effectToC(e)
	if !C.sdlgo_update_haptic_effect(chaptic(h), C.int(id), &ce) {
		return lastError("SDL_UpdateHapticEffect")
	}
	return nil
}

func RunHapticEffect(h Haptic, id int, iterations uint32) error {
	defer pinThread()()
	if !C.sdlgo_run_haptic_effect(chaptic(h), C.int(id), C.Uint32(iterations)) {
		return lastError("SDL_RunHapticEffect")
	}
	return nil
}

func StopHapticEffect(h Haptic, id int) error {
	defer pinThread()()
	if !C.sdlgo_stop_haptic_effect(chaptic(h), C.int(id)) {
		return lastError("SDL_StopHapticEffect")
	}
	return nil
}

func DestroyHapticEffect(h Haptic, id int) { C.sdlgo_destroy_haptic_effect(chaptic(h), C.int(id)) }

func GetHapticEffectStatus(h Haptic, id int) bool {
	return bool(C.sdlgo_haptic_effect_status(chaptic(h), C.int(id)))
}

func SetHapticGain(h Haptic, gain int) error {
	defer pinThread()()
	if !C.SDL_SetHapticGain(chaptic(h), C.int(gain)) {
		return lastError("SDL_SetHapticGain")
	}
	return nil
}

func SetHapticAutocenter(h Haptic, autocenter int) error {
	defer pinThread()()
	if !C.SDL_SetHapticAutocenter(chaptic(h), C.int(autocenter)) {
		return lastError("SDL_SetHapticAutocenter")
	}
	return nil
}

func PauseHaptic(h Haptic) error {
	defer pinThread()()
	if !C.SDL_PauseHaptic(chaptic(h)) {
		return lastError("SDL_PauseHaptic")
	}
	return nil
}

func ResumeHaptic(h Haptic) error {
	defer pinThread()()
	if !C.SDL_ResumeHaptic(chaptic(h)) {
		return lastError("SDL_ResumeHaptic")
	}
	return nil
}

func StopHapticEffects(h Haptic) error {
	defer pinThread()()
	if !C.SDL_StopHapticEffects(chaptic(h)) {
		return lastError("SDL_StopHapticEffects")
	}
	return nil
}

func HapticRumbleSupported(h Haptic) bool { return bool(C.SDL_HapticRumbleSupported(chaptic(h))) }

func InitHapticRumble(h Haptic) error {
	defer pinThread()()
	if !C.SDL_InitHapticRumble(chaptic(h)) {
		return lastError("SDL_InitHapticRumble")
	}
	return nil
}

func PlayHapticRumble(h Haptic, strength float32, lengthMS uint32) error {
	defer pinThread()()
	if !C.SDL_PlayHapticRumble(chaptic(h), C.float(strength), C.Uint32(lengthMS)) {
		return lastError("SDL_PlayHapticRumble")
	}
	return nil
}

func StopHapticRumble(h Haptic) error {
	defer pinThread()()
	if !C.SDL_StopHapticRumble(chaptic(h)) {
		return lastError("SDL_StopHapticRumble")
	}
	return nil
}
