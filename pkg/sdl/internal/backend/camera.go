//go:build cgo && !windows

package backend

/*
#include <SDL3/SDL.h>

static int sdlgo_camera_permission(SDL_Camera *c) {
	return (int)SDL_GetCameraPermissionState(c);
}
*/
import "C"

import "unsafe"

func ccamera(c Camera) *C.SDL_Camera { return (*C.SDL_Camera)(c) }

func cameraSpecFromC(s *C.SDL_CameraSpec) CameraSpec {
	return CameraSpec{
		Format:               uint32(s.format),
		Colorspace:           uint32(s.colorspace),
		Width:                int(s.width),
		Height:               int(s.height),
		FramerateNumerator:   int(s.framerate_numerator),
		FramerateDenominator: int(s.framerate_denominator),
	}
}

func GetCameraDrivers() []string {
	n := int(C.SDL_GetNumCameraDrivers())
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if p := C.SDL_GetCameraDriver(C.int(i)); p != nil {
			out = append(out, C.GoString(p))
		}
	}
	return out
}

func GetCurrentCameraDriver() string {
	p := C.SDL_GetCurrentCameraDriver()
	if p == nil {
		return ""
	}
	return C.GoString(p)
}

func GetCameras() ([]uint32, error) {
	defer pinThread()()
	var n C.int
	ids := C.SDL_GetCameras(&n)
	if ids == nil {
		return nil, lastError("SDL_GetCameras")
	}
	return idSlice(ids, n), nil
}

func GetCameraSupportedFormats(id uint32) ([]CameraSpec, error) {
	defer pinThread()()
	var n C.int
	list := C.SDL_GetCameraSupportedFormats(C.SDL_CameraID(id), &n)
	if list == nil {
		return nil, lastError("SDL_GetCameraSupportedFormats")
	}
	defer C.SDL_free(unsafe.Pointer(list))
	out := make([]CameraSpec, 0, int(n))
	for _, s := range unsafe.Slice(list, int(n)) {
		out = append(out, cameraSpecFromC(s))
	}
	return out, nil
}

func GetCameraName(id uint32) (string, error) {
	defer pinThread()()
	p := C.SDL_GetCameraName(C.SDL_CameraID(id))
	if p == nil {
		return "", lastError("SDL_GetCameraName")
	}
	return C.GoString(p), nil
}

func GetCameraPosition(id uint32) int {
	return int(C.SDL_GetCameraPosition(C.SDL_CameraID(id)))
}

func OpenCamera(id uint32, spec *CameraSpec) (Camera, error) {
	defer pinThread()()
	var cs *C.SDL_CameraSpec
	if spec != nil {
		cs = &C.SDL_CameraSpec{
			format:                C.SDL_PixelFormat(spec.Format),
			colorspace:            C.SDL_Colorspace(spec.Colorspace),
			width:                 C.int(spec.Width),
			height:                C.int(spec.Height),
			framerate_numerator:   C.int(spec.FramerateNumerator),
			framerate_denominator: C.int(spec.FramerateDenominator),
		}
	}
	c := C.SDL_OpenCamera(C.SDL_CameraID(id), cs)
	if c == nil {
		return nil, lastError("SDL_OpenCamera")
	}
	return Camera(unsafe.Pointer(c)), nil
}

// GetCameraPermissionState returns 1 when approved, -1 when denied and 0
// while the user has not decided.
func GetCameraPermissionState(c Camera) int { return int(C.sdlgo_camera_permission(ccamera(c))) }

func GetCameraID(c Camera) (uint32, error) {
	defer pinThread()()
	id := C.SDL_GetCameraID(ccamera(c))
	if id == 0 {
		return 0, lastError("SDL_GetCameraID")
	}
	return uint32(id), nil
}

func GetCameraFormat(c Camera) (CameraSpec, error) {
	defer pinThread()()
	var spec C.SDL_CameraSpec
	if !C.SDL_GetCameraFormat(ccamera(c), &spec) {
		return CameraSpec{}, lastError("SDL_GetCameraFormat")
	}
	return cameraSpecFromC(&spec), nil
}

// AcquireCameraFrame copies the next frame and releases it immediately. ok
// is false when no frame is ready yet.
func AcquireCameraFrame(c Camera) (Frame, bool) {
	var ts C.Uint64
	surf := C.SDL_AcquireCameraFrame(ccamera(c), &ts)
	if surf == nil {
		return Frame{}, false
	}
	defer C.SDL_ReleaseCameraFrame(ccamera(c), surf)
	f := Frame{
		Format:      uint32(surf.format),
		Width:       int(surf.w),
		Height:      int(surf.h),
		Pitch:       int(surf.pitch),
		TimestampNS: uint64(ts),
	}
	if surf.pixels != nil && surf.pitch > 0 && surf.h > 0 {
		f.Pixels = C.GoBytes(surf.pixels, surf.pitch*surf.h)
	}
	return f, true
}

func CloseCamera(c Camera) { C.SDL_CloseCamera(ccamera(c)) }
