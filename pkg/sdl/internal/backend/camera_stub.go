//go:build !cgo || windows

package backend

func GetCameraDrivers() []string                             { return nil }
func GetCurrentCameraDriver() string                         { return "" }
func GetCameras() ([]uint32, error)                          { return nil, errUnavailable }
func GetCameraSupportedFormats(uint32) ([]CameraSpec, error) { return nil, errUnavailable }
func GetCameraName(uint32) (string, error)                   { return "", errUnavailable }
func GetCameraPosition(uint32) int                           { return 0 }
func OpenCamera(uint32, *CameraSpec) (Camera, error)         { return nil, errUnavailable }
func GetCameraPermissionState(Camera) int                    { return -1 }
func GetCameraID(Camera) (uint32, error)                     { return 0, errUnavailable }
func GetCameraFormat(Camera) (CameraSpec, error)             { return CameraSpec{}, errUnavailable }
func AcquireCameraFrame(Camera) (Frame, bool)                { return Frame{}, false }
func CloseCamera(Camera)                                     {}
