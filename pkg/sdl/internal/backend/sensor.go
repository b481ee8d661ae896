//go:build cgo && !windows

package backend

/*
#include <SDL3/SDL.h>
*/
import "C"

import "unsafe"

func csensor(s Sensor) *C.SDL_Sensor { return (*C.SDL_Sensor)(s) }

func GetSensors() ([]uint32, error) {
	defer pinThread()()
	var n C.int
	ids := C.SDL_GetSensors(&n)
	if ids == nil {
		return nil, lastError("SDL_GetSensors")
	}
	return idSlice(ids, n), nil
}

func GetSensorNameForID(id uint32) (string, error) {
	defer pinThread()()
	name := C.SDL_GetSensorNameForID(C.SDL_SensorID(id))
	if name == nil {
		return "", lastError("SDL_GetSensorNameForID")
	}
	return C.GoString(name), nil
}

func GetSensorTypeForID(id uint32) int {
	return int(C.SDL_GetSensorTypeForID(C.SDL_SensorID(id)))
}

func GetSensorNonPortableTypeForID(id uint32) int {
	return int(C.SDL_GetSensorNonPortableTypeForID(C.SDL_SensorID(id)))
}

func OpenSensor(id uint32) (Sensor, error) {
	defer pinThread()()
	s := C.SDL_OpenSensor(C.SDL_SensorID(id))
	if s == nil {
		return nil, lastError("SDL_OpenSensor")
	}
	return Sensor(unsafe.Pointer(s)), nil
}

func GetSensorFromID(id uint32) (Sensor, error) {
	defer pinThread()()
	s := C.SDL_GetSensorFromID(C.SDL_SensorID(id))
	if s == nil {
		return nil, lastError("SDL_GetSensorFromID")
	}
	return Sensor(unsafe.Pointer(s)), nil
}

func GetSensorName(s Sensor) (string, error) {
	defer pinThread()()
	name := C.SDL_GetSensorName(csensor(s))
	if name == nil {
		return "", lastError("SDL_GetSensorName")
	}
	return C.GoString(name), nil
}

func GetSensorType(s Sensor) int { return int(C.SDL_GetSensorType(csensor(s))) }

func GetSensorNonPortableType(s Sensor) int {
	return int(C.SDL_GetSensorNonPortableType(csensor(s)))
}

func GetSensorID(s Sensor) (uint32, error) {
	defer pinThread()()
	id := C.SDL_GetSensorID(csensor(s))
	if id == 0 {
		return 0, lastError("SDL_GetSensorID")
	}
	return uint32(id), nil
}

func GetSensorData(s Sensor, out []float32) error {
	defer pinThread()()
	if len(out) == 0 {
		return nil
	}
	if !C.SDL_GetSensorData(csensor(s), (*C.float)(unsafe.Pointer(&out[0])), C.int(len(out))) {
		return lastError("SDL_GetSensorData")
	}
	return nil
}

func CloseSensor(s Sensor) { C.SDL_CloseSensor(csensor(s)) }

func UpdateSensors() { C.SDL_UpdateSensors() }
