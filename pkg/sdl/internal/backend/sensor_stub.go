//go:build !cgo || windows

package backend

func GetSensors() ([]uint32, error)             { return nil, errUnavailable }
func GetSensorNameForID(uint32) (string, error) { return "", errUnavailable }
func GetSensorTypeForID(uint32) int             { return -1 }
func GetSensorNonPortableTypeForID(uint32) int  { return -1 }
func OpenSensor(uint32) (Sensor, error)         { return nil, errUnavailable }
func GetSensorFromID(uint32) (Sensor, error)    { return nil, errUnavailable }
func GetSensorName(Sensor) (string, error)      { return "", errUnavailable }
func GetSensorType(Sensor) int                  { return -1 }
func GetSensorNonPortableType(Sensor) int       { return -1 }
func GetSensorID(Sensor) (uint32, error)        { return 0, errUnavailable }
func GetSensorData(Sensor, []float32) error     { return errUnavailable }
func CloseSensor(Sensor)                        {}
func UpdateSensors()                            {}
