//go:build !cgo || windows

package backend

func HIDInit() error                                      { return errUnavailable }
func HIDExit() error                                      { return errUnavailable }
func HIDDeviceChangeCount() uint32                        { return 0 }
func HIDEnumerate(uint16, uint16) []HIDDeviceInfo         { return nil }
func HIDOpen(uint16, uint16, string) (HIDDevice, error)   { return nil, errUnavailable }
func HIDOpenPath(string) (HIDDevice, error)               { return nil, errUnavailable }
func HIDWrite(HIDDevice, []byte) (int, error)             { return 0, errUnavailable }
func HIDRead(HIDDevice, []byte) (int, error)              { return 0, errUnavailable }
func HIDReadTimeout(HIDDevice, []byte, int) (int, error)  { return 0, errUnavailable }
func HIDSetNonblocking(HIDDevice, bool) error             { return errUnavailable }
func HIDSendFeatureReport(HIDDevice, []byte) (int, error) { return 0, errUnavailable }
func HIDGetFeatureReport(HIDDevice, []byte) (int, error)  { return 0, errUnavailable }
func HIDGetInputReport(HIDDevice, []byte) (int, error)    { return 0, errUnavailable }
func HIDClose(HIDDevice) error                            { return errUnavailable }
func HIDManufacturer(HIDDevice) (string, error)           { return "", errUnavailable }
func HIDProduct(HIDDevice) (string, error)                { return "", errUnavailable }
func HIDSerialNumber(HIDDevice) (string, error)           { return "", errUnavailable }
func HIDIndexedString(HIDDevice, int) (string, error)     { return "", errUnavailable }
func HIDDeviceInfoOf(HIDDevice) (HIDDeviceInfo, error)    { return HIDDeviceInfo{}, errUnavailable }
func HIDReportDescriptor(HIDDevice, []byte) (int, error)  { return 0, errUnavailable }
func HIDBLEScan(bool)                                     {}
