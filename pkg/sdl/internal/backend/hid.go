//go:build cgo && !windows

package backend

/*
#include <stdlib.h>
#include <wchar.h>
#include <SDL3/SDL.h>
*/
import "C"

import "unsafe"

// maxWideString bounds the buffers handed to the SDL_hid_get_*_string calls.
const maxWideString = 256

const wcharSize = int(C.sizeof_wchar_t)

func chid(d HIDDevice) *C.SDL_hid_device { return (*C.SDL_hid_device)(d) }

func goWide(p *C.wchar_t) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*C.wchar_t)(unsafe.Add(unsafe.Pointer(p), n*wcharSize)) != 0 {
		n++
	}
	src := unsafe.Slice(p, n)
	units := make([]uint32, n)
	for i, u := range src {
		units[i] = uint32(u)
	}
	return decodeWide(units, wcharSize)
}

func cWide(s string) *C.wchar_t {
	units := encodeWide(s, wcharSize)
	buf := (*C.wchar_t)(C.calloc(C.size_t(len(units)), C.size_t(wcharSize)))
	dst := unsafe.Slice(buf, len(units))
	for i, u := range units {
		dst[i] = C.wchar_t(u)
	}
	return buf
}

func hidInfoFromC(n *C.SDL_hid_device_info) HIDDeviceInfo {
	info := HIDDeviceInfo{
		VendorID:          uint16(n.vendor_id),
		ProductID:         uint16(n.product_id),
		SerialNumber:      goWide(n.serial_number),
		ReleaseNumber:     uint16(n.release_number),
		Manufacturer:      goWide(n.manufacturer_string),
		Product:           goWide(n.product_string),
		UsagePage:         uint16(n.usage_page),
		Usage:             uint16(n.usage),
		InterfaceNumber:   int(n.interface_number),
		InterfaceClass:    int(n.interface_class),
		InterfaceSubclass: int(n.interface_subclass),
		InterfaceProtocol: int(n.interface_protocol),
		BusType:           int(n.bus_type),
	}
	if n.path != nil {
		info.Path = C.GoString(n.path)
	}
	return info
}

func HIDInit() error {
	defer pinThread()()
	if C.SDL_hid_init() != 0 {
		return lastError("SDL_hid_init")
	}
	return nil
}

func HIDExit() error {
	defer pinThread()()
	if C.SDL_hid_exit() != 0 {
		return lastError("SDL_hid_exit")
	}
	return nil
}

func HIDDeviceChangeCount() uint32 { return uint32(C.SDL_hid_device_change_count()) }

// HIDEnumerate copies the native device list and frees it. An empty result is
// not an error.
func HIDEnumerate(vendor, product uint16) []HIDDeviceInfo {
	head := C.SDL_hid_enumerate(C.ushort(vendor), C.ushort(product))
	if head == nil {
		return nil
	}
	defer C.SDL_hid_free_enumeration(head)
	var out []HIDDeviceInfo
	for n := head; n != nil; n = n.next {
		out = append(out, hidInfoFromC(n))
	}
	return out
}

func HIDOpen(vendor, product uint16, serial string) (HIDDevice, error) {
	defer pinThread()()
	var ws *C.wchar_t
	if serial != "" {
		ws = cWide(serial)
		defer C.free(unsafe.Pointer(ws))
	}
	d := C.SDL_hid_open(C.ushort(vendor), C.ushort(product), ws)
	if d == nil {
		return nil, lastError("SDL_hid_open")
	}
	return HIDDevice(unsafe.Pointer(d)), nil
}

func HIDOpenPath(path string) (HIDDevice, error) {
	defer pinThread()()
	cs := C.CString(path)
	defer C.free(unsafe.Pointer(cs))
	d := C.SDL_hid_open_path(cs)
	if d == nil {
		return nil, lastError("SDL_hid_open_path")
	}
	return HIDDevice(unsafe.Pointer(d)), nil
}

func bufPtr(p []byte) *C.uchar {
	if len(p) == 0 {
		return nil
	}
	return (*C.uchar)(unsafe.Pointer(&p[0]))
}

func HIDWrite(d HIDDevice, p []byte) (int, error) {
	defer pinThread()()
	return countResult("SDL_hid_write", C.SDL_hid_write(chid(d), bufPtr(p), C.size_t(len(p))))
}

func HIDRead(d HIDDevice, p []byte) (int, error) {
	defer pinThread()()
	return countResult("SDL_hid_read", C.SDL_hid_read(chid(d), bufPtr(p), C.size_t(len(p))))
}

func HIDReadTimeout(d HIDDevice, p []byte, ms int) (int, error) {
	defer pinThread()()
	return countResult("SDL_hid_read_timeout", C.SDL_hid_read_timeout(chid(d), bufPtr(p), C.size_t(len(p)), C.int(ms)))
}

func HIDSetNonblocking(d HIDDevice, nonblock bool) error {
	defer pinThread()()
	v := C.int(0)
	if nonblock {
		v = 1
	}
	_, err := countResult("SDL_hid_set_nonblocking", C.SDL_hid_set_nonblocking(chid(d), v))
	return err
}

func HIDSendFeatureReport(d HIDDevice, p []byte) (int, error) {
	defer pinThread()()
	return countResult("SDL_hid_send_feature_report", C.SDL_hid_send_feature_report(chid(d), bufPtr(p), C.size_t(len(p))))
}

func HIDGetFeatureReport(d HIDDevice, p []byte) (int, error) {
	defer pinThread()()
	return countResult("SDL_hid_get_feature_report", C.SDL_hid_get_feature_report(chid(d), bufPtr(p), C.size_t(len(p))))
}

func HIDGetInputReport(d HIDDevice, p []byte) (int, error) {
	defer pinThread()()
	return countResult("SDL_hid_get_input_report", C.SDL_hid_get_input_report(chid(d), bufPtr(p), C.size_t(len(p))))
}

func HIDClose(d HIDDevice) error {
	defer pinThread()()
	_, err := countResult("SDL_hid_close", C.SDL_hid_close(chid(d)))
	return err
}

func hidString(op string, fill func(buf *C.wchar_t, n C.size_t) C.int) (string, error) {
	defer pinThread()()
	buf := (*C.wchar_t)(C.calloc(maxWideString, C.size_t(wcharSize)))
	defer C.free(unsafe.Pointer(buf))
	if _, err := countResult(op, fill(buf, maxWideString)); err != nil {
		return "", err
	}
	return goWide(buf), nil
}

func HIDManufacturer(d HIDDevice) (string, error) {
	return hidString("SDL_hid_get_manufacturer_string", func(buf *C.wchar_t, n C.size_t) C.int {
		return C.SDL_hid_get_manufacturer_string(chid(d), buf, n)
	})
}

func HIDProduct(d HIDDevice) (string, error) {
	return hidString("SDL_hid_get_product_string", func(buf *C.wchar_t, n C.size_t) C.int {
		return C.SDL_hid_get_product_string(chid(d), buf, n)
	})
}

func HIDSerialNumber(d HIDDevice) (string, error) {
	return hidString("SDL_hid_get_serial_number_string", func(buf *C.wchar_t, n C.size_t) C.int {
		return C.SDL_hid_get_serial_number_string(chid(d), buf, n)
	})
}

func HIDIndexedString(d HIDDevice, index int) (string, error) {
	return hidString("SDL_hid_get_indexed_string", func(buf *C.wchar_t, n C.size_t) C.int {
		return C.SDL_hid_get_indexed_string(chid(d), C.int(index), buf, n)
	})
}

func HIDDeviceInfoOf(d HIDDevice) (HIDDeviceInfo, error) {
	defer pinThread()()
	info := C.SDL_hid_get_device_info(chid(d))
	if info == nil {
		return HIDDeviceInfo{}, lastError("SDL_hid_get_device_info")
	}
	return hidInfoFromC(info), nil
}

func HIDReportDescriptor(d HIDDevice, p []byte) (int, error) {
	defer pinThread()()
	return countResult("SDL_hid_get_report_descriptor", C.SDL_hid_get_report_descriptor(chid(d), bufPtr(p), C.size_t(len(p))))
}

func HIDBLEScan(active bool) { C.SDL_hid_ble_scan(C.bool(active)) }
