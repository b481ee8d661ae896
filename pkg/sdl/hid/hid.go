// Package hid talks to raw USB and Bluetooth HID devices.
//
// Enumeration copies the native device list into Go values and frees it
// before returning. Wide-character strings are decoded to UTF-8.
package hid

import (
	"fmt"
	"time"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/backend"
)

// MaxReportDescriptorSize is the largest descriptor HID allows.
const MaxReportDescriptorSize = 4096

// BusType mirrors SDL_hid_bus_type.
type BusType int

const (
	BusUnknown BusType = iota
	BusUSB
	BusBluetooth
	BusI2C
	BusSPI
)

func (b BusType) String() string {
	switch b {
	case BusUSB:
		return "usb"
	case BusBluetooth:
		return "bluetooth"
	case BusI2C:
		return "i2c"
	case BusSPI:
		return "spi"
	default:
		return "unknown"
	}
}

// DeviceInfo describes one enumerated device interface.
type DeviceInfo struct {
	Path              string
	VendorID          uint16
	ProductID         uint16
	SerialNumber      string
	ReleaseNumber     uint16
	Manufacturer      string
	Product           string
	UsagePage         uint16
	Usage             uint16
	InterfaceNumber   int
	InterfaceClass    int
	InterfaceSubclass int
	InterfaceProtocol int
	BusType           BusType
}

func infoFrom(n backend.HIDDeviceInfo) DeviceInfo {
	return DeviceInfo{
		Path:              n.Path,
		VendorID:          n.VendorID,
		ProductID:         n.ProductID,
		SerialNumber:      n.SerialNumber,
		ReleaseNumber:     n.ReleaseNumber,
		Manufacturer:      n.Manufacturer,
		Product:           n.Product,
		UsagePage:         n.UsagePage,
		Usage:             n.Usage,
		InterfaceNumber:   n.InterfaceNumber,
		InterfaceClass:    n.InterfaceClass,
		InterfaceSubclass: n.InterfaceSubclass,
		InterfaceProtocol: n.InterfaceProtocol,
		BusType:           BusType(n.BusType),
	}
}

// Init starts the HID subsystem. Open and Enumerate call it implicitly.
func Init() error {
	return sdl.RemapError(backend.HIDInit())
}

// Exit releases HID resources. Devices must be closed first.
func Exit() error {
	return sdl.RemapError(backend.HIDExit())
}

// DeviceChangeCount increases whenever devices are added or removed.
func DeviceChangeCount() uint32 {
	return backend.HIDDeviceChangeCount()
}

// Enumerate lists devices matching vendor and product; zero matches any.
func Enumerate(vendor, product uint16) []DeviceInfo {
	nodes := backend.HIDEnumerate(vendor, product)
	out := make([]DeviceInfo, len(nodes))
	for i, n := range nodes {
		out[i] = infoFrom(n)
	}
	return out
}

// BLEScan starts or stops scanning for Bluetooth LE devices.
func BLEScan(active bool) {
	backend.HIDBLEScan(active)
}

// Device is an open HID device.
type Device struct {
	d backend.HIDDevice
}

// Open opens the first device matching vendor and product, and serial when
// it is not empty.
func Open(vendor, product uint16, serial string) (*Device, error) {
	if vendor == 0 && product == 0 {
		return nil, fmt.Errorf("%w: vendor and product are both zero", sdl.ErrInvalidArgument)
	}
	d, err := backend.HIDOpen(vendor, product, serial)
	if err != nil {
		return nil, sdl.RemapError(err)
	}
	return &Device{d: d}, nil
}

// OpenPath opens the device at a platform path from DeviceInfo.Path.
func OpenPath(path string) (*Device, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", sdl.ErrInvalidArgument)
	}
	d, err := backend.HIDOpenPath(path)
	if err != nil {
		return nil, sdl.RemapError(err)
	}
	return &Device{d: d}, nil
}

func (d *Device) valid() bool { return d != nil && d.d != nil }

func (d *Device) Close() error {
	if !d.valid() {
		return nil
	}
	err := backend.HIDClose(d.d)
	d.d = nil
	return sdl.RemapError(err)
}

func nonEmpty(p []byte) error {
	if len(p) == 0 {
		return fmt.Errorf("%w: empty report buffer", sdl.ErrInvalidArgument)
	}
	return nil
}

// Write sends an output report. The first byte is the report ID, or 0 for
// devices with a single report.
func (d *Device) Write(p []byte) (int, error) {
	if !d.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	if err := nonEmpty(p); err != nil {
		return 0, err
	}
	n, err := backend.HIDWrite(d.d, p)
	return n, sdl.RemapError(err)
}

// Read reads one input report. In non-blocking mode it returns 0 when no
// report is pending.
func (d *Device) Read(p []byte) (int, error) {
	if !d.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	if err := nonEmpty(p); err != nil {
		return 0, err
	}
	n, err := backend.HIDRead(d.d, p)
	return n, sdl.RemapError(err)
}

// ReadTimeout waits up to timeout for a report; a negative timeout blocks.
func (d *Device) ReadTimeout(p []byte, timeout time.Duration) (int, error) {
	if !d.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	if err := nonEmpty(p); err != nil {
		return 0, err
	}
	ms := -1
	if timeout >= 0 {
		ms = int(timeout.Milliseconds())
	}
	n, err := backend.HIDReadTimeout(d.d, p, ms)
	return n, sdl.RemapError(err)
}

func (d *Device) SetNonblocking(nonblock bool) error {
	if !d.valid() {
		return sdl.ErrInvalidHandle
	}
	return sdl.RemapError(backend.HIDSetNonblocking(d.d, nonblock))
}

// SendFeatureReport sends p, whose first byte is the report ID.
func (d *Device) SendFeatureReport(p []byte) (int, error) {
	if !d.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	if err := nonEmpty(p); err != nil {
		return 0, err
	}
	n, err := backend.HIDSendFeatureReport(d.d, p)
	return n, sdl.RemapError(err)
}

// GetFeatureReport reads the feature report whose ID is stored in p[0].
func (d *Device) GetFeatureReport(p []byte) (int, error) {
	if !d.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	if err := nonEmpty(p); err != nil {
		return 0, err
	}
	n, err := backend.HIDGetFeatureReport(d.d, p)
	return n, sdl.RemapError(err)
}

func (d *Device) GetInputReport(p []byte) (int, error) {
	if !d.valid() {
		return 0, sdl.ErrInvalidHandle
	}
	if err := nonEmpty(p); err != nil {
		return 0, err
	}
	n, err := backend.HIDGetInputReport(d.d, p)
	return n, sdl.RemapError(err)
}

func (d *Device) Manufacturer() (string, error) {
	if !d.valid() {
		return "", sdl.ErrInvalidHandle
	}
	s, err := backend.HIDManufacturer(d.d)
	return s, sdl.RemapError(err)
}

func (d *Device) Product() (string, error) {
	if !d.valid() {
		return "", sdl.ErrInvalidHandle
	}
	s, err := backend.HIDProduct(d.d)
	return s, sdl.RemapError(err)
}

func (d *Device) SerialNumber() (string, error) {
	if !d.valid() {
		return "", sdl.ErrInvalidHandle
	}
	s, err := backend.HIDSerialNumber(d.d)
	return s, sdl.RemapError(err)
}

func (d *Device) IndexedString(index int) (string, error) {
	if !d.valid() {
		return "", sdl.ErrInvalidHandle
	}
	if index < 0 {
		return "", fmt.Errorf("%w: string index %d", sdl.ErrInvalidArgument, index)
	}
	s, err := backend.HIDIndexedString(d.d, index)
	return s, sdl.RemapError(err)
}

func (d *Device) Info() (DeviceInfo, error) {
	if !d.valid() {
		return DeviceInfo{}, sdl.ErrInvalidHandle
	}
	n, err := backend.HIDDeviceInfoOf(d.d)
	if err != nil {
		return DeviceInfo{}, sdl.RemapError(err)
	}
	return infoFrom(n), nil
}

// ReportDescriptor returns the raw report descriptor.
func (d *Device) ReportDescriptor() ([]byte, error) {
	if !d.valid() {
		return nil, sdl.ErrInvalidHandle
	}
	buf := make([]byte, MaxReportDescriptorSize)
	n, err := backend.HIDReportDescriptor(d.d, buf)
	if err != nil {
		return nil, sdl.RemapError(err)
	}
	return buf[:n], nil
}
