package hid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/backend"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/sdltest"
)

func TestInfoFrom(t *testing.T) {
	got := infoFrom(backend.HIDDeviceInfo{
		Path:         "/dev/hidraw0",
		VendorID:     0x046d,
		ProductID:    0xc52b,
		Manufacturer: "Logitech",
		Product:      "Unifying Receiver",
		BusType:      1,
	})
	assert.Equal(t, "/dev/hidraw0", got.Path)
	assert.Equal(t, uint16(0x046d), got.VendorID)
	assert.Equal(t, "Logitech", got.Manufacturer)
	assert.Equal(t, BusUSB, got.BusType)
	assert.Equal(t, "usb", got.BusType.String())
}

func TestValidation(t *testing.T) {
	_, err := Open(0, 0, "")
	assert.ErrorIs(t, err, sdl.ErrInvalidArgument)
	_, err = OpenPath("")
	assert.ErrorIs(t, err, sdl.ErrInvalidArgument)

	var d *Device
	_, err = d.Write([]byte{0})
	assert.ErrorIs(t, err, sdl.ErrInvalidHandle)
	_, err = d.ReadTimeout(make([]byte, 8), time.Millisecond)
	assert.ErrorIs(t, err, sdl.ErrInvalidHandle)
	_, err = d.ReportDescriptor()
	assert.ErrorIs(t, err, sdl.ErrInvalidHandle)
	assert.NoError(t, d.Close())
}

func TestEnumerateAll(t *testing.T) {
	sdltest.RequireBuilt(t)
	if err := Init(); err != nil {
		sdltest.Skip(t, err)
	}
	defer func() { require.NoError(t, Exit()) }()

	for _, info := range Enumerate(0, 0) {
		assert.NotEmpty(t, info.Path)
	}
	_ = DeviceChangeCount()
}
