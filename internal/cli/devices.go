package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/audio"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/camera"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/gamepad"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/haptic"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/hid"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/joystick"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/sensor"
)

const deviceSubsystems = sdl.InitJoystick | sdl.InitGamepad | sdl.InitSensor |
	sdl.InitHaptic | sdl.InitAudio | sdl.InitCamera

func newDevicesCommand(a *app) *cobra.Command {
	var withHID bool
	cmd := &cobra.Command{
		Use:   "devices",
		Short: "List input, audio, camera and HID devices",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			lib, err := a.open(ctx, deviceSubsystems)
			if err != nil {
				return err
			}
			defer a.close(ctx, lib)

			devices := collectDevices(ctx, a)
			if withHID {
				devices = append(devices, hidDevices(ctx, a)...)
			}
			return Render(cmd.OutOrStdout(), a.cfg.Format, devices)
		},
	}
	cmd.Flags().BoolVar(&withHID, "hid", false, "include raw HID interfaces")
	return cmd
}

func collectDevices(ctx context.Context, a *app) []Device {
	var out []Device
	warn := func(kind string, err error) {
		a.log.Warn(ctx, "enumerate devices", "kind", kind, "error", err)
	}

	if ids, err := joystick.IDs(); err != nil {
		warn("joystick", err)
	} else {
		for _, id := range ids {
			name, _ := joystick.NameForID(id)
			kind := "joystick"
			detail := joystick.TypeForID(id).String()
			if gamepad.IsGamepad(id) {
				kind = "gamepad"
				detail = gamepad.TypeForID(id).String()
			}
			out = append(out, Device{Kind: kind, ID: strconv.FormatUint(uint64(id), 10), Name: name,
				Detail: fmt.Sprintf("%s guid=%s", detail, joystick.GUIDForID(id))})
		}
	}

	if ids, err := sensor.IDs(); err != nil {
		warn("sensor", err)
	} else {
		for _, id := range ids {
			name, _ := sensor.NameForID(id)
			out = append(out, Device{Kind: "sensor", ID: strconv.FormatUint(uint64(id), 10), Name: name,
				Detail: sensor.TypeForID(id).String()})
		}
	}

	if ids, err := haptic.IDs(); err != nil {
		warn("haptic", err)
	} else {
		for _, id := range ids {
			name, _ := haptic.NameForID(id)
			out = append(out, Device{Kind: "haptic", ID: strconv.FormatUint(uint64(id), 10), Name: name})
		}
	}

	for _, list := range []struct {
		kind string
		fn   func() ([]audio.DeviceID, error)
	}{
		{"playback", audio.PlaybackDevices},
		{"recording", audio.RecordingDevices},
	} {
		ids, err := list.fn()
		if err != nil {
			warn(list.kind, err)
			continue
		}
		for _, id := range ids {
			name, _ := audio.DeviceName(id)
			d := Device{Kind: list.kind, ID: strconv.FormatUint(uint64(id), 10), Name: name}
			if spec, frames, err := audio.DeviceFormat(id); err == nil {
				d.Detail = fmt.Sprintf("%s %dch %dHz %d frames", spec.Format, spec.Channels, spec.Freq, frames)
			}
			out = append(out, d)
		}
	}

	if ids, err := camera.IDs(); err != nil {
		warn("camera", err)
	} else {
		for _, id := range ids {
			name, _ := camera.Name(id)
			out = append(out, Device{Kind: "camera", ID: strconv.FormatUint(uint64(id), 10), Name: name,
				Detail: camera.PositionOf(id).String()})
		}
	}
	return out
}

func hidDevices(ctx context.Context, a *app) []Device {
	if err := hid.Init(); err != nil {
		a.log.Warn(ctx, "hid init", "error", err)
		return nil
	}
	defer func() {
		if err := hid.Exit(); err != nil {
			a.log.Warn(ctx, "hid exit", "error", err)
		}
	}()
	var out []Device
	for _, info := range hid.Enumerate(0, 0) {
		out = append(out, Device{
			Kind:   "hid",
			ID:     fmt.Sprintf("%04x:%04x", info.VendorID, info.ProductID),
			Name:   info.Product,
			Detail: fmt.Sprintf("%s %s", info.BusType, info.Path),
		})
	}
	return out
}
