//go:build linux

package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/ThomasT75/uinput"
	"github.com/spf13/cobra"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/events"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/hid"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/video"
)

const probeDeviceName = "sdl3-go probe mouse"

func probeInput(cmd *cobra.Command, a *app, opts probeOptions) error {
	ctx := cmd.Context()
	lib, err := a.open(ctx, sdl.InitEvents|sdl.InitVideo)
	if err != nil {
		return err
	}
	defer a.close(ctx, lib)

	before := hid.DeviceChangeCount()
	mouse, err := uinput.CreateMouse(opts.device, []byte(probeDeviceName))
	if err != nil {
		return fmt.Errorf("create virtual mouse on %s: %w", opts.device, err)
	}
	defer mouse.Close()
	a.log.Info(ctx, "virtual mouse created", "device", opts.device, "name", probeDeviceName)

	time.Sleep(opts.settle)
	events.Flush(events.MouseMotion)

	steps := []func() error{
		func() error { return mouse.Move(10, 0) },
		func() error { return mouse.Move(0, 10) },
		mouse.LeftPress,
		mouse.LeftRelease,
		func() error { return mouse.Wheel(false, 1) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return fmt.Errorf("drive virtual mouse: %w", err)
		}
		time.Sleep(20 * time.Millisecond)
	}

	wctx, cancel := context.WithTimeout(ctx, opts.window)
	defer cancel()
	out := cmd.OutOrStdout()
	seen := 0
	for {
		ev, err := events.Wait(wctx)
		if err != nil {
			break
		}
		switch ev.EventType() {
		case events.MouseAdded, events.MouseMotion, events.MouseButtonDown, events.MouseButtonUp, events.MouseWheel:
			fmt.Fprintln(out, describeEvent(ev))
			seen++
		}
	}

	fmt.Fprintf(out, "mouse events observed: %d\n", seen)
	fmt.Fprintf(out, "hid device changes: %d\n", hid.DeviceChangeCount()-before)
	if seen == 0 {
		a.log.Warn(ctx, "no mouse events observed", "video_driver", video.CurrentDriver())
	}
	return nil
}
