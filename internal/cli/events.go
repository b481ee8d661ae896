package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/events"
)

func newEventsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Work with the native event queue",
	}
	cmd.AddCommand(newEventsWatchCommand(a))
	return cmd
}

func newEventsWatchCommand(a *app) *cobra.Command {
	var (
		count   int
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print events as they arrive; config hint changes are applied live",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			lib, err := a.open(ctx, sdl.InitEvents|sdl.InitJoystick|sdl.InitGamepad)
			if err != nil {
				return err
			}
			defer a.close(ctx, lib)

			go func() {
				if err := WatchHints(ctx, a.v, sdl.SetHint, a.log); err != nil {
					a.log.Warn(ctx, "hint watcher stopped", "error", err)
				}
			}()

			return watchEvents(ctx, cmd.OutOrStdout(), count)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 0, "stop after this many events (0 = unlimited)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "stop after this long (0 = until interrupted)")
	return cmd
}

func watchEvents(ctx context.Context, w io.Writer, count int) error {
	for seen := 0; count == 0 || seen < count; seen++ {
		ev, err := events.Wait(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}
		fmt.Fprintln(w, describeEvent(ev))
		if _, quit := ev.(events.QuitEvent); quit {
			return nil
		}
	}
	return nil
}

// describeEvent renders one event as a single log-style line.
func describeEvent(ev events.Event) string {
	ts := time.Duration(ev.EventTimestamp())
	head := fmt.Sprintf("%12s %-22s", ts.Truncate(time.Microsecond), ev.EventType())
	switch e := ev.(type) {
	case events.KeyboardEvent:
		return fmt.Sprintf("%s key=%q scancode=%q down=%t repeat=%t", head,
			events.KeyName(e.Key), events.ScancodeName(e.Scancode), e.Down, e.Repeat)
	case events.TextInputEvent:
		return fmt.Sprintf("%s text=%q", head, e.Text)
	case events.MouseMotionEvent:
		return fmt.Sprintf("%s x=%.1f y=%.1f dx=%.1f dy=%.1f", head, e.X, e.Y, e.XRel, e.YRel)
	case events.MouseButtonEvent:
		return fmt.Sprintf("%s button=%d down=%t clicks=%d", head, e.Button, e.Down, e.Clicks)
	case events.MouseWheelEvent:
		return fmt.Sprintf("%s x=%.1f y=%.1f", head, e.X, e.Y)
	case events.JoyDeviceEvent:
		return fmt.Sprintf("%s joystick=%d", head, e.Which)
	case events.GamepadDeviceEvent:
		return fmt.Sprintf("%s gamepad=%d", head, e.Which)
	case events.GamepadButtonEvent:
		return fmt.Sprintf("%s gamepad=%d button=%d down=%t", head, e.Which, e.Button, e.Down)
	case events.GamepadAxisEvent:
		return fmt.Sprintf("%s gamepad=%d axis=%d value=%d", head, e.Which, e.Axis, e.Value)
	case events.DropEvent:
		return fmt.Sprintf("%s source=%q data=%q", head, e.Source, e.Data)
	case events.UserEvent:
		return fmt.Sprintf("%s code=%d", head, e.Code)
	default:
		return head
	}
}
