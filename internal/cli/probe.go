package cli

import (
	"time"

	"github.com/spf13/cobra"
)

func newProbeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Generate synthetic input and report what the library observes",
	}
	var opts probeOptions
	input := &cobra.Command{
		Use:   "input",
		Short: "Create a virtual mouse, drive it and list the events it produced",
		RunE: func(cmd *cobra.Command, args []string) error {
			return probeInput(cmd, a, opts)
		},
	}
	input.Flags().StringVar(&opts.device, "uinput", "/dev/uinput", "uinput device node")
	input.Flags().DurationVar(&opts.settle, "settle", 500*time.Millisecond, "time to let the new device register")
	input.Flags().DurationVar(&opts.window, "window", 2*time.Second, "how long to collect events")
	cmd.AddCommand(input)
	return cmd
}

type probeOptions struct {
	device string
	settle time.Duration
	window time.Duration
}
