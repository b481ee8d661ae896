package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
)

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print binding and native library versions",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sdl3-go %s (%s)\n", sdl.WrapperVersion(), sdl.BuildCommit)
			native := sdl.NativeVersion()
			if native == (sdl.Version{}) {
				fmt.Fprintln(out, "native: unavailable")
				return nil
			}
			fmt.Fprintf(out, "native: %s %s\n", native, sdl.Revision())
			fmt.Fprintf(out, "platform: %s\n", sdl.GetPlatform())
			return nil
		},
	}
}
