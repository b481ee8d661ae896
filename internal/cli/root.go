// Package cli implements the sdl3-go diagnostic command.
package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/logging"
)

// app carries state shared by subcommands once the root has loaded the
// configuration.
type app struct {
	configPath string
	v          *viper.Viper
	cfg        Config
	log        logging.Logger
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "sdl3-go",
		Short:         "Inspect SDL3 devices, events and storage from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}
	root.Version = sdl.WrapperVersion()
	root.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s\n" .Version}}`)

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "config file (TOML or YAML)")
	flags.String("log-level", DefaultConfig.Log.Level, "log level: debug, info, warn, error")
	flags.StringP("format", "o", DefaultConfig.Format, "output format: table, json, yaml, toml")
	flags.StringSlice("subsystems", DefaultConfig.Subsystems, "extra subsystems to initialise")

	root.AddCommand(
		newVersionCommand(a),
		newDevicesCommand(a),
		newEventsCommand(a),
		newStorageCommand(a),
		newProbeCommand(a),
	)
	return root
}

func (a *app) load(cmd *cobra.Command) error {
	a.v = newViper(a.configPath)
	flags := cmd.Flags()
	for key, flag := range map[string]string{
		"log.level":  "log-level",
		"format":     "format",
		"subsystems": "subsystems",
	} {
		if f := flags.Lookup(flag); f != nil {
			if err := a.v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}
	cfg, err := LoadConfig(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logging.New(slog.New(logging.NewHandler(cfg.Log.Level)))
	logging.SetDefault(a.log)
	return nil
}

// open initialises the library with the configured subsystems plus extra.
func (a *app) open(ctx context.Context, extra sdl.InitFlags) (*sdl.Library, error) {
	lc, err := a.cfg.Library(extra)
	if err != nil {
		return nil, err
	}
	if a.cfg.Log.Native {
		lc.Logger = a.log
	}
	lib, err := sdl.Open(lc)
	if err != nil {
		return nil, err
	}
	a.log.Debug(ctx, "library open", "subsystems", lc.Flags.String(), "native", sdl.NativeVersion().String())
	return lib, nil
}

func (a *app) close(ctx context.Context, lib *sdl.Library) {
	if err := lib.Close(); err != nil {
		a.log.Warn(ctx, "close library", "error", err)
	}
}
