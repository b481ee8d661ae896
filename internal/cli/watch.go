package cli

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/logging"
)

// HintSetter applies one hint; sdl.SetHint in production.
type HintSetter func(name, value string) error

// WatchHints re-reads the config file each time it changes and applies its
// hints until ctx is done. Editors that replace the file on save are
// handled by watching the parent directory.
func WatchHints(ctx context.Context, v *viper.Viper, set HintSetter, log logging.Logger) error {
	file := v.ConfigFileUsed()
	if file == "" {
		<-ctx.Done()
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(file)); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(file) || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			applied, err := reloadHints(v, set)
			if err != nil {
				log.Warn(ctx, "config reload failed", "file", file, "error", err)
				continue
			}
			log.Info(ctx, "hints reloaded", "file", file, "count", applied)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn(ctx, "config watcher error", "error", err)
		}
	}
}

func reloadHints(v *viper.Viper, set HintSetter) (int, error) {
	cfg, err := LoadConfig(v)
	if err != nil {
		return 0, err
	}
	lib, err := cfg.Library(0)
	if err != nil {
		return 0, err
	}
	for name, value := range lib.Hints {
		if err := set(name, value); err != nil {
			return 0, sdl.RemapError(err)
		}
	}
	return len(lib.Hints), nil
}
