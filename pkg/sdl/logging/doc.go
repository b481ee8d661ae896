// Package logging provides the logging facade used across the SDL bindings.
//
// The Logger interface wraps the context-aware subset of log/slog so that
// applications can plug in their own implementation. When nothing is
// configured the package logs through github.com/charmbracelet/log to
// stderr; SDL3GO_LOG_LEVEL (debug, info, warn, error) selects the level.
//
//	logger := logging.New(nil) // slog.Default()
//	logger.Info(ctx, "opened joystick", "id", id)
//
// # Native log passthrough
//
// RouteNative installs a native log output callback so every line emitted
// by SDL_Log and friends is forwarded to a Logger, tagged with its category
// and priority:
//
//	if err := logging.RouteNative(logging.Default()); err != nil {
//	    return err
//	}
//	defer logging.RestoreNative()
//
// SetPriority, SetPriorities, GetPriority and ResetPriorities control which
// native lines are produced in the first place.
package logging
