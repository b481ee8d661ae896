package logging

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"sync"

	charmlog "github.com/charmbracelet/log"
)

const redactedPlaceholder = "[redacted]"

// EnvLevel names the environment variable read by Default.
const EnvLevel = "SDL3GO_LOG_LEVEL"

// Logger defines the subset of slog functionality used by the bindings.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

// New returns a Logger backed by the provided slog.Logger. Passing nil binds to
// slog.Default().
func New(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogLogger{logger: logger}
}

type slogLogger struct {
	logger *slog.Logger
}

func (l *slogLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.logger.DebugContext(ctx, msg, args...)
}

func (l *slogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logger.InfoContext(ctx, msg, args...)
}

func (l *slogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logger.WarnContext(ctx, msg, args...)
}

func (l *slogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logger.ErrorContext(ctx, msg, args...)
}

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{logger: l.logger.With(args...)}
}

var (
	defaultMu     sync.RWMutex
	defaultLogger Logger
)

// Default returns the process-wide Logger. Until SetDefault is called it is a
// charmbracelet/log handler on stderr at the level named by SDL3GO_LOG_LEVEL.
func Default() Logger {
	defaultMu.RLock()
	l := defaultLogger
	defaultMu.RUnlock()
	if l != nil {
		return l
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = New(slog.New(NewHandler(os.Getenv(EnvLevel))))
	}
	return defaultLogger
}

// SetDefault replaces the process-wide Logger. Passing nil reverts to the
// environment-configured handler on the next call to Default.
func SetDefault(l Logger) {
	defaultMu.Lock()
	defaultLogger = l
	defaultMu.Unlock()
}

// NewHandler returns a charmbracelet/log slog.Handler writing to stderr.
// Unknown or empty level names fall back to info.
func NewHandler(level string) slog.Handler {
	h := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		Prefix:          "sdl",
		ReportTimestamp: true,
	})
	h.SetLevel(ParseLevel(level))
	return h
}

// ParseLevel maps debug, info, warn/warning and error (any case) onto a
// charmbracelet/log level.
func ParseLevel(s string) charmlog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return charmlog.DebugLevel
	case "WARN", "WARNING":
		return charmlog.WarnLevel
	case "ERROR":
		return charmlog.ErrorLevel
	default:
		return charmlog.InfoLevel
	}
}

// Redacted marks an attribute whose value was intentionally left out.
func Redacted(key string) slog.Attr {
	return slog.String(key, redactedPlaceholder)
}

// Placeholder returns the canonical string that represents a redacted value.
func Placeholder() string {
	return redactedPlaceholder
}
