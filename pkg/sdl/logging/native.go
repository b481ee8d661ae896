package logging

import (
	"context"
	"fmt"
	"sync"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/backend"
)

// Category mirrors SDL_LogCategory.
type Category int

const (
	CategoryApplication Category = iota
	CategoryError
	CategoryAssert
	CategorySystem
	CategoryAudio
	CategoryVideo
	CategoryRender
	CategoryInput
	CategoryTest
	CategoryGPU
	CategoryCustom Category = 19
)

var categoryNames = map[Category]string{
	CategoryApplication: "application",
	CategoryError:       "error",
	CategoryAssert:      "assert",
	CategorySystem:      "system",
	CategoryAudio:       "audio",
	CategoryVideo:       "video",
	CategoryRender:      "render",
	CategoryInput:       "input",
	CategoryTest:        "test",
	CategoryGPU:         "gpu",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	if c >= CategoryCustom {
		return fmt.Sprintf("custom+%d", int(c-CategoryCustom))
	}
	return fmt.Sprintf("reserved(%d)", int(c))
}

// Priority mirrors SDL_LogPriority.
type Priority int

const (
	PriorityInvalid Priority = iota
	PriorityTrace
	PriorityVerbose
	PriorityDebug
	PriorityInfo
	PriorityWarn
	PriorityError
	PriorityCritical
)

func (p Priority) String() string {
	switch p {
	case PriorityTrace:
		return "trace"
	case PriorityVerbose:
		return "verbose"
	case PriorityDebug:
		return "debug"
	case PriorityInfo:
		return "info"
	case PriorityWarn:
		return "warn"
	case PriorityError:
		return "error"
	case PriorityCritical:
		return "critical"
	default:
		return "invalid"
	}
}

var (
	routeMu sync.Mutex
	routed  bool
)

// RouteNative forwards every native log line to l. Calling it again replaces
// the previous destination.
func RouteNative(l Logger) error {
	if l == nil {
		return fmt.Errorf("logging: nil logger")
	}
	routeMu.Lock()
	defer routeMu.Unlock()

	backend.SetLogOutput(func(category, priority int, message string) {
		forward(l, Category(category), Priority(priority), message)
	})
	routed = true
	return nil
}

// RestoreNative reinstalls the native default output.
func RestoreNative() {
	routeMu.Lock()
	defer routeMu.Unlock()
	if !routed {
		return
	}
	backend.SetLogOutput(nil)
	routed = false
}

func forward(l Logger, category Category, priority Priority, message string) {
	ctx := context.Background()
	args := []any{"category", category.String(), "priority", priority.String()}
	if tid, ok := threadID(); ok {
		args = append(args, "tid", tid)
	}
	switch {
	case priority >= PriorityError:
		l.Error(ctx, message, args...)
	case priority == PriorityWarn:
		l.Warn(ctx, message, args...)
	case priority == PriorityInfo:
		l.Info(ctx, message, args...)
	default:
		l.Debug(ctx, message, args...)
	}
}

func SetPriorities(p Priority)                   { backend.SetLogPriorities(int(p)) }
func SetPriority(c Category, p Priority)         { backend.SetLogPriority(int(c), int(p)) }
func GetPriority(c Category) Priority            { return Priority(backend.GetLogPriority(int(c))) }
func ResetPriorities()                           { backend.ResetLogPriorities() }
func Message(c Category, p Priority, msg string) { backend.LogMessage(int(c), int(p), msg) }
