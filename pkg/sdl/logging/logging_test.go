package logging

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	level string
	msg   string
	args  []any
}

type recorder struct {
	mu      sync.Mutex
	records []record
}

func (r *recorder) add(level, msg string, args []any) {
	r.mu.Lock()
	r.records = append(r.records, record{level: level, msg: msg, args: args})
	r.mu.Unlock()
}

func (r *recorder) Debug(_ context.Context, msg string, args ...any) { r.add("debug", msg, args) }
func (r *recorder) Info(_ context.Context, msg string, args ...any)  { r.add("info", msg, args) }
func (r *recorder) Warn(_ context.Context, msg string, args ...any)  { r.add("warn", msg, args) }
func (r *recorder) Error(_ context.Context, msg string, args ...any) { r.add("error", msg, args) }
func (r *recorder) With(...any) Logger                               { return r }

func TestNewUsesProvidedLogger(t *testing.T) {
	var buf bytes.Buffer
	l := New(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	l.With("subsystem", "joystick").Debug(context.Background(), "opened", "id", 3)

	out := buf.String()
	assert.Contains(t, out, "msg=opened")
	assert.Contains(t, out, "subsystem=joystick")
	assert.Contains(t, out, "id=3")
}

func TestParseLevel(t *testing.T) {
	cases := map[string]charmlog.Level{
		"debug":   charmlog.DebugLevel,
		" INFO ":  charmlog.InfoLevel,
		"warning": charmlog.WarnLevel,
		"Warn":    charmlog.WarnLevel,
		"error":   charmlog.ErrorLevel,
		"":        charmlog.InfoLevel,
		"verbose": charmlog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestDefaultAndSetDefault(t *testing.T) {
	t.Cleanup(func() { SetDefault(nil) })

	require.NotNil(t, Default())
	rec := &recorder{}
	SetDefault(rec)
	assert.Same(t, rec, Default())

	SetDefault(nil)
	assert.NotSame(t, rec, Default())
}

func TestForwardMapsPriorities(t *testing.T) {
	rec := &recorder{}
	forward(rec, CategoryAudio, PriorityVerbose, "v")
	forward(rec, CategoryVideo, PriorityInfo, "i")
	forward(rec, CategoryInput, PriorityWarn, "w")
	forward(rec, CategoryError, PriorityCritical, "c")

	require.Len(t, rec.records, 4)
	assert.Equal(t, []string{"debug", "info", "warn", "error"},
		[]string{rec.records[0].level, rec.records[1].level, rec.records[2].level, rec.records[3].level})
	assert.Equal(t, "audio", rec.records[0].args[1])
	assert.Equal(t, "verbose", rec.records[0].args[3])
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "application", CategoryApplication.String())
	assert.Equal(t, "gpu", CategoryGPU.String())
	assert.Equal(t, "custom+0", CategoryCustom.String())
	assert.Equal(t, "custom+4", (CategoryCustom + 4).String())
	assert.Equal(t, "reserved(12)", Category(12).String())
}

func TestRouteNativeRejectsNil(t *testing.T) {
	assert.Error(t, RouteNative(nil))
}

func TestRedacted(t *testing.T) {
	attr := Redacted("clipboard")
	assert.Equal(t, "clipboard", attr.Key)
	assert.Equal(t, Placeholder(), attr.Value.String())
}
