package cli

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/logging"
)

type recordedHints struct {
	mu    sync.Mutex
	hints map[string]string
}

func (r *recordedHints) set(name, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hints[name] = value
	return nil
}

func (r *recordedHints) get(name string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hints[name]
}

func TestReloadHints(t *testing.T) {
	path := writeFile(t, "sdl3-go.toml", "[hints]\nrender_vsync = \"1\"\n")
	rec := &recordedHints{hints: map[string]string{}}
	n, err := reloadHints(newViper(path), rec.set)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "1", rec.get("SDL_RENDER_VSYNC"))
}

func TestWatchHintsAppliesEdits(t *testing.T) {
	path := writeFile(t, "sdl3-go.toml", "[hints]\nrender_vsync = \"0\"\n")
	v := newViper(path)
	_, err := LoadConfig(v)
	require.NoError(t, err)

	rec := &recordedHints{hints: map[string]string{}}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- WatchHints(ctx, v, rec.set, logging.New(nil)) }()

	// The watcher registers asynchronously; keep rewriting until it notices.
	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("[hints]\nrender_vsync = \"1\"\n"), 0o600)
		return rec.get("SDL_RENDER_VSYNC") == "1"
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestWatchHintsWithoutFile(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, WatchHints(ctx, newViper(""), nil, logging.New(nil)))
}
