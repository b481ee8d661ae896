package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/events"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "sdl3-go "+sdl.WrapperVersion())
	assert.Contains(t, out, "native:")
}

func TestCommandTree(t *testing.T) {
	root := NewRootCommand()
	for _, path := range [][]string{
		{"devices"},
		{"events", "watch"},
		{"storage", "ls"},
		{"storage", "cat"},
		{"probe", "input"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestStorageRequiresSource(t *testing.T) {
	var sf storageFlags
	_, err := sf.open(t.Context())
	assert.ErrorContains(t, err, "--user")
}

func TestDescribeEvent(t *testing.T) {
	line := describeEvent(events.GamepadButtonEvent{
		Common: events.Common{Type: events.GamepadButtonDown, Timestamp: 1500},
		Which:  4, Button: 2, Down: true,
	})
	assert.Contains(t, line, "gamepad=4 button=2 down=true")
	assert.Contains(t, line, events.GamepadButtonDown.String())

	assert.Contains(t, describeEvent(events.UserEvent{Common: events.Common{Type: events.User}, Code: 9}), "code=9")
}
