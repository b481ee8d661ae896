package sdl

import (
	"context"
	"errors"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/backend"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/logging"
)

// Error carries the native error string captured right after a failed call.
type Error = backend.Error

var (
	// ErrNotBuilt reports that the native bindings were not linked into the
	// current binary.
	ErrNotBuilt = backend.ErrNotBuilt

	// ErrCGONotEnabled signals that the package was compiled without cgo.
	ErrCGONotEnabled = backend.ErrCGONotEnabled

	// ErrInvalidHandle is returned for nil, zero or already released handles.
	// Native code is not called in that case.
	ErrInvalidHandle = errors.New("sdl: invalid handle")

	// ErrInvalidArgument is returned when an argument is rejected before it
	// reaches native code.
	ErrInvalidArgument = errors.New("sdl: invalid argument")

	// ErrLibraryClosed is returned by Library.Close when called twice.
	ErrLibraryClosed = errors.New("sdl: library already closed")
)

// RemapError converts backend errors to public API errors and logs native
// failures at debug level. Subpackages route every backend error through it.
func RemapError(err error) error {
	if err == nil {
		return nil
	}
	var nerr *Error
	if errors.As(err, &nerr) {
		logging.Default().Debug(context.Background(), "native call failed", "op", nerr.Op, "error", nerr.Msg)
	}
	return err
}

// GetError returns the calling thread's last native error message. The
// message is per OS thread, so callers pairing it with a failed call should
// wire the goroutine with runtime.LockOSThread first. Errors returned by this
// module already carry the message.
func GetError() string {
	return backend.GetError()
}

// ClearError empties the native error message.
func ClearError() {
	backend.ClearError()
}

// SetError stores msg as the native error message.
func SetError(msg string) {
	backend.SetError(msg)
}
