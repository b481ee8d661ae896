//go:build linux

package logging

import "golang.org/x/sys/unix"

// threadID reports the OS thread the native callback is running on.
func threadID() (int, bool) { return unix.Gettid(), true }
