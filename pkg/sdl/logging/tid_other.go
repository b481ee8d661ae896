//go:build !linux

package logging

func threadID() (int, bool) { return 0, false }
