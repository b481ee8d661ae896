//go:build cgo && windows

package backend

var errUnavailable = ErrNotBuilt
