//go:build !cgo

package backend

var errUnavailable = ErrCGONotEnabled
