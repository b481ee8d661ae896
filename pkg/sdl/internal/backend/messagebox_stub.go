//go:build !cgo || windows

package backend

func ShowMessageBox(*MessageBoxData) (int, error)               { return 0, errUnavailable }
func ShowSimpleMessageBox(uint32, string, string, Window) error { return errUnavailable }
