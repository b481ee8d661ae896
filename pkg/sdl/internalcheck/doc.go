// Package internalcheck holds static tests that keep the binding layout
// honest: only the backend package talks to cgo, every cgo file has a stub
// twin, and library code never prints directly.
//
// It has no exported API and is not meant to be imported.
package internalcheck
