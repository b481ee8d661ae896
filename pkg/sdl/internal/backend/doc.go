// Package backend hosts the thin cgo layer that links the Go API to the
// native SDL3 library. It is the only package in the module that imports "C".
// Every cgo file is built with `cgo && !windows`; its twin stub file returns
// ErrNotBuilt so the rest of the repository compiles without a C toolchain.
//
// Native handles are carried as named unsafe.Pointer types. Go values that
// native code calls back into (timers, event watches, log output, custom I/O
// and storage, async I/O requests) are registered in a handle table and only
// the integer handle crosses the boundary.
package backend
