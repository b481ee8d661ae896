// Package events reads and writes the native event queue.
//
// Native event records are copied into Go as fixed 128-byte buffers and
// decoded by type tag into the structs of this package. Strings referenced
// by text and drop events are copied while the native record is still alive,
// so decoded events never point into native memory.
//
// Only UserEvent, QuitEvent, Common and CommonEvent can be pushed.
package events
