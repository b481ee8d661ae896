//go:build !cgo || windows

package backend

import "unsafe"

func IOFromFile(string, string) (IOStream, error)             { return nil, errUnavailable }
func IOFromMem([]byte) (IOStream, unsafe.Pointer, error)      { return nil, nil, errUnavailable }
func IOFromConstMem([]byte) (IOStream, unsafe.Pointer, error) { return nil, nil, errUnavailable }
func FreeMem(unsafe.Pointer)                                  {}
func IOFromDynamicMem() (IOStream, error)                     { return nil, errUnavailable }
func DynamicMemBytes(IOStream) ([]byte, error)                { return nil, errUnavailable }
func OpenIO(StreamIO) (IOStream, error)                       { return nil, errUnavailable }
func CloseIO(IOStream) error                                  { return errUnavailable }
func GetIOSize(IOStream) (int64, error)                       { return 0, errUnavailable }
func SeekIO(IOStream, int64, int) (int64, error)              { return 0, errUnavailable }
func TellIO(IOStream) (int64, error)                          { return 0, errUnavailable }
func ReadIO(IOStream, []byte) (int, IOStatus, error)          { return 0, IOStatusError, errUnavailable }
func WriteIO(IOStream, []byte) (int, IOStatus, error)         { return 0, IOStatusError, errUnavailable }
func FlushIO(IOStream) error                                  { return errUnavailable }
func GetIOStatus(IOStream) IOStatus                           { return IOStatusError }
func ReadU8(IOStream) (uint8, error)                          { return 0, errUnavailable }
func ReadU16(IOStream, bool) (uint16, error)                  { return 0, errUnavailable }
func ReadU32(IOStream, bool) (uint32, error)                  { return 0, errUnavailable }
func ReadU64(IOStream, bool) (uint64, error)                  { return 0, errUnavailable }
func WriteU8(IOStream, uint8) error                           { return errUnavailable }
func WriteU16(IOStream, uint16, bool) error                   { return errUnavailable }
func WriteU32(IOStream, uint32, bool) error                   { return errUnavailable }
func WriteU64(IOStream, uint64, bool) error                   { return errUnavailable }
func LoadFile(string) ([]byte, error)                         { return nil, errUnavailable }
func LoadFileIO(IOStream, bool) ([]byte, error)               { return nil, errUnavailable }
func SaveFile(string, []byte) error                           { return errUnavailable }
func SaveFileIO(IOStream, []byte, bool) error                 { return errUnavailable }
