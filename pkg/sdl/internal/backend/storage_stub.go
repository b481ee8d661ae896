//go:build !cgo || windows

package backend

func OpenTitleStorage(string, uint32) (Storage, error)               { return nil, errUnavailable }
func OpenUserStorage(string, string, uint32) (Storage, error)        { return nil, errUnavailable }
func OpenFileStorage(string) (Storage, error)                        { return nil, errUnavailable }
func OpenStorage(StorageIO) (Storage, error)                         { return nil, errUnavailable }
func CloseStorage(Storage) error                                     { return errUnavailable }
func StorageReady(Storage) bool                                      { return false }
func GetStorageFileSize(Storage, string) (uint64, error)             { return 0, errUnavailable }
func ReadStorageFile(Storage, string, []byte) error                  { return errUnavailable }
func WriteStorageFile(Storage, string, []byte) error                 { return errUnavailable }
func CreateStorageDirectory(Storage, string) error                   { return errUnavailable }
func EnumerateStorageDirectory(Storage, string, EnumerateFunc) error { return errUnavailable }
func RemoveStoragePath(Storage, string) error                        { return errUnavailable }
func RenameStoragePath(Storage, string, string) error                { return errUnavailable }
func CopyStorageFile(Storage, string, string) error                  { return errUnavailable }
func GetStoragePathInfo(Storage, string) (PathInfo, error)           { return PathInfo{}, errUnavailable }
func GetStorageSpaceRemaining(Storage) uint64                        { return 0 }
func GlobStorageDirectory(Storage, string, string, uint32) ([]string, error) {
	return nil, errUnavailable
}
