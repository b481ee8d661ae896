//go:build !cgo || windows

package backend

func GetBasePath() (string, error)                           { return "", errUnavailable }
func GetPrefPath(string, string) (string, error)             { return "", errUnavailable }
func GetUserFolder(int) (string, error)                      { return "", errUnavailable }
func GetCurrentDirectory() (string, error)                   { return "", errUnavailable }
func CreateDirectory(string) error                           { return errUnavailable }
func EnumerateDirectory(string, EnumerateFunc) error         { return errUnavailable }
func RemovePath(string) error                                { return errUnavailable }
func RenamePath(string, string) error                        { return errUnavailable }
func CopyFile(string, string) error                          { return errUnavailable }
func GetPathInfo(string) (PathInfo, error)                   { return PathInfo{}, errUnavailable }
func GlobDirectory(string, string, uint32) ([]string, error) { return nil, errUnavailable }
