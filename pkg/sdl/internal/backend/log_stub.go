//go:build !cgo || windows

package backend

func SetLogOutput(LogFunc)        {}
func SetLogPriorities(int)        {}
func SetLogPriority(int, int)     {}
func GetLogPriority(int) int      { return 0 }
func ResetLogPriorities()         {}
func LogMessage(int, int, string) {}
