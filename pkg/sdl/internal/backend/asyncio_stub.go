//go:build !cgo || windows

package backend

func AsyncIOFromFile(string, string) (AsyncIO, error)                    { return nil, errUnavailable }
func GetAsyncIOSize(AsyncIO) (int64, error)                              { return 0, errUnavailable }
func ReadAsyncIO(AsyncIO, uint64, uint64, AsyncIOQueue) (uintptr, error) { return 0, errUnavailable }
func WriteAsyncIO(AsyncIO, uint64, []byte, AsyncIOQueue) (uintptr, error) {
	return 0, errUnavailable
}
func CloseAsyncIO(AsyncIO, bool, AsyncIOQueue) (uintptr, error)  { return 0, errUnavailable }
func LoadFileAsync(string, AsyncIOQueue) (uintptr, error)        { return 0, errUnavailable }
func CreateAsyncIOQueue() (AsyncIOQueue, error)                  { return nil, errUnavailable }
func DestroyAsyncIOQueue(AsyncIOQueue)                           {}
func SignalAsyncIOQueue(AsyncIOQueue)                            {}
func GetAsyncIOResult(AsyncIOQueue) (AsyncOutcome, bool)         { return AsyncOutcome{}, false }
func WaitAsyncIOResult(AsyncIOQueue, int32) (AsyncOutcome, bool) { return AsyncOutcome{}, false }
