//go:build !cgo || windows

package backend

func CreateMutex() (Mutex, error) { return nil, errUnavailable }
func LockMutex(Mutex)             {}
func TryLockMutex(Mutex) bool     { return false }
func UnlockMutex(Mutex)           {}
func DestroyMutex(Mutex)          {}

func CreateRWLock() (RWLock, error)       { return nil, errUnavailable }
func LockRWLockForReading(RWLock)         {}
func LockRWLockForWriting(RWLock)         {}
func TryLockRWLockForReading(RWLock) bool { return false }
func TryLockRWLockForWriting(RWLock) bool { return false }
func UnlockRWLock(RWLock)                 {}
func DestroyRWLock(RWLock)                {}

func CreateSemaphore(uint32) (Semaphore, error)  { return nil, errUnavailable }
func WaitSemaphore(Semaphore)                    {}
func TryWaitSemaphore(Semaphore) bool            { return false }
func WaitSemaphoreTimeout(Semaphore, int32) bool { return false }
func SignalSemaphore(Semaphore)                  {}
func GetSemaphoreValue(Semaphore) uint32         { return 0 }
func DestroySemaphore(Semaphore)                 {}

func CreateCondition() (Condition, error)               { return nil, errUnavailable }
func SignalCondition(Condition)                         {}
func BroadcastCondition(Condition)                      {}
func WaitCondition(Condition, Mutex)                    {}
func WaitConditionTimeout(Condition, Mutex, int32) bool { return false }
func DestroyCondition(Condition)                        {}

func NewAtomicInt() (AtomicInt, error)                       { return nil, errUnavailable }
func FreeAtomicInt(AtomicInt)                                {}
func CompareAndSwapAtomicInt(AtomicInt, int, int) bool       { return false }
func SetAtomicInt(AtomicInt, int) int                        { return 0 }
func GetAtomicInt(AtomicInt) int                             { return 0 }
func AddAtomicInt(AtomicInt, int) int                        { return 0 }
func NewAtomicU32() (AtomicU32, error)                       { return nil, errUnavailable }
func FreeAtomicU32(AtomicU32)                                {}
func CompareAndSwapAtomicU32(AtomicU32, uint32, uint32) bool { return false }
func SetAtomicU32(AtomicU32, uint32) uint32                  { return 0 }
func GetAtomicU32(AtomicU32) uint32                          { return 0 }
func NewSpinLock() (SpinLock, error)                         { return nil, errUnavailable }
func FreeSpinLock(SpinLock)                                  {}
func TryLockSpinlock(SpinLock) bool                          { return false }
func LockSpinlock(SpinLock)                                  {}
func UnlockSpinlock(SpinLock)                                {}
func MemoryBarrierRelease()                                  {}
func MemoryBarrierAcquire()                                  {}
