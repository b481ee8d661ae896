//go:build cgo && !windows

package backend

// C-side glue that installs the exported Go callbacks into SDL. Handles
// travel as uintptr_t and are widened to void* here.

/*
#include <stdint.h>
#include <SDL3/SDL.h>

extern bool sdlgoEventFilter(void *, SDL_Event *);
extern Uint32 sdlgoTimer(void *, SDL_TimerID, Uint32);
extern Uint64 sdlgoTimerNS(void *, SDL_TimerID, Uint64);
extern void sdlgoLogOutput(void *, int, SDL_LogPriority, char *);
extern SDL_EnumerationResult sdlgoEnumerate(void *, char *, char *);

extern Sint64 sdlgoIOSize(void *);
extern Sint64 sdlgoIOSeek(void *, Sint64, SDL_IOWhence);
extern size_t sdlgoIORead(void *, void *, size_t, SDL_IOStatus *);
extern size_t sdlgoIOWrite(void *, void *, size_t, SDL_IOStatus *);
extern bool sdlgoIOFlush(void *, SDL_IOStatus *);
extern bool sdlgoIOClose(void *);

extern bool sdlgoStorageClose(void *);
extern bool sdlgoStorageReady(void *);
extern bool sdlgoStorageEnumerate(void *, char *, void *, void *);
extern bool sdlgoStorageInfo(void *, char *, SDL_PathInfo *);
extern bool sdlgoStorageReadFile(void *, char *, void *, Uint64);
extern bool sdlgoStorageWriteFile(void *, char *, void *, Uint64);
extern bool sdlgoStorageMkdir(void *, char *);
extern bool sdlgoStorageRemove(void *, char *);
extern bool sdlgoStorageRename(void *, char *, char *);
extern bool sdlgoStorageCopy(void *, char *, char *);
extern Uint64 sdlgoStorageSpaceRemaining(void *);

SDL_EnumerationResult sdlgo_call_enumerate(void *cb, void *userdata, const char *dirname, const char *fname) {
	return ((SDL_EnumerateDirectoryCallback)cb)(userdata, dirname, fname);
}

static bool sdlgo_add_event_watch(uintptr_t h) {
	return SDL_AddEventWatch((SDL_EventFilter)sdlgoEventFilter, (void *)h);
}

static void sdlgo_remove_event_watch(uintptr_t h) {
	SDL_RemoveEventWatch((SDL_EventFilter)sdlgoEventFilter, (void *)h);
}

static void sdlgo_set_event_filter(uintptr_t h) {
	if (h == 0) {
		SDL_SetEventFilter(NULL, NULL);
		return;
	}
	SDL_SetEventFilter((SDL_EventFilter)sdlgoEventFilter, (void *)h);
}

static void sdlgo_filter_events(uintptr_t h) {
	SDL_FilterEvents((SDL_EventFilter)sdlgoEventFilter, (void *)h);
}

static SDL_TimerID sdlgo_add_timer(Uint32 interval, uintptr_t h) {
	return SDL_AddTimer(interval, (SDL_TimerCallback)sdlgoTimer, (void *)h);
}

static SDL_TimerID sdlgo_add_timer_ns(Uint64 interval, uintptr_t h) {
	return SDL_AddTimerNS(interval, (SDL_NSTimerCallback)sdlgoTimerNS, (void *)h);
}

static void sdlgo_set_log_output(uintptr_t h) {
	if (h == 0) {
		SDL_SetLogOutputFunction(SDL_GetDefaultLogOutputFunction(), NULL);
		return;
	}
	SDL_SetLogOutputFunction((SDL_LogOutputFunction)sdlgoLogOutput, (void *)h);
}

static bool sdlgo_enumerate_directory(const char *path, uintptr_t h) {
	return SDL_EnumerateDirectory(path, (SDL_EnumerateDirectoryCallback)sdlgoEnumerate, (void *)h);
}

static bool sdlgo_enumerate_storage_directory(SDL_Storage *storage, const char *path, uintptr_t h) {
	return SDL_EnumerateStorageDirectory(storage, path, (SDL_EnumerateDirectoryCallback)sdlgoEnumerate, (void *)h);
}

static SDL_IOStream *sdlgo_open_io(uintptr_t h) {
	SDL_IOStreamInterface iface;
	SDL_INIT_INTERFACE(&iface);
	iface.size = (Sint64 (SDLCALL *)(void *))sdlgoIOSize;
	iface.seek = (Sint64 (SDLCALL *)(void *, Sint64, SDL_IOWhence))sdlgoIOSeek;
	iface.read = (size_t (SDLCALL *)(void *, void *, size_t, SDL_IOStatus *))sdlgoIORead;
	iface.write = (size_t (SDLCALL *)(void *, const void *, size_t, SDL_IOStatus *))sdlgoIOWrite;
	iface.flush = (bool (SDLCALL *)(void *, SDL_IOStatus *))sdlgoIOFlush;
	iface.close = (bool (SDLCALL *)(void *))sdlgoIOClose;
	return SDL_OpenIO(&iface, (void *)h);
}

static SDL_Storage *sdlgo_open_storage(uintptr_t h) {
	SDL_StorageInterface iface;
	SDL_INIT_INTERFACE(&iface);
	iface.close = (bool (SDLCALL *)(void *))sdlgoStorageClose;
	iface.ready = (bool (SDLCALL *)(void *))sdlgoStorageReady;
	iface.enumerate = (bool (SDLCALL *)(void *, const char *, SDL_EnumerateDirectoryCallback, void *))sdlgoStorageEnumerate;
	iface.info = (bool (SDLCALL *)(void *, const char *, SDL_PathInfo *))sdlgoStorageInfo;
	iface.read_file = (bool (SDLCALL *)(void *, const char *, void *, Uint64))sdlgoStorageReadFile;
	iface.write_file = (bool (SDLCALL *)(void *, const char *, const void *, Uint64))sdlgoStorageWriteFile;
	iface.mkdir = (bool (SDLCALL *)(void *, const char *))sdlgoStorageMkdir;
	iface.remove = (bool (SDLCALL *)(void *, const char *))sdlgoStorageRemove;
	iface.rename = (bool (SDLCALL *)(void *, const char *, const char *))sdlgoStorageRename;
	iface.copy = (bool (SDLCALL *)(void *, const char *, const char *))sdlgoStorageCopy;
	iface.space_remaining = (Uint64 (SDLCALL *)(void *))sdlgoStorageSpaceRemaining;
	return SDL_OpenStorage(&iface, (void *)h);
}
*/
import "C"

func addEventWatch(h handle) bool {
	return bool(C.sdlgo_add_event_watch(C.uintptr_t(h)))
}

func removeEventWatch(h handle) {
	C.sdlgo_remove_event_watch(C.uintptr_t(h))
}

func setEventFilter(h handle) {
	C.sdlgo_set_event_filter(C.uintptr_t(h))
}

func filterEvents(h handle) {
	C.sdlgo_filter_events(C.uintptr_t(h))
}

func addTimer(interval uint32, h handle) uint32 {
	return uint32(C.sdlgo_add_timer(C.Uint32(interval), C.uintptr_t(h)))
}

func addTimerNS(interval uint64, h handle) uint32 {
	return uint32(C.sdlgo_add_timer_ns(C.Uint64(interval), C.uintptr_t(h)))
}

func setLogOutput(h handle) {
	C.sdlgo_set_log_output(C.uintptr_t(h))
}

func enumerateDirectory(path *C.char, h handle) bool {
	return bool(C.sdlgo_enumerate_directory(path, C.uintptr_t(h)))
}

func enumerateStorageDirectory(s *C.SDL_Storage, path *C.char, h handle) bool {
	return bool(C.sdlgo_enumerate_storage_directory(s, path, C.uintptr_t(h)))
}

func openIO(h handle) *C.SDL_IOStream {
	return C.sdlgo_open_io(C.uintptr_t(h))
}

func openStorage(h handle) *C.SDL_Storage {
	return C.sdlgo_open_storage(C.uintptr_t(h))
}
