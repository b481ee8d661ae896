package backend

import "sync"

// handle is an opaque reference to a registered Go value that can be passed
// to C code as userdata.
type handle uintptr

var (
	mu   sync.Mutex
	next handle = 1
	reg         = map[handle]any{}
)

// put registers a Go value and returns a handle that can be passed to C
// code. The handle must be freed with del when no longer needed.
func put(v any) handle {
	mu.Lock()
	defer mu.Unlock()
	h := next
	next++
	reg[h] = v
	return h
}

// get retrieves a registered Go value from its handle.
func get(h handle) (any, bool) {
	if h == 0 {
		return nil, false
	}
	mu.Lock()
	v, ok := reg[h]
	mu.Unlock()
	return v, ok
}

// take retrieves and removes a registered value in one step.
func take(h handle) (any, bool) {
	mu.Lock()
	defer mu.Unlock()
	v, ok := reg[h]
	if ok {
		delete(reg, h)
	}
	return v, ok
}

// del removes a registered Go value from the registry.
func del(h handle) {
	mu.Lock()
	delete(reg, h)
	mu.Unlock()
}

// registered reports the number of live handles.
func registered() int {
	mu.Lock()
	defer mu.Unlock()
	return len(reg)
}
