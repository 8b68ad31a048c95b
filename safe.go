package array

import "sync"

// Locked wraps another allocator with a mutex so one storage source can be
// shared across goroutines. Arrays and views themselves stay
// unsynchronized; this only serializes Alloc and Free.
type Locked struct {
	mu  sync.Mutex
	mem Allocator
}

// NewLocked wraps mem in a mutex-guarded allocator.
func NewLocked(mem Allocator) *Locked {
	return &Locked{mem: mem}
}

// Alloc locks and delegates to the wrapped allocator.
func (l *Locked) Alloc(n int) []byte {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.mem.Alloc(n)
}

// Free locks and delegates to the wrapped allocator.
func (l *Locked) Free(buf []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.mem.Free(buf)
}

// Unwrap returns the allocator underneath, for reaching arena-specific
// operations like Reset. Callers must not race those against Alloc/Free.
func (l *Locked) Unwrap() Allocator {
	return l.mem
}
