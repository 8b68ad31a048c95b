package array

import "unsafe"

// DefaultChunkSize is the default arena chunk size (64 KiB).
const DefaultChunkSize = 1 << 16

// chunk is a single slab of arena memory.
type chunk struct {
	buf    []byte  // backing memory
	offset uintptr // bump position within buf
}

// Arena is a chunked bump allocator that backs arrays created with NewIn.
// Individual Free calls are no-ops; storage is reclaimed in bulk with Reset
// or Release. That trade-off suits batch workloads: build a set of arrays,
// process them, reset once. Not goroutine-safe; wrap with NewLocked to
// share one arena across goroutines.
type Arena struct {
	chunks    []chunk
	chunkSize int
	current   *chunk
}

// NewArena creates an arena that allocates in chunks of chunkSize bytes.
// If chunkSize <= 0, DefaultChunkSize is used.
func NewArena(chunkSize int) *Arena {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	a := &Arena{chunkSize: chunkSize}
	a.grow(chunkSize)
	return a
}

// Alloc bumps out an n-byte buffer from the current chunk, starting a new
// chunk when it does not fit. Returns nil when n <= 0. Contents are
// unspecified: a Reset recycles chunk memory without zeroing it.
func (a *Arena) Alloc(n int) []byte {
	if n <= 0 {
		return nil
	}
	if c := a.current; c != nil {
		off := alignUp(c.offset)
		if off+uintptr(n) <= uintptr(len(c.buf)) {
			c.offset = off + uintptr(n)
			return unsafe.Slice(&c.buf[off], n)
		}
	}
	return a.allocSlow(n)
}

// allocSlow starts a fresh chunk once the current one is exhausted.
func (a *Arena) allocSlow(n int) []byte {
	if a.chunks == nil {
		panic("array: arena used after Release")
	}
	a.grow(n)
	c := a.current
	c.offset = uintptr(n)
	return unsafe.Slice(&c.buf[0], n)
}

// Free is a no-op: arena storage is reclaimed in bulk by Reset or Release.
// Buffers handed back here remain valid until then.
func (a *Arena) Free([]byte) {}

// Reserve makes sure the current chunk has room for n more bytes, growing
// the arena if it does not. Useful before a burst of array resizes.
func (a *Arena) Reserve(n int) {
	if a.chunks == nil {
		panic("array: arena used after Release")
	}
	c := a.current
	if c == nil || alignUp(c.offset)+uintptr(n) > uintptr(len(c.buf)) {
		a.grow(n)
	}
}

// Reset rewinds every chunk to empty, keeping the memory for reuse. All
// buffers previously handed out become invalid; arrays backed by this
// arena must be considered freed.
func (a *Arena) Reset() {
	if a.chunks == nil {
		panic("array: arena used after Release")
	}
	for i := range a.chunks {
		a.chunks[i].offset = 0
	}
	a.current = &a.chunks[0]
}

// Release drops all chunks and makes the arena unusable. Any later
// operation panics.
func (a *Arena) Release() {
	a.chunks = nil
	a.current = nil
}

// grow appends a chunk of at least min bytes and makes it current.
func (a *Arena) grow(min int) {
	size := a.chunkSize
	if min > size {
		size = min
	}
	a.chunks = append(a.chunks, chunk{buf: make([]byte, size)})
	a.current = &a.chunks[len(a.chunks)-1]
}

// alignUp rounds off up to pointer-size alignment, so elements stored at
// the start of a buffer are aligned for any plain-old-data type.
func alignUp(off uintptr) uintptr {
	const align = unsafe.Sizeof(uintptr(0))
	return (off + align - 1) &^ (align - 1)
}
