package array

import "sync"

// Allocator supplies the raw storage behind an Array. Implementations hand
// out byte buffers; the typed element accessors are layered on top by the
// container, so an allocator never needs to know element types.
type Allocator interface {
	// Alloc returns a buffer of exactly n bytes, or nil when n <= 0.
	// Contents are unspecified.
	Alloc(n int) []byte

	// Free returns a buffer previously obtained from Alloc. Passing nil
	// is a no-op. The buffer must not be used afterwards.
	Free(buf []byte)
}

// Heap is the default allocator: plain make, with reclamation left to the
// garbage collector. Its zero value is ready to use.
type Heap struct{}

// Alloc returns a freshly made buffer of n bytes, or nil when n <= 0.
func (Heap) Alloc(n int) []byte {
	if n <= 0 {
		return nil
	}
	return make([]byte, n)
}

// Free drops the buffer. The garbage collector reclaims it once no other
// reference remains.
func (Heap) Free([]byte) {}

// Pool recycles fixed-size buffers through a sync.Pool. Requests larger
// than the pool's buffer size fall through to make and are not recycled.
// Useful when many short-lived arrays churn through similar capacities.
type Pool struct {
	bufSize int
	pool    sync.Pool
}

// NewPool creates a Pool handing out buffers of bufSize bytes.
// If bufSize <= 0, DefaultPoolBufferSize is used.
func NewPool(bufSize int) *Pool {
	if bufSize <= 0 {
		bufSize = DefaultPoolBufferSize
	}
	p := &Pool{bufSize: bufSize}
	p.pool.New = func() any {
		return make([]byte, bufSize)
	}
	return p
}

// DefaultPoolBufferSize is the buffer size for NewPool(0) (16 KiB).
const DefaultPoolBufferSize = 16 * 1024

// Alloc returns an n-byte buffer, recycled from the pool when n fits in a
// pooled buffer. Contents are unspecified.
func (p *Pool) Alloc(n int) []byte {
	if n <= 0 {
		return nil
	}
	if n > p.bufSize {
		return make([]byte, n)
	}
	buf := p.pool.Get().([]byte)
	return buf[:n]
}

// Free returns a pooled buffer for reuse. Oversized buffers that bypassed
// the pool are dropped for the garbage collector.
func (p *Pool) Free(buf []byte) {
	if cap(buf) == p.bufSize {
		p.pool.Put(buf[:cap(buf)])
	}
}

// BufferSize returns the size of the buffers this pool recycles.
func (p *Pool) BufferSize() int {
	return p.bufSize
}
