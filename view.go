package array

import "unsafe"

// View exposes one field inside each record of an interleaved buffer as a
// flat sequence of T. Element i lives at base + i*stride + offset. A view
// never owns memory: it allocates nothing, frees nothing, and dangles if
// the buffer it points at is freed or reallocated (for example by a
// source array growing). Views are plain values and cheap to copy.
//
// The view trusts its geometry. Beyond the element count it performs no
// bounds validation against the real extent of the underlying buffer;
// the caller guarantees that all count strided elements fit.
type View[T any] struct {
	data   unsafe.Pointer
	count  int
	stride uintptr
	offset uintptr
}

// NewView builds a view from raw geometry: a base pointer, an element
// count, the byte distance between consecutive records, and the byte
// offset of the T field within each record.
func NewView[T any](base unsafe.Pointer, count int, stride, offset uintptr) View[T] {
	check(count >= 0, "negative view count")
	check(base != nil || count == 0, "nil base with nonzero count")
	return View[T]{data: base, count: count, stride: stride, offset: offset}
}

// ViewOf builds a view over a slice of records, exposing the T field at
// fieldOffset bytes into each record. Compute the offset with
// unsafe.Offsetof:
//
//	ys := array.ViewOf[float32](vertices, unsafe.Offsetof(vec3{}.Y))
func ViewOf[T any, D any](records []D, fieldOffset uintptr) View[T] {
	var base unsafe.Pointer
	if len(records) > 0 {
		base = unsafe.Pointer(&records[0])
	}
	var rec D
	return NewView[T](base, len(records), unsafe.Sizeof(rec), fieldOffset)
}

// ViewOfArray builds a view over the valid elements of an array of
// records. The view borrows the array's buffer: it dangles as soon as the
// array grows, resizes or is freed.
func ViewOfArray[T any, D any](a *Array[D], fieldOffset uintptr) View[T] {
	var base unsafe.Pointer
	if len(a.data) > 0 {
		base = unsafe.Pointer(&a.data[0])
	}
	var rec D
	return NewView[T](base, a.count, unsafe.Sizeof(rec), fieldOffset)
}

// Len returns the number of elements reachable through the view.
func (v View[T]) Len() int { return v.count }

// Stride returns the byte distance between consecutive records.
func (v View[T]) Stride() uintptr { return v.stride }

// Offset returns the byte offset of the viewed field within each record.
func (v View[T]) Offset() uintptr { return v.offset }

// Get returns element i. Precondition: 0 <= i < Len().
func (v View[T]) Get(i int) T {
	check(uint(i) < uint(v.count), "view index out of range")
	return *v.ptr(i)
}

// Set overwrites element i in the underlying records.
// Precondition: 0 <= i < Len().
func (v View[T]) Set(i int, val T) {
	check(uint(i) < uint(v.count), "view index out of range")
	*v.ptr(i) = val
}

// Ptr returns a pointer to element i inside its record.
// Precondition: 0 <= i < Len().
func (v View[T]) Ptr(i int) *T {
	check(uint(i) < uint(v.count), "view index out of range")
	return v.ptr(i)
}

// Last returns the final element. Precondition: Len() > 0.
func (v View[T]) Last() T {
	check(v.count > 0, "last of empty view")
	return *v.ptr(v.count - 1)
}

// Each calls fn on every element in index order. Mutations through the
// pointer land in the underlying records.
func (v View[T]) Each(fn func(*T)) {
	for i := 0; i < v.count; i++ {
		fn(v.ptr(i))
	}
}

// Deinterlace copies the scattered elements into a new tightly packed
// array on the heap allocator. See DeinterlaceIn.
func (v View[T]) Deinterlace() Array[T] {
	return v.DeinterlaceIn(nil)
}

// DeinterlaceIn copies the scattered elements, in order, into a new
// tightly packed array allocated from mem (nil selects the heap
// allocator). The result is independent of the source records and carries
// its own Free obligation. This is the one-time-cost escape hatch when
// strided access becomes a bottleneck: pay one pass, get a contiguous
// buffer fit for sequential processing.
func (v View[T]) DeinterlaceIn(mem Allocator) Array[T] {
	out := NewIn[T](mem)
	out.Resize(v.count)
	out.count = v.count
	for i := 0; i < v.count; i++ {
		*out.ptr(i) = *v.ptr(i)
	}
	return out
}

func (v View[T]) ptr(i int) *T {
	return (*T)(unsafe.Add(v.data, uintptr(i)*v.stride+v.offset))
}
