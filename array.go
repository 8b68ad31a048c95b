package array

import "unsafe"

// Array is a growable, contiguous sequence of plain-old-data elements.
// It owns its buffer exclusively and must be released with Free; nothing
// frees it automatically. The zero value is a valid empty array backed by
// the heap allocator.
//
// Array is a plain struct on purpose, but assigning one to another
// variable aliases the buffer across two handles. Use Copy to duplicate.
type Array[T any] struct {
	data     []byte
	count    int
	capacity int
	mem      Allocator
}

// NewIn returns an empty array whose buffer will come from mem. A nil mem
// selects the heap allocator, same as the zero value.
func NewIn[T any](mem Allocator) Array[T] {
	return Array[T]{mem: mem}
}

// Len returns the number of valid elements.
func (a *Array[T]) Len() int { return a.count }

// Cap returns the number of elements the buffer can hold before the next
// growth reallocation.
func (a *Array[T]) Cap() int { return a.capacity }

// Add appends item as the new last element, growing the buffer first when
// it is full, and returns the index it was stored at. Growth reallocates:
// any pointer or view into the buffer is invalidated.
func (a *Array[T]) Add(item T) int {
	if a.count+1 > a.capacity {
		next := a.capacity * 2
		if next < 4 {
			next = 4
		}
		a.Resize(next)
	}
	*a.ptr(a.count) = item
	a.count++
	return a.count - 1
}

// Get returns the element at index i. Precondition: 0 <= i < Len().
func (a *Array[T]) Get(i int) T {
	check(uint(i) < uint(a.count), "index out of range")
	return *a.ptr(i)
}

// Set overwrites the element at index i. Precondition: 0 <= i < Len().
func (a *Array[T]) Set(i int, val T) {
	check(uint(i) < uint(a.count), "index out of range")
	*a.ptr(i) = val
}

// Ptr returns a pointer to the element at index i for in-place mutation.
// The pointer is valid only until the next reallocation (Add, Insert or
// Resize). Precondition: 0 <= i < Len().
func (a *Array[T]) Ptr(i int) *T {
	check(uint(i) < uint(a.count), "index out of range")
	return a.ptr(i)
}

// Last returns the final element. Precondition: Len() > 0.
func (a *Array[T]) Last() T {
	check(a.count > 0, "last of empty array")
	return *a.ptr(a.count - 1)
}

// Insert shifts elements [at, Len()) one slot up and writes item at index
// at. Inserting at Len() is equivalent to Add. Grows the buffer first when
// full. Precondition: 0 <= at <= Len().
func (a *Array[T]) Insert(at int, item T) {
	check(uint(at) <= uint(a.count), "insert index out of range")
	if a.count+1 > a.capacity {
		next := a.capacity * 2
		if a.capacity < 1 {
			next = 1
		}
		a.Resize(next)
	}
	size := sizeOf[T]()
	// Shifted ranges overlap; copy has memmove semantics.
	copy(a.data[(at+1)*size:(a.count+1)*size], a.data[at*size:a.count*size])
	*a.ptr(at) = item
	a.count++
}

// Remove shifts elements [at+1, Len()) one slot down, dropping the element
// at index at. Capacity is retained. Precondition: 0 <= at < Len().
func (a *Array[T]) Remove(at int) {
	check(uint(at) < uint(a.count), "remove index out of range")
	size := sizeOf[T]()
	copy(a.data[at*size:a.count*size], a.data[(at+1)*size:a.count*size])
	a.count--
}

// Pop removes the last element. Precondition: Len() > 0.
func (a *Array[T]) Pop() {
	check(a.count > 0, "pop of empty array")
	a.Remove(a.count - 1)
}

// Clear resets the length to zero without touching the buffer. Capacity
// is kept for reuse.
func (a *Array[T]) Clear() {
	a.count = 0
}

// Resize reallocates the buffer to hold exactly toCapacity elements. When
// shrinking below Len(), trailing elements are silently dropped. This is
// the single reallocation path: Add and Insert grow through it. The old
// buffer is always returned to the allocator, and a zero toCapacity
// leaves the array with no buffer at all.
func (a *Array[T]) Resize(toCapacity int) {
	check(toCapacity >= 0, "negative capacity")
	if a.count > toCapacity {
		a.count = toCapacity
	}
	size := sizeOf[T]()
	old := a.data
	var buf []byte
	if toCapacity > 0 {
		buf = a.allocator().Alloc(toCapacity * size)
	}
	copy(buf, old[:a.count*size])
	a.data = buf
	a.allocator().Free(old)
	a.capacity = toCapacity
}

// Reverse flips element order in place.
func (a *Array[T]) Reverse() {
	for i := 0; i < a.count/2; i++ {
		j := a.count - i - 1
		*a.ptr(i), *a.ptr(j) = *a.ptr(j), *a.ptr(i)
	}
}

// Copy returns a deep duplicate: a fresh buffer at the same capacity from
// the same allocator, holding a copy of the valid elements. The two
// arrays share nothing afterwards.
func (a *Array[T]) Copy() Array[T] {
	out := Array[T]{count: a.count, capacity: a.capacity, mem: a.mem}
	if a.capacity > 0 {
		size := sizeOf[T]()
		out.data = a.allocator().Alloc(a.capacity * size)
		copy(out.data, a.data[:a.count*size])
	}
	return out
}

// Each calls fn on every element in index order. fn may mutate elements
// through the pointer, but must not Add, Insert, Remove or Resize the
// array it is iterating.
func (a *Array[T]) Each(fn func(*T)) {
	for i := 0; i < a.count; i++ {
		fn(a.ptr(i))
	}
}

// Slice returns the valid elements as a []T sharing the array's buffer.
// It is a borrow, not a copy: valid only until the next reallocation or
// Free.
func (a *Array[T]) Slice() []T {
	if a.count == 0 {
		return nil
	}
	return unsafe.Slice(a.ptr(0), a.count)
}

// Free returns the buffer to the allocator and resets the array to empty.
// The array remains usable afterwards with its configured allocator.
// Skipping Free leaks the buffer on allocators that track them.
func (a *Array[T]) Free() {
	a.allocator().Free(a.data)
	a.data = nil
	a.count = 0
	a.capacity = 0
}

func (a *Array[T]) allocator() Allocator {
	if a.mem == nil {
		return Heap{}
	}
	return a.mem
}

// zeroBase backs every zero-size element; there are no bytes to address,
// so no buffer is ever allocated for them and only count matters.
var zeroBase struct{}

func (a *Array[T]) ptr(i int) *T {
	size := sizeOf[T]()
	if size == 0 {
		return (*T)(unsafe.Pointer(&zeroBase))
	}
	return (*T)(unsafe.Pointer(&a.data[i*size]))
}

func sizeOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}
