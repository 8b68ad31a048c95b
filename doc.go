// Package array implements a manually-managed dynamic array and a strided
// view over interleaved memory.
//
// # Overview
//
// Array is a growable, contiguous container that owns its storage and must
// be released explicitly with Free. It is built for plain-old-data element
// types: elements are stored as raw bytes, no constructors or destructors
// run on add/remove/resize, and element types containing Go pointers are
// not supported (the backing buffer is opaque to the garbage collector).
//
// View is a non-owning window onto foreign memory that exposes one field
// inside each record of an interleaved buffer as a flat, typed sequence.
// For example, the y component of every vec3 in a vertex buffer:
//
//	type vec3 struct{ X, Y, Z float32 }
//
//	var vertices array.Array[vec3]
//	vertices.Add(vec3{1, 0, 0})
//	vertices.Add(vec3{0, 1, 0})
//	vertices.Add(vec3{0, 0, 1})
//
//	heights := array.ViewOfArray[float32](&vertices, unsafe.Offsetof(vec3{}.Y))
//	heights.Each(func(y *float32) { *y = 10 })
//
//	packed := heights.Deinterlace() // tightly packed [10 10 10]
//	packed.Free()
//	vertices.Free()
//
// # Memory
//
// Storage comes from an Allocator. The zero value of Array uses the heap
// allocator (plain make, freeing is left to the garbage collector). NewIn
// binds an array to a specific allocator instead: an Arena for batch
// workloads with O(1) bulk cleanup, or a Pool for buffer reuse across
// short-lived arrays. Views never allocate and never free; the memory a
// view points at must outlive the view, and a view becomes dangling if
// its source array is resized or freed.
//
// # Ownership
//
// An Array owns its buffer exclusively. Copying the struct by value yields
// two handles over one buffer, and freeing one leaves the other dangling;
// use Copy for a deep, independent duplicate. Only Free (or, for
// arena-backed arrays, releasing the arena) returns the storage.
//
// # Checked and unchecked access
//
// Get, Set, Ptr, Last, Pop, Insert and Remove document preconditions on
// their index arguments; violating one is a programmer error, caught by a
// panic unless the arraynocheck build tag strips the assertions for hot
// release builds. At and SetAt are the checked counterparts, returning
// ErrOutOfRange instead of panicking.
//
// # Concurrency
//
// Array and View perform no internal synchronization. A single array must
// not be mutated from multiple goroutines, and a view must not be read
// while its source is mutated elsewhere. Allocators may be shared across
// goroutines by wrapping them with NewLocked.
package array
