package array

import "errors"

// ErrOutOfRange is returned by checked accessors for an index outside
// [0, Len()).
var ErrOutOfRange = errors.New("array: index out of range")

// ErrEmpty is returned by checked accessors that need at least one
// element.
var ErrEmpty = errors.New("array: empty")

// At is the checked counterpart of Get: it validates the index in every
// build and reports ErrOutOfRange instead of relying on the caller's
// precondition.
func (a *Array[T]) At(i int) (T, error) {
	if i < 0 || i >= a.count {
		var zero T
		return zero, ErrOutOfRange
	}
	return *a.ptr(i), nil
}

// SetAt is the checked counterpart of Set.
func (a *Array[T]) SetAt(i int, val T) error {
	if i < 0 || i >= a.count {
		return ErrOutOfRange
	}
	*a.ptr(i) = val
	return nil
}

// PopLast is the checked counterpart of Last followed by Pop: it removes
// and returns the final element, or reports ErrEmpty.
func (a *Array[T]) PopLast() (T, error) {
	if a.count == 0 {
		var zero T
		return zero, ErrEmpty
	}
	val := *a.ptr(a.count - 1)
	a.count--
	return val, nil
}

// At is the checked counterpart of View.Get.
func (v View[T]) At(i int) (T, error) {
	if i < 0 || i >= v.count {
		var zero T
		return zero, ErrOutOfRange
	}
	return *v.ptr(i), nil
}

// SetAt is the checked counterpart of View.Set.
func (v View[T]) SetAt(i int, val T) error {
	if i < 0 || i >= v.count {
		return ErrOutOfRange
	}
	*v.ptr(i) = val
	return nil
}
