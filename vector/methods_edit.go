// File: methods_edit.go
// Role: Positional insert and erase.
// Contiguity:
//   - Both operations keep buf[:length] gap-free by shifting the suffix.
//   - Bounds are checked before the first write.

package vector

import "fmt"

// Insert places x at the offset denoted by pos and returns an iterator to it.
//
// Implementation:
//   - Stage 1: Translate pos into an offset relative to Begin().
//   - Stage 2: Reject offsets outside [0, length]; length itself (End) is allowed.
//   - Stage 3: If length >= capacity, relocate to 2*capacity.
//   - Stage 4: Shift buf[offset:length] one slot right, write x, increment length.
//
// Errors:
//   - ErrInvalidIterator: offset outside [0, length] or detached iterator.
//   - ErrStaleIterator: pos predates the last reallocation.
//   - ErrForeignIterator: pos belongs to another vector.
//
// Growth invalidates every iterator into v. Without growth, iterators
// before the offset keep denoting the same element.
// Complexity: O(length - offset), plus O(length) when growing.
func (v *Vector[T]) Insert(pos Position[T], x T) (Iterator[T], error) {
	off, err := v.offsetOf(pos)
	if err != nil {
		return Iterator[T]{}, err
	}
	if off < 0 || off > v.length {
		return Iterator[T]{}, fmt.Errorf("%w: insert offset %d not in [0, %d]", ErrInvalidIterator, off, v.length)
	}

	v.ensure()
	if v.length >= len(v.buf) {
		v.relocate(2 * len(v.buf))
	}
	// copy has memmove semantics, so the overlapping right shift is safe.
	copy(v.buf[off+1:v.length+1], v.buf[off:v.length])
	v.buf[off] = x
	v.length++

	return v.iterAt(off), nil
}

// Erase removes the element at the offset denoted by pos and returns an
// iterator at the same offset, which now holds the former successor or
// equals End() when the last element was removed. Erase never shrinks.
//
// Errors:
//   - ErrInvalidIterator: offset outside [0, length) (End cannot be erased) or detached iterator.
//   - ErrStaleIterator: pos predates the last reallocation.
//   - ErrForeignIterator: pos belongs to another vector.
//
// Complexity: O(length - offset)
func (v *Vector[T]) Erase(pos Position[T]) (Iterator[T], error) {
	off, err := v.offsetOf(pos)
	if err != nil {
		return Iterator[T]{}, err
	}
	if off < 0 || off >= v.length {
		return Iterator[T]{}, fmt.Errorf("%w: erase offset %d not in [0, %d)", ErrInvalidIterator, off, v.length)
	}

	copy(v.buf[off:v.length-1], v.buf[off+1:v.length])
	v.length--
	var zero T
	v.buf[v.length] = zero

	return v.iterAt(off), nil
}

// offsetOf returns pos - Begin() after checking that pos refers to the
// current buffer of v.
func (v *Vector[T]) offsetOf(pos Position[T]) (int, error) {
	if pos == nil {
		return 0, fmt.Errorf("%w: nil position", ErrInvalidIterator)
	}
	c := pos.Const()
	switch {
	case c.v == nil:
		return 0, fmt.Errorf("%w: detached iterator", ErrInvalidIterator)
	case c.v != v:
		return 0, ErrForeignIterator
	case c.gen != v.gen:
		return 0, ErrStaleIterator
	}

	return c.Sub(v.CBegin()), nil
}
