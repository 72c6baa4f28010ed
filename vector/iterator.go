// File: iterator.go
// Role: Iterator (read/write) and ConstIterator (read-only) position markers.
// Validity:
//   - An iterator carries the buffer generation it was created against.
//   - Any access through an iterator from another generation fails with ErrStaleIterator.

package vector

import "fmt"

// Position is any iterator kind. Const widens a mutable iterator to a
// read-only one; a ConstIterator returns itself.
type Position[T any] interface {
	Const() ConstIterator[T]
}

// ConstIterator is a read-only position in a Vector.
// The zero value is detached and never valid.
type ConstIterator[T any] struct {
	v   *Vector[T]
	pos int
	gen uint64
}

// Const returns it unchanged.
func (it ConstIterator[T]) Const() ConstIterator[T] { return it }

// Index returns the offset of it from Begin().
func (it ConstIterator[T]) Index() int { return it.pos }

// Valid reports whether it can be dereferenced right now.
func (it ConstIterator[T]) Valid() bool { return it.check() == nil }

// Get returns the element at it.
//
// Errors:
//   - ErrInvalidIterator: detached, or positioned outside [0, length).
//   - ErrStaleIterator: the buffer was reallocated since it was obtained.
func (it ConstIterator[T]) Get() (T, error) {
	if err := it.check(); err != nil {
		var zero T
		return zero, err
	}

	return it.v.buf[it.pos], nil
}

// Inc advances it by one position and returns the advanced value (pre-increment).
func (it *ConstIterator[T]) Inc() ConstIterator[T] {
	it.pos++
	return *it
}

// PostInc advances it by one position and returns the value before advancing.
func (it *ConstIterator[T]) PostInc() ConstIterator[T] {
	old := *it
	it.pos++

	return old
}

// Add returns an iterator n positions after it; it is not modified.
func (it ConstIterator[T]) Add(n int) ConstIterator[T] {
	it.pos += n
	return it
}

// Equal reports whether it and o denote the same slot of the same buffer.
func (it ConstIterator[T]) Equal(o Position[T]) bool {
	if o == nil {
		return false
	}
	c := o.Const()

	return it.v == c.v && it.gen == c.gen && it.pos == c.pos
}

// Sub returns the signed element distance it - o. Both operands must come
// from the same vector and buffer generation for the result to mean anything.
func (it ConstIterator[T]) Sub(o Position[T]) int {
	return it.pos - o.Const().pos
}

func (it ConstIterator[T]) check() error {
	switch {
	case it.v == nil:
		return fmt.Errorf("%w: detached iterator", ErrInvalidIterator)
	case it.gen != it.v.gen:
		return ErrStaleIterator
	case it.pos < 0 || it.pos >= it.v.length:
		return fmt.Errorf("%w: position %d not in [0, %d)", ErrInvalidIterator, it.pos, it.v.length)
	}

	return nil
}

// Iterator is a read/write position in a Vector.
// The zero value is detached and never valid.
type Iterator[T any] struct {
	v   *Vector[T]
	pos int
	gen uint64
}

// Const widens it to a read-only iterator at the same position.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{v: it.v, pos: it.pos, gen: it.gen}
}

// Index returns the offset of it from Begin().
func (it Iterator[T]) Index() int { return it.pos }

// Valid reports whether it can be dereferenced right now.
func (it Iterator[T]) Valid() bool { return it.Const().check() == nil }

// Get returns the element at it. Errors as ConstIterator.Get.
func (it Iterator[T]) Get() (T, error) { return it.Const().Get() }

// Set overwrites the element at it. Errors as ConstIterator.Get.
func (it Iterator[T]) Set(x T) error {
	if err := it.Const().check(); err != nil {
		return err
	}
	it.v.buf[it.pos] = x

	return nil
}

// Ref returns a pointer to the slot at it. Errors as ConstIterator.Get.
func (it Iterator[T]) Ref() (*T, error) {
	if err := it.Const().check(); err != nil {
		return nil, err
	}

	return &it.v.buf[it.pos], nil
}

// Inc advances it by one position and returns the advanced value (pre-increment).
func (it *Iterator[T]) Inc() Iterator[T] {
	it.pos++
	return *it
}

// PostInc advances it by one position and returns the value before advancing.
func (it *Iterator[T]) PostInc() Iterator[T] {
	old := *it
	it.pos++

	return old
}

// Add returns an iterator n positions after it; it is not modified.
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.pos += n
	return it
}

// Equal compares through the read-only form, so o may be either kind.
func (it Iterator[T]) Equal(o Position[T]) bool { return it.Const().Equal(o) }

// Sub returns it - o through the read-only form, so o may be either kind.
func (it Iterator[T]) Sub(o Position[T]) int { return it.Const().Sub(o) }
