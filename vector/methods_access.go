// File: methods_access.go
// Role: Indexed access, iterator factories and range traversal.

package vector

import (
	"fmt"
	"iter"
	"slices"
)

// At returns the element at index i.
//
// Errors:
//   - ErrInvalidIndex: if i < 0 or i >= length.
//
// Complexity: O(1)
func (v *Vector[T]) At(i int) (T, error) {
	if err := v.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}

	return v.buf[i], nil
}

// Ref returns a pointer to the live slot at index i. Writes through it are
// visible immediately and never resize. The pointer is only meaningful
// until the next reallocation, same as an Iterator.
//
// Errors:
//   - ErrInvalidIndex: if i < 0 or i >= length.
func (v *Vector[T]) Ref(i int) (*T, error) {
	if err := v.checkIndex(i); err != nil {
		return nil, err
	}

	return &v.buf[i], nil
}

// Set overwrites the element at index i.
//
// Errors:
//   - ErrInvalidIndex: if i < 0 or i >= length.
func (v *Vector[T]) Set(i int, x T) error {
	if err := v.checkIndex(i); err != nil {
		return err
	}
	v.buf[i] = x

	return nil
}

// Front returns the first element or ErrEmptyContainer.
func (v *Vector[T]) Front() (T, error) {
	if v.length == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}

	return v.buf[0], nil
}

// Back returns the last element or ErrEmptyContainer.
func (v *Vector[T]) Back() (T, error) {
	if v.length == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}

	return v.buf[v.length-1], nil
}

func (v *Vector[T]) checkIndex(i int) error {
	if i < 0 || i >= v.length {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidIndex, i, v.length)
	}

	return nil
}

// Begin returns a mutable iterator at offset 0.
func (v *Vector[T]) Begin() Iterator[T] { return v.iterAt(0) }

// End returns a mutable iterator one past the last live element.
func (v *Vector[T]) End() Iterator[T] { return v.iterAt(v.length) }

// Mid returns a mutable iterator at offset length/2.
func (v *Vector[T]) Mid() Iterator[T] { return v.iterAt(v.length / 2) }

// CBegin returns a read-only iterator at offset 0.
func (v *Vector[T]) CBegin() ConstIterator[T] { return v.Begin().Const() }

// CEnd returns a read-only iterator one past the last live element.
func (v *Vector[T]) CEnd() ConstIterator[T] { return v.End().Const() }

// CMid returns a read-only iterator at offset length/2.
func (v *Vector[T]) CMid() ConstIterator[T] { return v.Mid().Const() }

func (v *Vector[T]) iterAt(off int) Iterator[T] {
	return Iterator[T]{v: v, pos: off, gen: v.gen}
}

// All yields (index, element) pairs in order. The length is re-read on every
// step, so the sequence ends early if the loop body shrinks the vector.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// Values yields the elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(v.buf[i]) {
				return
			}
		}
	}
}

// Slice returns a copy of the live elements. The backing block never escapes.
// Complexity: O(length)
func (v *Vector[T]) Slice() []T {
	out := make([]T, v.length)
	copy(out, v.buf)

	return out
}

// Equal reports whether a and b hold the same elements in the same order.
// Capacity is not compared.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.buf[:a.length], b.buf[:b.length])
}
