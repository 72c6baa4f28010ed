// File: methods_storage.go
// Role: Capacity management: growth, shrink, reserve and relocation.
// Invalidation:
//   - relocate is the only place that replaces buf outside exchange; it bumps gen.

package vector

import "fmt"

// Size returns the number of live elements.
func (v *Vector[T]) Size() int { return v.length }

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool { return v.length == 0 }

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	if v.buf == nil {
		return MinCapacity
	}

	return len(v.buf)
}

// PushBack appends x after the last live element.
//
// Implementation:
//   - Stage 1: If length+1 exceeds the capacity, relocate to 2*capacity.
//   - Stage 2: Write x at offset length and increment length.
//
// Growth invalidates every iterator into v.
// Complexity: O(1) amortized, O(length) when growing.
func (v *Vector[T]) PushBack(x T) {
	v.ensure()
	if v.length+1 > len(v.buf) {
		v.relocate(2 * len(v.buf))
	}
	v.buf[v.length] = x
	v.length++
}

// PopBack removes the last element and then applies ShrinkToFit.
//
// Errors:
//   - ErrEmptyContainer: if the vector is empty; nothing is changed.
//
// Complexity: O(1)
func (v *Vector[T]) PopBack() error {
	if v.length == 0 {
		return ErrEmptyContainer
	}
	v.length--
	// Release the reference held by the vacated slot.
	var zero T
	v.buf[v.length] = zero
	v.ShrinkToFit()

	return nil
}

// ShrinkToFit reallocates to max(length, MinCapacity) slots, but only when
// the capacity is not larger than the length. With spare capacity it does
// nothing.
// Complexity: O(1) when it returns early, O(length) otherwise.
func (v *Vector[T]) ShrinkToFit() {
	if v.Cap() > v.length {
		return
	}
	v.relocate(max(v.length, MinCapacity))
}

// Reserve reallocates the buffer to exactly n slots and invalidates all
// iterators, whether n is larger or smaller than the current capacity.
//
// Behavior highlights:
//   - n below MinCapacity is raised to MinCapacity.
//   - n below the length truncates: elements at offsets >= n are dropped.
//
// Errors:
//   - ErrInvalidCapacity: if n < 0; nothing is changed.
//
// Complexity: O(min(length, n) + n)
func (v *Vector[T]) Reserve(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: reserve(%d)", ErrInvalidCapacity, n)
	}
	v.relocate(max(n, MinCapacity))

	return nil
}

// Clear drops all elements and then applies ShrinkToFit, which keeps the
// capacity whenever it exceeds zero live elements.
// Complexity: O(length)
func (v *Vector[T]) Clear() {
	if v.buf != nil {
		clear(v.buf[:v.length])
	}
	v.length = 0
	v.ShrinkToFit()
}

// ensure allocates the initial block of a zero Vector. The generation is
// kept: no live element existed, so no iterator loses its target.
func (v *Vector[T]) ensure() {
	if v.buf == nil {
		v.buf = make([]T, MinCapacity)
	}
}

// relocate moves the live prefix into a new block of n slots, swaps the
// block in and bumps the generation. When n < length the tail is dropped.
func (v *Vector[T]) relocate(n int) {
	nb := make([]T, n)
	copy(nb, v.buf[:v.length])
	if v.length > n {
		v.length = n
	}
	v.buf = nb
	v.gen++
}
