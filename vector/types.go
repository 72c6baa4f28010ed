// File: types.go
// Role: Vector declaration and constructors.
// Invariants:
//   - 0 <= length <= len(buf); len(buf) is the capacity.
//   - len(buf) >= MinCapacity once allocated; a zero Vector reports MinCapacity.
//   - gen changes whenever buf is replaced.

package vector

// MinCapacity is the capacity floor of every Vector.
const MinCapacity = 2

// Vector is an owning, contiguous, growable buffer of T.
//
// The zero value is an empty vector ready to use and behaves like New.
// A Vector must not be copied by value once used; use Clone or Assign.
type Vector[T any] struct {
	buf    []T    // backing block; slots at and after length are unused
	length int    // number of live elements in buf[:length]
	gen    uint64 // buffer generation captured by iterators
}

// New returns an empty Vector with capacity MinCapacity.
// Complexity: O(1)
func New[T any]() *Vector[T] {
	return WithCapacity[T](MinCapacity)
}

// WithCapacity returns an empty Vector with capacity max(n, MinCapacity).
// Complexity: O(n)
func WithCapacity[T any](n int) *Vector[T] {
	if n < MinCapacity {
		n = MinCapacity
	}

	return &Vector[T]{buf: make([]T, n)}
}

// Of builds a Vector by pushing vals in order onto a default-constructed one.
// Growth follows the doubling policy, so Of(1, 2, 3).Cap() == 4.
// Complexity: O(len(vals)) amortized
func Of[T any](vals ...T) *Vector[T] {
	v := New[T]()
	for _, x := range vals {
		v.PushBack(x)
	}

	return v
}

// Clone returns an independent deep copy of v, built by pushing every live
// element in order onto a default-constructed Vector.
// Complexity: O(length) amortized
func (v *Vector[T]) Clone() *Vector[T] {
	c := New[T]()
	for i := 0; i < v.length; i++ {
		c.PushBack(v.buf[i])
	}

	return c
}

// Assign replaces the contents of v with a copy of src (copy-and-swap).
//
// Implementation:
//   - Stage 1: Clone src into a temporary.
//   - Stage 2: Exchange state between v and the temporary; the old buffer
//     goes away with the temporary.
//
// Either the whole assignment happens or v is untouched. Self-assignment is
// allowed. All iterators into v become stale.
// Complexity: O(len(src))
func (v *Vector[T]) Assign(src *Vector[T]) {
	tmp := src.Clone()
	v.exchange(tmp)
}

// Swap exchanges the contents of v and o. Iterators into either vector
// become stale. Swapping a vector with itself is a no-op.
// Complexity: O(1)
func (v *Vector[T]) Swap(o *Vector[T]) {
	if v == o {
		return
	}
	v.exchange(o)
}

// exchange swaps buffers and lengths and moves both vectors to a fresh
// generation neither has used before.
func (v *Vector[T]) exchange(o *Vector[T]) {
	g := max(v.gen, o.gen) + 1
	v.buf, o.buf = o.buf, v.buf
	v.length, o.length = o.length, v.length
	v.gen, o.gen = g, g
}
