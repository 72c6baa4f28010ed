// Package vector provides Vector[T], an owning, contiguous, growable
// sequence container, together with the two iterator kinds that walk it.
//
// The Vector keeps every live element in a single run buf[0:length) of a
// backing block whose size is the capacity. Storage is managed explicitly:
//
//   - Growth doubles the capacity whenever an append or insert would
//     overflow it (amortized O(1) PushBack).
//   - Every resize is a full relocation: allocate a new block, copy the
//     live prefix, swap the block in, drop the old one.
//   - Capacity never drops below MinCapacity (2), even when empty.
//
// Core Methods:
//
//	// Construction
//	New[T]() *Vector[T]                   // capacity 2
//	WithCapacity[T](n int) *Vector[T]     // capacity max(n, 2)
//	Of[T](vals ...T) *Vector[T]           // PushBack each value in order
//	(v) Clone() *Vector[T]                // deep, element-by-element copy
//	(v) Assign(src *Vector[T])            // copy-and-swap
//	(v) Swap(o *Vector[T])                // exchange state
//
//	// Size & capacity
//	Size() int, Cap() int, Empty() bool
//	Reserve(n int) error                  // reallocate to exactly n slots
//	ShrinkToFit()                         // see "Shrink policy" below
//
//	// End-relative edits
//	PushBack(x T)                         // amortized O(1)
//	PopBack() error                       // ErrEmptyContainer when empty
//	Clear()
//
//	// Positional edits
//	Insert(pos Position[T], x T) (Iterator[T], error) // O(length-offset)
//	Erase(pos Position[T]) (Iterator[T], error)       // O(length-offset)
//
//	// Access
//	At(i int) (T, error), Ref(i int) (*T, error), Set(i int, x T) error
//	Front() (T, error), Back() (T, error)
//	Begin()/End()/Mid() Iterator[T]
//	CBegin()/CEnd()/CMid() ConstIterator[T]
//	All() iter.Seq2[int, T], Values() iter.Seq[T], Slice() []T
//
// Shrink policy:
//
// ShrinkToFit only reallocates when the capacity is not larger than the
// length, and then to max(length, MinCapacity). PopBack and Clear call it
// after reducing the length, so for a container grown by doubling they
// keep their capacity. Callers that want to release memory use Reserve.
//
// Iterators and invalidation:
//
// Iterator[T] (read/write) and ConstIterator[T] (read-only) are position
// markers: (vector, offset, buffer generation). An Iterator converts to a
// ConstIterator through Const(); there is no way back. Both implement
// Position[T], so Equal, Sub, Insert and Erase accept either kind.
//
// Every operation that relocates the buffer bumps its generation:
//
//   - PushBack or Insert past capacity
//   - Reserve
//   - ShrinkToFit when it reallocates (also through PopBack/Clear)
//   - Assign and Swap (both sides)
//
// An iterator taken before such an operation is stale: Get/Set/Ref and
// Insert/Erase reject it with ErrStaleIterator. Insert and Erase inside
// the current capacity do not relocate; earlier iterators stay usable as
// raw positions, but the element they denote may have shifted.
//
// Errors:
//
//	ErrEmptyContainer   - PopBack/Front/Back on an empty vector.
//	ErrInvalidIndex     - index outside [0, length).
//	ErrInvalidIterator  - iterator offset outside the permitted range,
//	                      detached iterator, or dereference past the end.
//	ErrStaleIterator    - iterator from an older buffer generation (wraps ErrInvalidIterator).
//	ErrForeignIterator  - iterator obtained from another vector (wraps ErrInvalidIterator).
//	ErrInvalidCapacity  - negative Reserve argument.
//
// All bounds checks run before any mutation, so a failed call leaves the
// vector untouched.
//
// Concurrency:
//
// A Vector is not safe for concurrent use. Serialize access externally,
// for example with a sync.Mutex around the whole container.
package vector
