package vector

import (
	"errors"
	"fmt"
)

// Sentinel errors for vector operations.
var (
	// ErrEmptyContainer indicates an element was requested from, or removed from, an empty vector.
	ErrEmptyContainer = errors.New("vector: container is empty")

	// ErrInvalidIndex indicates an index outside the live range [0, length).
	ErrInvalidIndex = errors.New("vector: index out of range")

	// ErrInvalidIterator indicates an iterator whose position is not permitted for the operation.
	ErrInvalidIterator = errors.New("vector: iterator out of bounds")

	// ErrStaleIterator indicates an iterator taken before the buffer was reallocated.
	ErrStaleIterator = fmt.Errorf("%w: buffer was reallocated", ErrInvalidIterator)

	// ErrForeignIterator indicates an iterator that belongs to a different vector.
	ErrForeignIterator = fmt.Errorf("%w: iterator belongs to another vector", ErrInvalidIterator)

	// ErrInvalidCapacity indicates a negative capacity request.
	ErrInvalidCapacity = errors.New("vector: capacity must be non-negative")
)
