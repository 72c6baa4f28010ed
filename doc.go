// Package dynarray is a small library around one container: a generic,
// contiguous, growable array with explicit capacity control and checked
// iterators.
//
// What is in the module?
//
//	vector/      - Vector[T], Iterator[T], ConstIterator[T] and sentinel errors
//	script/      - YAML operation scripts replayed against a Vector[int]
//	cmd/vecplay/ - CLI that runs scripts and prints the state after each step
//
// Why a hand-managed array when Go has slices?
//
//   - Growth policy is fixed and observable: capacity doubles on overflow
//     and the exact value is part of the contract.
//   - Iterators carry the buffer generation, so using one after a
//     reallocation is reported as ErrStaleIterator instead of silently
//     reading an old backing array.
//   - Every bounds violation is an error value; nothing panics.
//
// Quick example:
//
//	v := vector.Of(1, 2, 3)
//	_, _ = v.Insert(v.Begin().Add(1), 9) // [1, 9, 2, 3]
//	_, _ = v.Erase(v.Begin())            // [9, 2, 3]
//	fmt.Println(v, v.Cap())              // [9, 2, 3] 4
//
//	go get github.com/katalvlaran/dynarray/vector
package dynarray
