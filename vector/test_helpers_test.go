// SPDX-License-Identifier: MIT
// Package vector_test contains shared fixtures for the vector tests.

package vector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dynarray/vector"
)

// Common sizes used across vector tests (avoid magic numbers in test bodies).
const (
	CapHint2   = 2
	CapHint10  = 10
	NPushes    = 1000
	ValueNine  = 9
	ValueForty = 40
)

// requireContents asserts both the element order and the reported size.
func requireContents[T any](t *testing.T, v *vector.Vector[T], want ...T) {
	t.Helper()
	if want == nil {
		want = []T{}
	}
	require.Equal(t, want, v.Slice(), "contents")
	require.Equal(t, len(want), v.Size(), "size")
	require.LessOrEqual(t, v.Size(), v.Cap(), "length must not exceed capacity")
	require.GreaterOrEqual(t, v.Cap(), vector.MinCapacity, "capacity floor")
}
