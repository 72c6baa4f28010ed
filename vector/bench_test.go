// Package vector_test provides benchmarks for vector.Vector operations.
package vector_test

import (
	"testing"

	"github.com/katalvlaran/dynarray/vector"
)

// BenchmarkPushBack measures amortized append cost including growth.
func BenchmarkPushBack(b *testing.B) {
	v := vector.New[int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.PushBack(i)
	}
}

// BenchmarkPushBack_Reserved measures append cost without any relocation.
func BenchmarkPushBack_Reserved(b *testing.B) {
	v := vector.WithCapacity[int](b.N)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.PushBack(i)
	}
}

// BenchmarkInsertFront measures the O(length) right shift of Insert at Begin.
func BenchmarkInsertFront(b *testing.B) {
	v := vector.WithCapacity[int](1024)
	for i := 0; i < 1000; i++ {
		v.PushBack(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Insert then erase at the front to keep the length stable.
		_, _ = v.Insert(v.Begin(), i)
		_, _ = v.Erase(v.Begin())
	}
}

// BenchmarkIterate measures a full Begin..End walk.
func BenchmarkIterate(b *testing.B) {
	v := vector.New[int]()
	for i := 0; i < 1000; i++ {
		v.PushBack(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		for it := v.CBegin(); !it.Equal(v.CEnd()); it.Inc() {
			x, _ := it.Get()
			sum += x
		}
		_ = sum
	}
}
