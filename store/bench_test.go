// Package store_test provides benchmarks for the mock backing allocator.
package store_test

import (
	"testing"

	"github.com/Strilanc/IntervalReferences/interval"
	"github.com/Strilanc/IntervalReferences/store"
)

// Benchmark sinks prevent accidental dead-code elimination in microbenchmarks.
var (
	benchSinkInterval interval.Interval
	benchSinkErr      error
	benchSinkWord     int64
)

// BenchmarkAllocateFree_FirstFit measures an Allocate/Free round trip
// against an otherwise-empty store, the scan's best case: the free run
// starts at cell 0 every time.
//
// Complexity:
//   - Per call: O(length).
func BenchmarkAllocateFree_FirstFit(b *testing.B) {
	const capacity = 1 << 16
	s := store.New(capacity)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		iv, err := s.Allocate(1)
		benchSinkInterval, benchSinkErr = iv, err
		_ = s.Free(iv)
	}
}

// BenchmarkAllocate_ScanPastFragmentation measures Allocate when the free
// run it wants sits behind many small allocated fragments, the scan's
// worst case against a mock linear-scan allocator.
//
// Complexity:
//   - Per call: O(capacity).
func BenchmarkAllocate_ScanPastFragmentation(b *testing.B) {
	const capacity = 1 << 14
	s := store.New(capacity)
	// Allocate every cell, then free every other one, so free runs are all
	// length 1.
	if _, err := s.Allocate(capacity); err != nil {
		b.Fatalf("setup allocate: %v", err)
	}
	for i := int64(0); i < capacity; i += 2 {
		if err := s.Free(interval.New(i, 1)); err != nil {
			b.Fatalf("setup free: %v", err)
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSinkInterval, benchSinkErr = s.Allocate(1)
	}
}

// BenchmarkReadWrite measures the steady-state Read/Write cycle on a single
// already-allocated cell.
//
// Complexity:
//   - Per call: O(1).
func BenchmarkReadWrite(b *testing.B) {
	s := store.New(1)
	iv, err := s.Allocate(1)
	if err != nil {
		b.Fatalf("setup allocate: %v", err)
	}
	if err := s.Write(iv.Offset, 0); err != nil {
		b.Fatalf("setup write: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSinkErr = s.Write(iv.Offset, int64(i))
		benchSinkWord, benchSinkErr = s.Read(iv.Offset)
	}
}
