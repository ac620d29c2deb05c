package store

import (
	"fmt"

	"github.com/Strilanc/IntervalReferences/interval"
)

// cellState is the per-cell state machine: Free -> Uninitialized (via
// Allocate) -> Readable (via the first Write). Free is reached again only
// through Free (the store-level operation).
type cellState uint8

const (
	cellFree cellState = iota
	cellUninitialized
	cellReadable
)

// Store is a mock byte/word backing allocator: a fixed-capacity buffer of
// cells, each tracked through the Free/Uninitialized/Readable states.
//
// Store has no notion of handles, pins, or nesting depth; it only answers
// allocate/free/read/write against raw offsets, exactly the contract the
// handle layer composes on top of.
type Store struct {
	cells []cellState
	words []int64
	inUse int64
}

// New returns an empty Store with every cell initially Free.
//
// Complexity: O(capacity).
func New(capacity int64) *Store {
	return &Store{
		cells: make([]cellState, capacity),
		words: make([]int64, capacity),
	}
}

// Capacity returns the total number of cells the store was created with.
//
// Complexity: O(1).
func (s *Store) Capacity() int64 {
	return int64(len(s.cells))
}

// MemoryInUse returns the number of cells currently allocated (Uninitialized
// or Readable), for use by tests asserting invariant 3 and 4.
//
// Complexity: O(1).
func (s *Store) MemoryInUse() int64 {
	return s.inUse
}

// Allocate finds the first contiguous run of length free cells, marks them
// Uninitialized, and returns the resulting interval. A zero-length
// allocation returns a degenerate interval without touching state.
//
// Complexity: O(capacity) — a mock allocator scans for a free run; a
// production store would keep a free list.
func (s *Store) Allocate(length int64) (interval.Interval, error) {
	if length == 0 {
		return interval.New(0, 0), nil
	}
	if length < 0 {
		return interval.Interval{}, fmt.Errorf("store: allocate: %w: negative length %d", ErrOutOfRange, length)
	}

	run := int64(0)
	for i, c := range s.cells {
		if c == cellFree {
			run++
		} else {
			run = 0
		}
		if run == length {
			start := int64(i+1) - length
			for j := start; j < int64(i+1); j++ {
				s.cells[j] = cellUninitialized
				s.words[j] = 0
			}
			s.inUse += length
			return interval.New(start, length), nil
		}
	}
	return interval.Interval{}, fmt.Errorf("store: allocate: %w: no run of %d free cells in capacity %d", ErrOutOfRange, length, len(s.cells))
}

func (s *Store) checkRange(iv interval.Interval) error {
	if iv.Offset < 0 || iv.End() > int64(len(s.cells)) {
		return fmt.Errorf("store: %w: [%d,%d) exceeds capacity %d", ErrOutOfRange, iv.Offset, iv.End(), len(s.cells))
	}
	return nil
}

// Free marks every cell in iv as Free. Fails with ErrDoubleFree if any cell
// in iv is already Free, and with ErrOutOfRange if iv reaches outside the
// store's capacity. A degenerate (empty) interval is a no-op.
//
// Complexity: O(length).
func (s *Store) Free(iv interval.Interval) error {
	if iv.Empty() {
		return nil
	}
	if err := s.checkRange(iv); err != nil {
		return err
	}
	for i := iv.Offset; i < iv.End(); i++ {
		if s.cells[i] == cellFree {
			return fmt.Errorf("store: free: %w: cell %d already free", ErrDoubleFree, i)
		}
	}

	for i := iv.Offset; i < iv.End(); i++ {
		s.cells[i] = cellFree
		s.words[i] = 0
	}
	s.inUse -= iv.Length
	return nil
}

// Read returns the word stored at offset. Fails if offset is out of range
// or the cell is Free or Uninitialized.
//
// Complexity: O(1).
func (s *Store) Read(offset int64) (int64, error) {
	if offset < 0 || offset >= int64(len(s.cells)) {
		return 0, fmt.Errorf("store: read: %w: offset %d", ErrOutOfRange, offset)
	}
	switch s.cells[offset] {
	case cellFree:
		return 0, fmt.Errorf("store: read: %w: cell %d is free", ErrOutOfRange, offset)
	case cellUninitialized:
		return 0, fmt.Errorf("store: read: %w: cell %d is uninitialized", ErrOutOfRange, offset)
	}
	return s.words[offset], nil
}

// Write stores value at offset, transitioning an Uninitialized cell to
// Readable. Fails if offset is out of range or the cell is Free.
//
// Complexity: O(1).
func (s *Store) Write(offset int64, value int64) error {
	if offset < 0 || offset >= int64(len(s.cells)) {
		return fmt.Errorf("store: write: %w: offset %d", ErrOutOfRange, offset)
	}
	if s.cells[offset] == cellFree {
		return fmt.Errorf("store: write: %w: cell %d is free", ErrOutOfRange, offset)
	}
	s.cells[offset] = cellReadable
	s.words[offset] = value
	return nil
}
