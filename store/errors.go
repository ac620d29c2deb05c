package store

import "errors"

// Sentinel errors for store operations.
var (
	// ErrOutOfRange indicates an interval reaches outside the store's capacity.
	ErrOutOfRange = errors.New("store: interval out of range")

	// ErrDoubleFree indicates free targeted a cell that was already Free.
	ErrDoubleFree = errors.New("store: double free")
)
