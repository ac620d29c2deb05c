// Package store implements a mock backing allocator: the external byte/word
// store that interval references pin and release. It tracks one state per
// cell (Free, Uninitialized, Readable) over a fixed-capacity buffer and
// enforces the allocate/free contract the core assumes: freed intervals may
// be re-allocated, and a double-free is always detectable.
//
// This package is the thin collaborator the nesting-depth tree is built
// around — it has no notion of nesting depth, handles, or pinning; it only
// knows which cells are currently allocated.
//
// Errors:
//
//	ErrOutOfRange - interval falls outside the store's capacity.
//	ErrDoubleFree - free() targets a cell that is already Free.
package store
