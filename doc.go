// Package intervalrefs (IntervalReferences) implements interval
// references: handles into a contiguous memory region that each pin a
// sub-range of it, so memory is reclaimed exactly when no live handle
// covers it anymore.
//
// What is an interval reference?
//
//	A handle into a flat region, sliceable into narrower sub-handles in
//	O(log n), that frees precisely the holes a release uncovers:
//
//	  • Nesting-depth tree: a balanced BST over endpoint offsets, tracking
//	    live-handle coverage depth and the subtree aggregates that keep
//	    insertion logarithmic and let hole discovery skip covered subtrees.
//	  • Backing store: a mock byte/word allocator with a
//	    Free/Uninitialized/Readable state machine per cell.
//	  • Handle layer: the user-facing array handle — new, slice, read,
//	    write, release.
//
// Everything is organized under four subpackages:
//
//	core/     — the nesting-depth tree: include, rootOf, findHolesIn,
//	            partitionAroundHoles, queryNestingDepthAt
//	store/    — the mock backing allocator
//	handle/   — the public Handle type built on core and store
//	interval/ — the half-open Interval value type shared by the other three
//
// A release walks a careful order — flip adjustments, find holes, drop
// pins, partition, free — so the tree observes reduced coverage before
// holes are computed and endpoint nodes stay reachable while it does.
//
//	    new(100) ──slice([10,25))──▶ child
//	         │                        │
//	     release()                release()
//	         ▼                        ▼
//	    holes freed in store    holes freed in store
//
// There is no persistence, no concurrency, no network surface, and no
// logging: the core is strictly single-threaded, and the only observable
// side effects are changes to the backing store's memoryInUse and cell
// states.
package intervalrefs
