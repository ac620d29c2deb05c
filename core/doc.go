// Package core implements the nesting-depth tree: a keyed, self-adjusting
// binary search tree that tracks, as a function of integer offset, how many
// live handles currently cover each position.
//
// 🌳 What is core.Node?
//
//	A balanced-ish BST indexed by offset. Each node carries two integers —
//	an adjust (the depth delta crossing from offset-1 to offset) and a
//	refCount (how many live handles pin this node as an endpoint) — plus
//	two cached subtree aggregates (subTreeTotalAdjust, subTreeRelativeMinimum)
//	that keep insertion O(log n) against the tree's typical shape and let
//	hole discovery skip subtrees that stay covered throughout.
//
// Why a rank heuristic instead of AVL/red-black?
//
//   - rank(x) = x XOR (x-1) grows with the number of trailing zero bits of
//     x, so offsets that are multiples of large powers of two naturally
//     settle near the root — a cheap, deterministic stand-in for a
//     balanced tree that needs no extra per-node state.
//   - Strict balance is not a design goal here: pathological offset
//     sequences may degrade performance but never correctness.
//
// Public surface:
//
//	Include(root, offset, Δadjust, ΔrefCount) (*Node, *Node, error)  // O(log n) amortized
//	RootOf(node) *Node                                               // O(depth)
//	FindHolesIn(root, query) ([]interval.Interval, error)            // O(n)
//	PartitionAroundHoles(root) ([]*Node, error)                      // O(k log n), k boundaries
//	QueryNestingDepthAt(root, offset) int64                          // O(log n)
//	Bounds(root) (lo, hi int64, ok bool)                             // O(depth)
//	TotalAdjust(root) int64                                          // O(1)
//	(*Node).Parent() *Node                                           // O(1)
//
// Errors:
//
//	ErrInvariantViolation - an aggregate or balance invariant did not hold;
//	  always wrapped with context via fmt.Errorf("core: %w: ...", ErrInvariantViolation).
//
// This package is not safe for concurrent use: a single Node tree is
// mutated exclusively by whichever handle operation currently holds it.
package core
