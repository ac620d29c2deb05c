package handle

import (
	"fmt"

	"github.com/Strilanc/IntervalReferences/core"
	"github.com/Strilanc/IntervalReferences/interval"
	"github.com/Strilanc/IntervalReferences/store"
)

// Handle is a reference into a backing store's interval. It is created by
// New or by slicing an existing Handle, and must eventually be released.
type Handle struct {
	store *store.Store

	offset int64
	length int64

	// locator is the tree node at this handle's right endpoint. Its
	// pin keeps it (and the tree reachable through its parent chain)
	// alive for the handle's lifetime. Nil for degenerate (zero-length)
	// handles, which do no tree work at all.
	locator *core.Node

	disposed bool
}

// New allocates length cells from s and returns a Handle covering them.
//
// Complexity: O(log n) in the size of the resulting tree.
func New(length int64, s *store.Store) (*Handle, error) {
	if length < 0 {
		return nil, fmt.Errorf("handle: new: %w: negative length %d", ErrOutOfRange, length)
	}

	iv, err := s.Allocate(length)
	if err != nil {
		return nil, err
	}
	if iv.Empty() {
		return &Handle{store: s, offset: iv.Offset}, nil
	}

	root, _, err := core.Include(nil, iv.Offset, 1, 1)
	if err != nil {
		return nil, err
	}
	_, right, err := core.Include(root, iv.End(), -1, 1)
	if err != nil {
		return nil, err
	}

	return &Handle{store: s, offset: iv.Offset, length: length, locator: right}, nil
}

// Length returns the number of positions this handle exposes.
//
// Complexity: O(1).
func (h *Handle) Length() int64 {
	return h.length
}

// Slice returns a child handle over sub, a range relative to h's own
// offset. sub must be non-negative and fall within h's length. A
// zero-length sub produces a degenerate handle that does no tree work.
//
// Complexity: O(log n).
func (h *Handle) Slice(sub interval.Interval) (*Handle, error) {
	if h.disposed {
		return nil, fmt.Errorf("handle: slice: %w", ErrUseAfterRelease)
	}
	if sub.Offset < 0 || sub.Length < 0 || sub.End() > h.length {
		return nil, fmt.Errorf("handle: slice: %w: %s outside length %d", ErrOutOfRange, sub, h.length)
	}

	absOffset := h.offset + sub.Offset
	if sub.Empty() {
		return &Handle{store: h.store, offset: absOffset}, nil
	}

	root := core.RootOf(h.locator)
	absEnd := absOffset + sub.Length

	root, _, err := core.Include(root, absOffset, 1, 1)
	if err != nil {
		return nil, err
	}
	_, right, err := core.Include(root, absEnd, -1, 1)
	if err != nil {
		return nil, err
	}

	return &Handle{store: h.store, offset: absOffset, length: sub.Length, locator: right}, nil
}

// Read returns the value at position i relative to h's offset.
//
// Complexity: O(1).
func (h *Handle) Read(i int64) (int64, error) {
	if h.disposed {
		return 0, fmt.Errorf("handle: read: %w", ErrUseAfterRelease)
	}
	if i < 0 || i >= h.length {
		return 0, fmt.Errorf("handle: read: %w: index %d, length %d", ErrOutOfRange, i, h.length)
	}
	return h.store.Read(h.offset + i)
}

// Write stores value at position i relative to h's offset.
//
// Complexity: O(1).
func (h *Handle) Write(i, value int64) error {
	if h.disposed {
		return fmt.Errorf("handle: write: %w", ErrUseAfterRelease)
	}
	if i < 0 || i >= h.length {
		return fmt.Errorf("handle: write: %w: index %d, length %d", ErrOutOfRange, i, h.length)
	}
	return h.store.Write(h.offset+i, value)
}

// Release reverses the two pins this handle (or the call that created it)
// placed on the tree, freeing in the backing store exactly the sub-ranges
// that are no longer covered by any surviving handle. Idempotent: a second
// call is a silent no-op.
//
// The ordering below matters: adjustments are flipped before pins are
// dropped, so the endpoint nodes are guaranteed present in the tree while
// FindHolesIn walks it. The enclosing range is taken from the tree's
// bounds before anything is changed.
//
// Complexity: O(n) in the size of the tree below the handle's root — see
// core.FindHolesIn and core.PartitionAroundHoles for why this isn't
// O(log n) per released handle.
func (h *Handle) Release() error {
	if h.disposed {
		return nil
	}
	h.disposed = true

	if h.locator == nil {
		return nil
	}

	root := core.RootOf(h.locator)
	rightOffset := h.offset + h.length

	// Step 1: the tree must be quiescent before release begins.
	if total := core.TotalAdjust(root); total != 0 {
		return fmt.Errorf("handle: release: %w: tree total adjust is %d, want 0", core.ErrInvariantViolation, total)
	}

	// Step 2: the enclosing range hole discovery searches within.
	lo, hi, ok := core.Bounds(root)
	if !ok {
		return fmt.Errorf("handle: release: %w: locator node missing from its own tree", core.ErrInvariantViolation)
	}
	enclosing := interval.New(lo, hi-lo)

	// Step 3: flip adjustments without dropping pins yet.
	root, _, err := core.Include(root, rightOffset, 1, 0)
	if err != nil {
		return err
	}
	root, _, err = core.Include(root, h.offset, -1, 0)
	if err != nil {
		return err
	}

	// Step 4: discover holes while both endpoints are still pinned.
	holes, err := core.FindHolesIn(root, enclosing)
	if err != nil {
		return err
	}

	// Step 5: drop the pins now that hole discovery is complete.
	root, _, err = core.Include(root, rightOffset, 0, -1)
	if err != nil {
		return err
	}
	root, _, err = core.Include(root, h.offset, 0, -1)
	if err != nil {
		return err
	}

	// Step 6: sever the tree at every hole boundary.
	if _, err := core.PartitionAroundHoles(root); err != nil {
		return err
	}

	// Step 7: return every hole to the backing store.
	for _, hole := range holes {
		if err := h.store.Free(hole); err != nil {
			return err
		}
	}

	return nil
}
