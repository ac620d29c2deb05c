// File: holes.go
// Role: the hole-transition traversal and FindHolesIn, built on top of it.
package core

import (
	"fmt"

	"github.com/Strilanc/IntervalReferences/interval"
)

// transition records a position where nesting depth crosses the zero
// threshold. opensCoverage is true when depth goes from <= 0 to > 0 (a
// covered segment starts at offset); false when depth goes from > 0 to
// <= 0 (a covered segment ends at offset).
type transition struct {
	offset        int64
	opensCoverage bool
}

// collectTransitions walks the subtree rooted at n in key order, starting
// from running depth entry, appending every zero-crossing to out, and
// returns the depth immediately after the whole subtree (entry +
// totalAdjust(n), computed either by real traversal or, when pruned, by
// reading the cached aggregate directly — the two always agree by the
// aggregate-correctness invariant).
//
// A subtree is pruned (not descended into) when entry > 0 and entry +
// subTreeRelativeMinimum(n) > 0: the aggregate already guarantees no
// position in it reaches zero, so it can contain no transitions.
func collectTransitions(n *Node, entry int64, out *[]transition) int64 {
	if n == nil {
		return entry
	}
	if entry > 0 && entry+n.subTreeRelativeMinimum > 0 {
		return entry + n.subTreeTotalAdjust
	}

	depthBefore := collectTransitions(n.left, entry, out)
	depthAfter := depthBefore + n.adjust

	wasHole := depthBefore <= 0
	nowHole := depthAfter <= 0
	if wasHole != nowHole {
		*out = append(*out, transition{offset: n.offset, opensCoverage: wasHole})
	}

	return collectTransitions(n.right, depthAfter, out)
}

// coveredSegments reduces a transition stream into the ordered list of
// maximal covered ([depth>0]) intervals spanning the whole tree.
func coveredSegments(transitions []transition) ([]interval.Interval, error) {
	var segments []interval.Interval
	var segStart int64
	inCover := false

	for _, t := range transitions {
		if t.opensCoverage {
			if inCover {
				return nil, fmt.Errorf("core: %w: two consecutive coverage-opening transitions at offset %d", ErrInvariantViolation, t.offset)
			}
			segStart = t.offset
			inCover = true
		} else {
			if !inCover {
				return nil, fmt.Errorf("core: %w: two consecutive coverage-closing transitions at offset %d", ErrInvariantViolation, t.offset)
			}
			segments = append(segments, interval.New(segStart, t.offset-segStart))
			inCover = false
		}
	}
	if inCover {
		return nil, fmt.Errorf("core: %w: coverage never closes; total adjust must be zero before calling FindHolesIn", ErrInvariantViolation)
	}
	return segments, nil
}

// FindHolesIn returns every maximal sub-interval of query on which the
// nesting depth is zero, in ascending offset order. The returned
// intervals are pairwise disjoint, each of positive length, and contained
// in query.
//
// root must have total adjust zero (the usual quiescent state); callers
// with a transiently nonzero total, such as handle release mid-operation,
// first restore it to zero before calling FindHolesIn.
//
// Complexity: O(n) in the size of the tree below root, in the typical
// case as well as the worst: the traversal itself is not pruned by the
// query range — covered segments are filtered against query only after
// the full traversal completes.
func FindHolesIn(root *Node, query interval.Interval) ([]interval.Interval, error) {
	if total := totalAdjust(root); total != 0 {
		return nil, fmt.Errorf("core: %w: FindHolesIn requires total adjust zero, got %d", ErrInvariantViolation, total)
	}

	var transitions []transition
	collectTransitions(root, 0, &transitions)

	segments, err := coveredSegments(transitions)
	if err != nil {
		return nil, err
	}

	if query.Empty() {
		return nil, nil
	}

	var holes []interval.Interval
	cursor := query.Offset
	qEnd := query.End()

	for _, seg := range segments {
		segEnd := seg.End()
		if segEnd <= cursor {
			continue
		}
		if seg.Offset >= qEnd {
			break
		}

		gapEnd := seg.Offset
		if gapEnd > qEnd {
			gapEnd = qEnd
		}
		if gapEnd > cursor {
			holes = append(holes, interval.New(cursor, gapEnd-cursor))
		}

		if segEnd > cursor {
			cursor = segEnd
		}
		if cursor > qEnd {
			cursor = qEnd
		}
		if cursor >= qEnd {
			break
		}
	}
	if cursor < qEnd {
		holes = append(holes, interval.New(cursor, qEnd-cursor))
	}

	return holes, nil
}
