package core_test

import (
	"testing"

	"github.com/Strilanc/IntervalReferences/core"
	"github.com/Strilanc/IntervalReferences/interval"
)

// buildCoverage applies +1 at each interval's left endpoint and -1 at its
// right endpoint, pinning both (refCount 1), mirroring how the handle
// layer opens coverage. Returns the final root.
func buildCoverage(t *testing.T, root *core.Node, ivs ...interval.Interval) *core.Node {
	t.Helper()
	var err error
	for _, iv := range ivs {
		root, _, err = core.Include(root, iv.Offset, 1, 1)
		MustNoError(t, err, "open coverage left endpoint")
		root, _, err = core.Include(root, iv.End(), -1, 1)
		MustNoError(t, err, "open coverage right endpoint")
	}
	return root
}

// TestFindHolesIn_SingleInterval ASSERTS that a lone covered interval
// leaves exactly the query's complement as holes.
func TestFindHolesIn_SingleInterval(t *testing.T) {
	root := buildCoverage(t, nil, interval.New(10, 20)) // [10,30)

	holes, err := core.FindHolesIn(root, interval.New(0, 100))
	MustNoError(t, err, "FindHolesIn")
	MustEqual(t, len(holes), 2, "hole count around one covered segment")
	MustEqual(t, holes[0], interval.New(0, 10), "hole before coverage")
	MustEqual(t, holes[1], interval.New(30, 70), "hole after coverage")
}

// TestFindHolesIn_DisjointSlicesCreateHole ASSERTS that coverage at
// [0,3) and [7,10) leaves a hole at [3,7).
func TestFindHolesIn_DisjointSlicesCreateHole(t *testing.T) {
	root := buildCoverage(t, nil, interval.New(0, 3), interval.New(7, 3))

	holes, err := core.FindHolesIn(root, interval.New(0, 10))
	MustNoError(t, err, "FindHolesIn")
	MustEqual(t, len(holes), 1, "exactly one hole between the two segments")
	MustEqual(t, holes[0], interval.New(3, 4), "hole spans [3,7)")
}

// TestFindHolesIn_QueryNarrowerThanCoverage ASSERTS holes are clipped to
// the query interval, never extending beyond it.
func TestFindHolesIn_QueryNarrowerThanCoverage(t *testing.T) {
	root := buildCoverage(t, nil, interval.New(10, 20)) // [10,30)

	holes, err := core.FindHolesIn(root, interval.New(15, 10)) // query [15,25), entirely covered
	MustNoError(t, err, "FindHolesIn")
	MustEqual(t, len(holes), 0, "query entirely within coverage yields no holes")
}

// TestFindHolesIn_OverlappingCoverageHasNoInteriorHole ASSERTS that two
// overlapping covered intervals merge into one segment with no hole
// between them.
func TestFindHolesIn_OverlappingCoverageHasNoInteriorHole(t *testing.T) {
	root := buildCoverage(t, nil, interval.New(2, 6), interval.New(5, 4)) // [2,8) and [5,9)

	holes, err := core.FindHolesIn(root, interval.New(0, 12))
	MustNoError(t, err, "FindHolesIn")
	MustEqual(t, len(holes), 2, "only the outer holes remain")
	MustEqual(t, holes[0], interval.New(0, 2), "hole before coverage")
	MustEqual(t, holes[1], interval.New(9, 3), "hole after coverage")
}

// TestFindHolesIn_EmptyTreeIsAllHole ASSERTS an empty tree reports the
// whole query interval as one hole.
func TestFindHolesIn_EmptyTreeIsAllHole(t *testing.T) {
	holes, err := core.FindHolesIn(nil, interval.New(5, 50))
	MustNoError(t, err, "FindHolesIn on empty tree")
	MustEqual(t, len(holes), 1, "whole query is a hole")
	MustEqual(t, holes[0], interval.New(5, 50), "hole equals query")
}
