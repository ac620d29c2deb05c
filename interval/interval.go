// Package interval defines the half-open integer range shared by the
// backing store, the nesting-depth tree, and the handle layer.
//
// There is exactly one type here on purpose: every other package in this
// module (core, store, handle) builds on the same Interval so that an
// Interval returned by one layer (say, a hole discovered by core) can be
// passed straight into another (store.Free) without conversion.
package interval

import "fmt"

// Interval is the half-open range [Offset, Offset+Length).
//
// Length must be non-negative. A Length of zero is degenerate: it
// represents no positions at all and never overlaps any other interval,
// including itself.
type Interval struct {
	Offset int64
	Length int64
}

// New builds an Interval, the idiomatic constructor for call sites that
// want named fields without repeating the struct literal's field names.
func New(offset, length int64) Interval {
	return Interval{Offset: offset, Length: length}
}

// End returns the exclusive upper bound of the interval.
func (iv Interval) End() int64 {
	return iv.Offset + iv.Length
}

// Empty reports whether the interval spans zero positions.
func (iv Interval) Empty() bool {
	return iv.Length == 0
}

// Overlaps reports whether iv and other share at least one position.
// Degenerate (zero-length) intervals never overlap anything.
func (iv Interval) Overlaps(other Interval) bool {
	if iv.Empty() || other.Empty() {
		return false
	}
	return iv.Offset < other.End() && other.Offset < iv.End()
}

// Contains reports whether offset falls within [Offset, End()).
func (iv Interval) Contains(offset int64) bool {
	return !iv.Empty() && iv.Offset <= offset && offset < iv.End()
}

// String renders the interval as "[offset, end)", matching the half-open
// notation used throughout the package documentation.
func (iv Interval) String() string {
	return fmt.Sprintf("[%d, %d)", iv.Offset, iv.End())
}
