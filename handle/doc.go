// Package handle implements the user-facing array handle: a reference into
// a backing store's interval that can be sliced into narrower sub-handles
// in O(log n) and that, on release, frees exactly the sub-ranges no
// surviving handle still covers.
//
// A Handle records its backing interval, a non-owning reference to its
// right-endpoint tree node (sufficient to locate the tree via
// core.RootOf), and a disposed flag. Construction and slicing both pin two
// endpoint nodes via core.Include; release reverses that pinning in a
// careful order, so the tree can compute which ranges became holes before
// the pins that kept them alive are dropped.
//
// Errors:
//
//	ErrOutOfRange      - index or slice argument outside the handle's bounds.
//	ErrUseAfterRelease - read, write, or slice on a disposed handle.
package handle
