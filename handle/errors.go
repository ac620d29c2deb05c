package handle

import "errors"

// Sentinel errors for handle operations.
var (
	// ErrOutOfRange indicates an index or slice argument fell outside the
	// handle's bounds.
	ErrOutOfRange = errors.New("handle: out of range")

	// ErrUseAfterRelease indicates an operation targeted a disposed handle.
	ErrUseAfterRelease = errors.New("handle: use after release")
)
