package core

import "errors"

// ErrInvariantViolation is the sentinel wrapped by every internal
// consistency failure: aggregate drift, unpaired hole transitions, or an
// Include call made against a non-root node. These are programmer errors;
// the tree does not attempt to self-heal from them.
var ErrInvariantViolation = errors.New("core: invariant violation")
