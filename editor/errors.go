package editor

import "errors"

// Session errors. All mutating calls outside the active state fail fast;
// callers restart with Init rather than recover in place.
var (
	ErrNotActive   = errors.New("bend session is not active")
	ErrNoSelection = errors.New("no points selected")
	ErrBadIndex    = errors.New("index out of range")
)
