package health

import "errors"

var (
	// ErrCheckFailed wraps the reason a check reported.
	ErrCheckFailed = errors.New("health: check failed")
	// ErrCheckTimeout replaces a nil result that arrived after the deadline.
	ErrCheckTimeout = errors.New("health: check timeout")
)
