package modal

import "errors"

// ErrUnknownAction is returned by ParseAction for unrecognized values.
var ErrUnknownAction = errors.New("modal: unknown action")
