package status

import "errors"

var (
	// ErrUnavailable wraps every failure to produce a Record.
	ErrUnavailable = errors.New("status: daily status unavailable")

	// ErrUnexpectedStatus indicates a non-2xx HTTP response.
	ErrUnexpectedStatus = errors.New("status: unexpected HTTP status")
)
