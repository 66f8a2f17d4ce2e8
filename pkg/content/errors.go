package content

import "errors"

var (
	// ErrNotFound indicates no document exists for the requested page in any
	// candidate location.
	ErrNotFound = errors.New("content: document not found")

	// ErrInvalidName indicates a slug or document name that is not a single
	// clean path element.
	ErrInvalidName = errors.New("content: invalid document name")
)
