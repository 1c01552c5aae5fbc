package services

import "errors"

// Sentinel errors returned by the service layer. Handlers map these onto
// HTTP statuses; everything else is treated as an unexpected store failure.
var (
	// ErrNotFound means the referenced record does not exist or is inactive
	ErrNotFound = errors.New("record not found")

	// ErrConflict means the write collides with an existing record or an
	// active reference (duplicate case number, blocked deactivation, ...)
	ErrConflict = errors.New("conflict")

	// ErrInvalidReference means a foreign id points to nothing or to an
	// inactive record
	ErrInvalidReference = errors.New("invalid reference")
)
