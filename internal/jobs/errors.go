package jobs

import "errors"

var (
	ErrNotFound     = errors.New("job not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrSlugTaken    = errors.New("slug already in use")
	// ErrConflict signals that the caller's fromOrder no longer matches the
	// stored order; the client must re-fetch and retry.
	ErrConflict = errors.New("order changed concurrently")
)
