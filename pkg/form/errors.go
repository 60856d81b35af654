package form

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("form: aborted")
	// ErrNoPlacements signals that the provider offered no placement choices.
	ErrNoPlacements = errors.New("form: no placements available")
)
