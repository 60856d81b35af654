package batch

import "errors"

var (
	// ErrNoTargets signals that the request's target list resolved to zero
	// containers.
	ErrNoTargets = errors.New("batch: no target containers")
	// ErrNilDescriptor signals a request without a type descriptor.
	ErrNilDescriptor = errors.New("batch: type descriptor is required")
)
