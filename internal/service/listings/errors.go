package listings

import "errors"

var (
	// ErrListingNotFound is returned when a listing does not exist
	ErrListingNotFound = errors.New("listing not found")

	// ErrAccessDenied is returned when the actor may not manage the listing
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned on malformed listing data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("listings service: internal error")
)
