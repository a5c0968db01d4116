package check_availability

import "errors"

var (
	// ErrListingNotFound is returned when the listing does not exist
	ErrListingNotFound = errors.New("check_availability: listing not found")

	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("check_availability: internal error")
)
