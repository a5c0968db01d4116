package create_booking

import "errors"

var (
	// ErrListingNotFound is returned when the listing does not exist
	ErrListingNotFound = errors.New("create_booking: listing not found")

	// ErrListingNotActive is returned when the listing is not accepting
	// bookings
	ErrListingNotActive = errors.New("create_booking: listing is not active")

	// ErrDatesNotAvailable is returned when the requested range overlaps an
	// existing non-cancelled booking
	ErrDatesNotAvailable = errors.New("create_booking: dates are not available")

	// ErrDuplicateBooking is returned when the same user resubmits the same
	// listing and dates
	ErrDuplicateBooking = errors.New("create_booking: duplicate booking for these dates")

	// ErrInvalidDateRange is returned when check-out is not after check-in
	// or the stay is shorter than one day
	ErrInvalidDateRange = errors.New("create_booking: invalid date range")

	// ErrDateInPast is returned when check-in is before today
	ErrDateInPast = errors.New("create_booking: check-in date is in the past")

	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("create_booking: internal error")
)
