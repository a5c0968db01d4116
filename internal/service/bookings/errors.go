package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when a booking does not exist
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied is returned when the actor lacks authorization for
	// the requested operation
	ErrAccessDenied = errors.New("access denied")

	// ErrBookingLocked is returned on edit or delete attempts against a
	// confirmed or completed booking, regardless of actor
	ErrBookingLocked = errors.New("booking is locked and cannot be modified")

	// ErrInvalidStatus is returned when a status value is not one of the
	// four recognized values
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidTransition is returned when the active transition table
	// forbids the requested status change
	ErrInvalidTransition = errors.New("status transition not allowed")

	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("bookings service: internal error")
)
