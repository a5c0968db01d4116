package locations

import "errors"

var (
	// ErrLocationNotFound is returned when a location does not exist
	ErrLocationNotFound = errors.New("location not found")

	// ErrDuplicateLocation is returned when a location name already exists
	ErrDuplicateLocation = errors.New("location already exists")

	// ErrAccessDenied is returned when the actor may not manage locations
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned on malformed location data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("locations service: internal error")
)
