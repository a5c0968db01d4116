package reviews

import "errors"

var (
	// ErrReviewNotFound is returned when a review does not exist
	ErrReviewNotFound = errors.New("review not found")

	// ErrListingNotFound is returned when the reviewed listing does not exist
	ErrListingNotFound = errors.New("listing not found")

	// ErrDuplicateReview is returned when a user reviews a listing twice
	ErrDuplicateReview = errors.New("listing already reviewed by this user")

	// ErrAccessDenied is returned when the actor may not touch the review
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned on malformed review data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("reviews service: internal error")
)
