package review

import "errors"

var (
	// ErrReviewNotFound is returned when a review does not exist
	ErrReviewNotFound = errors.New("review.repository: review not found")

	// ErrDuplicateReview is returned when the unique index on
	// (listing_id, user_id) rejects a second review from the same user
	ErrDuplicateReview = errors.New("review.repository: user already reviewed this listing")

	// ErrBuildQuery is returned when building a SQL query fails
	ErrBuildQuery = errors.New("review.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails
	ErrExecQuery = errors.New("review.repository: failed to execute query")

	// ErrScanRow is returned when scanning a query result fails
	ErrScanRow = errors.New("review.repository: failed to scan row")
)
