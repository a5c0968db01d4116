package listing

import "errors"

var (
	// ErrListingNotFound is returned when a listing does not exist
	ErrListingNotFound = errors.New("listing.repository: listing not found")

	// ErrBuildQuery is returned when building a SQL query fails
	ErrBuildQuery = errors.New("listing.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails
	ErrExecQuery = errors.New("listing.repository: failed to execute query")

	// ErrScanRow is returned when scanning a query result fails
	ErrScanRow = errors.New("listing.repository: failed to scan row")
)
