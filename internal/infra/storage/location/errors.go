package location

import "errors"

var (
	// ErrLocationNotFound is returned when a location does not exist
	ErrLocationNotFound = errors.New("location.repository: location not found")

	// ErrDuplicateLocation is returned when the unique name index rejects an insert
	ErrDuplicateLocation = errors.New("location.repository: location name already exists")

	// ErrBuildQuery is returned when building a SQL query fails
	ErrBuildQuery = errors.New("location.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails
	ErrExecQuery = errors.New("location.repository: failed to execute query")

	// ErrScanRow is returned when scanning a query result fails
	ErrScanRow = errors.New("location.repository: failed to scan row")
)
