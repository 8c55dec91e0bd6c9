package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrApplicationNotSaved is returned when the INSERT of a membership
	// application fails for a reason that is not attributable to the
	// submitted data (connection loss, unavailable database, etc.).
	ErrApplicationNotSaved = errors.New("membership application was not saved")

	// ErrApplicationRejected is returned when the database refuses the
	// INSERT because of the data itself (an integrity-constraint
	// violation). The HTTP layer maps this to a client error.
	ErrApplicationRejected = errors.New("membership application was rejected by storage")

	// ErrApplicationIDConflict is returned when the generated application
	// identifier collides with an existing row. Application IDs are UUIDs,
	// so this indicates an ID-generation fault rather than a client problem.
	ErrApplicationIDConflict = errors.New("application identifier already exists")

	// ErrApplicationNotFound is returned when an update or read targets an
	// application identifier that does not exist.
	ErrApplicationNotFound = errors.New("membership application was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan application row")
)
