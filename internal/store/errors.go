package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when creating or updating a user
	// would reuse a username or email already taken within the user
	// namespace. Raised both by the application-level duplicate check and
	// by the unique constraint on insert (the race backstop).
	ErrUserAlreadyExists = errors.New("username or email already exists")

	// ErrAdminAlreadyExists is the admin-namespace counterpart of
	// ErrUserAlreadyExists.
	ErrAdminAlreadyExists = errors.New("admin username or email already exists")

	// ErrUserNotFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrUserNotFound = errors.New("user was not found")

	// ErrAdminNotFound is returned when a query expected to match an admin
	// record produces an empty result set.
	ErrAdminNotFound = errors.New("admin was not found")

	// ErrFeedbackNotFound is returned when a feedback lookup, status update
	// or delete targets a record that does not exist. Also used for an
	// empty my-feedbacks listing, which the API surfaces as 404.
	ErrFeedbackNotFound = errors.New("feedback was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
