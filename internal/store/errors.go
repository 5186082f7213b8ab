package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to create an
	// account fails because the username is already taken by any account,
	// regardless of role.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrEmailAlreadyExists is returned when an attempt to create an account
	// fails because the email is already taken by any account, regardless of
	// role.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrAccountNotFound is returned when a query expected to match exactly
	// one account produces an empty result set.
	ErrAccountNotFound = errors.New("account not found")

	// ErrResetTokenNotFound is returned when a password-reset token lookup
	// produces no row. Callers must not distinguish "never existed" from
	// "expired" or "already used" through this error.
	ErrResetTokenNotFound = errors.New("password reset token not found")

	// ErrClassNotFound is returned when a school class referenced by ID does
	// not exist.
	ErrClassNotFound = errors.New("class not found")

	// ErrSessionNotFound is returned when a class session referenced by ID
	// does not exist. Grades and absences can only be recorded against an
	// existing session.
	ErrSessionNotFound = errors.New("class session not found")

	// ErrMenuItemNotFound is returned when a cafeteria menu item referenced
	// by ID does not exist.
	ErrMenuItemNotFound = errors.New("menu item not found")
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

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
